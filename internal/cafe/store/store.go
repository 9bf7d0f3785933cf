package store

import "time"

// QueryObserver records the latency and outcome of a single store operation.
type QueryObserver interface {
	ObserveQuery(driver, query string, start time.Time, failed bool)
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(string, string, time.Time, bool) {}

func observerOrNoop(obs QueryObserver) QueryObserver {
	if obs == nil {
		return noopObserver{}
	}
	return obs
}
