package pkgrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

//nolint:gochecknoglobals // lookup table
var sensitiveKeys = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-api-key":     {},
	"password":      {},
	"token":         {},
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if _, found := sensitiveKeys[strings.ToLower(key)]; found {
			result.Set(key, "***")
		}
	}
	return result
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, inner := range val {
			if _, found := sensitiveKeys[strings.ToLower(k)]; found {
				masked[k] = "***"
				continue
			}
			masked[k] = maskData(inner)
		}
		return masked
	case []any:
		res := make([]any, len(val))
		for i, inner := range val {
			res[i] = maskData(inner)
		}
		return res
	default:
		return v
	}
}

type routeKey struct{}

func withRoute(pattern string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), routeKey{}, pattern)))
		})
	}
}

func matchedRoutePath(r *http.Request) string {
	if pattern, ok := r.Context().Value(routeKey{}).(string); ok && pattern != "" {
		return pattern
	}
	return r.URL.Path
}

// describeBody turns a captured payload into something safe to log.
func describeBody(body []byte, truncated bool) any {
	if len(body) == 0 {
		return nil
	}

	var out any
	switch {
	case json.Unmarshal(body, &out) == nil:
		out = maskData(out)
	case utf8.Valid(body):
		out = string(body)
	default:
		return "<binary body omitted>"
	}

	if truncated {
		return map[string]any{"body": out, "truncated": true}
	}
	return out
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// middlewareLogging emits one record per request. Bodies are only captured
// when the logger is enabled at debug level.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		verbose := slog.Default().Enabled(r.Context(), slog.LevelDebug)

		var (
			reqBody      []byte
			reqTruncated bool
		)
		if verbose && r.Body != nil {
			//nolint:errcheck // best effort for logging only
			head, _ := io.ReadAll(io.LimitReader(r.Body, maxCapturedBodyBytes+1))
			// the handler still sees the whole stream; only the logged copy is capped
			r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(head), r.Body), Closer: r.Body}

			reqBody = head
			if len(head) > maxCapturedBodyBytes {
				reqBody, reqTruncated = head[:maxCapturedBodyBytes], true
			}
		}

		rec := &statusRecorder{ResponseWriter: w}
		if verbose {
			rec.body = &bytes.Buffer{}
		}

		next.ServeHTTP(rec, r)

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("route", matchedRoutePath(r)),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.Status()),
			slog.Int("bytes", rec.written),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		}
		if verbose {
			attrs = append(attrs,
				slog.Any("headers", maskHeaders(r.Header)),
				slog.Any("request_body", describeBody(reqBody, reqTruncated)),
				slog.Any("response_body", describeBody(rec.body.Bytes(), rec.truncated)),
			)
		}

		logRequest(r.Context(), levelFor(rec.Status()), attrs)
	})
}

type replayBody struct {
	io.Reader
	io.Closer
}

func logRequest(ctx context.Context, level slog.Level, attrs []slog.Attr) {
	slog.LogAttrs(ctx, level, "request served", attrs...)
}
