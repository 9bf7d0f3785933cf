package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/gocafe/internal/app"
)

func main() {
	application := app.New()    // Load config, open the store and mount routes
	wait := application.Start() // Serve until a termination signal arrives
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx) // Drain HTTP, then close the store
}
