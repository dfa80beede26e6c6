package main

import (
	"log"

	"taskhub/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("taskhub api failed to start: %v", err)
	}
	defer func() { _ = app.Close() }()

	if err := app.Run(); err != nil {
		log.Fatalf("taskhub api stopped: %v", err)
	}
}
