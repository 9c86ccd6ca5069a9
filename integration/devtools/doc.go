// Package devtools streams navigation tree snapshots over a WebSocket so the
// state of a running application can be inspected from the outside.
//
// The server subscribes to an engine and pushes a JSON snapshot of the whole
// tree to every connected client after each applied transition. A client also
// receives the current snapshot immediately on connect, so inspectors never
// start blind.
//
// Usage:
//
//	cfg, err := devtools.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	srv := devtools.New(engine, cfg, devtools.WithLogger(logger))
//	go func() {
//		if err := srv.Run(ctx); err != nil {
//			logger.Error("devtools server failed", slog.Any("error", err))
//		}
//	}()
//
// Connect with any WebSocket client:
//
//	websocat ws://localhost:8973/ws
//
// The stream is one-directional; anything a client sends is discarded. The
// server is meant for development builds and binds to localhost by default.
package devtools
