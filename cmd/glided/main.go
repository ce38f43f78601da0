// Command glided is the process entry point: it constructs a Reactor,
// a Backend (left as a stub here — sys.go's boundary is implemented by
// backend/x11, which can be wired in by replacing stubBackend),
// and an Orchestrator, then runs until signalled.
//
// This binary intentionally does none of the work considered out of
// scope for the core: no AX wrapper, no config file watcher, no CLI
// socket, no status icon. It is the thinnest possible composition root.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/glide-wm/glide"
)

// stubBackend logs every request instead of touching a real window
// server; swap in the backend/x11 Backend for a real deployment
// (backend/ebitenviz is a viewer, not a Backend).
type stubBackend struct{}

func (stubBackend) SetWindowFrame(ctx context.Context, w glide.WindowId, r glide.Rect, txn glide.TransactionId) error {
	log.Printf("SetWindowFrame window=%v rect=%+v txn=%d", w, r, txn)
	return nil
}

func (stubBackend) BeginWindowAnimation(ctx context.Context, w glide.WindowId, txn glide.TransactionId) error {
	log.Printf("BeginWindowAnimation window=%v txn=%d", w, txn)
	return nil
}

func (stubBackend) EndWindowAnimation(ctx context.Context, w glide.WindowId, txn glide.TransactionId) error {
	log.Printf("EndWindowAnimation window=%v txn=%d", w, txn)
	return nil
}

func (stubBackend) RaiseWindow(ctx context.Context, w glide.WindowId, seq uint64) error {
	log.Printf("RaiseWindow window=%v seq=%d", w, seq)
	return nil
}

func (stubBackend) StartObserving(ctx context.Context, w glide.WindowId) error {
	log.Printf("StartObserving window=%v", w)
	return nil
}

func (stubBackend) StopObserving(ctx context.Context, w glide.WindowId) error {
	log.Printf("StopObserving window=%v", w)
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reactor := glide.NewReactor(glide.DefaultConfig())
	orch := glide.NewOrchestrator(reactor, stubBackend{}, 256)

	go func() {
		<-ctx.Done()
		orch.Inbox <- glide.Event{Kind: glide.EventShutdown}
	}()

	if err := orch.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("glided: %v", err)
	}
}
