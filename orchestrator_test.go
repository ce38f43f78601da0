package glide

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingBackend struct {
	mu    sync.Mutex
	calls []Request
}

func (b *recordingBackend) record(req Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, req)
}

func (b *recordingBackend) SetWindowFrame(ctx context.Context, window WindowId, rect Rect, txn TransactionId) error {
	b.record(Request{Kind: RequestSetWindowFrame, Window: window, Rect: rect, Txn: txn})
	return nil
}
func (b *recordingBackend) BeginWindowAnimation(ctx context.Context, window WindowId, txn TransactionId) error {
	b.record(Request{Kind: RequestBeginWindowAnimation, Window: window, Txn: txn})
	return nil
}
func (b *recordingBackend) EndWindowAnimation(ctx context.Context, window WindowId, txn TransactionId) error {
	b.record(Request{Kind: RequestEndWindowAnimation, Window: window, Txn: txn})
	return nil
}
func (b *recordingBackend) RaiseWindow(ctx context.Context, window WindowId, seq uint64) error {
	b.record(Request{Kind: RequestRaiseWindow, Window: window, SequenceToken: seq})
	return nil
}
func (b *recordingBackend) StartObserving(ctx context.Context, window WindowId) error {
	b.record(Request{Kind: RequestStartObserving, Window: window})
	return nil
}
func (b *recordingBackend) StopObserving(ctx context.Context, window WindowId) error {
	b.record(Request{Kind: RequestStopObserving, Window: window})
	return nil
}

func (b *recordingBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func TestOrchestratorDeliversWindowDiscoveredToBackend(t *testing.T) {
	reactor := NewReactor(DefaultConfig())
	backend := &recordingBackend{}
	orch := NewOrchestrator(reactor, backend, 16)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- orch.Run(ctx) }()

	orch.Inbox <- Event{Kind: EventWindowDiscovered, Space: SpaceId(1), Screen: testScreen(), Window: w(1, 1)}
	orch.Inbox <- Event{Kind: EventShutdown}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned an error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for orchestrator to shut down on EventShutdown")
	}

	if backend.count() == 0 {
		t.Errorf("expected the backend to receive at least one dispatched request")
	}
}
