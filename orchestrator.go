package glide

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Orchestrator wires a Reactor to an inbox channel of Events and a
// Backend, running the event loop and request dispatch as two
// concurrently scheduled goroutines under one errgroup so either's
// terminal error (or ctx cancellation) brings both down together.
type Orchestrator struct {
	Reactor *Reactor
	Backend Backend
	Inbox chan Event

	requests chan Request
}

// NewOrchestrator builds an Orchestrator around reactor and backend, with
// an inbox of the given buffer size.
func NewOrchestrator(reactor *Reactor, backend Backend, inboxBuffer int) *Orchestrator {
	return &Orchestrator{
		Reactor: reactor,
		Backend: backend,
		Inbox: make(chan Event, inboxBuffer),
		requests: make(chan Request, inboxBuffer),
	}
}

// Run drives the reactor's event loop and the request-dispatch loop until
// ctx is cancelled, the inbox is closed, or a Shutdown event is
// processed. It returns the first error encountered by either goroutine.
func (o *Orchestrator) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(o.requests)
		return o.runReactorLoop(ctx)
	})

	g.Go(func() error {
		return o.runDispatchLoop(ctx)
	})

	return g.Wait()
}

// runReactorLoop implements the batching/coalescing contract: events are
// drained from the inbox without blocking until either none remain or an
// AnimationTick is reached (which always yields between frames and is
// processed alone), then the accumulated batch is handed to the reactor
// in one HandleBatch call.
func (o *Orchestrator) runReactorLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-o.Inbox:
			if !ok {
				return nil
			}
			if evt.Kind == EventAnimationTick {
				o.emit(ctx, o.Reactor.Handle(evt))
				continue
			}

			batch := []Event{evt}
			shutdown := evt.Kind == EventShutdown
			for !shutdown {
				more, stop := o.tryDrainOne(ctx, &batch)
				if stop {
					break
				}
				if !more {
					break
				}
				if batch[len(batch)-1].Kind == EventShutdown {
					shutdown = true
				}
			}

			o.emit(ctx, o.Reactor.HandleBatch(batch))
			if shutdown {
				return nil
			}
		}
	}
}

// tryDrainOne opportunistically reads one more event without blocking.
// An AnimationTick always flushes the batch collected so far before being
// handled on its own: animation-tick events always yield between
// frames. Returns more=false when the inbox currently has
// nothing buffered; stop=true when the caller should treat the batch as
// complete (an AnimationTick was handled inline).
func (o *Orchestrator) tryDrainOne(ctx context.Context, batch *[]Event) (more bool, stop bool) {
	select {
	case e2, ok := <-o.Inbox:
		if !ok {
			return false, false
		}
		if e2.Kind == EventAnimationTick {
			o.emit(ctx, o.Reactor.HandleBatch(*batch))
			*batch = (*batch)[:0]
			o.emit(ctx, o.Reactor.Handle(e2))
			return false, true
		}
		*batch = append(*batch, e2)
		return true, false
	default:
		return false, false
	}
}

func (o *Orchestrator) emit(ctx context.Context, reqs []Request) {
	for _, req := range reqs {
		select {
		case o.requests <- req:
		case <-ctx.Done():
			return
		}
	}
}

// runDispatchLoop routes every Request the reactor produces to the
// matching Backend call.
func (o *Orchestrator) runDispatchLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req, ok := <-o.requests:
			if !ok {
				return nil
			}
			if err := o.dispatch(ctx, req); err != nil {
				// external failure: mark untracked, keep going.
				o.Reactor.MarkUntracked(req.Window)
				continue
			}
			o.Reactor.ClearUntracked(req.Window)
		}
	}
}

func (o *Orchestrator) dispatch(ctx context.Context, req Request) error {
	switch req.Kind {
	case RequestSetWindowFrame:
		return o.Backend.SetWindowFrame(ctx, req.Window, req.Rect, req.Txn)
	case RequestBeginWindowAnimation:
		return o.Backend.BeginWindowAnimation(ctx, req.Window, req.Txn)
	case RequestEndWindowAnimation:
		return o.Backend.EndWindowAnimation(ctx, req.Window, req.Txn)
	case RequestRaiseWindow:
		return o.Backend.RaiseWindow(ctx, req.Window, req.SequenceToken)
	case RequestStartObserving:
		return o.Backend.StartObserving(ctx, req.Window)
	case RequestStopObserving:
		return o.Backend.StopObserving(ctx, req.Window)
	default:
		invariantf("dispatch: unknown request kind %v", req.Kind)
		return nil
	}
}
