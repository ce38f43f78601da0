// Package glide is the layout engine and event reactor for a tiling window
// manager. It owns a layout tree per (space, screen size), computes target
// window rectangles from that tree, and serializes every external event
// (key bindings, mouse, app notifications, space changes, configuration
// edits) through a single reactor task that drives per-application worker
// tasks toward those rectangles.
//
// Glide does not paint pixels, does not own the OS event tap, and performs
// no I/O. Those concerns belong to the boundary interfaces in sys.go and to
// the separate backend/* modules, which depend on glide rather than the
// other way around.
//
// # Quick start
//
// The simplest way to get a working reactor is [NewReactor], which wires a
// [Manager] (and therefore a [SpaceLayouts]) for you. Wrap it in an
// [Orchestrator] to drive it from a real [Backend]:
//
//	r := glide.NewReactor(glide.DefaultConfig())
//	orch := glide.NewOrchestrator(r, backend, 64)
//	go orch.Run(ctx)
//	orch.Inbox <- glide.Event{Kind: glide.EventWindowDiscovered, Window: w, Space: s}
//
// # Layout tree
//
// Every managed window is a leaf [NodeId] in a [Tree] rooted at a
// container. Containers arrange their children according to a [Kind]
// (Horizontal, Vertical, Tabbed, Stacked) and a per-child [Tree.Size]
// weight. [Calculate] walks a tree under a screen rectangle and emits one
// [Frame] per window.
//
// # Spaces and screens
//
// [SpaceLayouts] maps (space, screen size) to a [Layout], sharing unmodified
// layouts by pointer until [SpaceLayouts.PrepareModify] forces a
// copy-on-write clone.
package glide
