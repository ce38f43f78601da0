package glide

// EventKind tags the variant of an inbound Event.
type EventKind int

const (
	EventScreenParametersChanged EventKind = iota
	EventSpaceChanged
	EventWindowDiscovered
	EventWindowDestroyed
	EventWindowFocused
	EventWindowMainChanged
	EventWindowMoved
	EventWindowResized
	EventMouseMoved
	EventMouseClicked
	EventScroll
	EventCommand
	EventConfigChanged
	EventAnimationTick
	EventShutdown
)

func (k EventKind) String() string {
	switch k {
	case EventScreenParametersChanged:
		return "screen-parameters-changed"
	case EventSpaceChanged:
		return "space-changed"
	case EventWindowDiscovered:
		return "window-discovered"
	case EventWindowDestroyed:
		return "window-destroyed"
	case EventWindowFocused:
		return "window-focused"
	case EventWindowMainChanged:
		return "window-main-changed"
	case EventWindowMoved:
		return "window-moved"
	case EventWindowResized:
		return "window-resized"
	case EventMouseMoved:
		return "mouse-moved"
	case EventMouseClicked:
		return "mouse-clicked"
	case EventScroll:
		return "scroll"
	case EventCommand:
		return "command"
	case EventConfigChanged:
		return "config-changed"
	case EventAnimationTick:
		return "animation-tick"
	case EventShutdown:
		return "shutdown"
	default:
		return "unknown-event"
	}
}

// Event is the reactor's single inbound message type: a semantic tag plus
// every field any variant might carry. Unused fields are the variant's
// caller's concern to leave zero; this mirrors the way the rest of the
// model favors flat structs with a discriminant over one interface type
// per event").
type Event struct {
	Kind EventKind
	Now float64 // monotonic seconds; every model function that needs "now" takes it explicitly

	Space SpaceId
	Screen ScreenSize
	Window WindowId

	Rect Rect
	LastSeenTxn TransactionId
	MouseX, MouseY float64
	ScrollDelta float64

	Command Command

	Config Config
}

// CommandKind tags the variant of a user-issued Command.
type CommandKind int

const (
	CmdFocus CommandKind = iota
	CmdFocusWindow
	CmdSwap
	CmdMove
	CmdSplit
	CmdGroup
	CmdUngroup
	CmdToggleFloating
	CmdToggleFullscreen
	CmdResize
	CmdBalance
	CmdPromote
	CmdDemote
	CmdMoveToSpace
	CmdToggleSpaceManaged
	CmdScroll
	CmdSetCenteringMode
	CmdSaveAndExit
	CmdReloadConfig
	CmdConfigUpdate
)

// Command is a tagged union of every user-facing operation.
// Like Event, it is one flat struct rather than one Go type per variant,
// dispatched on a fixed set of cases rather than via an interface per
// message.
type Command struct {
	Kind CommandKind

	Dir Direction
	Edge Edge
	Pixels float64
	Axis Axis
	Group Kind // Tabbed or Stacked, for CmdGroup

	Window WindowId
	Space SpaceId
	Centering CenteringMode
	ConfigPath string
}
