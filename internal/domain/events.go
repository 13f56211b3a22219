package domain

// EventType represents the type of page session event
type EventType string

// Event types
const (
	EventResize    EventType = "Resize"
	EventKey       EventType = "Key"
	EventJump      EventType = "Jump"
	EventActivated EventType = "Activated"
)

// Event is the interface for all session events
type Event interface {
	Type() EventType
}

// ResizeEvent is delivered whenever the viewport changes size
type ResizeEvent struct {
	Viewport Viewport
}

func (e ResizeEvent) Type() EventType { return EventResize }

// KeyEvent carries a raw key identifier such as "j", "k" or "Enter"
type KeyEvent struct {
	Key string
}

func (e KeyEvent) Type() EventType { return EventKey }

// JumpEvent moves the cursor directly to an option
type JumpEvent struct {
	OptionID string
}

func (e JumpEvent) Type() EventType { return EventJump }

// ActivatedEvent is emitted when the current option is confirmed
type ActivatedEvent struct {
	Page     string
	OptionID string
	Target   Target
}

func (e ActivatedEvent) Type() EventType { return EventActivated }
