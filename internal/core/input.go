package core

// KeyCode identifies a physical key independently of any windowing API.
// Backends translate their native key representation into a KeyCode.
type KeyCode int

// Key codes known to the game. Everything else maps to KeyUnknown.
const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyS
	KeyO
	KeyL
	KeyQ
	KeyEscape
)

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyO:
		return "O"
	case KeyL:
		return "L"
	case KeyQ:
		return "Q"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - accelerate left paddle upwards
	ActionLeftDown         // S - accelerate left paddle downwards
	ActionRightUp          // O - accelerate right paddle upwards
	ActionRightDown        // L - accelerate right paddle downwards
	ActionQuit             // Escape, Q - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// bindings is the fixed key map. It is intentionally not configurable.
var bindings = map[KeyCode]Action{
	KeyW:      ActionLeftUp,
	KeyS:      ActionLeftDown,
	KeyO:      ActionRightUp,
	KeyL:      ActionRightDown,
	KeyQ:      ActionQuit,
	KeyEscape: ActionQuit,
}

// ActionFor returns the action bound to k, or ActionNone.
func ActionFor(k KeyCode) Action {
	return bindings[k]
}

// EventKind distinguishes the two edges of a key press.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
)

// KeyEvent is a discrete key transition delivered by a backend.
type KeyEvent struct {
	Kind EventKind
	Code KeyCode
}

// Pressed builds a KeyDown event.
func Pressed(k KeyCode) KeyEvent {
	return KeyEvent{Kind: KeyDown, Code: k}
}

// Released builds a KeyUp event.
func Released(k KeyCode) KeyEvent {
	return KeyEvent{Kind: KeyUp, Code: k}
}

// InputState is the sparse key-down table read by the simulation every frame.
// It is only mutated through Dispatch.
type InputState struct {
	down map[KeyCode]bool
}

// NewInputState creates an empty input table.
func NewInputState() *InputState {
	return &InputState{down: make(map[KeyCode]bool)}
}

// Dispatch applies a single key event to the table.
// Repeated KeyDown events for a held key are harmless.
func (s *InputState) Dispatch(ev KeyEvent) {
	if s.down == nil {
		s.down = make(map[KeyCode]bool)
	}
	switch ev.Kind {
	case KeyDown:
		s.down[ev.Code] = true
	case KeyUp:
		delete(s.down, ev.Code)
	}
}

// DispatchAll applies events in order.
func (s *InputState) DispatchAll(events []KeyEvent) {
	for _, ev := range events {
		s.Dispatch(ev)
	}
}

// IsDown reports whether k is currently held.
func (s *InputState) IsDown(k KeyCode) bool {
	if s == nil {
		return false
	}
	return s.down[k]
}

// Held reports whether any key bound to a is currently held.
func (s *InputState) Held(a Action) bool {
	if s == nil {
		return false
	}
	for k := range s.down {
		if bindings[k] == a {
			return true
		}
	}
	return false
}

// Keys returns the held keys.
func (s *InputState) Keys() []KeyCode {
	if s == nil {
		return nil
	}
	keys := make([]KeyCode, 0, len(s.down))
	for k := range s.down {
		keys = append(keys, k)
	}
	return keys
}

// Clear releases every key.
func (s *InputState) Clear() {
	for k := range s.down {
		delete(s.down, k)
	}
}
