package manip

// Keyboard modifier bits passed alongside mouse state. A 32-bit flag set so
// callers can extend it with tool-specific bits above ModifierUser.
const (
	ModifierShift uint32 = 1 << iota
	ModifierControl
	ModifierAlt
	ModifierSuper

	// ModifierUser is the first bit free for caller-defined flags.
	ModifierUser
)

// MouseState is the per-frame input snapshot consumed by
// ProcessMouseInput. Positions are in window pixels; deltas are the
// movement since the previous frame. Nothing here is polled by the
// manipulators themselves.
type MouseState struct {
	X, Y           float64
	DeltaX, DeltaY float64

	LeftPressed   bool
	MiddlePressed bool
	RightPressed  bool

	Modifiers uint32
}
