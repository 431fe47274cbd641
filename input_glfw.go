package manip

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputSampler translates a GLFW window's cursor, button and modifier key
// state into the MouseState the manipulators consume. It keeps the previous
// cursor position so per-frame deltas come out of plain polling; callers
// still own event pumping (glfw.PollEvents).
type InputSampler struct {
	window       *glfw.Window
	prevX, prevY float64
	first        bool
}

func NewInputSampler(window *glfw.Window) *InputSampler {
	return &InputSampler{window: window, first: true}
}

// Sample polls the window once. Call once per frame after event pumping.
func (s *InputSampler) Sample() MouseState {
	x, y := s.window.GetCursorPos()

	ms := MouseState{X: x, Y: y}
	if !s.first {
		ms.DeltaX = x - s.prevX
		ms.DeltaY = y - s.prevY
	}
	s.prevX, s.prevY = x, y
	s.first = false

	ms.LeftPressed = s.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	ms.MiddlePressed = s.window.GetMouseButton(glfw.MouseButtonMiddle) == glfw.Press
	ms.RightPressed = s.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press

	ms.Modifiers = s.modifiers()
	return ms
}

func (s *InputSampler) modifiers() uint32 {
	var mods uint32
	for flag, keys := range modifierKeys {
		for _, key := range keys {
			if s.window.GetKey(key) == glfw.Press {
				mods |= flag
				break
			}
		}
	}
	return mods
}

var modifierKeys = map[uint32][]glfw.Key{
	ModifierShift:   {glfw.KeyLeftShift, glfw.KeyRightShift},
	ModifierControl: {glfw.KeyLeftControl, glfw.KeyRightControl},
	ModifierAlt:     {glfw.KeyLeftAlt, glfw.KeyRightAlt},
	ModifierSuper:   {glfw.KeyLeftSuper, glfw.KeyRightSuper},
}
