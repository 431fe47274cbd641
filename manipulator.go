package manip

import (
	"github.com/go-gl/mathgl/mgl32"
)

type GizmoType int

const (
	GizmoTypeUnknown GizmoType = iota
	GizmoTypeTranslation
	GizmoTypeRotation
	GizmoTypeScale
)

// Mode bits constrain which handles of a gizmo are active. Zero means
// unconstrained (all axes).
const (
	ModeAxisX uint32 = 1 << iota
	ModeAxisY
	ModeAxisZ
	ModeScreenPlane
)

const ModeAllAxes = ModeAxisX | ModeAxisY | ModeAxisZ

// referencePixelSize is the apparent on-screen size (in vertical pixels) of
// a gizmo with scalingFactor 1 when perspective compensation is active.
const referencePixelSize = 120.0

// Manipulator is the capability set every gizmo kind implements. The shared
// state methods come from the embedded TransformationManipulator; Hit,
// Render, ProcessMouseInput and UpdateBoundingVolumes carry the kind
// specific geometry.
type Manipulator interface {
	Type() GizmoType

	// Hit reports whether the screen position intersects the gizmo's
	// current bounding volume. Pure query.
	Hit(camera *Camera, mouseX, mouseY int) bool

	Render(camera *Camera, renderUtil RenderUtil)

	// ProcessMouseInput advances the drag state machine one frame and
	// pushes candidate values through the callback's Update. It never
	// writes the target directly.
	ProcessMouseInput(camera *Camera, mouse *MouseState)

	UpdateBoundingVolumes(camera *Camera)

	Init(position mgl32.Vec3)
	Position() mgl32.Vec3
	SetScale(scale float32, camera *Camera)
	ScalingFactor() float32
	SetRenderOffset(offset mgl32.Vec3)
	Callback() ManipulatorCallback
	SetCallback(cb ManipulatorCallback)
	Visible() bool
	SelectionLocked() bool
	Dragging() bool
}

// TransformationManipulator holds the state shared by all gizmo kinds:
// anchor position, render offset, scaling factor, mode bits, visibility and
// lock flags, and the exclusively owned callback. Concrete kinds embed it
// and add hit-test geometry plus drag math.
//
// Calling Hit or Render before Init is a caller bug; the result is a gizmo
// at the origin, not a crash.
type TransformationManipulator struct {
	position     mgl32.Vec3 // render anchor = logical position + renderOffset
	renderOffset mgl32.Vec3
	name         string
	mode         uint32

	scalingFactor   float32
	callback        ManipulatorCallback
	selectionLocked bool
	isVisible       bool

	// Bounding volumes are recomputed lazily: mutators flip boundsDirty and
	// the kind's hit test calls UpdateBoundingVolumes before reading them.
	boundsDirty bool
	lastCamera  *Camera
}

func newTransformationManipulator(scalingFactor float32) TransformationManipulator {
	if scalingFactor <= 0 {
		scalingFactor = 1.0
	}
	return TransformationManipulator{
		scalingFactor: scalingFactor,
		isVisible:     true,
		boundsDirty:   true,
	}
}

// Init places the gizmo at a logical position. The stored anchor includes
// the render offset; bounding volumes are recomputed before the next hit
// test or render.
func (m *TransformationManipulator) Init(position mgl32.Vec3) {
	m.position = position.Add(m.renderOffset)
	m.boundsDirty = true
}

// Position returns the caller-visible logical position, excluding the
// render-only offset.
func (m *TransformationManipulator) Position() mgl32.Vec3 {
	return m.position.Sub(m.renderOffset)
}

// RenderPosition returns the anchor the gizmo geometry is drawn and
// hit-tested at, including the render offset.
func (m *TransformationManipulator) RenderPosition() mgl32.Vec3 {
	return m.position
}

// SetRenderOffset changes the display-only displacement while preserving the
// logical position.
func (m *TransformationManipulator) SetRenderOffset(offset mgl32.Vec3) {
	oldPos := m.Position()
	m.renderOffset = offset
	m.Init(oldPos)
}

func (m *TransformationManipulator) RenderOffset() mgl32.Vec3 {
	return m.renderOffset
}

// SetScale updates the scaling factor. A nil camera keeps the last-known
// camera for the compensation term.
func (m *TransformationManipulator) SetScale(scale float32, camera *Camera) {
	m.scalingFactor = scale
	if camera != nil {
		m.lastCamera = camera
	}
	m.boundsDirty = true
}

func (m *TransformationManipulator) ScalingFactor() float32 { return m.scalingFactor }

func (m *TransformationManipulator) SetName(name string) { m.name = name }
func (m *TransformationManipulator) Name() string        { return m.name }

func (m *TransformationManipulator) SetMode(mode uint32) { m.mode = mode }
func (m *TransformationManipulator) Mode() uint32        { return m.mode }

// axisEnabled interprets the mode bits for one of the three world axes.
func (m *TransformationManipulator) axisEnabled(axis int) bool {
	if m.mode&ModeAllAxes == 0 {
		return true
	}
	return m.mode&(ModeAxisX<<uint(axis)) != 0
}

func (m *TransformationManipulator) screenPlaneEnabled() bool {
	return m.mode&ModeScreenPlane != 0
}

func (m *TransformationManipulator) SetSelectionLocked(locked bool) { m.selectionLocked = locked }
func (m *TransformationManipulator) SelectionLocked() bool          { return m.selectionLocked }

func (m *TransformationManipulator) SetVisible(visible bool) { m.isVisible = visible }
func (m *TransformationManipulator) Visible() bool           { return m.isVisible }

// SetCallback replaces the owned callback, closing the previous one
// unconditionally. External handles to the old callback must not be used
// afterwards.
func (m *TransformationManipulator) SetCallback(cb ManipulatorCallback) {
	if m.callback != nil {
		m.callback.Close()
	}
	m.callback = cb
}

func (m *TransformationManipulator) Callback() ManipulatorCallback {
	return m.callback
}

// Destroy releases the owned callback without committing it.
func (m *TransformationManipulator) Destroy() {
	if m.callback != nil {
		m.callback.Close()
		m.callback = nil
	}
}

// compensation returns the world-units-per-unit-scale factor for the
// current camera so the gizmo keeps a constant apparent screen size. Without
// a camera the factor is 1 and scalingFactor is in world units.
func (m *TransformationManipulator) compensation() float32 {
	if m.lastCamera == nil {
		return 1.0
	}
	wpp := m.lastCamera.WorldPerPixel(m.position)
	if wpp <= 0 {
		return 1.0
	}
	return wpp * referencePixelSize
}

// noteCamera records the camera used for the current bounding volume pass.
func (m *TransformationManipulator) noteCamera(camera *Camera) {
	if camera != nil {
		m.lastCamera = camera
	}
}

// Default implementations for kinds that do not need them; mirrors the
// no-op contract of the shared state machine.

func (m *TransformationManipulator) Type() GizmoType { return GizmoTypeUnknown }

func (m *TransformationManipulator) UpdateBoundingVolumes(camera *Camera) {
	m.noteCamera(camera)
	m.boundsDirty = false
}

func (m *TransformationManipulator) Render(camera *Camera, renderUtil RenderUtil) {}

func (m *TransformationManipulator) ProcessMouseInput(camera *Camera, mouse *MouseState) {}

func (m *TransformationManipulator) Dragging() bool { return false }
