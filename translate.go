package manip

import (
	"github.com/go-gl/mathgl/mgl32"
)

var worldAxes = [3]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

const (
	axisNone        = -1
	axisScreenPlane = 3
)

const (
	translateAxisLength  = 1.0
	translateTipLength   = 0.2
	translateHitRadius   = 0.15
	translatePlaneRadius = 0.3
)

// TranslateManipulator moves the bound value along one of the world axes,
// or inside the camera-facing plane when ModeScreenPlane is set.
type TranslateManipulator struct {
	TransformationManipulator

	// bounding volumes, recomputed by UpdateBoundingVolumes
	axisLength  float32
	tipLength   float32
	hitRadius   float32
	planeRadius float32

	dragging        bool
	activeAxis      int
	dragAnchor      mgl32.Vec3
	dragStartParam  float32
	dragStartValue  mgl32.Vec3
	dragPlanePoint  mgl32.Vec3
	dragPlaneNormal mgl32.Vec3
}

func NewTranslateManipulator() *TranslateManipulator {
	return &TranslateManipulator{
		TransformationManipulator: newTransformationManipulator(1.0),
		activeAxis:                axisNone,
	}
}

func (m *TranslateManipulator) Type() GizmoType { return GizmoTypeTranslation }

func (m *TranslateManipulator) Dragging() bool  { return m.dragging }
func (m *TranslateManipulator) ActiveAxis() int { return m.activeAxis }

// AxisLength is the scaled half-extent of the gizmo's bounding volume.
func (m *TranslateManipulator) AxisLength() float32 {
	m.ensureBounds()
	return m.axisLength
}

func (m *TranslateManipulator) UpdateBoundingVolumes(camera *Camera) {
	m.noteCamera(camera)
	s := m.scalingFactor * m.compensation()
	m.axisLength = translateAxisLength * s
	m.tipLength = translateTipLength * s
	m.hitRadius = translateHitRadius * s
	m.planeRadius = translatePlaneRadius * s
	m.boundsDirty = false
}

func (m *TranslateManipulator) ensureBounds() {
	if m.boundsDirty {
		m.UpdateBoundingVolumes(m.lastCamera)
	}
}

// pickHandle returns the handle under the mouse: an axis index, the screen
// plane handle, or none. The screen plane handle wins over the axes since
// it overlaps their shared origin.
func (m *TranslateManipulator) pickHandle(camera *Camera, mouseX, mouseY float64) (int, bool) {
	origin, dir := camera.ScreenRay(mouseX, mouseY)
	anchor := m.position

	if m.screenPlaneEnabled() {
		normal := camera.Forward().Mul(-1.0)
		if pt, ok := rayPlane(origin, dir, anchor, normal); ok {
			if pt.Sub(anchor).Len() < m.planeRadius {
				return axisScreenPlane, true
			}
		}
	}

	best := axisNone
	minT := float32(1e20)
	for i, axis := range worldAxes {
		if !m.axisEnabled(i) {
			continue
		}
		t, s, d := closestPoints(origin, dir, anchor, axis)
		if t > 0 && s >= 0 && s <= m.axisLength+m.tipLength && d < m.hitRadius {
			if t < minT {
				minT = t
				best = i
			}
		}
	}
	return best, best != axisNone
}

func (m *TranslateManipulator) Hit(camera *Camera, mouseX, mouseY int) bool {
	if camera == nil {
		return false
	}
	m.noteCamera(camera)
	m.ensureBounds()
	_, ok := m.pickHandle(camera, float64(mouseX), float64(mouseY))
	return ok
}

func (m *TranslateManipulator) ProcessMouseInput(camera *Camera, mouse *MouseState) {
	if camera == nil || mouse == nil {
		return
	}
	m.noteCamera(camera)
	m.ensureBounds()

	// Locked manipulators reject drag initiation outright.
	if m.selectionLocked {
		return
	}

	if !mouse.LeftPressed {
		m.dragging = false
		m.activeAxis = axisNone
		return
	}

	origin, dir := camera.ScreenRay(mouse.X, mouse.Y)

	if !m.dragging {
		handle, ok := m.pickHandle(camera, mouse.X, mouse.Y)
		if !ok {
			return
		}
		m.dragging = true
		m.activeAxis = handle
		m.dragAnchor = m.position
		if m.callback != nil {
			m.dragStartValue = m.callback.CurrValueVec()
		} else {
			m.dragStartValue = m.Position()
		}

		if handle == axisScreenPlane {
			m.dragPlaneNormal = camera.Forward().Mul(-1.0)
			if pt, ok := rayPlane(origin, dir, m.dragAnchor, m.dragPlaneNormal); ok {
				m.dragPlanePoint = pt
			}
		} else {
			_, s, _ := closestPoints(origin, dir, m.dragAnchor, worldAxes[handle])
			m.dragStartParam = s
		}
		return
	}

	var delta mgl32.Vec3
	if m.activeAxis == axisScreenPlane {
		pt, ok := rayPlane(origin, dir, m.dragAnchor, m.dragPlaneNormal)
		if !ok {
			return
		}
		delta = pt.Sub(m.dragPlanePoint)
	} else {
		axis := worldAxes[m.activeAxis]

		// Stable line intersection, guarded against near-parallel rays
		r := origin.Sub(m.dragAnchor)
		a := dir.Dot(dir)
		b := dir.Dot(axis)
		e := axis.Dot(axis)
		f := axis.Dot(r)
		det := a*e - b*b
		if det < 0.01 {
			return
		}
		c := dir.Dot(r)
		s := (a*f - b*c) / det
		delta = axis.Mul(s - m.dragStartParam)
	}

	value := m.dragStartValue.Add(delta)
	if m.callback != nil {
		m.callback.UpdateVec(value)
	}
	// The gizmo follows the candidate value; the target itself only moves
	// on commit.
	m.Init(value)
}

func (m *TranslateManipulator) Render(camera *Camera, renderUtil RenderUtil) {
	if renderUtil == nil {
		return
	}
	m.noteCamera(camera)
	m.ensureBounds()

	anchor := m.position
	for i, axis := range worldAxes {
		if !m.axisEnabled(i) {
			continue
		}
		color := axisColors[i]
		if m.dragging && m.activeAxis == i {
			color = ColorHighlight
		}
		renderUtil.RenderArrow(anchor, anchor.Add(axis.Mul(m.axisLength)), m.tipLength, color)
	}

	if m.screenPlaneEnabled() && camera != nil {
		color := ColorCenter
		if m.dragging && m.activeAxis == axisScreenPlane {
			color = ColorHighlight
		}
		renderUtil.RenderCircle(anchor, camera.Forward(), m.planeRadius, color)
	}
}
