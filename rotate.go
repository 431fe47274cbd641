package manip

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	rotateRingRadius = 1.0
	rotateHitWidth   = 0.15
)

// RotateManipulator spins the bound orientation around one of the world
// axes by dragging the matching ring.
type RotateManipulator struct {
	TransformationManipulator

	ringRadius float32
	hitWidth   float32

	dragging     bool
	activeAxis   int
	dragAnchor   mgl32.Vec3
	dragStartVec mgl32.Vec3
	dragStartRot mgl32.Quat
}

func NewRotateManipulator() *RotateManipulator {
	return &RotateManipulator{
		TransformationManipulator: newTransformationManipulator(1.0),
		activeAxis:                axisNone,
	}
}

func (m *RotateManipulator) Type() GizmoType { return GizmoTypeRotation }

func (m *RotateManipulator) Dragging() bool  { return m.dragging }
func (m *RotateManipulator) ActiveAxis() int { return m.activeAxis }

// RingRadius is the scaled radius of the rotation rings.
func (m *RotateManipulator) RingRadius() float32 {
	m.ensureBounds()
	return m.ringRadius
}

func (m *RotateManipulator) UpdateBoundingVolumes(camera *Camera) {
	m.noteCamera(camera)
	s := m.scalingFactor * m.compensation()
	m.ringRadius = rotateRingRadius * s
	m.hitWidth = rotateHitWidth * s
	m.boundsDirty = false
}

func (m *RotateManipulator) ensureBounds() {
	if m.boundsDirty {
		m.UpdateBoundingVolumes(m.lastCamera)
	}
}

// pickRing intersects the pick ray with each ring's plane and tests the
// distance from the ring band. Edge-on rings never intersect and are
// naturally unpickable.
func (m *RotateManipulator) pickRing(camera *Camera, mouseX, mouseY float64) (int, mgl32.Vec3, bool) {
	origin, dir := camera.ScreenRay(mouseX, mouseY)
	anchor := m.position

	best := axisNone
	var bestPoint mgl32.Vec3
	minBand := float32(1e20)

	for i, normal := range worldAxes {
		if !m.axisEnabled(i) {
			continue
		}
		pt, ok := rayPlane(origin, dir, anchor, normal)
		if !ok {
			continue
		}
		distFromCenter := pt.Sub(anchor).Len()
		band := float32(math.Abs(float64(distFromCenter - m.ringRadius)))
		if band < m.hitWidth && band < minBand {
			minBand = band
			best = i
			bestPoint = pt
		}
	}
	return best, bestPoint, best != axisNone
}

func (m *RotateManipulator) Hit(camera *Camera, mouseX, mouseY int) bool {
	if camera == nil {
		return false
	}
	m.noteCamera(camera)
	m.ensureBounds()
	_, _, ok := m.pickRing(camera, float64(mouseX), float64(mouseY))
	return ok
}

func (m *RotateManipulator) ProcessMouseInput(camera *Camera, mouse *MouseState) {
	if camera == nil || mouse == nil {
		return
	}
	m.noteCamera(camera)
	m.ensureBounds()

	if m.selectionLocked {
		return
	}

	if !mouse.LeftPressed {
		m.dragging = false
		m.activeAxis = axisNone
		return
	}

	if !m.dragging {
		ring, pt, ok := m.pickRing(camera, mouse.X, mouse.Y)
		if !ok {
			return
		}
		from := pt.Sub(m.position)
		if from.Len() < 1e-6 {
			return
		}
		m.dragging = true
		m.activeAxis = ring
		m.dragAnchor = m.position
		m.dragStartVec = from.Normalize()
		if m.callback != nil {
			m.dragStartRot = m.callback.CurrValueQuat()
		} else {
			m.dragStartRot = mgl32.QuatIdent()
		}
		return
	}

	axis := worldAxes[m.activeAxis]
	origin, dir := camera.ScreenRay(mouse.X, mouse.Y)
	pt, ok := rayPlane(origin, dir, m.dragAnchor, axis)
	if !ok {
		return
	}
	from := pt.Sub(m.dragAnchor)
	if from.Len() < 1e-6 {
		return
	}
	currVec := from.Normalize()

	// Signed angle between the drag-start vector and the current one
	cosTheta := mgl32.Clamp(currVec.Dot(m.dragStartVec), -1.0, 1.0)
	angle := float32(math.Acos(float64(cosTheta)))
	if m.dragStartVec.Cross(currVec).Dot(axis) < 0 {
		angle = -angle
	}

	if m.callback != nil {
		rot := mgl32.QuatRotate(angle, axis)
		m.callback.UpdateQuat(rot.Mul(m.dragStartRot).Normalize())
	}
}

func (m *RotateManipulator) Render(camera *Camera, renderUtil RenderUtil) {
	if renderUtil == nil {
		return
	}
	m.noteCamera(camera)
	m.ensureBounds()

	anchor := m.position
	for i, normal := range worldAxes {
		if !m.axisEnabled(i) {
			continue
		}
		color := axisColors[i]
		if m.dragging && m.activeAxis == i {
			color = ColorHighlight
		}
		renderUtil.RenderCircle(anchor, normal, m.ringRadius, color)
	}
}
