package manip

import (
	"github.com/go-gl/mathgl/mgl32"
)

const handleUniform = 4

const (
	scaleAxisLength = 1.0
	scaleTipHalf    = 0.1
	scaleHitRadius  = 0.15
	scaleCenterHalf = 0.18
	minScaleFactor  = 0.1
)

// ScaleManipulator scales the bound value per axis through the box-tipped
// bars, or uniformly through the center box.
type ScaleManipulator struct {
	TransformationManipulator

	axisLength float32
	tipHalf    float32
	hitRadius  float32
	centerHalf float32

	dragging       bool
	activeHandle   int
	dragAnchor     mgl32.Vec3
	dragStartParam float32
	dragStartMouse float64
	dragStartValue mgl32.Vec3
}

func NewScaleManipulator() *ScaleManipulator {
	return &ScaleManipulator{
		TransformationManipulator: newTransformationManipulator(1.0),
		activeHandle:              axisNone,
	}
}

func (m *ScaleManipulator) Type() GizmoType { return GizmoTypeScale }

func (m *ScaleManipulator) Dragging() bool    { return m.dragging }
func (m *ScaleManipulator) ActiveHandle() int { return m.activeHandle }

// AxisLength is the scaled half-extent of the gizmo's bounding volume.
func (m *ScaleManipulator) AxisLength() float32 {
	m.ensureBounds()
	return m.axisLength
}

func (m *ScaleManipulator) UpdateBoundingVolumes(camera *Camera) {
	m.noteCamera(camera)
	s := m.scalingFactor * m.compensation()
	m.axisLength = scaleAxisLength * s
	m.tipHalf = scaleTipHalf * s
	m.hitRadius = scaleHitRadius * s
	m.centerHalf = scaleCenterHalf * s
	m.boundsDirty = false
}

func (m *ScaleManipulator) ensureBounds() {
	if m.boundsDirty {
		m.UpdateBoundingVolumes(m.lastCamera)
	}
}

// pickHandle prefers the uniform center box, then the axis bars.
func (m *ScaleManipulator) pickHandle(camera *Camera, mouseX, mouseY float64) (int, bool) {
	origin, dir := camera.ScreenRay(mouseX, mouseY)
	anchor := m.position

	if rayPointDistance(origin, dir, anchor) < m.centerHalf {
		return handleUniform, true
	}

	best := axisNone
	minT := float32(1e20)
	for i, axis := range worldAxes {
		if !m.axisEnabled(i) {
			continue
		}
		t, s, d := closestPoints(origin, dir, anchor, axis)
		if t > 0 && s >= 0 && s <= m.axisLength+m.tipHalf && d < m.hitRadius {
			if t < minT {
				minT = t
				best = i
			}
		}
	}
	return best, best != axisNone
}

func (m *ScaleManipulator) Hit(camera *Camera, mouseX, mouseY int) bool {
	if camera == nil {
		return false
	}
	m.noteCamera(camera)
	m.ensureBounds()
	_, ok := m.pickHandle(camera, float64(mouseX), float64(mouseY))
	return ok
}

func (m *ScaleManipulator) ProcessMouseInput(camera *Camera, mouse *MouseState) {
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
		m.activeHandle = axisNone
		return
	}

	if !m.dragging {
		handle, ok := m.pickHandle(camera, mouse.X, mouse.Y)
		if !ok {
			return
		}
		m.dragging = true
		m.activeHandle = handle
		m.dragAnchor = m.position
		m.dragStartMouse = mouse.X
		if m.callback != nil {
			m.dragStartValue = m.callback.CurrValueVec()
		} else {
			m.dragStartValue = mgl32.Vec3{1, 1, 1}
		}

		if handle != handleUniform {
			origin, dir := camera.ScreenRay(mouse.X, mouse.Y)
			_, s, _ := closestPoints(origin, dir, m.dragAnchor, worldAxes[handle])
			m.dragStartParam = s
		}
		return
	}

	var factor float32
	if m.activeHandle == handleUniform {
		// Horizontal mouse travel maps to the uniform factor
		factor = 1.0 + float32(mouse.X-m.dragStartMouse)*0.01
	} else {
		origin, dir := camera.ScreenRay(mouse.X, mouse.Y)
		axis := worldAxes[m.activeHandle]

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
		factor = 1.0 + (s-m.dragStartParam)/m.axisLength
	}
	if factor < minScaleFactor {
		factor = minScaleFactor
	}

	value := m.dragStartValue
	if m.activeHandle == handleUniform {
		value = value.Mul(factor)
	} else {
		value[m.activeHandle] = m.dragStartValue[m.activeHandle] * factor
	}
	if m.callback != nil {
		m.callback.UpdateVec(value)
	}
}

func (m *ScaleManipulator) Render(camera *Camera, renderUtil RenderUtil) {
	if renderUtil == nil {
		return
	}
	m.noteCamera(camera)
	m.ensureBounds()

	anchor := m.position
	tip := mgl32.Vec3{m.tipHalf, m.tipHalf, m.tipHalf}

	for i, axis := range worldAxes {
		if !m.axisEnabled(i) {
			continue
		}
		color := axisColors[i]
		if m.dragging && m.activeHandle == i {
			color = ColorHighlight
		}
		end := anchor.Add(axis.Mul(m.axisLength))
		renderUtil.RenderLine(anchor, end, color)
		renderUtil.RenderAABB(end, tip, color)
	}

	color := ColorCenter
	if m.dragging && m.activeHandle == handleUniform {
		color = ColorHighlight
	}
	renderUtil.RenderAABB(anchor, mgl32.Vec3{m.centerHalf, m.centerHalf, m.centerHalf}, color)
}
