package manip

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRotateRingPick(t *testing.T) {
	cam := testCamera()
	m := NewRotateManipulator()
	m.SetMode(ModeAxisZ)
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	r := m.RingRadius()
	px, py, ok := cam.Project(mgl32.Vec3{r, 0, 0})
	if !ok {
		t.Fatal("ring point should project")
	}
	if !m.Hit(cam, int(px), int(py)) {
		t.Error("pick on the Z ring should hit")
	}

	// Center of the ring is outside the band
	if m.Hit(cam, 400, 400) {
		t.Error("pick at the ring center should miss")
	}
}

func TestRotateEdgeOnRingUnpickable(t *testing.T) {
	cam := testCamera()
	m := NewRotateManipulator()
	m.SetMode(ModeAxisY)
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	// The Y ring lies in the y=0 plane, seen edge-on from straight ahead
	if m.Hit(cam, 400, 400) {
		t.Error("an edge-on ring should never pick")
	}
}

func TestRotateDragQuarterTurn(t *testing.T) {
	cam := testCamera()
	reg := NewTargetRegistry()
	target := NewTarget()
	id := reg.Add(target)

	m := NewRotateManipulator()
	m.SetMode(ModeAxisZ)
	m.SetCallback(NewRotationCallback(reg, id))
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	r := m.RingRadius()
	press := func(world mgl32.Vec3) *MouseState {
		px, py, ok := cam.Project(world)
		if !ok {
			t.Fatalf("point %v should project", world)
		}
		return &MouseState{X: float64(px), Y: float64(py), LeftPressed: true}
	}

	m.ProcessMouseInput(cam, press(mgl32.Vec3{r, 0, 0}))
	if !m.Dragging() || m.ActiveAxis() != 2 {
		t.Fatalf("expected a drag on the Z ring, dragging=%v axis=%d", m.Dragging(), m.ActiveAxis())
	}

	// Drag the handle a quarter turn counter-clockwise
	m.ProcessMouseInput(cam, press(mgl32.Vec3{0, r, 0}))

	got := m.Callback().CurrValueQuat()
	rotated := got.Rotate(mgl32.Vec3{1, 0, 0})
	if rotated.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-2 {
		t.Errorf("expected +90 degrees about Z, X maps to %v", rotated)
	}
	if target.Rotation != mgl32.QuatIdent() {
		t.Error("the target must not rotate before commit")
	}
}

func TestRotateDragSignedAngle(t *testing.T) {
	cam := testCamera()
	m := NewRotateManipulator()
	m.SetMode(ModeAxisZ)
	m.SetCallback(NewQuatCallback(mgl32.QuatIdent()))
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	r := m.RingRadius()
	press := func(world mgl32.Vec3) *MouseState {
		px, py, _ := cam.Project(world)
		return &MouseState{X: float64(px), Y: float64(py), LeftPressed: true}
	}

	m.ProcessMouseInput(cam, press(mgl32.Vec3{r, 0, 0}))
	// Clockwise quarter turn gives a negative angle about Z
	m.ProcessMouseInput(cam, press(mgl32.Vec3{0, -r, 0}))

	rotated := m.Callback().CurrValueQuat().Rotate(mgl32.Vec3{1, 0, 0})
	if rotated.Sub(mgl32.Vec3{0, -1, 0}).Len() > 1e-2 {
		t.Errorf("expected -90 degrees about Z, X maps to %v", rotated)
	}
}

func TestRotateDragComposesWithStartRotation(t *testing.T) {
	cam := testCamera()
	start := mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 0, 1})

	m := NewRotateManipulator()
	m.SetMode(ModeAxisZ)
	m.SetCallback(NewQuatCallback(start))
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	r := m.RingRadius()
	press := func(world mgl32.Vec3) *MouseState {
		px, py, _ := cam.Project(world)
		return &MouseState{X: float64(px), Y: float64(py), LeftPressed: true}
	}

	m.ProcessMouseInput(cam, press(mgl32.Vec3{r, 0, 0}))
	m.ProcessMouseInput(cam, press(mgl32.Vec3{0, r, 0}))

	// 90 on top of 90 is a half turn: X maps to -X
	rotated := m.Callback().CurrValueQuat().Rotate(mgl32.Vec3{1, 0, 0})
	if rotated.Sub(mgl32.Vec3{-1, 0, 0}).Len() > 1e-2 {
		t.Errorf("expected composed half turn, X maps to %v", rotated)
	}
}
