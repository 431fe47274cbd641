package manip

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTranslateScaleLawWithoutCamera(t *testing.T) {
	m := NewTranslateManipulator()
	m.Init(mgl32.Vec3{})

	// No camera: no compensation, the scaling factor is in world units
	if got := m.AxisLength(); math.Abs(float64(got-1.0)) > 1e-5 {
		t.Errorf("expected axis length 1 at scale 1, got %f", got)
	}

	prev := float32(0)
	for _, scale := range []float32{0.5, 1.0, 2.5, 10.0} {
		m.SetScale(scale, nil)
		got := m.AxisLength()
		if math.Abs(float64(got-scale)) > 1e-5 {
			t.Errorf("expected axis length %f, got %f", scale, got)
		}
		if got <= prev {
			t.Errorf("axis length should grow with scale: %f then %f", prev, got)
		}
		prev = got
	}
}

func TestTranslatePerspectiveCompensation(t *testing.T) {
	cam := testCamera()
	m := NewTranslateManipulator()
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	want := cam.WorldPerPixel(mgl32.Vec3{}) * referencePixelSize
	if got := m.AxisLength(); math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("expected compensated axis length %f, got %f", want, got)
	}

	// Moving the gizmo away from the camera grows its world-space extent
	far := NewTranslateManipulator()
	far.Init(mgl32.Vec3{0, 0, -10})
	far.UpdateBoundingVolumes(cam)
	if far.AxisLength() <= m.AxisLength() {
		t.Error("a farther gizmo should have a larger world-space extent")
	}
}

func TestTranslateHit(t *testing.T) {
	cam := testCamera()
	m := NewTranslateManipulator()
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	px, py, ok := cam.Project(mgl32.Vec3{1, 0, 0})
	if !ok {
		t.Fatal("probe point should project")
	}
	if !m.Hit(cam, int(px), int(py)) {
		t.Error("pick on the X axis bar should hit")
	}
	if m.Hit(cam, 10, 10) {
		t.Error("pick far away from the gizmo should miss")
	}
}

func TestTranslateAxisDrag(t *testing.T) {
	cam := testCamera()
	reg := NewTargetRegistry()
	target := NewTarget()
	id := reg.Add(target)

	m := NewTranslateManipulator()
	m.SetCallback(NewPositionCallback(reg, id))
	m.Init(target.Position)
	m.UpdateBoundingVolumes(cam)

	press := func(world mgl32.Vec3) *MouseState {
		px, py, ok := cam.Project(world)
		if !ok {
			t.Fatalf("point %v should project", world)
		}
		return &MouseState{X: float64(px), Y: float64(py), LeftPressed: true}
	}

	m.ProcessMouseInput(cam, press(mgl32.Vec3{1, 0, 0}))
	if !m.Dragging() || m.ActiveAxis() != 0 {
		t.Fatalf("expected a drag on the X axis, dragging=%v axis=%d", m.Dragging(), m.ActiveAxis())
	}

	m.ProcessMouseInput(cam, press(mgl32.Vec3{2, 0, 0}))

	got := m.Callback().CurrValueVec()
	if got.Sub(mgl32.Vec3{1, 0, 0}).Len() > 1e-2 {
		t.Errorf("expected candidate value (1,0,0), got %v", got)
	}
	if m.Position().Sub(got).Len() > 1e-5 {
		t.Error("the gizmo should follow the candidate value")
	}
	if target.Position != (mgl32.Vec3{}) {
		t.Errorf("the target must not move before commit, got %v", target.Position)
	}

	m.ProcessMouseInput(cam, &MouseState{LeftPressed: false})
	if m.Dragging() {
		t.Error("releasing the button should end the drag")
	}
}

func TestTranslateScreenPlaneDrag(t *testing.T) {
	cam := testCamera()
	m := NewTranslateManipulator()
	m.SetMode(ModeScreenPlane)
	m.SetCallback(NewVecCallback(mgl32.Vec3{}))
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	// The plane handle sits at the anchor, facing the camera
	m.ProcessMouseInput(cam, &MouseState{X: 400, Y: 400, LeftPressed: true})
	if !m.Dragging() || m.ActiveAxis() != axisScreenPlane {
		t.Fatalf("expected a screen plane drag, dragging=%v axis=%d", m.Dragging(), m.ActiveAxis())
	}

	px, py, ok := cam.Project(mgl32.Vec3{0.5, 0.3, 0})
	if !ok {
		t.Fatal("drag destination should project")
	}
	m.ProcessMouseInput(cam, &MouseState{X: float64(px), Y: float64(py), LeftPressed: true})

	got := m.Callback().CurrValueVec()
	if got.Sub(mgl32.Vec3{0.5, 0.3, 0}).Len() > 1e-2 {
		t.Errorf("expected candidate value (0.5,0.3,0), got %v", got)
	}
}

func TestTranslateLockedRejectsDrag(t *testing.T) {
	cam := testCamera()
	m := NewTranslateManipulator()
	m.SetCallback(NewVecCallback(mgl32.Vec3{}))
	m.SetSelectionLocked(true)
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	px, py, _ := cam.Project(mgl32.Vec3{1, 0, 0})
	m.ProcessMouseInput(cam, &MouseState{X: float64(px), Y: float64(py), LeftPressed: true})

	if m.Dragging() {
		t.Error("locked manipulators must refuse drag initiation")
	}
	if got := m.Callback().CurrValueVec(); got != (mgl32.Vec3{}) {
		t.Errorf("locked manipulators must not update the callback, got %v", got)
	}
}

func TestTranslateAxisModeRestrictsPicking(t *testing.T) {
	cam := testCamera()
	m := NewTranslateManipulator()
	m.SetMode(ModeAxisY)
	m.Init(mgl32.Vec3{})
	m.UpdateBoundingVolumes(cam)

	px, py, _ := cam.Project(mgl32.Vec3{1, 0, 0})
	if m.Hit(cam, int(px), int(py)) {
		t.Error("the X bar should be inactive in Y-only mode")
	}
	px, py, _ = cam.Project(mgl32.Vec3{0, 1, 0})
	if !m.Hit(cam, int(px), int(py)) {
		t.Error("the Y bar should stay pickable in Y-only mode")
	}
}
