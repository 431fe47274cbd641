package manip

// Manager drives the caller side of the drag protocol for a set of
// manipulators sharing one input device: at most one drag at a time, drag
// initiation refused for locked or invisible gizmos, commit exactly once on
// release, cancel without commit on request.
//
// Everything here runs on the interactive thread; the Manager holds no
// locks and must not be shared across goroutines.
type Manager struct {
	log          Logger
	manipulators []Manipulator

	active     Manipulator
	lastCamera *Camera
	prevLeft   bool
}

func NewManager(log Logger) *Manager {
	if log == nil {
		log = NewNopLogger()
	}
	return &Manager{log: log}
}

func (mgr *Manager) Add(m Manipulator) {
	mgr.manipulators = append(mgr.manipulators, m)
}

// Active returns the manipulator currently being dragged, or nil.
func (mgr *Manager) Active() Manipulator {
	return mgr.active
}

// Update advances all manipulators one frame. The camera is also used to
// refresh bounding volumes so perspective compensation stays current while
// the camera moves.
func (mgr *Manager) Update(camera *Camera, mouse MouseState) {
	if camera == nil {
		return
	}
	mgr.lastCamera = camera

	justPressed := mouse.LeftPressed && !mgr.prevLeft
	justReleased := !mouse.LeftPressed && mgr.prevLeft
	mgr.prevLeft = mouse.LeftPressed

	for _, m := range mgr.manipulators {
		m.UpdateBoundingVolumes(camera)
	}

	if mgr.active == nil && justPressed {
		for _, m := range mgr.manipulators {
			if !m.Visible() || m.SelectionLocked() {
				continue
			}
			if m.Hit(camera, int(mouse.X), int(mouse.Y)) {
				mgr.active = m
				mgr.log.Debugf("drag start: gizmo type %d", m.Type())
				break
			}
		}
	}

	if mgr.active != nil {
		mgr.active.ProcessMouseInput(camera, &mouse)
	}

	if justReleased && mgr.active != nil {
		mgr.commit(mgr.active)
		mgr.active = nil
	}
}

func (mgr *Manager) commit(m Manipulator) {
	cb := m.Callback()
	if cb == nil {
		return
	}
	cb.ApplyTransformation()
	mgr.log.Debugf("drag commit: gizmo type %d", m.Type())

	if cb.ResetFollowMode() && m.Type() == GizmoTypeTranslation {
		m.Init(cb.CurrValueVec())
	}
}

// Cancel aborts the active drag without committing: the callback's old
// value, and therefore the target, stay untouched. The current value is
// rolled back to the old one so the gizmo snaps back in place.
func (mgr *Manager) Cancel() {
	if mgr.active == nil {
		return
	}
	if mgr.lastCamera != nil {
		released := MouseState{}
		mgr.active.ProcessMouseInput(mgr.lastCamera, &released)
	}
	if cb := mgr.active.Callback(); cb != nil {
		cb.UpdateVec(cb.OldValueVec())
		cb.UpdateQuat(cb.OldValueQuat())
		if mgr.active.Type() == GizmoTypeTranslation {
			mgr.active.Init(cb.OldValueVec())
		}
	}
	mgr.log.Debugf("drag cancelled: gizmo type %d", mgr.active.Type())
	mgr.active = nil
}

// Render draws all visible manipulators into the render target.
func (mgr *Manager) Render(camera *Camera, renderUtil RenderUtil) {
	for _, m := range mgr.manipulators {
		if !m.Visible() {
			continue
		}
		m.Render(camera, renderUtil)
	}
}

// Destroy releases every manipulator's owned callback without committing.
func (mgr *Manager) Destroy() {
	mgr.Cancel()
	for _, m := range mgr.manipulators {
		m.SetCallback(nil)
	}
	mgr.manipulators = nil
}
