package manip

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ManipulatorCallback tracks the value edited by a manipulator. One instance
// is bound to exactly one value kind (vector or quaternion) at construction;
// the other kind's accessors return identity values and are never meaningful.
//
// The commit protocol is two-phase: UpdateVec/UpdateQuat only move the
// current value, and ApplyTransformation collapses current into old and, on
// callbacks bound to a registry target, pushes the value onto the target.
// A drag that should be cancelled simply never calls ApplyTransformation.
type ManipulatorCallback interface {
	UpdateVec(value mgl32.Vec3)
	UpdateQuat(value mgl32.Quat)

	CurrValueVec() mgl32.Vec3
	CurrValueQuat() mgl32.Quat
	OldValueVec() mgl32.Vec3
	OldValueQuat() mgl32.Quat

	// UpdateOldValues re-synchronizes the old value from the live target,
	// for when the target changes outside of a drag. No-op on the base.
	UpdateOldValues()

	// ApplyTransformation commits: old := current, plus the external write
	// on target-bound callbacks. Idempotent while current is unchanged.
	ApplyTransformation()

	// ResetFollowMode reports whether the manipulator should re-center on
	// the target after a commit.
	ResetFollowMode() bool

	// Close invalidates the callback. A closed callback drops updates and
	// commits. Closing does not imply a commit.
	Close()
	Closed() bool
}

// BaseCallback implements the local half of the protocol: it stores the
// before/after value pair and never touches any external object. Concrete
// callbacks embed it and add the external write in ApplyTransformation.
type BaseCallback struct {
	oldVec   mgl32.Vec3
	currVec  mgl32.Vec3
	oldQuat  mgl32.Quat
	currQuat mgl32.Quat

	resetFollow bool
	closed      bool
}

// NewVecCallback binds the callback to a vector value. The quaternion pair
// holds identity.
func NewVecCallback(oldValue mgl32.Vec3) *BaseCallback {
	return &BaseCallback{
		oldVec:   oldValue,
		currVec:  oldValue,
		oldQuat:  mgl32.QuatIdent(),
		currQuat: mgl32.QuatIdent(),
	}
}

// NewQuatCallback binds the callback to a quaternion value. The vector pair
// holds zero.
func NewQuatCallback(oldValue mgl32.Quat) *BaseCallback {
	return &BaseCallback{
		oldQuat:  oldValue,
		currQuat: oldValue,
	}
}

func (c *BaseCallback) UpdateVec(value mgl32.Vec3) {
	if c.closed {
		return
	}
	c.currVec = value
}

func (c *BaseCallback) UpdateQuat(value mgl32.Quat) {
	if c.closed {
		return
	}
	c.currQuat = value
}

func (c *BaseCallback) CurrValueVec() mgl32.Vec3   { return c.currVec }
func (c *BaseCallback) CurrValueQuat() mgl32.Quat  { return c.currQuat }
func (c *BaseCallback) OldValueVec() mgl32.Vec3    { return c.oldVec }
func (c *BaseCallback) OldValueQuat() mgl32.Quat   { return c.oldQuat }
func (c *BaseCallback) UpdateOldValues()           {}
func (c *BaseCallback) ResetFollowMode() bool      { return c.resetFollow }
func (c *BaseCallback) SetResetFollowMode(on bool) { c.resetFollow = on }

// commitLocal is the local phase of ApplyTransformation, shared by all
// callbacks: collapse the current value into the old one.
func (c *BaseCallback) commitLocal() {
	if c.closed {
		return
	}
	c.oldVec = c.currVec
	c.oldQuat = c.currQuat
}

func (c *BaseCallback) ApplyTransformation() { c.commitLocal() }

func (c *BaseCallback) Close()       { c.closed = true }
func (c *BaseCallback) Closed() bool { return c.closed }

// PositionCallback edits a target's position through the registry.
type PositionCallback struct {
	BaseCallback
	registry *TargetRegistry
	target   TargetId
}

func NewPositionCallback(registry *TargetRegistry, target TargetId) *PositionCallback {
	old := mgl32.Vec3{}
	if t := registry.Lookup(target); t != nil {
		old = t.Position
	}
	return &PositionCallback{
		BaseCallback: *NewVecCallback(old),
		registry:     registry,
		target:       target,
	}
}

func (c *PositionCallback) ApplyTransformation() {
	if c.Closed() {
		return
	}
	c.commitLocal()
	if t := c.registry.Lookup(c.target); t != nil {
		t.Position = c.CurrValueVec()
	}
}

func (c *PositionCallback) UpdateOldValues() {
	if c.Closed() {
		return
	}
	if t := c.registry.Lookup(c.target); t != nil {
		c.oldVec = t.Position
		c.currVec = t.Position
	}
}

// RotationCallback edits a target's rotation through the registry.
type RotationCallback struct {
	BaseCallback
	registry *TargetRegistry
	target   TargetId
}

func NewRotationCallback(registry *TargetRegistry, target TargetId) *RotationCallback {
	old := mgl32.QuatIdent()
	if t := registry.Lookup(target); t != nil {
		old = t.Rotation
	}
	return &RotationCallback{
		BaseCallback: *NewQuatCallback(old),
		registry:     registry,
		target:       target,
	}
}

func (c *RotationCallback) ApplyTransformation() {
	if c.Closed() {
		return
	}
	c.commitLocal()
	if t := c.registry.Lookup(c.target); t != nil {
		t.Rotation = c.CurrValueQuat()
	}
}

func (c *RotationCallback) UpdateOldValues() {
	if c.Closed() {
		return
	}
	if t := c.registry.Lookup(c.target); t != nil {
		c.oldQuat = t.Rotation
		c.currQuat = t.Rotation
	}
}

// ScaleCallback edits a target's scale through the registry.
type ScaleCallback struct {
	BaseCallback
	registry *TargetRegistry
	target   TargetId
}

func NewScaleCallback(registry *TargetRegistry, target TargetId) *ScaleCallback {
	old := mgl32.Vec3{1, 1, 1}
	if t := registry.Lookup(target); t != nil {
		old = t.Scale
	}
	return &ScaleCallback{
		BaseCallback: *NewVecCallback(old),
		registry:     registry,
		target:       target,
	}
}

func (c *ScaleCallback) ApplyTransformation() {
	if c.Closed() {
		return
	}
	c.commitLocal()
	if t := c.registry.Lookup(c.target); t != nil {
		t.Scale = c.CurrValueVec()
	}
}

func (c *ScaleCallback) UpdateOldValues() {
	if c.Closed() {
		return
	}
	if t := c.registry.Lookup(c.target); t != nil {
		c.oldVec = t.Scale
		c.currVec = t.Scale
	}
}
