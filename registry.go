package manip

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// TargetId identifies a transform target in a TargetRegistry. Callbacks hold
// ids instead of pointers so that a target outliving or outlasting its
// callback turns into a detectable lookup miss, never a dangling reference.
type TargetId string

func NewTargetId() TargetId {
	return TargetId(uuid.NewString())
}

// Target is the externally owned transform a manipulator edits.
type Target struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTarget() *Target {
	return &Target{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// TargetRegistry maps ids to live targets. Not goroutine safe; all access
// happens on the interactive thread alongside the manipulators.
type TargetRegistry struct {
	targets map[TargetId]*Target
}

func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{targets: make(map[TargetId]*Target)}
}

// Add registers a target under a fresh id.
func (r *TargetRegistry) Add(t *Target) TargetId {
	id := NewTargetId()
	r.targets[id] = t
	return id
}

// Lookup returns the target for id, or nil when it was never registered or
// has been removed. Callers must treat nil as "target gone" and no-op.
func (r *TargetRegistry) Lookup(id TargetId) *Target {
	return r.targets[id]
}

func (r *TargetRegistry) Remove(id TargetId) {
	delete(r.targets, id)
}

func (r *TargetRegistry) Len() int {
	return len(r.targets)
}
