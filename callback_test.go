package manip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCallbackTwoPhaseCommit(t *testing.T) {
	cb := NewVecCallback(mgl32.Vec3{1, 2, 3})

	cb.UpdateVec(mgl32.Vec3{4, 5, 6})
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cb.OldValueVec(), "update must not touch the old value")
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cb.CurrValueVec())

	cb.ApplyTransformation()
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cb.OldValueVec(), "commit collapses current into old")

	// Idempotent while current is unchanged
	cb.ApplyTransformation()
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cb.OldValueVec())
}

func TestBaseCallbackQuatKind(t *testing.T) {
	start := mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0})
	cb := NewQuatCallback(start)

	assert.Equal(t, start, cb.OldValueQuat())
	assert.Equal(t, mgl32.Vec3{}, cb.CurrValueVec(), "vector pair of a quat callback stays zero")

	next := mgl32.QuatRotate(1.0, mgl32.Vec3{0, 1, 0})
	cb.UpdateQuat(next)
	assert.Equal(t, start, cb.OldValueQuat())
	cb.ApplyTransformation()
	assert.Equal(t, next, cb.OldValueQuat())
}

func TestClosedCallbackDropsEverything(t *testing.T) {
	cb := NewVecCallback(mgl32.Vec3{1, 1, 1})
	cb.Close()
	require.True(t, cb.Closed())

	cb.UpdateVec(mgl32.Vec3{9, 9, 9})
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, cb.CurrValueVec(), "closed callbacks drop updates")

	cb.ApplyTransformation()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, cb.OldValueVec(), "closed callbacks drop commits")
}

func TestPositionCallbackWritesTargetOnCommit(t *testing.T) {
	reg := NewTargetRegistry()
	target := NewTarget()
	target.Position = mgl32.Vec3{1, 0, 0}
	id := reg.Add(target)

	cb := NewPositionCallback(reg, id)
	require.Equal(t, mgl32.Vec3{1, 0, 0}, cb.OldValueVec(), "callback seeds from the live target")

	cb.UpdateVec(mgl32.Vec3{5, 0, 0})
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, target.Position, "the target only moves on commit")

	cb.ApplyTransformation()
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, target.Position)
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, cb.OldValueVec())
}

func TestPositionCallbackMissingTarget(t *testing.T) {
	reg := NewTargetRegistry()
	id := reg.Add(NewTarget())
	cb := NewPositionCallback(reg, id)
	reg.Remove(id)

	cb.UpdateVec(mgl32.Vec3{3, 3, 3})
	cb.ApplyTransformation() // must not panic

	assert.Equal(t, mgl32.Vec3{3, 3, 3}, cb.OldValueVec(), "the local commit still happens")
}

func TestRotationCallbackWritesTargetOnCommit(t *testing.T) {
	reg := NewTargetRegistry()
	target := NewTarget()
	id := reg.Add(target)

	cb := NewRotationCallback(reg, id)
	rot := mgl32.QuatRotate(0.7, mgl32.Vec3{0, 0, 1})

	cb.UpdateQuat(rot)
	assert.Equal(t, mgl32.QuatIdent(), target.Rotation)

	cb.ApplyTransformation()
	assert.Equal(t, rot, target.Rotation)
}

func TestScaleCallbackWritesTargetOnCommit(t *testing.T) {
	reg := NewTargetRegistry()
	target := NewTarget()
	id := reg.Add(target)

	cb := NewScaleCallback(reg, id)
	require.Equal(t, mgl32.Vec3{1, 1, 1}, cb.OldValueVec())

	cb.UpdateVec(mgl32.Vec3{2, 1, 1})
	cb.ApplyTransformation()
	assert.Equal(t, mgl32.Vec3{2, 1, 1}, target.Scale)
}

func TestUpdateOldValuesResyncsFromTarget(t *testing.T) {
	reg := NewTargetRegistry()
	target := NewTarget()
	id := reg.Add(target)
	cb := NewPositionCallback(reg, id)

	// The target moved outside of a drag
	target.Position = mgl32.Vec3{7, 8, 9}
	cb.UpdateOldValues()

	assert.Equal(t, mgl32.Vec3{7, 8, 9}, cb.OldValueVec())
	assert.Equal(t, mgl32.Vec3{7, 8, 9}, cb.CurrValueVec())
}
