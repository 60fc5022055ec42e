package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

func TestNewMat4ModelIdentity(t *testing.T) {
	m := NewMat4Model(NewVec3One(), NewVec3Zero(), NewVec3Zero())
	assert.Equal(t, NewMat4Identity(), m)
}

func TestNewMat4ModelScaleBeforeTranslation(t *testing.T) {
	m := NewMat4Model(NewVec3(2, 1, 1), NewVec3Zero(), NewVec3(5, 0, 0))

	origin := m.MulVec3(NewVec3Zero())
	assert.True(t, origin.Compare(NewVec3(5, 0, 0), tolerance), "origin maps to the translation")

	unitX := m.MulVec3(NewVec3(1, 0, 0))
	assert.True(t, unitX.Compare(NewVec3(7, 0, 0), tolerance), "x is scaled by 2 before translating by 5")
}

func TestNewMat4ModelRotationYRightHanded(t *testing.T) {
	m := NewMat4Model(NewVec3One(), NewVec3(0, 90, 0), NewVec3Zero())

	// Right-handed convention: +90 degrees about Y sends +X to -Z.
	p := m.MulVec3(NewVec3(1, 0, 0))
	assert.True(t, p.Compare(NewVec3(0, 0, -1), tolerance), "got %v", p)
}

func TestNewMat4ModelRotationAppliesAfterScale(t *testing.T) {
	// Scale x by 2, then rotate +90 about Y: (1,0,0) -> (2,0,0) -> (0,0,-2).
	m := NewMat4Model(NewVec3(2, 1, 1), NewVec3(0, 90, 0), NewVec3Zero())
	p := m.MulVec3(NewVec3(1, 0, 0))
	assert.True(t, p.Compare(NewVec3(0, 0, -2), tolerance), "got %v", p)
}

func TestNewMat4ModelAxisOrder(t *testing.T) {
	// With X and Z both at 90 degrees the order of application is visible:
	// Rz first sends +X to +Y, then Rx sends +Y to +Z. The reverse order
	// would land on +Y instead.
	m := NewMat4Model(NewVec3One(), NewVec3(90, 0, 90), NewVec3Zero())
	p := m.MulVec3(NewVec3(1, 0, 0))
	assert.True(t, p.Compare(NewVec3(0, 0, 1), tolerance), "got %v", p)
}

func TestTransformGetLocalCaches(t *testing.T) {
	tr := TransformFrom(NewVec3(1, 1, 1), NewVec3Zero(), NewVec3(1, 2, 3))
	first := tr.GetLocal()
	assert.False(t, tr.IsDirty)
	assert.Equal(t, first, tr.GetLocal())

	tr.SetPosition(NewVec3(4, 5, 6))
	assert.True(t, tr.IsDirty)
	moved := tr.GetLocal()
	assert.True(t, moved.MulVec3(NewVec3Zero()).Compare(NewVec3(4, 5, 6), tolerance))
}

func TestMat4MulAppliesReceiverFirst(t *testing.T) {
	s := NewMat4Scale(NewVec3(2, 2, 2))
	tr := NewMat4Translation(NewVec3(1, 0, 0))

	// scale then translate
	p := s.Mul(tr).MulVec3(NewVec3(1, 0, 0))
	assert.True(t, p.Compare(NewVec3(3, 0, 0), tolerance), "got %v", p)

	// translate then scale
	p = tr.Mul(s).MulVec3(NewVec3(1, 0, 0))
	assert.True(t, p.Compare(NewVec3(4, 0, 0), tolerance), "got %v", p)
}
