package math

/**
 * @brief Builds a model matrix from the given scale, per-axis Euler rotations
 * in degrees and position. The composition order is fixed:
 *
 *   M = Translation * RotX * RotY * RotZ * Scale
 *
 * i.e. against a column vector the object is scaled first, then rotated about
 * Z, Y and X, then translated. Each axis rotation is built independently;
 * the order is a hard contract, reordering silently changes the scene.
 *
 * @param scale The per-axis scale.
 * @param rotationDegrees The per-axis rotation, in degrees.
 * @param position The translation.
 * @return The composed model matrix.
 */
func NewMat4Model(scale Vec3, rotationDegrees Vec3, position Vec3) Mat4 {
	s := NewMat4Scale(scale)
	rx := NewMat4EulerX(DegToRad(rotationDegrees.X))
	ry := NewMat4EulerY(DegToRad(rotationDegrees.Y))
	rz := NewMat4EulerZ(DegToRad(rotationDegrees.Z))
	t := NewMat4Translation(position)

	// Mul applies the receiver first, so this reads left-to-right in
	// application order and yields T * RotX * RotY * RotZ * S.
	return s.Mul(rz).Mul(ry).Mul(rx).Mul(t)
}

func TransformCreate() *Transform {
	t := &Transform{}
	t.SetScaleRotationPosition(NewVec3One(), NewVec3Zero(), NewVec3Zero())
	t.Local = NewMat4Identity()
	return t
}

func TransformFrom(scale Vec3, rotationDegrees Vec3, position Vec3) *Transform {
	t := &Transform{}
	t.SetScaleRotationPosition(scale, rotationDegrees, position)
	t.Local = NewMat4Identity()
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) SetRotationDegrees(rotationDegrees Vec3) {
	t.RotationDegrees = rotationDegrees
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetScaleRotationPosition(scale Vec3, rotationDegrees Vec3, position Vec3) {
	t.Scale = scale
	t.RotationDegrees = rotationDegrees
	t.Position = position
	t.IsDirty = true
}

// GetLocal returns the local matrix, recalculating it first if any component
// changed since the last call.
func (t *Transform) GetLocal() Mat4 {
	if t != nil {
		if t.IsDirty {
			t.Local = NewMat4Model(t.Scale, t.RotationDegrees, t.Position)
			t.IsDirty = false
		}
		return t.Local
	}
	return NewMat4Identity()
}
