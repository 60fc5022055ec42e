package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief a 4x4 matrix, typically used to represent object transformations.
 * Stored column-major, matching the GPU-side layout. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
}

/**
 * @brief Represents the placement of an object in the world: a scale,
 * per-axis Euler rotations in degrees and a position. The local matrix
 * is recalculated lazily whenever any of the three change.
 */
type Transform struct {
	/** @brief The per-axis scale. */
	Scale Vec3
	/** @brief The per-axis rotation, in degrees. */
	RotationDegrees Vec3
	/** @brief The position in the world. */
	Position Vec3
	/**
	 * @brief Indicates if the scale, rotation or position have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/** @brief The cached local transformation matrix. */
	Local Mat4
}
