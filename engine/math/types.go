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

/** @brief A 3x3 matrix in column-major order. Typically used to transform
 * directions, most notably surface normals under a non-rigid model transform. */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float32
}

/** @brief A 4x4 matrix in column-major order, typically used to represent
 * object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents a single vertex in 3D space, in object-space coordinates.
 * The attribute order (position, normal, texcoord) is fixed and mirrored by
 * the pipeline interface description in the shading package.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. Carried through the
	 * vertex layout for pipeline compatibility but never sampled. */
	Texcoord Vec2
}
