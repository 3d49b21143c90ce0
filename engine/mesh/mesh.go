package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Meshes defines the interface for the primitive mesh library. Each primitive is
// loaded once into a shared vertex buffer and may be drawn any number of times; Load
// calls are idempotent. Draw calls submit geometry with whatever transform, shading,
// and material state is currently bound to the shader.
//
// All methods must be called on the thread owning the GL context.
type Meshes interface {
	// LoadBoxMesh builds the unit box primitive.
	LoadBoxMesh()
	// LoadPlaneMesh builds the plane primitive.
	LoadPlaneMesh()
	// LoadCylinderMesh builds the cylinder primitive with independently drawable
	// caps and side wall.
	LoadCylinderMesh()
	// LoadConeMesh builds the cone primitive.
	LoadConeMesh()
	// LoadPrismMesh builds the triangular prism primitive.
	LoadPrismMesh()
	// LoadPyramid4Mesh builds the 4-sided pyramid primitive.
	LoadPyramid4Mesh()
	// LoadSphereMesh builds the sphere primitive. The half-sphere primitive shares
	// its buffers.
	LoadSphereMesh()
	// LoadTaperedCylinderMesh builds the tapered cylinder primitive.
	LoadTaperedCylinderMesh()
	// LoadTorusMesh builds the torus primitive.
	LoadTorusMesh()

	// DrawBoxMesh draws the box primitive.
	DrawBoxMesh()
	// DrawPlaneMesh draws the plane primitive.
	DrawPlaneMesh()
	// DrawCylinderMesh draws the selected parts of the cylinder primitive.
	//
	// Parameters:
	//   - top: draw the top cap
	//   - bottom: draw the bottom cap
	//   - sides: draw the side wall
	DrawCylinderMesh(top, bottom, sides bool)
	// DrawConeMesh draws the cone primitive (side wall and base).
	DrawConeMesh()
	// DrawPrismMesh draws the triangular prism primitive.
	DrawPrismMesh()
	// DrawPyramid4Mesh draws the 4-sided pyramid primitive.
	DrawPyramid4Mesh()
	// DrawSphereMesh draws the full sphere primitive.
	DrawSphereMesh()
	// DrawHalfSphereMesh draws the upper hemisphere of the sphere primitive.
	DrawHalfSphereMesh()
	// DrawTaperedCylinderMesh draws the selected parts of the tapered cylinder
	// primitive.
	//
	// Parameters:
	//   - top: draw the top cap
	//   - bottom: draw the bottom cap
	//   - sides: draw the side wall
	DrawTaperedCylinderMesh(top, bottom, sides bool)
	// DrawTorusMesh draws the torus primitive.
	DrawTorusMesh()

	// Release deletes every loaded primitive's GPU buffers.
	Release()
}

// buffers holds the GL objects of one uploaded primitive.
type buffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// glMeshes is the OpenGL implementation of the Meshes interface.
type glMeshes struct {
	box      buffers
	plane    buffers
	cylinder buffers
	cone     buffers
	prism    buffers
	pyramid4 buffers
	sphere   buffers
	tapered  buffers
	torus    buffers

	cylinderParts   cylinderRanges
	coneParts       cylinderRanges
	taperedParts    cylinderRanges
	sphereHalfCount int32
}

// Ensure glMeshes implements Meshes interface.
var _ Meshes = &glMeshes{}

// NewGLMeshes creates an empty OpenGL mesh library. Primitives are uploaded lazily by
// their Load methods.
//
// Returns:
//   - Meshes: the newly created mesh library
func NewGLMeshes() Meshes {
	return &glMeshes{}
}

// upload creates the VAO/VBO/EBO for one primitive and configures the shared
// position/normal/UV vertex layout.
func upload(dst *buffers, verts []float32, indices []uint32) {
	if dst.vao != 0 {
		return
	}

	gl.GenVertexArrays(1, &dst.vao)
	gl.BindVertexArray(dst.vao)

	gl.GenBuffers(1, &dst.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, dst.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &dst.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, dst.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	dst.indexCount = int32(len(indices))
}

// draw renders a contiguous index range of a primitive.
func draw(b *buffers, r indexRange) {
	if b.vao == 0 || r.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.count, gl.UNSIGNED_INT, uintptr(r.first)*4)
	gl.BindVertexArray(0)
}

func (m *glMeshes) LoadBoxMesh() {
	verts, indices := boxGeometry()
	upload(&m.box, verts, indices)
}

func (m *glMeshes) LoadPlaneMesh() {
	verts, indices := planeGeometry()
	upload(&m.plane, verts, indices)
}

func (m *glMeshes) LoadCylinderMesh() {
	if m.cylinder.vao != 0 {
		return
	}
	verts, indices, parts := cylinderGeometry(1)
	upload(&m.cylinder, verts, indices)
	m.cylinderParts = parts
}

func (m *glMeshes) LoadConeMesh() {
	if m.cone.vao != 0 {
		return
	}
	verts, indices, parts := cylinderGeometry(0)
	upload(&m.cone, verts, indices)
	m.coneParts = parts
}

func (m *glMeshes) LoadPrismMesh() {
	verts, indices := prismGeometry()
	upload(&m.prism, verts, indices)
}

func (m *glMeshes) LoadPyramid4Mesh() {
	verts, indices := pyramid4Geometry()
	upload(&m.pyramid4, verts, indices)
}

func (m *glMeshes) LoadSphereMesh() {
	if m.sphere.vao != 0 {
		return
	}
	verts, indices, halfCount := sphereGeometry()
	upload(&m.sphere, verts, indices)
	m.sphereHalfCount = halfCount
}

func (m *glMeshes) LoadTaperedCylinderMesh() {
	if m.tapered.vao != 0 {
		return
	}
	verts, indices, parts := cylinderGeometry(0.5)
	upload(&m.tapered, verts, indices)
	m.taperedParts = parts
}

func (m *glMeshes) LoadTorusMesh() {
	verts, indices := torusGeometry()
	upload(&m.torus, verts, indices)
}

func (m *glMeshes) DrawBoxMesh() {
	draw(&m.box, indexRange{first: 0, count: m.box.indexCount})
}

func (m *glMeshes) DrawPlaneMesh() {
	draw(&m.plane, indexRange{first: 0, count: m.plane.indexCount})
}

func (m *glMeshes) DrawCylinderMesh(top, bottom, sides bool) {
	drawCylinderParts(&m.cylinder, m.cylinderParts, top, bottom, sides)
}

func (m *glMeshes) DrawConeMesh() {
	drawCylinderParts(&m.cone, m.coneParts, false, true, true)
}

func (m *glMeshes) DrawPrismMesh() {
	draw(&m.prism, indexRange{first: 0, count: m.prism.indexCount})
}

func (m *glMeshes) DrawPyramid4Mesh() {
	draw(&m.pyramid4, indexRange{first: 0, count: m.pyramid4.indexCount})
}

func (m *glMeshes) DrawSphereMesh() {
	draw(&m.sphere, indexRange{first: 0, count: m.sphere.indexCount})
}

func (m *glMeshes) DrawHalfSphereMesh() {
	draw(&m.sphere, indexRange{first: 0, count: m.sphereHalfCount})
}

func (m *glMeshes) DrawTaperedCylinderMesh(top, bottom, sides bool) {
	drawCylinderParts(&m.tapered, m.taperedParts, top, bottom, sides)
}

func (m *glMeshes) DrawTorusMesh() {
	draw(&m.torus, indexRange{first: 0, count: m.torus.indexCount})
}

func drawCylinderParts(b *buffers, parts cylinderRanges, top, bottom, sides bool) {
	if sides {
		draw(b, parts.sides)
	}
	if top {
		draw(b, parts.top)
	}
	if bottom {
		draw(b, parts.bottom)
	}
}

func (m *glMeshes) Release() {
	for _, b := range []*buffers{
		&m.box, &m.plane, &m.cylinder, &m.cone, &m.prism,
		&m.pyramid4, &m.sphere, &m.tapered, &m.torus,
	} {
		if b.vao == 0 {
			continue
		}
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
		gl.DeleteVertexArrays(1, &b.vao)
		*b = buffers{}
	}
}
