package mesh

import "math"

// Vertex layout shared by every primitive: position (3), normal (3), UV (2),
// interleaved, 8 floats per vertex.
const floatsPerVertex = 8

const (
	radialSegments = 36
	sphereStacks   = 30
	sphereSlices   = 30
	torusSegments  = 36
	tubeSegments   = 18

	torusRingRadius = 0.8
	torusTubeRadius = 0.2
)

// indexRange addresses a contiguous run of a primitive's index buffer, so parts of a
// primitive (cylinder caps vs. sides) can be drawn independently.
type indexRange struct {
	first int32
	count int32
}

// cylinderRanges carries the three independently drawable parts of a cylinder-like
// primitive.
type cylinderRanges struct {
	sides  indexRange
	top    indexRange
	bottom indexRange
}

type geometryBuilder struct {
	verts   []float32
	indices []uint32
}

func (g *geometryBuilder) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(len(g.verts) / floatsPerVertex)
	g.verts = append(g.verts, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (g *geometryBuilder) triangle(a, b, c uint32) {
	g.indices = append(g.indices, a, b, c)
}

func (g *geometryBuilder) quad(a, b, c, d uint32) {
	g.triangle(a, b, c)
	g.triangle(a, c, d)
}

// boxGeometry builds a unit cube centered at the origin, one quad per face with face
// normals and full [0,1] UVs.
func boxGeometry() ([]float32, []uint32) {
	g := &geometryBuilder{}
	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		var idx [4]uint32
		for i, c := range f.corners {
			idx[i] = g.vertex(c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		g.quad(idx[0], idx[1], idx[2], idx[3])
	}
	return g.verts, g.indices
}

// planeGeometry builds a 2x2 plane in the XZ plane at y=0 with a +Y normal.
func planeGeometry() ([]float32, []uint32) {
	g := &geometryBuilder{}
	a := g.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	b := g.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	c := g.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	d := g.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	g.quad(a, b, c, d)
	return g.verts, g.indices
}

// cylinderGeometry builds a cylinder with base radius 1 sitting on y=0, height 1, and
// the given top radius (1 for a straight cylinder, <1 for a taper, 0 for a cone).
// The side wall and the two caps occupy separate index ranges so they can be drawn
// independently.
func cylinderGeometry(topRadius float32) ([]float32, []uint32, cylinderRanges) {
	g := &geometryBuilder{}
	var ranges cylinderRanges

	// Side wall. The normal accounts for the taper slope.
	slopeY := 1 - topRadius
	bottomRing := make([]uint32, radialSegments+1)
	topRing := make([]uint32, radialSegments+1)
	for i := 0; i <= radialSegments; i++ {
		angle := 2 * math.Pi * float64(i) / radialSegments
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		nx, ny, nz := normalize3(c, slopeY, s)
		u := float32(i) / radialSegments
		bottomRing[i] = g.vertex(c, 0, s, nx, ny, nz, u, 0)
		topRing[i] = g.vertex(c*topRadius, 1, s*topRadius, nx, ny, nz, u, 1)
	}
	for i := 0; i < radialSegments; i++ {
		g.quad(bottomRing[i], topRing[i], topRing[i+1], bottomRing[i+1])
	}
	ranges.sides = indexRange{first: 0, count: int32(len(g.indices))}

	// Top cap.
	topStart := int32(len(g.indices))
	center := g.vertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	ring := make([]uint32, radialSegments+1)
	for i := 0; i <= radialSegments; i++ {
		angle := 2 * math.Pi * float64(i) / radialSegments
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		ring[i] = g.vertex(c*topRadius, 1, s*topRadius, 0, 1, 0, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < radialSegments; i++ {
		g.triangle(center, ring[i+1], ring[i])
	}
	ranges.top = indexRange{first: topStart, count: int32(len(g.indices)) - topStart}

	// Bottom cap.
	bottomStart := int32(len(g.indices))
	center = g.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= radialSegments; i++ {
		angle := 2 * math.Pi * float64(i) / radialSegments
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		ring[i] = g.vertex(c, 0, s, 0, -1, 0, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < radialSegments; i++ {
		g.triangle(center, ring[i], ring[i+1])
	}
	ranges.bottom = indexRange{first: bottomStart, count: int32(len(g.indices)) - bottomStart}

	return g.verts, g.indices, ranges
}

// sphereGeometry builds a unit UV sphere centered at the origin. Indices run from the
// top stack down, so the first halfCount indices cover the upper hemisphere (y >= 0)
// and back the half-sphere primitive.
func sphereGeometry() ([]float32, []uint32, int32) {
	g := &geometryBuilder{}
	for i := 0; i <= sphereStacks; i++ {
		phi := math.Pi * float64(i) / sphereStacks
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for j := 0; j <= sphereSlices; j++ {
			theta := 2 * math.Pi * float64(j) / sphereSlices
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			g.vertex(x, y, z, x, y, z, float32(j)/sphereSlices, 1-float32(i)/sphereStacks)
		}
	}
	rowLen := uint32(sphereSlices + 1)
	for i := 0; i < sphereStacks; i++ {
		for j := 0; j < sphereSlices; j++ {
			a := uint32(i)*rowLen + uint32(j)
			b := a + rowLen
			g.quad(a, b, b+1, a+1)
		}
	}
	halfCount := int32(sphereStacks / 2 * sphereSlices * 6)
	return g.verts, g.indices, halfCount
}

// torusGeometry builds a torus in the XY plane (hole axis along Z) with ring radius
// 0.8 and tube radius 0.2.
func torusGeometry() ([]float32, []uint32) {
	g := &geometryBuilder{}
	for i := 0; i <= torusSegments; i++ {
		u := 2 * math.Pi * float64(i) / torusSegments
		cu := float32(math.Cos(u))
		su := float32(math.Sin(u))
		for j := 0; j <= tubeSegments; j++ {
			v := 2 * math.Pi * float64(j) / tubeSegments
			cv := float32(math.Cos(v))
			sv := float32(math.Sin(v))
			px := (torusRingRadius + torusTubeRadius*cv) * cu
			py := (torusRingRadius + torusTubeRadius*cv) * su
			pz := torusTubeRadius * sv
			g.vertex(px, py, pz, cv*cu, cv*su, sv,
				float32(i)/torusSegments, float32(j)/tubeSegments)
		}
	}
	rowLen := uint32(tubeSegments + 1)
	for i := 0; i < torusSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			a := uint32(i)*rowLen + uint32(j)
			b := a + rowLen
			g.quad(a, b, b+1, a+1)
		}
	}
	return g.verts, g.indices
}

// prismGeometry builds a triangular prism extruded along Z, cross-section triangle
// (-0.5,-0.5), (0.5,-0.5), (0,0.5) in XY, depth 1.
func prismGeometry() ([]float32, []uint32) {
	g := &geometryBuilder{}
	tri := [3][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}
	uvs := [3][2]float32{{0, 0}, {1, 0}, {0.5, 1}}

	// Front and back faces.
	var front, back [3]uint32
	for i, p := range tri {
		front[i] = g.vertex(p[0], p[1], 0.5, 0, 0, 1, uvs[i][0], uvs[i][1])
	}
	g.triangle(front[0], front[1], front[2])
	for i, p := range tri {
		back[i] = g.vertex(p[0], p[1], -0.5, 0, 0, -1, uvs[i][0], uvs[i][1])
	}
	g.triangle(back[2], back[1], back[0])

	// Side walls, one quad per triangle edge with an outward face normal.
	for i := 0; i < 3; i++ {
		p0 := tri[i]
		p1 := tri[(i+1)%3]
		ex, ey := p1[0]-p0[0], p1[1]-p0[1]
		nx, ny, _ := normalize3(ey, -ex, 0)
		a := g.vertex(p0[0], p0[1], 0.5, nx, ny, 0, 0, 0)
		b := g.vertex(p1[0], p1[1], 0.5, nx, ny, 0, 1, 0)
		c := g.vertex(p1[0], p1[1], -0.5, nx, ny, 0, 1, 1)
		d := g.vertex(p0[0], p0[1], -0.5, nx, ny, 0, 0, 1)
		g.quad(a, b, c, d)
	}
	return g.verts, g.indices
}

// pyramid4Geometry builds a 4-sided pyramid with a unit square base at y=-0.5 and
// apex at (0, 0.5, 0), face normals on the slanted sides.
func pyramid4Geometry() ([]float32, []uint32) {
	g := &geometryBuilder{}
	base := [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}

	// Slanted sides. The face normal is the cross product of the two edges leaving
	// the first base corner.
	for i := 0; i < 4; i++ {
		p0 := base[i]
		p1 := base[(i+1)%4]
		e1 := [3]float32{p1[0] - p0[0], 0, p1[1] - p0[1]}
		e2 := [3]float32{0 - p0[0], 1, 0 - p0[1]}
		nx, ny, nz := normalize3(
			e2[1]*e1[2]-e2[2]*e1[1],
			e2[2]*e1[0]-e2[0]*e1[2],
			e2[0]*e1[1]-e2[1]*e1[0],
		)
		a := g.vertex(p0[0], -0.5, p0[1], nx, ny, nz, 0, 0)
		b := g.vertex(p1[0], -0.5, p1[1], nx, ny, nz, 1, 0)
		apex := g.vertex(0, 0.5, 0, nx, ny, nz, 0.5, 1)
		g.triangle(a, apex, b)
	}

	// Base.
	var idx [4]uint32
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, p := range base {
		idx[i] = g.vertex(p[0], -0.5, p[1], 0, -1, 0, uvs[i][0], uvs[i][1])
	}
	g.quad(idx[0], idx[1], idx[2], idx[3])
	return g.verts, g.indices
}

func normalize3(x, y, z float32) (float32, float32, float32) {
	l := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}
