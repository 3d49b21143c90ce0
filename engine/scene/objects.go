package scene

import "github.com/go-gl/mathgl/mgl32"

// Object renderers. Each draw block sets the full transform, a shading mode (solid
// color or texture), and a material before submitting its primitive, because the
// shader keeps whatever was bound last.

// renderTable draws the wooden table top the rest of the scene sits on.
func (c *composer) renderTable() {
	c.binder.SetTransformations(
		mgl32.Vec3{20.0, 0.6, 8.0},
		0, 0, 0,
		mgl32.Vec3{0.0, 0.2, -0.9},
	)
	c.binder.SetShaderTexture("table")
	c.binder.SetTextureUVScale(1.0, 1.0)
	c.binder.SetShaderMaterial("wood")
	c.meshes.DrawBoxMesh()
}

// renderBackdrop draws the flat plane standing behind the table. It is the one
// object that sets no material: the shader reuses whatever material was bound last.
func (c *composer) renderBackdrop() {
	c.binder.SetTransformations(
		mgl32.Vec3{20.0, 1.0, 20.0},
		90, 0, 0,
		mgl32.Vec3{0.0, 15.0, -10.0},
	)
	c.binder.SetShaderColor(0.75, 0.75, 0.75, 1.0)
	c.meshes.DrawPlaneMesh()
}

// renderCheeseWheel draws the cheese wheel as two cylinder passes over the same
// transform: the rind texture wraps the side wall, a separate texture stamps the top.
func (c *composer) renderCheeseWheel() {
	c.binder.SetTransformations(
		mgl32.Vec3{1.1, 0.8, 0.9},
		0, 0, 0,
		mgl32.Vec3{-1.0, 1.4, 0.0},
	)
	c.binder.SetShaderTexture("cheese_wheel_side")
	c.binder.SetTextureUVScale(5.0, 1.0)
	c.binder.SetShaderMaterial("cheese")
	c.meshes.DrawCylinderMesh(false, true, true)

	c.binder.SetShaderTexture("cheese_wheel_top")
	c.binder.SetTextureUVScale(1.0, 1.0)
	c.binder.SetShaderMaterial("cheese")
	c.meshes.DrawCylinderMesh(true, false, false)
}

// renderBook draws the hardcover book as three boxes: body, spine, and cover detail.
func (c *composer) renderBook() {
	// Main body, laying flat with a slight rotation.
	c.binder.SetTransformations(
		mgl32.Vec3{2.2, 0.08, 1.5},
		0, -12, 0,
		mgl32.Vec3{-1.2, 0.59, 0.3},
	)
	c.binder.SetShaderColor(1.0, 0.5, 0.1, 1.0)
	c.binder.SetShaderMaterial("wood")
	c.meshes.DrawBoxMesh()

	// Spine along the outer edge.
	c.binder.SetTransformations(
		mgl32.Vec3{0.08, 0.08, 1.5},
		0, -12, 0,
		mgl32.Vec3{-2.3, 0.59, 0.3},
	)
	c.binder.SetShaderColor(0.9, 0.4, 0.05, 1.0)
	c.binder.SetShaderMaterial("wood")
	c.meshes.DrawBoxMesh()

	// Cover detail. The y=0.57 places it marginally below the body's center; kept
	// as authored.
	c.binder.SetTransformations(
		mgl32.Vec3{2.15, 0.06, 1.45},
		0, -12, 0,
		mgl32.Vec3{-1.2, 0.57, 0.3},
	)
	c.binder.SetShaderColor(0.95, 0.95, 0.9, 1.0)
	c.binder.SetShaderMaterial("wood")
	c.meshes.DrawBoxMesh()
}

// renderWineGlass draws the stemless glass: a translucent cylindrical body plus a
// thin base disc.
func (c *composer) renderWineGlass() {
	c.binder.SetTransformations(
		mgl32.Vec3{1.0, 2.0, 1.0},
		0, 0, 0,
		mgl32.Vec3{6.0, 1.5, -1.5},
	)
	c.binder.SetShaderColor(0.7, 0.7, 0.8, 0.3)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawCylinderMesh(false, true, true)

	c.binder.SetTransformations(
		mgl32.Vec3{1.0, 0.1, 1.0},
		0, 0, 0,
		mgl32.Vec3{6.0, 0.55, -1.5},
	)
	c.binder.SetShaderColor(0.7, 0.7, 0.8, 0.3)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawCylinderMesh(true, false, false)
}

// renderWineBottle draws the dark green bottle: a half-sphere base seam, the
// cylindrical body, a half-sphere shoulder, the neck, and two torus rings at the lip.
func (c *composer) renderWineBottle() {
	// Base seam.
	c.binder.SetTransformations(
		mgl32.Vec3{0.9, 0.3, 0.9},
		0, 0, 180,
		mgl32.Vec3{4.0, 0.9, -2.6},
	)
	c.binder.SetShaderColor(0.06, 0.07, 0.06, 1.0)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawHalfSphereMesh()

	// Body.
	c.binder.SetTransformations(
		mgl32.Vec3{0.9, 4.0, 0.9},
		0, 0, 0,
		mgl32.Vec3{4.0, 0.9, -2.6},
	)
	c.binder.SetShaderColor(0.06, 0.07, 0.06, 1.0)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawCylinderMesh(false, false, true)

	// Shoulder.
	c.binder.SetTransformations(
		mgl32.Vec3{0.905, 0.9, 0.905},
		0, -6, 0,
		mgl32.Vec3{4.0, 4.9, -2.6},
	)
	c.binder.SetShaderColor(0.06, 0.07, 0.06, 1.0)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawHalfSphereMesh()

	// Neck.
	c.binder.SetTransformations(
		mgl32.Vec3{0.3, 2.0, 0.3},
		0, 0, 0,
		mgl32.Vec3{4.0, 5.6, -2.6},
	)
	c.binder.SetShaderColor(0.06, 0.07, 0.06, 1.0)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawCylinderMesh(false, false, true)

	// Lip rings, kept at their authored positions.
	c.binder.SetTransformations(
		mgl32.Vec3{0.32, 0.32, 1.5},
		90, 0, 0,
		mgl32.Vec3{-1.8, 7.4, -2.6},
	)
	c.binder.SetShaderColor(0.06, 0.07, 0.06, 1.0)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawTorusMesh()

	c.binder.SetTransformations(
		mgl32.Vec3{0.28, 0.28, 0.4},
		90, 0, 0,
		mgl32.Vec3{-1.8, 7.6, -2.6},
	)
	c.binder.SetShaderColor(0.06, 0.07, 0.06, 1.0)
	c.binder.SetShaderMaterial("glass")
	c.meshes.DrawTorusMesh()
}
