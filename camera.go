package manip

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the projection oracle consumed by hit-testing and bounding
// volume updates. Y-up, yaw/pitch in degrees. Zero values for Fov, Near,
// Far, Width and Height fall back to usable defaults on first use, so a
// partially filled camera still produces sane rays.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Fov    float32 // vertical field of view in degrees
	Near   float32
	Far    float32
	Width  int
	Height int
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Fov:    60.0,
		Near:   0.1,
		Far:    1000.0,
		Width:  width,
		Height: height,
	}
}

func (c *Camera) fov() float32 {
	if c.Fov <= 0 {
		return 60.0
	}
	return c.Fov
}

func (c *Camera) near() float32 {
	if c.Near <= 0 {
		return 0.1
	}
	return c.Near
}

func (c *Camera) far() float32 {
	if c.Far <= 0 {
		return 1000.0
	}
	return c.Far
}

func (c *Camera) aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1.0
	}
	return float32(c.Width) / float32(c.Height)
}

func (c *Camera) Forward() mgl32.Vec3 {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(-math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward())
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := c.Position
	return mgl32.LookAtV(eye, eye.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov()), c.aspect(), c.near(), c.far())
}

// Project maps a world position to screen pixels. ok is false for points
// behind (or too close to) the near plane or outside the viewport.
func (c *Camera) Project(pos mgl32.Vec3) (float32, float32, bool) {
	vp := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	clip := vp.Mul4x1(pos.Vec4(1.0))

	if clip.W() < c.near() {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1.0 / clip.W())

	w, h := float32(c.Width), float32(c.Height)
	x := (ndc.X()*0.5 + 0.5) * w
	y := (1.0 - (ndc.Y()*0.5 + 0.5)) * h

	if x < 0 || x > w || y < 0 || y > h {
		return x, y, false
	}
	return x, y, true
}

// ScreenRay builds a world-space pick ray through a screen pixel.
func (c *Camera) ScreenRay(mouseX, mouseY float64) (mgl32.Vec3, mgl32.Vec3) {
	// Normalized device coordinates, Y flipped
	nx := (2.0*float32(mouseX))/float32(c.Width) - 1.0
	ny := 1.0 - (2.0*float32(mouseY))/float32(c.Height)

	forward := c.Forward()
	right := c.Right()
	up := right.Cross(forward)

	fovRad := mgl32.DegToRad(c.fov())
	tanHalfFov := float32(math.Tan(float64(fovRad / 2.0)))

	dir := forward.
		Add(right.Mul(nx * c.aspect() * tanHalfFov)).
		Add(up.Mul(ny * tanHalfFov)).
		Normalize()

	return c.Position, dir
}

// DistanceTo returns the distance from the eye to a world position along the
// view direction. Points behind the camera yield zero.
func (c *Camera) DistanceTo(pos mgl32.Vec3) float32 {
	d := pos.Sub(c.Position).Dot(c.Forward())
	if d < 0 {
		return 0
	}
	return d
}

// WorldPerPixel returns the world-space extent covered by one vertical pixel
// at the depth of pos. This is the basis of the perspective scale
// compensation that keeps gizmos at a constant apparent size.
func (c *Camera) WorldPerPixel(pos mgl32.Vec3) float32 {
	if c.Height <= 0 {
		return 0
	}
	d := c.DistanceTo(pos)
	if d <= 0 {
		return 0
	}
	fovRad := mgl32.DegToRad(c.fov())
	viewHeight := 2.0 * d * float32(math.Tan(float64(fovRad/2.0)))
	return viewHeight / float32(c.Height)
}
