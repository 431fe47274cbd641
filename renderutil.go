package manip

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// RenderUtil receives wireframe drawing commands for gizmo geometry. The
// manipulators only issue calls; interpretation belongs to the backend.
type RenderUtil interface {
	RenderLine(start, end mgl32.Vec3, color [4]float32)
	RenderCircle(center, normal mgl32.Vec3, radius float32, color [4]float32)
	RenderSphere(center mgl32.Vec3, radius float32, color [4]float32)
	RenderAABB(center, halfExtents mgl32.Vec3, color [4]float32)
	RenderArrow(start, end mgl32.Vec3, tipLength float32, color [4]float32)
}

func rgba(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}

var (
	ColorHighlight = rgba(colornames.Yellow)
	ColorCenter    = rgba(colornames.Lightgray)

	// X red, Y green, Z blue
	axisColors = [3][4]float32{
		rgba(colornames.Red),
		rgba(colornames.Lime),
		rgba(colornames.Blue),
	}
)

// Line is a single colored world-space segment.
type Line struct {
	Start, End mgl32.Vec3
	Color      [4]float32
}

// LineBatch is a CPU RenderUtil: it flattens all draw calls into a line
// list, ready for upload by a GPU pass (or inspection by tests). Reset it
// once per frame.
type LineBatch struct {
	Lines []Line
}

func NewLineBatch() *LineBatch {
	return &LineBatch{}
}

func (b *LineBatch) Reset() {
	b.Lines = b.Lines[:0]
}

func (b *LineBatch) RenderLine(start, end mgl32.Vec3, color [4]float32) {
	b.Lines = append(b.Lines, Line{Start: start, End: end, Color: color})
}

const circleSegments = 32

func (b *LineBatch) RenderCircle(center, normal mgl32.Vec3, radius float32, color [4]float32) {
	u, v := planeBasis(normal)

	step := 2.0 * math.Pi / float64(circleSegments)
	prev := center.Add(u.Mul(radius))
	for i := 1; i <= circleSegments; i++ {
		a := float64(i) * step
		p := center.
			Add(u.Mul(radius * float32(math.Cos(a)))).
			Add(v.Mul(radius * float32(math.Sin(a))))
		b.RenderLine(prev, p, color)
		prev = p
	}
}

// RenderSphere draws a wireframe sphere as three orthogonal great circles.
func (b *LineBatch) RenderSphere(center mgl32.Vec3, radius float32, color [4]float32) {
	for _, normal := range worldAxes {
		b.RenderCircle(center, normal, radius, color)
	}
}

func (b *LineBatch) RenderAABB(center, halfExtents mgl32.Vec3, color [4]float32) {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	corners := [8]mgl32.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	for i := range corners {
		corners[i] = corners[i].Add(center)
	}

	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		b.RenderLine(corners[e[0]], corners[e[1]], color)
	}
}

func (b *LineBatch) RenderArrow(start, end mgl32.Vec3, tipLength float32, color [4]float32) {
	b.RenderLine(start, end, color)

	dir := end.Sub(start)
	length := dir.Len()
	if length < 1e-6 {
		return
	}
	dir = dir.Mul(1.0 / length)
	u, v := planeBasis(dir)

	base := end.Sub(dir.Mul(tipLength))
	r := tipLength * 0.4
	for _, off := range [4]mgl32.Vec3{u.Mul(r), u.Mul(-r), v.Mul(r), v.Mul(-r)} {
		p := base.Add(off)
		b.RenderLine(p, end, color)
		b.RenderLine(base, p, color)
	}
}

// planeBasis returns two unit vectors spanning the plane perpendicular to n.
func planeBasis(n mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	ref := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(n.Normalize().Dot(ref))) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u := n.Cross(ref).Normalize()
	v := n.Cross(u).Normalize()
	return u, v
}
