package objects

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CurveType int

const (
	Linear CurveType = iota
	Perfect
	Bezier
	Catmull
)

func (c CurveType) String() string {
	switch c {
	case Linear:
		return "L"
	case Perfect:
		return "P"
	case Bezier:
		return "B"
	default:
		return "C"
	}
}

// ParseCurveType maps the curve letter of a slider path, anything unknown is catmull.
func ParseCurveType(s string) CurveType {
	switch s {
	case "L":
		return Linear
	case "P":
		return Perfect
	case "B":
		return Bezier
	default:
		return Catmull
	}
}

const (
	bezierToleranceSq   = 0.25 * 0.25
	bezierMaxDepth      = 12
	arcTolerance        = 0.1
	catmullDetail       = 50
	collinearityEpsilon = 1e-6
)

// Path is a polyline approximation of a slider curve, cut or extended to its pixel length.
type Path struct {
	points []mgl32.Vec2

	// cumulative[i] is the distance from the head to points[i]
	cumulative []float64
}

// NewPath approximates the curve through nodes (head included). A positive length trims or
// extends the last segment so the path is exactly that long.
func NewPath(curve CurveType, nodes []mgl32.Vec2, length float64) *Path {
	var points []mgl32.Vec2

	add := func(pts ...mgl32.Vec2) {
		for _, p := range pts {
			if n := len(points); n == 0 || points[n-1] != p {
				points = append(points, p)
			}
		}
	}

	switch {
	case len(nodes) == 0:
		return &Path{points: []mgl32.Vec2{{}}, cumulative: []float64{0}}
	case curve == Linear || len(nodes) < 3:
		add(nodes...)
	case curve == Catmull:
		add(approximateCatmull(nodes)...)
	case curve == Perfect && len(nodes) == 3:
		add(approximateArc(nodes[0], nodes[1], nodes[2])...)
	default:
		for _, segment := range SplitAtRedAnchors(nodes) {
			add(approximateBezier(segment)...)
		}
	}

	p := &Path{points: points}
	p.measure()

	if length > 0 {
		p.fitTo(length)
	}

	return p
}

// SplitAtRedAnchors cuts the node list wherever a node is repeated, the repeated node starting the next segment.
func SplitAtRedAnchors(nodes []mgl32.Vec2) [][]mgl32.Vec2 {
	var segments [][]mgl32.Vec2

	start := 0

	for i := 1; i < len(nodes); i++ {
		if nodes[i] == nodes[i-1] {
			segments = append(segments, nodes[start:i])
			start = i
		}
	}

	return append(segments, nodes[start:])
}

func (p *Path) measure() {
	p.cumulative = make([]float64, len(p.points))

	for i := 1; i < len(p.points); i++ {
		p.cumulative[i] = p.cumulative[i-1] + float64(p.points[i].Sub(p.points[i-1]).Len())
	}
}

func (p *Path) fitTo(length float64) {
	n := len(p.points)
	if n < 2 {
		return
	}

	if p.cumulative[n-1] < length {
		last, prev := p.points[n-1], p.points[n-2]
		dir := last.Sub(prev)

		if l := dir.Len(); l > 0 {
			p.points[n-1] = last.Add(dir.Mul(float32((length - p.cumulative[n-1]) / float64(l))))
			p.cumulative[n-1] = length
		}

		return
	}

	i := 1
	for i < n-1 && p.cumulative[i] < length {
		i++
	}

	p.points = p.points[:i+1]
	p.cumulative = p.cumulative[:i+1]
	p.points[i] = p.interpolate(i, length)
	p.cumulative[i] = length
}

func (p *Path) interpolate(i int, distance float64) mgl32.Vec2 {
	segment := p.cumulative[i] - p.cumulative[i-1]
	if segment <= 0 {
		return p.points[i-1]
	}

	t := float32((distance - p.cumulative[i-1]) / segment)

	return p.points[i-1].Add(p.points[i].Sub(p.points[i-1]).Mul(t))
}

func (p *Path) Length() float64 {
	return p.cumulative[len(p.cumulative)-1]
}

func (p *Path) Points() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(p.points))
	copy(out, p.points)

	return out
}

// PointAt returns the position at progress (0 head, 1 end) along the path.
func (p *Path) PointAt(progress float64) mgl32.Vec2 {
	if len(p.points) == 1 || progress <= 0 {
		return p.points[0]
	}

	if progress >= 1 {
		return p.points[len(p.points)-1]
	}

	distance := progress * p.Length()

	i := 1
	for i < len(p.points)-1 && p.cumulative[i] < distance {
		i++
	}

	return p.interpolate(i, distance)
}

func approximateBezier(control []mgl32.Vec2) []mgl32.Vec2 {
	if len(control) < 3 {
		return control
	}

	type part struct {
		control []mgl32.Vec2
		depth   int
	}

	var out []mgl32.Vec2

	stack := []part{{control, 0}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// float32 midpoints stop converging on huge coordinates, so subdivision is capped
		if current.depth >= bezierMaxDepth || bezierFlatEnough(current.control) {
			out = append(out, current.control[0])
			continue
		}

		left, right := bezierSubdivide(current.control)
		stack = append(stack, part{right, current.depth + 1}, part{left, current.depth + 1})
	}

	return append(out, control[len(control)-1])
}

func bezierFlatEnough(control []mgl32.Vec2) bool {
	for i := 1; i < len(control)-1; i++ {
		d := control[i-1].Sub(control[i].Mul(2)).Add(control[i+1])
		if float64(d.Dot(d)) > bezierToleranceSq {
			return false
		}
	}

	return true
}

// bezierSubdivide splits the curve in half with de Casteljau's algorithm.
func bezierSubdivide(control []mgl32.Vec2) (left, right []mgl32.Vec2) {
	n := len(control)

	row := make([]mgl32.Vec2, n)
	copy(row, control)

	left = make([]mgl32.Vec2, n)
	right = make([]mgl32.Vec2, n)

	for r := 0; r < n; r++ {
		left[r] = row[0]
		right[n-1-r] = row[n-1-r]

		for i := 0; i < n-1-r; i++ {
			row[i] = row[i].Add(row[i+1]).Mul(0.5)
		}
	}

	return left, right
}

func approximateCatmull(nodes []mgl32.Vec2) []mgl32.Vec2 {
	n := len(nodes)

	out := make([]mgl32.Vec2, 0, (n-1)*catmullDetail+1)
	out = append(out, nodes[0])

	for i := 0; i < n-1; i++ {
		p0 := nodes[max(i-1, 0)]
		p1 := nodes[i]
		p2 := nodes[i+1]
		p3 := nodes[min(i+2, n-1)]

		for s := 1; s <= catmullDetail; s++ {
			out = append(out, catmullPoint(p0, p1, p2, p3, float32(s)/catmullDetail))
		}
	}

	return out
}

func catmullPoint(p0, p1, p2, p3 mgl32.Vec2, t float32) mgl32.Vec2 {
	t2 := t * t
	t3 := t2 * t

	coord := func(a, b, c, d float32) float32 {
		return 0.5 * (2*b + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}

	return mgl32.Vec2{
		coord(p0.X(), p1.X(), p2.X(), p3.X()),
		coord(p0.Y(), p1.Y(), p2.Y(), p3.Y()),
	}
}

func cross(a, b mgl32.Vec2) float64 {
	return float64(a.X())*float64(b.Y()) - float64(a.Y())*float64(b.X())
}

// approximateArc samples the circle through a, b and c, falling back to a line when they are collinear.
func approximateArc(a, b, c mgl32.Vec2) []mgl32.Vec2 {
	ax, ay := float64(a.X()), float64(a.Y())
	bx, by := float64(b.X()), float64(b.Y())
	cx, cy := float64(c.X()), float64(c.Y())

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(cross(b.Sub(a), c.Sub(b))) < collinearityEpsilon || d == 0 {
		return []mgl32.Vec2{a, c}
	}

	a2, b2, c2 := ax*ax+ay*ay, bx*bx+by*by, cx*cx+cy*cy
	centerX := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	centerY := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d

	radius := math.Hypot(ax-centerX, ay-centerY)

	start := math.Atan2(ay-centerY, ax-centerX)
	end := math.Atan2(cy-centerY, cx-centerX)

	dir := 1.0
	if cross(b.Sub(a), c.Sub(b)) < 0 {
		dir = -1
	}

	sweep := end - start
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}

	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}

	if dir < 0 && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if dir > 0 && sweep < 0 {
		sweep += 2 * math.Pi
	}

	step := math.Pi
	if arcTolerance < 2*radius {
		step = 2 * math.Acos(1-arcTolerance/radius)
	}

	steps := max(2, int(math.Ceil(math.Abs(sweep)/step)))

	out := make([]mgl32.Vec2, 0, steps+1)

	for i := 0; i <= steps; i++ {
		angle := start + sweep*float64(i)/float64(steps)
		out = append(out, mgl32.Vec2{float32(centerX + math.Cos(angle)*radius), float32(centerY + math.Sin(angle)*radius)})
	}

	out[0], out[steps] = a, c

	return out
}
