package font

// PointType classifies a contour point.
type PointType string

// Contour point types.
const (
	PointTypeMove     PointType = "move"
	PointTypeLine     PointType = "line"
	PointTypeCurve    PointType = "curve"
	PointTypeQCurve   PointType = "qcurve"
	PointTypeOffCurve PointType = "offcurve"
)

// Point is one contour point. Points are plain values; the owning
// Contour posts notifications when they change.
type Point struct {
	X, Y   float64
	Type   PointType
	Smooth bool
	Name   string
}

// Rect is an axis-aligned bounding box over control points.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Union returns the smallest Rect containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		XMin: min(r.XMin, o.XMin),
		YMin: min(r.YMin, o.YMin),
		XMax: max(r.XMax, o.XMax),
		YMax: max(r.YMax, o.YMax),
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// pointsBounds returns the control-point bounding box of points. The
// second result is false when points is empty.
func pointsBounds(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := Rect{XMin: points[0].X, YMin: points[0].Y, XMax: points[0].X, YMax: points[0].Y}
	for _, p := range points[1:] {
		r.XMin = min(r.XMin, p.X)
		r.YMin = min(r.YMin, p.Y)
		r.XMax = max(r.XMax, p.X)
		r.YMax = max(r.YMax, p.Y)
	}
	return r, true
}

// Transform is an affine transform (xx, xy, yx, yy, dx, dy), applied as
//
//	x' = xx*x + yx*y + dx
//	y' = xy*x + yy*y + dy
type Transform [6]float64

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}

// Concat returns the transform equivalent to applying o, then t.
func (t Transform) Concat(o Transform) Transform {
	return Transform{
		o[0]*t[0] + o[1]*t[2],
		o[0]*t[1] + o[1]*t[3],
		o[2]*t[0] + o[3]*t[2],
		o[2]*t[1] + o[3]*t[3],
		o[4]*t[0] + o[5]*t[2] + t[4],
		o[4]*t[1] + o[5]*t[3] + t[5],
	}
}

// transformPoints returns a copy of points with t applied.
func transformPoints(points []Point, t Transform) []Point {
	if t == Identity {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	out := make([]Point, len(points))
	for i, p := range points {
		p.X, p.Y = t.Apply(p.X, p.Y)
		out[i] = p
	}
	return out
}
