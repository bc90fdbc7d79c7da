// Package geom provides the small set of planar primitives the panel
// generator works in: points, polylines, circles and axis-aligned rectangles.
// All coordinates are millimeters; the y axis points down, matching SVG.
package geom

import "math"

// Point is a position in the drawing plane.
type Point struct {
	X, Y float64
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Polyline is an ordered point sequence, optionally closed into a loop.
type Polyline struct {
	Points []Point
	Closed bool
}

// Line appends a point to the polyline.
func (p *Polyline) Line(x, y float64) {
	p.Points = append(p.Points, Point{x, y})
}

// Translate returns a copy of the polyline offset by (dx, dy).
func (p Polyline) Translate(dx, dy float64) Polyline {
	out := Polyline{Points: make([]Point, len(p.Points)), Closed: p.Closed}
	for i, pt := range p.Points {
		out.Points[i] = pt.Add(dx, dy)
	}
	return out
}

// Bounds returns the bounding rectangle of the polyline.
// An empty polyline yields the zero rectangle.
func (p Polyline) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{p.Points[0].X, p.Points[0].Y, p.Points[0].X, p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		r.MinX = math.Min(r.MinX, pt.X)
		r.MinY = math.Min(r.MinY, pt.Y)
		r.MaxX = math.Max(r.MaxX, pt.X)
		r.MaxY = math.Max(r.MaxY, pt.Y)
	}
	return r
}

// Circle is a full circle, used for drill reliefs.
type Circle struct {
	Center Point
	R      float64
}

// Translate returns a copy of the circle offset by (dx, dy).
func (c Circle) Translate(dx, dy float64) Circle {
	return Circle{Center: c.Center.Add(dx, dy), R: c.R}
}

// Bounds returns the bounding rectangle of the circle.
func (c Circle) Bounds() Rect {
	return Rect{c.Center.X - c.R, c.Center.Y - c.R, c.Center.X + c.R, c.Center.Y + c.R}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{r.MinX - m, r.MinY - m, r.MaxX + m, r.MaxY + m}
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that merely share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}

// ClosedRect builds a closed rectangular polyline.
func ClosedRect(minX, minY, maxX, maxY float64) Polyline {
	return Polyline{
		Points: []Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}},
		Closed: true,
	}
}
