package geometry

// Point represents a 2D coordinate in normalized page space.
// Coordinates increase rightward and downward, origin at the top-left.
type Point struct {
	X float64
	Y float64
}

// LineFillThickness is the maximum thickness at which a filled rectangle is
// treated as a drawn line rather than a genuine filled region. It is kept
// independent of the per-table tolerance.
const LineFillThickness = 3.0

// Rect represents an axis-aligned rectangle in normalized page space.
// A degenerate rectangle with MinX == MaxX is a vertical line; one with
// MinY == MaxY is a horizontal line.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewRect constructs a Rect from two corner coordinates ensuring ordering.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Add expands the rectangle to also cover o.
func (r Rect) Add(o Rect) Rect {
	if o.MinX < r.MinX {
		r.MinX = o.MinX
	}
	if o.MinY < r.MinY {
		r.MinY = o.MinY
	}
	if o.MaxX > r.MaxX {
		r.MaxX = o.MaxX
	}
	if o.MaxY > r.MaxY {
		r.MaxY = o.MaxY
	}
	return r
}

// Intersects reports whether r and o overlap, allowing edges to touch
// within tol.
func (r Rect) Intersects(o Rect, tol float64) bool {
	return r.MinX <= o.MaxX+tol && r.MaxX >= o.MinX-tol &&
		r.MinY <= o.MaxY+tol && r.MaxY >= o.MinY-tol
}

// ContainsX reports whether x lies within the rectangle's horizontal extent,
// widened by tol.
func (r Rect) ContainsX(x, tol float64) bool {
	return x >= r.MinX-tol && x <= r.MaxX+tol
}

// ContainsY reports whether y lies within the rectangle's vertical extent,
// widened by tol.
func (r Rect) ContainsY(y, tol float64) bool {
	return y >= r.MinY-tol && y <= r.MaxY+tol
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Trim clamps the rectangle to bounds. The result may be empty.
func (r Rect) Trim(bounds Rect) Rect {
	if r.MinX < bounds.MinX {
		r.MinX = bounds.MinX
	}
	if r.MinY < bounds.MinY {
		r.MinY = bounds.MinY
	}
	if r.MaxX > bounds.MaxX {
		r.MaxX = bounds.MaxX
	}
	if r.MaxY > bounds.MaxY {
		r.MaxY = bounds.MaxY
	}
	return r
}

// Empty reports whether the rectangle has negative extent on either axis,
// as produced by trimming against disjoint bounds.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// IsHorizontalLine reports whether the rectangle is thin enough vertically
// to be treated as a horizontal ruled line.
func (r Rect) IsHorizontalLine() bool {
	return r.Height() <= LineFillThickness && r.Width() > r.Height()
}

// IsVerticalLine reports whether the rectangle is thin enough horizontally
// to be treated as a vertical ruled line.
func (r Rect) IsVerticalLine() bool {
	return r.Width() <= LineFillThickness && r.Height() >= r.Width()
}
