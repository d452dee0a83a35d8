package decode

// matrix is a PDF transformation matrix [a b c d e f].
type matrix struct {
	a, b, c, d, e, f float64
}

func identity() matrix {
	return matrix{a: 1, d: 1}
}

// mul returns m concatenated with n (m applied first).
func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.b*n.c,
		b: m.a*n.b + m.b*n.d,
		c: m.c*n.a + m.d*n.c,
		d: m.c*n.b + m.d*n.d,
		e: m.e*n.a + m.f*n.c + n.e,
		f: m.e*n.b + m.f*n.d + n.f,
	}
}

// apply transforms the point (x, y).
func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// pageTransform maps bottom-up PDF user-space coordinates into the
// normalized top-down display space for a page of the given size rotated by
// quadrants*90 degrees clockwise.
type pageTransform struct {
	width     float64
	height    float64
	quadrants int
}

func (t pageTransform) apply(x, y float64) (float64, float64) {
	switch t.quadrants & 3 {
	case 1:
		return y, x
	case 2:
		return t.width - x, y
	case 3:
		return t.height - y, t.width - x
	default:
		return x, t.height - y
	}
}
