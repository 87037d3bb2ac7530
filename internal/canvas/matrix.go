package canvas

import "math"

// matrix is a 2-D affine transform in canvas order:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type matrix struct {
	a, b, c, d, e, f float64
}

func identity() matrix {
	return matrix{a: 1, d: 1}
}

// mul returns m·n, applying n first.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

func (m matrix) translate(tx, ty float64) matrix {
	return m.mul(matrix{a: 1, d: 1, e: tx, f: ty})
}

func (m matrix) rotate(angle float64) matrix {
	sin, cos := math.Sincos(angle)
	return m.mul(matrix{a: cos, b: sin, c: -sin, d: cos})
}

// invert returns the inverse transform. Singular matrices invert to identity.
func (m matrix) invert() matrix {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		return identity()
	}
	inv := 1 / det
	return matrix{
		a: m.d * inv,
		b: -m.b * inv,
		c: -m.c * inv,
		d: m.a * inv,
		e: (m.c*m.f - m.d*m.e) * inv,
		f: (m.b*m.e - m.a*m.f) * inv,
	}
}

// lengthScale estimates how much the transform scales distances.
func (m matrix) lengthScale() float64 {
	return math.Sqrt(math.Abs(m.a*m.d - m.b*m.c))
}
