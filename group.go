package secp256r1

// GroupElementAffine represents a point on the curve in affine coordinates
// (x, y). The pair (0, 0) does not satisfy the curve equation (b != 0) and is
// reserved to mean "no point": the identity, or the result of a failed
// operation.
type GroupElementAffine struct {
	x, y FieldElement
}

// GroupElementJacobian represents a point in Jacobian coordinates (x, y, z)
// standing for the affine point (x/z^2, y/z^3) when z != 0. Any triple with
// z = 0 is the point at infinity; (0, 0, 0) is the canonical form.
type GroupElementJacobian struct {
	x, y, z FieldElement
}

func (r *GroupElementAffine) setXY(x, y *FieldElement) {
	r.x.set(x)
	r.y.set(y)
}

func (r *GroupElementAffine) setInfinity() {
	r.x.setInt(0)
	r.y.setInt(0)
}

func (r *GroupElementAffine) isInfinity() bool {
	return r.x.isZero() && r.y.isZero()
}

func (r *GroupElementAffine) equal(a *GroupElementAffine) bool {
	return r.x.equal(&a.x) && r.y.equal(&a.y)
}

// negate sets r = -a, i.e. the point with the same x and the opposite y.
func (r *GroupElementAffine) negate(a *GroupElementAffine) {
	r.x.set(&a.x)
	r.y.negate(&a.y)
}

// isValid reports whether the point satisfies y^2 = x^3 + ax + b. The (0, 0)
// sentinel is rejected.
func (r *GroupElementAffine) isValid() bool {
	if r.isInfinity() {
		return false
	}
	var y2, rhs, t FieldElement

	// y^2
	y2.sqr(&r.y)

	// x^3 + ax + b
	rhs.sqr(&r.x)
	rhs.mul(&rhs, &r.x)
	t.mul(&curveA, &r.x)
	rhs.add(&rhs, &t)
	rhs.add(&rhs, &curveB)

	return y2.equal(&rhs)
}

// setXOVar recovers the point with the given x coordinate and y parity.
// Returns false when x^3 + ax + b is not a quadratic residue, i.e. no point
// with that x coordinate exists.
func (r *GroupElementAffine) setXOVar(x *FieldElement, odd bool) bool {
	var rhs, t, y FieldElement

	// x^3 + ax + b
	rhs.sqr(x)
	rhs.mul(&rhs, x)
	t.mul(&curveA, x)
	rhs.add(&rhs, &t)
	rhs.add(&rhs, &curveB)

	if !y.sqrt(&rhs) {
		return false
	}
	if y.isOdd() != odd {
		y.negate(&y)
	}
	r.x.set(x)
	r.y.set(&y)
	return true
}

func (r *GroupElementJacobian) setInfinity() {
	r.x.setInt(0)
	r.y.setInt(0)
	r.z.setInt(0)
}

func (r *GroupElementJacobian) isInfinity() bool {
	return r.z.isZero()
}

// setGE lifts an affine point to Jacobian coordinates with z = 1.
func (r *GroupElementJacobian) setGE(a *GroupElementAffine) {
	r.x.set(&a.x)
	r.y.set(&a.y)
	r.z.setInt(1)
}

// setGEJ converts a Jacobian point to affine coordinates, at the cost of one
// field inversion. The point at infinity maps to the (0, 0) sentinel.
func (r *GroupElementAffine) setGEJ(a *GroupElementJacobian) {
	if a.isInfinity() {
		r.setInfinity()
		return
	}
	var zi, zi2, zi3 FieldElement

	zi.inv(&a.z)
	zi2.sqr(&zi)
	zi3.mul(&zi2, &zi)

	r.x.mul(&a.x, &zi2)
	r.y.mul(&a.y, &zi3)
}

// double sets r = 2*a. r may alias a.
func (r *GroupElementJacobian) double(a *GroupElementJacobian) {
	if a.isInfinity() {
		r.setInfinity()
		return
	}
	var s, m, t, x3, y3, z3 FieldElement

	// S = 4*X*Y^2
	s.sqr(&a.y)
	s.mul(&s, &a.x)
	s.mulInt(&s, 4)

	// M = 3*X^2 + a*Z^4
	m.sqr(&a.x)
	m.mulInt(&m, 3)
	t.sqr(&a.z)
	t.sqr(&t)
	t.mul(&t, &curveA)
	m.add(&m, &t)

	// X' = M^2 - 2*S
	x3.sqr(&m)
	x3.sub(&x3, &s)
	x3.sub(&x3, &s)

	// Y' = M*(S - X') - 8*Y^4
	y3.sub(&s, &x3)
	y3.mul(&y3, &m)
	t.sqr(&a.y)
	t.sqr(&t)
	t.mulInt(&t, 8)
	y3.sub(&y3, &t)

	// Z' = 2*Y*Z
	z3.mul(&a.y, &a.z)
	z3.mulInt(&z3, 2)

	r.x.set(&x3)
	r.y.set(&y3)
	r.z.set(&z3)
}

// addVar sets r = a + b. r may alias either operand.
//
// The formula assumes the operands have distinct x coordinates: it does not
// detect a == b (a doubling) or a == -b (infinity); both give H = 0 and a
// result with z = 0, the identity. The multiplication loop quadruples the
// accumulator between additions, and the table entries of a generic point
// are distinct sums; a table built for p = G does add G to itself (see
// ecmultTable.build).
func (r *GroupElementJacobian) addVar(a, b *GroupElementJacobian) {
	if a.isInfinity() {
		*r = *b
		return
	}
	if b.isInfinity() {
		*r = *a
		return
	}
	var z11, z22, u1, u2, s1, s2, h, rr, h2, h3, t, x3, y3, z3 FieldElement

	// U1 = X1*Z2^2, U2 = X2*Z1^2
	z22.sqr(&b.z)
	z11.sqr(&a.z)
	u1.mul(&a.x, &z22)
	u2.mul(&b.x, &z11)

	// S1 = Y1*Z2^3, S2 = Y2*Z1^3
	s1.mul(&a.y, &z22)
	s1.mul(&s1, &b.z)
	s2.mul(&b.y, &z11)
	s2.mul(&s2, &a.z)

	// H = U2 - U1, R = S2 - S1
	h.sub(&u2, &u1)
	rr.sub(&s2, &s1)

	h2.sqr(&h)
	h3.mul(&h2, &h)

	// X3 = R^2 - H^3 - 2*U1*H^2
	t.mul(&u1, &h2)
	x3.sqr(&rr)
	x3.sub(&x3, &h3)
	x3.sub(&x3, &t)
	x3.sub(&x3, &t)

	// Y3 = R*(U1*H^2 - X3) - S1*H^3
	y3.sub(&t, &x3)
	y3.mul(&y3, &rr)
	t.mul(&s1, &h3)
	y3.sub(&y3, &t)

	// Z3 = H*Z1*Z2
	z3.mul(&a.z, &b.z)
	z3.mul(&z3, &h)

	r.x.set(&x3)
	r.y.set(&y3)
	r.z.set(&z3)
}

// IsOnCurve reports whether the 32-byte big-endian coordinates (x, y) encode
// a point satisfying the curve equation. Coordinates at or above the field
// prime, and the (0, 0) sentinel, are not on the curve.
func IsOnCurve(x, y []byte) bool {
	var ge GroupElementAffine
	if !ge.x.setB32(x) || !ge.y.setB32(y) {
		return false
	}
	return ge.isValid()
}
