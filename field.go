package secp256r1

import (
	"github.com/holiman/uint256"
)

// FieldElement represents an element of the P-256 base field, i.e. an integer
// modulo the field prime p. Values are kept fully reduced into [0, p).
//
// The representation is a single uint256.Int rather than the lazily-reduced
// limb schedules common in curve-specific libraries: those schedules are tied
// to the shape of their prime, while AddMod/MulMod are correct for any
// 256-bit modulus.
type FieldElement struct {
	n uint256.Int
}

// modAdd computes z = (x + y) mod m. Inputs must be reduced.
func modAdd(z, x, y, m *uint256.Int) {
	z.AddMod(x, y, m)
}

// modSub computes z = (x - y) mod m. Inputs must be reduced.
func modSub(z, x, y, m *uint256.Int) {
	var t uint256.Int
	t.Sub(m, y)
	z.AddMod(x, &t, m)
}

// modNeg computes z = -x mod m. Inputs must be reduced.
func modNeg(z, x, m *uint256.Int) {
	var t uint256.Int
	t.Sub(m, x)
	z.Mod(&t, m)
}

// modMul computes z = (x * y) mod m over the full 512-bit product.
func modMul(z, x, y, m *uint256.Int) {
	z.MulMod(x, y, m)
}

// modPow computes z = base^exp mod m by square-and-multiply, consuming the
// exponent from the most significant bit down.
func modPow(z, base, exp, m *uint256.Int) {
	var result, b uint256.Int
	result.SetOne()
	b.Mod(base, m)
	for i := 255; i >= 0; i-- {
		result.MulMod(&result, &result, m)
		if (exp[i/64]>>(uint(i)%64))&1 == 1 {
			result.MulMod(&result, &b, m)
		}
	}
	z.Set(&result)
}

// setB32 sets a field element from a 32-byte big-endian array. Returns false
// if the encoded value is not below the field prime.
func (r *FieldElement) setB32(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	r.n.SetBytes(b)
	return r.n.Lt(fieldP)
}

// getB32 writes the field element to a 32-byte big-endian array.
func (r *FieldElement) getB32(b []byte) {
	out := r.n.Bytes32()
	copy(b, out[:])
}

func (r *FieldElement) set(a *FieldElement) {
	r.n.Set(&a.n)
}

func (r *FieldElement) setInt(v uint64) {
	r.n.SetUint64(v)
}

func (r *FieldElement) isZero() bool {
	return r.n.IsZero()
}

// isOdd reports the parity of the canonical representative.
func (r *FieldElement) isOdd() bool {
	return r.n[0]&1 == 1
}

func (r *FieldElement) equal(a *FieldElement) bool {
	return r.n.Eq(&a.n)
}

// add sets r = a + b mod p
func (r *FieldElement) add(a, b *FieldElement) {
	modAdd(&r.n, &a.n, &b.n, fieldP)
}

// sub sets r = a - b mod p
func (r *FieldElement) sub(a, b *FieldElement) {
	modSub(&r.n, &a.n, &b.n, fieldP)
}

// negate sets r = -a mod p
func (r *FieldElement) negate(a *FieldElement) {
	modNeg(&r.n, &a.n, fieldP)
}

// mul sets r = a * b mod p
func (r *FieldElement) mul(a, b *FieldElement) {
	modMul(&r.n, &a.n, &b.n, fieldP)
}

// sqr sets r = a^2 mod p
func (r *FieldElement) sqr(a *FieldElement) {
	modMul(&r.n, &a.n, &a.n, fieldP)
}

// mulInt sets r = a * v mod p for a small integer v.
func (r *FieldElement) mulInt(a *FieldElement, v uint64) {
	var t uint256.Int
	t.SetUint64(v)
	modMul(&r.n, &a.n, &t, fieldP)
}

// inv sets r = a^-1 mod p via Fermat's little theorem. The caller guarantees
// a != 0; p is prime so the inverse always exists.
func (r *FieldElement) inv(a *FieldElement) {
	modPow(&r.n, &a.n, fieldPMinus2, fieldP)
}

// sqrt sets r to a square root of a mod p and returns true, or returns false
// when a is a non-residue. Since p = 3 mod 4 the candidate root is
// a^((p+1)/4); squaring it back is the residue test.
func (r *FieldElement) sqrt(a *FieldElement) bool {
	var root, check FieldElement
	modPow(&root.n, &a.n, fieldSqrtExp, fieldP)
	check.sqr(&root)
	if !check.equal(a) {
		return false
	}
	r.set(&root)
	return true
}
