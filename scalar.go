package secp256r1

import (
	"github.com/holiman/uint256"
)

// Scalar represents an integer modulo the group order n. Values are kept
// fully reduced into [0, n).
type Scalar struct {
	d uint256.Int
}

// setB32 sets a scalar from a 32-byte big-endian array, reducing modulo the
// group order. Returns true if the input overflowed and was reduced.
func (r *Scalar) setB32(b []byte) (overflow bool) {
	r.d.SetBytes(b)
	if !r.d.Lt(orderN) {
		r.d.Mod(&r.d, orderN)
		return true
	}
	return false
}

// setB32Seckey sets a scalar from a 32-byte array and returns true only if
// the encoded value lies in [1, n-1].
func (r *Scalar) setB32Seckey(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	overflow := r.setB32(b)
	return !overflow && !r.isZero()
}

// getB32 writes the scalar to a 32-byte big-endian array.
func (r *Scalar) getB32(b []byte) {
	out := r.d.Bytes32()
	copy(b, out[:])
}

func (r *Scalar) set(a *Scalar) {
	r.d.Set(&a.d)
}

func (r *Scalar) isZero() bool {
	return r.d.IsZero()
}

func (r *Scalar) equal(a *Scalar) bool {
	return r.d.Eq(&a.d)
}

// add sets r = a + b mod n
func (r *Scalar) add(a, b *Scalar) {
	modAdd(&r.d, &a.d, &b.d, orderN)
}

// mul sets r = a * b mod n
func (r *Scalar) mul(a, b *Scalar) {
	modMul(&r.d, &a.d, &b.d, orderN)
}

// negate sets r = -a mod n
func (r *Scalar) negate(a *Scalar) {
	modNeg(&r.d, &a.d, orderN)
}

// inverse sets r = a^-1 mod n via Fermat's little theorem. The caller
// guarantees a != 0; n is prime so the inverse always exists.
func (r *Scalar) inverse(a *Scalar) {
	modPow(&r.d, &a.d, orderNMinus2, orderN)
}
