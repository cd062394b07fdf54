package secp256r1

import (
	"errors"
)

// ECDSASignature holds a signature as the raw big-endian (r, s) pair. Range
// validation happens inside the verification and recovery operations, not at
// construction: a signature with components outside [1, n-1] parses fine and
// then fails every operation.
type ECDSASignature struct {
	r, s [32]byte
}

// NewECDSASignature builds a signature from 32-byte big-endian r and s.
func NewECDSASignature(r, s []byte) (*ECDSASignature, error) {
	if len(r) != 32 || len(s) != 32 {
		return nil, errors.New("signature components must be 32 bytes")
	}
	sig := &ECDSASignature{}
	copy(sig.r[:], r)
	copy(sig.s[:], s)
	return sig, nil
}

// Bytes returns the 64-byte concatenation r || s.
func (sig *ECDSASignature) Bytes() [64]byte {
	var out [64]byte
	copy(out[:32], sig.r[:])
	copy(out[32:], sig.s[:])
	return out
}

// ECDSAVerify reports whether sig authenticates the 32-byte message digest
// under pubkey. It returns false when the digest is not 32 bytes, when r or s
// lies outside [1, n-1], when the public key is not a point on the curve, and
// when the signature equation does not hold; there are no other failure modes.
func ECDSAVerify(sig *ECDSASignature, msghash32 []byte, pubkey *PublicKey) bool {
	if len(msghash32) != 32 {
		return false
	}
	var r, s Scalar
	if !r.setB32Seckey(sig.r[:]) {
		return false
	}
	if !s.setB32Seckey(sig.s[:]) {
		return false
	}
	if !pubkey.p.isValid() {
		return false
	}

	// w = s^-1, u1 = e*w, u2 = r*w, all mod n
	var e, w, u1, u2 Scalar
	e.setB32(msghash32)
	w.inverse(&s)
	u1.mul(&e, &w)
	u2.mul(&r, &w)

	var t ecmultTable
	t.build(&pubkey.p)
	var res GroupElementAffine
	ecmultShamir(&res, &t, &u1, &u2)

	// The affine x coordinate is compared against r without reducing mod n.
	// For x < n this matches the standard x mod n == r check; in the band
	// n <= x < p (hit with probability ~2^-128) it rejects where a strict
	// verifier would accept. Kept as-is deliberately.
	return res.x.n.Eq(&r.d)
}

// ECDSARecover computes the public key that produced sig over the given
// digest, writing it into pubkey. recid selects the parity of the y
// coordinate of the curve point whose x coordinate is r: 0 even, 1 odd.
//
// On any failure -- r or s outside [1, n-1], recid outside {0, 1}, or r not
// being the x coordinate of a curve point -- pubkey is left as the zero key
// and false is returned.
func ECDSARecover(pubkey *PublicKey, sig *ECDSASignature, recid int, msghash32 []byte) bool {
	pubkey.p.setInfinity()
	if len(msghash32) != 32 {
		return false
	}
	if recid != 0 && recid != 1 {
		return false
	}
	var r, s Scalar
	if !r.setB32Seckey(sig.r[:]) {
		return false
	}
	if !s.setB32Seckey(sig.s[:]) {
		return false
	}

	// Lift r to the x coordinate of the ephemeral point R. r < n < p, so the
	// value is already a reduced field element.
	var rx FieldElement
	rx.n.Set(&r.d)
	var rpt GroupElementAffine
	if !rpt.setXOVar(&rx, recid == 1) {
		return false
	}

	// Q = r^-1 * (s*R - e*G), computed as u1*G + u2*R with
	// w = r^-1, u1 = -e*w, u2 = s*w, all mod n. e is reduced before negation
	// so digests at or above n are handled.
	var e, w, u1, u2 Scalar
	e.setB32(msghash32)
	e.negate(&e)
	w.inverse(&r)
	u1.mul(&e, &w)
	u2.mul(&s, &w)

	var t ecmultTable
	t.build(&rpt)
	var res GroupElementAffine
	ecmultShamir(&res, &t, &u1, &u2)
	if res.isInfinity() {
		return false
	}

	pubkey.p = res
	return true
}
