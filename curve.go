// Package secp256r1 implements ECDSA signature verification, public key
// recovery and key derivation over the NIST P-256 (secp256r1) curve, together
// with Ethereum-style address derivation from raw public keys.
//
// The package is purely functional: every operation allocates a fixed-size
// scratch workspace (dominated by a 16-entry precomputed point table built
// per call), performs a bounded amount of work and returns. Any number of
// goroutines may call into it concurrently.
//
// Execution is variable-time. The point routines branch on identity operands
// and the multiplication loop skips zero windows, so this package must not be
// used where verifier timing can leak information worth protecting.
package secp256r1

import (
	"github.com/holiman/uint256"
)

// Curve parameters for secp256r1, SEC 2 section 2.4.2. The curve is
// y^2 = x^3 + ax + b over the prime field of size p, with a = -3 mod p, and
// the base point G generates a group of prime order n.
var (
	// fieldP is the field prime p = 2^256 - 2^224 + 2^192 + 2^96 - 1.
	fieldP = uint256.MustFromHex("0xFFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF")

	// orderN is the order of the group generated by G.
	orderN = uint256.MustFromHex("0xFFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551")

	// fieldPMinus2 is the Fermat inversion exponent for the base field.
	fieldPMinus2 = uint256.MustFromHex("0xFFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFD")

	// orderNMinus2 is the Fermat inversion exponent for the scalar field.
	orderNMinus2 = uint256.MustFromHex("0xFFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC63254F")

	// fieldSqrtExp is (p+1)/4; p = 3 mod 4, so a^((p+1)/4) is a square root
	// of a whenever one exists.
	fieldSqrtExp = uint256.MustFromHex("0x3FFFFFFFC0000000400000000000000000000000400000000000000000000000")
)

var (
	curveA    FieldElement
	curveB    FieldElement
	generator GroupElementAffine
)

func init() {
	curveA.n.Set(uint256.MustFromHex("0xFFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC"))
	curveB.n.Set(uint256.MustFromHex("0x5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B"))
	generator.x.n.Set(uint256.MustFromHex("0x6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296"))
	generator.y.n.Set(uint256.MustFromHex("0x4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5"))
}
