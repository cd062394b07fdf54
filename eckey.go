package secp256r1

import (
	"crypto/rand"
	"errors"
)

// PublicKey holds an affine curve point. The zero value is the zero key,
// which is not a valid curve point.
type PublicKey struct {
	p GroupElementAffine
}

// NewPublicKey builds a public key from 32-byte big-endian coordinates. It
// rejects coordinates at or above the field prime but does not check curve
// membership; ECDSAVerify performs that check itself, and IsValid exposes it.
func NewPublicKey(x, y []byte) (*PublicKey, error) {
	pk := &PublicKey{}
	if !pk.p.x.setB32(x) || !pk.p.y.setB32(y) {
		return nil, errors.New("public key coordinates must be 32 bytes below the field prime")
	}
	return pk, nil
}

// Bytes returns the 64-byte big-endian concatenation X || Y.
func (pk *PublicKey) Bytes() [64]byte {
	var out [64]byte
	pk.p.x.getB32(out[:32])
	pk.p.y.getB32(out[32:])
	return out
}

// XY returns the coordinates as separate 32-byte big-endian arrays.
func (pk *PublicKey) XY() (x, y [32]byte) {
	pk.p.x.getB32(x[:])
	pk.p.y.getB32(y[:])
	return x, y
}

// IsValid reports whether the key is a point on the curve.
func (pk *PublicKey) IsValid() bool {
	return pk.p.isValid()
}

// ECSeckeyVerify reports whether a 32-byte array encodes a valid secret key,
// i.e. a scalar in [1, n-1].
func ECSeckeyVerify(seckey []byte) bool {
	var d Scalar
	return d.setB32Seckey(seckey)
}

// ECSeckeyGenerate draws random 32-byte strings from the system entropy
// source until one is a valid secret key. A single draw succeeds except with
// probability ~2^-32.
func ECSeckeyGenerate() ([]byte, error) {
	seckey := make([]byte, 32)
	for {
		if _, err := rand.Read(seckey); err != nil {
			return nil, err
		}
		if ECSeckeyVerify(seckey) {
			return seckey, nil
		}
	}
}

// ECPubkeyCreate derives the public key d*G for the secret key d, which must
// be a 32-byte big-endian scalar in [1, n-1].
func ECPubkeyCreate(pubkey *PublicKey, seckey []byte) error {
	if len(seckey) != 32 {
		return errors.New("secret key must be 32 bytes")
	}
	var d Scalar
	if !d.setB32Seckey(seckey) {
		return errors.New("invalid secret key")
	}
	ecmultGen(&pubkey.p, &d)
	return nil
}
