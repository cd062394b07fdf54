package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"

	sha256 "github.com/minio/sha256-simd"
)

// ECDSASigner implements the I and Gen interfaces on top of the standard
// library P-256 signer. It is the independent reference implementation used
// by the verification tests, and doubles as a production signer for callers
// that only need the verifying side of this module.
type ECDSASigner struct {
	key *ecdsa.PrivateKey
}

var (
	_ I   = (*ECDSASigner)(nil)
	_ Gen = (*ECDSASigner)(nil)
)

// NewECDSASigner creates an empty signer; call Generate or InitSec before
// signing.
func NewECDSASigner() *ECDSASigner {
	return &ECDSASigner{}
}

// Generate draws a fresh P-256 key pair from system entropy.
func (s *ECDSASigner) Generate() error {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return err
	}
	s.key = key
	return nil
}

// InitSec initialises the signer from a raw 32-byte secret key and derives
// the public key.
func (s *ECDSASigner) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}
	d := new(big.Int).SetBytes(sec)
	curve := elliptic.P256()
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return errors.New("secret key out of range")
	}
	key := &ecdsa.PrivateKey{}
	key.Curve = curve
	key.D = d
	key.X, key.Y = curve.ScalarBaseMult(d.Bytes())
	s.key = key
	return nil
}

// Sec returns the raw 32-byte secret key.
func (s *ECDSASigner) Sec() []byte {
	sec := make([]byte, 32)
	s.key.D.FillBytes(sec)
	return sec
}

// Pub returns the raw 64-byte public key, X || Y big-endian.
func (s *ECDSASigner) Pub() []byte {
	pub := make([]byte, 64)
	s.key.X.FillBytes(pub[:32])
	s.key.Y.FillBytes(pub[32:])
	return pub
}

// Sign signs a 32-byte digest, returning 32-byte big-endian r and s.
func (s *ECDSASigner) Sign(msghash []byte) (r, s32 []byte, err error) {
	if s.key == nil {
		return nil, nil, errors.New("signer not initialised")
	}
	if len(msghash) != 32 {
		return nil, nil, errors.New("message hash must be 32 bytes")
	}
	ri, si, err := ecdsa.Sign(rand.Reader, s.key, msghash)
	if err != nil {
		return nil, nil, err
	}
	r = make([]byte, 32)
	s32 = make([]byte, 32)
	ri.FillBytes(r)
	si.FillBytes(s32)
	return r, s32, nil
}

// HashAndSign digests an arbitrary message with SHA-256 and signs the digest.
func (s *ECDSASigner) HashAndSign(msg []byte) (r, s32 []byte, err error) {
	digest := sha256.Sum256(msg)
	return s.Sign(digest[:])
}
