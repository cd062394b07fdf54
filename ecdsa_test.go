package secp256r1

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/Amxx/secp256r1/signer"
)

// signedMessage produces a fresh key pair, a random digest and a signature
// over it with the external reference signer.
func signedMessage(t *testing.T) (pubkey *PublicKey, sig *ECDSASignature, msghash []byte) {
	t.Helper()
	s := signer.NewECDSASigner()
	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}
	msghash = make([]byte, 32)
	if _, err := rand.Read(msghash); err != nil {
		t.Fatal(err)
	}
	r, s32, err := s.Sign(msghash)
	if err != nil {
		t.Fatal(err)
	}
	sig, err = NewECDSASignature(r, s32)
	if err != nil {
		t.Fatal(err)
	}
	pub := s.Pub()
	pubkey, err = NewPublicKey(pub[:32], pub[32:])
	if err != nil {
		t.Fatal(err)
	}
	return pubkey, sig, msghash
}

func TestECDSAVerify(t *testing.T) {
	for i := 0; i < 8; i++ {
		pubkey, sig, msghash := signedMessage(t)
		if !ECDSAVerify(sig, msghash, pubkey) {
			t.Fatal("valid signature rejected")
		}
	}
}

func TestECDSAVerifyTamperRejection(t *testing.T) {
	pubkey, sig, msghash := signedMessage(t)

	// Fresh random digest.
	wrong := make([]byte, 32)
	if _, err := rand.Read(wrong); err != nil {
		t.Fatal(err)
	}
	if ECDSAVerify(sig, wrong, pubkey) {
		t.Fatal("signature accepted over a different digest")
	}

	// Swapped signature components.
	raw := sig.Bytes()
	swapped, err := NewECDSASignature(raw[32:], raw[:32])
	if err != nil {
		t.Fatal(err)
	}
	if ECDSAVerify(swapped, msghash, pubkey) {
		t.Fatal("signature accepted with swapped r and s")
	}

	// Swapped public key coordinates.
	x, y := pubkey.XY()
	if flipped, err := NewPublicKey(y[:], x[:]); err == nil {
		if ECDSAVerify(sig, msghash, flipped) {
			t.Fatal("signature accepted under swapped key coordinates")
		}
	}

	// Truncated digest.
	if ECDSAVerify(sig, msghash[:31], pubkey) {
		t.Fatal("signature accepted over a short digest")
	}
}

func TestECDSAVerifyRangeRejection(t *testing.T) {
	pubkey, sig, msghash := signedMessage(t)

	zero := make([]byte, 32)
	nb := orderN.Bytes32()
	over := nb
	over[31]++

	raw := sig.Bytes()
	cases := []struct {
		name string
		r, s []byte
	}{
		{"r=0", zero, raw[32:]},
		{"r=n", nb[:], raw[32:]},
		{"r>n", over[:], raw[32:]},
		{"s=0", raw[:32], zero},
		{"s=n", raw[:32], nb[:]},
		{"s>n", raw[:32], over[:]},
	}
	for _, tc := range cases {
		bad, err := NewECDSASignature(tc.r, tc.s)
		if err != nil {
			t.Fatal(err)
		}
		if ECDSAVerify(bad, msghash, pubkey) {
			t.Fatalf("%s accepted", tc.name)
		}
		var rec PublicKey
		if ECDSARecover(&rec, bad, 0, msghash) {
			t.Fatalf("%s recovered", tc.name)
		}
		if rec.IsValid() {
			t.Fatalf("%s left a non-zero key behind", tc.name)
		}
	}
}

func TestECDSAVerifyOffCurveKey(t *testing.T) {
	pubkey, sig, msghash := signedMessage(t)

	x, y := pubkey.XY()
	x[0] ^= 0x50
	if bad, err := NewPublicKey(x[:], y[:]); err == nil {
		if ECDSAVerify(sig, msghash, bad) {
			t.Fatal("signature accepted under an off-curve key")
		}
	}

	var zero PublicKey
	if ECDSAVerify(sig, msghash, &zero) {
		t.Fatal("signature accepted under the zero key")
	}
}

func TestECDSAVerifyHighDigest(t *testing.T) {
	// A digest at 2^256 - 1 exceeds the group order and must be reduced, not
	// rejected.
	s := signer.NewECDSASigner()
	if err := s.Generate(); err != nil {
		t.Fatal(err)
	}
	msghash := bytes.Repeat([]byte{0xFF}, 32)
	r, s32, err := s.Sign(msghash)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := NewECDSASignature(r, s32)
	if err != nil {
		t.Fatal(err)
	}
	pub := s.Pub()
	pubkey, err := NewPublicKey(pub[:32], pub[32:])
	if err != nil {
		t.Fatal(err)
	}
	if !ECDSAVerify(sig, msghash, pubkey) {
		t.Fatal("signature over an unreduced digest rejected")
	}
}

func TestECDSARecover(t *testing.T) {
	for i := 0; i < 8; i++ {
		pubkey, sig, msghash := signedMessage(t)

		recovered := false
		for recid := 0; recid <= 1; recid++ {
			var rec PublicKey
			if !ECDSARecover(&rec, sig, recid, msghash) {
				continue
			}
			if !rec.IsValid() {
				t.Fatal("recovered key is off the curve")
			}
			if rec.p.equal(&pubkey.p) {
				recovered = true
			}
		}
		if !recovered {
			t.Fatal("neither recovery id yields the signing key")
		}
	}
}

func TestECDSARecoverRejectsBadRecid(t *testing.T) {
	_, sig, msghash := signedMessage(t)
	for _, recid := range []int{-1, 2, 27} {
		var rec PublicKey
		if ECDSARecover(&rec, sig, recid, msghash) {
			t.Fatalf("recovery accepted recid %d", recid)
		}
	}
}

func TestECDSARecoverDifferentDigest(t *testing.T) {
	pubkey, sig, _ := signedMessage(t)

	wrong := make([]byte, 32)
	if _, err := rand.Read(wrong); err != nil {
		t.Fatal(err)
	}
	for recid := 0; recid <= 1; recid++ {
		var rec PublicKey
		if !ECDSARecover(&rec, sig, recid, wrong) {
			continue
		}
		if rec.p.equal(&pubkey.p) {
			t.Fatal("recovery over a different digest returned the signing key")
		}
	}
}

func TestPubkeyCreateScenarios(t *testing.T) {
	// d = 1 derives the generator itself.
	one := make([]byte, 32)
	one[31] = 1
	var pk PublicKey
	if err := ECPubkeyCreate(&pk, one); err != nil {
		t.Fatal(err)
	}
	if !pk.p.equal(&generator) {
		t.Fatal("1*G != G")
	}

	// d = n - 1 derives -G: same x, mirrored y.
	nm1 := orderN.Bytes32()
	nm1[31]--
	if err := ECPubkeyCreate(&pk, nm1[:]); err != nil {
		t.Fatal(err)
	}
	var negG GroupElementAffine
	negG.negate(&generator)
	if !pk.p.equal(&negG) {
		t.Fatal("(n-1)*G != -G")
	}
	if !pk.IsValid() {
		t.Fatal("(n-1)*G is off the curve")
	}
}
