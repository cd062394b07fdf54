package secp256r1

import (
	"crypto/rand"
	"testing"

	"github.com/Amxx/secp256r1/signer"
)

func benchSetup(b *testing.B) (pubkey *PublicKey, sig *ECDSASignature, msghash []byte) {
	b.Helper()
	s := signer.NewECDSASigner()
	if err := s.Generate(); err != nil {
		b.Fatal(err)
	}
	msghash = make([]byte, 32)
	if _, err := rand.Read(msghash); err != nil {
		b.Fatal(err)
	}
	r, s32, err := s.Sign(msghash)
	if err != nil {
		b.Fatal(err)
	}
	sig, err = NewECDSASignature(r, s32)
	if err != nil {
		b.Fatal(err)
	}
	pub := s.Pub()
	pubkey, err = NewPublicKey(pub[:32], pub[32:])
	if err != nil {
		b.Fatal(err)
	}
	return pubkey, sig, msghash
}

func BenchmarkECDSAVerify(b *testing.B) {
	pubkey, sig, msghash := benchSetup(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ECDSAVerify(sig, msghash, pubkey) {
			b.Fatal("verification failed")
		}
	}
}

func BenchmarkECDSARecover(b *testing.B) {
	_, sig, msghash := benchSetup(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var rec PublicKey
		ECDSARecover(&rec, sig, i&1, msghash)
	}
}

func BenchmarkECPubkeyCreate(b *testing.B) {
	seckey, err := ECSeckeyGenerate()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var pk PublicKey
		if err := ECPubkeyCreate(&pk, seckey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFieldInv(b *testing.B) {
	var a FieldElement
	a.set(&generator.x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var inv FieldElement
		inv.inv(&a)
	}
}
