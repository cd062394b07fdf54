package secp256r1

import (
	"golang.org/x/crypto/sha3"
)

// AddressLength is the length of an address in bytes.
const AddressLength = 20

// Address is the low 20 bytes of the keccak-256 digest of a raw 64-byte
// public key, the same derivation Ethereum applies to uncompressed keys.
type Address [AddressLength]byte

// Keccak256 computes the legacy (pre-standard) keccak-256 digest of the
// concatenation of its inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Address derives the address of the public key: keccak256(X || Y)[12:].
// The zero key deterministically maps to the address of 64 zero bytes.
func (pk *PublicKey) Address() Address {
	raw := pk.Bytes()
	var addr Address
	copy(addr[:], Keccak256(raw[:])[12:])
	return addr
}

// ECDSARecoverAddress recovers the signing key of sig over the given digest
// and returns its address. When recovery fails, the result is the address of
// the zero key, a deterministic sentinel.
func ECDSARecoverAddress(sig *ECDSASignature, recid int, msghash32 []byte) Address {
	var pubkey PublicKey
	ECDSARecover(&pubkey, sig, recid, msghash32)
	return pubkey.Address()
}
