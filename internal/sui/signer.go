package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ed25519 signature scheme flag, per the Sui cryptography spec.
const schemeED25519 byte = 0x00

// intentTransactionData is the 3-byte intent prefix for transaction data
// (scope=TransactionData, version=0, app=Sui).
var intentTransactionData = []byte{0x00, 0x00, 0x00}

// Signer holds the service keypair used for reward transfers and mint
// submissions.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewSignerFromSeedHex builds a signer from a hex-encoded 32-byte ed25519
// seed (with or without 0x prefix).
func NewSignerFromSeedHex(seedHex string) (*Signer, error) {
	seedHex = strings.TrimPrefix(seedHex, "0x")
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("invalid key seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("key seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Signer{priv: priv, pub: priv.Public().(ed25519.PublicKey)}, nil
}

// Address derives the Sui address of the keypair: the blake2b-256 hash of
// the scheme flag followed by the public key.
func (s *Signer) Address() string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte{schemeED25519})
	h.Write(s.pub)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// SignTransaction produces the serialized signature for base64-encoded
// transaction bytes: blake2b-256 over the intent message, signed with
// ed25519, then flag || signature || pubkey, base64-encoded.
func (s *Signer) SignTransaction(txBytesB64 string) (string, error) {
	txBytes, err := base64.StdEncoding.DecodeString(txBytesB64)
	if err != nil {
		return "", fmt.Errorf("invalid tx bytes: %w", err)
	}

	msg := make([]byte, 0, len(intentTransactionData)+len(txBytes))
	msg = append(msg, intentTransactionData...)
	msg = append(msg, txBytes...)
	digest := blake2b.Sum256(msg)

	sig := ed25519.Sign(s.priv, digest[:])

	serialized := make([]byte, 0, 1+len(sig)+len(s.pub))
	serialized = append(serialized, schemeED25519)
	serialized = append(serialized, sig...)
	serialized = append(serialized, s.pub...)
	return base64.StdEncoding.EncodeToString(serialized), nil
}

// PublicKey exposes the raw public key, mainly for verification in tests.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.pub
}
