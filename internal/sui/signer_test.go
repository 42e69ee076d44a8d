package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"
	"testing"

	"golang.org/x/crypto/blake2b"
)

const testSeedHex = "0x0101010101010101010101010101010101010101010101010101010101010101"

func TestNewSignerFromSeedHex(t *testing.T) {
	s, err := NewSignerFromSeedHex(testSeedHex)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	addr := s.Address()
	if !strings.HasPrefix(addr, "0x") {
		t.Errorf("Expected 0x-prefixed address, got %q", addr)
	}
	if len(addr) != 2+64 {
		t.Errorf("Expected 32-byte hex address, got length %d", len(addr))
	}

	// Same seed, same address.
	s2, _ := NewSignerFromSeedHex(strings.TrimPrefix(testSeedHex, "0x"))
	if s2.Address() != addr {
		t.Errorf("Address not deterministic: %q vs %q", addr, s2.Address())
	}
}

func TestNewSignerRejectsBadSeeds(t *testing.T) {
	testCases := []struct {
		name string
		seed string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"too short", "0xabcd"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSignerFromSeedHex(tc.seed); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestSignTransactionProducesVerifiableSignature(t *testing.T) {
	s, err := NewSignerFromSeedHex(testSeedHex)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	txBytes := []byte("fake transaction bytes for signing")
	txB64 := base64.StdEncoding.EncodeToString(txBytes)

	serialized, err := s.SignTransaction(txB64)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(serialized)
	if err != nil {
		t.Fatalf("Signature is not base64: %v", err)
	}
	if len(decoded) != 1+ed25519.SignatureSize+ed25519.PublicKeySize {
		t.Fatalf("Unexpected serialized signature length %d", len(decoded))
	}
	if decoded[0] != schemeED25519 {
		t.Errorf("Expected scheme flag 0x00, got %#x", decoded[0])
	}

	sig := decoded[1 : 1+ed25519.SignatureSize]
	pub := ed25519.PublicKey(decoded[1+ed25519.SignatureSize:])

	msg := append(append([]byte{}, intentTransactionData...), txBytes...)
	digest := blake2b.Sum256(msg)
	if !ed25519.Verify(pub, digest[:], sig) {
		t.Error("Signature does not verify over the intent digest")
	}
}

func TestSignTransactionRejectsInvalidBase64(t *testing.T) {
	s, _ := NewSignerFromSeedHex(testSeedHex)
	if _, err := s.SignTransaction("not-base64!!!"); err == nil {
		t.Error("Expected error for invalid tx bytes")
	}
}

func TestSelectCoins(t *testing.T) {
	coins := []coin{
		{CoinObjectID: "0x1", Balance: "500"},
		{CoinObjectID: "0x2", Balance: "700"},
		{CoinObjectID: "0x3", Balance: "bogus"},
		{CoinObjectID: "0x4", Balance: "1000"},
	}

	ids, err := selectCoins(coins, 1000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "0x1" || ids[1] != "0x2" {
		t.Errorf("Unexpected coin selection: %v", ids)
	}

	if _, err := selectCoins(coins, 10_000); err == nil {
		t.Error("Expected insufficient balance error")
	}
}
