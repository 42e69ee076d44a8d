package service

import (
	"context"
	"testing"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

func TestMintArgsOrderAndEncoding(t *testing.T) {
	req := models.MintRequest{
		Recipient:   "0xabc",
		ModuleID:    42,
		Name:        "Galaxy 3 Graduate",
		Description: "Completed all modules in galaxy 3",
		ImageURL:    "https://img.example/g3.png",
	}

	args := MintArgs(req)
	want := []any{"0xabc", "42", "Galaxy 3 Graduate", "Completed all modules in galaxy 3", "https://img.example/g3.png"}

	if len(args) != len(want) {
		t.Fatalf("Expected %d args, got %d", len(want), len(args))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("Arg %d: expected %v, got %v", i, want[i], args[i])
		}
	}
}

func TestMintRequiresRecipient(t *testing.T) {
	svc := &NFTService{}

	result := svc.Mint(context.Background(), models.MintRequest{})
	if result.Success {
		t.Fatal("Expected failure without a recipient")
	}
	if result.Message != "Wallet required" {
		t.Errorf("Unexpected message %q", result.Message)
	}
}

func TestMintWithoutChainUnavailable(t *testing.T) {
	svc := &NFTService{}

	result := svc.Mint(context.Background(), models.MintRequest{Recipient: "0xabc"})
	if result.Success {
		t.Fatal("Expected failure without a chain client")
	}
	if result.Message != "Minting is currently unavailable" {
		t.Errorf("Unexpected message %q", result.Message)
	}
}
