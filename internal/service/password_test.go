package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SelfDescribingWithConfiguredCost(t *testing.T) {
	hash, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if hash == "secret" || strings.Contains(hash, "secret") {
		t.Fatalf("hash leaks the plaintext: %q", hash)
	}

	// bcrypt embeds salt and cost in the hash itself.
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != passwordCost {
		t.Fatalf("expected cost %d, got %d", passwordCost, cost)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !verifyPassword("secret", hash) {
		t.Fatalf("correct password did not verify")
	}
	if verifyPassword("wrong", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salted hashes")
	}
}
