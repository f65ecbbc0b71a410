package authinfra

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordService(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)

	hash, err := svc.HashPassword("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-passw0rd" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	again, _ := svc.HashPassword("s3cret-passw0rd")
	if again == hash {
		t.Error("two hashes of the same password are equal; salt missing")
	}

	if !svc.VerifyPassword(hash, "s3cret-passw0rd") {
		t.Error("VerifyPassword() rejected the right password")
	}
	if svc.VerifyPassword(hash, "wrong") {
		t.Error("VerifyPassword() accepted a wrong password")
	}
}
