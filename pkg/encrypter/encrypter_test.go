package encrypter

import (
	"encoding/base64"
	"errors"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecrypt(t *testing.T) {
	enc := New(testKey)

	t.Run("round trip", func(t *testing.T) {
		sealed, err := enc.Encrypt("review-gw:s3cr3t")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if sealed == "review-gw:s3cr3t" {
			t.Fatal("ciphertext equals plaintext")
		}

		got, err := enc.Decrypt(sealed)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if got != "review-gw:s3cr3t" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("fresh nonce per call", func(t *testing.T) {
		a, err := enc.Encrypt("same input")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		b, err := enc.Encrypt("same input")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if a == b {
			t.Fatal("two encryptions produced identical ciphertext")
		}
	})

	t.Run("tampered ciphertext rejected", func(t *testing.T) {
		sealed, err := enc.Encrypt("payload")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		raw := []byte(sealed)
		i := len(raw) / 2
		if raw[i] == 'A' {
			raw[i] = 'B'
		} else {
			raw[i] = 'A'
		}

		if _, err := enc.Decrypt(string(raw)); err == nil {
			t.Fatal("tampered ciphertext decrypted")
		}
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
		if _, err := enc.Decrypt(short); !errors.Is(err, ErrCiphertextTooShort) {
			t.Fatalf("err = %v, want ErrCiphertextTooShort", err)
		}
	})
}

func TestKeyLength(t *testing.T) {
	enc := New("too-short")
	if _, err := enc.Encrypt("x"); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("err = %v, want ErrInvalidKeyLength", err)
	}
}

func TestPasswordHash(t *testing.T) {
	enc := New(testKey)

	hash, err := enc.HashPassword("op-console-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "op-console-pass" {
		t.Fatal("hash equals password")
	}

	if !enc.CheckPasswordHash("op-console-pass", hash) {
		t.Fatal("valid password rejected")
	}
	if enc.CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
