package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestCipher_RoundTrip(t *testing.T) {
	c := NewAuthenticatedCipher()
	key := testKey(0x11)

	ct, iv, tag, err := c.Encrypt(key, []byte("p@ss1"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(iv) != IVSize {
		t.Fatalf("iv length = %d, want %d", len(iv), IVSize)
	}
	if len(tag) != TagSize {
		t.Fatalf("tag length = %d, want %d", len(tag), TagSize)
	}
	if len(ct) != len("p@ss1") {
		t.Fatalf("ciphertext length = %d, want %d", len(ct), len("p@ss1"))
	}

	pt, err := c.Decrypt(key, ct, iv, tag)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if string(pt) != "p@ss1" {
		t.Fatalf("plaintext = %q, want %q", pt, "p@ss1")
	}
}

func TestCipher_FreshIVEveryCall(t *testing.T) {
	c := NewAuthenticatedCipher()
	key := testKey(0x22)

	ct1, iv1, _, err := c.Encrypt(key, []byte("same"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	ct2, iv2, _, err := c.Encrypt(key, []byte("same"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(iv1, iv2) {
		t.Fatalf("iv reused across calls")
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatalf("ciphertext repeated across calls")
	}
}

func TestCipher_EmptyPlaintext(t *testing.T) {
	c := NewAuthenticatedCipher()
	key := testKey(0x33)

	ct, iv, tag, err := c.Encrypt(key, nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	pt, err := c.Decrypt(key, ct, iv, tag)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if len(pt) != 0 {
		t.Fatalf("plaintext = %q, want empty", pt)
	}
}

func TestCipher_TamperDetection(t *testing.T) {
	c := NewAuthenticatedCipher()
	key := testKey(0x44)

	ct, iv, tag, err := c.Encrypt(key, []byte("top secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	flip := func(b []byte, i int) []byte {
		out := append([]byte(nil), b...)
		out[i] ^= 0x01
		return out
	}

	for i := range ct {
		if _, err := c.Decrypt(key, flip(ct, i), iv, tag); !errors.Is(err, ErrIntegrity) {
			t.Fatalf("ciphertext bit %d: err = %v, want ErrIntegrity", i, err)
		}
	}
	for i := range iv {
		if _, err := c.Decrypt(key, ct, flip(iv, i), tag); !errors.Is(err, ErrIntegrity) {
			t.Fatalf("iv bit %d: err = %v, want ErrIntegrity", i, err)
		}
	}
	for i := range tag {
		if _, err := c.Decrypt(key, ct, iv, flip(tag, i)); !errors.Is(err, ErrIntegrity) {
			t.Fatalf("tag bit %d: err = %v, want ErrIntegrity", i, err)
		}
	}
}

func TestCipher_WrongKey(t *testing.T) {
	c := NewAuthenticatedCipher()

	ct, iv, tag, err := c.Encrypt(testKey(0x55), []byte("data"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	pt, err := c.Decrypt(testKey(0x56), ct, iv, tag)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("err = %v, want ErrIntegrity", err)
	}
	if pt != nil {
		t.Fatalf("expected no plaintext on failure, got %q", pt)
	}
}

func TestCipher_InvalidInput(t *testing.T) {
	c := NewAuthenticatedCipher()

	if _, _, _, err := c.Encrypt([]byte("short"), []byte("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short key: err = %v, want ErrInvalidInput", err)
	}
	if _, err := c.Decrypt(testKey(1), []byte("x"), []byte("short-iv"), make([]byte, TagSize)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short iv: err = %v, want ErrInvalidInput", err)
	}
	if _, err := c.Decrypt(testKey(1), []byte("x"), make([]byte, IVSize), []byte{1, 2}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short tag: err = %v, want ErrInvalidInput", err)
	}
}
