package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func newTestKeyDerivation(t *testing.T, def KDF) KeyDerivation {
	t.Helper()
	kd, err := NewKeyDerivation(def, KDFParams{ArgonTime: 1, ArgonMemory: 64, ArgonThreads: 1, PBKDF2Iterations: 1000})
	if err != nil {
		t.Fatalf("NewKeyDerivation error: %v", err)
	}
	return kd
}

func TestDerive_Deterministic(t *testing.T) {
	for _, kdf := range []KDF{KDFArgon2id, KDFPBKDF2} {
		t.Run(string(kdf), func(t *testing.T) {
			kd := newTestKeyDerivation(t, kdf)
			salt := bytes.Repeat([]byte{0x42}, SaltSize)

			k1, err := kd.Derive("Tr0ub4dor&3xyz!!", salt)
			if err != nil {
				t.Fatalf("Derive error: %v", err)
			}
			k2, err := kd.Derive("Tr0ub4dor&3xyz!!", salt)
			if err != nil {
				t.Fatalf("Derive error: %v", err)
			}

			if len(k1) != KeySize {
				t.Fatalf("key length = %d, want %d", len(k1), KeySize)
			}
			if !bytes.Equal(k1, k2) {
				t.Fatalf("same secret and salt produced different keys")
			}
		})
	}
}

func TestDerive_DifferentInputsDifferentKeys(t *testing.T) {
	kd := newTestKeyDerivation(t, KDFArgon2id)
	salt1 := bytes.Repeat([]byte{1}, SaltSize)
	salt2 := bytes.Repeat([]byte{2}, SaltSize)

	base, _ := kd.Derive("secret", salt1)
	otherSalt, _ := kd.Derive("secret", salt2)
	otherSecret, _ := kd.Derive("secret2", salt1)

	if bytes.Equal(base, otherSalt) {
		t.Fatalf("different salts produced the same key")
	}
	if bytes.Equal(base, otherSecret) {
		t.Fatalf("different secrets produced the same key")
	}
}

func TestDerive_KDFsAreDistinct(t *testing.T) {
	kd := newTestKeyDerivation(t, KDFArgon2id)
	salt := bytes.Repeat([]byte{7}, SaltSize)

	a, err := kd.DeriveWith(KDFArgon2id, "secret", salt)
	if err != nil {
		t.Fatalf("DeriveWith argon2id error: %v", err)
	}
	p, err := kd.DeriveWith(KDFPBKDF2, "secret", salt)
	if err != nil {
		t.Fatalf("DeriveWith pbkdf2 error: %v", err)
	}
	if bytes.Equal(a, p) {
		t.Fatalf("argon2id and pbkdf2 produced the same key")
	}

	def, err := kd.DeriveWith("", "secret", salt)
	if err != nil {
		t.Fatalf("DeriveWith default error: %v", err)
	}
	if !bytes.Equal(def, a) {
		t.Fatalf("empty KDF name did not resolve to the default")
	}
}

func TestDerive_InvalidInput(t *testing.T) {
	kd := newTestKeyDerivation(t, KDFArgon2id)

	tests := []struct {
		name   string
		kdf    KDF
		secret string
		salt   []byte
	}{
		{"empty secret", KDFArgon2id, "", make([]byte, SaltSize)},
		{"nil salt", KDFArgon2id, "secret", nil},
		{"short salt", KDFArgon2id, "secret", make([]byte, MinSaltSize-1)},
		{"unknown kdf", KDF("scrypt"), "secret", make([]byte, SaltSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := kd.DeriveWith(tt.kdf, tt.secret, tt.salt)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if key != nil {
				t.Fatalf("expected no key on error")
			}
		})
	}
}

func TestNewKeyDerivation_Defaults(t *testing.T) {
	kd, err := NewKeyDerivation("", KDFParams{})
	if err != nil {
		t.Fatalf("NewKeyDerivation error: %v", err)
	}
	if kd.Default() != KDFArgon2id {
		t.Fatalf("default KDF = %q, want %q", kd.Default(), KDFArgon2id)
	}

	if _, err := NewKeyDerivation("md5", KDFParams{}); !errors.Is(err, ErrUnknownKDF) {
		t.Fatalf("err = %v, want ErrUnknownKDF", err)
	}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestParseKDF(t *testing.T) {
	if _, err := ParseKDF("pbkdf2-sha256"); err != nil {
		t.Fatalf("ParseKDF pbkdf2 error: %v", err)
	}
	if k, err := ParseKDF(""); err != nil || k != "" {
		t.Fatalf("ParseKDF empty = %q, %v", k, err)
	}
	if _, err := ParseKDF("bcrypt"); !errors.Is(err, ErrUnknownKDF) {
		t.Fatalf("err = %v, want ErrUnknownKDF", err)
	}
}
