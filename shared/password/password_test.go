package password_test

import (
	"errors"
	"strings"
	"testing"

	"gor/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "secret123",
			wantErr:  nil,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  password.ErrEmptyPassword,
		},
		{
			name:     "password with special characters",
			password: "p@$$w0rd!#%",
			wantErr:  nil,
		},
		{
			name:     "unicode password",
			password: "kata-sandi-ünïcödé",
			wantErr:  nil,
		},
		{
			name:     "password longer than bcrypt limit",
			password: strings.Repeat("a", 73),
			wantErr:  password.ErrHashingPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("password.Hash() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if hash == "" {
					t.Error("password.Hash() returned empty hash for valid password")
				}
				if hash == tt.password {
					t.Error("password.Hash() returned plaintext password")
				}
			}
		})
	}
}

func TestVerify(t *testing.T) {
	const plain = "secret123"

	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("password.Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{
			name:     "matching password",
			password: plain,
			hash:     hash,
			wantErr:  nil,
		},
		{
			name:     "wrong password",
			password: "not-the-password",
			hash:     hash,
			wantErr:  password.ErrInvalidPassword,
		},
		{
			name:     "empty password",
			password: "",
			hash:     hash,
			wantErr:  password.ErrInvalidPassword,
		},
		{
			name:     "empty hash",
			password: plain,
			hash:     "",
			wantErr:  password.ErrInvalidPassword,
		},
		{
			name:     "malformed hash",
			password: plain,
			hash:     "not-a-bcrypt-hash",
			wantErr:  password.ErrVerifyingPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := password.Verify(tt.password, tt.hash); !errors.Is(err, tt.wantErr) {
				t.Errorf("password.Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashProducesUniqueSalts(t *testing.T) {
	first, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("password.Hash() error = %v", err)
	}

	second, err := password.Hash("secret123")
	if err != nil {
		t.Fatalf("password.Hash() error = %v", err)
	}

	if first == second {
		t.Error("password.Hash() produced identical hashes for the same password")
	}
}
