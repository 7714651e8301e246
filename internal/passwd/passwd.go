// Package passwd turns passwords into stored digests and checks them.
//
// Two schemes exist. SHA256 is an unsalted hex digest, the format the demo
// data has always used; it is not safe for real accounts. Argon2ID derives
// a key with a random per-user salt and encodes both into the stored string.
//
// The configured scheme only decides how new digests are made. Verification
// reads the scheme from the stored string, so accounts created under one
// scheme can still log in after the setting changes.
package passwd

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/demomarket/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SchemeSHA256   = "sha256"
	SchemeArgon2ID = "argon2id"

	argonSaltSize = 16
)

// Hasher produces and verifies encoded password digests. Verify accepts a
// digest of either scheme.
type Hasher interface {
	Hash(password []byte) (string, error)
	Verify(encoded string, password []byte) bool
}

// New returns the hasher registered under scheme.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeSHA256, "":
		return SHA256{}, nil
	case SchemeArgon2ID:
		return Argon2ID{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownHasher, scheme)
	}
}

// SHA256 is the deterministic lowercase-hex SHA-256 of the password.
type SHA256 struct{}

func (SHA256) Hash(password []byte) (string, error) {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:]), nil
}

func (SHA256) Verify(encoded string, password []byte) bool {
	return Verify(encoded, password)
}

func verifySHA256(encoded string, password []byte) bool {
	candidate, _ := SHA256{}.Hash(password)
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(candidate)) == 1
}

// Verify checks password against encoded, picking the scheme from the
// encoded form: an "argon2id$" prefix means Argon2ID, anything else SHA256.
func Verify(encoded string, password []byte) bool {
	if strings.HasPrefix(encoded, SchemeArgon2ID+"$") {
		return verifyArgon2(encoded, password)
	}
	return verifySHA256(encoded, password)
}

// Argon2ID stores "argon2id$<salt hex>$<key hex>".
type Argon2ID struct{}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

func (Argon2ID) Hash(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(argonSaltSize)
	key := deriveKey(password, salt)
	return strings.Join([]string{SchemeArgon2ID, hex.EncodeToString(salt), hex.EncodeToString(key)}, "$"), nil
}

func (Argon2ID) Verify(encoded string, password []byte) bool {
	return Verify(encoded, password)
}

func verifyArgon2(encoded string, password []byte) bool {
	salt, key, err := parseArgon2(encoded)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(key, deriveKey(password, salt)) == 1
}

func parseArgon2(encoded string) (salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != SchemeArgon2ID {
		return nil, nil, common.ErrorMalformedPasswdHash
	}
	if salt, err = hex.DecodeString(parts[1]); err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %v", common.ErrorMalformedPasswdHash, err)
	}
	if key, err = hex.DecodeString(parts[2]); err != nil {
		return nil, nil, fmt.Errorf("%w: key: %v", common.ErrorMalformedPasswdHash, err)
	}
	return salt, key, nil
}
