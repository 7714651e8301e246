package passwd

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/demomarket/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256_KnownDigest(t *testing.T) {
	got, err := SHA256{}.Hash([]byte("password"))
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", got)
}

func TestSHA256_Deterministic(t *testing.T) {
	a, _ := SHA256{}.Hash([]byte("secret-password"))
	b, _ := SHA256{}.Hash([]byte("secret-password"))
	assert.Equal(t, a, b)
}

func TestSHA256_Verify(t *testing.T) {
	h := SHA256{}
	enc, _ := h.Hash([]byte("pw"))

	assert.True(t, h.Verify(enc, []byte("pw")))
	assert.False(t, h.Verify(enc, []byte("PW")))
	assert.False(t, h.Verify("", []byte("pw")))
}

func TestArgon2ID_SaltedAndVerifies(t *testing.T) {
	h := Argon2ID{}
	a, err := h.Hash([]byte("pw"))
	require.NoError(t, err)
	b, err := h.Hash([]byte("pw"))
	require.NoError(t, err)

	// разные соли -> разные строки
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "argon2id$"))

	assert.True(t, h.Verify(a, []byte("pw")))
	assert.True(t, h.Verify(b, []byte("pw")))
	assert.False(t, h.Verify(a, []byte("other")))
}

func TestArgon2ID_VerifyMalformed(t *testing.T) {
	h := Argon2ID{}
	for _, enc := range []string{"", "argon2id$zz$00", "argon2id$00", "sha256$00$00", "argon2id$00$zz"} {
		assert.False(t, h.Verify(enc, []byte("pw")), "encoded %q", enc)
	}
}

func TestParseArgon2_Errors(t *testing.T) {
	_, _, err := parseArgon2("nope")
	require.True(t, errors.Is(err, common.ErrorMalformedPasswdHash))
}

func TestNew(t *testing.T) {
	h, err := New("sha256")
	require.NoError(t, err)
	assert.IsType(t, SHA256{}, h)

	h, err = New("")
	require.NoError(t, err)
	assert.IsType(t, SHA256{}, h)

	h, err = New("argon2id")
	require.NoError(t, err)
	assert.IsType(t, Argon2ID{}, h)

	_, err = New("md5")
	require.ErrorIs(t, err, common.ErrorUnknownHasher)
}

func TestVerify_PicksSchemeFromDigest(t *testing.T) {
	shaDigest, _ := SHA256{}.Hash([]byte("pw"))
	argonDigest, err := Argon2ID{}.Hash([]byte("pw"))
	require.NoError(t, err)

	// хешер из конфига не влияет на проверку уже сохранённых хешей
	for _, h := range []Hasher{SHA256{}, Argon2ID{}} {
		assert.True(t, h.Verify(shaDigest, []byte("pw")), "%T on sha256 digest", h)
		assert.True(t, h.Verify(argonDigest, []byte("pw")), "%T on argon2id digest", h)
		assert.False(t, h.Verify(shaDigest, []byte("other")), "%T on sha256 digest", h)
		assert.False(t, h.Verify(argonDigest, []byte("other")), "%T on argon2id digest", h)
	}
}
