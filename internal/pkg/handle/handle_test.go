package handle

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/bank-mobile-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return c
}

func TestNewCodec_ShortSecret(t *testing.T) {
	_, err := NewCodec([]byte("too short"))
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)
	for _, acc := range []string{"0801375001", "1", "00000000", "ACC-2024-000193", "9999999999999999"} {
		got, err := c.Decode(c.Encode(acc))
		require.NoError(t, err)
		assert.Equal(t, acc, got)
	}
}

func TestCodec_Deterministic(t *testing.T) {
	c := newTestCodec(t)
	assert.Equal(t, c.Encode("0801375001"), c.Encode("0801375001"))
	assert.NotEqual(t, c.Encode("0801375001"), c.Encode("0801375002"))
}

func TestCodec_GarbageTokens(t *testing.T) {
	c := newTestCodec(t)
	for _, tok := range []string{
		"",
		"not base64 at all!!!",
		"YWJj", // valid base64, far too short
		base64.RawURLEncoding.EncodeToString([]byte("just some bytes that were never sealed here")),
		base64.StdEncoding.EncodeToString([]byte("padding-flavoured base64 is rejected too==")),
	} {
		_, err := c.Decode(tok)
		require.Error(t, err, "token %q", tok)
		assert.True(t, errors.Is(err, domain.ErrMalformedHandle), "token %q", tok)
	}
}

func TestCodec_TamperedToken(t *testing.T) {
	c := newTestCodec(t)
	tok := c.Encode("0801375001")
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)

	for i := range raw {
		mutated := append([]byte(nil), raw...)
		mutated[i] ^= 0x01
		_, err := c.Decode(base64.RawURLEncoding.EncodeToString(mutated))
		require.Error(t, err, "flipping byte %d must not yield a valid handle", i)
		assert.True(t, errors.Is(err, domain.ErrMalformedHandle))
	}
}

func TestCodec_WrongKeyRejected(t *testing.T) {
	c := newTestCodec(t)
	other, err := NewCodec([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	tok := other.Encode("0801375001")
	_, err = c.Decode(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedHandle))
}

func TestCodec_HandleIsOpaque(t *testing.T) {
	c := newTestCodec(t)
	acc := "0801375001"
	tok := c.Encode(acc)
	assert.False(t, strings.Contains(tok, acc))

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), acc))
}
