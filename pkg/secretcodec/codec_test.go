package secretcodec_test

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"testing"

	"github.com/dmitrymomot/otpserver/pkg/secretcodec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 4648 section 10 test vectors.
var rfcVectors = []struct {
	plain   string
	encoded string
}{
	{"", ""},
	{"f", "MY======"},
	{"fo", "MZXQ===="},
	{"foo", "MZXW6==="},
	{"foob", "MZXW6YQ="},
	{"fooba", "MZXW6YTB"},
	{"foobar", "MZXW6YTBOI======"},
}

func TestEncode(t *testing.T) {
	t.Parallel()
	for _, v := range rfcVectors {
		t.Run(v.plain, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, v.encoded, secretcodec.Encode([]byte(v.plain)))
			assert.Equal(t, strings.TrimRight(v.encoded, "="), secretcodec.EncodeNoPadding([]byte(v.plain)))
		})
	}

	t.Run("rfc 4226 secret", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", secretcodec.Encode([]byte("12345678901234567890")))
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()
	for _, v := range rfcVectors {
		t.Run(v.encoded, func(t *testing.T) {
			t.Parallel()
			got, err := secretcodec.Decode(v.encoded)
			require.NoError(t, err)
			assert.Equal(t, []byte(v.plain), got)

			got, err = secretcodec.Decode(strings.ToLower(strings.TrimRight(v.encoded, "=")))
			require.NoError(t, err)
			assert.Equal(t, []byte(v.plain), got)
		})
	}

	t.Run("empty string yields empty bytes", func(t *testing.T) {
		t.Parallel()
		got, err := secretcodec.Decode("")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestDecodeRejectsMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"digits outside alphabet", "12345", secretcodec.ErrInvalidCharacter},
		{"symbol outside alphabet", "MZXW6YT!", secretcodec.ErrInvalidCharacter},
		{"space inside", "MZXW 6YTB", secretcodec.ErrInvalidCharacter},
		{"single symbol outside alphabet", "1", secretcodec.ErrInvalidCharacter},
		{"data after padding", "MY=A====", secretcodec.ErrInvalidPadding},
		{"padded length not multiple of 8", "MY====", secretcodec.ErrInvalidPadding},
		{"full block of padding", "========", secretcodec.ErrInvalidPadding},
		{"block followed by full padding", "MZXW6YTB========", secretcodec.ErrInvalidPadding},
		{"one trailing symbol", "MZXW6YTBO", secretcodec.ErrInvalidLength},
		{"three trailing symbols", "MZX", secretcodec.ErrInvalidLength},
		{"six trailing symbols padded", "MZXW6Y==", secretcodec.ErrInvalidLength},
		{"single symbol", "A", secretcodec.ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := secretcodec.Decode(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, secretcodec.ErrMalformedSecret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for n := range 65 {
		b := make([]byte, n)
		_, err := rand.Read(b)
		require.NoError(t, err)

		padded := secretcodec.Encode(b)
		assert.Zero(t, len(padded)%8, "length %d", n)
		assert.Equal(t, base32.StdEncoding.EncodeToString(b), padded, "length %d", n)

		got, err := secretcodec.Decode(padded)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, b, got, "length %d", n)

		unpadded := secretcodec.EncodeNoPadding(b)
		assert.Equal(t, base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b), unpadded, "length %d", n)

		got, err = secretcodec.Decode(unpadded)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, b, got, "length %d", n)
	}
}
