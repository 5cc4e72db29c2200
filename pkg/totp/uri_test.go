package totp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrymomot/otpserver/pkg/secretcodec"
	"github.com/dmitrymomot/otpserver/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisioningURI(t *testing.T) {
	t.Parallel()
	secret := []byte("12345678901234567890")

	tests := []struct {
		name   string
		label  string
		issuer string
		opts   []totp.URIOption
		want   string
	}{
		{
			name:   "defaults",
			label:  "Alice",
			issuer: "Example",
			want:   "otpauth://totp/Alice?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Example&algorithm=SHA1&digits=6&period=30",
		},
		{
			name:   "reserved characters are escaped",
			label:  "Acme:alice@example.com",
			issuer: "Test & App/?%",
			want:   "otpauth://totp/Acme%3Aalice%40example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Test%20%26%20App%2F%3F%25&algorithm=SHA1&digits=6&period=30",
		},
		{
			name:   "unicode is utf-8 percent encoded",
			label:  "Zoë",
			issuer: "Ünïcode",
			want:   "otpauth://totp/Zo%C3%AB?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=%C3%9Cn%C3%AFcode&algorithm=SHA1&digits=6&period=30",
		},
		{
			name:  "empty issuer is omitted",
			label: "OTP-Server",
			want:  "otpauth://totp/OTP-Server?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&algorithm=SHA1&digits=6&period=30",
		},
		{
			name:   "custom parameters",
			label:  "bob",
			issuer: "Acme",
			opts: []totp.URIOption{
				totp.WithURIDigits(8),
				totp.WithURIPeriod(60),
				totp.WithURIAlgorithm(totp.AlgorithmSHA256),
			},
			want: "otpauth://totp/bob?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Acme&algorithm=SHA256&digits=8&period=60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, totp.ProvisioningURI(secret, tt.label, tt.issuer, tt.opts...))
		})
	}
}

func TestProvisioningURI_NormalisesUnicode(t *testing.T) {
	t.Parallel()
	// "e" + combining acute accent composes to U+00E9 under NFC.
	decomposed := totp.ProvisioningURI([]byte("k"), "Jose\u0301", "")
	composed := totp.ProvisioningURI([]byte("k"), "Jos\u00e9", "")
	assert.Equal(t, composed, decomposed)
	assert.True(t, strings.HasPrefix(composed, "otpauth://totp/Jos%C3%A9?"))
}

func TestProvisioningURI_SecretRoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 10, 16, 20, 32, 64} {
		secret := make([]byte, n)
		for i := range secret {
			secret[i] = byte(i*37 + n)
		}

		uri := totp.ProvisioningURI(secret, "Alice", "Example")
		require.True(t, strings.HasPrefix(uri, "otpauth://totp/"))

		u, err := url.Parse(uri)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, "Example", q.Get("issuer"))
		assert.NotContains(t, q.Get("secret"), "=")

		decoded, err := secretcodec.Decode(q.Get("secret"))
		require.NoError(t, err)
		assert.Equal(t, secret, decoded)
	}
}

func TestTOTP_ProvisioningURI(t *testing.T) {
	t.Parallel()
	engine := totp.New(totp.WithDigits(8), totp.WithPeriod(45), totp.WithAlgorithm(totp.AlgorithmSHA512))
	uri := engine.ProvisioningURI([]byte("12345678901234567890"), "Alice", "Example")
	assert.Contains(t, uri, "algorithm=SHA512")
	assert.Contains(t, uri, "digits=8")
	assert.Contains(t, uri, "period=45")
}

func TestProvisioningURI_ContractViolation(t *testing.T) {
	t.Parallel()
	requireContractViolation(t, func() {
		totp.ProvisioningURI([]byte("k"), "a", "b", totp.WithURIDigits(0))
	})
	requireContractViolation(t, func() {
		totp.ProvisioningURI([]byte("k"), "a", "b", totp.WithURIPeriod(0))
	})
}
