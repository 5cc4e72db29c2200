package totp

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/otpserver/pkg/secretcodec"
)

const upperhex = "0123456789ABCDEF"

type uriParams struct {
	digits    int
	period    uint64
	algorithm Algorithm
}

// URIOption overrides a provisioning URI parameter.
type URIOption func(*uriParams)

func WithURIDigits(n int) URIOption {
	return func(p *uriParams) { p.digits = n }
}

func WithURIPeriod(seconds uint64) URIOption {
	return func(p *uriParams) { p.period = seconds }
}

func WithURIAlgorithm(a Algorithm) URIOption {
	return func(p *uriParams) { p.algorithm = a }
}

// ProvisioningURI creates the otpauth:// descriptor authenticator apps import.
// The format follows the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The secret is base32 without padding. Label and issuer are NFC-normalised and
// percent-encoded as URI components, so ':' '/' '?' '&' '%' and spaces never leak
// into the structure. An empty issuer omits the parameter.
func ProvisioningURI(secret []byte, label, issuer string, opts ...URIOption) string {
	p := uriParams{
		digits:    DefaultDigits,
		period:    DefaultPeriod,
		algorithm: AlgorithmSHA1,
	}
	for _, opt := range opts {
		opt(&p)
	}
	mustValidDigits(p.digits)
	if p.period == 0 {
		panic(fmt.Errorf("%w: %w", ErrContractViolation, ErrInvalidPeriod))
	}

	var sb strings.Builder
	sb.WriteString("otpauth://totp/")
	sb.WriteString(escapeComponent(label))
	sb.WriteString("?secret=")
	sb.WriteString(secretcodec.EncodeNoPadding(secret))
	if issuer != "" {
		sb.WriteString("&issuer=")
		sb.WriteString(escapeComponent(issuer))
	}
	sb.WriteString("&algorithm=")
	sb.WriteString(p.algorithm.String())
	sb.WriteString("&digits=")
	sb.WriteString(strconv.Itoa(p.digits))
	sb.WriteString("&period=")
	sb.WriteString(strconv.FormatUint(p.period, 10))
	return sb.String()
}

// escapeComponent percent-encodes everything except RFC 3986 unreserved characters.
// url.PathEscape leaves ':' and '&' alone and url.QueryEscape turns spaces into '+',
// which several authenticator apps display literally.
func escapeComponent(s string) string {
	s = norm.NFC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0x0F])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
