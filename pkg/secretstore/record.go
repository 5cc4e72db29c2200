package secretstore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/dmitrymomot/otpserver/pkg/secretcodec"
)

// RecordFormat selects how a secret is serialised before it reaches the backend.
type RecordFormat int

const (
	// FormatRaw writes the padded base32 text and nothing else.
	FormatRaw RecordFormat = iota
	// FormatEnvelope wraps the text in a versioned, checksummed header and can be sealed.
	FormatEnvelope
)

// Envelope layout:
//
//	magic[4] "\x00OTP" | version[1] | flags[1] | length[2] big-endian | payload[length] | crc32[4] big-endian
//
// The checksum is CRC-32 (IEEE) over every byte before it.
const (
	envelopeVersion = 0x01
	flagSealed      = 0x01

	headerSize   = 8
	checksumSize = 4
	maxPayload   = 0xFFFF
)

// The leading NUL keeps the magic out of the base32 alphabet, so raw text never matches it.
var envelopeMagic = []byte("\x00OTP")

// ParseRecordFormat accepts "raw" or "envelope", case-insensitively.
func ParseRecordFormat(s string) (RecordFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return FormatRaw, nil
	case "envelope":
		return FormatEnvelope, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRecordFormat, s)
	}
}

func (f RecordFormat) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatEnvelope:
		return "envelope"
	default:
		return fmt.Sprintf("RecordFormat(%d)", int(f))
	}
}

func (f RecordFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *RecordFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseRecordFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// encodeRecord serialises secret. A non-nil sealer always produces a sealed envelope,
// since raw records have nowhere to mark encryption.
func encodeRecord(format RecordFormat, secret []byte, s Sealer) ([]byte, error) {
	text := []byte(secretcodec.Encode(secret))
	if format == FormatRaw && s == nil {
		return text, nil
	}

	var flags byte
	payload := text
	if s != nil {
		sealed, err := s.Seal(text)
		if err != nil {
			return nil, err
		}
		payload = sealed
		flags |= flagSealed
	}
	if len(payload) > maxPayload {
		return nil, ErrRecordTooLarge
	}

	buf := make([]byte, 0, headerSize+len(payload)+checksumSize)
	buf = append(buf, envelopeMagic...)
	buf = append(buf, envelopeVersion, flags)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(payload)))
	buf = append(buf, payload...)
	buf = binary.BigEndian.AppendUint32(buf, crc32.ChecksumIEEE(buf))
	return buf, nil
}

// decodeRecord detects the format from the leading magic and returns the secret with
// the format it was stored in.
func decodeRecord(data []byte, s Sealer) ([]byte, RecordFormat, error) {
	if !bytes.HasPrefix(data, envelopeMagic) {
		secret, err := decodeText(bytes.TrimSpace(data))
		return secret, FormatRaw, err
	}

	if len(data) < headerSize+checksumSize {
		return nil, FormatEnvelope, errors.Join(ErrMalformedSecret, ErrTruncatedRecord)
	}
	version, flags := data[4], data[5]
	if version != envelopeVersion {
		return nil, FormatEnvelope, errors.Join(ErrMalformedSecret, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version))
	}
	if flags&^flagSealed != 0 {
		return nil, FormatEnvelope, errors.Join(ErrMalformedSecret, ErrUnknownFlags)
	}
	n := int(binary.BigEndian.Uint16(data[6:headerSize]))
	if len(data) != headerSize+n+checksumSize {
		return nil, FormatEnvelope, errors.Join(ErrMalformedSecret, ErrTruncatedRecord)
	}
	body := data[:headerSize+n]
	if crc32.ChecksumIEEE(body) != binary.BigEndian.Uint32(data[headerSize+n:]) {
		return nil, FormatEnvelope, errors.Join(ErrMalformedSecret, ErrChecksumMismatch)
	}

	payload := body[headerSize:]
	if flags&flagSealed != 0 {
		if s == nil {
			return nil, FormatEnvelope, ErrSealerRequired
		}
		opened, err := s.Open(payload)
		if err != nil {
			return nil, FormatEnvelope, errors.Join(ErrMalformedSecret, err)
		}
		payload = opened
	}

	secret, err := decodeText(payload)
	return secret, FormatEnvelope, err
}

func decodeText(text []byte) ([]byte, error) {
	secret, err := secretcodec.Decode(string(text))
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, errors.Join(ErrMalformedSecret, ErrEmptySecret)
	}
	return secret, nil
}
