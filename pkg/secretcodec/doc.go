// Package secretcodec converts shared secrets between raw bytes and RFC 4648 base32 text.
//
// Two encodings are provided. Encode produces the padded, storage-oriented form where the
// output length is always a multiple of eight characters. EncodeNoPadding drops the trailing
// '=' characters, which is what otpauth:// provisioning URIs require.
//
// Decode accepts either form, upper or lower case, and rejects anything that no byte
// sequence could have produced: characters outside the alphabet, padding followed by data,
// padded text whose length is not a multiple of eight, and data lengths that leave one,
// three or six symbols in the final block. The empty string decodes to an empty slice.
//
// # Usage
//
//	text := secretcodec.Encode(secret)      // "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
//	raw, err := secretcodec.Decode(text)
//	if errors.Is(err, secretcodec.ErrMalformedSecret) {
//	    // surface to the caller, never replace silently
//	}
//
// # Error Handling
//
// Every decode failure wraps ErrMalformedSecret together with one of ErrInvalidCharacter,
// ErrInvalidPadding or ErrInvalidLength.
package secretcodec
