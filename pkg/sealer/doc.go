// Package sealer encrypts persisted secret records at rest.
//
// A 32-byte master key (OTP_ENCRYPTION_KEY, base64) is expanded with HKDF-SHA256 using the
// record name as salt, and the derived key drives AES-256-GCM. The random nonce is prepended
// to the ciphertext so a sealed record is self-contained.
//
// # Usage
//
//	key, err := sealer.ParseKey(os.Getenv("OTP_ENCRYPTION_KEY"))
//	if err != nil {
//	    return err
//	}
//	s, err := sealer.New(key, "otpserver")
//	if err != nil {
//	    return err
//	}
//	sealed, _ := s.Seal([]byte("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"))
//	plain, err := s.Open(sealed)
//
// # Error Handling
//
// Failures wrap ErrInvalidKey, ErrKeyDerivationFailed, ErrSealFailed or ErrOpenFailed.
// A record sealed under another key or salt, or modified in any byte, fails to open.
package sealer
