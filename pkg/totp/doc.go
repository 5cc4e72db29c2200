// Package totp implements the one-time password primitives behind authenticator apps:
// RFC 4226 HOTP, RFC 6238 TOTP and the otpauth:// provisioning URI.
//
// Everything here is a pure function of its inputs. There is no clock, no storage and no
// shared mutable state, so the same secret, counter and parameters always produce the same
// code, across process restarts and across conforming implementations.
//
// # Architecture
//
//   - hotp.go    – HOTP: HMAC over the big-endian counter, dynamic truncation to a 31-bit
//     integer, reduction modulo 10^digits and zero padding.
//
//   - totp.go    – the TOTP engine. Maps unix time to a counter with a fixed step, produces
//     codes and reports the seconds remaining in the current step so schedulers can align
//     their refresh to step boundaries.
//
//   - uri.go     – ProvisioningURI builds the otpauth://totp/ descriptor with the secret in
//     unpadded base32 and label/issuer percent-encoded as URI components.
//
//   - secret.go  – the Secret type with constant-time comparison and a log-safe fingerprint.
//
// Parameters default to SHA1, 6 digits and a 30 second step. SHA256 and SHA512 can be
// substituted without changing the surrounding algorithm.
//
// # Usage
//
//	engine := totp.New() // SHA1, 6 digits, 30s
//
//	now := totp.UnixTime(time.Now())
//	code := engine.CodeAt(secret, now)
//	wait := engine.Remaining(now) // seconds until the code changes
//
//	uri := engine.ProvisioningURI(secret, "alice@example.com", "Acme")
//
// # Error Handling
//
// The primitives have no runtime failure path. Parameters that only a programmer can get
// wrong (digits outside 1..10, a zero period, an unknown Algorithm, a time before the
// epoch) panic with an error wrapping ErrContractViolation. Configuration read from the
// environment goes through NewFromConfig and ParseAlgorithm instead, which return
// ErrInvalidDigits, ErrInvalidPeriod or ErrUnknownAlgorithm.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
