// Package secretstore persists the shared TOTP secret.
//
// A Store turns a totp.Secret into a record and hands it to a Backend, which keeps
// exactly one record and replaces it atomically. The Store owns the lifecycle:
//
//   - Load reads and decodes the record (ErrNotFound, ErrMalformedSecret, ErrStoreUnavailable).
//   - Generate draws SecretSize random bytes.
//   - Save encodes and writes.
//   - LoadOrCreate loads, or generates and saves when no record exists yet.
//   - Rotate generates and saves unconditionally.
//
// # Record formats
//
// FormatRaw is the padded base32 text alone, compatible with secret files written by
// earlier tools. Surrounding whitespace is ignored on read so hand-edited files load.
//
// FormatEnvelope adds a header and a checksum:
//
//	"\x00OTP" | 0x01 | flags | length (uint16 BE) | payload | CRC-32 IEEE (uint32 BE)
//
// Flag bit 0 marks a payload sealed with AES-256-GCM (see pkg/sealer). Load detects the
// format from the magic bytes, so a store switched to envelopes keeps reading its old
// raw record and rewrites it as an envelope on the next Save or Rotate.
//
// # Backends
//
//   - FileBackend: temp file, fsync, rename. The default, at ./secret.
//   - RedisBackend: one key, written with SET.
//   - S3Backend: one object, written with PutObject.
//   - PostgresBackend: one row of otp_secrets, written with an upsert. Apply Migrations first.
//   - MongoBackend: one document, written with an upserting ReplaceOne.
//
// Backends never retry. Connection retries happen once at startup in pkg/redis, pkg/pg
// and pkg/mongo.
//
// # Usage
//
//	store := secretstore.New(secretstore.NewFileBackend("secret"),
//	    secretstore.WithFormat(secretstore.FormatEnvelope),
//	    secretstore.WithLogger(log),
//	)
//	secret, err := store.LoadOrCreate(ctx)
package secretstore
