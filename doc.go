// Package goArgon2 provides password hashing and verification over the three
// Argon2 variants (Argon2d, Argon2i, Argon2id), with raw and PHC-encoded
// output and variant-inferring verification.
//
// # Output format
//
// Encoded hashes use the PHC string format, ASCII, base64 without padding,
// no trailing newline:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// The variant tag (argon2d, argon2i, argon2id) is embedded in the record, so
// [Check] verifies a password without the caller knowing which variant or
// parameters produced the hash.
//
// # Entry points
//
// The parameterized core is [HashRaw] and [HashEncoded]; [IHash], [DHash],
// [IDHash] and their Encoded counterparts are thin per-variant wrappers with
// overridable per-call defaults (TimeCost 32, MemoryCost 128 KiB,
// Parallelism 1, OutputLength 64). [Hasher] is a configured, reusable
// service with salt generation, rehash detection, and optional metrics.
//
// All operations are synchronous and reentrant: concurrent callers are safe
// as long as each call uses its own inputs. An in-flight hash deliberately
// burns CPU and memory by design and runs to completion; there is no
// cancellation.
//
// # Architecture boundaries
//
// goArgon2 owns parameter defaulting and validation, encoded-record sizing
// and construction, variant dispatch, and variant inference. The memory-hard
// mixing itself is delegated to golang.org/x/crypto/argon2 and treated as an
// already-correct primitive. Argon2d is handled fully at the format layer but
// has no pure-Go compute backend; hashing or verifying an argon2d record
// returns [ErrArgon2dUnsupported].
//
// # What this package must NOT do
//
//   - Store or retrieve hashes — callers supply inputs and receive outputs.
//   - Enforce password policy (length, reuse, complexity).
//   - Log passwords, salts, or derived keys.
//   - Retry a failed hash: a memory-hard computation is only re-run on
//     explicit caller request.
package goArgon2
