package goArgon2

import (
	"golang.org/x/crypto/argon2"
)

// deriveKey dispatches one key derivation to the primitive. Parameters must
// already be validated: the primitive panics on out-of-range costs instead
// of returning errors.
func deriveKey(v Variant, password, salt []byte, p Params) ([]byte, error) {
	switch v {
	case Argon2i:
		return argon2.Key(password, salt, p.TimeCost, p.MemoryCost, p.Parallelism, p.OutputLength), nil
	case Argon2id:
		return argon2.IDKey(password, salt, p.TimeCost, p.MemoryCost, p.Parallelism, p.OutputLength), nil
	case Argon2d:
		return nil, ErrArgon2dUnsupported
	default:
		return nil, ErrUnknownVariant
	}
}

// HashRaw derives a raw key of exactly params.OutputLength bytes from
// password and salt under the given variant. Zero fields of params take the
// package defaults. Password and salt are treated as opaque bytes and may be
// empty; the primitive accepts zero-length inputs for both roles.
//
// HashRaw may return an error when input validation or the underlying
// primitive dispatch fails. It does not mutate shared global state and can
// be used concurrently.
func HashRaw(variant Variant, password, salt []byte, params Params) ([]byte, error) {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return deriveKey(variant, password, salt, p)
}

// HashEncoded derives a key and returns it as a self-describing PHC record
// bundling variant, version, cost parameters, salt, and hash. The salt must
// be at least 8 bytes; the encoded form is meaningless below that. Zero
// fields of params take the package defaults.
//
// The output buffer is sized exactly via encodedLen before anything is
// written; the returned string's length always equals that computation.
//
// HashEncoded may return an error when input validation or the underlying
// primitive dispatch fails. It does not mutate shared global state and can
// be used concurrently.
func HashEncoded(variant Variant, password, salt []byte, params Params) (string, error) {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return "", err
	}
	if len(salt) < minSaltLength {
		return "", ErrSaltTooShort
	}

	hash, err := deriveKey(variant, password, salt, p)
	if err != nil {
		return "", err
	}

	return buildRecord(variant, p, salt, hash), nil
}

/*
====================================
PER-VARIANT ENTRY POINTS
====================================
*/

// IHash derives a raw Argon2i key. See [HashRaw].
func IHash(password, salt []byte, params Params) ([]byte, error) {
	return HashRaw(Argon2i, password, salt, params)
}

// IHashEncoded derives an Argon2i key in PHC encoded form. See [HashEncoded].
func IHashEncoded(password, salt []byte, params Params) (string, error) {
	return HashEncoded(Argon2i, password, salt, params)
}

// DHash derives a raw Argon2d key. See [HashRaw].
//
// No pure-Go primitive implements Argon2d; until one does, DHash returns
// [ErrArgon2dUnsupported].
func DHash(password, salt []byte, params Params) ([]byte, error) {
	return HashRaw(Argon2d, password, salt, params)
}

// DHashEncoded derives an Argon2d key in PHC encoded form. See [HashEncoded]
// and the Argon2d note on [DHash].
func DHashEncoded(password, salt []byte, params Params) (string, error) {
	return HashEncoded(Argon2d, password, salt, params)
}

// IDHash derives a raw Argon2id key. See [HashRaw].
func IDHash(password, salt []byte, params Params) ([]byte, error) {
	return HashRaw(Argon2id, password, salt, params)
}

// IDHashEncoded derives an Argon2id key in PHC encoded form. See [HashEncoded].
func IDHashEncoded(password, salt []byte, params Params) (string, error) {
	return HashEncoded(Argon2id, password, salt, params)
}
