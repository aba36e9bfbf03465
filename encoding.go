package goArgon2

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// record is the parsed form of a PHC encoded hash.
type record struct {
	variant Variant
	params  Params
	salt    []byte
	hash    []byte
}

// numLen returns the number of base-10 digits of n (1 for n=0).
func numLen(n uint32) int {
	l := 1
	for n > 9 {
		n /= 10
		l++
	}
	return l
}

// encodedLen returns the exact byte length of the encoded record
//
//	$<tag>$v=<version>$m=<m>,t=<t>,p=<p>$<b64 salt>$<b64 hash>
//
// for the given variant, parameters, and salt length. The record is built
// into a buffer pre-sized with this value, and tests pin the computation
// against the built string across the supported parameter ranges; an
// undersized result here would mean a reallocation, an oversized one wasted
// capacity, so the length is computed term by term rather than approximated.
func encodedLen(v Variant, p Params, saltLen int) int {
	return 1 + len(v.String()) +
		3 + numLen(argon2.Version) +
		3 + numLen(p.MemoryCost) +
		3 + numLen(p.TimeCost) +
		3 + numLen(uint32(p.Parallelism)) +
		1 + base64.RawStdEncoding.EncodedLen(saltLen) +
		1 + base64.RawStdEncoding.EncodedLen(int(p.OutputLength))
}

// buildRecord assembles the PHC string for an already-computed hash. The
// builder is grown once to the exact final size before any writes.
func buildRecord(v Variant, p Params, salt, hash []byte) string {
	var b strings.Builder
	b.Grow(encodedLen(v, p, len(salt)))

	b.WriteByte('$')
	b.WriteString(v.String())
	b.WriteString("$v=")
	b.WriteString(strconv.Itoa(argon2.Version))
	b.WriteString("$m=")
	b.WriteString(strconv.FormatUint(uint64(p.MemoryCost), 10))
	b.WriteString(",t=")
	b.WriteString(strconv.FormatUint(uint64(p.TimeCost), 10))
	b.WriteString(",p=")
	b.WriteString(strconv.FormatUint(uint64(p.Parallelism), 10))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(hash))

	return b.String()
}

// inferVariant maps the delimiter-bounded tag of an encoded record to a
// Variant. The tag is matched exactly, which preserves the required
// precedence: an "argon2id" record can never be classified as "argon2i" or
// "argon2d".
func inferVariant(tag string) (Variant, error) {
	switch tag {
	case tagArgon2id:
		return Argon2id, nil
	case tagArgon2i:
		return Argon2i, nil
	case tagArgon2d:
		return Argon2d, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized variant tag %q", ErrMalformedRecord, tag)
	}
}

// parseRecord splits and validates an encoded record. Variant inference runs
// first; nothing else is inspected, and no key derivation happens, for a
// record whose tag is unrecognized.
func parseRecord(encoded string) (*record, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty record", ErrMalformedRecord)
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 5 '$'-delimited fields", ErrMalformedRecord)
	}

	variant, err := inferVariant(parts[1])
	if err != nil {
		return nil, err
	}

	versionPart, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return nil, fmt.Errorf("%w: missing version field", ErrMalformedRecord)
	}
	version, err := strconv.Atoi(versionPart)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version field", ErrMalformedRecord)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedRecord, version)
	}

	params, err := parseParams(parts[3])
	if err != nil {
		return nil, err
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedRecord)
	}
	if len(salt) < minSaltLength {
		return nil, fmt.Errorf("%w: salt shorter than %d bytes", ErrMalformedRecord, minSaltLength)
	}

	hash, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash encoding", ErrMalformedRecord)
	}
	if len(hash) < int(minOutputLength) {
		return nil, fmt.Errorf("%w: hash shorter than %d bytes", ErrMalformedRecord, minOutputLength)
	}
	params.OutputLength = uint32(len(hash))

	return &record{
		variant: variant,
		params:  params,
		salt:    salt,
		hash:    hash,
	}, nil
}

// parseParams reads the "m=...,t=...,p=..." field. All three keys must be
// present exactly once; order is not significant.
func parseParams(part string) (Params, error) {
	var (
		params                             Params
		memorySet, timeSet, parallelismSet bool
	)

	pairs := strings.Split(part, ",")
	if len(pairs) != 3 {
		return params, fmt.Errorf("%w: expected 3 cost parameters", ErrMalformedRecord)
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return params, fmt.Errorf("%w: invalid parameter entry %q", ErrMalformedRecord, pair)
		}

		switch key {
		case "m":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || memorySet {
				return params, fmt.Errorf("%w: invalid memory parameter", ErrMalformedRecord)
			}
			params.MemoryCost = uint32(v)
			memorySet = true
		case "t":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || timeSet {
				return params, fmt.Errorf("%w: invalid time parameter", ErrMalformedRecord)
			}
			params.TimeCost = uint32(v)
			timeSet = true
		case "p":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil || parallelismSet {
				return params, fmt.Errorf("%w: invalid parallelism parameter", ErrMalformedRecord)
			}
			params.Parallelism = uint8(v)
			parallelismSet = true
		default:
			return params, fmt.Errorf("%w: unsupported parameter %q", ErrMalformedRecord, key)
		}
	}

	if !memorySet || !timeSet || !parallelismSet {
		return params, fmt.Errorf("%w: missing cost parameters", ErrMalformedRecord)
	}

	if params.TimeCost < minTimeCost ||
		params.Parallelism < 1 ||
		params.MemoryCost < memoryPerLane*uint32(params.Parallelism) {
		return params, fmt.Errorf("%w: cost parameters out of range", ErrMalformedRecord)
	}

	return params, nil
}
