package goArgon2

import "crypto/subtle"

// Check verifies a password against a PHC encoded record, inferring the
// variant and cost parameters from the record itself.
//
// The variant tag is inspected before anything else; a record whose tag is
// unrecognized is rejected without touching the rest of the string or the
// primitive, so malformed input produces no timing signal about the
// password. The comparison of the recomputed key against the recorded hash
// is constant time.
//
// Check returns (true, nil) on a match, (false, nil) on a clean mismatch,
// and (false, err) when the record cannot be parsed (errors.Is the error
// against [ErrMalformedRecord]) or its variant cannot be computed.
func Check(encoded string, password []byte) (bool, error) {
	rec, err := parseRecord(encoded)
	if err != nil {
		return false, err
	}

	computed, err := deriveKey(rec.variant, password, rec.salt, rec.params)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(computed, rec.hash) == 1, nil
}
