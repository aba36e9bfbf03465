package goArgon2

import "errors"

var (
	// ErrInvalidTimeCost is an exported constant or variable used by the hashing engine.
	ErrInvalidTimeCost = errors.New("time cost must be >= 1")
	// ErrInvalidMemoryCost is an exported constant or variable used by the hashing engine.
	ErrInvalidMemoryCost = errors.New("memory cost must be >= 8 KiB per lane")
	// ErrInvalidParallelism is an exported constant or variable used by the hashing engine.
	ErrInvalidParallelism = errors.New("parallelism must be >= 1")
	// ErrInvalidOutputLength is an exported constant or variable used by the hashing engine.
	ErrInvalidOutputLength = errors.New("output length must be >= 4 bytes")
	// ErrSaltTooShort is an exported constant or variable used by the hashing engine.
	ErrSaltTooShort = errors.New("salt must be at least 8 bytes for encoded hashes")
	// ErrSaltLengthTooShort is an exported constant or variable used by the hashing engine.
	ErrSaltLengthTooShort = errors.New("configured salt length must be at least 8 bytes")
	// ErrUnknownVariant is an exported constant or variable used by the hashing engine.
	ErrUnknownVariant = errors.New("unknown argon2 variant")
	// ErrArgon2dUnsupported is an exported constant or variable used by the hashing engine.
	ErrArgon2dUnsupported = errors.New("argon2d is not implemented by the underlying primitive")
	// ErrMalformedRecord is an exported constant or variable used by the hashing engine.
	ErrMalformedRecord = errors.New("malformed argon2 record")
)
