package goArgon2

/*
====================================
VARIANTS
====================================
*/

// Variant defines a public type used by goArgon2 APIs.
//
// Variant values select which member of the Argon2 family a hash or
// verification runs under. The numeric values mirror the reference
// implementation's argon2_type enum (d=0, i=1, id=2).
type Variant uint8

const (
	// Argon2d is an exported constant or variable used by the hashing engine.
	Argon2d Variant = iota
	// Argon2i is an exported constant or variable used by the hashing engine.
	Argon2i
	// Argon2id is an exported constant or variable used by the hashing engine.
	Argon2id
)

const (
	tagArgon2d  = "argon2d"
	tagArgon2i  = "argon2i"
	tagArgon2id = "argon2id"
)

// String returns the PHC record tag for the variant.
func (v Variant) String() string {
	switch v {
	case Argon2d:
		return tagArgon2d
	case Argon2i:
		return tagArgon2i
	case Argon2id:
		return tagArgon2id
	default:
		return "argon2?"
	}
}

func (v Variant) valid() bool {
	return v == Argon2d || v == Argon2i || v == Argon2id
}

// ParseVariant maps a PHC tag ("argon2d", "argon2i", "argon2id") to its
// Variant. Unrecognized names return [ErrUnknownVariant].
func ParseVariant(s string) (Variant, error) {
	switch s {
	case tagArgon2d:
		return Argon2d, nil
	case tagArgon2i:
		return Argon2i, nil
	case tagArgon2id:
		return Argon2id, nil
	default:
		return 0, ErrUnknownVariant
	}
}

/*
====================================
PARAMETERS
====================================
*/

const (
	// DefaultTimeCost is an exported constant or variable used by the hashing engine.
	DefaultTimeCost uint32 = 32
	// DefaultMemoryCost is an exported constant or variable used by the hashing engine.
	DefaultMemoryCost uint32 = 128
	// DefaultParallelism is an exported constant or variable used by the hashing engine.
	DefaultParallelism uint8 = 1
	// DefaultOutputLength is an exported constant or variable used by the hashing engine.
	DefaultOutputLength uint32 = 64

	minTimeCost     uint32 = 1
	minOutputLength uint32 = 4
	minSaltLength          = 8
	memoryPerLane   uint32 = 8
)

// Params defines a public type used by goArgon2 APIs.
//
// Params carries the Argon2 cost parameters for a single call. Zero fields
// take the package defaults, so Params{} requests the default configuration
// and any field can be overridden per call. Params values are never shared
// or mutated by the package.
type Params struct {
	// TimeCost is the number of passes over memory.
	TimeCost uint32
	// MemoryCost is the amount of memory used, in KiB.
	MemoryCost uint32
	// Parallelism is the number of independent lanes.
	Parallelism uint8
	// OutputLength is the derived key length in bytes.
	OutputLength uint32
}

// DefaultParams returns a Params with every field set to its default.
func DefaultParams() Params {
	return Params{
		TimeCost:     DefaultTimeCost,
		MemoryCost:   DefaultMemoryCost,
		Parallelism:  DefaultParallelism,
		OutputLength: DefaultOutputLength,
	}
}

func (p Params) withDefaults() Params {
	if p.TimeCost == 0 {
		p.TimeCost = DefaultTimeCost
	}
	if p.MemoryCost == 0 {
		p.MemoryCost = DefaultMemoryCost
	}
	if p.Parallelism == 0 {
		p.Parallelism = DefaultParallelism
	}
	if p.OutputLength == 0 {
		p.OutputLength = DefaultOutputLength
	}
	return p
}

// validate rejects parameter combinations before they reach the primitive.
// golang.org/x/crypto/argon2 panics on a zero time cost or parallelism and
// silently rounds memory upward, so every bound is enforced here.
func (p Params) validate() error {
	if p.TimeCost < minTimeCost {
		return ErrInvalidTimeCost
	}
	if p.Parallelism < 1 {
		return ErrInvalidParallelism
	}
	if p.MemoryCost < memoryPerLane*uint32(p.Parallelism) {
		return ErrInvalidMemoryCost
	}
	if p.OutputLength < minOutputLength {
		return ErrInvalidOutputLength
	}
	return nil
}
