package goArgon2

import (
	"crypto/rand"
	"io"
	"time"
)

// DefaultSaltLength is an exported constant or variable used by the hashing engine.
const DefaultSaltLength uint32 = 16

// Config defines a public type used by goArgon2 APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable. Zero cost fields take the package defaults;
// SaltLength defaults to [DefaultSaltLength].
type Config struct {
	Variant       Variant
	TimeCost      uint32
	MemoryCost    uint32
	Parallelism   uint8
	SaltLength    uint32
	OutputLength  uint32
	EnableMetrics bool
}

// Hasher defines a public type used by goArgon2 APIs.
//
// A Hasher is a configured hashing service: it generates salts, produces
// encoded records under a fixed variant and cost configuration, verifies
// candidate passwords, and reports when stored records fall behind the
// current configuration. Hasher instances are immutable after [NewHasher]
// and safe for concurrent use.
type Hasher struct {
	variant Variant
	params  Params
	saltLen uint32
	metrics *Metrics
}

// NewHasher validates cfg and returns a ready Hasher.
//
// NewHasher may return an error when the variant is unknown or a cost
// parameter is out of range; validation happens once here so the per-call
// paths never re-check configuration.
func NewHasher(cfg Config) (*Hasher, error) {
	if !cfg.Variant.valid() {
		return nil, ErrUnknownVariant
	}

	params := Params{
		TimeCost:     cfg.TimeCost,
		MemoryCost:   cfg.MemoryCost,
		Parallelism:  cfg.Parallelism,
		OutputLength: cfg.OutputLength,
	}.withDefaults()
	if err := params.validate(); err != nil {
		return nil, err
	}

	saltLen := cfg.SaltLength
	if saltLen == 0 {
		saltLen = DefaultSaltLength
	}
	if saltLen < minSaltLength {
		return nil, ErrSaltLengthTooShort
	}

	return &Hasher{
		variant: cfg.Variant,
		params:  params,
		saltLen: saltLen,
		metrics: NewMetrics(cfg.EnableMetrics),
	}, nil
}

// Params returns the resolved cost parameters the Hasher runs under.
func (h *Hasher) Params() Params {
	return h.params
}

// Variant returns the variant the Hasher hashes with.
func (h *Hasher) Variant() Variant {
	return h.variant
}

// Hash generates a fresh random salt and returns the PHC encoded record for
// password under the Hasher's configuration. Password bytes are used exactly
// as provided (no Unicode normalization).
//
// Hash may return an error when salt generation or the hash itself fails.
// It does not mutate shared state beyond metrics counters and can be used
// concurrently.
func (h *Hasher) Hash(password []byte) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		h.metrics.Inc(MetricHashFailure)
		return "", err
	}

	start := time.Now()
	encoded, err := HashEncoded(h.variant, password, salt, h.params)
	if err != nil {
		h.metrics.Inc(MetricHashFailure)
		return "", err
	}

	h.metrics.Inc(MetricHashSuccess)
	h.metrics.Observe(MetricHashLatency, time.Since(start))
	return encoded, nil
}

// Verify checks password against an encoded record, inferring variant and
// parameters from the record as [Check] does.
//
// Verify may return an error when the record is malformed or its variant
// cannot be computed. It does not mutate shared state beyond metrics
// counters and can be used concurrently.
func (h *Hasher) Verify(password []byte, encoded string) (bool, error) {
	match, err := Check(encoded, password)
	switch {
	case err != nil:
		h.metrics.Inc(MetricVerifyMalformed)
	case match:
		h.metrics.Inc(MetricVerifyMatch)
	default:
		h.metrics.Inc(MetricVerifyMismatch)
	}
	return match, err
}

// NeedsRehash reports whether encoded was produced under a weaker
// configuration than the Hasher's current one, so the caller can re-hash on
// the next successful verification. A variant difference alone counts as
// weaker only when the record's variant is not the configured one.
func (h *Hasher) NeedsRehash(encoded string) (bool, error) {
	rec, err := parseRecord(encoded)
	if err != nil {
		return false, err
	}

	needs := rec.variant != h.variant ||
		h.params.MemoryCost > rec.params.MemoryCost ||
		h.params.TimeCost > rec.params.TimeCost ||
		h.params.Parallelism > rec.params.Parallelism ||
		h.params.OutputLength != rec.params.OutputLength

	if needs {
		h.metrics.Inc(MetricRehashNeeded)
	}
	return needs, nil
}

// Metrics returns a point-in-time snapshot of the Hasher's counters. The
// snapshot is all zeros when metrics are disabled.
func (h *Hasher) Metrics() MetricsSnapshot {
	return h.metrics.Snapshot()
}
