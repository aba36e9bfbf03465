package goArgon2

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// fastParams keeps the memory-hard work small enough for the test suite while
// staying inside every validated bound.
func fastParams() Params {
	return Params{
		TimeCost:     1,
		MemoryCost:   64,
		Parallelism:  1,
		OutputLength: 32,
	}
}

func testSalt() []byte {
	return []byte("0123456789abcdef")
}

func TestHashRawDeterministic(t *testing.T) {
	for _, variant := range []Variant{Argon2i, Argon2id} {
		first, err := HashRaw(variant, []byte("deterministic-password"), testSalt(), fastParams())
		if err != nil {
			t.Fatalf("%s: HashRaw error: %v", variant, err)
		}

		second, err := HashRaw(variant, []byte("deterministic-password"), testSalt(), fastParams())
		if err != nil {
			t.Fatalf("%s: HashRaw error: %v", variant, err)
		}

		if !bytes.Equal(first, second) {
			t.Fatalf("%s: repeated HashRaw calls disagree", variant)
		}
	}
}

func TestHashRawOutputLength(t *testing.T) {
	for _, length := range []uint32{4, 16, 32, 64, 128} {
		p := fastParams()
		p.OutputLength = length

		out, err := HashRaw(Argon2id, []byte("length-check"), testSalt(), p)
		if err != nil {
			t.Fatalf("HashRaw(len=%d) error: %v", length, err)
		}
		if uint32(len(out)) != length {
			t.Fatalf("HashRaw(len=%d) returned %d bytes", length, len(out))
		}
	}
}

func TestHashRawVariantsDiffer(t *testing.T) {
	i, err := HashRaw(Argon2i, []byte("variant-split"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("Argon2i error: %v", err)
	}
	id, err := HashRaw(Argon2id, []byte("variant-split"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("Argon2id error: %v", err)
	}
	if bytes.Equal(i, id) {
		t.Fatal("Argon2i and Argon2id produced identical output for the same input")
	}
}

func TestHashRawDefaultsApplied(t *testing.T) {
	// Params{} must behave exactly like DefaultParams(). The default cost is
	// small (128 KiB, 32 passes) so running it once is acceptable.
	explicit, err := HashRaw(Argon2id, []byte("defaults"), testSalt(), DefaultParams())
	if err != nil {
		t.Fatalf("HashRaw(DefaultParams) error: %v", err)
	}
	if len(explicit) != int(DefaultOutputLength) {
		t.Fatalf("default output length = %d, want %d", len(explicit), DefaultOutputLength)
	}

	implicit, err := HashRaw(Argon2id, []byte("defaults"), testSalt(), Params{})
	if err != nil {
		t.Fatalf("HashRaw(Params{}) error: %v", err)
	}
	if !bytes.Equal(explicit, implicit) {
		t.Fatal("zero Params and DefaultParams produced different hashes")
	}
}

func TestHashRawEmptyInputs(t *testing.T) {
	// The primitive accepts zero-length passwords and salts for raw hashing.
	if _, err := HashRaw(Argon2id, nil, nil, fastParams()); err != nil {
		t.Fatalf("HashRaw with empty password and salt: %v", err)
	}
}

func TestHashRawValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"memory below floor", func(p *Params) { p.MemoryCost = 7 }, ErrInvalidMemoryCost},
		{"memory below lanes", func(p *Params) { p.MemoryCost = 32; p.Parallelism = 8 }, ErrInvalidMemoryCost},
		{"output too short", func(p *Params) { p.OutputLength = 3 }, ErrInvalidOutputLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := fastParams()
			tc.mutate(&p)
			if _, err := HashRaw(Argon2id, []byte("pw"), testSalt(), p); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestHashEncodedShortSalt(t *testing.T) {
	if _, err := HashEncoded(Argon2id, []byte("pw"), []byte("1234567"), fastParams()); !errors.Is(err, ErrSaltTooShort) {
		t.Fatalf("got %v, want ErrSaltTooShort", err)
	}
}

func TestHashEncodedPrefix(t *testing.T) {
	encoded, err := HashEncoded(Argon2id, []byte("prefix-check"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("HashEncoded error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Fatalf("unexpected PHC prefix: %s", encoded)
	}
	if strings.Contains(encoded, "=$") || strings.HasSuffix(encoded, "=") {
		t.Fatalf("encoded record contains base64 padding: %s", encoded)
	}
}

func TestUnknownVariantRejected(t *testing.T) {
	if _, err := HashRaw(Variant(9), []byte("pw"), testSalt(), fastParams()); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("got %v, want ErrUnknownVariant", err)
	}
}

func TestArgon2dUnsupported(t *testing.T) {
	if _, err := DHash([]byte("pw"), testSalt(), fastParams()); !errors.Is(err, ErrArgon2dUnsupported) {
		t.Fatalf("DHash: got %v, want ErrArgon2dUnsupported", err)
	}
	if _, err := DHashEncoded([]byte("pw"), testSalt(), fastParams()); !errors.Is(err, ErrArgon2dUnsupported) {
		t.Fatalf("DHashEncoded: got %v, want ErrArgon2dUnsupported", err)
	}
	// Validation still runs first: bad parameters win over the unsupported
	// variant so the caller hears about their own mistake.
	p := fastParams()
	p.OutputLength = 1
	if _, err := DHash([]byte("pw"), testSalt(), p); !errors.Is(err, ErrInvalidOutputLength) {
		t.Fatalf("DHash with bad params: got %v, want ErrInvalidOutputLength", err)
	}
}

func TestPerVariantWrappersMatchCore(t *testing.T) {
	core, err := HashRaw(Argon2i, []byte("wrapper"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("HashRaw error: %v", err)
	}
	wrapped, err := IHash([]byte("wrapper"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("IHash error: %v", err)
	}
	if !bytes.Equal(core, wrapped) {
		t.Fatal("IHash disagrees with HashRaw(Argon2i, ...)")
	}

	coreEncoded, err := HashEncoded(Argon2id, []byte("wrapper"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("HashEncoded error: %v", err)
	}
	wrappedEncoded, err := IDHashEncoded([]byte("wrapper"), testSalt(), fastParams())
	if err != nil {
		t.Fatalf("IDHashEncoded error: %v", err)
	}
	if coreEncoded != wrappedEncoded {
		t.Fatal("IDHashEncoded disagrees with HashEncoded(Argon2id, ...)")
	}
}
