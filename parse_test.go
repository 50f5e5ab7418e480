package uuid

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "canonical format",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "canonical uppercase",
			input:   "F47AC10B-58CC-4372-A567-0E02B2C3D479",
			wantErr: false,
		},
		{
			name:    "without hyphens",
			input:   "f47ac10b58cc4372a5670e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with URN prefix",
			input:   "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with URN prefix uppercase",
			input:   "URN:UUID:F47AC10B-58CC-4372-A567-0E02B2C3D479",
			wantErr: false,
		},
		{
			name:    "with braces",
			input:   "{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
			wantErr: false,
		},
		{
			name:    "invalid format - wrong length",
			input:   "f47ac10b-58cc-4372-a567",
			wantErr: true,
		},
		{
			name:    "invalid format - invalid hex",
			input:   "g47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
		{
			name:    "invalid format - wrong hyphen position",
			input:   "f47ac10b-58cc4372-a567-0e02-b2c3d479",
			wantErr: true,
		},
		{
			name:    "invalid format - empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uuid, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !uuid.IsNil() {
					t.Error("Parse() returned non-nil UUID alongside an error")
				}
				return
			}
			if uuid.IsNil() {
				t.Error("Parse() returned nil UUID for valid input")
			}
			// Verify round-trip
			str := uuid.String()
			uuid2, err := Parse(str)
			if err != nil {
				t.Errorf("Round-trip parse failed: %v", err)
			}
			if uuid != uuid2 {
				t.Errorf("Round-trip UUID mismatch: got %v, want %v", uuid2, uuid)
			}
		})
	}
}

func TestParse_AllDialectsSameValue(t *testing.T) {
	want := UUID{0x66, 0x2a, 0xa7, 0xc7, 0x75, 0x98, 0x4d, 0x56, 0x8b, 0xcc, 0xa7, 0x2c, 0x30, 0xf9, 0x98, 0xa2}
	inputs := []string{
		"662aa7c7-7598-4d56-8bcc-a72c30f998a2",
		"662aa7c775984d568bcca72c30f998a2",
		"{662aa7c7-7598-4d56-8bcc-a72c30f998a2}",
		"urn:uuid:662aa7c7-7598-4d56-8bcc-a72c30f998a2",
	}
	for _, in := range inputs {
		for _, s := range []string{in, strings.ToUpper(in)} {
			got, err := Parse(s)
			if err != nil {
				t.Errorf("Parse(%q) error = %v", s, err)
				continue
			}
			if got != want {
				t.Errorf("Parse(%q) = %v, want %v", s, got, want)
			}
		}
	}
}

func TestParse_CaseInsensitiveRoundTrip(t *testing.T) {
	u := Must(New())
	for _, s := range []string{u.String(), u.StringUpper()} {
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if got != u {
			t.Errorf("Parse(%q) = %v, want %v", s, got, u)
		}
	}
}

func TestParse_ErrorOffsets(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
		wantCause  error
	}{
		{
			name:       "not a uuid",
			input:      "not-a-uuid",
			wantOffset: 10,
			wantCause:  ErrInvalidLength,
		},
		{
			name:       "35 characters",
			input:      "f47ac10b-58cc-4372-a567-0e02b2c3d47",
			wantOffset: 35,
			wantCause:  ErrInvalidLength,
		},
		{
			name:       "hyphen in wrong position",
			input:      "f47ac10b-58cc4372-a567-0e02-b2c3d479",
			wantOffset: 13,
			wantCause:  ErrInvalidSeparator,
		},
		{
			name:       "bad hex at start",
			input:      "g47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantOffset: 0,
			wantCause:  ErrInvalidCharacter,
		},
		{
			name:       "bad hex in node field",
			input:      "f47ac10b-58cc-4372-a567-0e02b2c3dx79",
			wantOffset: 33,
			wantCause:  ErrInvalidCharacter,
		},
		{
			name:       "bad hex second of pair",
			input:      "fz7ac10b-58cc-4372-a567-0e02b2c3d479",
			wantOffset: 1,
			wantCause:  ErrInvalidCharacter,
		},
		{
			name:       "bad hex in simple form",
			input:      "f47ac10b58cc4372a567qe02b2c3d479",
			wantOffset: 20,
			wantCause:  ErrInvalidCharacter,
		},
		{
			name:       "wrong urn prefix",
			input:      "urn:guid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantOffset: 0,
			wantCause:  ErrInvalidSeparator,
		},
		{
			name:       "bad hex inside urn reports original offset",
			input:      "urn:uuid:x47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantOffset: 9,
			wantCause:  ErrInvalidCharacter,
		},
		{
			name:       "missing opening brace",
			input:      "[f47ac10b-58cc-4372-a567-0e02b2c3d479}",
			wantOffset: 0,
			wantCause:  ErrInvalidSeparator,
		},
		{
			name:       "missing closing brace",
			input:      "{f47ac10b-58cc-4372-a567-0e02b2c3d479]",
			wantOffset: 37,
			wantCause:  ErrInvalidSeparator,
		},
		{
			name:       "bad hex inside braces reports original offset",
			input:      "{f47ac10b-58cc-4372-a567-0e02b2c3dz79}",
			wantOffset: 34,
			wantCause:  ErrInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error type %T, want *ParseError", tt.input, err)
			}
			if perr.Offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", perr.Offset, tt.wantOffset)
			}
			if !errors.Is(err, tt.wantCause) {
				t.Errorf("cause = %v, want %v", perr.Cause, tt.wantCause)
			}
		})
	}
}

func TestParse_NeverPanics(t *testing.T) {
	// Arbitrary junk, truncations and non-ASCII input must fail cleanly.
	inputs := []string{
		"",
		"-",
		"{}",
		"urn:uuid:",
		strings.Repeat("-", 36),
		strings.Repeat("{", 38),
		strings.Repeat("f", 31),
		strings.Repeat("f", 33),
		strings.Repeat("f", 45),
		"\x00\x01\x02\x03",
		"ффффффффффффффффффффффффффффффффффффффффффффф"[:45],
		"urn:uuid:ффффффффффффффффффффффффффффффффффф"[:45],
	}
	for _, in := range inputs {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) unexpectedly succeeded", in)
		}
	}
}

func TestParseBytes(t *testing.T) {
	u, err := ParseBytes([]byte("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if u.String() != "f47ac10b-58cc-4372-a567-0e02b2c3d479" {
		t.Errorf("ParseBytes() = %v", u)
	}
	if _, err := ParseBytes([]byte("nope")); err == nil {
		t.Error("ParseBytes() expected error for junk input")
	}
}

func TestParseMixedEndian(t *testing.T) {
	// A GUID displayed mixed-endian by its origin system. Read with the
	// correct dialect it is a well-formed random UUID; read big-endian
	// it is a different, still structurally valid, value.
	const guid = "20169084-b186-884f-b110-3db2c37eb8b5"

	me, err := ParseMixedEndian(guid)
	if err != nil {
		t.Fatalf("ParseMixedEndian() error = %v", err)
	}
	if me.Version() != VersionRandom {
		t.Errorf("mixed-endian parse version = %v, want %v", me.Version(), VersionRandom)
	}
	if me.Variant() != VariantRFC4122 {
		t.Errorf("mixed-endian parse variant = %v, want %v", me.Variant(), VariantRFC4122)
	}

	be, err := Parse(guid)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if be == me {
		t.Error("one-sided dialect use produced the same value")
	}
	if be.Version() == VersionRandom {
		t.Error("big-endian misread still classified as v4")
	}
}

func TestParseMixedEndian_RoundTrip(t *testing.T) {
	u := Must(New())
	var buf [EncodedLenCanonical]byte
	if _, err := u.Encode(buf[:], FormatMixedEndian, false); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := ParseMixedEndian(string(buf[:]))
	if err != nil {
		t.Fatalf("ParseMixedEndian() error = %v", err)
	}
	if got != u {
		t.Errorf("mixed-endian round-trip: got %v, want %v", got, u)
	}

	// Applying the dialect on only one end yields a different value.
	oneSided, err := Parse(string(buf[:]))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if oneSided == u {
		t.Error("expected one-sided mixed-endian use to change the value")
	}
}

func TestMustParse(t *testing.T) {
	// Valid UUID should not panic
	uuid := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if uuid.IsNil() {
		t.Error("MustParse() returned nil UUID")
	}

	// Invalid UUID should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-uuid")
}
