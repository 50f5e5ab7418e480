package uuid

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormat_EncodedLen(t *testing.T) {
	tests := []struct {
		format Format
		want   int
	}{
		{FormatCanonical, 36},
		{FormatSimple, 32},
		{FormatBraced, 38},
		{FormatURN, 45},
		{FormatMixedEndian, 36},
	}
	for _, tt := range tests {
		if got := tt.format.EncodedLen(); got != tt.want {
			t.Errorf("Format(%d).EncodedLen() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestUUID_Encode(t *testing.T) {
	u := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	tests := []struct {
		name   string
		format Format
		upper  bool
		want   string
	}{
		{
			name:   "canonical lower",
			format: FormatCanonical,
			want:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:   "canonical upper",
			format: FormatCanonical,
			upper:  true,
			want:   "F47AC10B-58CC-4372-A567-0E02B2C3D479",
		},
		{
			name:   "simple lower",
			format: FormatSimple,
			want:   "f47ac10b58cc4372a5670e02b2c3d479",
		},
		{
			name:   "simple upper",
			format: FormatSimple,
			upper:  true,
			want:   "F47AC10B58CC4372A5670E02B2C3D479",
		},
		{
			name:   "braced lower",
			format: FormatBraced,
			want:   "{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
		},
		{
			name:   "urn lower",
			format: FormatURN,
			want:   "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:   "mixed-endian lower",
			format: FormatMixedEndian,
			want:   "0bc17af4-cc58-7243-a567-0e02b2c3d479",
		},
		{
			name:   "mixed-endian upper",
			format: FormatMixedEndian,
			upper:  true,
			want:   "0BC17AF4-CC58-7243-A567-0E02B2C3D479",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [MaxEncodedLen]byte
			n, err := u.Encode(buf[:], tt.format, tt.upper)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if n != tt.format.EncodedLen() {
				t.Errorf("Encode() n = %d, want %d", n, tt.format.EncodedLen())
			}
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUUID_Encode_ShortBuffer(t *testing.T) {
	u := Must(New())
	formats := []Format{FormatCanonical, FormatSimple, FormatBraced, FormatURN, FormatMixedEndian}
	for _, f := range formats {
		short := make([]byte, f.EncodedLen()-1)
		n, err := u.Encode(short, f, false)
		if !errors.Is(err, ErrShortBuffer) {
			t.Errorf("Encode(short, %d) error = %v, want ErrShortBuffer", f, err)
		}
		if n != 0 {
			t.Errorf("Encode(short, %d) n = %d, want 0", f, n)
		}
		if !bytes.Equal(short, make([]byte, len(short))) {
			t.Errorf("Encode(short, %d) wrote into undersized buffer", f)
		}
	}
}

func TestUUID_Encode_RoundTrip(t *testing.T) {
	u := Must(New())
	formats := []Format{FormatCanonical, FormatSimple, FormatBraced, FormatURN}
	for _, f := range formats {
		for _, upper := range []bool{false, true} {
			var buf [MaxEncodedLen]byte
			n, err := u.Encode(buf[:], f, upper)
			if err != nil {
				t.Fatalf("Encode(%d, upper=%v) error = %v", f, upper, err)
			}
			got, err := Parse(string(buf[:n]))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", buf[:n], err)
			}
			if got != u {
				t.Errorf("round-trip via format %d = %v, want %v", f, got, u)
			}
		}
	}
}

func TestUUID_String(t *testing.T) {
	u := MustParse("F47AC10B-58CC-4372-A567-0E02B2C3D479")
	if got := u.String(); got != "f47ac10b-58cc-4372-a567-0e02b2c3d479" {
		t.Errorf("String() = %q", got)
	}
	if got := u.StringUpper(); got != "F47AC10B-58CC-4372-A567-0E02B2C3D479" {
		t.Errorf("StringUpper() = %q", got)
	}
	if got := Nil.String(); got != "00000000-0000-0000-0000-000000000000" {
		t.Errorf("Nil.String() = %q", got)
	}
	if got := Max.String(); got != "ffffffff-ffff-ffff-ffff-ffffffffffff" {
		t.Errorf("Max.String() = %q", got)
	}
}

func TestUUID_URN(t *testing.T) {
	u := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	want := "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"
	if got := u.URN(); got != want {
		t.Errorf("URN() = %q, want %q", got, want)
	}
	if _, err := Parse(u.URN()); err != nil {
		t.Errorf("Parse(URN()) error = %v", err)
	}
}

func TestUUID_Braced(t *testing.T) {
	u := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	want := "{f47ac10b-58cc-4372-a567-0e02b2c3d479}"
	if got := u.Braced(); got != want {
		t.Errorf("Braced() = %q, want %q", got, want)
	}
	if _, err := Parse(u.Braced()); err != nil {
		t.Errorf("Parse(Braced()) error = %v", err)
	}
}

func TestFormatMixedEndian_FieldSwap(t *testing.T) {
	// Only time_low, time_mid and time_hi_and_version are byte-swapped;
	// the clock sequence and node trail unchanged.
	u := MustParse("00112233-4455-6677-8899-aabbccddeeff")
	var buf [EncodedLenCanonical]byte
	if _, err := u.Encode(buf[:], FormatMixedEndian, false); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := "33221100-5544-7766-8899-aabbccddeeff"
	if got := string(buf[:]); got != want {
		t.Errorf("mixed-endian encode = %q, want %q", got, want)
	}
	if !strings.HasSuffix(string(buf[:]), "-8899-aabbccddeeff") {
		t.Error("trailing fields were swapped")
	}
}
