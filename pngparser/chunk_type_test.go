package pngparser

import (
	"errors"
	"testing"
)

func TestChunkTypeFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	ct := ChunkTypeFromBytes(expected)
	if got := ct.Bytes(); got != expected {
		t.Errorf("got bytes %v, want %v", got, expected)
	}
}

func TestChunkTypeFromString(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	if ct != ChunkTypeFromBytes([4]byte{82, 117, 83, 116}) {
		t.Errorf("got %v, want RuSt byte code", ct)
	}
	if ct.String() != "RuSt" {
		t.Errorf("got string %q, want RuSt", ct.String())
	}
}

func TestChunkTypeProperties(t *testing.T) {
	cases := []struct {
		text     string
		critical bool
		public   bool
		reserved bool
		safe     bool
	}{
		{"RuSt", true, false, true, true},
		{"ruSt", false, false, true, true},
		{"RUSt", true, true, true, true},
		{"Rust", true, false, false, true},
		{"RuST", true, false, true, false},
	}
	for _, tc := range cases {
		ct, err := ChunkTypeFromString(tc.text)
		if err != nil {
			t.Fatalf("%s: %v", tc.text, err)
		}
		if ct.IsCritical() != tc.critical {
			t.Errorf("%s: IsCritical = %v, want %v", tc.text, ct.IsCritical(), tc.critical)
		}
		if ct.IsPublic() != tc.public {
			t.Errorf("%s: IsPublic = %v, want %v", tc.text, ct.IsPublic(), tc.public)
		}
		if ct.IsReservedBitValid() != tc.reserved {
			t.Errorf("%s: IsReservedBitValid = %v, want %v", tc.text, ct.IsReservedBitValid(), tc.reserved)
		}
		if ct.IsSafeToCopy() != tc.safe {
			t.Errorf("%s: IsSafeToCopy = %v, want %v", tc.text, ct.IsSafeToCopy(), tc.safe)
		}
	}
}

func TestChunkTypeValidity(t *testing.T) {
	valid, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	if !valid.IsValid() {
		t.Error("RuSt should be valid (reserved bit uppercase)")
	}

	invalid, err := ChunkTypeFromString("Rust")
	if err != nil {
		t.Fatal(err)
	}
	if invalid.IsValid() {
		t.Error("Rust should be invalid (reserved bit lowercase)")
	}
}

func TestChunkTypeFromInvalidString(t *testing.T) {
	_, err := ChunkTypeFromString("Ru1t")
	var invalidByte InvalidByteError
	if !errors.As(err, &invalidByte) {
		t.Fatalf("got %v, want InvalidByteError", err)
	}
	if invalidByte.Byte != '1' {
		t.Errorf("got offending byte %q, want '1'", invalidByte.Byte)
	}

	// All alphabetic but the wrong length.
	if _, err := ChunkTypeFromString("RuStAbc"); !errors.Is(err, ErrInvalidTypeLength) {
		t.Errorf("got %v, want ErrInvalidTypeLength", err)
	}
	if _, err := ChunkTypeFromString("Ru"); !errors.Is(err, ErrInvalidTypeLength) {
		t.Errorf("got %v, want ErrInvalidTypeLength", err)
	}
}

func TestChunkTypeRawBytesSkipAlphabeticCheck(t *testing.T) {
	// Binary-parsed type codes are accepted as-is, even outside A-Za-z.
	ct := ChunkTypeFromBytes([4]byte{0x00, 0xFF, 'S', '7'})
	if ct.IsCritical() || ct.IsPublic() {
		t.Error("non-letter bytes are neither uppercase nor lowercase")
	}
	if !ct.IsReservedBitValid() {
		t.Error("byte 2 'S' should make the reserved bit valid")
	}
	if ct.IsSafeToCopy() {
		t.Error("'7' is not lowercase")
	}
}
