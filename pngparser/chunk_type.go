package pngparser

// ChunkType is the 4-byte PNG chunk type code. The case of each byte
// (bit 5) carries one property bit.
type ChunkType [4]byte

// ChunkTypeFromBytes accepts any 4 raw bytes as a chunk type. Type codes
// coming out of a binary parse are taken as-is; unusual but structurally
// valid codes keep their property bits.
func ChunkTypeFromBytes(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ChunkTypeFromString builds a ChunkType from text. Every character must
// be ASCII alphabetic, and there must be exactly four of them. The first
// non-alphabetic character is reported before any length check.
func ChunkTypeFromString(s string) (ChunkType, error) {
	var ct ChunkType
	raw := make([]byte, 0, 4)
	for _, c := range s {
		if !isASCIIAlpha(c) {
			return ct, InvalidByteError{Byte: c}
		}
		raw = append(raw, byte(c))
	}
	if len(raw) != 4 {
		return ct, ErrInvalidTypeLength
	}
	copy(ct[:], raw)
	return ct, nil
}

// IsCritical reports whether byte 0 is uppercase.
func (ct ChunkType) IsCritical() bool { return isUpper(ct[0]) }

// IsPublic reports whether byte 1 is uppercase.
func (ct ChunkType) IsPublic() bool { return isUpper(ct[1]) }

// IsReservedBitValid reports whether byte 2 is uppercase.
func (ct ChunkType) IsReservedBitValid() bool { return isUpper(ct[2]) }

// IsSafeToCopy reports whether byte 3 is lowercase.
func (ct ChunkType) IsSafeToCopy() bool { return isLower(ct[3]) }

// IsValid is defined solely by the reserved bit. The other three
// properties are informational and never gate validity.
func (ct ChunkType) IsValid() bool { return ct.IsReservedBitValid() }

// Bytes returns the stored 4-byte code unchanged.
func (ct ChunkType) Bytes() [4]byte { return [4]byte(ct) }

func (ct ChunkType) String() string { return string(ct[:]) }

func isASCIIAlpha(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
