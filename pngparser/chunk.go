package pngparser

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"strings"
)

// Chunk is one length-prefixed, CRC-protected PNG record. Length and CRC
// are derived from the live payload rather than stored, so the accessors
// can never drift from the data.
type Chunk struct {
	chunkType ChunkType
	data      []byte
}

// NewChunk builds a chunk from a type and payload. The CRC is computed
// fresh over type++payload, so construction cannot fail. The payload is
// copied; the chunk owns its buffer exclusively.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{chunkType: chunkType, data: owned}
}

// ParseChunk reads exactly one chunk from r and verifies its checksum.
// On any failure no chunk is returned.
func ParseChunk(r io.Reader) (*Chunk, error) {
	lengthBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, lengthBytes); err != nil {
		return nil, ErrLengthNotFound
	}
	length := binary.BigEndian.Uint32(lengthBytes)

	typeBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, typeBytes); err != nil {
		return nil, ErrChunkTypeNotFound
	}
	chunkType := ChunkTypeFromBytes([4]byte(typeBytes))

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, ErrMessageNotFound
	}

	crcBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, crcBytes); err != nil {
		return nil, ErrCrcNotFound
	}
	storedCrc := binary.BigEndian.Uint32(crcBytes)

	h := crc32.NewIEEE()
	h.Write(typeBytes)
	h.Write(data)
	if storedCrc != h.Sum32() {
		return nil, ErrInvalidCrc
	}

	return &Chunk{chunkType: chunkType, data: data}, nil
}

// ChunkType returns the 4-byte type code of this chunk.
func (c *Chunk) ChunkType() ChunkType { return c.chunkType }

// Data returns the raw payload.
func (c *Chunk) Data() []byte { return c.data }

// Length is the payload byte count, recomputed from the live data.
func (c *Chunk) Length() uint32 { return uint32(len(c.data)) }

// CRC is the CRC-32/ISO-HDLC over type bytes ++ payload, recomputed on
// every call.
func (c *Chunk) CRC() uint32 {
	h := crc32.NewIEEE()
	tb := c.chunkType.Bytes()
	h.Write(tb[:])
	h.Write(c.data)
	return h.Sum32()
}

// DataAsString decodes the payload as Latin-1, one byte per character.
// The error is reserved for stricter encodings; Latin-1 never fails.
func (c *Chunk) DataAsString() (string, error) {
	return Latin1String(c.data), nil
}

// Bytes serializes the chunk to its exact wire layout:
// length (4, BE) ++ type (4) ++ payload ++ crc (4, BE).
func (c *Chunk) Bytes() []byte {
	buf := make([]byte, 0, 12+len(c.data))
	buf = binary.BigEndian.AppendUint32(buf, c.Length())
	tb := c.chunkType.Bytes()
	buf = append(buf, tb[:]...)
	buf = append(buf, c.data...)
	buf = binary.BigEndian.AppendUint32(buf, c.CRC())
	return buf
}

func (c *Chunk) String() string {
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	fmt.Fprintf(&sb, "  Length: %d\n", c.Length())
	fmt.Fprintf(&sb, "  Type: %s\n", c.chunkType)
	fmt.Fprintf(&sb, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&sb, "  Crc: %d\n", c.CRC())
	sb.WriteString("}\n")
	return sb.String()
}

// Latin1String maps each byte to the code point of the same value.
func Latin1String(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
