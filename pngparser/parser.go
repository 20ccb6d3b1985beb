// Package pngparser parses and serializes PNG chunk streams. It is a
// pure in-memory codec: bytes in, bytes out, byte-exact round-trips, no
// file or network I/O.
package pngparser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// PNGSignature is the fixed 8-byte magic at the start of every PNG
// datastream: 137 80 78 71 13 10 26 10.
var PNGSignature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNGFile is an ordered chunk sequence behind the fixed signature.
// Insertion order is significant; it determines output byte order.
type PNGFile struct {
	chunks []*Chunk
}

// NewPNGFile returns an empty container carrying only the signature.
func NewPNGFile() *PNGFile {
	return &PNGFile{}
}

// ParsePNGFile parses a whole PNG body: signature, then chunks until the
// buffer is exhausted. Any chunk error abandons the parse; a partially
// read container is never returned.
func ParsePNGFile(data []byte) (*PNGFile, error) {
	if len(data) < len(PNGSignature) || !bytes.Equal(data[:8], PNGSignature[:]) {
		return nil, ErrInvalidSignature
	}

	png := &PNGFile{}
	r := bytes.NewReader(data[8:])
	for r.Len() > 0 {
		chunk, err := ParseChunk(r)
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d", len(png.chunks))
		}
		png.chunks = append(png.chunks, chunk)
	}
	return png, nil
}

// WritePNGFile serializes the container back to its exact byte layout:
// signature followed by each chunk in stored order.
func WritePNGFile(png *PNGFile) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(PNGSignature[:])
	for _, c := range png.chunks {
		buf.Write(c.Bytes())
	}
	return buf.Bytes(), nil
}

// AppendChunk pushes a chunk to the end of the sequence. Multiple chunks
// of the same type may coexist.
func (p *PNGFile) AppendChunk(c *Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type matches, or nil.
func (p *PNGFile) ChunkByType(chunkType ChunkType) *Chunk {
	for _, c := range p.chunks {
		if c.ChunkType() == chunkType {
			return c
		}
	}
	return nil
}

// RemoveChunks deletes every chunk of the given type, preserving the
// order of the rest, and returns how many were removed. Zero matches is
// a no-op, not an error.
func (p *PNGFile) RemoveChunks(chunkType ChunkType) int {
	kept := p.chunks[:0]
	removed := 0
	for _, c := range p.chunks {
		if c.ChunkType() == chunkType {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	p.chunks = kept
	return removed
}

// Chunks returns the ordered chunk sequence.
func (p *PNGFile) Chunks() []*Chunk {
	return p.chunks
}

func (p *PNGFile) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PNG with %d chunks:\n", len(p.chunks))
	for _, c := range p.chunks {
		sb.WriteString(c.String())
	}
	return sb.String()
}
