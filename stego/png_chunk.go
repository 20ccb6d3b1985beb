// Package stego hides and recovers messages in PNG chunk streams.
package stego

import (
	"pngme-backend/crypto"
	"pngme-backend/models"
	"pngme-backend/pngparser"

	"github.com/pkg/errors"
)

// ErrChunkNotFound is returned when the stego file carries no chunk of
// the requested type.
var ErrChunkNotFound = errors.New("no chunk with the requested type")

// ChunkSteganography stores a message as one extra chunk in the PNG
// chunk sequence. The image data is never touched; the carrier stays a
// byte-exact copy of the original plus the appended chunk.
type ChunkSteganography struct {
	config *models.StegoConfig
}

func NewChunkSteganography(config *models.StegoConfig) *ChunkSteganography {
	return &ChunkSteganography{
		config: config,
	}
}

func (s *ChunkSteganography) chunkType() (pngparser.ChunkType, error) {
	chunkType, err := pngparser.ChunkTypeFromString(s.config.ChunkType)
	if err != nil {
		return chunkType, errors.Wrap(err, "invalid chunk type")
	}
	return chunkType, nil
}

// EmbedInPNG appends one chunk carrying the message and returns the
// re-serialized file.
func (s *ChunkSteganography) EmbedInPNG(pngData []byte, message []byte) ([]byte, error) {
	chunkType, err := s.chunkType()
	if err != nil {
		return nil, err
	}

	png, err := pngparser.ParsePNGFile(pngData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse PNG")
	}

	payload := message
	if s.config.UseEncryption {
		cipher := crypto.NewExtendedVigenere(s.config.Key)
		payload = cipher.Encrypt(message)
	}

	png.AppendChunk(pngparser.NewChunk(chunkType, payload))

	return pngparser.WritePNGFile(png)
}

// ExtractFromPNG returns the decoded message held by the first chunk of
// the configured type.
func (s *ChunkSteganography) ExtractFromPNG(pngData []byte) (string, error) {
	chunkType, err := s.chunkType()
	if err != nil {
		return "", err
	}

	png, err := pngparser.ParsePNGFile(pngData)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse PNG")
	}

	chunk := png.ChunkByType(chunkType)
	if chunk == nil {
		return "", ErrChunkNotFound
	}

	if s.config.UseEncryption {
		cipher := crypto.NewExtendedVigenere(s.config.Key)
		return pngparser.Latin1String(cipher.Decrypt(chunk.Data())), nil
	}

	return chunk.DataAsString()
}

// StripFromPNG removes every chunk of the configured type and returns
// the cleaned file plus the number of chunks removed.
func (s *ChunkSteganography) StripFromPNG(pngData []byte) ([]byte, int, error) {
	chunkType, err := s.chunkType()
	if err != nil {
		return nil, 0, err
	}

	png, err := pngparser.ParsePNGFile(pngData)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse PNG")
	}

	removed := png.RemoveChunks(chunkType)

	out, err := pngparser.WritePNGFile(png)
	if err != nil {
		return nil, 0, err
	}
	return out, removed, nil
}
