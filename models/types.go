// Package models contain needed models
package models

// StegoConfig represents configuration for one chunk steganography
// operation
type StegoConfig struct {
	ChunkType     string
	Key           string
	UseEncryption bool
}

// StegoResponse represents the response after an encode or remove
// operation failed (successful ones stream the PNG back)
type StegoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DecodeResponse represents the response after extracting a message
type DecodeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ChunkType string `json:"chunk_type,omitempty"`
	Secret    string `json:"secret,omitempty"`
}

// ChunkInfo describes one chunk for the inspect endpoint
type ChunkInfo struct {
	Length     uint32 `json:"length"`
	Type       string `json:"type"`
	DataSize   int    `json:"data_size"`
	Crc        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

// InspectResponse represents the chunk listing of a PNG file
type InspectResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Chunks  []ChunkInfo `json:"chunks,omitempty"`
}
