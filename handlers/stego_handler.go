// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pngme-backend/crypto"
	"pngme-backend/models"
	"pngme-backend/pngparser"
	"pngme-backend/stego"

	"github.com/gin-gonic/gin"
)

type StegoHandler struct {
	maxUploadBytes int64
}

func NewStegoHandler(maxUploadBytes int64) *StegoHandler {
	return &StegoHandler{
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PNG steganography API is running",
		"version": "1.0.0",
	})
}

// EncodeMessage appends a message chunk to the uploaded PNG and streams
// the stego file back.
func (h *StegoHandler) EncodeMessage(c *gin.Context) {
	config, ok := h.stegoConfig(c)
	if !ok {
		return
	}

	message := c.PostForm("message")
	if message == "" {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Message is required",
		})
		return
	}

	pngData, filename, ok := h.readPNGUpload(c)
	if !ok {
		return
	}

	chunkStego := stego.NewChunkSteganography(config)
	stegoPNG, err := chunkStego.EmbedInPNG(pngData, []byte(message))
	if err != nil {
		h.renderStegoError(c, err)
		return
	}

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	outputFilename := fmt.Sprintf("%s_stego.png", baseFilename)

	// Set headers for file download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputFilename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(stegoPNG)))

	c.Header("X-Stego-Method", "PNG ancillary chunk")
	c.Header("X-Stego-Chunk-Type", config.ChunkType)
	c.Header("X-Stego-Message", "Secret message successfully embedded in PNG chunk stream")

	c.Data(http.StatusOK, "image/png", stegoPNG)
}

// DecodeMessage extracts the hidden message from the uploaded PNG and
// returns it as JSON.
func (h *StegoHandler) DecodeMessage(c *gin.Context) {
	config, ok := h.stegoConfig(c)
	if !ok {
		return
	}

	pngData, _, ok := h.readPNGUpload(c)
	if !ok {
		return
	}

	chunkStego := stego.NewChunkSteganography(config)
	secret, err := chunkStego.ExtractFromPNG(pngData)
	if err != nil {
		if errors.Is(err, stego.ErrChunkNotFound) {
			c.JSON(http.StatusNotFound, models.DecodeResponse{
				Success: false,
				Message: fmt.Sprintf("No chunk of type %q found", config.ChunkType),
			})
			return
		}
		h.renderStegoError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DecodeResponse{
		Success:   true,
		Message:   "Secret message successfully extracted",
		ChunkType: config.ChunkType,
		Secret:    secret,
	})
}

// RemoveChunks strips every chunk of the given type and streams the
// cleaned PNG back.
func (h *StegoHandler) RemoveChunks(c *gin.Context) {
	config, ok := h.stegoConfig(c)
	if !ok {
		return
	}

	pngData, filename, ok := h.readPNGUpload(c)
	if !ok {
		return
	}

	chunkStego := stego.NewChunkSteganography(config)
	cleanedPNG, removed, err := chunkStego.StripFromPNG(pngData)
	if err != nil {
		h.renderStegoError(c, err)
		return
	}

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	outputFilename := fmt.Sprintf("%s_clean.png", baseFilename)

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputFilename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(cleanedPNG)))

	c.Header("X-Stego-Chunk-Type", config.ChunkType)
	c.Header("X-Stego-Removed", fmt.Sprintf("%d", removed))

	c.Data(http.StatusOK, "image/png", cleanedPNG)
}

// InspectPNG lists every chunk of the uploaded PNG with its length,
// type, payload size, crc and property bits.
func (h *StegoHandler) InspectPNG(c *gin.Context) {
	pngData, _, ok := h.readPNGUpload(c)
	if !ok {
		return
	}

	png, err := pngparser.ParsePNGFile(pngData)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.InspectResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse PNG file: %v", err),
		})
		return
	}

	chunks := make([]models.ChunkInfo, 0, len(png.Chunks()))
	for _, chunk := range png.Chunks() {
		chunkType := chunk.ChunkType()
		chunks = append(chunks, models.ChunkInfo{
			Length:     chunk.Length(),
			Type:       chunkType.String(),
			DataSize:   len(chunk.Data()),
			Crc:        chunk.CRC(),
			Critical:   chunkType.IsCritical(),
			Public:     chunkType.IsPublic(),
			SafeToCopy: chunkType.IsSafeToCopy(),
		})
	}

	c.JSON(http.StatusOK, models.InspectResponse{
		Success: true,
		Message: fmt.Sprintf("PNG contains %d chunks", len(chunks)),
		Chunks:  chunks,
	})
}

// stegoConfig reads and validates the common form fields. On failure it
// writes the error response and returns ok=false.
func (h *StegoHandler) stegoConfig(c *gin.Context) (*models.StegoConfig, bool) {
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return nil, false
	}

	chunkTypeText := c.PostForm("chunk_type")
	if chunkTypeText == "" {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Chunk type is required",
		})
		return nil, false
	}
	if _, err := pngparser.ChunkTypeFromString(chunkTypeText); err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid chunk type: %v", err),
		})
		return nil, false
	}

	key := c.PostForm("key")
	useEncryption := c.PostForm("use_encryption") == "true"
	if useEncryption {
		if err := crypto.ValidateKey(key); err != nil {
			c.JSON(http.StatusBadRequest, models.StegoResponse{
				Success: false,
				Message: fmt.Sprintf("Invalid key: %v", err),
			})
			return nil, false
		}
	}

	return &models.StegoConfig{
		ChunkType:     chunkTypeText,
		Key:           key,
		UseEncryption: useEncryption,
	}, true
}

// readPNGUpload fetches the uploaded carrier file. On failure it writes
// the error response and returns ok=false.
func (h *StegoHandler) readPNGUpload(c *gin.Context) ([]byte, string, bool) {
	pngFile, pngHeader, err := c.Request.FormFile("png_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "PNG file is required",
		})
		return nil, "", false
	}
	defer pngFile.Close()

	if !isValidPNGFile(pngHeader.Filename) {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Invalid file format. Only PNG files are supported",
		})
		return nil, "", false
	}

	pngData, err := io.ReadAll(pngFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.StegoResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to read PNG file: %v", err),
		})
		return nil, "", false
	}

	return pngData, pngHeader.Filename, true
}

// renderStegoError maps core parse failures to 400 (the client sent a
// malformed or corrupted file) and everything else to 500.
func (h *StegoHandler) renderStegoError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, pngparser.ErrInvalidSignature) ||
		errors.Is(err, pngparser.ErrInvalidCrc) ||
		errors.Is(err, pngparser.ErrLengthNotFound) ||
		errors.Is(err, pngparser.ErrChunkTypeNotFound) ||
		errors.Is(err, pngparser.ErrMessageNotFound) ||
		errors.Is(err, pngparser.ErrCrcNotFound) {
		status = http.StatusBadRequest
	}
	c.JSON(status, models.StegoResponse{
		Success: false,
		Message: fmt.Sprintf("Steganography operation failed: %v", err),
	})
}

func isValidPNGFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".png"
}
