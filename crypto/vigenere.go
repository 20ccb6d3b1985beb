// Package crypto implements the extended Vigenère cipher used to protect
// hidden messages before they are written into a chunk.
package crypto

import (
	"github.com/pkg/errors"
)

// ExtendedVigenere shifts each byte by the matching key byte modulo 256,
// so arbitrary binary payloads round-trip exactly.
type ExtendedVigenere struct {
	key []byte
}

func NewExtendedVigenere(key string) *ExtendedVigenere {
	return &ExtendedVigenere{
		key: []byte(key),
	}
}

func (ev *ExtendedVigenere) Encrypt(plaintext []byte) []byte {
	return ev.shift(plaintext, 1)
}

func (ev *ExtendedVigenere) Decrypt(ciphertext []byte) []byte {
	return ev.shift(ciphertext, -1)
}

func (ev *ExtendedVigenere) shift(in []byte, direction int) []byte {
	if len(ev.key) == 0 {
		return in
	}

	out := make([]byte, len(in))
	keyLen := len(ev.key)

	for i, b := range in {
		k := int(ev.key[i%keyLen])
		out[i] = byte((int(b) + direction*k + 256) % 256)
	}

	return out
}

// ValidateKey validates if the key is suitable for Extended Vigenère
func ValidateKey(key string) error {
	if len(key) == 0 {
		return errors.New("key cannot be empty")
	}
	if len(key) > 256 {
		return errors.New("key length cannot exceed 256 characters")
	}
	return nil
}
