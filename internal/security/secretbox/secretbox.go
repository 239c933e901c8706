// Package secretbox cifra secretos de configuración (password SMTP, DSN)
// con AES-256-GCM. Formato: base64(nonce)|base64(ciphertext).
package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	nonceSizeGCM = 12
	keyLength    = 32 // AES-256
	sep          = "|"

	// Prefix marca un valor de config cifrado.
	Prefix = "enc:"
)

var (
	ErrKeyLength = errors.New("secretbox: key must decode to 32 bytes")
	ErrFormat    = errors.New("secretbox: expected base64(nonce)|base64(ciphertext)")
)

// ParseKey acepta base64 (std o raw) o hex de 32 bytes.
func ParseKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := base64.StdEncoding.DecodeString(s); err == nil && len(b) == keyLength {
		return b, nil
	}
	if b, err := base64.RawStdEncoding.DecodeString(s); err == nil && len(b) == keyLength {
		return b, nil
	}
	if len(s) == 2*keyLength {
		if b, err := hex.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, ErrKeyLength
}

func gcm(key []byte) (cipher.AEAD, error) {
	if len(key) != keyLength {
		return nil, ErrKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt cifra plain con key.
func Encrypt(key []byte, plain string) (string, error) {
	aead, err := gcm(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, nonceSizeGCM)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce random: %w", err)
	}
	ct := aead.Seal(nil, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(nonce) + sep + base64.StdEncoding.EncodeToString(ct), nil
}

// Decrypt revierte Encrypt.
func Decrypt(key []byte, sealed string) (string, error) {
	parts := strings.Split(sealed, sep)
	if len(parts) != 2 {
		return "", ErrFormat
	}
	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSizeGCM {
		return "", ErrFormat
	}
	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrFormat
	}
	aead, err := gcm(key)
	if err != nil {
		return "", err
	}
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("gcm auth/decrypt: %w", err)
	}
	return string(pt), nil
}

// Reveal descifra v si tiene Prefix; si no, lo retorna tal cual.
func Reveal(key []byte, v string) (string, error) {
	sealed, ok := strings.CutPrefix(v, Prefix)
	if !ok {
		return v, nil
	}
	return Decrypt(key, sealed)
}
