package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes a loaded input document
type Metadata struct {
	Path     string    `json:"path"`
	Format   Format    `json:"format"`
	Chars    int       `json:"chars"`
	Hash     string    `json:"hash"` // SHA256 hex digest of the loaded text
	LoadedAt time.Time `json:"loaded_at"`
}

// NewMetadata describes text loaded from path
func NewMetadata(path, text string) *Metadata {
	return &Metadata{
		Path:     path,
		Format:   DetectFormat(path),
		Chars:    len([]rune(text)),
		Hash:     computeHash(text),
		LoadedAt: time.Now().UTC(),
	}
}

// ShortHash returns the first 12 hex digits of the hash, enough to tell inputs apart in logs
func (m *Metadata) ShortHash() string {
	if len(m.Hash) < 12 {
		return m.Hash
	}
	return m.Hash[:12]
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
