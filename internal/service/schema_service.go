package service

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"blueprint-ai/backend/internal/schema"
)

// SchemaService turns raw API schema documents into the compact summary
// fed to the refinement engine. Summaries are pure functions of their
// input, so results are cached by content hash.
type SchemaService struct {
	cache *lru.Cache[string, string]
}

func NewSchemaService(cacheSize int) (*SchemaService, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &SchemaService{cache: cache}, nil
}

// Summarize parses a schema document and returns its JSON summary.
func (s *SchemaService) Summarize(raw []byte) (string, error) {
	sum := sha256.Sum256(raw)
	key := hex.EncodeToString(sum[:])
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	summary, err := schema.Extract(raw)
	if err != nil {
		return "", err
	}
	out, err := summary.JSON()
	if err != nil {
		return "", err
	}
	s.cache.Add(key, out)
	return out, nil
}
