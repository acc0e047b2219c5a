package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
)

// Secret names used across config resolution and the auth commands.
const (
	KeyGemini = "gemini"
	KeySerper = "serper"
)

// KeyService manages the stored API keys.
type KeyService struct {
	store ports.SecretStore
}

func NewKeyService(store ports.SecretStore) *KeyService {
	return &KeyService{store: store}
}

func (s *KeyService) Set(ctx context.Context, name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("key name is required")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("key value is required")
	}

	if err := s.store.Put(ctx, name, value); err != nil {
		return fmt.Errorf("store key %s: %w", name, err)
	}

	return nil
}

func (s *KeyService) Get(ctx context.Context, name string) (string, error) {
	value, err := s.store.Get(ctx, strings.TrimSpace(name))
	if err != nil {
		return "", fmt.Errorf("get key %s: %w", name, err)
	}

	return value, nil
}

func (s *KeyService) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("delete key %s: %w", name, err)
	}

	return nil
}

// Present reports which of the given keys have a stored value. A lookup
// error other than absence surfaces as an error.
func (s *KeyService) Present(ctx context.Context, names ...string) (map[string]bool, error) {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		_, err := s.store.Get(ctx, name)
		switch {
		case err == nil:
			present[name] = true
		case errors.Is(err, domain.ErrSecretNotFound):
			present[name] = false
		default:
			return nil, fmt.Errorf("get key %s: %w", name, err)
		}
	}

	return present, nil
}

// Mask shortens a secret for display, keeping only the edges.
func Mask(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + "..." + value[len(value)-4:]
}
