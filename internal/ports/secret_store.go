package ports

import "context"

// SecretStore holds named API keys (for example "gemini", "serper")
// outside the config file and environment.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
