package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, context.Background(), ctx)
			assert.Equal(t, []string{"insert", "-m", "-f", "ideaforge/gemini"}, args)
			assert.Equal(t, "AIza-test-key\n", input)
			return "", "", nil
		},
	}

	err := store.Put(context.Background(), "ideaforge/gemini", "AIza-test-key")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "ideaforge/gemini"}, args)
			assert.Empty(t, input)
			return "AIza-test-key\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "ideaforge/gemini")
	require.NoError(t, err)
	assert.Equal(t, "AIza-test-key", value)
}

func TestStoreDeleteUsesPassRemove(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "ideaforge/gemini"}, args)
			assert.Empty(t, input)
			return "", "", nil
		},
	}

	err := store.Delete(context.Background(), "ideaforge/gemini")
	require.NoError(t, err)
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: ideaforge/gemini is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "ideaforge/gemini")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "ideaforge/gemini")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "ideaforge/gemini")
	assert.ErrorContains(t, err, "gpg: decryption failed")
}
