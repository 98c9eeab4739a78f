package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLogin_WithTokenFlag(t *testing.T) {
	oldStore := configStore
	store := newMockConfigStore()
	configStore = store
	defer func() {
		configStore = oldStore
		authToken = ""
	}()

	out, err := execute(t, "auth", "login", "--token", "ghp_testtoken123")
	require.NoError(t, err)
	assert.Contains(t, out, "Token saved.")
	assert.Equal(t, "ghp_testtoken123", store.GetString("github.token"))
}

func TestAuthStatus_WithToken(t *testing.T) {
	oldStore := configStore
	store := newMockConfigStore()
	require.NoError(t, store.Set("github.token", "ghp_testtoken123"))
	configStore = store
	defer func() { configStore = oldStore }()

	out, err := execute(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "ghp_test")
	// Only the prefix is shown.
	assert.NotContains(t, out, "ghp_testtoken123")
}

func TestAuthStatus_NoToken(t *testing.T) {
	oldStore := configStore
	configStore = newMockConfigStore()
	defer func() { configStore = oldStore }()

	out, err := execute(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No GitHub token configured.")
}

func TestAuthLogout(t *testing.T) {
	oldStore := configStore
	store := newMockConfigStore()
	require.NoError(t, store.Set("github.token", "ghp_testtoken123"))
	configStore = store
	defer func() { configStore = oldStore }()

	out, err := execute(t, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Token removed.")
	assert.Empty(t, store.GetString("github.token"))
}

func TestConfigTokenProvider(t *testing.T) {
	oldStore := configStore
	store := newMockConfigStore()
	require.NoError(t, store.Set("github.token", "ghp_abc"))
	configStore = store
	defer func() { configStore = oldStore }()

	provider := &configTokenProvider{}
	token, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", token)
}

func TestConfigTokenProvider_Missing(t *testing.T) {
	oldStore := configStore
	configStore = newMockConfigStore()
	defer func() { configStore = oldStore }()

	provider := &configTokenProvider{}
	_, err := provider.GetToken(context.Background())
	assert.Error(t, err)
}
