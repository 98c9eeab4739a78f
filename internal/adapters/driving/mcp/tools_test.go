package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

func newTestPorts(vault *mockVaultService) *Ports {
	return &Ports{Vault: vault}
}

func TestNewServer_RequiresVault(t *testing.T) {
	_, err := NewServer(&Ports{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVaultService)
}

func TestServer_handleSearchScripts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching scripts", func(t *testing.T) {
		vault := &mockVaultService{
			scripts: []domain.Script{
				{ID: "s-1", Name: "Get_ADUser_Report.ps1", Category: "ActiveDirectory", URI: "github://o/r/blob/main/a.ps1", Size: 120},
				{ID: "s-2", Name: "backup_rotate.py", Category: "Backup", URI: "file:///tmp/b.py", Size: 48},
			},
		}
		server, err := NewServer(newTestPorts(vault))
		require.NoError(t, err)

		input := SearchScriptsInput{Query: "aduser"}
		_, output, err := server.handleSearchScripts(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Scripts, 1)
		assert.Equal(t, "s-1", output.Scripts[0].ID)
		assert.Equal(t, "ActiveDirectory", output.Scripts[0].Category)
	})

	t.Run("applies limit", func(t *testing.T) {
		vault := &mockVaultService{
			scripts: []domain.Script{
				{ID: "s-1", Name: "one.ps1"},
				{ID: "s-2", Name: "two.ps1"},
				{ID: "s-3", Name: "three.ps1"},
			},
		}
		server, err := NewServer(newTestPorts(vault))
		require.NoError(t, err)

		input := SearchScriptsInput{Limit: 2}
		_, output, err := server.handleSearchScripts(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
	})

	t.Run("passes category to the vault", func(t *testing.T) {
		vault := &mockVaultService{}
		server, err := NewServer(newTestPorts(vault))
		require.NoError(t, err)

		input := SearchScriptsInput{Category: "Network"}
		_, _, err = server.handleSearchScripts(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "Network", vault.listedCategory)
	})

	t.Run("returns error on vault failure", func(t *testing.T) {
		vault := &mockVaultService{err: errors.New("store offline")}
		server, err := NewServer(newTestPorts(vault))
		require.NoError(t, err)

		_, _, err = server.handleSearchScripts(ctx, nil, SearchScriptsInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store offline")
	})
}

func TestServer_handleGetScript(t *testing.T) {
	ctx := context.Background()

	t.Run("returns metadata and content", func(t *testing.T) {
		vault := &mockVaultService{
			scripts: []domain.Script{
				{ID: "s-1", Name: "Get_ADUser_Report.ps1", Category: "ActiveDirectory", Size: 20},
			},
			content: map[string][]byte{"s-1": []byte("Get-ADUser -Filter *")},
		}
		server, err := NewServer(newTestPorts(vault))
		require.NoError(t, err)

		_, output, err := server.handleGetScript(ctx, nil, GetScriptInput{ID: "s-1"})

		require.NoError(t, err)
		assert.Equal(t, "Get_ADUser_Report.ps1", output.Script.Name)
		assert.Equal(t, "Get-ADUser -Filter *", output.Content)
	})

	t.Run("returns error for unknown ID", func(t *testing.T) {
		vault := &mockVaultService{}
		server, err := NewServer(newTestPorts(vault))
		require.NoError(t, err)

		_, _, err = server.handleGetScript(ctx, nil, GetScriptInput{ID: "missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
