package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConnector_Web(t *testing.T) {
	connector, err := buildConnector("web", []string{"https://example.com/scripts"})
	require.NoError(t, err)
	defer connector.Close()

	assert.Equal(t, "web", connector.Type())
	assert.NotEmpty(t, connector.SourceID())
}

func TestBuildConnector_GitHub(t *testing.T) {
	connector, err := buildConnector("github", []string{"owner/repo"})
	require.NoError(t, err)
	defer connector.Close()

	assert.Equal(t, "github", connector.Type())
}

func TestBuildConnector_GitHub_BadRepo(t *testing.T) {
	_, err := buildConnector("github", []string{"not-a-repo-spec"})
	assert.Error(t, err)
}

func TestBuildConnector_Filesystem(t *testing.T) {
	connector, err := buildConnector("filesystem", []string{t.TempDir()})
	require.NoError(t, err)
	defer connector.Close()

	assert.Equal(t, "filesystem", connector.Type())
}

func TestBuildConnector_Filesystem_TooManyTargets(t *testing.T) {
	_, err := buildConnector("filesystem", []string{"/a", "/b"})
	assert.Error(t, err)
}

func TestBuildConnector_UnknownType(t *testing.T) {
	_, err := buildConnector("ftp", []string{"ftp://example.com"})
	assert.Error(t, err)
}

func TestScrapeCmd_RequiresArgs(t *testing.T) {
	oldVault := vaultService
	vaultService = &mockVaultService{}
	defer func() { vaultService = oldVault }()

	_, err := execute(t, "scrape", "web")
	assert.Error(t, err)
}
