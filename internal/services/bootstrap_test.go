package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedConfig(t *testing.T) {
	raw := `
organizations:
  - name: Historians Guild
    founder: alice
    member_limit: 20
    members:
      - bob
      - carol
  - name: Cartographers
    founder: dave
    member_limit: 5
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	config, err := LoadSeedConfig(path)
	require.NoError(t, err)
	require.Len(t, config.Organizations, 2)

	guild := config.Organizations[0]
	assert.Equal(t, "Historians Guild", guild.Name)
	assert.Equal(t, "alice", guild.Founder)
	assert.Equal(t, uint64(20), guild.MemberLimit)
	assert.Equal(t, []string{"bob", "carol"}, guild.Members)

	assert.Empty(t, config.Organizations[1].Members)
}

func TestLoadSeedConfigMissingFile(t *testing.T) {
	_, err := LoadSeedConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSeedConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("organizations: {nope"), 0o600))

	_, err := LoadSeedConfig(path)
	assert.Error(t, err)
}
