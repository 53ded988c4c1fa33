package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specweld/specweld/internal/testutil"
)

const repoFixture = `
-- config/config.yaml --
spec_versions: [v1]
-- spec/v1/meta/header.yaml --
openapi: 3.0.3
info:
  title: Pet API
  version: 1.0.0
-- spec/v1/paths/pets.yaml --
/pets:
  get:
    operationId: listPets
    tags: [pets]
    responses:
      "200":
        description: ok
        content:
          application/json:
            schema:
              $ref: "../schemas/pets.yaml#/Pet"
-- spec/v1/schemas/pets.yaml --
Pet:
  type: object
-- spec/v1/tags/tags.yaml --
pets:
  description: Pet operations
`

func TestHandleGenerate(t *testing.T) {
	repo := testutil.ExtractTxtar(t, repoFixture)

	require.NoError(t, HandleGenerate([]string{"-r", repo}))

	written := filepath.Join(repo, "spec", "v1", "full_spec.yaml")
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "openapi: 3.0.3")
	assert.Contains(t, string(data), "#/components/schemas/Pet")
}

func TestHandleValidate_WrittenSpec(t *testing.T) {
	repo := testutil.ExtractTxtar(t, repoFixture)
	require.NoError(t, HandleGenerate([]string{"-r", repo}))

	// Validates the written full spec without exiting.
	require.NoError(t, HandleValidate([]string{"-r", repo}))
}

func TestHandleValidate_InMemoryMerge(t *testing.T) {
	repo := testutil.ExtractTxtar(t, repoFixture)

	// No full spec written yet; the fragment tree is merged in memory.
	require.NoError(t, HandleValidate([]string{"-r", repo}))
}

func TestHandleValidate_InvalidSpecReturnsError(t *testing.T) {
	repo := testutil.ExtractTxtar(t, `
-- config/config.yaml --
spec_versions: [v1]
-- spec/v1/meta/header.yaml --
openapi: 3.0.3
-- spec/v1/paths/pets.yaml --
/pets:
  get:
    operationId: listPets
    responses:
      "200":
        description: ok
`)

	// Missing info section: the command must surface the failure as an
	// error so deferred cleanup still runs, not exit the process.
	err := HandleValidate([]string{"-r", repo})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed for 1 of 1 version(s)")
}

func TestHandleSplit(t *testing.T) {
	repo := testutil.ExtractTxtar(t, repoFixture)
	require.NoError(t, HandleGenerate([]string{"-r", repo}))

	out := t.TempDir()
	input := filepath.Join(repo, "spec", "v1", "full_spec.yaml")
	require.NoError(t, HandleSplit([]string{"-r", out, "-i", input}))

	assert.FileExists(t, filepath.Join(out, "spec", "v1", "paths", "pets.yaml"))
	assert.FileExists(t, filepath.Join(out, "spec", "v1", "meta", "header.yaml"))
	assert.FileExists(t, filepath.Join(out, "spec", "v1", "tags", "tags.yaml"))
}

func TestHandleSplit_RequiresInput(t *testing.T) {
	err := HandleSplit([]string{"-r", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input full-spec file is required")
}

func TestHandleGenerate_RejectsPositionalArgs(t *testing.T) {
	err := HandleGenerate([]string{"extra"})
	require.Error(t, err)
}

func TestEnvOr(t *testing.T) {
	t.Setenv(EnvAPIVersion, "v9")
	assert.Equal(t, "v9", EnvOr(EnvAPIVersion, "v1"))
	assert.Equal(t, "fallback", EnvOr("SPECWELD_UNSET_KEY", "fallback"))
}

func TestRepoFlags_LoadConfigOverrides(t *testing.T) {
	repo := testutil.ExtractTxtar(t, repoFixture)

	flags := &RepoFlags{
		RepoDir:    repo,
		ConfigDir:  "config",
		SpecDir:    "openapi",
		APIVersion: "v3",
	}
	cfg, err := flags.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "openapi", cfg.SpecDir)
	assert.Equal(t, []string{"v3"}, cfg.Versions)
	assert.Equal(t, filepath.Join(repo, "openapi"), flags.SpecRoot(cfg))
}
