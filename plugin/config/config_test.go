package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultSuppressed, cfg.Suppress.Methods)
	assert.Empty(t, cfg.Refine.Families)
}

func TestParseExtendsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
suppress:
  methods:
    - ArrayList::reverse
refine:
  families: [ArrayList, HashMap]
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultHostAPI, cfg.HostAPI)
	assert.Contains(t, cfg.Suppress.Methods, "Stream::drain")
	assert.Contains(t, cfg.Suppress.Methods, "ArrayList::reverse")
	assert.Equal(t, []string{"ArrayList", "HashMap"}, cfg.Refine.Families)
	// defaults are never modified in place
	assert.NotContains(t, DefaultSuppressed, "ArrayList::reverse")
}

func TestParseReplacesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
host_api: ">= 1.0, < 3"
suppress:
  replace_defaults: true
  methods: [Stream::drain]
`))
	require.NoError(t, err)
	assert.Equal(t, ">= 1.0, < 3", cfg.HostAPI)
	assert.Equal(t, []string{"Stream::drain"}, cfg.Suppress.Methods)
}

func TestParseRejectsInvalidConfigs(t *testing.T) {
	_, err := Parse([]byte(`suppress: [not, a, map]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`
host_api: "not a constraint"
suppress:
  methods: [tap, "::tap", "Stream::"]
`))
	require.Error(t, err)
	for _, expected := range []string{"host_api", `"tap"`, `"::tap"`, `"Stream::"`} {
		assert.Contains(t, err.Error(), expected)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suppress:\n  methods: [Seq::reverse]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, cfg.Suppress.Methods, "Seq::reverse")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "could not read plugin config")
}

func TestHostConstraint(t *testing.T) {
	constraint, err := Default().HostConstraint()
	require.NoError(t, err)
	assert.NotNil(t, constraint)
}
