package plugin

import (
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/plugin/config"
	"github.com/fp4php/functional-collection/plugin/refine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRegister(t *testing.T) {
	registry := hook.NewRegistry()
	require.NoError(t, Register(registry, config.Default()))
	assert.Len(t, registry.ProvidedClasses(), len(refine.Families))
	assert.Contains(t, registry.ProvidedClasses(), "nonemptyhashmap")
}

func TestRegisterSomeFamilies(t *testing.T) {
	registry := hook.NewRegistry()
	cfg := config.Default()
	cfg.Refine.Families = []string{"ArrayList", "Stream"}
	require.NoError(t, Register(registry, cfg))
	assert.Equal(t, []string{"arraylist", "stream"}, registry.ProvidedClasses())
}

func TestRegisterRejectsUnknownFamilies(t *testing.T) {
	cfg := config.Default()
	cfg.Refine.Families = []string{"ArrayList", "Vector"}
	err := Register(hook.NewRegistry(), cfg)
	assert.ErrorContains(t, err, `"Vector"`)
}

func TestRegisterChecksHostAPI(t *testing.T) {
	cfg := config.Default()
	cfg.HostAPI = ">= 2.0"
	err := Register(hook.NewRegistry(), cfg)
	assert.ErrorContains(t, err, "unsupported analyzer plugin API "+hook.APIVersion)

	cfg.HostAPI = "~1.4"
	assert.NoError(t, Register(hook.NewRegistry(), cfg))
}
