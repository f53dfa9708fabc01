package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/blockexpr/internal/config"
)

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	cfg, err := config.Load([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesIdentBreakers(t *testing.T) {
	cfg, err := config.Load([]byte(`{"identBreakers": "!@#"}`))
	require.NoError(t, err)
	require.Equal(t, "!@#", cfg.IdentBreakers)
	require.Equal(t, 4, cfg.MaxEscapeWidth)
}

func TestLoadOverridesMaxEscapeWidth(t *testing.T) {
	cfg, err := config.Load([]byte(`{"maxEscapeWidth": 2}`))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.MaxEscapeWidth)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	_, err := config.Load([]byte(`{"bogus": true}`))
	require.Error(t, err)
}

func TestLoadRejectsOutOfRangeEscapeWidth(t *testing.T) {
	_, err := config.Load([]byte(`{"maxEscapeWidth": 9}`))
	require.Error(t, err)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, err := config.Load([]byte(`{`))
	require.Error(t, err)
}
