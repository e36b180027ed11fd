package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Attributes(t *testing.T) {
	tests := []struct {
		theme    Theme
		id       string
		prefix   string
		fileName string
	}{
		{ThemeArtificialIntelligence, "ai", "AI", "open_fda_ml_results"},
		{ThemeAlgorithm, "algorithm", "ALG", "open_fda_algorithms_results"},
		{ThemeDiagnosticAlgorithm, "diagnostic-algorithm", "ALG-DIAG", "open_fda_algorithms_diagnostic_results"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.True(t, tt.theme.Valid())
			assert.Equal(t, tt.id, tt.theme.ID())
			assert.Equal(t, tt.id, tt.theme.String())
			assert.Equal(t, tt.prefix, tt.theme.LabelPrefix())
			assert.Equal(t, tt.fileName, tt.theme.BaseFileName())
			assert.NotEmpty(t, tt.theme.Name())
		})
	}
}

func TestAllThemes_Order(t *testing.T) {
	assert.Equal(t,
		[]Theme{ThemeArtificialIntelligence, ThemeAlgorithm, ThemeDiagnosticAlgorithm},
		AllThemes())
}

func TestParseTheme(t *testing.T) {
	t.Run("known identifiers", func(t *testing.T) {
		for _, want := range AllThemes() {
			got, err := ParseTheme(want.ID())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		got, err := ParseTheme("  ALGORITHM ")
		require.NoError(t, err)
		assert.Equal(t, ThemeAlgorithm, got)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := ParseTheme("blockchain")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownTheme))
	})
}

func TestTheme_UnknownPanics(t *testing.T) {
	var zero Theme
	assert.False(t, zero.Valid())
	assert.Equal(t, "Theme(0)", zero.String())
	assert.Panics(t, func() { _ = zero.LabelPrefix() })
	assert.Panics(t, func() { _ = Theme(42).BaseFileName() })
}
