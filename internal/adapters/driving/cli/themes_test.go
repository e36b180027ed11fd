package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemesCmd_ListsThemes(t *testing.T) {
	cfgPath, _, fake := setupRun(t, "")

	out, err := executeCommand(t, "themes", "--config", cfgPath)
	require.NoError(t, err)

	for _, want := range []string{
		"ALG-DIAG",
		"open_fda_ml_results",
		"diagnostic-algorithm",
		"search=algorithm*&limit=500",
	} {
		assert.Contains(t, out, want)
	}
	assert.Empty(t, fake.received(), "listing themes must not query the API")
}

func TestThemesCmd_RejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "themes", "extra")
	assert.Error(t, err)
}
