package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/findexlab/fipulse/internal/outwriter"
	"github.com/findexlab/fipulse/schema"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setMethodologyViperValues seeds the viper keys methodologySetup reads,
// isolated from the package-level flag bindings.
func setMethodologyViperValues(t *testing.T, output, outputFile string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output", output)
	viper.Set("output-file", outputFile)
	viper.Set("color", "no")
	viper.Set("multiplier", 1.0)
	viper.Set("uncertainty-width", 0.2)
	viper.Set("optimistic-factor", 1.2)
	viper.Set("pessimistic-factor", 0.7)
}

// TestMethodologySetupOutputJSON checks that the configured output mode
// reaches the config and the JSON branch of the printer.
func TestMethodologySetupOutputJSON(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "methodology.json")
	setMethodologyViperValues(t, "json", outFile)

	require.NoError(t, methodologySetup(nil, nil))
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, outFile, cfg.OutputFile)

	require.NoError(t, outwriter.PrintMethodology(cfg))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var model schema.MethodologyRenderModel
	require.NoError(t, json.Unmarshal(data, &model))
	assert.Equal(t, "Forecast Methodology", model.Title)
	assert.Len(t, model.Steps, 4)
}

// TestMethodologySetupOutputCSV checks the CSV branch end to end.
func TestMethodologySetupOutputCSV(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "methodology.csv")
	setMethodologyViperValues(t, "csv", outFile)

	require.NoError(t, methodologySetup(nil, nil))
	assert.Equal(t, schema.CSVOut, cfg.Output)

	require.NoError(t, outwriter.PrintMethodology(cfg))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5, "header plus one row per methodology step")
	assert.Equal(t, "step,name,purpose,formula", lines[0])
}

// TestMethodologySetupInvalidOutput rejects unknown output modes.
func TestMethodologySetupInvalidOutput(t *testing.T) {
	setMethodologyViperValues(t, "yaml", "")

	err := methodologySetup(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
