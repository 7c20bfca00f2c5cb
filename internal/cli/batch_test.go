package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchGolden(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "batch", "testdata/instants.yaml")
	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr)
	assertGolden(t, "batch_text", stdout)

	code, stdout, stderr = runCLI(t, "", "--format", "json", "batch", "testdata/instants.yaml")
	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr)
	assertGolden(t, "batch_json", stdout)
}

func TestBatchStdin(t *testing.T) {
	input := "- {year: 2000, month: 1, day: 1, hour: 12}\n- {year: 1, month: 1, day: 1}\n"
	code, stdout, _ := runCLI(t, input, "batch", "-")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "2451545.0\n1721425.5\n", stdout)
}

func TestBatchEmptyInput(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "batch", "-")
	require.Equal(t, ExitSuccess, code)
	assert.Empty(t, stdout)

	code, stdout, _ = runCLI(t, "", "--format", "json", "batch", "-")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "{\"status\":\"ok\",\"data\":[]}\n", stdout)
}

func TestBatchMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	code, stdout, stderr := runCLI(t, "", "batch", path)
	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error [E003]")
	assert.Contains(t, stderr, "failed to read instants file")
}

func TestBatchUnknownField(t *testing.T) {
	code, _, stderr := runCLI(t, "- {year: 2000, mintue: 1}\n", "batch", "-")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "failed to parse YAML")
}

func TestBatchVerbose(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-v", "batch", "testdata/instants.yaml")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, `msg="loaded instants"`)
	assert.Contains(t, stderr, "count=4")
	assert.Contains(t, stderr, "path=testdata/instants.yaml")
}

func TestBatchNonFiniteJSON(t *testing.T) {
	input := "- {year: 2000, month: 1, day: 1}\n- {year: 2000, month: 1, day: 1, second: .nan}\n"

	code, stdout, _ := runCLI(t, input, "batch", "-")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "2451544.5\nnan\n", stdout)

	code, stdout, stderr := runCLI(t, input, "--format", "json", "batch", "-")
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `"code":"E005"`)
	assert.Contains(t, stdout, "instant 1: julian date nan is not representable in JSON")
}

func TestBatchRequiresPath(t *testing.T) {
	code, _, stderr := runCLI(t, "", "batch")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "accepts 1 arg")
}
