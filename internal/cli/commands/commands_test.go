package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/euclid/internal/cli/config"
	"github.com/leapstack-labs/euclid/internal/testutil"
	"github.com/leapstack-labs/euclid/pkg/parser"
)

const sampleProof = `Prove: 2n is an even number.
Let n be an even number.
By definition n = 2k where k is an integer.
Let m = 2n.
By substitution m = 2(2k).
Therefore m is an even number.
Therefore 2n is an even number.
`

func writeProof(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proof.prf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig() *config.Config {
	return &config.Config{MaxDepth: parser.DefaultMaxDepth, LogLevel: "info"}
}

func TestCheckFile_ValidProof(t *testing.T) {
	path := writeProof(t, sampleProof)
	err := checkFile(path, testConfig(), testutil.NewTestLogger(t))
	assert.NoError(t, err)
}

func TestCheckFile_ParseError(t *testing.T) {
	path := writeProof(t, "Prove: m = 2(3n.")
	err := checkFile(path, testConfig(), testutil.NewTestLogger(t))
	require.Error(t, err)

	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCheckFile_CheckFinding(t *testing.T) {
	path := writeProof(t, "Prove: n = 1.\nTherefore n = 2.")
	err := checkFile(path, testConfig(), testutil.NewTestLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestCheckFile_MissingFile(t *testing.T) {
	err := checkFile(filepath.Join(t.TempDir(), "missing.prf"), testConfig(), testutil.NewTestLogger(t))
	assert.Error(t, err)
}

func TestCheckCommand_MultipleFiles(t *testing.T) {
	good := writeProof(t, sampleProof)
	bad := writeProof(t, "Prove: n = 1.\nTherefore n = 2.")

	cmd := NewCheckCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{good, bad})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 proofs failed")
	assert.Contains(t, out.String(), "no errors were detected")
	assert.Contains(t, errOut.String(), "does not match")
}

func TestFmtCommand(t *testing.T) {
	path := writeProof(t, "prove:   n = 1.\n  THEREFORE n=1.")

	cmd := NewFmtCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Prove: n = 1.\nTherefore n = 1.\n", out.String())
}

func TestFmtCommand_Write(t *testing.T) {
	path := writeProof(t, "prove: n = 1.\ntherefore n = 1.")

	cmd := NewFmtCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--write", path})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Prove: n = 1.\nTherefore n = 1.\n", string(content))
}

func TestTokensCommand(t *testing.T) {
	path := writeProof(t, "Let n be an even number.")

	cmd := NewTokensCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "LET")
	assert.Contains(t, out.String(), "SYMBOL")
	assert.Contains(t, out.String(), "even")
}

func TestTokensCommand_LexError(t *testing.T) {
	path := writeProof(t, "Let n % 2.")

	cmd := NewTokensCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized character")
}
