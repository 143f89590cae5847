package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "pairsum", cmd.Use)
	assert.Contains(t, cmd.Long, "GCD(i,j) + LCM(i,j)")
}

func TestFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.Flags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"time", "group"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "false", f.DefValue)
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range ValidFormats {
		assert.True(t, isValidFormat(f), f)
	}
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))

	wrapped := WrapExitError(ExitFailure, "computation failed", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "computation failed: ")
}
