package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "chronicle", cmd.Use)
	assert.Contains(t, cmd.Long, "version history")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"serve", "migrate", "occurrences"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "chronicle.yaml", configFlag.DefValue)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestOccurrencesCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	occCmd, _, err := cmd.Find([]string{"occurrences"})
	require.NoError(t, err)

	for _, name := range []string{"pattern", "start", "from", "to", "limit"} {
		require.NotNil(t, occCmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "100", occCmd.Flags().Lookup("limit").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"occurrences", "--format", "xml", "--start", "2026-03-02T09:00:00Z"})
	cmd.SetOut(new(discard))
	cmd.SetErr(new(discard))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestConfigLoadFailure(t *testing.T) {
	for _, sub := range []string{"serve", "migrate"} {
		t.Run(sub, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetArgs([]string{sub, "--config", "testdata/does-not-exist.yaml"})
			cmd.SetOut(new(discard))
			cmd.SetErr(new(discard))

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load config")
		})
	}
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
