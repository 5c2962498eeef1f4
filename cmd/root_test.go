package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and input and returns captured output
func executeCommand(input string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestBattleCommand(t *testing.T) {
	t.Run("quits on request", func(t *testing.T) {
		out, err := executeCommand("q\n", "4", "2", "--seed", "1")

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "A: 4, D: 2\nEnter number of attacking troops. [1]> "), out)
	})

	t.Run("plays until the battle is over", func(t *testing.T) {
		out, err := executeCommand(strings.Repeat("\n", 100), "3", "1", "--seed", "5")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		last := lines[len(lines)-1]
		ended := false
		for _, final := range []string{"A: 3, D: 0", "A: 2, D: 0", "A: 1, D: 1"} {
			ended = ended || strings.HasSuffix(last, final)
		}
		require.True(t, ended, last)
	})

	t.Run("no attack possible", func(t *testing.T) {
		out, err := executeCommand("", "1", "6")

		require.NoError(t, err)
		require.Equal(t, "A: 1, D: 6\n", out)
	})

	t.Run("rejects bad troop counts", func(t *testing.T) {
		_, err := executeCommand("", "many", "2")
		require.ErrorContains(t, err, "not a number")

		_, err = executeCommand("", "--", "4", "-2")
		require.ErrorContains(t, err, "cannot be negative")
	})

	t.Run("needs two arguments", func(t *testing.T) {
		_, err := executeCommand("", "4")

		require.Error(t, err)
	})
}

func TestOddsCommand(t *testing.T) {
	t.Run("certain win", func(t *testing.T) {
		out, err := executeCommand("", "odds", "30", "1", "--battles", "100", "--seed", "3")

		require.NoError(t, err)
		require.Contains(t, out, "A: 30, D: 1 over 100 battles\n")
		require.Contains(t, out, "Attacker wins:       100.0%\n")
	})

	t.Run("rejects bad attack size", func(t *testing.T) {
		_, err := executeCommand("", "odds", "5", "5", "--attack", "7")

		require.ErrorContains(t, err, "odds.attack")
	})
}
