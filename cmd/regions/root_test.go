package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"regions/internal/config"
	"regions/internal/parser"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.Config{}, zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUsageWithoutArguments(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, usage+"\n", out)
}

func TestEnrichDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "votes.csv")
	require.NoError(t, os.WriteFile(input, []byte("year,constituency,party,vote_count\n2020,Tampines,PAP,100\n"), 0o644))

	out, err := execute(t, input)
	require.NoError(t, err)
	require.Contains(t, out, "Loaded 1 records")

	b, err := os.ReadFile(filepath.Join(dir, "votes_with_regions.csv"))
	require.NoError(t, err)
	require.Equal(t, "year,constituency,party,vote_count,region\n2020,Tampines,PAP,100,North-East\n", string(b))
}

func TestEnrichExplicitOutputAndExtraArgs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "votes.csv")
	output := filepath.Join(dir, "-out.csv")
	require.NoError(t, os.WriteFile(input, []byte("constituency\nJurong\n"), 0o644))

	_, err := execute(t, input, output, "ignored")
	require.NoError(t, err)
	_, err = os.Stat(output)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "votes_with_regions.csv"))
	require.True(t, os.IsNotExist(err))
}

func TestMissingColumnIsNotFatal(t *testing.T) {
	input := filepath.Join(t.TempDir(), "votes.csv")
	require.NoError(t, os.WriteFile(input, []byte("year,party\n2020,PAP\n"), 0o644))

	out, err := execute(t, input)
	require.NoError(t, err)
	require.Contains(t, out, "Available columns: ['year', 'party']")
}

func TestMissingInputIsReported(t *testing.T) {
	input := filepath.Join(t.TempDir(), "votes.csv")

	out, err := execute(t, input)
	var reported *reportedError
	require.True(t, errors.As(err, &reported))
	require.ErrorIs(t, err, parser.ErrInputNotFound)
	require.Contains(t, out, "not found")
}

func TestHelpMentionsStrictRowWidth(t *testing.T) {
	cmd := newRootCmd(config.Config{}, zap.NewNop())
	require.Contains(t, cmd.Long, "rejected as malformed input")
}

func TestShortRowIsMalformed(t *testing.T) {
	input := filepath.Join(t.TempDir(), "votes.csv")
	require.NoError(t, os.WriteFile(input, []byte("year,constituency,party\n2020,Jurong\n"), 0o644))

	out, err := execute(t, input)
	require.ErrorIs(t, err, parser.ErrMalformedInput)
	require.Contains(t, out, "could not parse")
}
