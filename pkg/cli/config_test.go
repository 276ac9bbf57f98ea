package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	Globals

	Lookup LookupCmd `cmd:""`
	Groups GroupsCmd `cmd:""`
}

func TestConfigFileSetsFlags(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "words.txt", "cat\n")
	config := writeFile(t, dir, "anatree.yaml", fmt.Sprintf("dict: [%q]\nfold-case: true\nformat: json\nmin-size: 3\n", dict))

	var grammar testCLI
	parser, err := kong.New(&grammar, kong.Configuration(ConfigLoader, config))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"groups"})
	require.NoError(t, err)

	assert.Equal(t, []string{dict}, grammar.Dict)
	assert.True(t, grammar.FoldCase)
	assert.False(t, grammar.FreshSplice)
	assert.Equal(t, "json", grammar.Format)
	assert.Equal(t, "word", grammar.Column, "defaults stay when the file does not set a flag")
	assert.Equal(t, 3, grammar.Groups.MinSize)
}

func TestConfigFileKeepsSeparatorsInPaths(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "nouns,verbs.txt", "cat\n")
	second := writeFile(t, dir, "names.txt", "act\n")
	config := writeFile(t, dir, "anatree.yaml", fmt.Sprintf("dict: [%q, %q]\n", first, second))

	var grammar testCLI
	parser, err := kong.New(&grammar, kong.Configuration(ConfigLoader, config))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"lookup", "tac"})
	require.NoError(t, err)

	assert.Equal(t, []string{first, second}, grammar.Dict)
}

func TestCommandLineOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "words.txt", "cat\n")
	config := writeFile(t, dir, "anatree.yaml", fmt.Sprintf("dict: [%q]\nformat: json\n", dict))

	var grammar testCLI
	parser, err := kong.New(&grammar, kong.Configuration(ConfigLoader, config))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--format", "csv", "lookup", "act"})
	require.NoError(t, err)

	assert.Equal(t, "csv", grammar.Format)
	assert.Equal(t, []string{"act"}, grammar.Lookup.Words)
}

func TestEnvResolver(t *testing.T) {
	dict := writeFile(t, t.TempDir(), "words.txt", "cat\n")
	t.Setenv("ANATREE_DICT", dict)
	t.Setenv("ANATREE_FRESH_SPLICE", "true")

	var grammar testCLI
	parser, err := kong.New(&grammar, kong.Resolvers(EnvResolver()))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"lookup", "act"})
	require.NoError(t, err)

	assert.Equal(t, []string{dict}, grammar.Dict)
	assert.True(t, grammar.FreshSplice)
	assert.Equal(t, "text", grammar.Format)
}

func TestConfigLoaderRejectsInvalidYaml(t *testing.T) {
	_, err := ConfigLoader(strings.NewReader("dict: [words.txt"))
	assert.Error(t, err)
}
