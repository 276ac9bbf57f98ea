package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/anatree/pkg/anatree"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config      kong.ConfigFlag `help:"Configuration file (YAML or JSON) with flag values"`
	Debug       bool            `help:"Log every index operation"`
	Dict        []string        `short:"d" type:"existingfile" required:"" help:"Word list to index (plain text, CSV or JSON), repeatable"`
	Column      string          `help:"Field holding the word in CSV and JSON records" default:"word"`
	FoldCase    bool            `help:"Ignore letter case when comparing words"`
	FreshSplice bool            `help:"Start nodes spliced into the index from an empty subtree"`
	Format      string          `enum:"text,json,csv" default:"text" help:"Output format (text, json, csv)"`
}

// CLI is the command tree of the anatree tool.
var CLI struct {
	Globals

	Lookup LookupCmd `cmd:"" help:"Print the anagrams of words"`
	Groups GroupsCmd `cmd:"" help:"Print the anagram groups of the word lists"`
}

// Options returns the kong options the tool is parsed with.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("anatree"),
		kong.Description("Anagram lookup over word lists."),
		kong.UsageOnError(),
		kong.Configuration(ConfigLoader, "~/.config/anatree/config.yaml", "./anatree.yaml"),
		kong.Resolvers(EnvResolver()),
	}
}

// Logger returns the logger selected by the flags.
func (g *Globals) Logger() *slog.Logger {
	level := slog.LevelInfo
	if g.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// BuildIndex loads every word list and inserts the words, file by file, in file order.
func (g *Globals) BuildIndex(ctx context.Context, logger *slog.Logger) (*anatree.Index, *Stats, error) {
	opts := []anatree.Option{anatree.WithLogger(logger)}
	if g.FoldCase {
		opts = append(opts, anatree.WithFoldCase())
	}
	if g.FreshSplice {
		opts = append(opts, anatree.WithFreshSplice())
	}
	idx := anatree.New(opts...)

	lists, err := LoadWords(ctx, g.Dict, g.Column)
	if err != nil {
		return nil, nil, err
	}

	stats := &Stats{}
	for i, words := range lists {
		for _, word := range words {
			idx.Insert(word)
		}
		stats.Input += len(words)
		logger.Info("indexed word list", "file", g.Dict[i], "words", len(words))
	}
	logger.Debug("index built", "stats", idx.Stats().String())

	return idx, stats, nil
}

// Stats counts the records read and written by a command.
type Stats struct {
	Input  int
	Output int
}

func (s Stats) String() string {
	return fmt.Sprintf("input: %d, output: %d", s.Input, s.Output)
}
