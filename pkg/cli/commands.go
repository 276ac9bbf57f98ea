package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

type LookupCmd struct {
	Words  []string `arg:"" help:"Words to find anagrams of"`
	Strict bool     `help:"Report exact anagrams only, not words built from a part of the letters"`

	out io.Writer
}

// Run executes the lookup command.
func (cmd *LookupCmd) Run(ctx context.Context, globals *Globals) error {
	logger := globals.Logger()

	idx, stats, err := globals.BuildIndex(ctx, logger)
	if err != nil {
		return err
	}

	results := make([]LookupResult, 0, len(cmd.Words))
	for _, word := range cmd.Words {
		var anagrams []string
		if cmd.Strict {
			anagrams = idx.ExactAnagramsOf(word)
		} else {
			anagrams = idx.AnagramsOf(word)
		}
		results = append(results, LookupResult{Word: word, Anagrams: anagrams})
	}

	writer, err := NewWriter(globals.Format, cmd.output(), stats)
	if err != nil {
		return err
	}
	if err := writer.WriteLookups(results); err != nil {
		return fmt.Errorf("can not write results: %w", err)
	}
	logger.Debug("lookup complete", "stats", stats.String())
	return nil
}

func (cmd *LookupCmd) output() io.Writer {
	if cmd.out != nil {
		return cmd.out
	}
	return os.Stdout
}

type GroupsCmd struct {
	MinSize int    `default:"2" help:"Smallest group to report"`
	Out     string `short:"o" type:"path" help:"Write to this file instead of the standard output"`

	out io.Writer
}

// Run executes the groups command.
func (cmd *GroupsCmd) Run(ctx context.Context, globals *Globals) (err error) {
	logger := globals.Logger()

	idx, stats, err := globals.BuildIndex(ctx, logger)
	if err != nil {
		return err
	}

	groups := []Group{}
	for _, words := range idx.Groups() {
		if len(words) < cmd.MinSize {
			continue
		}
		groups = append(groups, Group{Key: string(idx.Key(words[0])), Words: words})
	}

	out := cmd.out
	if out == nil {
		out = os.Stdout
		if cmd.Out != "" {
			file, createErr := os.Create(cmd.Out)
			if createErr != nil {
				return createErr
			}
			defer func() {
				if closeErr := file.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("can not close %s: %w", cmd.Out, closeErr)
				}
			}()
			out = file
		}
	}

	writer, err := NewWriter(globals.Format, out, stats)
	if err != nil {
		return err
	}
	if err := writer.WriteGroups(groups); err != nil {
		return fmt.Errorf("can not write groups: %w", err)
	}
	logger.Info("groups written", "groups", len(groups), "stats", stats.String())
	return nil
}
