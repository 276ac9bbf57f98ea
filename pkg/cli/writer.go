package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LookupResult holds the anagrams found for one query word.
type LookupResult struct {
	Word     string   `json:"word"`
	Anagrams []string `json:"anagrams"`
}

// Group holds the words sharing one key.
type Group struct {
	Key   string   `json:"key"`
	Words []string `json:"words"`
}

type Writer interface {
	WriteLookups(results []LookupResult) error
	WriteGroups(groups []Group) error
}

// NewWriter returns the writer for format ("text", "json" or "csv").
func NewWriter(format string, out io.Writer, stats *Stats) (Writer, error) {
	switch format {
	case "", "text":
		return &TextWriter{out: out, Stats: stats}, nil
	case "json":
		return &JsonWriter{out: out, Stats: stats}, nil
	case "csv":
		return &CsvWriter{out: out, Stats: stats}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextWriter writes one line per result, e.g. "tinsel: listen silent enlist".
type TextWriter struct {
	out   io.Writer
	Stats *Stats
}

func (w *TextWriter) WriteLookups(results []LookupResult) error {
	for _, result := range results {
		if _, err := fmt.Fprintf(w.out, "%s: %s\n", result.Word, strings.Join(result.Anagrams, " ")); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return nil
}

func (w *TextWriter) WriteGroups(groups []Group) error {
	for _, group := range groups {
		if _, err := fmt.Fprintln(w.out, strings.Join(group.Words, " ")); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return nil
}

// JsonWriter writes the results as one JSON array.
type JsonWriter struct {
	out   io.Writer
	Stats *Stats
}

func (w *JsonWriter) WriteLookups(results []LookupResult) error {
	if err := json.NewEncoder(w.out).Encode(results); err != nil {
		return err
	}
	w.Stats.Output += len(results)
	return nil
}

func (w *JsonWriter) WriteGroups(groups []Group) error {
	if err := json.NewEncoder(w.out).Encode(groups); err != nil {
		return err
	}
	w.Stats.Output += len(groups)
	return nil
}

// CsvWriter writes a header and one record per result; words are space separated.
type CsvWriter struct {
	out   io.Writer
	Stats *Stats
}

func (w *CsvWriter) WriteLookups(results []LookupResult) error {
	writer := csv.NewWriter(w.out)
	if err := writer.Write([]string{"word", "count", "anagrams"}); err != nil {
		return err
	}
	for _, result := range results {
		record := []string{result.Word, strconv.Itoa(len(result.Anagrams)), strings.Join(result.Anagrams, " ")}
		if err := writer.Write(record); err != nil {
			return err
		}
		w.Stats.Output++
	}
	writer.Flush()
	return writer.Error()
}

func (w *CsvWriter) WriteGroups(groups []Group) error {
	writer := csv.NewWriter(w.out)
	if err := writer.Write([]string{"key", "size", "words"}); err != nil {
		return err
	}
	for _, group := range groups {
		record := []string{group.Key, strconv.Itoa(len(group.Words)), strings.Join(group.Words, " ")}
		if err := writer.Write(record); err != nil {
			return err
		}
		w.Stats.Output++
	}
	writer.Flush()
	return writer.Error()
}
