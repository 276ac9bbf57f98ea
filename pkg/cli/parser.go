package cli

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

// how many records are read between two cancellation checks
const checkEvery = 1024

// LoadWords parses every file concurrently and returns the words of each file, in file order.
func LoadWords(ctx context.Context, files []string, column string) ([][]string, error) {
	lists := make([][]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			words, err := parseFile(ctx, file, column)
			if err != nil {
				return fmt.Errorf("can not read word list %s: %w", file, err)
			}
			lists[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// parseFile picks the parser by file extension, plain text is the fallback.
func parseFile(ctx context.Context, path string, column string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCsv(ctx, path, column)
	case ".json":
		return parseJson(ctx, path, column)
	default:
		return parseText(ctx, path)
	}
}

// parseText reads one word per line through a memory map.
// Blank lines and lines starting with '#' are skipped.
func parseText(ctx context.Context, path string) ([]string, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	words := []string{}
	scanner := bufio.NewScanner(io.NewSectionReader(reader, 0, int64(reader.Len())))
	for line := 1; scanner.Scan(); line++ {
		if line%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// parseCsv reads the column of every record. The first line is the header.
func parseCsv(ctx context.Context, path string, column string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("can not read header: %w", err)
	}
	index := -1
	for i, header := range headers {
		if strings.TrimSpace(header) == column {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("column %q not found in header %v", column, headers)
	}

	words := []string{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(words)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		words = append(words, record[index])
	}
	return words, nil
}

// parseJson reads an array whose elements are words, or objects holding the word under column.
func parseJson(ctx context.Context, path string, column string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return nil, err
	}

	words := []string{}
	for i := 0; decoder.More(); i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		var element any
		if err := decoder.Decode(&element); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		word, err := wordOf(element, column)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		words = append(words, word)
	}

	// Read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return nil, err
	}
	return words, nil
}

func wordOf(element any, column string) (string, error) {
	switch value := element.(type) {
	case string:
		return value, nil
	case map[string]any:
		word, ok := value[column].(string)
		if !ok {
			return "", fmt.Errorf("field %q is missing or not a string", column)
		}
		return word, nil
	default:
		return "", fmt.Errorf("expected a string or an object, got %T", element)
	}
}
