/*
Package setup loads Boggle boards and dictionaries from files and writes
solutions.

Board files look like this:

	4

	T E A M
	S A M E
	M E A T
	E T A S

The first line holds the size N of the N X N board, the second line is left
blank, the remaining N lines hold N letter faces each, separated by white
space. Dictionary files hold one word per line (see package wordlist).

All problems with input files are reported as *ConfigError, classified by one
of the Err... sentinels of this package.
*/
package setup

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/boggle"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'boggle.setup'
func tracer() tracing.Trace {
	return tracing.Select("boggle.setup")
}

// ReadLines returns the lines of a file without line terminators.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, configError(ErrUnreadableFile, path, "", err)
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, configError(ErrUnreadableFile, path, "", err)
	}
	return lines, nil
}

// Load reads a board file and a dictionary file and returns a board ready to
// be solved together with the lexicon.
func Load(boardPath, dictionaryPath string, backend boggle.Backend) (*boggle.Board, *boggle.Lexicon, error) {
	lex, err := LoadDictionary(dictionaryPath, backend)
	if err != nil {
		return nil, nil, err
	}
	size, grid, err := LoadBoard(boardPath)
	if err != nil {
		return nil, nil, err
	}
	tracer().Infof("loaded %d X %d board from %s", size, size, boardPath)
	return boggle.NewBoard(grid), lex, nil
}

// LoadBoard reads and parses a board file.
func LoadBoard(path string) (int, boggle.Grid, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return 0, nil, err
	}
	size, grid, err := ParseBoard(lines)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return 0, nil, err
	}
	return size, grid, nil
}

// WriteSolutionFile writes the words to path, sorted, one word per line.
func WriteSolutionFile(path string, words boggle.FoundWords) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating solution file: %w", err)
	}
	if err := WriteSolution(f, words); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
