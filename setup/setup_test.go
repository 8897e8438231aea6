package setup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/npillmayer/boggle"
)

func fixture(file string) string {
	return filepath.Join("testdata", file)
}

func TestReadLines(t *testing.T) {
	is := is.New(t)
	lines, err := ReadLines(fixture("board_2x2.txt"))
	is.NoErr(err)
	is.Equal(lines, []string{"2", "", "T E", "A M"})
}

func TestReadLinesInvalidFilename(t *testing.T) {
	is := is.New(t)
	_, err := ReadLines(fixture("fake_file_name"))
	is.True(errors.Is(err, ErrUnreadableFile))
	is.True(errors.Is(err, os.ErrNotExist))
	var cerr *ConfigError
	is.True(errors.As(err, &cerr))
	is.Equal(cerr.Path, fixture("fake_file_name"))
}

func TestParseBoard(t *testing.T) {
	is := is.New(t)
	size, grid, err := ParseBoard([]string{"2", "", "T E", "A M"})
	is.NoErr(err)
	is.Equal(size, 2)
	is.Equal(len(grid), 4)
	is.Equal(grid[boggle.Cell{Row: 0, Col: 0}], "T")
	is.Equal(grid[boggle.Cell{Row: 0, Col: 1}], "E")
	is.Equal(grid[boggle.Cell{Row: 1, Col: 0}], "A")
	is.Equal(grid[boggle.Cell{Row: 1, Col: 1}], "M")
}

func TestParseBoardMultiLetterFace(t *testing.T) {
	is := is.New(t)
	_, grid, err := ParseBoard([]string{"2", "", "Qu I", "T E"})
	is.NoErr(err)
	is.Equal(grid[boggle.Cell{Row: 0, Col: 0}], "Qu")
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		kind  error
	}{
		{name: "no lines", lines: nil, kind: ErrBoardTooSmall},
		{name: "two lines", lines: []string{"2", ""}, kind: ErrBoardTooSmall},
		{name: "size one", lines: []string{"1", "", "A"}, kind: ErrBoardTooSmall},
		{name: "size not a number", lines: []string{"two", "", "T E", "A M"}, kind: ErrMalformedBoard},
		{name: "missing row", lines: []string{"2", "", "T E"}, kind: ErrMalformedBoard},
		{name: "short row", lines: []string{"2", "", "T E", "A"}, kind: ErrMalformedBoard},
		{name: "digit face", lines: []string{"2", "", "T 3", "A M"}, kind: ErrMalformedBoard},
	}
	for _, tt := range tests {
		_, _, err := ParseBoard(tt.lines)
		if !errors.Is(err, tt.kind) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.kind, err)
		}
	}
}

func TestLoadBoardFixtures(t *testing.T) {
	is := is.New(t)
	size, grid, err := LoadBoard(fixture("board_4x4.txt"))
	is.NoErr(err)
	is.Equal(size, 4)
	is.Equal(len(grid), 16)
	is.Equal(grid[boggle.Cell{Row: 3, Col: 3}], "S")

	tests := []struct {
		file string
		kind error
	}{
		{file: "board_1x1.txt", kind: ErrBoardTooSmall},
		{file: "board_missing_row.txt", kind: ErrMalformedBoard},
		{file: "board_digit.txt", kind: ErrMalformedBoard},
		{file: "board_bad_size.txt", kind: ErrMalformedBoard},
		{file: "no_such_board.txt", kind: ErrUnreadableFile},
	}
	for _, tt := range tests {
		_, _, err := LoadBoard(fixture(tt.file))
		if !errors.Is(err, tt.kind) {
			t.Fatalf("%s: expected %v, got %v", tt.file, tt.kind, err)
		}
		if !strings.Contains(err.Error(), tt.file) {
			t.Fatalf("%s: error message should name the file: %v", tt.file, err)
		}
	}
}

func TestLoadDictionary(t *testing.T) {
	is := is.New(t)
	lex, err := LoadDictionary(fixture("dictionary.txt"), boggle.BackendDAT)
	is.NoErr(err)
	is.Equal(lex.Size(), 17) // "aa" and "at" are too short
	is.True(lex.Contains("team"))
	is.True(!lex.Contains("at"))
}

func TestLoadDictionaryErrors(t *testing.T) {
	is := is.New(t)
	_, err := LoadDictionary(fixture("empty_dictionary.txt"), boggle.BackendDAT)
	is.True(errors.Is(err, ErrEmptyDictionary))
	_, err = LoadDictionary(fixture("fake_file_name"), boggle.BackendDAT)
	is.True(errors.Is(err, ErrUnreadableFile))
	_, err = LoadDictionary(fixture("dictionary.txt"), boggle.Backend("marisa"))
	is.True(err != nil)
	is.True(!errors.Is(err, ErrUnreadableFile))

	lex, err := LoadDictionary(fixture("short_words.txt"), boggle.BackendTrie)
	is.NoErr(err) // words present, but all of them too short
	is.Equal(lex.Size(), 0)

	lex, err = LoadDictionary(fixture("blank_dictionary.txt"), boggle.BackendDAT)
	is.NoErr(err) // lines present, but no words
	is.Equal(lex.Size(), 0)
}

func TestLoadAndSolve(t *testing.T) {
	is := is.New(t)
	board, lex, err := Load(fixture("board_2x2.txt"), fixture("dictionary.txt"), boggle.BackendDAT)
	is.NoErr(err)
	words := board.Solve(lex)
	is.Equal(words.Len(), 14)
	is.True(!words.Contains("steam"))

	_, _, err = Load(fixture("board_1x1.txt"), fixture("dictionary.txt"), boggle.BackendDAT)
	is.True(errors.Is(err, ErrBoardTooSmall))
}

func TestWriteSolution(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := WriteSolution(&buf, boggle.NewFoundWords("team", "ate", "meat"))
	is.NoErr(err)
	is.Equal(buf.String(), "ate\nmeat\nteam\n")

	buf.Reset()
	is.NoErr(WriteSolution(&buf, boggle.NewFoundWords()))
	is.Equal(buf.Len(), 0)
}

func TestWriteSolutionFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "solution.txt")
	is.NoErr(WriteSolutionFile(path, boggle.NewFoundWords("tea", "eat")))
	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(data), "eat\ntea\n")

	err = WriteSolutionFile(filepath.Join(t.TempDir(), "missing", "solution.txt"), boggle.NewFoundWords("tea"))
	is.True(err != nil)
}
