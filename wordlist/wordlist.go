package wordlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/boggle"
)

// Reader streams words from a plain word list.
//
// A word list holds one word per line:
//
//	# comment
//	aardvark
//	abacus
//	...
//
// Surrounding white space is removed. Blank lines and lines starting with
// '#' are skipped. Lowercasing and filtering of short words is done by the
// lexicon.
type Reader struct {
	scanner *bufio.Scanner
	lines   int
}

// LoadLexicon parses a word list and returns a ready-to-use lexicon.
func LoadLexicon(name string, reader io.Reader, backend boggle.Backend) (*boggle.Lexicon, error) {
	return boggle.LoadLexicon(name, NewReader(reader), backend)
}

// NewReader creates a Reader for a word list read from reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Lines returns the number of lines consumed so far.
func (r *Reader) Lines() int {
	return r.lines
}

// Next returns the next word.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.lines++
		word := strings.TrimSpace(r.scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		return word, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
