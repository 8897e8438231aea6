package setup

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/boggle"
	"github.com/npillmayer/boggle/wordlist"
)

// LoadDictionary reads a word list file into a lexicon.
//
// A file without any lines is an error of kind ErrEmptyDictionary. A file
// holding only blank lines, comments or words too short to count is not: it
// yields an empty lexicon.
func LoadDictionary(path string, backend boggle.Backend) (*boggle.Lexicon, error) {
	backend, err := boggle.ParseBackend(string(backend))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, configError(ErrUnreadableFile, path, "", err)
	}
	defer f.Close()
	reader := wordlist.NewReader(f)
	lex, err := boggle.LoadLexicon(filepath.Base(path), reader, backend)
	if err != nil {
		return nil, configError(ErrUnreadableFile, path, "", err)
	}
	if reader.Lines() == 0 {
		return nil, configError(ErrEmptyDictionary, path, "", nil)
	}
	tracer().Debugf("read %d lines from %s", reader.Lines(), path)
	return lex, nil
}
