package setup

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/boggle"
)

// WriteSolution writes the words to w in ascending order, one per line.
func WriteSolution(w io.Writer, words boggle.FoundWords) error {
	bw := bufio.NewWriter(w)
	for _, word := range words.Sorted() {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return fmt.Errorf("writing solution: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing solution: %w", err)
	}
	return nil
}
