package setup

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/npillmayer/boggle"
)

const minBoardSize = 2

// ParseBoard decodes the lines of a board file into the board size and a
// grid. Row r, column c of the board becomes Cell{r, c}.
func ParseBoard(lines []string) (int, boggle.Grid, error) {
	if len(lines) < 3 {
		return 0, nil, configError(ErrBoardTooSmall, "", "", nil)
	}
	size, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, nil, configError(ErrMalformedBoard, "", "first line must hold the board size", err)
	}
	if size < minBoardSize {
		return 0, nil, configError(ErrBoardTooSmall, "", fmt.Sprintf("size %d", size), nil)
	}
	rows := trimTrailingBlank(lines[2:])
	if len(rows) != size {
		return 0, nil, configError(ErrMalformedBoard, "",
			fmt.Sprintf("expected %d rows, found %d", size, len(rows)), nil)
	}
	grid := make(boggle.Grid, size*size)
	for r, row := range rows {
		faces := strings.Fields(row)
		if len(faces) != size {
			return 0, nil, configError(ErrMalformedBoard, "",
				fmt.Sprintf("row %d: expected %d faces, found %d", r+1, size, len(faces)), nil)
		}
		if !lo.EveryBy(faces, isLetters) {
			return 0, nil, configError(ErrMalformedBoard, "",
				fmt.Sprintf("row %d: faces must be letters: %q", r+1, row), nil)
		}
		for c, face := range faces {
			grid[boggle.Cell{Row: r, Col: c}] = face
		}
	}
	return size, grid, nil
}

func isLetters(face string) bool {
	for _, r := range face {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return face != ""
}

func trimTrailingBlank(lines []string) []string {
	n := len(lines)
	for n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		n--
	}
	return lines[:n]
}
