package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is the text file analyzed when no path is given.
const DefaultPath = "kindling.txt"

// ErrNotFound is returned when the text file does not exist.
var ErrNotFound = errors.New("text file not found")

// ReadText reads the whole text file at path.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return "", err
	}

	return string(b), nil
}
