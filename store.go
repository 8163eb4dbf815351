package spend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadBook reads the expense book stored at path.
//
// A missing file is not an error: it yields an empty book, so a first run
// starts from a clean slate. Any other open or decode failure is returned
// as-is; there is no partial recovery of a corrupt file.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open expense file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode expense file %q: %w", path, err)
	}
	return book, nil
}

// SaveBook writes the whole book to path, replacing any previous contents.
//
// There is no temp-file swap: a failure mid-write can leave the file
// truncated.
func SaveBook(path string, b *Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open expense file %q for writing: %w", path, err)
	}

	if err := EncodeBook(f, b); err != nil {
		f.Close()
		return fmt.Errorf("could not write expense file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not finalize expense file %q: %w", path, err)
	}
	return nil
}
