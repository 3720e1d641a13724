package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotImage rejects a selected file whose content is not an image.
var ErrNotImage = errors.New("selected file is not an image")

// checkImage sniffs the file content; the extension is not trusted.
func checkImage(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%w (%s)", ErrNotImage, mt.String())
	}
	return nil
}
