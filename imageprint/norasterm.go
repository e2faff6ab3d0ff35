//go:build windows

package imageprint

import (
	"image"
	"io"

	"github.com/pkg/errors"
)

// PrintRasTerm is not supported on windows.
func PrintRasTerm(w io.Writer, i image.Image) error {
	return errors.New("rasterm not supported on windows")
}
