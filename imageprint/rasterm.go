//go:build !windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

// PrintRasTerm draws an image using the RasTerm library.
//
// This should enable drawing in Kitty terminal, as well as anywhere sixels
// are supported.
func PrintRasTerm(w io.Writer, i image.Image) error {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, i); err != nil {
			return errors.Wrap(err, "kitty")
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, i); err != nil {
			return errors.Wrap(err, "iterm")
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.Point{})

		if err := (rasterm.Settings{}).SixelWriteImage(w, palettedImage); err != nil {
			return errors.Wrap(err, "sixel")
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	return errors.New("terminal supports neither kitty, iterm nor sixel images")
}
