// Package imageprint prints decoded sprites, glyphs and rendered surfaces
// on a terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
)

// Mode selects how pixels are put on the terminal.
type Mode int

const (
	Mode24bit   Mode = iota // 24-bit background colour escapes
	Mode256                 // 256 colour escapes
	ModeNoColor             // plain characters only
	ModeITerm               // iTerm2 inline image
	ModeRasTerm             // kitty, iTerm or sixel, whichever the terminal supports
	ModeDataURL             // a data: URL of the PNG, for pasting into a browser
)

var modeNames = map[string]Mode{
	"24bit":   Mode24bit,
	"256":     Mode256,
	"nocolor": ModeNoColor,
	"iterm":   ModeITerm,
	"rasterm": ModeRasTerm,
	"dataurl": ModeDataURL,
}

// ParseMode parses a mode name as accepted on command lines.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return 0, errors.Errorf("unknown print mode %q", s)
}

// Print writes i to w in the given mode. If blanks is set, character-based
// modes print coloured blanks instead of ascii art.
func Print(w io.Writer, i image.Image, mode Mode, blanks bool) error {
	switch mode {
	case Mode24bit:
		Print24bit(w, i, blanks)
	case Mode256:
		Print256Color(w, i, blanks)
	case ModeNoColor:
		PrintNoColor(w, i, blanks)
	case ModeITerm:
		return PrintITerm(w, i, "image.png")
	case ModeRasTerm:
		return PrintRasTerm(w, i)
	case ModeDataURL:
		return PrintDataURL(w, i)
	default:
		return errors.Errorf("unknown print mode %d", mode)
	}
	return nil
}

func shade(w io.Writer, col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if noColor {
			fmt.Fprint(w, "  ")
		} else {
			fmt.Fprint(w, "\x1b[0m  ")
		}
		return
	}

	s := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			s = ".."
		case a < 64:
			s = "--"
		case a < 128:
			s = "=="
		default:
			s = "##"
		}
	}

	switch {
	case noColor:
		fmt.Fprint(w, s)
	case escapesTrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), s)
	default:
		fmt.Fprint(w, color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Sprint(s))
	}
}

func printRows(w io.Writer, i image.Image, escapesTrueColor, blanks, noColor bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(w, i.At(x, y), escapesTrueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Fprint(w, "\x1b[0m")
		}
		fmt.Fprint(w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	printRows(w, i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	printRows(w, i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences. Only
// transparency survives with blanks=true.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	printRows(w, i, false, blanks, true)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding image for iterm")
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Dx(), i.Bounds().Dy(), b.String())
	return err
}

// PrintDataURL writes i as a PNG data URL on its own line.
func PrintDataURL(w io.Writer, i image.Image) error {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, i); err != nil {
		return errors.Wrap(err, "encoding image for data url")
	}
	_, err := fmt.Fprintln(w, dataurl.New(buf.Bytes(), "image/png").String())
	return err
}
