//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package main

import (
	"golang.org/x/crypto/ssh/terminal"
)

// TermSize is the terminal size in character cells. Pixel sizes are not
// available on this platform and stay zero.
type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

// GetTermSize returns the size of the terminal attached to stdin.
func GetTermSize() (TermSize, error) {
	w, h, err := terminal.GetSize(0)
	if err != nil {
		return TermSize{}, err
	}
	return TermSize{WSRow: uint(h), WSCol: uint(w)}, nil
}
