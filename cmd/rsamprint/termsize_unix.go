//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/golang/glog"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

// TermSize is the terminal size in character cells and, where the terminal
// reports it, in pixels.
type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

var pixelSizeReply = regexp.MustCompile(`\[4;(\d+);(\d+)t`)

// pixelSizeTimeout is how long to wait for the terminal to start answering,
// in milliseconds.
const pixelSizeTimeout = 200

// GetTermSize asks the controlling terminal for its size, falling back to
// stdin's size if /dev/tty cannot be used.
func GetTermSize() (TermSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	if err == nil {
		defer f.Close()
		sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil {
			ts := TermSize{WSRow: uint(sz.Row), WSCol: uint(sz.Col), WSXPixel: uint(sz.Xpixel), WSYPixel: uint(sz.Ypixel)}
			if ts.WSXPixel == 0 && ts.WSYPixel == 0 && os.Getenv("TERM") == "xterm-kitty" {
				ts.WSXPixel, ts.WSYPixel = queryPixelSize(f)
			}
			return ts, nil
		}
		glog.V(2).Infof("TIOCGWINSZ on /dev/tty: %v", err)
	}

	w, h, err := terminal.GetSize(0)
	if err != nil {
		return TermSize{}, err
	}
	return TermSize{WSRow: uint(h), WSCol: uint(w)}, nil
}

// queryPixelSize sends CSI 14 t and parses the <ESC>[4;<height>;<width>t
// reply. It returns zeroes if the terminal does not start answering within
// pixelSizeTimeout, or does not answer in that form.
//
// https://sw.kovidgoyal.net/kitty/graphics-protocol/#getting-the-window-size
func queryPixelSize(f *os.File) (width, height uint) {
	state, err := terminal.MakeRaw(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	defer terminal.Restore(int(f.Fd()), state)

	fmt.Print("\033[14t")
	fds := []unix.PollFd{{Fd: int32(os.Stdin.Fd()), Events: unix.POLLIN}}
	if n, err := unix.Poll(fds, pixelSizeTimeout); err != nil || n == 0 {
		glog.V(2).Infof("no window size reply within %dms: %v", pixelSizeTimeout, err)
		return 0, 0
	}
	reader := bufio.NewReader(os.Stdin)
	if b, err := reader.ReadByte(); err != nil || b != 033 {
		return 0, 0
	}
	s, err := reader.ReadString('t')
	if err != nil {
		return 0, 0
	}
	m := pixelSizeReply.FindStringSubmatch(s)
	if len(m) != 3 {
		glog.V(2).Infof("unexpected window size reply %q", s)
		return 0, 0
	}
	h, errH := strconv.Atoi(m[1])
	w, errW := strconv.Atoi(m[2])
	if errH != nil || errW != nil {
		return 0, 0
	}
	return uint(w), uint(h)
}
