package main

import (
	"fmt"
	"time"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-rsam/archive"
)

// animateHandler renders frames successive ticks of s, starting at -tick
// and -elapsed, and prints each over the previous one.
func animateHandler(a archive.Archive, name, s string, frames int, delay time.Duration) bool {
	if frames <= 0 {
		glog.Errorf("-frames must be positive, got %d", frames)
		return false
	}
	gs, fg, bg, err := loadText(a, name)
	if err != nil {
		glog.Errorf("error preparing text: %v", err)
		return false
	}

	// Save the cursor so every frame starts at the same spot.
	fmt.Print("\x1b7")
	for i := range iter.N(frames) {
		surf, err := render(gs, s, fg, bg, *tick+i, *elapsed+i)
		if err != nil {
			glog.Error(err)
			return false
		}
		if i > 0 {
			time.Sleep(delay)
			fmt.Print("\x1b8")
		}
		out(surf.Image())
	}
	return true
}
