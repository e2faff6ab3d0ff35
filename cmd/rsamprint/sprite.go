package main

import (
	"fmt"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-rsam/archive"
	"badc0de.net/pkg/go-rsam/sprite"
)

func listHandler(a archive.Archive) bool {
	set, err := sprite.DecodeAll(a)
	if set == nil {
		glog.Errorf("decoding sprite sheets: %v", err)
		return false
	}

	names := make(map[int32]string)
	for _, e := range a.Entries() {
		if e.Name != "" {
			names[e.Hash] = e.Name
		}
	}
	for _, hash := range set.Keys() {
		sprites, _ := set.Sheet(hash)
		name, ok := names[hash]
		if !ok {
			name = fmt.Sprintf("#%d", hash)
		}
		if serr := set.Err(hash); serr != nil {
			fmt.Printf("%s: %d sprites (stopped early: %v)\n", name, len(sprites), serr)
			continue
		}
		fmt.Printf("%s: %d sprites\n", name, len(sprites))
	}
	return err == nil
}

func sprHandler(a archive.Archive, name string, idx int) bool {
	s, err := sprite.DecodeNamed(a, name+".dat", idx)
	if err != nil {
		glog.Errorf("error decoding sprite %d of %q: %v", idx, name, err)
		return false
	}
	glog.V(1).Infof("sprite %d of %q: %dx%d at %d,%d in %dx%d", idx, name, s.Width, s.Height, s.OffsetX, s.OffsetY, s.LargestWidth, s.LargestHeight)

	out(s.Image())
	return true
}
