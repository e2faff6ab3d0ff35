package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-rsam/archive"
)

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadIndex puts the metadata entry read from path into a. An index already
// present in a is only replaced if override is set.
func loadIndex(a *archive.Mem, path string, override bool) error {
	if _, err := a.ReadEntry(archive.IndexHash); err == nil && !override {
		return nil
	}
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	glog.V(1).Infof("using %s (%d bytes) as %s", path, len(data), archive.IndexName)
	a.Add(archive.IndexName, data)
	return nil
}
