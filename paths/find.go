// Package paths locates extracted archive directories and data files in the
// usual places: $RSAM_DATA, the source checkout under $GOPATH, bazel
// runfiles and ./datafiles.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// EnvDataDir names the environment variable consulted before any other
// location.
const EnvDataDir = "RSAM_DATA"

func possibleDirs() []string {
	var dirs []string
	if d := os.Getenv(EnvDataDir); d != "" {
		dirs = append(dirs, d)
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src", "badc0de.net", "pkg", "go-rsam", "datafiles"))
	}
	if srcdir := os.Getenv("TEST_SRCDIR"); srcdir != "" {
		dirs = append(dirs, filepath.Join(srcdir, "go_rsam", "datafiles"))
	}
	return append(dirs,
		os.Args[0]+".runfiles/go_rsam/datafiles",
		"datafiles",
	)
}

// Find locates the passed data file shortname and returns an absolute or
// relative path to it, or an empty string if it is nowhere to be found.
//
// For example, for "index.dat" it may return
// "mybinary.runfiles/go_rsam/datafiles/index.dat".
func Find(fileName string) string {
	for _, dir := range possibleDirs() {
		path := filepath.Join(dir, fileName)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.V(2).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// FindDir returns the first existing data directory, or an empty string.
func FindDir() string {
	for _, dir := range possibleDirs() {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			glog.V(2).Infof("paths.FindDir()=%s", dir)
			return dir
		}
	}
	return ""
}
