// Command rsamprint prints sprites, font glyphs and rendered text from an
// extracted archive directory onto the terminal.
//
// Examples:
//
//	rsamprint -data_dir=./data -list
//	rsamprint -data_dir=./data -sheet=headicons -spr=2 -scale=4
//	rsamprint -data_dir=./data -font=p12_full -text='@red@hello @whi@world' -effect=shadow
//	rsamprint -data_dir=./data -font=b12_full -text=hello -effect=wave -frames=40
package main

import (
	"flag"
	"os"
	"time"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-rsam/archive"
	"badc0de.net/pkg/go-rsam/imageprint"
	"badc0de.net/pkg/go-rsam/paths"
)

var (
	list      = flag.Bool("list", false, "decode every sprite sheet in the archive and list them")
	sheet     = flag.String("sheet", "", "name of the sprite sheet entry to print from")
	sprID     = flag.Int("spr", -1, "index of the sprite in -sheet to print")
	fontName  = flag.String("font", "", "font entry to render with, e.g. p12_full")
	wideSpace = flag.Bool("wide_space", false, "give the space glyph the wide spacing")
	glyphID   = flag.Int("glyph", -1, "code of the glyph in -font to print")
	text      = flag.String("text", "", "text to render with -font; may contain @tag@ markup")
	effect    = flag.String("effect", "plain", "text effect: plain, centre, right, shadow, random, shake, wave, wave2")
	colour    = flag.String("colour", "ffff00", "text colour as hex rgb")
	bgColour  = flag.String("background", "000000", "surface colour as hex rgb")
	tick      = flag.Int("tick", 0, "animation tick for shake and wave effects")
	elapsed   = flag.Int("elapsed", 0, "elapsed ticks for the shake effect")
	seed      = flag.Int64("seed", 1, "seed for the random effect")
	frames    = flag.Int("frames", 1, "number of successive ticks of -text to print over each other")
	delay     = flag.Duration("delay", 50*time.Millisecond, "pause between frames")

	mode     = flag.String("mode", "24bit", "print mode: 24bit, 256, nocolor, iterm, rasterm, dataurl")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	scale    = flag.Uint("scale", 1, "integer factor to enlarge images by before printing")
	downsize = flag.Bool("downsize", false, "whether to shrink images to fit the terminal")

	dataDir   string
	indexPath string
	printMode imageprint.Mode
)

func main() {
	paths.SetupDirFlag("data_dir", &dataDir)
	paths.SetupFilePathFlag(archive.IndexName, "index", &indexPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	var err error
	if printMode, err = imageprint.ParseMode(*mode); err != nil {
		glog.Exitf("parsing -mode: %v", err)
	}
	if dataDir == "" {
		glog.Exitf("no data directory found; pass -data_dir or set $%s", paths.EnvDataDir)
	}

	a, err := archive.FromDir(dataDir)
	if err != nil {
		glog.Exitf("opening archive: %v", err)
	}
	if err := loadIndex(a, indexPath, flagSet("index")); err != nil {
		glog.Exitf("loading metadata: %v", err)
	}

	ok := true
	if *list {
		ok = listHandler(a) && ok
	}
	if *sheet != "" && *sprID >= 0 {
		ok = sprHandler(a, *sheet, *sprID) && ok
	}
	if *fontName != "" && *glyphID >= 0 {
		ok = glyphHandler(a, *fontName, *glyphID) && ok
	}
	if *fontName != "" && *text != "" {
		if *frames > 1 {
			ok = animateHandler(a, *fontName, *text, *frames, *delay) && ok
		} else {
			ok = textHandler(a, *fontName, *text) && ok
		}
	}
	glog.Flush()
	if !ok {
		os.Exit(1)
	}
}
