package main

import (
	"image"
	"os"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-rsam/imageprint"
)

func out(img image.Image) {
	if *scale > 1 {
		img = resize.Resize(uint(img.Bounds().Dx())*(*scale), 0, img, resize.NearestNeighbor)
	}

	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && (printMode == imageprint.ModeRasTerm || printMode == imageprint.ModeITerm) {
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				// Two columns per pixel.
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
			}
		} else {
			glog.V(1).Infof("not downsizing: %v", err)
		}
	}

	if err := imageprint.Print(os.Stdout, img, printMode, *blanks); err != nil {
		glog.Errorf("printing image: %v", err)
	}
}
