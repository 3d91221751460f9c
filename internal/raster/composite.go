package raster

import "fmt"

// Commit blends overlay over img pixel by pixel and then clears overlay.
// Transparent overlay pixels leave img untouched, so committing an empty
// overlay is a no-op.
func Commit(img, overlay *Buffer) {
	if img.width != overlay.width || img.height != overlay.height {
		panic(fmt.Sprintf("raster: commit %dx%d overlay onto %dx%d image",
			overlay.width, overlay.height, img.width, img.height))
	}
	for i, n := 0, img.Len(); i < n; i++ {
		top := overlay.at(i)
		if top.A == 0 {
			continue
		}
		img.put(i, AlphaBlend(top, img.at(i)))
	}
	overlay.Clear()
}
