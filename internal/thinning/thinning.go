package thinning

import "github.com/ironsheep/raster-trace/internal/bitimage"

// Thin skeletonises every on-region of img in place. Images smaller than
// 3x3 have no interior and are left untouched.
func Thin(img *bitimage.Image) {
	rows, cols := img.Rows(), img.Cols()
	if rows < 3 || cols < 3 {
		return
	}

	// Interior pixels only; the border frame never changes.
	active := img.Section(1, 1, rows-2, cols-2)
	flagged := make([]int, 0, len(active))

	firstSubIteration := true
	for {
		flagged = flagged[:0]
		remaining := active[:0]
		for _, px := range active {
			if !img.On(px) {
				continue
			}
			remaining = append(remaining, px)
			if removable(img, px, firstSubIteration) {
				flagged = append(flagged, px)
			}
		}
		active = remaining

		for _, px := range flagged {
			img.Set(px, false)
		}
		if len(flagged) == 0 {
			return
		}
		firstSubIteration = !firstSubIteration
	}
}

// removable evaluates the Zhang-Suen deletion predicate for an interior
// on-pixel. Neighbours p2..p9 run clockwise starting from the pixel
// directly above.
func removable(img *bitimage.Image, px int, firstSubIteration bool) bool {
	cols := img.Cols()
	p2 := img.On(px - cols)
	p3 := img.On(px - cols + 1)
	p4 := img.On(px + 1)
	p5 := img.On(px + cols + 1)
	p6 := img.On(px + cols)
	p7 := img.On(px + cols - 1)
	p8 := img.On(px - 1)
	p9 := img.On(px - cols - 1)

	a := 0
	prev := [8]bool{p2, p3, p4, p5, p6, p7, p8, p9}
	for i := 0; i < 8; i++ {
		if !prev[i] && prev[(i+1)%8] {
			a++
		}
	}
	if a != 1 {
		return false
	}

	b := 0
	for _, on := range prev {
		if on {
			b++
		}
	}
	if b < 2 || b > 6 {
		return false
	}

	var m1, m2 bool
	if firstSubIteration {
		m1 = p2 && p4 && p6
		m2 = p4 && p6 && p8
	} else {
		m1 = p2 && p4 && p8
		m2 = p2 && p6 && p8
	}
	return !m1 && !m2
}
