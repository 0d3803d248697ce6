package bitimage

import "testing"

func TestNewPanicsOnBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) did not panic", dims[0], dims[1])
				}
			}()
			New(dims[0], dims[1])
		}()
	}
}

func TestFindCoordsRoundTrip(t *testing.T) {
	img := New(4, 6)
	for r := 0; r < 4; r++ {
		for c := 0; c < 6; c++ {
			px := img.Find(r, c)
			gr, gc := img.Coords(px)
			if gr != r || gc != c {
				t.Errorf("Coords(Find(%d,%d)) = (%d,%d)", r, c, gr, gc)
			}
		}
	}
}

func TestFindPanicsOutOfRange(t *testing.T) {
	img := New(3, 3)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Find(%d, %d) did not panic", rc[0], rc[1])
				}
			}()
			img.Find(rc[0], rc[1])
		}()
	}
}

func TestSetAndOn(t *testing.T) {
	img := New(3, 4)
	px := img.Find(1, 2)
	if img.On(px) {
		t.Error("fresh image has an on-pixel")
	}
	img.Set(px, true)
	if !img.On(px) {
		t.Error("Set(true) had no effect")
	}
	img.Set(px, false)
	if img.On(px) {
		t.Error("Set(false) had no effect")
	}
}

func TestFromPixels(t *testing.T) {
	pixels := []int{0, 5, 0, 7, 0, 9}
	img := FromPixels(pixels, 2, 3, func(v int) bool { return v > 0 })
	want := map[int]bool{1: true, 3: true, 5: true}
	for px := 0; px < 6; px++ {
		if img.On(px) != want[px] {
			t.Errorf("pixel %d = %v, want %v", px, img.On(px), want[px])
		}
	}
}

func TestFromPixelsPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mismatched pixel count did not panic")
		}
	}()
	FromPixels([]int{1, 2, 3}, 2, 2, func(int) bool { return true })
}

func TestSectionEnumeration(t *testing.T) {
	img := New(4, 5)

	t.Run("row-major order", func(t *testing.T) {
		got := img.Section(1, 1, 2, 3)
		want := []int{
			img.Find(1, 1), img.Find(1, 2), img.Find(1, 3),
			img.Find(2, 1), img.Find(2, 2), img.Find(2, 3),
		}
		if len(got) != len(want) {
			t.Fatalf("got %d locators, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("locator %d = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("empty extents", func(t *testing.T) {
		if got := img.Section(2, 2, 0, 3); len(got) != 0 {
			t.Errorf("zero-row section has %d locators", len(got))
		}
	})

	t.Run("out of range panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("overreaching section did not panic")
			}
		}()
		img.Section(2, 2, 3, 3)
	})
}

func TestCountOnAndAnyOn(t *testing.T) {
	img := New(5, 5)
	img.Set(img.Find(1, 1), true)
	img.Set(img.Find(2, 3), true)

	if got := img.CountOn(0, 0, 5, 5); got != 2 {
		t.Errorf("CountOn whole image = %d, want 2", got)
	}
	if got := img.CountOn(1, 1, 1, 1); got != 1 {
		t.Errorf("CountOn single pixel = %d, want 1", got)
	}
	if !img.AnyOn(2, 2, 2, 2) {
		t.Error("AnyOn missed a set pixel")
	}
	if img.AnyOn(3, 0, 2, 2) {
		t.Error("AnyOn reported a pixel in an empty region")
	}
}
