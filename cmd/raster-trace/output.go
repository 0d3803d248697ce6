package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	rastertrace "github.com/ironsheep/raster-trace"
	"github.com/ironsheep/raster-trace/internal/imgio"
	"github.com/ironsheep/raster-trace/internal/ocr"
)

// Result is the JSON document emitted for a traced image.
type Result struct {
	Image     *imgio.Info               `json:"image,omitempty"`
	Polylines []rastertrace.Polyline    `json:"polylines"`
	Segments  []rastertrace.LineSegment `json:"segments,omitempty"`
	Labels    []ocr.StrokeLabel         `json:"labels,omitempty"`
}

func writeJSON(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// writeSVG renders the polylines as an SVG document in image coordinates.
func writeSVG(w io.Writer, polylines []rastertrace.Polyline, width, height int) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height); err != nil {
		return err
	}
	for _, p := range polylines {
		if len(p) == 0 {
			continue
		}
		if _, err := io.WriteString(w, "  <polyline fill=\"none\" stroke=\"black\" points=\""); err != nil {
			return err
		}
		for i, pt := range p {
			sep := " "
			if i == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%d,%d", sep, pt.Col, pt.Row); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\"/>\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// writeOverlay draws the polylines in red over the source image and saves
// the composite as PNG.
func writeOverlay(path string, src image.Image, polylines []rastertrace.Polyline) error {
	canvas := imaging.Clone(src)
	red := color.NRGBA{R: 255, A: 255}
	for _, p := range polylines {
		for i := 1; i < len(p); i++ {
			drawLine(canvas, p[i-1], p[i], red)
		}
		if len(p) == 1 {
			canvas.SetNRGBA(p[0].Col, p[0].Row, red)
		}
	}
	if err := imaging.Save(canvas, path); err != nil {
		return fmt.Errorf("failed to save overlay: %w", err)
	}
	return nil
}

// drawLine rasterises the segment between two points with Bresenham's
// algorithm.
func drawLine(canvas *image.NRGBA, a, b rastertrace.Point, c color.NRGBA) {
	x0, y0 := a.Col, a.Row
	x1, y1 := b.Col, b.Row
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		canvas.SetNRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
