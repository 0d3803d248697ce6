package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	rastertrace "github.com/ironsheep/raster-trace"
	"github.com/ironsheep/raster-trace/internal/binarize"
	"github.com/ironsheep/raster-trace/internal/imgio"
	"github.com/ironsheep/raster-trace/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("raster-trace %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Diagnostics go to stderr; stdout carries the traced output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if err := run(); err != nil {
		log.Fatalf("raster-trace: %v", err)
	}
}

func printUsage() {
	fmt.Println("raster-trace - extract vector polylines from raster images")
	fmt.Println()
	fmt.Println("Usage: raster-trace [options] -in <image>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -in <path>         Input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	fmt.Println("  -out <path>        Output file (default stdout)")
	fmt.Println("  -format <fmt>      Output format: json or svg (default json)")
	fmt.Println("  -config <path>     YAML configuration file")
	fmt.Println("  -write-config <p>  Write the effective configuration to a file and exit")
	fmt.Println("  -mode <mode>       Mask mode: threshold, otsu, color, edge (default otsu)")
	fmt.Println("  -threshold <n>     Luminance cutoff for threshold mode (0-255)")
	fmt.Println("  -invert            Trace light strokes on a dark background")
	fmt.Println("  -color <#rrggbb>   Stroke colour for color mode")
	fmt.Println("  -color-distance    Maximum Lab distance for color mode")
	fmt.Println("  -edge-low <n>      Canny low threshold for edge mode")
	fmt.Println("  -edge-high <n>     Canny high threshold for edge mode")
	fmt.Println("  -blur <r>          Gaussian pre-blur radius in pixels")
	fmt.Println("  -max-dim <n>       Downscale so no side exceeds n pixels")
	fmt.Println("  -min-section <n>   Smallest traced section side (default 3)")
	fmt.Println("  -max-recursions    Partitioning depth bound, 0 = unbounded")
	fmt.Println("  -simplify <t>      Simplify polylines with tolerance t pixels")
	fmt.Println("  -segments          Add a straight-segment summary per polyline")
	fmt.Println("  -overlay <path>    Write a PNG with the trace drawn over the input")
	fmt.Println("  -ocr               Attach nearby text labels to strokes (cgo builds)")
	fmt.Println("  -ocr-lang <code>   Tesseract language code (default eng)")
	fmt.Println("  --version, -v      Print version information")
	fmt.Println("  --help, -h         Print this help message")
}

func run() error {
	cfg := DefaultConfig()

	var (
		configPath  = flag.String("config", "", "YAML configuration file")
		writeConfig = flag.String("write-config", "", "write the effective configuration and exit")
		inPath      = flag.String("in", "", "input image")
		outPath     = flag.String("out", "", "output file (default stdout)")
		format      = flag.String("format", "json", "output format: json or svg")
		overlayPath = flag.String("overlay", "", "overlay PNG path")
	)
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "mask mode")
	flag.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "luminance cutoff")
	flag.BoolVar(&cfg.Invert, "invert", cfg.Invert, "trace light strokes")
	flag.StringVar(&cfg.Color, "color", cfg.Color, "stroke colour")
	flag.Float64Var(&cfg.ColorDistance, "color-distance", cfg.ColorDistance, "maximum Lab distance")
	flag.IntVar(&cfg.EdgeLow, "edge-low", cfg.EdgeLow, "Canny low threshold")
	flag.IntVar(&cfg.EdgeHigh, "edge-high", cfg.EdgeHigh, "Canny high threshold")
	flag.Float64Var(&cfg.Blur, "blur", cfg.Blur, "pre-blur radius")
	flag.IntVar(&cfg.MaxDim, "max-dim", cfg.MaxDim, "downscale bound")
	flag.IntVar(&cfg.MinSectionSize, "min-section", cfg.MinSectionSize, "smallest traced section")
	flag.IntVar(&cfg.MaxRecursions, "max-recursions", cfg.MaxRecursions, "partitioning depth bound")
	flag.Float64Var(&cfg.Simplify, "simplify", cfg.Simplify, "simplification tolerance")
	flag.BoolVar(&cfg.Segments, "segments", cfg.Segments, "straight-segment summary")
	flag.BoolVar(&cfg.OCR, "ocr", cfg.OCR, "attach text labels")
	flag.StringVar(&cfg.OCRLanguage, "ocr-lang", cfg.OCRLanguage, "Tesseract language")
	flag.Parse()

	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return err
		}
		fileCfg := *loaded
		// Flags given on the command line win over the file.
		flagCfg := *cfg
		*cfg = fileCfg
		flag.Visit(func(f *flag.Flag) {
			applyFlagOverride(cfg, &flagCfg, f.Name)
		})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			return err
		}
		log.Printf("wrote configuration to %s", *writeConfig)
		return nil
	}
	if *inPath == "" {
		return fmt.Errorf("no input image (use -in, see -help)")
	}

	src, err := imgio.Load(*inPath)
	if err != nil {
		return err
	}
	info, err := imgio.LoadInfo(*inPath)
	if err != nil {
		return err
	}

	traced := imgio.Downscale(src, cfg.MaxDim)
	prepared := binarize.Smooth(traced, cfg.Blur)
	mask, err := buildMask(prepared, cfg)
	if err != nil {
		return err
	}

	opts := rastertrace.DefaultOptions()
	opts.MinSectionSize = cfg.MinSectionSize
	opts.MaxRecursions = cfg.MaxRecursions
	// Canny edges are already about one pixel wide.
	opts.Thinning = cfg.Mode != "edge"
	opts.Warn = func(msg string) { log.Printf("warning: %s", msg) }

	polylines := rastertrace.FitPolylines(mask.Bits, mask.Rows, mask.Cols, func(b bool) bool { return b }, opts)

	if cfg.Simplify > 0 {
		for i, p := range polylines {
			polylines[i] = rastertrace.Simplify(p, cfg.Simplify)
		}
	}

	result := &Result{Image: info, Polylines: polylines}

	if cfg.Segments {
		result.Segments = make([]rastertrace.LineSegment, len(polylines))
		rng := rand.New(rand.NewSource(1))
		for i, p := range polylines {
			result.Segments[i] = rastertrace.FitLineSegment(p, rastertrace.SegmentFitOptions{
				Iterations: cfg.SegmentIterations,
				Rand:       rng,
				Warn:       opts.Warn,
			})
		}
	}

	if cfg.OCR {
		labels, err := labelStrokes(*inPath, cfg, polylines, info.Width, mask.Cols)
		if err != nil {
			log.Printf("warning: OCR labelling failed: %v", err)
		} else {
			result.Labels = labels
		}
	}

	if *overlayPath != "" {
		if err := writeOverlay(*overlayPath, traced, polylines); err != nil {
			return err
		}
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch *format {
	case "json":
		return writeJSON(out, result)
	case "svg":
		return writeSVG(out, polylines, mask.Cols, mask.Rows)
	default:
		return fmt.Errorf("unknown format %q (want json or svg)", *format)
	}
}

// applyFlagOverride copies a single explicitly-set flag value from the
// command line configuration over the file configuration.
func applyFlagOverride(dst, flags *Config, name string) {
	switch name {
	case "mode":
		dst.Mode = flags.Mode
	case "threshold":
		dst.Threshold = flags.Threshold
	case "invert":
		dst.Invert = flags.Invert
	case "color":
		dst.Color = flags.Color
	case "color-distance":
		dst.ColorDistance = flags.ColorDistance
	case "edge-low":
		dst.EdgeLow = flags.EdgeLow
	case "edge-high":
		dst.EdgeHigh = flags.EdgeHigh
	case "blur":
		dst.Blur = flags.Blur
	case "max-dim":
		dst.MaxDim = flags.MaxDim
	case "min-section":
		dst.MinSectionSize = flags.MinSectionSize
	case "max-recursions":
		dst.MaxRecursions = flags.MaxRecursions
	case "simplify":
		dst.Simplify = flags.Simplify
	case "segments":
		dst.Segments = flags.Segments
	case "ocr":
		dst.OCR = flags.OCR
	case "ocr-lang":
		dst.OCRLanguage = flags.OCRLanguage
	}
}

func buildMask(img image.Image, cfg *Config) (binarize.Mask, error) {
	switch cfg.Mode {
	case "threshold":
		return binarize.Luminance(img, uint8(cfg.Threshold), cfg.Invert), nil
	case "otsu":
		return binarize.Luminance(img, binarize.OtsuThreshold(img), cfg.Invert), nil
	case "color":
		ref, err := colorful.Hex(cfg.Color)
		if err != nil {
			return binarize.Mask{}, fmt.Errorf("invalid color %q: %w", cfg.Color, err)
		}
		return binarize.ColorProximity(img, ref, cfg.ColorDistance), nil
	case "edge":
		return binarize.Edges(img, cfg.EdgeLow, cfg.EdgeHigh), nil
	}
	return binarize.Mask{}, fmt.Errorf("unknown mode %q", cfg.Mode)
}

// labelStrokes runs OCR over the original image and matches the words to
// the traced polylines. Word boxes are scaled down when the traced image
// was downscaled.
func labelStrokes(path string, cfg *Config, polylines []rastertrace.Polyline, originalWidth, tracedWidth int) ([]ocr.StrokeLabel, error) {
	words, err := ocr.Words(path, cfg.OCRLanguage)
	if err != nil {
		return nil, err
	}
	if originalWidth > 0 && tracedWidth != originalWidth {
		scale := float64(tracedWidth) / float64(originalWidth)
		for i := range words {
			words[i].Bounds.X1 = int(float64(words[i].Bounds.X1) * scale)
			words[i].Bounds.Y1 = int(float64(words[i].Bounds.Y1) * scale)
			words[i].Bounds.X2 = int(float64(words[i].Bounds.X2) * scale)
			words[i].Bounds.Y2 = int(float64(words[i].Bounds.Y2) * scale)
		}
	}
	return ocr.LabelStrokes(polylines, words, cfg.OCRDistance), nil
}
