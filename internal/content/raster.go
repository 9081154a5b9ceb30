package content

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterizeSVG renders an SVG file into a PNG of the same visible
// dimensions, sampled at scale times the native resolution for crisper
// output in print pipelines. The PNG lands in outDir (or next to the SVG
// when outDir is empty) and the returned width/height are the visible, not
// sampled, dimensions.
func rasterizeSVG(svgPath, outDir string, scale float64) (string, int, int, error) {
	icon, err := oksvg.ReadIcon(svgPath, oksvg.WarnErrorMode)
	if err != nil {
		return "", 0, 0, fmt.Errorf("parsing svg: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return "", 0, 0, fmt.Errorf("svg has no usable dimensions")
	}

	sw := int(math.Ceil(float64(w) * scale))
	sh := int(math.Ceil(float64(h) * scale))

	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	scanner := rasterx.NewScannerGV(sw, sh, img, img.Bounds())
	raster := rasterx.NewDasher(sw, sh, scanner)
	icon.SetTarget(0, 0, float64(sw), float64(sh))
	icon.Draw(raster, 1.0)

	if outDir == "" {
		outDir = filepath.Dir(svgPath)
	}
	// The source path participates in the name: two vault directories may
	// both hold a diagram.svg, and they must not clobber each other in
	// outDir.
	sum := fnv.New32a()
	sum.Write([]byte(filepath.Clean(svgPath)))
	base := strings.TrimSuffix(filepath.Base(svgPath), filepath.Ext(svgPath))
	pngPath := filepath.Join(outDir, fmt.Sprintf("%s-%08x.png", base, sum.Sum32()))

	f, err := os.Create(pngPath)
	if err != nil {
		return "", 0, 0, fmt.Errorf("creating raster image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", 0, 0, fmt.Errorf("encoding raster image: %w", err)
	}
	return pngPath, w, h, nil
}
