package assessor

import (
	"image"
	"runtime"
	"sync"

	apperrors "go-image-quality/internal/errors"
)

// planes holds the per-pixel derivations the evaluators read: the
// grayscale intensity plane, the HSV saturation plane and the channel
// means. Everything is on the 0-255 scale. A planes value is built once
// per assessment and never mutated afterwards.
type planes struct {
	width, height int

	gray []float64
	sat  []float64

	meanR, meanG, meanB float64

	// grayInput is set when the source image carries a single channel,
	// in which case saturation and color balance do not apply.
	grayInput bool
}

func (p *planes) totalPixels() int {
	return p.width * p.height
}

// extractPlanes walks the raster once and derives every plane the
// evaluators need. Rows are processed in horizontal strips across CPUs;
// each strip writes a disjoint slice region, so no locking is needed
// beyond the channel-sum aggregation.
func extractPlanes(img image.Image) (*planes, error) {
	if img == nil {
		return nil, apperrors.NewValidationError("image is nil", nil)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, apperrors.NewValidationError("image has empty dimensions", nil)
	}

	p := &planes{
		width:     width,
		height:    height,
		gray:      make([]float64, width*height),
		sat:       make([]float64, width*height),
		grayInput: isGrayscale(img),
	}

	numWorkers := runtime.NumCPU()
	if height < numWorkers {
		numWorkers = height
	}
	rowsPerWorker := (height + numWorkers - 1) / numWorkers // ceil division

	type stripSums struct {
		r, g, b    float64
		pixelCount int
	}

	results := make(chan stripSums, numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		startY := i * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		go func(startY, endY int) {
			defer wg.Done()

			var sums stripSums
			for y := startY; y < endY; y++ {
				row := y * p.width
				for x := 0; x < p.width; x++ {
					rv, gv, bv, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
					// Convert from 16-bit to the 0-255 scale.
					rf := float64(rv >> 8)
					gf := float64(gv >> 8)
					bf := float64(bv >> 8)

					p.gray[row+x] = 0.299*rf + 0.587*gf + 0.114*bf
					p.sat[row+x] = saturation255(rf, gf, bf)

					sums.r += rf
					sums.g += gf
					sums.b += bf
					sums.pixelCount++
				}
			}
			results <- sums
		}(startY, endY)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var totalR, totalG, totalB float64
	totalPixels := 0
	for sums := range results {
		totalR += sums.r
		totalG += sums.g
		totalB += sums.b
		totalPixels += sums.pixelCount
	}
	if totalPixels == 0 {
		return nil, apperrors.NewValidationError("image has no readable pixels", nil)
	}

	n := float64(totalPixels)
	p.meanR = totalR / n
	p.meanG = totalG / n
	p.meanB = totalB / n
	return p, nil
}

// saturation255 is the HSV saturation of one pixel, scaled to 0-255.
func saturation255(r, g, b float64) float64 {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	if max == 0 {
		return 0
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	return (max - min) / max * 255
}

// isGrayscale reports whether the decoded image carries a single
// channel. Color images that merely look gray keep their three-channel
// treatment.
func isGrayscale(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	default:
		return false
	}
}
