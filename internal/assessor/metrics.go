package assessor

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// laplacianVariance measures sharpness as the variance of the image
// convolved with the 3x3 Laplacian kernel [0 1 0; 1 -4 1; 0 1 0].
// Only interior pixels contribute; images thinner than 3 pixels score 0.
func laplacianVariance(gray []float64, width, height int) float64 {
	if width < 3 || height < 3 {
		return 0
	}

	data := make([]float64, 0, (width-2)*(height-2))
	for y := 1; y < height-1; y++ {
		row := y * width
		for x := 1; x < width-1; x++ {
			center := gray[row+x]
			top := gray[row-width+x]
			bottom := gray[row+width+x]
			left := gray[row+x-1]
			right := gray[row+x+1]

			data = append(data, -4*center+top+bottom+left+right)
		}
	}

	if len(data) == 0 {
		return 0
	}
	return stat.Variance(data, nil)
}

// meanStdDev returns the mean and population standard deviation of a
// plane. A flat plane yields a zero deviation rather than an error.
func meanStdDev(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// gaussianBlur5 applies a separable 5-tap binomial approximation of a
// Gaussian ([1 4 6 4 1]/16) with clamped edges, returning a new plane.
func gaussianBlur5(gray []float64, width, height int) []float64 {
	kernel := [5]float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

	horizontal := make([]float64, len(gray))
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				xx := clampIndex(x+k, width)
				sum += gray[row+xx] * kernel[k+2]
			}
			horizontal[row+x] = sum
		}
	}

	blurred := make([]float64, len(gray))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				yy := clampIndex(y+k, height)
				sum += horizontal[yy*width+x] * kernel[k+2]
			}
			blurred[y*width+x] = sum
		}
	}
	return blurred
}

// noiseEstimate is the mean absolute difference between the grayscale
// plane and its Gaussian-blurred version. Smooth images score near 0.
func noiseEstimate(gray []float64, width, height int) float64 {
	if len(gray) == 0 {
		return 0
	}
	blurred := gaussianBlur5(gray, width, height)

	var total float64
	for i := range gray {
		total += math.Abs(gray[i] - blurred[i])
	}
	return total / float64(len(gray))
}

// sobelEdgeThreshold marks a pixel as an edge when its Sobel gradient
// magnitude exceeds this value.
const sobelEdgeThreshold = 100.0

// edgeDensity is the fraction of pixels whose Sobel gradient magnitude
// marks them as edges. It drives the detail-richness wording of the
// resolution assessment.
func edgeDensity(gray []float64, width, height int) float64 {
	if width < 3 || height < 3 {
		return 0
	}

	edgeCount := 0
	for y := 1; y < height-1; y++ {
		row := y * width
		for x := 1; x < width-1; x++ {
			gx := -gray[row-width+x-1] + gray[row-width+x+1] +
				-2*gray[row+x-1] + 2*gray[row+x+1] +
				-gray[row+width+x-1] + gray[row+width+x+1]

			gy := -gray[row-width+x-1] - 2*gray[row-width+x] - gray[row-width+x+1] +
				gray[row+width+x-1] + 2*gray[row+width+x] + gray[row+width+x+1]

			if math.Sqrt(gx*gx+gy*gy) > sobelEdgeThreshold {
				edgeCount++
			}
		}
	}
	return float64(edgeCount) / float64(width*height)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
