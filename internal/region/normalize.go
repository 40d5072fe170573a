package region

import "math"

// Image is a buffer shaped into rows.
type Image struct {
	Width, Height int
	// Pix holds Height rows of Width pixels.
	Pix Buffer
}

// At returns the pixel at column x and row y.
func (img Image) At(x, y int) Pixel { return img.Pix[y*img.Width+x] }

// Row returns the y-th row.
func (img Image) Row(y int) Buffer { return img.Pix[y*img.Width : (y+1)*img.Width] }

// MaxLength returns the length of the longest buffer.
func MaxLength(buffers []Buffer) int {
	max := 0
	for _, buf := range buffers {
		if len(buf) > max {
			max = len(buf)
		}
	}
	return max
}

// Pad extends buf with black pixels up to length.
func Pad(buf Buffer, length int) Buffer {
	if len(buf) >= length {
		return buf
	}
	out := make(Buffer, length)
	copy(out, buf)
	return out
}

// Shape picks a row width that is a multiple of 8 with roughly
// sqrt(2) aspect ratio and the number of full rows for length pixels.
func Shape(length int) (width, height int) {
	width = int(math.Sqrt(float64(length))/math.Sqrt2/8) * 8
	if width < 8 {
		width = 8
	}
	return width, length / width
}

// Normalize pads all buffers to the same length and shapes them into images.
// Trailing pixels that do not fill a whole row are dropped.
func Normalize(buffers []Buffer) []Image {
	length := MaxLength(buffers)
	width, height := Shape(length)

	images := make([]Image, len(buffers))
	for i, buf := range buffers {
		buf = Pad(buf, length)
		images[i] = Image{
			Width:  width,
			Height: height,
			Pix:    buf[:width*height],
		}
	}
	return images
}
