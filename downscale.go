package idx

import "fmt"

// Downscale shrinks img by 2x2 max pooling, starting one pixel in from the
// top-left corner. A rows x cols image becomes ((rows-1)/2) x ((cols-1)/2),
// so a 28x28 MNIST digit yields 13x13. The label is kept.
func Downscale(img LabeledImage, rows, cols uint32) (LabeledImage, error) {
	if uint64(len(img.Pixels)) != uint64(rows)*uint64(cols) {
		return LabeledImage{}, fmt.Errorf("%w: image has %d pixels, want %dx%d", ErrValidation, len(img.Pixels), rows, cols)
	}
	var outRows, outCols int
	if rows > 0 && cols > 0 {
		outRows, outCols = int((rows-1)/2), int((cols-1)/2)
	}
	stride := int(cols)
	small := make([]byte, outRows*outCols)
	for y := 0; y < outRows; y++ {
		for x := 0; x < outCols; x++ {
			base := (1+2*y)*stride + 1 + 2*x
			small[y*outCols+x] = max(
				img.Pixels[base],
				img.Pixels[base+1],
				img.Pixels[base+stride],
				img.Pixels[base+stride+1],
			)
		}
	}
	return LabeledImage{Pixels: small, Label: img.Label}, nil
}
