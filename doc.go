// Package idx implements a decoder for the IDX binary format used to
// distribute the MNIST handwritten-digit dataset.
//
// # File Format Overview
//
// An IDX file is a fixed big-endian header followed by a flat payload:
//   - Label files: magic number (2049) and item count, then one byte per label
//   - Image files: magic number (2051), item count, rows and cols, then
//     itemCount*rows*cols bytes of pixels
//
// The label and image files of a dataset are paired by index into
// [LabeledImage] values.
//
// # Basic Usage
//
// To load the training set from a directory containing
// train-images-idx3-ubyte and train-labels-idx1-ubyte:
//
//	images, err := idx.Load("/data/mnist")
//	if err != nil {
//		return err
//	}
//	for _, img := range images {
//		fmt.Println(img.Label, len(img.Pixels))
//	}
//
// To decode buffers already in memory:
//
//	labels, err := idx.DecodeLabels(labelBytes)
//	images, err := idx.DecodeImages(imageBytes)
//	samples, err := idx.Pair(images, labels)
//
// # Compression
//
// MNIST files are commonly shipped gzip-compressed. [Load] sniffs the file
// signature and transparently decompresses gzip, Zstandard, LZ4 and ZIP
// content. Brotli streams carry no signature and must be selected with
// [WithCompression].
//
// # Validation
//
// The decoders check only that a buffer is long enough to hold its header.
// Disagreement between a declared count and the payload actually present is
// reported as [ErrOutOfRange] when records are extracted, or at decode time
// when [WithEagerValidation] is set. Configurable [Limits] bound the
// allocations a hostile header can request.
package idx
