package idx

import (
	"os"
	"path/filepath"
)

// Load reads the MNIST training set from dir and pairs every label with its
// image.
//
// The files are expected at dir/train-images-idx3-ubyte and
// dir/train-labels-idx1-ubyte; the names are fixed. Each file is read whole
// and may be compressed (see [WithCompression]).
//
// I/O errors from reading either file are returned unchanged, so
// errors.Is(err, fs.ErrNotExist) reports a missing file. Decode and pairing
// errors are likewise returned as produced. Load never returns a partial
// result.
func Load(dir string, opts ...ReadOption) ([]LabeledImage, error) {
	return LoadFiles(
		filepath.Join(dir, TrainImagesFile),
		filepath.Join(dir, TrainLabelsFile),
		opts...,
	)
}

// LoadFiles is Load for explicit image and label file paths.
func LoadFiles(imagesPath, labelsPath string, opts ...ReadOption) ([]LabeledImage, error) {
	cfg := newReadConfig(opts)

	images, err := readImagesFile(imagesPath, cfg, opts)
	if err != nil {
		return nil, err
	}
	labels, err := readLabelsFile(labelsPath, cfg, opts)
	if err != nil {
		return nil, err
	}
	return Pair(images, labels)
}

// ReadImagesFile reads and decodes the image file at path.
func ReadImagesFile(path string, opts ...ReadOption) (*ImagesContainer, error) {
	return readImagesFile(path, newReadConfig(opts), opts)
}

// ReadLabelsFile reads and decodes the label file at path.
func ReadLabelsFile(path string, opts ...ReadOption) (*LabelsContainer, error) {
	return readLabelsFile(path, newReadConfig(opts), opts)
}

func readImagesFile(path string, cfg readConfig, opts []ReadOption) (*ImagesContainer, error) {
	b, err := readFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return DecodeImages(b, opts...)
}

func readLabelsFile(path string, cfg readConfig, opts []ReadOption) (*LabelsContainer, error) {
	b, err := readFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return DecodeLabels(b, opts...)
}

// Function variable for testing injection.
var readFileFn = os.ReadFile

func readFile(path string, cfg readConfig) ([]byte, error) {
	b, err := readFileFn(path)
	if err != nil {
		return nil, err
	}
	return decompress(cfg.compression, b, cfg.limits.MaxFileSize)
}
