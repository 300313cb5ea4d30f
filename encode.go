package idx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Function variable for testing injection.
var writeFileFn = os.WriteFile

// EncodeLabels writes labels to w as an IDX label file with magic 2049.
//
// By default the output is uncompressed. Use WithWriteCompression to wrap it
// in one of the envelopes Load understands.
func EncodeLabels(w io.Writer, labels []byte, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	if cfg.limits.itemsExceeded(uint64(len(labels))) {
		return fmt.Errorf("%w: too many labels", ErrLimitExceeded)
	}

	var buf bytes.Buffer
	buf.Grow(LabelHeaderSize + len(labels))
	h := labelHeader{Magic: MagicLabels, ItemCount: uint32(len(labels))}
	if err := writeLabelHeader(&buf, h); err != nil {
		return err
	}
	buf.Write(labels)
	return writeEncoded(w, cfg.compression, TrainLabelsFile, buf.Bytes())
}

// EncodeImages writes images to w as an IDX image file with magic 2051.
// Every image must be exactly rows*cols bytes.
func EncodeImages(w io.Writer, rows, cols uint32, images [][]byte, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	if err := validateImages(rows, cols, images, cfg.limits); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Grow(ImageHeaderSize + len(images)*int(rows)*int(cols))
	h := imageHeader{Magic: MagicImages, ItemCount: uint32(len(images)), Rows: rows, Cols: cols}
	if err := writeImageHeader(&buf, h); err != nil {
		return err
	}
	for _, img := range images {
		buf.Write(img)
	}
	return writeEncoded(w, cfg.compression, TrainImagesFile, buf.Bytes())
}

// WriteDataset writes items into dir as a training set that Load can read
// back: train-images-idx3-ubyte and train-labels-idx1-ubyte.
func WriteDataset(dir string, rows, cols uint32, items []LabeledImage, opts ...WriteOption) error {
	images := make([][]byte, len(items))
	labels := make([]byte, len(items))
	for i, it := range items {
		images[i] = it.Pixels
		labels[i] = it.Label
	}

	var imgBuf, lblBuf bytes.Buffer
	if err := EncodeImages(&imgBuf, rows, cols, images, opts...); err != nil {
		return err
	}
	if err := EncodeLabels(&lblBuf, labels, opts...); err != nil {
		return err
	}
	if err := writeFileFn(filepath.Join(dir, TrainImagesFile), imgBuf.Bytes(), 0o644); err != nil {
		return err
	}
	return writeFileFn(filepath.Join(dir, TrainLabelsFile), lblBuf.Bytes(), 0o644)
}

func newWriteConfig(opts []WriteOption) writeConfig {
	cfg := writeConfig{limits: defaultLimits(), compression: CompNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

func writeEncoded(w io.Writer, comp Compression, name string, raw []byte) error {
	out, err := compress(comp, name, raw)
	if err != nil {
		return err
	}
	n, err := w.Write(out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	return err
}
