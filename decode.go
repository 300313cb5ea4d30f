package idx

import "fmt"

// DecodeLabels decodes an IDX label file held in b.
//
// The first 8 bytes are read as the big-endian magic number and item count;
// the remaining bytes become Data. DecodeLabels returns ErrInvalidSize if b
// is shorter than the header.
//
// By default the payload length is not compared with the item count; a
// mismatch surfaces as ErrOutOfRange from [Pair]. Use ReadOption functions
// to tighten this:
//   - WithEagerValidation(true): fail with ErrOutOfRange when Data is short
//   - WithVerifyMagic(true): fail with ErrInvalidMagic unless the magic is 2049
//   - WithReadLimits(l): cap the declared item count (uncapped by default)
//
// Data is copied; the returned container does not alias b.
func DecodeLabels(b []byte, opts ...ReadOption) (*LabelsContainer, error) {
	cfg := newReadConfig(opts)

	h, err := parseLabelHeader(b)
	if err != nil {
		return nil, err
	}
	if cfg.verifyMagic && h.Magic != MagicLabels {
		return nil, fmt.Errorf("%w: label magic %d, want %d", ErrInvalidMagic, h.Magic, MagicLabels)
	}
	if cfg.limits.itemsExceeded(uint64(h.ItemCount)) {
		return nil, fmt.Errorf("%w: label count %d", ErrLimitExceeded, h.ItemCount)
	}

	c := &LabelsContainer{
		MagicNumber: h.Magic,
		ItemCount:   h.ItemCount,
		Data:        append([]byte(nil), b[LabelHeaderSize:]...),
	}
	if cfg.eager {
		if err := checkLabelPayload(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DecodeImages decodes an IDX image file held in b.
//
// The first 16 bytes are read as four big-endian fields: magic number, item
// count, rows and cols. The remaining bytes become Data. DecodeImages returns
// ErrInvalidSize if b is shorter than the header.
//
// The same options as [DecodeLabels] apply, with WithVerifyMagic checking
// for 2051 and WithReadLimits additionally capping rows*cols.
func DecodeImages(b []byte, opts ...ReadOption) (*ImagesContainer, error) {
	cfg := newReadConfig(opts)

	h, err := parseImageHeader(b)
	if err != nil {
		return nil, err
	}
	if cfg.verifyMagic && h.Magic != MagicImages {
		return nil, fmt.Errorf("%w: image magic %d, want %d", ErrInvalidMagic, h.Magic, MagicImages)
	}
	if cfg.limits.itemsExceeded(uint64(h.ItemCount)) {
		return nil, fmt.Errorf("%w: image count %d", ErrLimitExceeded, h.ItemCount)
	}
	if cfg.limits.imageBytesExceeded(h.stride()) {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrLimitExceeded, h.Rows, h.Cols)
	}

	c := &ImagesContainer{
		MagicNumber: h.Magic,
		ItemCount:   h.ItemCount,
		Rows:        h.Rows,
		Cols:        h.Cols,
		Data:        append([]byte(nil), b[ImageHeaderSize:]...),
	}
	if cfg.eager {
		if err := checkImagePayload(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func invalidSize(kind string, got, want int) error {
	return fmt.Errorf("%w: %s file is %d bytes, header needs %d", ErrInvalidSize, kind, got, want)
}
