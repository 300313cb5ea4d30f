package idx

import "fmt"

// Validate reports whether c is a well-formed label file: magic 2049 and
// exactly one payload byte per declared item.
func (c *LabelsContainer) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: labels container is nil", ErrValidation)
	}
	if c.MagicNumber != MagicLabels {
		return fmt.Errorf("%w: label magic %d, want %d", ErrInvalidMagic, c.MagicNumber, MagicLabels)
	}
	if uint64(len(c.Data)) != uint64(c.ItemCount) {
		return fmt.Errorf("%w: %d labels declared, payload has %d", ErrOutOfRange, c.ItemCount, len(c.Data))
	}
	return nil
}

// Validate reports whether c is a well-formed image file: magic 2051,
// non-empty images and a payload of exactly ItemCount*Rows*Cols bytes.
func (c *ImagesContainer) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: images container is nil", ErrValidation)
	}
	if c.MagicNumber != MagicImages {
		return fmt.Errorf("%w: image magic %d, want %d", ErrInvalidMagic, c.MagicNumber, MagicImages)
	}
	if c.Stride() == 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrValidation, c.Rows, c.Cols)
	}
	if !payloadFits(c.ItemCount, c.Stride(), len(c.Data)) || uint64(c.ItemCount)*c.Stride() != uint64(len(c.Data)) {
		return fmt.Errorf("%w: %d images of %d bytes, payload has %d", ErrOutOfRange, c.ItemCount, c.Stride(), len(c.Data))
	}
	return nil
}

func checkLabelPayload(c *LabelsContainer) error {
	if uint64(len(c.Data)) < uint64(c.ItemCount) {
		return fmt.Errorf("%w: %d labels declared, payload has %d", ErrOutOfRange, c.ItemCount, len(c.Data))
	}
	return nil
}

func checkImagePayload(c *ImagesContainer) error {
	if !payloadFits(c.ItemCount, c.Stride(), len(c.Data)) {
		return fmt.Errorf("%w: %d images of %d bytes, payload has %d", ErrOutOfRange, c.ItemCount, c.Stride(), len(c.Data))
	}
	return nil
}

func validateImages(rows, cols uint32, images [][]byte, limits Limits) error {
	stride := uint64(rows) * uint64(cols)
	if stride == 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrValidation, rows, cols)
	}
	if limits.imageBytesExceeded(stride) {
		return fmt.Errorf("%w: image size %dx%d", ErrLimitExceeded, rows, cols)
	}
	if limits.itemsExceeded(uint64(len(images))) {
		return fmt.Errorf("%w: too many images", ErrLimitExceeded)
	}
	for i, img := range images {
		if uint64(len(img)) != stride {
			return fmt.Errorf("%w: image %d has %d bytes, want %d", ErrValidation, i, len(img), stride)
		}
	}
	return nil
}
