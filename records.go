package idx

import "fmt"

// ExtractRecords slices the payload of c into ItemCount records of
// Rows*Cols bytes each, in file order.
//
// It returns ErrOutOfRange if the header declares more bytes than Data
// holds, or declares images of zero size, so the number of records is
// always bounded by the payload. Surplus trailing bytes are ignored. The records share one freshly
// allocated backing array and never alias c.Data.
func ExtractRecords(c *ImagesContainer) ([][]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: images container is nil", ErrValidation)
	}
	stride := c.Stride()
	if stride == 0 && c.ItemCount > 0 {
		return nil, fmt.Errorf("%w: %d images of size %dx%d are not backed by any payload",
			ErrOutOfRange, c.ItemCount, c.Rows, c.Cols)
	}
	if !payloadFits(c.ItemCount, stride, len(c.Data)) {
		return nil, fmt.Errorf("%w: %d images of %d bytes exceed %d payload bytes",
			ErrOutOfRange, c.ItemCount, stride, len(c.Data))
	}
	need := uint64(c.ItemCount) * stride

	backing := make([]byte, need)
	copy(backing, c.Data[:need])

	records := make([][]byte, c.ItemCount)
	for i := range records {
		start := uint64(i) * stride
		end := start + stride
		records[i] = backing[start:end:end]
	}
	return records, nil
}

// payloadFits reports whether count records of stride bytes fit in have
// bytes, without overflowing on hostile headers. Zero-size records never
// fit unless none are declared.
func payloadFits(count uint32, stride uint64, have int) bool {
	if count == 0 {
		return true
	}
	if stride == 0 {
		return false
	}
	return uint64(count) <= uint64(have)/stride
}
