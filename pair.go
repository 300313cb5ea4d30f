package idx

import "fmt"

// Pair zips the records of images with the labels, by index.
//
// The label count drives iteration: the result has exactly labels.ItemCount
// entries. Image records beyond that count are dropped. Pair returns
// ErrOutOfRange if there are fewer image records or fewer label bytes than
// labels.ItemCount; it never clamps.
func Pair(images *ImagesContainer, labels *LabelsContainer) ([]LabeledImage, error) {
	if labels == nil {
		return nil, fmt.Errorf("%w: labels container is nil", ErrValidation)
	}
	records, err := ExtractRecords(images)
	if err != nil {
		return nil, err
	}
	if uint64(labels.ItemCount) > uint64(len(records)) {
		return nil, fmt.Errorf("%w: %d labels but only %d images", ErrOutOfRange, labels.ItemCount, len(records))
	}
	if uint64(labels.ItemCount) > uint64(len(labels.Data)) {
		return nil, fmt.Errorf("%w: %d labels declared but payload has %d", ErrOutOfRange, labels.ItemCount, len(labels.Data))
	}

	out := make([]LabeledImage, labels.ItemCount)
	for i := range out {
		out[i] = LabeledImage{Pixels: records[i], Label: labels.Data[i]}
	}
	return out, nil
}
