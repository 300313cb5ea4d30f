package idx

import (
	"errors"
	"testing"
)

func TestLabelsValidate(t *testing.T) {
	cases := []struct {
		name string
		c    *LabelsContainer
		want error
	}{
		{"ok", &LabelsContainer{MagicNumber: MagicLabels, ItemCount: 2, Data: []byte{1, 2}}, nil},
		{"empty ok", &LabelsContainer{MagicNumber: MagicLabels}, nil},
		{"nil", nil, ErrValidation},
		{"bad magic", &LabelsContainer{MagicNumber: MagicImages, ItemCount: 1, Data: []byte{1}}, ErrInvalidMagic},
		{"short", &LabelsContainer{MagicNumber: MagicLabels, ItemCount: 2, Data: []byte{1}}, ErrOutOfRange},
		{"surplus", &LabelsContainer{MagicNumber: MagicLabels, ItemCount: 1, Data: []byte{1, 2}}, ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.want == nil && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestImagesValidate(t *testing.T) {
	cases := []struct {
		name string
		c    *ImagesContainer
		want error
	}{
		{"ok", &ImagesContainer{MagicNumber: MagicImages, ItemCount: 2, Rows: 1, Cols: 2, Data: seq(4)}, nil},
		{"nil", nil, ErrValidation},
		{"bad magic", &ImagesContainer{MagicNumber: MagicLabels, ItemCount: 1, Rows: 1, Cols: 1, Data: seq(1)}, ErrInvalidMagic},
		{"zero size", &ImagesContainer{MagicNumber: MagicImages, ItemCount: 1, Rows: 0, Cols: 1}, ErrValidation},
		{"short", &ImagesContainer{MagicNumber: MagicImages, ItemCount: 2, Rows: 1, Cols: 2, Data: seq(3)}, ErrOutOfRange},
		{"surplus", &ImagesContainer{MagicNumber: MagicImages, ItemCount: 1, Rows: 1, Cols: 2, Data: seq(3)}, ErrOutOfRange},
		{"hostile", &ImagesContainer{MagicNumber: MagicImages, ItemCount: 0xFFFFFFFF, Rows: 0xFFFFFFFF, Cols: 0xFFFFFFFF, Data: seq(3)}, ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.want == nil && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLimitsWithDefaults(t *testing.T) {
	l := (Limits{}).withDefaults()
	if l.MaxFileSize == 0 {
		t.Fatal("expected default MaxFileSize")
	}
	if l.MaxItems != 0 || l.MaxImageBytes != 0 {
		t.Fatalf("item and image caps must stay off by default: %+v", l)
	}
	if l.itemsExceeded(1<<32-1) || l.imageBytesExceeded(1<<40) {
		t.Fatal("zero caps must not limit")
	}

	custom := Limits{MaxItems: 7}
	custom = custom.withDefaults()
	if custom.MaxItems != 7 {
		t.Fatalf("expected custom MaxItems, got %d", custom.MaxItems)
	}
}
