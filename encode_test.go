package idx

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeLabels_Layout(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLabels(&buf, []byte{5, 0, 9}); err != nil {
		t.Fatal(err)
	}
	want := rawLabels(MagicLabels, 3, []byte{5, 0, 9})
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x\nwant % x", buf.Bytes(), want)
	}
}

func TestEncodeImages_Layout(t *testing.T) {
	var buf bytes.Buffer
	images := [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}
	if err := EncodeImages(&buf, 2, 2, images); err != nil {
		t.Fatal(err)
	}
	want := rawImages(MagicImages, 2, 2, 2, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x\nwant % x", buf.Bytes(), want)
	}
}

func TestEncodeImages_Validation(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeImages(&buf, 2, 2, [][]byte{{1, 2, 3}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for short image, got %v", err)
	}
	err = EncodeImages(&buf, 0, 2, nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty size, got %v", err)
	}
	err = EncodeImages(&buf, 4, 4, nil, WithWriteLimits(Limits{MaxImageBytes: 8}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded for size, got %v", err)
	}
	err = EncodeImages(&buf, 1, 1, [][]byte{{1}, {2}}, WithWriteLimits(Limits{MaxItems: 1}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded for count, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing must be written on validation failure")
	}
}

func TestEncodeLabels_Limit(t *testing.T) {
	err := EncodeLabels(io.Discard, []byte{1, 2}, WithWriteLimits(Limits{MaxItems: 1}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestEncode_WriterError(t *testing.T) {
	if err := EncodeLabels(&failingWriter{n: 4}, []byte{1}); err == nil {
		t.Fatal("expected error")
	}
	if err := EncodeImages(&failingWriter{n: 4}, 1, 1, [][]byte{{1}}); err == nil {
		t.Fatal("expected error")
	}
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	var lbl, img bytes.Buffer
	if err := EncodeLabels(&lbl, []byte{3, 1}, WithWriteCompression(CompGzip)); err != nil {
		t.Fatal(err)
	}
	if err := EncodeImages(&img, 1, 3, [][]byte{{1, 2, 3}, {4, 5, 6}}, WithWriteCompression(CompGzip)); err != nil {
		t.Fatal(err)
	}
	rawLbl, err := decompress(CompAuto, lbl.Bytes(), 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	labels, err := DecodeLabels(rawLbl, WithVerifyMagic(true), WithEagerValidation(true))
	if err != nil {
		t.Fatal(err)
	}
	rawImg, err := decompress(CompAuto, img.Bytes(), 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	images, err := DecodeImages(rawImg, WithVerifyMagic(true), WithEagerValidation(true))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Pair(images, labels)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Label != 3 || !bytes.Equal(got[1].Pixels, []byte{4, 5, 6}) {
		t.Fatalf("unexpected samples %v", got)
	}
}

func TestWriteDataset_Files(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDataset(dir, 2, 3, sampleItems()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{TrainImagesFile, TrainLabelsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestWriteDataset_Errors(t *testing.T) {
	dir := t.TempDir()
	items := []LabeledImage{{Pixels: []byte{1}, Label: 1}}
	if err := WriteDataset(dir, 2, 2, items); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := WriteDataset(dir, 1, 1, items, WithWriteCompression(Compression(99))); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}

	orig := writeFileFn
	calls := 0
	writeFileFn = func(string, []byte, os.FileMode) error {
		calls++
		if calls == 2 {
			return io.ErrShortWrite
		}
		return nil
	}
	defer func() { writeFileFn = orig }()
	if err := WriteDataset(dir, 1, 1, items); !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected labels write error, got %v", err)
	}
}
