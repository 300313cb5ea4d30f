package idx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Function variables for testing injection.
var (
	newZstdWriter = func(w io.Writer) (*zstd.Encoder, error) { return zstd.NewWriter(w) }
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	zipCreate     = func(zw *zip.Writer, name string) (io.Writer, error) { return zw.Create(name) }
	zipClose      = func(zw *zip.Writer) error { return zw.Close() }
	zipOpen       = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll       = io.ReadAll
	gzipClose     = func(w *gzip.Writer) error { return w.Close() }
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
)

var (
	sigGzip = []byte{0x1f, 0x8b}
	sigZSTD = []byte{0x28, 0xb5, 0x2f, 0xfd}
	sigLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	sigZIP  = []byte{0x50, 0x4b, 0x03, 0x04}
)

// DetectCompression guesses the envelope of b from its leading signature.
// IDX files start with two zero bytes, so anything unrecognised is CompNone.
// Brotli has no signature and is never detected.
func DetectCompression(b []byte) Compression {
	switch {
	case bytes.HasPrefix(b, sigGzip):
		return CompGzip
	case bytes.HasPrefix(b, sigZSTD):
		return CompZSTD
	case bytes.HasPrefix(b, sigLZ4):
		return CompLZ4
	case bytes.HasPrefix(b, sigZIP):
		return CompZIP
	default:
		return CompNone
	}
}

// decompress unwraps b according to comp. CompAuto sniffs the signature.
// Output larger than limit is rejected with ErrLimitExceeded.
func decompress(comp Compression, b []byte, limit uint64) ([]byte, error) {
	if comp == CompAuto {
		comp = DetectCompression(b)
	}
	var out []byte
	var err error
	switch comp {
	case CompNone:
		if uint64(len(b)) > limit {
			return nil, fmt.Errorf("%w: file is %d bytes", ErrLimitExceeded, len(b))
		}
		return b, nil
	case CompGzip:
		out, err = gzipDecompress(b, limit)
	case CompZSTD:
		out, err = zstdDecompress(b, limit)
	case CompLZ4:
		out, err = lz4Decompress(b, limit)
	case CompZIP:
		out, err = zipDecompress(b, limit)
	case CompBR:
		out, err = brotliDecompress(b, limit)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// compress wraps b according to comp. name is used as the ZIP entry name.
func compress(comp Compression, name string, b []byte) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch comp {
	case CompAuto, CompNone:
		return b, nil
	case CompGzip:
		err = gzipCompressTo(&buf, b)
	case CompZSTD:
		err = zstdCompressTo(&buf, b)
	case CompLZ4:
		err = lz4CompressTo(&buf, b)
	case CompZIP:
		err = zipCompressNamed(&buf, name, b)
	case CompBR:
		err = brotliCompressTo(&buf, b)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readLimited reads r to EOF, failing once more than limit bytes arrive.
func readLimited(r io.Reader, limit uint64, algo string) ([]byte, error) {
	b, err := readAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, algo, err)
	}
	if uint64(len(b)) > limit {
		return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", ErrLimitExceeded, algo, limit)
	}
	return b, nil
}

func gzipCompressTo(w io.Writer, in []byte) error {
	gw := gzip.NewWriter(w)
	if _, err := gw.Write(in); err != nil {
		_ = gzipClose(gw)
		return err
	}
	return gzipClose(gw)
}

func gzipDecompress(in []byte, limit uint64) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", ErrInvalidPayload, err)
	}
	defer r.Close()
	return readLimited(r, limit, "gzip")
}

func zstdCompressTo(w io.Writer, in []byte) error {
	enc, err := newZstdWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(in); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func zstdDecompress(in []byte, limit uint64) ([]byte, error) {
	dec, err := newZstdReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return readLimited(dec, limit, "zstd")
}

func lz4CompressTo(w io.Writer, in []byte) error {
	zw := lz4.NewWriter(w)
	if _, err := zw.Write(in); err != nil {
		_ = lz4Close(zw)
		return err
	}
	return lz4Close(zw)
}

func lz4Decompress(in []byte, limit uint64) ([]byte, error) {
	return readLimited(lz4.NewReader(bytes.NewReader(in)), limit, "lz4")
}

func brotliCompressTo(w io.Writer, in []byte) error {
	bw := brotli.NewWriter(w)
	if _, err := bw.Write(in); err != nil {
		_ = brotliClose(bw)
		return err
	}
	return brotliClose(bw)
}

func brotliDecompress(in []byte, limit uint64) ([]byte, error) {
	return readLimited(brotli.NewReader(bytes.NewReader(in)), limit, "brotli")
}

// zipCompressNamed creates a ZIP archive with a single entry.
func zipCompressNamed(w io.Writer, name string, in []byte) error {
	zw := zip.NewWriter(w)
	entry, err := zipCreate(zw, name)
	if err != nil {
		_ = zipClose(zw)
		return err
	}
	if _, err := entry.Write(in); err != nil {
		_ = zipClose(zw)
		return err
	}
	return zipClose(zw)
}

// zipDecompress extracts the only entry of a ZIP archive.
func zipDecompress(in []byte, limit uint64) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(in), int64(len(in)))
	if err != nil {
		return nil, fmt.Errorf("%w: zip: %v", ErrInvalidPayload, err)
	}
	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: zip must contain exactly one entry", ErrInvalidPayload)
	}
	zf := zr.File[0]
	if zf.FileInfo().IsDir() {
		return nil, fmt.Errorf("%w: zip entry must be a file", ErrInvalidPayload)
	}
	if zf.UncompressedSize64 > limit {
		return nil, fmt.Errorf("%w: zip entry is %d bytes", ErrLimitExceeded, zf.UncompressedSize64)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readLimited(rc, limit, "zip")
}
