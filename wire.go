package idx

import (
	"encoding/binary"
	"io"
)

type labelHeader struct {
	Magic     uint32
	ItemCount uint32
}

type imageHeader struct {
	Magic     uint32
	ItemCount uint32
	Rows      uint32
	Cols      uint32
}

func parseLabelHeader(b []byte) (labelHeader, error) {
	if len(b) < LabelHeaderSize {
		return labelHeader{}, invalidSize("label", len(b), LabelHeaderSize)
	}
	var h labelHeader
	h.Magic = binary.BigEndian.Uint32(b[0:4])
	h.ItemCount = binary.BigEndian.Uint32(b[4:8])
	return h, nil
}

func writeLabelHeader(w io.Writer, h labelHeader) error {
	var buf [LabelHeaderSize]byte
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	binary.BigEndian.PutUint32(buf[4:8], h.ItemCount)
	_, err := w.Write(buf[:])
	return err
}

func parseImageHeader(b []byte) (imageHeader, error) {
	if len(b) < ImageHeaderSize {
		return imageHeader{}, invalidSize("image", len(b), ImageHeaderSize)
	}
	var h imageHeader
	h.Magic = binary.BigEndian.Uint32(b[0:4])
	h.ItemCount = binary.BigEndian.Uint32(b[4:8])
	h.Rows = binary.BigEndian.Uint32(b[8:12])
	h.Cols = binary.BigEndian.Uint32(b[12:16])
	return h, nil
}

func writeImageHeader(w io.Writer, h imageHeader) error {
	var buf [ImageHeaderSize]byte
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	binary.BigEndian.PutUint32(buf[4:8], h.ItemCount)
	binary.BigEndian.PutUint32(buf[8:12], h.Rows)
	binary.BigEndian.PutUint32(buf[12:16], h.Cols)
	_, err := w.Write(buf[:])
	return err
}

func (h imageHeader) stride() uint64 {
	return uint64(h.Rows) * uint64(h.Cols)
}
