package idx

// Limits bounds what a decoder or encoder accepts. A zero MaxItems or
// MaxImageBytes means no limit; a zero MaxFileSize falls back to the default.
type Limits struct {
	MaxFileSize   uint64 // bytes after decompression
	MaxItems      uint32 // declared item count of either file
	MaxImageBytes uint64 // rows*cols of a single image
}

func defaultLimits() Limits {
	return Limits{
		MaxFileSize: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxFileSize == 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	return l
}

func (l Limits) itemsExceeded(n uint64) bool {
	return l.MaxItems != 0 && n > uint64(l.MaxItems)
}

func (l Limits) imageBytesExceeded(stride uint64) bool {
	return l.MaxImageBytes != 0 && stride > l.MaxImageBytes
}
