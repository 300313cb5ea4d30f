package idx

const (
	MagicLabels uint32 = 2049
	MagicImages uint32 = 2051

	LabelHeaderSize = 8
	ImageHeaderSize = 16
)

// File names of the MNIST training set inside a dataset directory.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
)

type Compression uint16

const (
	CompAuto Compression = 0x0
	CompNone Compression = 0x1
	CompGzip Compression = 0x2
	CompZSTD Compression = 0x3
	CompLZ4  Compression = 0x4
	CompZIP  Compression = 0x5
	CompBR   Compression = 0x6
)

func (c Compression) String() string {
	switch c {
	case CompAuto:
		return "auto"
	case CompNone:
		return "none"
	case CompGzip:
		return "gzip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompZIP:
		return "zip"
	case CompBR:
		return "br"
	default:
		return "unknown"
	}
}

// LabelsContainer is a decoded label file.
//
// Data holds the raw label payload. Its length is not guaranteed to match
// ItemCount unless the container was decoded with eager validation or
// Validate returned nil.
type LabelsContainer struct {
	MagicNumber uint32
	ItemCount   uint32
	Data        []byte
}

// ImagesContainer is a decoded image file. Data is the concatenation of
// ItemCount images of Rows*Cols bytes each.
type ImagesContainer struct {
	MagicNumber uint32
	ItemCount   uint32
	Rows        uint32
	Cols        uint32
	Data        []byte
}

// Stride returns the byte length of one image record.
func (c *ImagesContainer) Stride() uint64 {
	return uint64(c.Rows) * uint64(c.Cols)
}

// Records returns the image records of c. See [ExtractRecords].
func (c *ImagesContainer) Records() ([][]byte, error) {
	return ExtractRecords(c)
}

// LabeledImage is one dataset sample.
type LabeledImage struct {
	Pixels []byte
	Label  byte
}
