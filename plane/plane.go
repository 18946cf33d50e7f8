package plane

import "fmt"

// SampleType distinguishes integer and floating point pixel storage.
type SampleType int

const (
	SampleInt SampleType = iota
	SampleFloat
)

// Sample is the set of supported pixel storage types: 8 bit unsigned,
// 9-16 bit unsigned stored in uint16, and 32 bit float.
type Sample interface {
	~uint8 | ~uint16 | ~float32
}

// Format describes the constant pixel format of a clip.
type Format struct {
	Sample SampleType
	Bits   int
}

func (f Format) BytesPerSample() int {
	return (f.Bits + 7) / 8
}

// Validate reports whether the format is one the filter supports:
// 8-16 bit unsigned integer or 32 bit float.
func (f Format) Validate() error {
	switch f.Sample {
	case SampleInt:
		if f.Bits < 8 || f.Bits > 16 {
			return fmt.Errorf("plane: only 8-16 bit integer formats are supported, got %d bits", f.Bits)
		}
	case SampleFloat:
		if f.Bits != 32 {
			return fmt.Errorf("plane: only 32 bit float format is supported, got %d bits", f.Bits)
		}
	default:
		return fmt.Errorf("plane: unknown sample type %d", f.Sample)
	}
	return nil
}

// Plane is a single 2D grid of samples. Exactly one of the typed buffers is
// populated, matching the clip format. Stride is in samples, not bytes.
type Plane struct {
	Width  int
	Height int
	Stride int

	U8  []uint8
	U16 []uint16
	F32 []float32
}

// NewPlane allocates a plane with stride == width for the given format.
func NewPlane(f Format, width int, height int) Plane {
	p := Plane{Width: width, Height: height, Stride: width}
	switch {
	case f.Sample == SampleFloat:
		p.F32 = make([]float32, width*height)
	case f.Bits > 8:
		p.U16 = make([]uint16, width*height)
	default:
		p.U8 = make([]uint8, width*height)
	}
	return p
}

// Data returns the typed backing slice of the plane. The slice aliases the
// plane's storage; it is nil when T does not match the plane's format.
func Data[T Sample](p *Plane) []T {
	var s []T
	switch v := any(&s).(type) {
	case *[]uint8:
		*v = p.U8
	case *[]uint16:
		*v = p.U16
	case *[]float32:
		*v = p.F32
	}
	return s
}

// Frame is a set of planes sharing one format. Plane dimensions may differ
// (chroma subsampling).
type Frame struct {
	Format Format
	Planes []Plane
}

// NewFrame allocates a frame with one plane per width/height pair.
func NewFrame(f Format, widths []int, heights []int) *Frame {
	fr := &Frame{Format: f, Planes: make([]Plane, len(widths))}
	for i := range widths {
		fr.Planes[i] = NewPlane(f, widths[i], heights[i])
	}
	return fr
}

// Info describes a clip: its format, length and per-plane dimensions.
type Info struct {
	Format    Format
	NumFrames int
	Widths    []int
	Heights   []int
}
