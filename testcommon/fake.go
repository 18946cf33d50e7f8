package testcommon

import (
	"fmt"
	"math/rand"

	"github.com/vidfilter/dfttest-go/plane"
)

// FakeFrameSource serves preloaded frames for tests. When Err is set it is
// returned from every Frame call.
type FakeFrameSource struct {
	Frames []*plane.Frame
	Err    error
}

func (f *FakeFrameSource) Info() plane.Info {
	info := plane.Info{NumFrames: len(f.Frames)}
	if len(f.Frames) == 0 {
		return info
	}
	first := f.Frames[0]
	info.Format = first.Format
	for i := range first.Planes {
		info.Widths = append(info.Widths, first.Planes[i].Width)
		info.Heights = append(info.Heights, first.Planes[i].Height)
	}
	return info
}

func (f *FakeFrameSource) Frame(n int) (*plane.Frame, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if n < 0 || n >= len(f.Frames) {
		return nil, fmt.Errorf("testcommon: frame %d out of range", n)
	}
	return f.Frames[n], nil
}

// ConstantFrame builds a single-plane frame filled with one value. The
// value is interpreted in the format's own range.
func ConstantFrame(f plane.Format, width int, height int, value float64) *plane.Frame {
	fr := plane.NewFrame(f, []int{width}, []int{height})
	p := &fr.Planes[0]
	switch {
	case f.Sample == plane.SampleFloat:
		for i := range p.F32 {
			p.F32[i] = float32(value)
		}
	case f.Bits > 8:
		for i := range p.U16 {
			p.U16[i] = uint16(value)
		}
	default:
		for i := range p.U8 {
			p.U8[i] = uint8(value)
		}
	}
	return fr
}

// NoiseFrame builds a single-plane 8 bit frame of deterministic noise
// around a mid-grey level.
func NoiseFrame(width int, height int, seed int64) *plane.Frame {
	f := plane.Format{Sample: plane.SampleInt, Bits: 8}
	fr := plane.NewFrame(f, []int{width}, []int{height})
	rng := rand.New(rand.NewSource(seed))
	p := &fr.Planes[0]
	for i := range p.U8 {
		p.U8[i] = uint8(128 + rng.Intn(64) - 32)
	}
	return fr
}
