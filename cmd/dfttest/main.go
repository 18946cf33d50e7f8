package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vidfilter/dfttest-go/denoise"
	"github.com/vidfilter/dfttest-go/options"
	"github.com/vidfilter/dfttest-go/plane"
)

// rawSource serves frames from a raw 8 bit planar grey file loaded into
// memory.
type rawSource struct {
	frames []*plane.Frame
}

func (s *rawSource) Info() plane.Info {
	p := &s.frames[0].Planes[0]
	return plane.Info{
		Format:    plane.Format{Sample: plane.SampleInt, Bits: 8},
		NumFrames: len(s.frames),
		Widths:    []int{p.Width},
		Heights:   []int{p.Height},
	}
}

func (s *rawSource) Frame(n int) (*plane.Frame, error) {
	if n < 0 || n >= len(s.frames) {
		return nil, fmt.Errorf("frame %d out of range", n)
	}
	return s.frames[n], nil
}

func loadRaw(path string, width, height int) (*rawSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	frameSize := width * height
	if len(data) == 0 || len(data)%frameSize != 0 {
		return nil, fmt.Errorf("%s: size %d is not a multiple of %dx%d", path, len(data), width, height)
	}

	src := &rawSource{}
	format := plane.Format{Sample: plane.SampleInt, Bits: 8}
	for off := 0; off < len(data); off += frameSize {
		f := plane.NewFrame(format, []int{width}, []int{height})
		copy(f.Planes[0].U8, data[off:off+frameSize])
		src.frames = append(src.frames, f)
	}
	return src, nil
}

func main() {
	input := flag.String("input", "", "raw 8 bit planar grey input file")
	output := flag.String("output", "", "output file (same layout as input)")
	width := flag.Int("width", 0, "frame width")
	height := flag.Int("height", 0, "frame height")
	sigma := flag.Float64("sigma", 8.0, "denoising strength")
	radius := flag.Int("radius", 1, "temporal radius (0-3)")
	step := flag.Int("step", 8, "block step (1-16)")
	workers := flag.Int("workers", 0, "worker count (0 = all CPUs)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(denoise.Version())
		return
	}
	if *input == "" || *output == "" || *width <= 0 || *height <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := loadRaw(*input, *width, *height)
	if err != nil {
		log.Errorf("Error loading input: %v", err)
		os.Exit(1)
	}

	params := denoise.DefaultParams()
	params.Radius = *radius
	params.BlockStep = *step
	params.Window = denoise.BuildWindow(*radius, params.BlockSize, *step, denoise.WindowHanning, denoise.WindowHanning)
	params.Sigma = denoise.BuildSigma(*sigma, *radius, params.BlockSize)
	params.WindowFreq, err = denoise.WindowFrequency(params.Window, *radius, params.BlockSize)
	if err != nil {
		log.Errorf("Error building window tables: %v", err)
		os.Exit(1)
	}

	d, err := denoise.New(src, params, &options.Options{NumWorkers: *workers})
	if err != nil {
		log.Errorf("Error constructing filter: %v", err)
		os.Exit(1)
	}

	// frames arrive unordered; collect then write in sequence
	results := make([]*plane.Frame, len(src.frames))
	runner := denoise.NewRunner(d)
	if err := runner.ProcessAll(func(n int, f *plane.Frame) error {
		results[n] = f
		return nil
	}); err != nil {
		log.Errorf("Error processing: %v", err)
		os.Exit(1)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Errorf("Error creating output: %v", err)
		os.Exit(1)
	}
	defer out.Close()
	for n, f := range results {
		if _, err := out.Write(f.Planes[0].U8); err != nil {
			log.Errorf("Error writing frame %d: %v", n, err)
			os.Exit(1)
		}
	}
	fmt.Printf("wrote %d frames\n", len(results))
}
