package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/vidfilter/dfttest-go/denoise"
	"github.com/vidfilter/dfttest-go/options"
	"github.com/vidfilter/dfttest-go/plane"
	"github.com/vidfilter/dfttest-go/testcommon"
)

func main() {

	const (
		width     = 1280
		height    = 720
		numFrames = 24
		radius    = 1
		step      = 8
	)

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	src := &testcommon.FakeFrameSource{}
	for i := 0; i < numFrames; i++ {
		src.Frames = append(src.Frames, testcommon.NoiseFrame(width, height, int64(i)))
	}

	params := denoise.DefaultParams()
	params.Radius = radius
	params.BlockStep = step
	params.Window = denoise.BuildWindow(radius, params.BlockSize, step, denoise.WindowHanning, denoise.WindowHanning)
	params.Sigma = denoise.BuildSigma(8.0, radius, params.BlockSize)
	var err error
	params.WindowFreq, err = denoise.WindowFrequency(params.Window, radius, params.BlockSize)
	if err != nil {
		log.Errorf("Error building window tables: %v", err)
		return
	}

	d, err := denoise.New(src, params, &options.Options{})
	if err != nil {
		log.Errorf("Error constructing filter: %v", err)
		return
	}

	start := time.Now()
	count := 0
	if err := denoise.NewRunner(d).ProcessAll(func(n int, f *plane.Frame) error {
		count++
		return nil
	}); err != nil {
		log.Errorf("Error processing: %v", err)
		return
	}
	elapsed := time.Since(start)
	fmt.Printf("%d frames in %d ms (%.1f ms/frame)\n",
		count, elapsed.Milliseconds(), float64(elapsed.Milliseconds())/float64(count))
}
