package denoise

import (
	"github.com/vidfilter/dfttest-go/plane"
	"github.com/vidfilter/dfttest-go/util"
)

// PadSize rounds size up to a multiple of blockSize and adds the border
// margin 2*max(blockSize-blockStep, blockStep), so that every sliding block
// stays inside the padded plane and every output pixel is covered.
func PadSize(size int, blockSize int, blockStep int) int {
	if rem := size % blockSize; rem != 0 {
		size += blockSize - rem
	}
	return size + 2*util.Max(blockSize-blockStep, blockStep)
}

// PadCount is the number of block positions stepping by blockStep across
// the padded size.
func PadCount(size int, blockSize int, blockStep int) int {
	return (PadSize(size, blockSize, blockStep)-blockSize)/blockStep + 1
}

// reflectPad copies src into the centre of dst (a padded plane of
// PadSize(width) x PadSize(height)) and fills the margins by reflecting
// about the first/last valid row and column: the sample at offset k outside
// the valid region equals the one at 2*boundary-k inside it.
func reflectPad[T plane.Sample](dst []T, src []T, width int, height int, stride int, blockSize int, blockStep int) {
	padW := PadSize(width, blockSize, blockStep)
	padH := PadSize(height, blockSize, blockStep)

	offY := (padH - height) / 2
	offX := (padW - width) / 2

	for y := 0; y < height; y++ {
		copy(dst[(offY+y)*padW+offX:], src[y*stride:y*stride+width])
	}

	// left and right margins
	for y := offY; y < offY+height; y++ {
		line := dst[y*padW : (y+1)*padW]

		for x := 0; x < offX; x++ {
			line[x] = line[2*offX-x]
		}

		for x := offX + width; x < padW; x++ {
			line[x] = line[2*(offX+width)-2-x]
		}
	}

	// top margin
	for y := 0; y < offY; y++ {
		copy(dst[y*padW:(y+1)*padW], dst[(2*offY-y)*padW:(2*offY-y+1)*padW])
	}

	// bottom margin
	for y := offY + height; y < padH; y++ {
		sy := 2*(offY+height) - 2 - y
		copy(dst[y*padW:(y+1)*padW], dst[sy*padW:(sy+1)*padW])
	}
}
