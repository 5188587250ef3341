package sr

import (
	"fmt"

	"github.com/b0tShaman/neuro-sr/data"
)

// Shares splits total across images in proportion to their pixel counts,
// rounding each share down.
func Shares(imgs []*data.Image, total int) []int {
	var pixels int
	for _, im := range imgs {
		pixels += im.Rows * im.Cols
	}

	shares := make([]int, len(imgs))
	if pixels == 0 {
		return shares
	}
	for i, im := range imgs {
		shares[i] = int(int64(im.Rows*im.Cols) * int64(total) / int64(pixels))
	}
	return shares
}

// SampleImages spreads PatchNum over imgs by pixel count, samples each image
// and concatenates the results in image order. Every image is validated
// first; images whose share rounds to zero are then skipped.
func (s *Sampler) SampleImages(imgs []*data.Image) (*PatchSet, error) {
	if len(imgs) == 0 {
		return nil, fmt.Errorf("%w: no images", ErrParameter)
	}
	for i, im := range imgs {
		if err := s.checkImage(im); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
	}

	var out *PatchSet
	for i, share := range Shares(imgs, s.cfg.PatchNum) {
		if share == 0 {
			continue
		}

		sub := *s
		sub.cfg.PatchNum = share
		ps, err := sub.Sample(imgs[i])
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}

		if out == nil {
			out = ps
			continue
		}
		if out, err = out.Append(ps); err != nil {
			return nil, err
		}
	}

	if out == nil {
		return nil, fmt.Errorf("%w: patch num %d too small for %d images", ErrParameter, s.cfg.PatchNum, len(imgs))
	}
	return out, nil
}
