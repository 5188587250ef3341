package sr

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/b0tShaman/neuro-sr/data"
)

// Config holds the numeric sampling parameters.
type Config struct {
	PatchSize int     // Side of the square window in pixels
	PatchNum  int     // Upper bound on the number of patches
	Upscale   float64 // Downscale factor used for the low-resolution proxy (> 1)
	Workers   int     // Extraction goroutines; 0 uses GOMAXPROCS
}

func (c Config) Validate() error {
	if c.PatchSize <= 0 {
		return fmt.Errorf("%w: patch size %d must be positive", ErrParameter, c.PatchSize)
	}
	if c.PatchNum <= 0 {
		return fmt.Errorf("%w: patch num %d must be positive", ErrParameter, c.PatchNum)
	}
	if math.IsNaN(c.Upscale) || math.IsInf(c.Upscale, 0) || c.Upscale <= 1 {
		return fmt.Errorf("%w: upscale %v must be a finite value > 1", ErrParameter, c.Upscale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must not be negative", ErrParameter, c.Workers)
	}
	return nil
}

// workers resolves the effective goroutine count for n locations.
func (c Config) workers(n int) int {
	w := c.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	return max(1, min(w, n))
}

type Option func(*Sampler)

// WithResampler replaces the resampler used for the low-resolution proxy.
func WithResampler(r data.Resampler) Option {
	return func(s *Sampler) {
		s.resampler = r
	}
}

// WithConvolver replaces the convolution used for the gradient maps.
func WithConvolver(c Convolver) Option {
	return func(s *Sampler) {
		s.convolver = c
	}
}

// WithPadding selects the border mode of the default convolver.
func WithPadding(p Padding) Option {
	return func(s *Sampler) {
		s.convolver = DirectConvolver{Padding: p}
	}
}

// WithRand draws coordinate permutations from p instead of the global source.
func WithRand(p Permuter) Option {
	return func(s *Sampler) {
		s.perm = p
	}
}

// WithSeed makes sampling reproducible. The seeded source is not safe for
// concurrent Sample calls on the same Sampler.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.perm = rand.New(rand.NewPCG(seed, seed))
	}
}

func WithWorkers(n int) Option {
	return func(s *Sampler) {
		s.cfg.Workers = n
	}
}

// WithProgress installs a callback invoked after every extracted patch.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Sampler) {
		s.progress = fn
	}
}

// WithLuma sets the RGB weights used for grayscale conversion.
func WithLuma(w data.Luma) Option {
	return func(s *Sampler) {
		s.luma = w
	}
}
