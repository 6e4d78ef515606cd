package canvas

import cachepkg "github.com/gogpu/kdcg/internal/cache"

// Option configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	cv := canvas.New()
//
//	// Pre-size the path list and enable a tessellation cache.
//	cv := canvas.New(canvas.WithPathCapacity(64), canvas.WithTessellationCache(256))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	pathCapacity int
	cache        *cachepkg.Cache[string, tessellation]
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		pathCapacity: 8,
	}
}

// WithPathCapacity pre-sizes the Canvas's path-state list.
// Use this when the approximate number of fill/stroke calls per frame
// is known ahead of time, to avoid slice growth.
func WithPathCapacity(n int) Option {
	return func(o *canvasOptions) {
		if n > 0 {
			o.pathCapacity = n
		}
	}
}

// WithTessellationCache enables caching of triangulated output keyed
// by a string encoding of a path's points and fill/stroke attributes, so
// re-triangulating an unchanged path
// (common for static UI chrome) is a cache hit instead of a re-run of
// the fill/stroke algorithms. softLimit bounds the number of cached
// entries; 0 means unlimited.
func WithTessellationCache(softLimit int) Option {
	return func(o *canvasOptions) {
		o.cache = cachepkg.New[string, tessellation](softLimit)
	}
}
