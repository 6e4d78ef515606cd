// Package cache provides the tessellation memoization cache backing
// canvas.WithTessellationCache.
//
// Re-tessellating a path on every Fill/Stroke call is wasted work when the
// same path is drawn unchanged across frames, so Canvas keys a Cache by a
// string encoding of the path's points and fill/stroke attributes and stores the
// resulting triangle list under it. A soft limit bounds memory: once the
// entry count passes the limit, the least-recently-accessed quarter is
// evicted.
//
//	c := cache.New[string, tessellation](256)
//	c.Set(key, result)
//	cached, ok := c.Get(key)
//
// Cache is safe for concurrent use and must not be copied after creation
// (it holds a mutex).
package cache
