package pathbuilder

import "sync"

const (
	defaultCap = 8  // most validation paths are shallower than this
	maxPoolCap = 64 // don't pool excessively deep paths
)

var builderPool = sync.Pool{
	New: func() any {
		return &Builder{segments: make([]string, 0, defaultCap)}
	},
}

// Get retrieves a Builder from the pool, reset and ready to use.
func Get() *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset()
	return b
}

// Put returns a Builder to the pool if it isn't oversized.
func Put(b *Builder) {
	if b == nil || cap(b.segments) > maxPoolCap {
		return
	}
	builderPool.Put(b)
}
