package palette

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"

	"loov.dev/elfmap/internal/f32color"
)

// Registry caches name to color assignments.
//
// The color of a name depends only on the name and the palette,
// so the same name gets the same color in every file and every run.
type Registry struct {
	palette *Palette

	mu    sync.Mutex
	cache map[string]f32color.RGB
}

// NewRegistry creates a registry drawing colors from p.
func NewRegistry(p *Palette) *Registry {
	return &Registry{
		palette: p,
		cache:   make(map[string]f32color.RGB),
	}
}

// Color returns the color for name.
func (r *Registry) Color(name string) f32color.RGB {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cache[name]
	if !ok {
		c = r.palette.At(Index(name, r.palette.Len()))
		r.cache[name] = c
	}
	return c
}

// Len returns the number of names seen so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

// Index hashes name into range [0, size).
func Index(name string, size int) int {
	sum := blake2b.Sum256([]byte(name))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(size))
}
