package fonts

import (
	"sync"

	"github.com/laser-pdf/laser-pdf/pkg/errors"
)

// Registry resolves family names to fonts. A new registry always contains
// the embedded Go Regular and Go Bold fonts; documents may register
// additional fonts loaded from disk.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*Font
	order []string
}

// NewRegistry returns a registry seeded with the embedded fonts.
func NewRegistry() *Registry {
	r := &Registry{fonts: make(map[string]*Font)}
	r.Register(Regular())
	r.Register(Bold())
	return r
}

// Register adds a font under its family name, replacing any previous entry.
func (r *Registry) Register(f *Font) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fonts[f.family]; !ok {
		r.order = append(r.order, f.family)
	}
	r.fonts[f.family] = f
}

// Resolve returns the font registered under family.
func (r *Registry) Resolve(family string) (*Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[family]
	if !ok {
		return nil, errors.New(errors.ErrCodeFontNotFound, "font family %q is not registered", family)
	}
	return f, nil
}

// Default returns the registry's fallback font (Go Regular).
func (r *Registry) Default() *Font {
	f, _ := r.Resolve(FamilyRegular)
	return f
}

// All returns the registered fonts in registration order, for sinks that
// need to embed every font a document might reference.
func (r *Registry) All() []*Font {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Font, 0, len(r.order))
	for _, fam := range r.order {
		out = append(out, r.fonts[fam])
	}
	return out
}
