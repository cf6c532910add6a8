package persona

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrAlreadyExists is returned by Register when the key is already taken.
var ErrAlreadyExists = errors.New("persona already exists")

// Persona is a named character profile. The description is the free-text
// instruction block handed to the model as priming context.
type Persona struct {
	Key         string
	Description string
	Aliases     []string
}

// Display returns the user-facing form of a persona key.
func Display(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// Registry holds all known personas, keyed case-insensitively. Profiles
// can be added at runtime via Register (the define-character path).
type Registry struct {
	mu         sync.RWMutex
	personas   map[string]Persona
	defaultKey string
}

func NewRegistry(defaultKey string, profiles []Persona) *Registry {
	r := &Registry{
		personas:   make(map[string]Persona, len(profiles)),
		defaultKey: strings.ToLower(defaultKey),
	}
	for _, p := range profiles {
		key := strings.ToLower(p.Key)
		p.Key = key
		r.personas[key] = p
	}
	return r
}

// Lookup returns the persona for key, or the default persona if the key
// is unknown. It never fails; callers can rely on getting a usable
// profile back.
func (r *Registry) Lookup(key string) Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.personas[strings.ToLower(key)]; ok {
		return p
	}
	return r.personas[r.defaultKey]
}

// Has reports whether key names a registered persona.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.personas[strings.ToLower(key)]
	return ok
}

// Register adds a new persona whose alias set is just the key itself.
// Returns ErrAlreadyExists if the key is taken (case-insensitive).
func (r *Registry) Register(key, description string) error {
	lower := strings.ToLower(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.personas[lower]; ok {
		return ErrAlreadyExists
	}
	r.personas[lower] = Persona{
		Key:         lower,
		Description: description,
		Aliases:     []string{lower},
	}
	return nil
}

// All returns every registered persona, sorted by display name. The
// slice is rebuilt per call so runtime registrations show up.
func (r *Registry) All() []Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Persona, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return Display(out[i].Key) < Display(out[j].Key)
	})
	return out
}

// Names returns the sorted display names of all registered personas.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = Display(p.Key)
	}
	return names
}
