package raaga

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors returned by registry operations.
var (
	ErrUnknownRaaga = errors.New("raaga: unknown raaga")
	ErrEmptyName    = errors.New("raaga: raaga name must not be empty")
	ErrEmptyScale   = errors.New("raaga: scale must contain at least one swara")
)

// Scale is an immutable named raaga: the ordered set of permitted semitone
// offsets within one octave span (0 through 12, where 12 is the octave Sa).
type Scale struct {
	name    string
	offsets []int
}

// Name returns the registered (lower-cased) raaga name.
func (s Scale) Name() string {
	return s.name
}

// Offsets returns a copy of the permitted offsets in definition order.
func (s Scale) Offsets() []int {
	out := make([]int, len(s.offsets))
	copy(out, s.offsets)
	return out
}

// Snap quantizes an integer semitone onto the scale. The octave-relative
// offset is matched against the permitted degrees by absolute distance,
// keeping the first minimal-distance candidate in definition order, and the
// original octave is preserved.
func (s Scale) Snap(semitone int) int {
	rel := floorMod(semitone, 12)

	best := s.offsets[0]
	bestDist := absInt(rel - best)
	for _, offset := range s.offsets[1:] {
		if d := absInt(rel - offset); d < bestDist {
			best = offset
			bestDist = d
		}
	}

	return 12*floorDiv(semitone, 12) + best
}

// Registry holds named raagas. It is not safe for concurrent mutation;
// define all raagas before starting a tracking session.
type Registry struct {
	raagas map[string]Scale
}

// NewRegistry returns a registry pre-populated with the built-in raagas.
func NewRegistry() *Registry {
	r := &Registry{raagas: make(map[string]Scale)}

	builtins := map[string][]string{
		"bhairav":  {"Sa", "komal Re", "Ga", "Ma", "Pa", "komal Dha", "Ni", "Sa'"},
		"bhairavi": {"Sa", "komal Re", "komal Ga", "Ma", "Pa", "komal Dha", "komal Ni", "Sa'"},
		"bhupali":  {"Sa", "Re", "Ga", "Pa", "Dha", "Sa'"},
		"malkauns": {"Sa", "komal Ga", "Ma", "komal Dha", "komal Ni", "Sa'"},
		"asavari":  {"Sa", "Re", "komal Ga", "Ma", "Pa", "komal Dha", "komal Ni", "Sa'"},
	}
	for name, swaras := range builtins {
		if err := r.Define(name, swaras); err != nil {
			panic(fmt.Sprintf("raaga: built-in %q: %v", name, err))
		}
	}

	return r
}

// Define registers a raaga under a case-normalized name, resolving every
// swara eagerly and overwriting any prior raaga of the same name. Duplicate
// offsets are dropped, preserving first-occurrence order.
func (r *Registry) Define(name string, swaras []string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ErrEmptyName
	}
	if len(swaras) == 0 {
		return ErrEmptyScale
	}

	offsets := make([]int, 0, len(swaras))
	seen := make(map[int]bool, len(swaras))
	for _, swara := range swaras {
		offset, ok := SwaraToSemitone(swara)
		if !ok {
			return fmt.Errorf("raaga: unknown swara %q in raaga %q", swara, name)
		}
		if seen[offset] {
			continue
		}
		seen[offset] = true
		offsets = append(offsets, offset)
	}

	r.raagas[key] = Scale{name: key, offsets: offsets}

	return nil
}

// Scale returns the raaga registered under name (case-insensitive).
func (r *Registry) Scale(name string) (Scale, error) {
	s, ok := r.raagas[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scale{}, fmt.Errorf("%w: %q", ErrUnknownRaaga, name)
	}
	return s, nil
}

// Offsets returns the permitted offsets of the named raaga in definition order.
func (r *Registry) Offsets(name string) ([]int, error) {
	s, err := r.Scale(name)
	if err != nil {
		return nil, err
	}
	return s.Offsets(), nil
}

// Names returns all registered raaga names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.raagas))
	for name := range r.raagas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// floorMod returns the non-negative remainder of a modulo n.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// floorDiv returns a/n rounded toward negative infinity.
func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
