package route

import (
	"fmt"

	"github.com/navkit/navkit/core/navstate"
)

// Set is an ordered route registry. Declaration order matters: DecodeURL
// tries each route's pattern in the order routes were added and returns the
// first structural match.
type Set struct {
	order  []*Route
	byName map[string]*Route
}

// NewSet builds a registry from the given routes. Route names must be
// unique.
func NewSet(routes ...*Route) (*Set, error) {
	s := &Set{byName: make(map[string]*Route, len(routes))}
	for _, r := range routes {
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNewSet is NewSet, panicking on error. Intended for static route
// tables.
func MustNewSet(routes ...*Route) *Set {
	s, err := NewSet(routes...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add appends a route to the registry.
func (s *Set) Add(r *Route) error {
	if _, ok := s.byName[r.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, r.name)
	}
	s.byName[r.name] = r
	s.order = append(s.order, r)
	return nil
}

// Get returns the route registered under name.
func (s *Set) Get(name string) (*Route, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Routes returns the registered routes in declaration order.
func (s *Set) Routes() []*Route {
	out := make([]*Route, len(s.order))
	copy(out, s.order)
	return out
}

// EncodePath encodes params for the named route. The second return is false
// when the name is not registered.
func (s *Set) EncodePath(name string, params navstate.Params) (string, bool) {
	r, ok := s.byName[name]
	if !ok {
		return "", false
	}
	return r.EncodePath(params), true
}

// EncodeURL encodes params into a full URL for the named route.
func (s *Set) EncodeURL(name string, params navstate.Params) (string, bool) {
	r, ok := s.byName[name]
	if !ok {
		return "", false
	}
	return r.EncodeURL(params), true
}

// DecodeURL tries every registered route in declaration order and returns
// the first whose pattern matches, along with the decoded params. A miss is
// a normal negative result.
func (s *Set) DecodeURL(u string) (*Route, navstate.Params, bool) {
	for _, r := range s.order {
		if params, ok := r.DecodeURL(u); ok {
			return r, params, true
		}
	}
	return nil, nil, false
}
