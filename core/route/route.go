package route

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/navkit/navkit/core/navigator"
)

// SlotKind identifies what a path slot matches.
type SlotKind int

const (
	// SlotParam captures a single non-empty segment into a string param.
	SlotParam SlotKind = iota
	// SlotList greedily captures one or more segments into a string slice.
	SlotList
	// SlotLiteral matches a fixed segment and binds nothing.
	SlotLiteral
)

// Slot is one declared path segment. Name holds the parameter key for param
// and list slots, and the literal text for literal slots.
type Slot struct {
	Kind SlotKind
	Name string
}

// QueryParam declares an optional query parameter.
type QueryParam struct {
	Name string
	List bool
}

// Route binds a name to a path layout, optional query parameters, and an
// optional navigator policy. Construct routes with New; the zero value is
// not usable.
type Route struct {
	name  string
	path  []Slot
	query []QueryParam
	nav   navigator.Navigator

	compileOnce sync.Once
	matcher     *regexp.Regexp
}

// Option configures a Route during creation.
type Option func(*Route) error

// Query declares optional query parameters. A "..." suffix marks a
// list-valued parameter: Query("sort", "tags...").
func Query(names ...string) Option {
	return func(r *Route) error {
		for _, name := range names {
			qp := QueryParam{Name: name}
			if base, ok := strings.CutSuffix(name, "..."); ok {
				qp = QueryParam{Name: base, List: true}
			}
			if qp.Name == "" {
				return fmt.Errorf("%w: empty query parameter on route %q", ErrInvalidPattern, r.name)
			}
			r.query = append(r.query, qp)
		}
		return nil
	}
}

// WithNavigator binds a navigator policy to the route.
func WithNavigator(nav navigator.Navigator) Option {
	return func(r *Route) error {
		r.nav = nav
		return nil
	}
}

// New declares a route. The pattern must start with "/"; see the package
// documentation for the slot syntax. Parameter keys must be unique across
// the path and query declarations.
func New(name, pattern string, opts ...Option) (*Route, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	path, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	r := &Route{name: name, path: path}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	// A query key may shadow a path key (path wins when decoding), but
	// duplicates within a section are declaration mistakes.
	pathKeys := make(map[string]struct{})
	for _, s := range r.path {
		if s.Kind == SlotLiteral {
			continue
		}
		if _, ok := pathKeys[s.Name]; ok {
			return nil, fmt.Errorf("%w: %q in route %q", ErrDuplicateParam, s.Name, name)
		}
		pathKeys[s.Name] = struct{}{}
	}
	queryKeys := make(map[string]struct{})
	for _, q := range r.query {
		if _, ok := queryKeys[q.Name]; ok {
			return nil, fmt.Errorf("%w: %q in route %q", ErrDuplicateParam, q.Name, name)
		}
		queryKeys[q.Name] = struct{}{}
	}
	return r, nil
}

// MustNew is New, panicking on error. Intended for static route tables.
func MustNew(name, pattern string, opts ...Option) *Route {
	r, err := New(name, pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the route's declared name.
func (r *Route) Name() string { return r.name }

// Path returns the declared path slots in order.
func (r *Route) Path() []Slot { return r.path }

// QueryParams returns the declared optional query parameters.
func (r *Route) QueryParams() []QueryParam { return r.query }

// Navigator returns the bound navigator policy; the zero navigator means
// none was declared.
func (r *Route) Navigator() navigator.Navigator { return r.nav }

// ParsePattern parses a path pattern string into slots. "{name}" declares a
// scalar param slot, "{name...}" a list slot, and any other non-empty
// segment a literal. "/" parses to an empty slot list.
func ParsePattern(pattern string) ([]Slot, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q must start with '/'", ErrInvalidPattern, pattern)
	}
	if pattern == "/" {
		return nil, nil
	}
	segs := strings.Split(pattern[1:], "/")
	slots := make([]Slot, 0, len(segs))
	for _, seg := range segs {
		switch {
		case seg == "":
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			key := seg[1 : len(seg)-1]
			kind := SlotParam
			if base, ok := strings.CutSuffix(key, "..."); ok {
				key = base
				kind = SlotList
			}
			if key == "" || strings.ContainsAny(key, "{}") {
				return nil, fmt.Errorf("%w: %q has a malformed parameter segment %q", ErrInvalidPattern, pattern, seg)
			}
			slots = append(slots, Slot{Kind: kind, Name: key})
		case strings.ContainsAny(seg, "{}"):
			return nil, fmt.Errorf("%w: %q has a malformed segment %q", ErrInvalidPattern, pattern, seg)
		default:
			slots = append(slots, Slot{Kind: SlotLiteral, Name: seg})
		}
	}
	return slots, nil
}
