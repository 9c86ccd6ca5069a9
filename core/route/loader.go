package route

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/navkit/navkit/core/navigator"
)

// routeFile is the YAML layout of a route table:
//
//	routes:
//	  - name: Home
//	    path: /
//	    navigator:
//	      kind: tabs
//	      routes: [Home, Post, Profile]
//	  - name: User
//	    path: /users/{id}/{tab}
//	    query: [sort, tags...]
type routeFile struct {
	Routes []routeDecl `yaml:"routes"`
}

type routeDecl struct {
	Name      string         `yaml:"name"`
	Path      string         `yaml:"path"`
	Query     []string       `yaml:"query"`
	Navigator *navigatorDecl `yaml:"navigator"`
}

type navigatorDecl struct {
	Kind   string   `yaml:"kind"`
	Routes []string `yaml:"routes"`
}

// ParseSet builds a Set from YAML route-table data.
func ParseSet(data []byte) (*Set, error) {
	var f routeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse route table: %w", err)
	}
	s, err := NewSet()
	if err != nil {
		return nil, err
	}
	for _, decl := range f.Routes {
		var opts []Option
		if len(decl.Query) > 0 {
			opts = append(opts, Query(decl.Query...))
		}
		if decl.Navigator != nil {
			nav, err := navigatorFromDecl(decl.Name, decl.Navigator)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithNavigator(nav))
		}
		r, err := New(decl.Name, decl.Path, opts...)
		if err != nil {
			return nil, err
		}
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadSet reads a YAML route table from r.
func LoadSet(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}
	return ParseSet(data)
}

// LoadSetFile reads a YAML route table from path.
func LoadSetFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route table %s: %w", path, err)
	}
	return ParseSet(data)
}

func navigatorFromDecl(routeName string, decl *navigatorDecl) (navigator.Navigator, error) {
	switch strings.ToLower(decl.Kind) {
	case "stack":
		return navigator.Stack(decl.Routes...), nil
	case "tabs":
		return navigator.Tabs(decl.Routes...), nil
	}
	return navigator.Navigator{}, fmt.Errorf("%w: %q on route %q", ErrUnknownNavigatorKind, decl.Kind, routeName)
}
