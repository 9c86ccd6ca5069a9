// Package route declares named routes and implements the path/query codec
// mapping between a route's (name, params) pair and a URL string.
//
// # Declaring Routes
//
// A route binds a name to an ordered list of path slots, an optional set of
// query parameters, and optionally a navigator policy:
//
//	r, err := route.New("User", "/users/{id}/{tab}",
//		route.Query("sort", "filters..."),
//		route.WithNavigator(navigator.Stack("User", "UserEdit")),
//	)
//
// Path patterns use three slot kinds: "{name}" captures one non-empty
// segment, "{name...}" greedily captures one or more segments into a string
// slice, and anything else is a fixed literal segment. Query declares
// optional parameters, with a "..." suffix marking list-valued ones.
//
// Routes are collected into a Set, which preserves declaration order for URL
// lookup:
//
//	set := route.MustNewSet(r)
//
//	match, params, ok := set.DecodeURL("/users/42/posts?sort=new")
//
// # Encoding Rules
//
// Values are percent-escaped for the reserved characters / ? & = # %. An
// empty string encodes as the sentinel segment "=" so path segments stay
// non-empty, and a dynamic segment that would collide with an upcoming
// literal segment is escaped in place with a leading "=". Decoding strips
// one leading "=" from a segment before percent-decoding, so both rules
// round-trip.
//
// List-valued query parameters join their escaped elements with "/"; a
// present-but-empty list encodes as the literal value "/". A bare key with
// no "=" decodes to the empty string.
//
// # Failure Semantics
//
// Decoding is a lookup, not a validation step: a path that matches no
// pattern, or a segment with malformed percent-encoding, yields a negative
// result rather than an error. Query pairs that fail to decode are skipped
// individually. Errors are reserved for declaration-time misuse (malformed
// patterns, duplicate names).
//
// Compiled match patterns are cached per route, and route tables can be
// declared in YAML and loaded with LoadSet.
package route
