package route

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/navkit/navkit/core/navstate"
)

// emptySentinel keeps encoded path segments non-empty and marks segments
// whose first character must be ignored on decode.
const emptySentinel = "="

// segmentEscaper percent-escapes the characters reserved by the codec.
var segmentEscaper = strings.NewReplacer(
	"%", "%25",
	"/", "%2F",
	"?", "%3F",
	"&", "%26",
	"=", "%3D",
	"#", "%23",
)

func escapeSegment(v string) string {
	if v == "" {
		return emptySentinel
	}
	return segmentEscaper.Replace(v)
}

// decodeSegment strips one leading sentinel and percent-decodes. Malformed
// percent-encoding is a negative result, not an error.
func decodeSegment(seg string) (string, bool) {
	seg = strings.TrimPrefix(seg, emptySentinel)
	v, err := url.PathUnescape(seg)
	if err != nil {
		return "", false
	}
	return v, true
}

// EncodePath encodes the route's path slots from params into a "/"-prefixed
// path with no query component. Missing params encode as empty values. When
// a literal slot follows dynamic slots, any already-emitted dynamic segment
// equal to the literal is escaped in place with a leading sentinel so the
// path stays unambiguous.
func (r *Route) EncodePath(params navstate.Params) string {
	segs := make([]string, 0, len(r.path))
	dynStart := 0
	for _, slot := range r.path {
		switch slot.Kind {
		case SlotLiteral:
			for i := dynStart; i < len(segs); i++ {
				if segs[i] == slot.Name {
					segs[i] = emptySentinel + segs[i]
				}
			}
			segs = append(segs, slot.Name)
			dynStart = len(segs)
		case SlotParam:
			v, _ := params.String(slot.Name)
			segs = append(segs, escapeSegment(v))
		case SlotList:
			vs, _ := params.Strings(slot.Name)
			for _, v := range vs {
				segs = append(segs, escapeSegment(v))
			}
		}
	}
	return "/" + strings.Join(segs, "/")
}

// DecodePath matches path against the route's compiled pattern and extracts
// path params. A non-matching path, or a segment with malformed
// percent-encoding, returns (nil, false).
func (r *Route) DecodePath(path string) (navstate.Params, bool) {
	m := r.pattern().FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := navstate.Params{}
	g := 1
	for _, slot := range r.path {
		switch slot.Kind {
		case SlotParam:
			v, ok := decodeSegment(m[g])
			if !ok {
				return nil, false
			}
			params[slot.Name] = v
			g++
		case SlotList:
			parts := strings.Split(m[g], "/")
			vs := make([]string, 0, len(parts))
			for _, p := range parts {
				v, ok := decodeSegment(p)
				if !ok {
					return nil, false
				}
				vs = append(vs, v)
			}
			params[slot.Name] = vs
			g++
		}
	}
	return params, true
}

// EncodeQuery encodes the route's declared optional params present in
// params as "key=value" pairs joined by "&". A present-but-empty list
// encodes as the literal value "/"; an empty scalar encodes as a bare key.
// Undeclared keys are ignored.
func (r *Route) EncodeQuery(params navstate.Params) string {
	var pairs []string
	for _, q := range r.query {
		if _, ok := params[q.Name]; !ok {
			continue
		}
		key := segmentEscaper.Replace(q.Name)
		if q.List {
			vs, _ := params.Strings(q.Name)
			if len(vs) == 0 {
				pairs = append(pairs, key+"=/")
				continue
			}
			enc := make([]string, len(vs))
			for i, v := range vs {
				enc[i] = escapeSegment(v)
			}
			pairs = append(pairs, key+"="+strings.Join(enc, "/"))
			continue
		}
		v, _ := params.String(q.Name)
		if v == "" {
			pairs = append(pairs, key)
			continue
		}
		pairs = append(pairs, key+"="+segmentEscaper.Replace(v))
	}
	return strings.Join(pairs, "&")
}

// DecodeQuery decodes a query string against the route's declared optional
// params. A bare key decodes to the empty string (or an empty list for
// list-valued params), the literal value "/" decodes to an empty list, and
// pairs that fail to decode are skipped individually.
func (r *Route) DecodeQuery(query string) navstate.Params {
	params := navstate.Params{}
	if query == "" {
		return params
	}
	decls := make(map[string]QueryParam, len(r.query))
	for _, qp := range r.query {
		decls[qp.Name] = qp
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, hasVal := strings.Cut(pair, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			continue
		}
		qp, ok := decls[key]
		if !ok {
			continue
		}
		switch {
		case !hasVal && qp.List:
			params[key] = []string{}
		case !hasVal:
			params[key] = ""
		case qp.List && rawVal == "/":
			params[key] = []string{}
		case qp.List:
			parts := strings.Split(rawVal, "/")
			vs := make([]string, 0, len(parts))
			ok := true
			for _, p := range parts {
				v, good := decodeSegment(p)
				if !good {
					ok = false
					break
				}
				vs = append(vs, v)
			}
			if ok {
				params[key] = vs
			}
		default:
			if v, good := decodeSegment(rawVal); good {
				params[key] = v
			}
		}
	}
	return params
}

// EncodeURL encodes params into a full path?query URL for the route.
func (r *Route) EncodeURL(params navstate.Params) string {
	path := r.EncodePath(params)
	if q := r.EncodeQuery(params); q != "" {
		return path + "?" + q
	}
	return path
}

// DecodeURL splits u on the first "?" (dropping any "#" fragment), matches
// the path, and merges decoded query params under path params; path values
// win on key collision.
func (r *Route) DecodeURL(u string) (navstate.Params, bool) {
	u, _, _ = strings.Cut(u, "#")
	path, query, hasQuery := strings.Cut(u, "?")
	params, ok := r.DecodePath(path)
	if !ok {
		return nil, false
	}
	if !hasQuery || query == "" {
		return params, true
	}
	merged := r.DecodeQuery(query)
	for k, v := range params {
		merged[k] = v
	}
	return merged, true
}

// pattern returns the route's match pattern, compiled once. Scalar slots use
// a non-slash capture group, list slots a greedy capture group.
func (r *Route) pattern() *regexp.Regexp {
	r.compileOnce.Do(func() {
		var b strings.Builder
		b.WriteString("^")
		if len(r.path) == 0 {
			b.WriteString("/")
		}
		for _, slot := range r.path {
			b.WriteString("/")
			switch slot.Kind {
			case SlotLiteral:
				b.WriteString(regexp.QuoteMeta(slot.Name))
			case SlotParam:
				b.WriteString("([^/]+)")
			case SlotList:
				b.WriteString("(.+)")
			}
		}
		b.WriteString("$")
		r.matcher = regexp.MustCompile(b.String())
	})
	return r.matcher
}
