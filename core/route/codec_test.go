package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navkit/navkit/core/navstate"
	"github.com/navkit/navkit/core/route"
)

func TestRoute_EncodePath(t *testing.T) {
	t.Parallel()

	t.Run("encodes scalar slots in declared order", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/users/{id}/{tab}")
		got := r.EncodePath(navstate.Params{"id": "42", "tab": "posts"})
		assert.Equal(t, "/users/42/posts", got)
	})

	t.Run("escapes reserved characters", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Search", "/search/{q}")
		got := r.EncodePath(navstate.Params{"q": "a/b?c&d=e#f%g"})
		assert.Equal(t, "/search/a%2Fb%3Fc%26d%3De%23f%25g", got)
	})

	t.Run("empty string becomes the sentinel segment", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/{userId}/{tab}")
		got := r.EncodePath(navstate.Params{"userId": "", "tab": "posts"})
		assert.Equal(t, "/=/posts", got)
	})

	t.Run("list slots join elements with slashes", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Docs", "/docs/{path...}")
		got := r.EncodePath(navstate.Params{"path": []string{"guides", "intro"}})
		assert.Equal(t, "/docs/guides/intro", got)
	})

	t.Run("dynamic segment colliding with an upcoming literal is escaped in place", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Compare", "/diff/{refs...}/files/{name}")
		got := r.EncodePath(navstate.Params{
			"refs": []string{"main", "files"},
			"name": "README",
		})
		assert.Equal(t, "/diff/main/=files/files/README", got)
	})
}

func TestRoute_DecodePath(t *testing.T) {
	t.Parallel()

	t.Run("extracts scalar params", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/users/{id}/{tab}")
		params, ok := r.DecodePath("/users/42/posts")
		require.True(t, ok)
		id, _ := params.String("id")
		tab, _ := params.String("tab")
		assert.Equal(t, "42", id)
		assert.Equal(t, "posts", tab)
	})

	t.Run("non-matching path is a negative result", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/users/{id}")
		_, ok := r.DecodePath("/posts/42")
		assert.False(t, ok)
	})

	t.Run("malformed percent-encoding is a negative result", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/users/{id}")
		_, ok := r.DecodePath("/users/%zz")
		assert.False(t, ok)
	})

	t.Run("greedy list capture with trailing scalar", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Docs", "/docs/{path...}/{page}")
		params, ok := r.DecodePath("/docs/guides/intro/3")
		require.True(t, ok)
		path, _ := params.Strings("path")
		page, _ := params.String("page")
		assert.Equal(t, []string{"guides", "intro"}, path)
		assert.Equal(t, "3", page)
	})
}

func TestRoute_PathRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("empty string param round-trips through the sentinel", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/{userId}/{tab}")
		in := navstate.Params{"userId": "", "tab": "posts"}
		encoded := r.EncodePath(in)
		require.Contains(t, encoded, "/=/")

		out, ok := r.DecodePath(encoded)
		require.True(t, ok)
		userID, _ := out.String("userId")
		tab, _ := out.String("tab")
		assert.Equal(t, "", userID)
		assert.Equal(t, "posts", tab)
	})

	t.Run("list element equal to a following literal round-trips", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Compare", "/diff/{refs...}/files/{name}")
		in := navstate.Params{"refs": []string{"files", "main"}, "name": "go.mod"}
		out, ok := r.DecodePath(r.EncodePath(in))
		require.True(t, ok)
		refs, _ := out.Strings("refs")
		name, _ := out.String("name")
		assert.Equal(t, []string{"files", "main"}, refs)
		assert.Equal(t, "go.mod", name)
	})

	t.Run("reserved characters round-trip", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Search", "/search/{q}")
		in := navstate.Params{"q": "50% =true?&yes#/no"}
		out, ok := r.DecodePath(r.EncodePath(in))
		require.True(t, ok)
		q, _ := out.String("q")
		assert.Equal(t, "50% =true?&yes#/no", q)
	})

	t.Run("value equal to the bare sentinel round-trips", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Raw", "/raw/{v}")
		in := navstate.Params{"v": "="}
		encoded := r.EncodePath(in)
		assert.Equal(t, "/raw/%3D", encoded)
		out, ok := r.DecodePath(encoded)
		require.True(t, ok)
		v, _ := out.String("v")
		assert.Equal(t, "=", v)
	})
}

func TestRoute_Query(t *testing.T) {
	t.Parallel()

	t.Run("encodes declared params only", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("sort", "tags..."))
		got := r.EncodeQuery(navstate.Params{
			"sort":    "new",
			"tags":    []string{"go", "a/b"},
			"ignored": "x",
		})
		assert.Equal(t, "sort=new&tags=go/a%2Fb", got)
	})

	t.Run("empty scalar encodes as a bare key", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("sort"))
		assert.Equal(t, "sort", r.EncodeQuery(navstate.Params{"sort": ""}))
	})

	t.Run("present empty list encodes as a slash", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("tags..."))
		assert.Equal(t, "tags=/", r.EncodeQuery(navstate.Params{"tags": []string{}}))
	})

	t.Run("absent params are omitted", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("sort", "tags..."))
		assert.Equal(t, "", r.EncodeQuery(nil))
	})

	t.Run("bare key decodes to empty string", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("sort"))
		params := r.DecodeQuery("sort")
		v, ok := params.String("sort")
		require.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("slash value decodes to an empty list", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("tags..."))
		params := r.DecodeQuery("tags=/")
		tags, ok := params.Strings("tags")
		require.True(t, ok)
		assert.Empty(t, tags)
	})

	t.Run("failing pair is skipped without aborting the query", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("sort", "page"))
		params := r.DecodeQuery("sort=%zz&page=2")
		_, hasSort := params.String("sort")
		page, hasPage := params.String("page")
		assert.False(t, hasSort)
		require.True(t, hasPage)
		assert.Equal(t, "2", page)
	})

	t.Run("query round-trips", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Feed", "/feed", route.Query("sort", "tags..."))
		in := navstate.Params{"sort": "a=b&c", "tags": []string{"x y", ""}}
		out := r.DecodeQuery(r.EncodeQuery(in))
		sort, _ := out.String("sort")
		tags, _ := out.Strings("tags")
		assert.Equal(t, "a=b&c", sort)
		assert.Equal(t, []string{"x y", ""}, tags)
	})
}

func TestRoute_URL(t *testing.T) {
	t.Parallel()

	t.Run("joins path and query on a question mark", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/users/{id}", route.Query("tab"))
		got := r.EncodeURL(navstate.Params{"id": "42", "tab": "posts"})
		assert.Equal(t, "/users/42?tab=posts", got)
	})

	t.Run("drops fragments and merges query under path params", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("User", "/users/{id}", route.Query("id", "tab"))
		params, ok := r.DecodeURL("/users/42?id=99&tab=posts#section")
		require.True(t, ok)
		id, _ := params.String("id")
		tab, _ := params.String("tab")
		assert.Equal(t, "42", id, "path value must win on key collision")
		assert.Equal(t, "posts", tab)
	})

	t.Run("root pattern matches only the bare slash", func(t *testing.T) {
		t.Parallel()

		r := route.MustNew("Home", "/")
		_, ok := r.DecodePath("/")
		assert.True(t, ok)
		_, ok = r.DecodePath("/x")
		assert.False(t, ok)
	})
}
