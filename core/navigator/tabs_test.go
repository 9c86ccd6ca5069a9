package navigator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navkit/navkit/core/navigator"
	"github.com/navkit/navkit/core/navstate"
)

func TestTabs_GoTo(t *testing.T) {
	t.Parallel()

	t.Run("matching proposal switches focus without removing tabs", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		home := rt.NewNode("Home", nil)
		post := rt.NewNode("Post", nil)
		profile := rt.NewNode("Profile", nil)
		host := rt.NewNode("Main", nil, home, post, profile)
		profile.Focus()
		require.Equal(t, 2, host.FocusedIndex())

		nav := navigator.Tabs("Home", "Post", "Profile")
		next := nav.Handle(request(host, rt.NewNode("Home", nil)))
		require.NotNil(t, next)

		require.Equal(t, 3, next.Len(), "all tabs survive the switch")
		assert.Same(t, home, next.Stack()[0])
		assert.Same(t, post, next.Stack()[1])
		assert.Same(t, profile, next.Stack()[2])
		assert.Equal(t, 0, next.FocusedIndex())
	})

	t.Run("unseen proposal in the allow-list is appended and focused", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		home := rt.NewNode("Home", nil)
		host := rt.NewNode("Main", nil, home)

		nav := navigator.Tabs("Home", "Profile")
		profile := rt.NewNode("Profile", nil)
		next := nav.Handle(request(host, profile))
		require.NotNil(t, next)

		assert.Equal(t, []string{"Home", "Profile"}, names(next.Stack()))
		assert.Same(t, profile, next.FocusedChild())
	})

	t.Run("refuses proposals outside the allow-list", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		host := rt.NewNode("Main", nil, rt.NewNode("Home", nil))

		nav := navigator.Tabs("Home")
		assert.Nil(t, nav.Handle(request(host, rt.NewNode("Login", nil))))
	})

	t.Run("merge keeps the tab's params under the proposal's", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		post := rt.NewNode("Post", navstate.Params{"id": "7", "scroll": "40"})
		host := rt.NewNode("Main", nil, post)

		nav := navigator.Tabs("Post")
		next := nav.Handle(request(host, rt.NewNode("Post", navstate.Params{"id": "7", "sort": "new"})))
		require.NotNil(t, next)

		scroll, _ := post.Params().String("scroll")
		sort, _ := post.Params().String("sort")
		assert.Equal(t, "40", scroll)
		assert.Equal(t, "new", sort)
	})

	t.Run("merge notifications climb the new branch only", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		post := rt.NewNode("Post", navstate.Params{"id": "7"})
		host := rt.NewNode("Main", nil, post)

		var hostCalls, tabCalls int
		host.Listen(func(*navstate.Node) { hostCalls++ })
		post.Listen(func(*navstate.Node) { tabCalls++ })

		nav := navigator.Tabs("Post")
		next := nav.Handle(request(host, rt.NewNode("Post", navstate.Params{"id": "7", "sort": "new"})))
		require.NotNil(t, next)

		rt.Flush()
		assert.Zero(t, hostCalls, "the replaced node's listeners must not fire")
		assert.Equal(t, 1, tabCalls)
	})
}

func TestTabs_Back(t *testing.T) {
	t.Parallel()

	t.Run("cycles focus forward by one", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		home := rt.NewNode("Home", nil)
		post := rt.NewNode("Post", nil)
		host := rt.NewNode("Main", nil, home, post)
		home.Focus()
		require.Equal(t, 0, host.FocusedIndex())

		nav := navigator.Tabs("Home", "Post")
		next := nav.Handle(request(host, nil))
		require.NotNil(t, next)
		assert.Same(t, post, next.FocusedChild())
	})

	t.Run("refuses on the last tab", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		home := rt.NewNode("Home", nil)
		post := rt.NewNode("Post", nil)
		host := rt.NewNode("Main", nil, home, post)
		post.Focus()

		nav := navigator.Tabs("Home", "Post")
		assert.Nil(t, nav.Handle(request(host, nil)))
	})

	t.Run("refuses when empty", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		host := rt.NewNode("Main", nil)

		nav := navigator.Tabs("Home")
		assert.Nil(t, nav.Handle(request(host, nil)))
	})
}
