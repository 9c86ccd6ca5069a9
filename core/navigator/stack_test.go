package navigator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navkit/navkit/core/navigator"
	"github.com/navkit/navkit/core/navstate"
)

// identityByNameAndID stands in for the engine's encoded-path identity: two
// nodes are the same logical entry when their name and "id" param agree.
func identityByNameAndID(n *navstate.Node) string {
	id, _ := n.Params().String("id")
	return fmt.Sprintf("%s|%s", n.Name(), id)
}

func request(node, proposed *navstate.Node) navigator.Request {
	return navigator.Request{
		Proposed: proposed,
		Node:     node,
		Identity: identityByNameAndID,
	}
}

func names(stack []*navstate.Node) []string {
	out := make([]string, len(stack))
	for i, c := range stack {
		out[i] = c.Name()
	}
	return out
}

func TestStack_Push(t *testing.T) {
	t.Parallel()

	t.Run("appends an unseen proposal and focuses it", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		login := rt.NewNode("Login", nil)
		host := rt.NewNode("Auth", nil, login)

		nav := navigator.Stack("Login", "LoginModal")
		modal := rt.NewNode("LoginModal", nil)
		next := nav.Handle(request(host, modal))
		require.NotNil(t, next)

		assert.Equal(t, []string{"Login", "LoginModal"}, names(next.Stack()))
		assert.Same(t, modal, next.FocusedChild())
		assert.Same(t, login, next.Stack()[0], "the existing entry is carried over, not copied")
	})

	t.Run("matching proposal is merged and promoted to the top", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		a := rt.NewNode("Page", navstate.Params{"id": "a", "scroll": "120"})
		b := rt.NewNode("Page", navstate.Params{"id": "b"})
		host := rt.NewNode("Main", nil, a, b)

		nav := navigator.Stack("Page")
		next := nav.Handle(request(host, rt.NewNode("Page", navstate.Params{"id": "a", "tab": "info"})))
		require.NotNil(t, next)

		require.Equal(t, 1, next.Len(), "entries above the match are truncated")
		require.Same(t, a, next.Stack()[0])
		scroll, _ := a.Params().String("scroll")
		tab, _ := a.Params().String("tab")
		assert.Equal(t, "120", scroll, "existing params survive the merge")
		assert.Equal(t, "info", tab)
	})

	t.Run("refuses proposals outside the allow-list", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		host := rt.NewNode("Main", nil, rt.NewNode("Home", nil))

		nav := navigator.Stack("Home")
		assert.Nil(t, nav.Handle(request(host, rt.NewNode("Settings", nil))))
	})

	t.Run("merge notifications climb the new branch only", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		existing := rt.NewNode("Page", navstate.Params{"id": "a"})
		host := rt.NewNode("Main", nil, existing)

		var hostCalls, childCalls int
		host.Listen(func(*navstate.Node) { hostCalls++ })
		existing.Listen(func(*navstate.Node) { childCalls++ })

		nav := navigator.Stack("Page")
		next := nav.Handle(request(host, rt.NewNode("Page", navstate.Params{"id": "a", "tab": "info"})))
		require.NotNil(t, next)

		rt.Flush()
		assert.Zero(t, hostCalls, "the replaced node's listeners must not fire")
		assert.Equal(t, 1, childCalls)
	})

	t.Run("proposal carrying an initial stack replaces the match's children", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		existing := rt.NewNode("Section", navstate.Params{"id": "s"}, rt.NewNode("Old", nil))
		host := rt.NewNode("Main", nil, existing)

		fresh := rt.NewNode("New", nil)
		proposal := rt.NewNode("Section", navstate.Params{"id": "s"}, fresh)

		nav := navigator.Stack("Section")
		next := nav.Handle(request(host, proposal))
		require.NotNil(t, next)
		require.Equal(t, 1, existing.Len())
		assert.Same(t, fresh, existing.Stack()[0])
	})
}

func TestStack_Back(t *testing.T) {
	t.Parallel()

	t.Run("pops the top entry", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		login := rt.NewNode("Login", nil)
		modal := rt.NewNode("LoginModal", nil)
		host := rt.NewNode("Auth", nil, login, modal)

		nav := navigator.Stack("Login", "LoginModal")
		next := nav.Handle(request(host, nil))
		require.NotNil(t, next)
		assert.Equal(t, []string{"Login"}, names(next.Stack()))
		assert.Same(t, login, next.FocusedChild())
	})

	t.Run("refuses with one entry so the request bubbles", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		host := rt.NewNode("Auth", nil, rt.NewNode("Login", nil))

		nav := navigator.Stack("Login")
		assert.Nil(t, nav.Handle(request(host, nil)))
	})

	t.Run("refuses when empty", func(t *testing.T) {
		t.Parallel()

		rt := navstate.NewRuntime()
		host := rt.NewNode("Auth", nil)

		nav := navigator.Stack("Login")
		assert.Nil(t, nav.Handle(request(host, nil)))
	})
}

func TestCustom(t *testing.T) {
	t.Parallel()

	rt := navstate.NewRuntime()
	host := rt.NewNode("Main", nil)

	var seen *navstate.Node
	nav := navigator.Custom(func(req navigator.Request) *navstate.Node {
		seen = req.Proposed
		return nil
	})
	assert.Equal(t, navigator.KindCustom, nav.Kind())

	proposal := rt.NewNode("Anything", nil)
	assert.Nil(t, nav.Handle(request(host, proposal)))
	assert.Same(t, proposal, seen)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", navigator.KindNone.String())
	assert.Equal(t, "stack", navigator.KindStack.String())
	assert.Equal(t, "tabs", navigator.KindTabs.String())
	assert.Equal(t, "custom", navigator.KindCustom.String())
	assert.True(t, navigator.Navigator{}.IsZero())
	assert.False(t, navigator.Stack().IsZero())
}
