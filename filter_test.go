package steptree_test

import (
	"testing"

	"github.com/steptree/steptree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAllowAll(t *testing.T) {
	t.Parallel()

	f := &steptree.Filter{}
	require.Empty(t, f.Normalize())
	assert.Equal(t, "(allow all)", f.String())

	tree := testTree()
	assert.Len(t, tree.Search(f), tree.Count())
}

func TestFilterFlags(t *testing.T) {
	t.Parallel()

	tree := testTree()

	errored := tree.Search(&steptree.Filter{IsErrored: true})
	assert.Equal(t, []string{"root", "aa", "b", "ba"}, stepsOf(errored))

	succeeded := tree.Search(&steptree.Filter{IsSuccess: true})
	assert.Equal(t, []string{"a", "ab"}, stepsOf(succeeded))

	failedLeaves := tree.Search(&steptree.Filter{IsErrored: true, IsLeaf: true})
	assert.Equal(t, stepsOf(tree.RootCauses()), stepsOf(failedLeaves))
}

func TestFilterQuery(t *testing.T) {
	t.Parallel()

	tree := testTree()

	f := &steptree.Filter{Query: `step == "ab"`}
	require.Empty(t, f.Normalize())

	matches := tree.Search(f)
	require.Len(t, matches, 1)
	assert.Equal(t, "ab", matches[0].Step())
}

func TestFilterQueryEnv(t *testing.T) {
	t.Parallel()

	tree := testTree()

	for _, tc := range []struct {
		query string
		want  []string
	}{
		{`errored && leaf`, []string{"aa", "ba"}},
		{`ok && nested > 0`, []string{"a"}},
		{`input > 4`, []string{"b", "root"}},
		{`reason == "b failed"`, []string{"b"}},
	} {
		f := &steptree.Filter{Query: tc.query}
		require.Empty(t, f.Normalize(), "query %s", tc.query)

		have := stepsOf(tree.Search(f))
		assert.ElementsMatch(t, tc.want, have, "query %s", tc.query)
	}
}

func TestFilterInvalidQuery(t *testing.T) {
	t.Parallel()

	f := &steptree.Filter{Query: `((`}

	errs := f.Normalize()
	require.Len(t, errs, 1)
	assert.Empty(t, f.Query, "invalid query should be dropped")

	// With the query dropped, the filter allows everything.
	tree := testTree()
	assert.Len(t, tree.Search(f), tree.Count())
}

func TestFilterString(t *testing.T) {
	t.Parallel()

	f := steptree.Filter{IsErrored: true, Query: `leaf`}
	assert.Equal(t, "IsErrored Query='leaf'", f.String())
}
