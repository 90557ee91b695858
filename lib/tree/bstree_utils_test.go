package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

func TestOrderViolationValidate(t *testing.T) {
	tree := NewBSTree[int]()
	require.NoError(t, OrderViolationValidate(tree))
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}
	require.NoError(t, OrderViolationValidate(tree))

	corrupted := &bsTree[int]{
		cmp: infra.Comparator[int](infra.DefaultOrderedKeyComparator[int]()),
		root: &bstNode[int]{
			val:   5,
			left:  &bstNode[int]{val: 7},
			right: &bstNode[int]{val: 3},
		},
	}
	err := OrderViolationValidate[int](corrupted)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	require.Contains(t, errs[0].Error(), "inorder index 1, 7 is not less than 5")
	require.Contains(t, errs[1].Error(), "inorder index 2, 5 is not less than 3")

	var es infra.ErrorStack
	require.True(t, errors.As(errs[0], &es))
	require.NotEmpty(t, es.Frames())

	// Equal neighbours break the strict order as well.
	duplicated := &bsTree[int]{
		cmp: corrupted.cmp,
		root: &bstNode[int]{
			val:   5,
			right: &bstNode[int]{val: 5},
		},
	}
	require.Len(t, multierr.Errors(OrderViolationValidate[int](duplicated)), 1)
}

type sizeLiarTree[T any] struct {
	BSTree[T]
}

func (tree sizeLiarTree[T]) Size() int64 {
	return tree.BSTree.Size() + 1
}

func TestSizeViolationValidate(t *testing.T) {
	tree := NewBSTree[string]()
	require.NoError(t, SizeViolationValidate(tree))
	for _, v := range []string{"B", "A", "C"} {
		tree.Insert(v)
	}
	require.NoError(t, SizeViolationValidate(tree))

	err := SizeViolationValidate[string](sizeLiarTree[string]{tree})
	require.Error(t, err)
	require.Equal(t, "[bstree] size violation, size 4 but 3 values", err.Error())
}

func TestDump(t *testing.T) {
	tree := NewBSTree[string]()
	out, err := Dump(tree)
	require.NoError(t, err)
	require.Equal(t, "<empty>", out)

	for _, v := range []string{"D", "A", "B", "F"} {
		tree.Insert(v)
	}
	out, err = Dump(tree)
	require.NoError(t, err)
	t.Log("\n" + out)

	out = pterm.RemoveColorFromString(out)
	prev := -1
	for _, text := range []string{"D", "L: A", "L: <empty>", "R: B", "R: F"} {
		idx := strings.Index(out, text)
		require.Greater(t, idx, prev, text)
		prev = idx
	}
}
