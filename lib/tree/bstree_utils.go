package tree

import (
	"fmt"

	"github.com/pterm/pterm"
	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

// bstree rule validation utilities.

// Inorder traversal to validate that every adjacent pair of values
// is strictly ascending by the tree comparator. That is equivalent to
// the left < node < right rule over every subtree.
// All violations are reported, not only the first one.
func OrderViolationValidate[T any](tree BSTree[T]) error {
	var aux BSTNode[T] = tree.Root()
	if aux == nil {
		return nil
	}
	cmp := tree.Comparator()

	stack := make([]BSTNode[T], 0, 16)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	var (
		merr error
		prev BSTNode[T]
		idx  int64
	)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if prev != nil && cmp(prev.Val(), aux.Val()) >= 0 {
			merr = multierr.Append(merr, infra.NewErrorStack(
				fmt.Sprintf("[bstree] order violation at inorder index %d, %v is not less than %v", idx, prev.Val(), aux.Val()),
			))
		}
		prev = aux
		idx++
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return merr
}

// SizeViolationValidate cross checks the recursive size against the
// number of values the iterator yields.
func SizeViolationValidate[T any](tree BSTree[T]) error {
	count := int64(0)
	for range tree.Values() {
		count++
	}
	if size := tree.Size(); size != count {
		return infra.NewErrorStack(fmt.Sprintf("[bstree] size violation, size %d but %d values", size, count))
	}
	return nil
}

const emptySlotText = "<empty>"

/*
Dump renders the structure for debugging, it is not a stable format.

	└─┬D
	  ├─┬L: A
	  │ ├──L: <empty>
	  │ └──R: B
	  └──R: F
*/
func Dump[T any](tree BSTree[T]) (string, error) {
	root := tree.Root()
	if root == nil {
		return emptySlotText, nil
	}
	return pterm.DefaultTree.
		WithRoot(pterm.TreeNode{Children: []pterm.TreeNode{dumpNode(root, "")}}).
		Srender()
}

func dumpNode[T any](node BSTNode[T], label string) pterm.TreeNode {
	if node == nil {
		return pterm.TreeNode{Text: label + emptySlotText}
	}
	res := pterm.TreeNode{Text: label + fmt.Sprint(node.Val())}
	l, r := node.Left(), node.Right()
	if l == nil && r == nil {
		return res
	}
	res.Children = []pterm.TreeNode{
		dumpNode(l, "L: "),
		dumpNode(r, "R: "),
	}
	return res
}
