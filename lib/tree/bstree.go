package tree

import (
	"github.com/anacrolix/generics"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/xlog"
)

type bstNode[T any] struct {
	val   T
	left  *bstNode[T]
	right *bstNode[T]
}

func (node *bstNode[T]) Val() T {
	return node.val
}

func (node *bstNode[T]) Left() BSTNode[T] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[T]) Right() BSTNode[T] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *bstNode[T]) isLeaf() bool {
	return node.left == nil && node.right == nil
}

func (node *bstNode[T]) size() int64 {
	if node == nil {
		return 0
	}
	return 1 + node.left.size() + node.right.size()
}

// A slot is the address of either the tree root or a child field of
// a node, so a subtree is replaced by writing through the slot.
// A nil node means an empty slot.
type bsTree[T any] struct {
	root   *bstNode[T]
	cmp    infra.Comparator[T]
	isDesc bool
	logger xlog.XLogger
}

func (tree *bsTree[T]) trace(msg string, val T, fields ...zap.Field) {
	if tree.logger == nil {
		return
	}
	tree.logger.Debug(msg, append([]zap.Field{zap.Any("val", val)}, fields...)...)
}

func (tree *bsTree[T]) Insert(val T) {
	slot := &tree.root
	for *slot != nil {
		node := *slot
		res := tree.cmp(val, node.val)
		if /* equal */ res == 0 {
			tree.trace("insert duplicate ignored", val)
			return
		} else /* less */ if res < 0 {
			slot = &node.left
		} else /* greater */ {
			slot = &node.right
		}
	}
	*slot = &bstNode[T]{val: val}
	tree.trace("insert new node", val)
}

func (tree *bsTree[T]) Delete(val T) generics.Option[T] {
	return tree.delete(&tree.root, val)
}

/*
d1: The node is a leaf. The slot becomes empty.

d2: Only the left child. The slot takes the left subtree.

	  |            |
	 [X]          [L]
	 /     ===>   / \
	[L]
	/ \

d3: Only the right child, symmetric to d2.

d4: Both children. The minimum S of the right subtree is detached
and its value moves into X. X stays in its slot with both subtrees.

	   |                  |
	  [X]                [S]
	  / \     ===>       / \
	[L] [R]            [L] [R]
	    /                  /
	  [S]               (S.right)
	    \
	  (S.right)
*/
func (tree *bsTree[T]) delete(slot **bstNode[T], val T) generics.Option[T] {
	node := *slot
	if node == nil {
		tree.trace("delete not found", val)
		return generics.None[T]()
	}

	res := tree.cmp(val, node.val)
	if /* less */ res < 0 {
		return tree.delete(&node.left, val)
	} else /* greater */ if res > 0 {
		return tree.delete(&node.right, val)
	}

	removed := node.val
	switch {
	case /* d1 */ node.isLeaf():
		*slot = nil
		tree.trace("delete leaf", removed)
	case /* d2 */ node.right == nil:
		*slot = node.left
		node.left = nil
		tree.trace("delete promote left subtree", removed)
	case /* d3 */ node.left == nil:
		*slot = node.right
		node.right = nil
		tree.trace("delete promote right subtree", removed)
	default /* d4 */ :
		succ := tree.deleteMin(&node.right)
		if succ == nil {
			// impossible run to here
			panic( /* debug assertion */ "[bstree] empty right subtree of a node with two children")
		}
		node.val = succ.val
		tree.trace("delete replace by successor", removed, zap.Any("successor", succ.val))
	}
	return generics.Some(removed)
}

// deleteMin detaches the node holding the minimum of the subtree in slot.
// Returns nil only for an empty slot, which callers never pass.
func (tree *bsTree[T]) deleteMin(slot **bstNode[T]) *bstNode[T] {
	node := *slot
	if node == nil {
		return nil
	}
	if node.left != nil {
		return tree.deleteMin(&node.left)
	}
	// A leaf leaves an empty slot behind, otherwise the right subtree
	// moves up.
	*slot = node.right
	node.right = nil
	return node
}

func (tree *bsTree[T]) Size() int64 {
	return tree.root.size()
}

func (tree *bsTree[T]) Contains(val T) bool {
	for aux := tree.root; aux != nil; {
		res := tree.cmp(val, aux.val)
		if res == 0 {
			return true
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return false
}

func (tree *bsTree[T]) Root() BSTNode[T] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[T]) Comparator() infra.Comparator[T] {
	return tree.cmp
}

// Release unlinks all nodes and leaves an empty tree.
func (tree *bsTree[T]) Release() {
	aux := tree.root
	tree.root = nil
	if aux == nil {
		return
	}

	stack := make([]*bstNode[T], 0, 16)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	released := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		r := aux.right
		aux.left, aux.right = nil, nil
		released++
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
	if tree.logger != nil {
		tree.logger.Debug("release", zap.Int64("count", released))
	}
}

type BSTreeOpt[T any] func(*bsTree[T])

// WithBSTreeDesc reverses the comparator, so iteration is descending.
func WithBSTreeDesc[T any]() BSTreeOpt[T] {
	return func(tree *bsTree[T]) {
		tree.isDesc = true
	}
}

// WithBSTreeLogger traces every structural change at debug level.
func WithBSTreeLogger[T any](logger xlog.XLogger) BSTreeOpt[T] {
	return func(tree *bsTree[T]) {
		if logger == nil {
			tree.logger = nil
			return
		}
		tree.logger = logger.Named("bstree")
	}
}

func NewBSTree[T infra.OrderedKey](opts ...BSTreeOpt[T]) BSTree[T] {
	return NewBSTreeFunc[T](infra.Comparator[T](infra.DefaultOrderedKeyComparator[T]()), opts...)
}

// NewBSTreeFunc builds a tree over any type with a total order
// described by cmp. It panics if cmp is nil.
func NewBSTreeFunc[T any](cmp infra.Comparator[T], opts ...BSTreeOpt[T]) BSTree[T] {
	if cmp == nil {
		panic( /* debug assertion */ "[bstree] nil comparator")
	}
	tree := &bsTree[T]{
		cmp:    cmp,
		isDesc: false,
	}
	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	if tree.isDesc {
		tree.cmp = infra.ReverseComparator(cmp)
	}
	return tree
}
