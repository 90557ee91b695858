package tree

import (
	"iter"

	"github.com/anacrolix/generics"

	"github.com/benz9527/xtree/lib/infra"
)

// BSTNode is a read only view of an occupied slot.
// Left and Right return nil for an empty slot.
type BSTNode[T any] interface {
	Val() T
	Left() BSTNode[T]
	Right() BSTNode[T]
}

// BSTreeIterator walks the tree in ascending order of its comparator.
// It is exhausted once Next returns false and can not be restarted.
// Mutating the tree while an iterator is alive leaves the iterator
// in an undefined state.
type BSTreeIterator[T any] interface {
	Next() (T, bool)
}

// BSTree is an unbalanced binary search tree holding unique values.
// It is not thread safe. Callers that share a tree between goroutines
// have to guard all of its methods, including iteration, by themselves.
type BSTree[T any] interface {
	// Insert ignores a value equal to one already present.
	Insert(val T)
	// Delete returns the removed value, or None if no equal value exists.
	Delete(val T) generics.Option[T]
	// Size counts the values by walking the whole tree. O(n).
	Size() int64
	Contains(val T) bool
	Iter() BSTreeIterator[T]
	Values() iter.Seq[T]
	// Foreach is an inorder traversal, stopped once action returns false.
	Foreach(action func(idx int64, val T) bool)
	Root() BSTNode[T]
	// Comparator is the ordering of the tree, with options applied.
	Comparator() infra.Comparator[T]
	Release()
}
