package tree

import (
	"iter"
)

var _ BSTreeIterator[int] = (*bstIterator[int])(nil)

// bstIterator keeps the visited but not yet yielded nodes.
// The top of the stack is always the smallest value not yielded.
type bstIterator[T any] struct {
	unvisited []*bstNode[T]
}

func (it *bstIterator[T]) pushLeftSpine(aux *bstNode[T]) {
	for ; aux != nil; aux = aux.left {
		it.unvisited = append(it.unvisited, aux)
	}
}

func (it *bstIterator[T]) Next() (val T, ok bool) {
	size := len(it.unvisited)
	if size == 0 {
		return val, false
	}
	aux := it.unvisited[size-1]
	it.unvisited[size-1] = nil
	it.unvisited = it.unvisited[:size-1]
	it.pushLeftSpine(aux.right)
	return aux.val, true
}

func (tree *bsTree[T]) Iter() BSTreeIterator[T] {
	it := &bstIterator[T]{
		unvisited: make([]*bstNode[T], 0, 16),
	}
	it.pushLeftSpine(tree.root)
	return it
}

func (tree *bsTree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := tree.Iter()
		for val, ok := it.Next(); ok; val, ok = it.Next() {
			if !yield(val) {
				return
			}
		}
	}
}

func (tree *bsTree[T]) Foreach(action func(idx int64, val T) bool) {
	if action == nil {
		return
	}
	idx := int64(0)
	for val := range tree.Values() {
		if !action(idx, val) {
			return
		}
		idx++
	}
}
