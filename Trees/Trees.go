package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Map represents an ordered associative container with unique keys,
// implemented using a binary search tree. Keys are ordered by <; there are no
// custom comparators and no duplicate keys. Receivers returning an Iterator
// give End when the requested element doesn't exist, receivers returning an
// error give a *KeyNotFoundError in that case; which one a method uses is
// part of its contract below. If an implementation didn't specify anything
// special, then the implemented receivers follow the behaviors defined here.
// D denotes the height of the tree; for the AVL implementation D is
// O(log n) in the worst case.
type Map[K cmp.Ordered, V any, S constraints.Unsigned] interface {
	//Put binds k to v. Returns the position of the element under k and true
	//if a new element was made; an element that already existed is returned
	//unchanged with false.
	Put(k K, v V) (Iterator[K, V, S], bool)
	//GetOrPut returns a pointer to the value under k, first binding k to the
	//zero value of V if k is absent. The pointer aliases the container's
	//storage and mustn't be used after a later insertion.
	GetOrPut(k K) *V
	//Get returns a pointer to the value under k, nil when k is absent. Same
	//aliasing rule as GetOrPut.
	Get(k K) *V
	//At returns the value under k; fails with *KeyNotFoundError when k is
	//absent.
	At(k K) (V, error)
	//Find the position of the element under k, End when k is absent.
	Find(k K) Iterator[K, V, S]
	//Count the elements under k. Keys are unique so this is 0 or 1.
	Count(k K) uint
	//Has element under key k. It is encouraged to use Has instead of the
	//second return values of other methods for the purposes of checking if
	//some key exists, as Has should be optimized for this purpose in
	//implementations.
	Has(k K) bool
	//Del removes the element under k. Returning true if an element was
	//removed, false when k was absent, in which case the container is left
	//structurally unchanged.
	Del(k K) bool
	//Erase removes the element at position it, returning the position of the
	//element that follows it in key order (End when there is none). Fails
	//with *KeyNotFoundError when it doesn't denote an element.
	Erase(it Iterator[K, V, S]) (Iterator[K, V, S], error)
	//Clear removes all elements, resetting to the empty state.
	Clear()
	//Size of the container.
	Size() uint
	//Empty is true when Size()==0.
	Empty() bool
	//Successor returns the position of the smallest key greater than k, End
	//when there is none. k itself doesn't have to be in the container.
	Successor(k K) Iterator[K, V, S]
	//Predecessor returns the position of the greatest key less than k, End
	//when there is none.
	Predecessor(k K) Iterator[K, V, S]
	//Begin is the position of the least element, equal to End when empty.
	Begin() Iterator[K, V, S]
	//End is the past-the-last position. It is never dereferenceable, but
	//Prev from it steps to the greatest element, which is what makes reverse
	//traversal from the end work.
	End() Iterator[K, V, S]
	//Last is the position of the greatest element, End when empty.
	Last() Iterator[K, V, S]
	//InOrder returns A closure function f acting like an iterator. f gives
	//elements in ascending key order. Calling f is like calling "Next()" of
	//iterators: k, v, valid=f(). k and v are meaningful only if valid is
	//true. When valid==false, then f is exhausted. valid can't turn true
	//after it first became false. The container must not be structurally
	//modified during the iteration of f.
	InOrder() func() (K, *V, bool)
	//ReverseOrder is InOrder in descending key order.
	ReverseOrder() func() (K, *V, bool)
	//Corrupt returns whether the container has corrupt structures, when the
	//value at some node violates the properties of that specific
	//implementation. A healthy container always gives false.
	Corrupt() bool
}
