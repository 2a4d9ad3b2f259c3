// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bitmark-inc/boundedvec/fault"
)

// Vec - a vector whose length never exceeds the bound of S
//
// the zero value is an empty vector and is ready to use. A nil *Vec
// reads as an empty vector; operations that would add elements to it
// panic.
type Vec[T any, S Bound] struct {
	items []T
}

// New - an empty vector
func New[T any, S Bound]() *Vec[T, S] {
	return &Vec[T, S]{}
}

// TryFrom - take ownership of items if len(items) <= bound
//
// the slice is not copied; on failure it is left untouched
func TryFrom[T any, S Bound](items []T) (*Vec[T, S], error) {
	if len(items) > BoundOf[S]() {
		return nil, fault.ErrBoundExceeded
	}
	return uncheckedFrom[T, S](items), nil
}

// ForceFrom - wrap items without enforcing the bound
//
// only for trusted internal paths such as reading back values this
// module wrote itself, never for externally supplied data. An over
// bound slice is accepted and a warning naming scope is logged; the
// caller must bring the length back within the bound.
func ForceFrom[T any, S Bound](items []T, scope string) *Vec[T, S] {
	if bound := BoundOf[S](); len(items) > bound {
		if "" == scope {
			scope = "UNKNOWN"
		}
		warnf("length of a bounded vector in scope %s is not respected: %d > %d", scope, len(items), bound)
	}
	return uncheckedFrom[T, S](items)
}

func uncheckedFrom[T any, S Bound](items []T) *Vec[T, S] {
	return &Vec[T, S]{items: items}
}

// Bound - maximum number of elements
func (v *Vec[T, S]) Bound() int {
	return BoundOf[S]()
}

// Len - number of elements
func (v *Vec[T, S]) Len() int {
	if nil == v {
		return 0
	}
	return len(v.items)
}

// IsEmpty - true if there are no elements
func (v *Vec[T, S]) IsEmpty() bool {
	return 0 == v.Len()
}

// At - element at index i, panics if out of range
func (v *Vec[T, S]) At(i int) T {
	if i < 0 || i >= v.Len() {
		fault.Panicf("index (is %d) should be < len (is %d)", i, v.Len())
	}
	return v.items[i]
}

// Set - replace the element at index i, panics if out of range
func (v *Vec[T, S]) Set(i int, element T) {
	if i < 0 || i >= v.Len() {
		fault.Panicf("index (is %d) should be < len (is %d)", i, v.Len())
	}
	v.items[i] = element
}

// Slice - elements lo..hi-1, panics if the range is invalid
//
// the capacity of the result is clipped so appending to it can never
// write into the vector
func (v *Vec[T, S]) Slice(lo int, hi int) []T {
	if lo < 0 || lo > hi {
		fault.Panicf("slice index starts at %d but ends at %d", lo, hi)
	}
	if hi > v.Len() {
		fault.Panicf("range end index %d out of range for slice of length %d", hi, v.Len())
	}
	if nil == v {
		return nil
	}
	return v.items[lo:hi:hi]
}

// AsSlice - read access to the underlying elements
//
// elements may be modified in place but the length cannot be changed
// through the result
func (v *Vec[T, S]) AsSlice() []T {
	if nil == v {
		return nil
	}
	return slices.Clip(v.items)
}

// All - iterate over index, element pairs
func (v *Vec[T, S]) All() iter.Seq2[int, T] {
	return slices.All(v.AsSlice())
}

// Values - iterate over the elements
func (v *Vec[T, S]) Values() iter.Seq[T] {
	return slices.Values(v.AsSlice())
}

// TryPush - append element if the vector is below its bound
func (v *Vec[T, S]) TryPush(element T) error {
	v.mustExist("TryPush")
	if len(v.items) >= BoundOf[S]() {
		return fault.ErrBoundExceeded
	}
	v.items = append(v.items, element)
	return nil
}

// TryInsert - insert element at index, shifting later elements up
//
// the bound is checked first, so a full vector gives an error whatever
// the index; otherwise index > Len() panics
func (v *Vec[T, S]) TryInsert(index int, element T) error {
	v.mustExist("TryInsert")
	if len(v.items) >= BoundOf[S]() {
		return fault.ErrBoundExceeded
	}
	if index < 0 || index > len(v.items) {
		fault.Panicf("insertion index (is %d) should be <= len (is %d)", index, len(v.items))
	}
	v.items = slices.Insert(v.items, index, element)
	return nil
}

// Remove - remove and return the element at index, keeping order
//
// panics if index >= Len()
func (v *Vec[T, S]) Remove(index int) T {
	if index < 0 || index >= v.Len() {
		fault.Panicf("removal index (is %d) should be < len (is %d)", index, v.Len())
	}
	element := v.items[index]
	v.items = slices.Delete(v.items, index, index+1)
	return element
}

// SwapRemove - remove and return the element at index in O(1)
//
// the last element takes its place; panics if index >= Len()
func (v *Vec[T, S]) SwapRemove(index int) T {
	if index < 0 || index >= v.Len() {
		fault.Panicf("swap_remove index (is %d) should be < len (is %d)", index, v.Len())
	}
	element := v.items[index]
	last := len(v.items) - 1
	v.items[index] = v.items[last]

	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	return element
}

// Retain - keep only the elements for which keep returns true
func (v *Vec[T, S]) Retain(keep func(T) bool) {
	if nil == v {
		return
	}
	v.items = slices.DeleteFunc(v.items, func(element T) bool {
		return !keep(element)
	})
}

// TryMutate - consume the vector and edit its elements freely
//
// the result is returned only if it is still within the bound,
// otherwise the edit is discarded and nil, false is returned. The
// receiver is left empty in both cases.
func (v *Vec[T, S]) TryMutate(mutate func(items *[]T)) (*Vec[T, S], bool) {
	items := v.IntoInner()

	mutate(&items)
	if len(items) > BoundOf[S]() {
		return nil, false
	}
	return uncheckedFrom[T, S](items), true
}

// IntoInner - consume the vector and return its elements
//
// the bound no longer applies to the result; use TryFrom to get a
// vector back
func (v *Vec[T, S]) IntoInner() []T {
	if nil == v {
		return nil
	}
	items := v.items
	v.items = nil
	return items
}

// Clone - copy of the vector with the same bound
func (v *Vec[T, S]) Clone() *Vec[T, S] {
	return uncheckedFrom[T, S](slices.Clone(v.AsSlice()))
}

// EqualFunc - element-wise comparison with a plain slice
func (v *Vec[T, S]) EqualFunc(other []T, eq func(T, T) bool) bool {
	return slices.EqualFunc(v.AsSlice(), other, eq)
}

// String - elements and bound, for debugging
func (v *Vec[T, S]) String() string {
	return fmt.Sprintf("BoundedVec(%v, %d)", v.AsSlice(), v.Bound())
}

func (v *Vec[T, S]) mustExist(operation string) {
	if nil == v {
		fault.Panicf("%s on a nil bounded vector", operation)
	}
}

// Equal - compare the elements of two vectors, the bounds may differ
func Equal[T comparable, S1 Bound, S2 Bound](a *Vec[T, S1], b *Vec[T, S2]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

// EqualSlice - compare the elements of a vector with a plain slice
func EqualSlice[T comparable, S Bound](a *Vec[T, S], b []T) bool {
	return slices.Equal(a.AsSlice(), b)
}
