// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package sgf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainAllocator(t *testing.T) {
	t.Parallel()

	alloc := NewPlainAllocator()
	a := alloc.Allocate()
	b := alloc.Allocate()
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotEqual(t, a, b)
	alloc.Deallocate(a)
}

func TestTrackingAllocator(t *testing.T) {
	t.Parallel()

	alloc := NewTrackingAllocator()
	a := alloc.Allocate()
	b := alloc.Allocate()
	require.Equal(t, 2, alloc.NumAllocated())

	alloc.Deallocate(a)
	require.Equal(t, 1, alloc.NumAllocated())

	// Releasing the same node twice must not disturb the registry.
	alloc.Deallocate(a)
	require.Equal(t, 1, alloc.NumAllocated())

	// Nodes owned by a different allocator are ignored.
	other := NewTrackingAllocator().Allocate()
	alloc.Deallocate(other)
	require.Equal(t, 1, alloc.NumAllocated())

	alloc.Deallocate(b)
	require.Equal(t, 0, alloc.NumAllocated())
}

func TestTrackingAllocatorDeallocateDetaches(t *testing.T) {
	t.Parallel()

	alloc := NewTrackingAllocator()
	parent := alloc.Allocate()
	child := alloc.Allocate()
	parent.AddChild(child)

	alloc.Deallocate(child)
	require.Equal(t, 0, parent.NumChildren())
	require.Nil(t, parent.FirstChild())
}

func TestTrackingAllocatorDeallocateAll(t *testing.T) {
	t.Parallel()

	alloc := NewTrackingAllocator()
	root := alloc.Allocate()
	current := root
	for i := 0; i < 4; i++ {
		next := alloc.Allocate()
		current.AddChild(next)
		current = next
	}
	require.Equal(t, 5, alloc.NumAllocated())

	alloc.DeallocateAll()
	require.Equal(t, 0, alloc.NumAllocated())
	require.Nil(t, root.FirstChild(), "links are severed on bulk release")
	require.Nil(t, current.Parent())
}
