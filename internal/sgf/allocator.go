// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package sgf

// NodeAllocator is the capability the parser uses to obtain and release
// nodes. The parser never deallocates a node it has handed back to the
// caller; release timing is entirely caller-controlled.
type NodeAllocator interface {
	Allocate() Node
	Deallocate(node Node)
}

// PlainAllocator allocates ordinary garbage-collected nodes. The caller is
// responsible for dropping all references to nodes it no longer needs,
// including nodes left attached to a partial tree after an aborted parse.
type PlainAllocator struct{}

func NewPlainAllocator() *PlainAllocator {
	return &PlainAllocator{}
}

func (a *PlainAllocator) Allocate() Node {
	return NewStringNode()
}

func (a *PlainAllocator) Deallocate(node Node) {}

// TrackingAllocator records every node it allocates so that an aborted
// parse can be cleaned up in bulk. Deallocate only releases nodes this
// instance tracks; passing a node owned by another allocator is a no-op.
type TrackingAllocator struct {
	allocated map[Node]struct{}
}

func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{
		allocated: make(map[Node]struct{}),
	}
}

func (a *TrackingAllocator) Allocate() Node {
	n := NewStringNode()
	a.allocated[n] = struct{}{}
	return n
}

func (a *TrackingAllocator) Deallocate(node Node) {
	if _, ok := a.allocated[node]; !ok {
		return
	}
	delete(a.allocated, node)
	node.Detach()
}

// DeallocateAll releases every still-tracked node. Links between tracked
// nodes are severed so a partially built tree does not keep itself alive
// through a surviving reference to any one of its nodes.
func (a *TrackingAllocator) DeallocateAll() {
	for n := range a.allocated {
		n.setParent(nil)
		n.setFirstChild(nil)
		n.setNextSibling(nil)
	}
	clear(a.allocated)
}

// NumAllocated returns the number of still-tracked nodes.
func (a *TrackingAllocator) NumAllocated() int {
	return len(a.allocated)
}
