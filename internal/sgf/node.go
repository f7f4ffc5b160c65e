// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package sgf

// Property is one (tag, values) pair reconstructed from a node's packed
// storage. A property always has at least one value.
type Property struct {
	Tag    string
	Values []string
}

// Node is one semicolon-introduced game-tree node. Children form a singly
// linked list rooted at FirstChild, ordered by insertion. The parent link is
// a back-reference only; a node never owns its parent.
//
// The unexported methods seal the interface to this package: tree relinking
// must go through AddChild and Detach to keep the sibling list and child
// count consistent.
type Node interface {
	Parent() Node
	FirstChild() Node
	NextSibling() Node
	NumChildren() int

	// AddChild detaches node from its current parent, if any, and appends
	// it to the end of the receiver's child list.
	AddChild(node Node)
	// Detach unlinks the receiver from its parent and siblings and returns
	// the receiver. Detaching a parentless node is a no-op.
	Detach() Node

	// AddProperty appends one property, atomically, in insertion order.
	AddProperty(tag string, values []string)
	// Properties reconstructs the ordered (tag, values) pairs.
	Properties() []Property

	setParent(Node)
	setFirstChild(Node)
	setNextSibling(Node)
	addNumChildren(delta int)
}

// segment describes one slice of a StringNode's packed content buffer.
type segment struct {
	length int
	isTag  bool
}

// StringNode stores properties in a single packed buffer with parallel
// segment metadata. One property contributes a tag segment followed by one
// segment per value. Packing keeps per-property overhead to two small
// appends and preserves the exact lexed text for round-tripping.
type StringNode struct {
	parent      Node
	firstChild  Node
	nextSibling Node
	numChildren int

	content  []byte
	segments []segment
}

func NewStringNode() *StringNode {
	return &StringNode{}
}

func (n *StringNode) Parent() Node      { return n.parent }
func (n *StringNode) FirstChild() Node  { return n.firstChild }
func (n *StringNode) NextSibling() Node { return n.nextSibling }
func (n *StringNode) NumChildren() int  { return n.numChildren }

func (n *StringNode) AddChild(node Node) {
	node.Detach()
	if n.firstChild == nil {
		n.firstChild = node
	} else {
		last := n.firstChild
		for last.NextSibling() != nil {
			last = last.NextSibling()
		}
		last.setNextSibling(node)
	}
	node.setParent(n)
	n.numChildren++
}

func (n *StringNode) Detach() Node {
	p := n.parent
	if p == nil {
		return n
	}
	if p.FirstChild() == Node(n) {
		p.setFirstChild(n.nextSibling)
	} else {
		prev := p.FirstChild()
		for prev.NextSibling() != Node(n) {
			prev = prev.NextSibling()
		}
		prev.setNextSibling(n.nextSibling)
	}
	p.addNumChildren(-1)
	n.parent = nil
	n.nextSibling = nil
	return n
}

func (n *StringNode) AddProperty(tag string, values []string) {
	n.content = append(n.content, tag...)
	n.segments = append(n.segments, segment{length: len(tag), isTag: true})
	for _, v := range values {
		n.content = append(n.content, v...)
		n.segments = append(n.segments, segment{length: len(v), isTag: false})
	}
}

func (n *StringNode) Properties() []Property {
	var props []Property
	offset := 0
	for _, seg := range n.segments {
		text := string(n.content[offset : offset+seg.length])
		offset += seg.length
		if seg.isTag {
			props = append(props, Property{Tag: text})
			continue
		}
		// The parser never emits a value segment before a tag segment, so
		// props is non-empty here.
		last := &props[len(props)-1]
		last.Values = append(last.Values, text)
	}
	return props
}

func (n *StringNode) setParent(p Node)      { n.parent = p }
func (n *StringNode) setFirstChild(c Node)  { n.firstChild = c }
func (n *StringNode) setNextSibling(s Node) { n.nextSibling = s }
func (n *StringNode) addNumChildren(d int)  { n.numChildren += d }
