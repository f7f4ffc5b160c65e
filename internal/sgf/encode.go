// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package sgf

// AppendNode appends the SGF text of a single node (";TAG[v][v]...") to dst
// and returns the extended buffer. Value text is written exactly as lexed,
// escape markers included, so output round-trips byte for byte.
func AppendNode(dst []byte, n Node) []byte {
	dst = append(dst, ';')
	for _, prop := range n.Properties() {
		dst = append(dst, prop.Tag...)
		for _, v := range prop.Values {
			dst = append(dst, '[')
			dst = append(dst, v...)
			dst = append(dst, ']')
		}
	}
	return dst
}

// EncodeNode returns the SGF text of a single node.
func EncodeNode(n Node) string {
	return string(AppendNode(nil, n))
}

// AppendTree appends the parenthesized SGF text of the game tree rooted at
// n. A node with exactly one child continues the sequence; multiple
// children are written as nested variations.
func AppendTree(dst []byte, n Node) []byte {
	dst = append(dst, '(')
	for n != nil {
		dst = AppendNode(dst, n)
		if n.NumChildren() == 1 {
			n = n.FirstChild()
			continue
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			dst = AppendTree(dst, c)
		}
		break
	}
	return append(dst, ')')
}

// EncodeTree returns the SGF text of the game tree rooted at n.
func EncodeTree(n Node) string {
	return string(AppendTree(nil, n))
}
