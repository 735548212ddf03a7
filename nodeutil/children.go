package nodeutil

import sitter "github.com/smacker/go-tree-sitter"

// Children returns the named children of a node
func Children(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.NamedChild(i)
	}
	return children
}

// UnnamedChildren returns every child of a node, including the anonymous
// ones such as keywords and punctuation
func UnnamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.Child(i)
	}
	return children
}

// ChildrenOfType returns the named children of a node that have the given type
func ChildrenOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	var matching []*sitter.Node
	for _, child := range Children(node) {
		if child.Type() == nodeType {
			matching = append(matching, child)
		}
	}
	return matching
}
