// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Parse reads an XML document into an xmlpath node tree.
func Parse(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// Nodes returns every node matched by path under root.
func Nodes(root *xmlpath.Node, path *xmlpath.Path) []*xmlpath.Node {
	var nodes []*xmlpath.Node
	iter := path.Iter(root)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// Value returns the cleaned text of the first node matched by path, or "".
func Value(node *xmlpath.Node, path *xmlpath.Path) string {
	s, ok := path.String(node)
	if !ok {
		return ""
	}
	return CleanText(s)
}

// FirstValue returns the first non-empty Value among paths.
func FirstValue(node *xmlpath.Node, paths ...*xmlpath.Path) string {
	for _, p := range paths {
		if v := Value(node, p); v != "" {
			return v
		}
	}
	return ""
}

// CleanText collapses runs of whitespace (including the indentation between
// nested elements) into single spaces and trims the result.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
