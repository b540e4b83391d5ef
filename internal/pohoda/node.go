// =============================================================================
// Pohoda Analytics - XML Document Tree
// =============================================================================
//
// This package reads Pohoda accounting exports into a generic element tree
// and provides path-based field access over it. Pohoda documents are deeply
// nested and heavily namespaced (dat/ord/inv/typ); downstream code only ever
// cares about local element names, which are unambiguous within one export
// schema, so lookups ignore namespaces entirely.
//
// PATH SEMANTICS:
//   A path is a slash-separated list of local names, e.g.
//   "orderHeader/partnerIdentity/address/company". Each segment is resolved
//   by a depth-first descendant search starting from the previous match, so
//   intermediate wrapper elements never have to be spelled out.
//
// ERROR MODEL:
//   A missing path is normal; optional fields are common in these exports.
//   Accessors therefore return caller-supplied defaults and never fail.
//   The only error source in this package is Parse, for files that are not
//   well-formed XML at all.
//
// =============================================================================

package pohoda

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Node is one XML element: its name, text content and children. The tree is
// built once per file by Parse and read-only afterwards.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// Parse unmarshals a whole export file into an element tree. This is the
// file-level parse of the pipeline: a failure here means the file contributes
// nothing and processing continues with the remaining files.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse XML: %w", err)
	}
	return &root, nil
}

// =============================================================================
// PATH NAVIGATION
// =============================================================================

// Find returns the first element matching the path, in document order, or
// nil when there is no match. The receiver itself is never a match; only
// descendants are searched.
func (n *Node) Find(path string) *Node {
	if n == nil {
		return nil
	}
	current := n
	for _, segment := range strings.Split(path, "/") {
		current = current.findDescendant(segment)
		if current == nil {
			return nil
		}
	}
	return current
}

// FindAll returns every element whose local name matches the final path
// segment, searched under the first match of the leading segments. With a
// single-segment path it returns all matching descendants of the receiver.
func (n *Node) FindAll(path string) []*Node {
	if n == nil {
		return nil
	}
	scope := n
	segments := strings.Split(path, "/")
	if len(segments) > 1 {
		scope = n.Find(strings.Join(segments[:len(segments)-1], "/"))
		if scope == nil {
			return nil
		}
	}
	var matches []*Node
	scope.walk(func(child *Node) {
		if child.XMLName.Local == segments[len(segments)-1] {
			matches = append(matches, child)
		}
	})
	return matches
}

// findDescendant performs a depth-first search for the first descendant with
// the given local name.
func (n *Node) findDescendant(local string) *Node {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == local {
			return child
		}
		if found := child.findDescendant(local); found != nil {
			return found
		}
	}
	return nil
}

// walk visits every descendant in document order.
func (n *Node) walk(visit func(*Node)) {
	for i := range n.Children {
		child := &n.Children[i]
		visit(child)
		child.walk(visit)
	}
}

// =============================================================================
// FIELD ACCESSORS
// =============================================================================

// Text returns the trimmed text content of the first element matching the
// path, or def when the path does not match or the element has no text.
func (n *Node) Text(path, def string) string {
	el := n.Find(path)
	if el == nil {
		return def
	}
	text := strings.TrimSpace(el.Content)
	if text == "" {
		return def
	}
	return text
}

// Decimal returns the value at the path as a decimal, defaulting to zero
// when the path is missing, empty, or does not parse as a number.
func (n *Node) Decimal(path string) decimal.Decimal {
	text := n.Text(path, "0")
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Bool reports whether the text at the path equals "true". Absent paths are
// false.
func (n *Node) Bool(path string) bool {
	return n.Text(path, "") == "true"
}
