package scoreboard

import (
	"strings"

	"golang.org/x/net/html"
)

// Small traversal helpers over the x/net/html node tree.

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// walk visits every node under n in document order, n excluded.
func walk(n *html.Node, visit func(*html.Node)) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		visit(child)
		walk(child, visit)
	}
}

// findFirst returns the first node under n, in document order, matching the
// predicate.
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	var rec func(*html.Node) bool
	rec = func(cur *html.Node) bool {
		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			if pred(child) {
				found = child
				return true
			}
			if rec(child) {
				return true
			}
		}
		return false
	}
	rec(n)
	return found
}

func findByID(n *html.Node, id string) *html.Node {
	return findFirst(n, func(cur *html.Node) bool {
		return cur.Type == html.ElementNode && attrValue(cur, "id") == id
	})
}

// nodeText concatenates the text content under n with surrounding
// whitespace stripped.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
	})
	return strings.TrimSpace(sb.String())
}
