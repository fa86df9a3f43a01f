package models

import (
	"fmt"
	"strings"
)

// RouteNode is one entry of a user-supplied route tree. Its keys are not
// fixed; a FieldMapping tells the generator where the name, path and
// children live. The generator never mutates a node.
type RouteNode map[string]any

// Has reports whether key is defined on the node. A key holding an explicit
// null is defined; only a missing key is not.
func (n RouteNode) Has(key string) bool {
	_, ok := n[key]
	return ok
}

// Name returns the display name stored under fm.Name, or "" when absent.
func (n RouteNode) Name(fm FieldMapping) string {
	return scalarString(n[fm.Name])
}

// Path returns the raw path stored under fm.Path, or "" when absent.
func (n RouteNode) Path(fm FieldMapping) string {
	return scalarString(n[fm.Path])
}

// Segments splits the node path on "/" and drops empty segments, so
// "/admin//users" yields ["admin", "users"].
func (n RouteNode) Segments(fm FieldMapping) []string {
	return SplitPath(n.Path(fm))
}

// Children returns the child nodes stored under fm.Children. Entries that are
// not objects are ignored.
func (n RouteNode) Children(fm FieldMapping) []RouteNode {
	nodes, _ := AsRouteNodes(n[fm.Children])
	return nodes
}

// AsRouteNode converts a decoded JSON/YAML object into a RouteNode.
func AsRouteNode(v any) (RouteNode, bool) {
	switch t := v.(type) {
	case RouteNode:
		return t, true
	case map[string]any:
		return RouteNode(t), true
	}
	return nil, false
}

// AsRouteNodes converts a decoded array into route nodes, skipping entries
// that are not objects. The second result is false when v is not an array.
func AsRouteNodes(v any) ([]RouteNode, bool) {
	switch t := v.(type) {
	case []RouteNode:
		return t, true
	case []map[string]any:
		nodes := make([]RouteNode, len(t))
		for i, m := range t {
			nodes[i] = RouteNode(m)
		}
		return nodes, true
	case []any:
		nodes := make([]RouteNode, 0, len(t))
		for _, item := range t {
			if node, ok := AsRouteNode(item); ok {
				nodes = append(nodes, node)
			}
		}
		return nodes, true
	}
	return nil, false
}

// SplitPath splits a slash-delimited route path into non-empty segments.
func SplitPath(p string) []string {
	var segments []string
	for seg := range strings.SplitSeq(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool, int, int64, float64, uint64, int32, float32:
		return fmt.Sprint(t)
	}
	return ""
}
