// Package models provides shared data models and types for routegen.
//
// # Route Nodes
//
// A [RouteNode] is a loosely shaped record taken straight from a routing
// configuration file. The generator reads it through a [FieldMapping], so a
// tree that stores its titles under "title" and its sub-pages under "routes"
// can be used without reshaping:
//
//	fm := models.FieldMapping{Name: "title", Path: "path", Children: "routes"}
//	for _, child := range node.Children(fm) {
//	    fmt.Println(child.Name(fm), child.Segments(fm))
//	}
//
// # Output Kinds
//
// [FileSuffix] selects the stub template:
//   - vue: Vue single-file component (Vue 2 by default, Vue 3 on request)
//   - jsx: React function component
//   - tsx: React function component with a .tsx extension
//
// Vue stubs additionally carry a [CSSCompiler] (css, less or scss).
package models
