// Package routes loads route trees from JSON or YAML documents and checks
// their shape against the configured field mapping.
package routes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/routegen/pkg/models"
)

// Format is the encoding of a route document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// RootSelector selects the whole document.
const RootSelector = "$"

// FormatFromPath infers the document format from the file extension.
// Anything other than .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadFile reads the route document at path and returns the nodes found at
// selector (a JSONPath expression; "" means the document root).
func LoadFile(path, selector string) ([]models.RouteNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open route document: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, FormatFromPath(path), selector)
}

// Load decodes a route document from r.
func Load(r io.Reader, format Format, selector string) ([]models.RouteNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read route document: %w", err)
	}
	return Parse(data, format, selector)
}

// Parse decodes data and applies selector. The first match of the selector
// must be an array; its object entries become the route nodes.
func Parse(data []byte, format Format, selector string) ([]models.RouteNode, error) {
	root, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	if selector == "" {
		selector = RootSelector
	}
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid jsonpath %q: %v", ErrInvalidDocument, selector, err)
	}

	matches := x.Get(root)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: selector %q matched nothing", ErrInvalidDocument, selector)
	}

	nodes, ok := models.AsRouteNodes(matches[0])
	if !ok {
		return nil, fmt.Errorf("%w: selector %q does not point at an array", ErrInvalidDocument, selector)
	}
	return nodes, nil
}

func decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatYAML:
		var root any
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return root, nil
	case FormatJSON, "":
		root, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return root, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidDocument, format)
}
