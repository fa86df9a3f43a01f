// Package routegen generates page stub files from a route tree.
//
// It is the library entry point: Generate validates the caller's options
// and route array, then writes one stub per route below an output folder,
// never overwriting existing files.
//
//	report, err := routegen.Generate(ctx, "src/views", nodes, map[string]any{
//		"fileSuffix": "tsx",
//		"isIndex":    true,
//	})
package routegen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/generator"
	"github.com/modu-ai/routegen/internal/routes"
	"github.com/modu-ai/routegen/pkg/models"
)

// Report is the per-file result of a Generate call.
type Report = generator.Report

// Outcome is the result for a single file.
type Outcome = generator.Outcome

// Generate writes stubs for nodes below outputFolder, resolved against the
// current working directory when relative. options may be nil. Invalid
// options or an invalid route array return an error before any file is
// touched. Filesystem failures are reported per file in the Report.
func Generate(ctx context.Context, outputFolder string, nodes []models.RouteNode, options map[string]any) (*Report, error) {
	return GenerateWithLogger(ctx, slog.Default(), outputFolder, nodes, options)
}

// GenerateWithLogger is Generate with an explicit logger for per-file
// outcomes.
func GenerateWithLogger(ctx context.Context, logger *slog.Logger, outputFolder string, nodes []models.RouteNode, options map[string]any) (*Report, error) {
	opts, err := config.Resolve(options)
	if err != nil {
		return nil, err
	}
	if err := routes.ValidateShape(nodes, opts.Fields); err != nil {
		return nil, err
	}

	gen, err := NewDiskGenerator(outputFolder, generator.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, nodes, opts)
}

// NewDiskGenerator returns a generator that writes to outputFolder on the
// local disk, resolving a relative folder against the working directory.
func NewDiskGenerator(outputFolder string, opts ...generator.Option) (*generator.Generator, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return NewDiskGeneratorAt(cwd, outputFolder, opts...), nil
}

// NewDiskGeneratorAt returns a generator that writes to outputFolder,
// resolved against base when relative. A relative folder inside base is
// rooted at base, so reported paths read like the folder given; anything
// else is rooted at the folder's parent. Nothing can be written above that
// root.
func NewDiskGeneratorAt(base, outputFolder string, opts ...generator.Option) *generator.Generator {
	clean := filepath.Clean(outputFolder)
	if !filepath.IsAbs(clean) && clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return generator.New(osfs.New(base), clean, opts...)
	}

	abs := clean
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(base, clean)
	}
	return generator.New(osfs.New(filepath.Dir(abs)), filepath.Base(abs), opts...)
}
