package generator

import "errors"

// Sentinel errors recorded on failed outcomes.
var (
	// ErrPathTraversal indicates a route path that resolves outside the
	// output folder.
	ErrPathTraversal = errors.New("generator: path escapes output folder")

	// ErrEmptyPath indicates a route whose path has no segments, so no
	// file name can be derived.
	ErrEmptyPath = errors.New("generator: route path is empty")

	// ErrNotDirectory indicates a path component exists as a regular file.
	ErrNotDirectory = errors.New("generator: not a directory")

	// ErrDuplicateTarget marks a planned entry whose target another entry
	// already claims.
	ErrDuplicateTarget = errors.New("generator: duplicate target")
)
