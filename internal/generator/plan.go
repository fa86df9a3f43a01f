package generator

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/internal/template"
	"github.com/modu-ai/routegen/pkg/models"
)

// Entry is one planned file write.
type Entry struct {
	// Name is the value substituted for the placeholder.
	Name string
	// Dir is the directory that must exist before the write.
	Dir string
	// Target is the file path, inside the generator filesystem.
	Target string
	// Content is the final file body.
	Content string
	// Own is true when Target is the node's own file rather than an index
	// file of one of its ancestor directories.
	Own bool
	// Duplicate is true when another entry claims the same Target.
	Duplicate bool
	// Err is set when the entry could not be planned; it is never executed.
	Err error
}

// Plan is the ordered list of file writes for one call. Children are
// planned before their parent.
type Plan struct {
	Entries     []Entry
	Concurrency int
}

// Pending returns the entries that will be executed.
func (p *Plan) Pending() []Entry {
	var out []Entry
	for _, e := range p.Entries {
		if !e.Duplicate && e.Err == nil {
			out = append(out, e)
		}
	}
	return out
}

type planner struct {
	fsys    billy.Filesystem
	root    string
	opts    config.Options
	body    string
	ext     string
	entries []Entry
	byPath  map[string]int
}

func newPlanner(fsys billy.Filesystem, root string, opts config.Options, body string) *planner {
	return &planner{
		fsys:   fsys,
		root:   root,
		opts:   opts,
		body:   body,
		ext:    opts.FileSuffix.Ext(),
		byPath: make(map[string]int),
	}
}

// walk plans nodes depth-first. parent is the enclosing node's own path
// segments; children are rooted under those, not under the full chain.
func (p *planner) walk(nodes []models.RouteNode, parent []string) {
	for _, node := range nodes {
		own := normalizeSegments(node.Segments(p.opts.Fields))
		segments := append(slices.Clone(parent), own...)

		children := node.Children(p.opts.Fields)
		if len(children) > 0 {
			p.walk(children, own)
		}
		p.planNode(node, segments, len(children) > 0)
	}
}

func (p *planner) planNode(node models.RouteNode, segments []string, hasChildren bool) {
	if !p.opts.IsIndex && hasChildren && !p.opts.ParentFolder {
		return
	}

	name := node.Name(p.opts.Fields)
	if name == "" && len(segments) > 0 {
		name = segments[len(segments)-1]
	}

	if err := validateSegments(segments); err != nil {
		p.fail(name, p.fsys.Join(append([]string{p.root}, segments...)...), err)
		return
	}

	content := template.Substitute(p.body, name)

	if p.opts.IsIndex {
		p.planIndex(name, segments, content)
		return
	}

	if len(segments) == 0 {
		p.fail(name, p.root, ErrEmptyPath)
		return
	}
	last := len(segments) - 1
	dir := p.fsys.Join(append([]string{p.root}, segments[:last]...)...)
	p.add(Entry{
		Name:    name,
		Dir:     dir,
		Target:  p.fsys.Join(dir, segments[last]+p.ext),
		Content: content,
		Own:     true,
	})
}

// planIndex emits index.<ext> for every cumulative prefix of segments. An
// empty path targets the output folder itself.
func (p *planner) planIndex(name string, segments []string, content string) {
	file := defs.IndexBaseName + p.ext
	if len(segments) == 0 {
		p.add(Entry{
			Name:    name,
			Dir:     p.root,
			Target:  p.fsys.Join(p.root, file),
			Content: content,
			Own:     true,
		})
		return
	}
	for i := 1; i <= len(segments); i++ {
		dir := p.fsys.Join(append([]string{p.root}, segments[:i]...)...)
		p.add(Entry{
			Name:    name,
			Dir:     dir,
			Target:  p.fsys.Join(dir, file),
			Content: content,
			Own:     i == len(segments),
		})
	}
}

// add appends e, resolving target collisions: a node's own file beats an
// ancestor index contributed by a descendant, otherwise the first wins.
func (p *planner) add(e Entry) {
	idx, seen := p.byPath[e.Target]
	if !seen {
		p.byPath[e.Target] = len(p.entries)
		p.entries = append(p.entries, e)
		return
	}

	if e.Own && !p.entries[idx].Own {
		p.entries[idx].Duplicate = true
		p.byPath[e.Target] = len(p.entries)
	} else {
		e.Duplicate = true
	}
	p.entries = append(p.entries, e)
}

func (p *planner) fail(name, target string, err error) {
	p.entries = append(p.entries, Entry{Name: name, Target: target, Err: err})
}

func normalizeSegments(segments []string) []string {
	for i, s := range segments {
		segments[i] = norm.NFC.String(s)
	}
	return segments
}

// validateSegments rejects segment lists that climb above the output
// folder once cleaned.
func validateSegments(segments []string) error {
	if len(segments) == 0 {
		return nil
	}
	rel := filepath.Clean(filepath.Join(segments...))
	if filepath.IsAbs(rel) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, strings.Join(segments, "/"))
	}
	return nil
}
