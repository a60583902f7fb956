package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/markup"
)

// Glob patterns for locating result files inside a result directory.
var (
	markupPatterns = []string{"**/*.md", "**/*.markdown"}
	blocksPatterns = []string{"**/middle.json", "**/*middle*.json", "**/*blocks*.json"}
)

// Loader discovers and loads recognition results from the filesystem.
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a loader.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{log: logger}
}

// Discover walks root looking for result directories: any directory
// holding both a markup file and a block-data JSON. Passing a result
// directory itself yields a single ref. Results are sorted by name.
func (l *Loader) Discover(root string) ([]Ref, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	if ref, ok := l.resolveDir(root); ok {
		return []Ref{ref}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", root, err)
	}

	var refs []Ref
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if ref, ok := l.resolveDir(filepath.Join(root, entry.Name())); ok {
			refs = append(refs, ref)
		}
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// resolveDir locates the markup and blocks files under dir by glob.
func (l *Loader) resolveDir(dir string) (Ref, bool) {
	fsys := os.DirFS(dir)

	markupPath := pickMarkup(fsys, globAll(fsys, markupPatterns))
	blocksPath := first(globAll(fsys, blocksPatterns))
	if markupPath == "" || blocksPath == "" {
		return Ref{}, false
	}

	return Ref{
		Name:       filepath.Base(dir),
		Dir:        dir,
		MarkupPath: filepath.Join(dir, filepath.FromSlash(markupPath)),
		BlocksPath: filepath.Join(dir, filepath.FromSlash(blocksPath)),
	}, true
}

func globAll(fsys fs.FS, patterns []string) []string {
	var all []string
	seen := map[string]struct{}{}
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if _, dup := seen[m]; !dup {
				seen[m] = struct{}{}
				all = append(all, m)
			}
		}
	}
	sort.Strings(all)
	return all
}

func first(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// pickMarkup chooses the main markup file among candidates: a lone file
// wins, then conventional names, then the largest file.
func pickMarkup(fsys fs.FS, candidates []string) string {
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return candidates[0]
	}

	preferred := []string{"readme.md", "index.md", "main.md", "document.md"}
	for _, want := range preferred {
		for _, c := range candidates {
			if strings.EqualFold(filepath.Base(c), want) {
				return c
			}
		}
	}

	best := candidates[0]
	var bestSize int64 = -1
	for _, c := range candidates {
		if info, err := fs.Stat(fsys, c); err == nil && info.Size() > bestSize {
			best = c
			bestSize = info.Size()
		}
	}
	return best
}

// Load reads a discovered result into memory.
func (l *Loader) Load(ref Ref) (*Document, error) {
	return l.load(ref.Name, ref.Dir, ref.MarkupPath, ref.BlocksPath)
}

// LoadFiles reads a result from explicit markup and blocks paths,
// bypassing discovery.
func (l *Loader) LoadFiles(markupPath, blocksPath string) (*Document, error) {
	name := strings.TrimSuffix(filepath.Base(markupPath), filepath.Ext(markupPath))
	return l.load(name, "", markupPath, blocksPath)
}

func (l *Loader) load(name, dir, markupPath, blocksPath string) (*Document, error) {
	markupData, err := os.ReadFile(markupPath)
	if err != nil {
		return nil, fmt.Errorf("read markup: %w", err)
	}

	blocksData, err := os.ReadFile(blocksPath)
	if err != nil {
		return nil, fmt.Errorf("read block data: %w", err)
	}

	blocks, err := DecodeBlocks(blocksData)
	if err != nil {
		return nil, fmt.Errorf("decode block data %s: %w", blocksPath, err)
	}

	markupText := string(markupData)
	doc := &Document{
		Name:     name,
		Dir:      dir,
		Markup:   markupText,
		Catalog:  block.NewCatalog(blocks, l.log),
		Sections: markup.Split(markupText),
	}

	l.log.Info().
		Str("document", doc.Name).
		Int("blocks", doc.Catalog.Len()).
		Int("sections", len(doc.Sections)).
		Msg("document loaded")

	return doc, nil
}
