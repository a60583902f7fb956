package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tandemview/tandem/internal/core/document"
)

// resolveRefs turns command arguments into loadable result references:
// either an explicit markup/blocks file pair, or a directory scan.
func resolveRefs(loader *document.Loader, markupPath, blocksPath, root string) ([]document.Ref, error) {
	if markupPath != "" || blocksPath != "" {
		if markupPath == "" || blocksPath == "" {
			return nil, fmt.Errorf("--markup and --blocks must be used together")
		}
		name := strings.TrimSuffix(filepath.Base(markupPath), filepath.Ext(markupPath))
		return []document.Ref{{
			Name:       name,
			Dir:        filepath.Dir(blocksPath),
			MarkupPath: markupPath,
			BlocksPath: blocksPath,
		}}, nil
	}

	if root == "" {
		root = "."
	}
	refs, err := loader.Discover(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no recognition results found under %s (expected a markup file plus a blocks JSON)", root)
	}
	return refs, nil
}
