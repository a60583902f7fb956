package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/tandemview/tandem/internal/core/document"
	"github.com/tandemview/tandem/internal/core/logging"
	"github.com/tandemview/tandem/internal/core/match"
	"github.com/tandemview/tandem/pkg/iojson"
)

type InspectCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewInspectCmd creates a new inspect command
func NewInspectCmd(flags *Flags) *InspectCmd {
	return &InspectCmd{flags: flags}
}

// inspectReport is the JSON output shape of the inspect command.
type inspectReport struct {
	Name       string         `json:"name"`
	Dir        string         `json:"dir,omitempty"`
	MarkupPath string         `json:"markup_path"`
	BlocksPath string         `json:"blocks_path"`
	Pages      int            `json:"pages"`
	Blocks     int            `json:"blocks"`
	BlockTypes map[string]int `json:"block_types"`
	Sections   int            `json:"sections"`
	Kinds      map[string]int `json:"section_kinds"`
	Matched    int            `json:"matched"`
}

// Register adds the inspect command to the application
func (cmd *InspectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "inspect",
		Usage:     "Summarize the recognition results under a directory",
		UsageText: "tandem inspect [root-dir] [--json]",
		Description: `Scans a directory for recognition results and prints what was found:
the markup and block files, page and block counts by type, section
counts by kind, and how many blocks the matcher can pair up.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InspectCmd) run(ctx context.Context, c *cli.Command) error {
	loader := document.NewLoader(logging.Component("loader"))
	refs, err := resolveRefs(loader, "", "", c.Args().First())
	if err != nil {
		return err
	}

	matcher := match.New(cmd.flags.Config.Match.MinScore, logging.Component("match"))

	reports := make([]inspectReport, 0, len(refs))
	for _, ref := range refs {
		doc, err := loader.Load(ref)
		if err != nil {
			return fmt.Errorf("load %s: %w", ref.Name, err)
		}
		reports = append(reports, buildInspectReport(ref, doc, matcher))
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, reports)
	}

	out := c.Root().Writer
	for i, r := range reports {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}

		_, _ = fmt.Fprintf(out, "%s\n", r.Name)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "  markup\t%s\n", r.MarkupPath)
		_, _ = fmt.Fprintf(w, "  blocks\t%s\n", r.BlocksPath)
		_, _ = fmt.Fprintf(w, "  pages\t%d\n", r.Pages)
		_, _ = fmt.Fprintf(w, "  blocks\t%d %s\n", r.Blocks, formatCounts(r.BlockTypes))
		_, _ = fmt.Fprintf(w, "  sections\t%d %s\n", r.Sections, formatCounts(r.Kinds))
		_, _ = fmt.Fprintf(w, "  matched\t%d of %d blocks\n", r.Matched, r.Blocks)
		_ = w.Flush()
	}
	return nil
}

func buildInspectReport(ref document.Ref, doc *document.Document, matcher *match.Matcher) inspectReport {
	blockTypes := map[string]int{}
	for _, b := range doc.Catalog.All() {
		blockTypes[string(b.Type)]++
	}
	kinds := map[string]int{}
	for _, sec := range doc.Sections {
		kinds[sec.Kind.String()]++
	}

	return inspectReport{
		Name:       doc.Name,
		Dir:        doc.Dir,
		MarkupPath: ref.MarkupPath,
		BlocksPath: ref.BlocksPath,
		Pages:      doc.Catalog.Pages(),
		Blocks:     doc.Catalog.Len(),
		BlockTypes: blockTypes,
		Sections:   len(doc.Sections),
		Kinds:      kinds,
		Matched:    matcher.Match(doc.Catalog, doc.Sections).Len(),
	}
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
