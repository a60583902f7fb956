package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/document"
	"github.com/tandemview/tandem/internal/core/logging"
	"github.com/tandemview/tandem/internal/core/markup"
	"github.com/tandemview/tandem/internal/core/match"
	"github.com/tandemview/tandem/pkg/iojson"
)

type MatchCmd struct {
	flags *Flags

	// flags
	markupPath string
	blocksPath string
	jsonOutput bool
	minScore   float64
	all        bool

	// block data piped on stdin or given with -f
	blockInput iojson.FileReader[json.RawMessage]
}

// NewMatchCmd creates a new match command
func NewMatchCmd(flags *Flags) *MatchCmd {
	return &MatchCmd{flags: flags}
}

// matchReport is the JSON output shape of the match command.
type matchReport struct {
	Document string      `json:"document"`
	Blocks   int         `json:"blocks"`
	Sections int         `json:"sections"`
	Matched  int         `json:"matched"`
	Pairs    []matchPair `json:"pairs"`
}

type matchPair struct {
	Block   int     `json:"block"`
	Page    int     `json:"page"`
	Type    string  `json:"type"`
	Section int     `json:"section"`
	Kind    string  `json:"kind"`
	Score   float64 `json:"score"`
}

// Register adds the match command to the application
func (cmd *MatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "match",
		Usage:     "Compute the block-to-section mapping for a result",
		UsageText: "tandem match [result-dir] [--markup file --blocks file] [--json]",
		Description: `Runs the content matcher over one recognition result and prints the
accepted block/section pairs with their similarity scores.

Block data can also be piped on stdin (or passed with -f) when --markup
is given without --blocks.

Useful for checking why a block doesn't follow scrolling: anything
below the score threshold stays unmatched and is listed with --all.`,
		Flags: []cli.Flag{
			cmd.blockInput.Flag(),
			&cli.StringFlag{
				Name:        "markup",
				Usage:       "path to the generated markup file",
				Destination: &cmd.markupPath,
			},
			&cli.StringFlag{
				Name:        "blocks",
				Usage:       "path to the block-data JSON",
				Destination: &cmd.blocksPath,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.FloatFlag{
				Name:        "min-score",
				Usage:       "override the similarity score threshold",
				Destination: &cmd.minScore,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "also list unmatched blocks and sections",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *MatchCmd) run(ctx context.Context, c *cli.Command) error {
	doc, err := cmd.loadDocument(c)
	if err != nil {
		return err
	}

	minScore := cmd.flags.Config.Match.MinScore
	if cmd.minScore > 0 {
		minScore = cmd.minScore
	}
	matcher := match.New(minScore, logging.Component("match"))
	mapping := matcher.Match(doc.Catalog, doc.Sections)

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, cmd.buildReport(doc, mapping))
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "BLOCK\tPAGE\tTYPE\tSECTION\tKIND\tSCORE")
	for _, p := range mapping.Pairs() {
		b, _ := doc.Catalog.Get(p.Block)
		sec := doc.Sections[p.Section]
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%.3f\n",
			p.Block, b.Page, b.Type, p.Section, sec.Kind, p.Score)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nmatched %d of %d blocks, %d of %d sections (threshold %.2f)\n",
		mapping.Len(), doc.Catalog.Len(), mapping.Len(), len(doc.Sections), minScore)

	if cmd.all {
		cmd.printUnmatched(out, doc, mapping)
	}
	return nil
}

// loadDocument resolves the result to match: a directory scan, an
// explicit file pair, or markup plus piped block data.
func (cmd *MatchCmd) loadDocument(c *cli.Command) (*document.Document, error) {
	loader := document.NewLoader(logging.Component("loader"))

	if cmd.markupPath != "" && cmd.blocksPath == "" {
		markupData, err := os.ReadFile(cmd.markupPath)
		if err != nil {
			return nil, fmt.Errorf("read markup: %w", err)
		}

		raw, err := cmd.blockInput.Read()
		if err != nil {
			return nil, err
		}
		blocks, err := document.DecodeBlocks(raw)
		if err != nil {
			return nil, fmt.Errorf("decode block data: %w", err)
		}

		markupText := string(markupData)
		name := strings.TrimSuffix(filepath.Base(cmd.markupPath), filepath.Ext(cmd.markupPath))
		return &document.Document{
			Name:     name,
			Markup:   markupText,
			Catalog:  block.NewCatalog(blocks, logging.Component("blocks")),
			Sections: markup.Split(markupText),
		}, nil
	}

	refs, err := resolveRefs(loader, cmd.markupPath, cmd.blocksPath, c.Args().First())
	if err != nil {
		return nil, err
	}
	doc, err := loader.Load(refs[0])
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", refs[0].Name, err)
	}
	return doc, nil
}

func (cmd *MatchCmd) buildReport(doc *document.Document, mapping match.Mapping) matchReport {
	report := matchReport{
		Document: doc.Name,
		Blocks:   doc.Catalog.Len(),
		Sections: len(doc.Sections),
		Matched:  mapping.Len(),
		Pairs:    []matchPair{},
	}
	for _, p := range mapping.Pairs() {
		b, _ := doc.Catalog.Get(p.Block)
		report.Pairs = append(report.Pairs, matchPair{
			Block:   p.Block,
			Page:    b.Page,
			Type:    string(b.Type),
			Section: p.Section,
			Kind:    doc.Sections[p.Section].Kind.String(),
			Score:   p.Score,
		})
	}
	return report
}

func (cmd *MatchCmd) printUnmatched(out io.Writer, doc *document.Document, mapping match.Mapping) {
	var blocks, sections []string
	for _, b := range doc.Catalog.All() {
		if _, ok := mapping.SectionFor(b.Index); !ok {
			blocks = append(blocks, fmt.Sprintf("  block %d (page %d, %s)", b.Index, b.Page, b.Type))
		}
	}
	for _, sec := range doc.Sections {
		if _, ok := mapping.BlockFor(sec.Ordinal); !ok {
			sections = append(sections, fmt.Sprintf("  section %d (%s)", sec.Ordinal, sec.Kind))
		}
	}

	if len(blocks) > 0 {
		_, _ = fmt.Fprintln(out, "\nunmatched blocks:")
		for _, line := range blocks {
			_, _ = fmt.Fprintln(out, line)
		}
	}
	if len(sections) > 0 {
		_, _ = fmt.Fprintln(out, "\nunmatched sections:")
		for _, line := range sections {
			_, _ = fmt.Fprintln(out, line)
		}
	}
}
