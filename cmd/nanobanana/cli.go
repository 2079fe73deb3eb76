package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/yuin/goldmark"

	"github.com/rb7a/nano-banana-prompt/internal/config"
	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
	"github.com/rb7a/nano-banana-prompt/internal/loader"
	"github.com/rb7a/nano-banana-prompt/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "nanobanana",
		Usage:   "Nano Banana prompt case corpus",
		Version: Version,
		Commands: []*cli.Command{
			generateCmd(cfg),
			loadCmd(cfg),
			showCmd(cfg),
			searchCmd(cfg),
			favoriteCmd(db, cfg),
			filtersCmd(db),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// generateCmd creates the generate command.
func generateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Parse the markdown document and write the JSON corpus artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "doc", Aliases: []string{"d"}, Usage: "Markdown document path (default from config)"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Artifact output path (default from config)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.GenerateInput{
				DocumentPath: c.String("doc"),
				ArtifactPath: c.String("out"),
			}
			if input.DocumentPath == "" {
				input.DocumentPath = cfg.DocumentPath
			}
			if input.ArtifactPath == "" {
				input.ArtifactPath = cfg.ArtifactPath
			}

			output, err := ops.Generate(c.Context, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// loadCmd creates the load command.
func loadCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Resolve a corpus over HTTP (artifact, then document, then built-in samples)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "Site base URL (default from config)"},
			&cli.StringFlag{Name: "artifact-url", Usage: "Explicit artifact URL override"},
			&cli.StringFlag{Name: "document-url", Usage: "Explicit document URL override"},
		},
		Action: func(c *cli.Context) error {
			loadCfg := *cfg
			if v := c.String("base-url"); v != "" {
				loadCfg.BaseURL = v
				loadCfg.ArtifactURL = ""
				loadCfg.DocumentURL = ""
			}
			if v := c.String("artifact-url"); v != "" {
				loadCfg.ArtifactURL = v
			}
			if v := c.String("document-url"); v != "" {
				loadCfg.DocumentURL = v
			}

			output, err := ops.Load(c.Context, &loadCfg)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a single case by number",
		ArgsUsage: "<case_number>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "html", Usage: "Render the case as HTML instead of JSON"},
		},
		Action: func(c *cli.Context) error {
			caseNumber, err := caseNumberArg(c)
			if err != nil {
				return outputError(err)
			}

			corp, _, err := resolveCorpus(c, cfg)
			if err != nil {
				return outputError(err)
			}

			cs, err := ops.GetCase(corp, caseNumber)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("html") {
				html, err := renderCaseHTML(cs)
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				fmt.Println(html)
				return nil
			}

			return outputJSON(cs)
		},
	}
}

// searchCmd creates the search command.
func searchCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search cases by keyword and filters",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Filter by category display name"},
			&cli.StringFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Filter by tag"},
			&cli.StringFlag{Name: "author", Aliases: []string{"a"}, Usage: "Filter by author"},
			&cli.BoolFlag{Name: "with-images", Usage: "Only cases with reference images"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			corp, _, err := resolveCorpus(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.SearchCases(corp, ops.SearchInput{
				Query:          c.Args().First(),
				Category:       c.String("category"),
				Tag:            c.String("tag"),
				Author:         c.String("author"),
				OnlyWithImages: c.Bool("with-images"),
				Limit:          c.Int("limit"),
				Offset:         c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// favoriteCmd creates the favorite command group.
func favoriteCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "favorite",
		Usage: "Manage favorited cases",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Favorite a case",
				ArgsUsage: "<case_number>",
				Action: func(c *cli.Context) error {
					caseNumber, err := caseNumberArg(c)
					if err != nil {
						return outputError(err)
					}
					corp, _, err := resolveCorpus(c, cfg)
					if err != nil {
						return outputError(err)
					}
					output, err := ops.AddFavorite(db, corp, caseNumber)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a favorite",
				ArgsUsage: "<case_number>",
				Action: func(c *cli.Context) error {
					caseNumber, err := caseNumberArg(c)
					if err != nil {
						return outputError(err)
					}
					output, err := ops.RemoveFavorite(db, caseNumber)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "toggle",
				Usage:     "Toggle the favorite state of a case",
				ArgsUsage: "<case_number>",
				Action: func(c *cli.Context) error {
					caseNumber, err := caseNumberArg(c)
					if err != nil {
						return outputError(err)
					}
					corp, _, err := resolveCorpus(c, cfg)
					if err != nil {
						return outputError(err)
					}
					output, err := ops.ToggleFavorite(db, corp, caseNumber)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "list",
				Usage: "List favorited cases, newest first",
				Action: func(c *cli.Context) error {
					corp, _, err := resolveCorpus(c, cfg)
					if err != nil {
						return outputError(err)
					}
					output, err := ops.ListFavorites(db, corp)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "clear",
				Usage: "Remove all favorites",
				Action: func(c *cli.Context) error {
					output, err := ops.ClearFavorites(db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// filtersCmd creates the filters command group.
func filtersCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "filters",
		Usage: "Manage the persisted browse filter state",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the saved filter state",
				Action: func(c *cli.Context) error {
					state, err := ops.GetFilters(db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(state)
				},
			},
			{
				Name:  "set",
				Usage: "Save a new filter state (replaces the previous one)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Search keyword"},
					&cli.StringFlag{Name: "categories", Usage: "Comma-separated category names"},
					&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
					&cli.StringFlag{Name: "authors", Usage: "Comma-separated authors"},
					&cli.BoolFlag{Name: "with-images", Usage: "Only cases with reference images"},
				},
				Action: func(c *cli.Context) error {
					state := &ops.FilterState{
						SearchQuery:    c.String("query"),
						Categories:     splitList(c.String("categories")),
						Tags:           splitList(c.String("tags")),
						Authors:        splitList(c.String("authors")),
						OnlyWithImages: c.Bool("with-images"),
					}
					if err := ops.SetFilters(db, state); err != nil {
						return outputError(err)
					}
					return outputJSON(state)
				},
			},
			{
				Name:  "reset",
				Usage: "Clear the saved filter state",
				Action: func(c *cli.Context) error {
					if err := ops.ResetFilters(db); err != nil {
						return outputError(err)
					}
					return outputJSON(&ops.FilterState{})
				},
			},
		},
	}
}

// Helper functions

// resolveCorpus loads a corpus for read commands: the local artifact when
// present, otherwise the HTTP fallback chain (which ends in the built-in
// samples, so this only fails on internal errors).
func resolveCorpus(c *cli.Context, cfg *config.Config) (*corpus.Corpus, loader.Source, error) {
	if corp, err := ops.LoadArtifactFile(cfg.ArtifactPath); err == nil {
		return corp, loader.SourceArtifact, nil
	}

	out, err := ops.Load(c.Context, cfg)
	if err != nil {
		return nil, "", err
	}
	return out.Corpus, out.Source, nil
}

// caseNumberArg parses the required positional case number.
func caseNumberArg(c *cli.Context) (int, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, errors.NewInvalidRequest("case number argument is required")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewInvalidRequest(fmt.Sprintf("invalid case number: %s", arg))
	}
	return n, nil
}

// renderCaseHTML renders a case as markdown and converts it with goldmark.
func renderCaseHTML(cs *corpus.Case) (string, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "## 案例 %d：%s\n\n", cs.CaseNumber, cs.Title)
	fmt.Fprintf(&md, "**作者**：%s\n\n", cs.Author)
	fmt.Fprintf(&md, "**分类**：%s\n\n", cs.Category)
	if len(cs.Tags) > 0 {
		fmt.Fprintf(&md, "**标签**：%s\n\n", strings.Join(cs.Tags, "、"))
	}
	if cs.SourceURL != "" {
		fmt.Fprintf(&md, "[原文链接](%s)\n\n", cs.SourceURL)
	}
	fmt.Fprintf(&md, "**提示词**\n\n```\n%s\n```\n", cs.Prompt)
	if cs.Notes != "" {
		fmt.Fprintf(&md, "\n*注意：%s*\n", cs.Notes)
	}
	if cs.RequiresUpload {
		md.WriteString("\n需上传参考图片\n")
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if appErr, ok := err.(*errors.Error); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", appErr.Code, appErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// splitList splits a comma-separated string into trimmed non-empty items.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			items = append(items, t)
		}
	}
	return items
}
