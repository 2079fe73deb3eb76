package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions

var searchToolDef = mcp.NewTool("case_search",
	mcp.WithDescription("Search prompt cases by keyword and filters. Matches title, prompt text, tags, and author. Results are sorted by case number, newest first."),
	mcp.WithString("query",
		mcp.Description("Keyword to match against title, prompt, tags, and author (case-insensitive)"),
	),
	mcp.WithString("category",
		mcp.Description("Filter by exact category display name, e.g. 未来科幻"),
	),
	mcp.WithString("tag",
		mcp.Description("Filter by exact tag, e.g. 可爱"),
	),
	mcp.WithString("author",
		mcp.Description("Filter by author (case-insensitive exact match)"),
	),
	mcp.WithBoolean("only_with_images",
		mcp.Description("Only return cases that have at least one reference image"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum results to return (default 20, max 100)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Number of results to skip for pagination"),
	),
)

var fetchToolDef = mcp.NewTool("case_fetch",
	mcp.WithDescription("Fetch a single prompt case by its case number, including the full prompt text, images, and notes."),
	mcp.WithNumber("case_number",
		mcp.Required(),
		mcp.Description("The case number to fetch"),
	),
)

var categoryListToolDef = mcp.NewTool("category_list",
	mcp.WithDescription("List all categories with live case counts. Empty categories are included."),
)

var favoriteToggleToolDef = mcp.NewTool("favorite_toggle",
	mcp.WithDescription("Toggle the favorite state of a case. Returns the new state."),
	mcp.WithNumber("case_number",
		mcp.Required(),
		mcp.Description("The case number to toggle"),
	),
)

var favoriteListToolDef = mcp.NewTool("favorite_list",
	mcp.WithDescription("List favorited cases, newest first, joined with their corpus entries."),
)

var reloadToolDef = mcp.NewTool("corpus_reload",
	mcp.WithDescription("Discard the cached corpus and reload it through the artifact/document/sample fallback chain."),
)
