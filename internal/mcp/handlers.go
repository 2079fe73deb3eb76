package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rb7a/nano-banana-prompt/internal/config"
	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
	"github.com/rb7a/nano-banana-prompt/internal/loader"
	"github.com/rb7a/nano-banana-prompt/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers. The corpus is loaded
// lazily on first use and cached until corpus_reload.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config

	mu     sync.RWMutex
	corpus *corpus.Corpus
	source loader.Source
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// ensureCorpus returns the cached corpus, loading it if needed.
func (h *Handlers) ensureCorpus(ctx context.Context) (*corpus.Corpus, error) {
	h.mu.RLock()
	c := h.corpus
	h.mu.RUnlock()
	if c != nil {
		return c, nil
	}
	return h.reload(ctx)
}

// reload fetches a fresh corpus through the fallback chain and replaces
// the cache.
func (h *Handlers) reload(ctx context.Context) (*corpus.Corpus, error) {
	out, err := ops.Load(ctx, h.cfg)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.corpus = out.Corpus
	h.source = out.Source
	h.mu.Unlock()

	return out.Corpus, nil
}

// SetCorpus seeds the cache directly. Used by the CLI when a local
// artifact is already loaded, and by tests.
func (h *Handlers) SetCorpus(c *corpus.Corpus, source loader.Source) {
	h.mu.Lock()
	h.corpus = c
	h.source = source
	h.mu.Unlock()
}

// Request types for each tool

// SearchRequest represents the arguments for case_search.
type SearchRequest struct {
	Query          string `json:"query,omitempty"`
	Category       string `json:"category,omitempty"`
	Tag            string `json:"tag,omitempty"`
	Author         string `json:"author,omitempty"`
	OnlyWithImages bool   `json:"only_with_images,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// FetchRequest represents the arguments for case_fetch.
type FetchRequest struct {
	CaseNumber int `json:"case_number"`
}

// FavoriteToggleRequest represents the arguments for favorite_toggle.
type FavoriteToggleRequest struct {
	CaseNumber int `json:"case_number"`
}

// Handler implementations

// HandleSearch handles the case_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	c, err := h.ensureCorpus(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.SearchCases(c, ops.SearchInput{
		Query:          input.Query,
		Category:       input.Category,
		Tag:            input.Tag,
		Author:         input.Author,
		OnlyWithImages: input.OnlyWithImages,
		Limit:          input.Limit,
		Offset:         input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the case_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	c, err := h.ensureCorpus(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.GetCase(c, input.CaseNumber)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategoryList handles the category_list tool call.
func (h *Handlers) HandleCategoryList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := h.ensureCorpus(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(ops.ListCategories(c))
}

// HandleFavoriteToggle handles the favorite_toggle tool call.
func (h *Handlers) HandleFavoriteToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FavoriteToggleRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	c, err := h.ensureCorpus(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.ToggleFavorite(h.db, c, input.CaseNumber)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFavoriteList handles the favorite_list tool call.
func (h *Handlers) HandleFavoriteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := h.ensureCorpus(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.ListFavorites(h.db, c)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// ReloadOutput is the corpus_reload result payload.
type ReloadOutput struct {
	Source      loader.Source `json:"source"`
	TotalCases  int           `json:"total_cases"`
	LastUpdated string        `json:"last_updated"`
}

// HandleReload handles the corpus_reload tool call.
func (h *Handlers) HandleReload(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := h.reload(ctx)
	if err != nil {
		return errorResult(err), nil
	}

	h.mu.RLock()
	source := h.source
	h.mu.RUnlock()

	return successResult(ReloadOutput{
		Source:      source,
		TotalCases:  c.TotalCases,
		LastUpdated: c.LastUpdated,
	})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if appErr, ok := err.(*errors.Error); ok {
		errorObj := map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
			"status":  appErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if appErr.Code != errors.ErrInternal && appErr.Details != nil {
			errorObj["details"] = appErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
