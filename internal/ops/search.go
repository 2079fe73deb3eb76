package ops

import (
	"strconv"
	"strings"

	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
)

// SearchInput contains parameters for the SearchCases operation.
// All filters are optional; an empty input matches every case.
type SearchInput struct {
	Query          string // matched against title, prompt, tags, and author
	Category       string // exact category display name
	Tag            string // exact tag membership
	Author         string // exact author, case-insensitive
	OnlyWithImages bool
	Limit          int // default: 20, max: 100
	Offset         int // default: 0
}

// SearchOutput contains the result of the SearchCases operation.
type SearchOutput struct {
	Items      []corpus.Case `json:"items"`
	Pagination Pagination    `json:"pagination"`
	Sort       string        `json:"sort"` // "case_number_desc"
}

// SearchCases filters the corpus. The corpus is already sorted descending
// by case number, so matches keep that order.
func SearchCases(c *corpus.Corpus, input SearchInput) (*SearchOutput, error) {
	query := strings.ToLower(cleanString(input.Query))
	category := cleanString(input.Category)
	tag := cleanString(input.Tag)
	author := strings.ToLower(cleanString(input.Author))

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	offset := max(input.Offset, 0)

	var matches []corpus.Case
	for i := range c.Cases {
		cs := &c.Cases[i]
		if query != "" && !matchesQuery(cs, query) {
			continue
		}
		if category != "" && cs.Category != category {
			continue
		}
		if tag != "" && !hasTag(cs, tag) {
			continue
		}
		if author != "" && strings.ToLower(cs.Author) != author {
			continue
		}
		if input.OnlyWithImages && !cs.HasImages() {
			continue
		}
		matches = append(matches, *cs)
	}

	total := len(matches)
	if offset >= total {
		matches = nil
	} else {
		matches = matches[offset:]
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		matches = []corpus.Case{}
	}

	return &SearchOutput{
		Items: matches,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(matches) < total,
			Total:   total,
		},
		Sort: "case_number_desc",
	}, nil
}

// matchesQuery reports whether a lowercased query hits the title, prompt,
// any tag, or the author.
func matchesQuery(cs *corpus.Case, query string) bool {
	if strings.Contains(strings.ToLower(cs.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(cs.Prompt), query) {
		return true
	}
	for _, t := range cs.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(cs.Author), query)
}

func hasTag(cs *corpus.Case, tag string) bool {
	for _, t := range cs.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GetCase returns the case with the given number.
func GetCase(c *corpus.Corpus, caseNumber int) (*corpus.Case, error) {
	if caseNumber <= 0 {
		return nil, errors.NewInvalidRequest("case number must be positive")
	}
	cs := c.FindCase(caseNumber)
	if cs == nil {
		return nil, errors.NewNotFound(strconv.Itoa(caseNumber))
	}
	return cs, nil
}

// CategoryInfo is a catalog entry with its live case count.
type CategoryInfo struct {
	corpus.Category
	PromptCount int `json:"promptCount"`
}

// ListCategoriesOutput contains the result of the ListCategories operation.
type ListCategoriesOutput struct {
	Categories []CategoryInfo `json:"categories"`
	TotalCases int            `json:"total_cases"`
}

// ListCategories returns the catalog with per-category counts computed
// from the loaded corpus. Empty categories stay visible.
func ListCategories(c *corpus.Corpus) *ListCategoriesOutput {
	counts := c.CountByCategory()

	categories := make([]CategoryInfo, len(c.Categories))
	for i, cat := range c.Categories {
		categories[i] = CategoryInfo{Category: cat, PromptCount: counts[cat.Name]}
	}

	return &ListCategoriesOutput{
		Categories: categories,
		TotalCases: c.TotalCases,
	}
}
