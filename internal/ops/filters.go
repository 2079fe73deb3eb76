package ops

import (
	"database/sql"
	"encoding/json"

	"github.com/rb7a/nano-banana-prompt/internal/db"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
)

// filterStateKey is the filter_state row holding the persisted filters.
const filterStateKey = "filters"

// FilterState is the persisted browse state: which filters a user left
// active last time. Field names match the artifact's camelCase convention.
type FilterState struct {
	SearchQuery    string   `json:"searchQuery"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	Authors        []string `json:"authors"`
	OnlyWithImages bool     `json:"onlyWithImages"`
}

// IsActive reports whether any filter is set.
func (f *FilterState) IsActive() bool {
	return f.SearchQuery != "" ||
		len(f.Categories) > 0 ||
		len(f.Tags) > 0 ||
		len(f.Authors) > 0 ||
		f.OnlyWithImages
}

// GetFilters returns the persisted filter state, or the zero state when
// nothing has been saved yet.
func GetFilters(database *sql.DB) (*FilterState, error) {
	value, ok, err := db.GetFilterValue(database, filterStateKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &FilterState{}, nil
	}

	var state FilterState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return nil, errors.NewInternal(err)
	}
	return &state, nil
}

// SetFilters persists the filter state, replacing whatever was saved.
func SetFilters(database *sql.DB, state *FilterState) error {
	if state == nil {
		return errors.NewInvalidRequest("filter state is required")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return errors.NewInternal(err)
	}
	return db.SetFilterValue(database, filterStateKey, string(data))
}

// ResetFilters clears the persisted filter state.
func ResetFilters(database *sql.DB) error {
	return db.DeleteFilterValue(database, filterStateKey)
}
