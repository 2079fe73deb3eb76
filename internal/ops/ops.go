// Package ops implements the operations shared by the CLI and the MCP
// server. Each operation takes a typed input struct and returns a typed
// output struct; transports only translate.
package ops

import "strings"

// Pagination limits
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// cleanString trims whitespace; used to normalize optional filter values.
func cleanString(s string) string {
	return strings.TrimSpace(s)
}
