package extract

import "strings"

// authorNoise strips the @ and bracket characters that commonly decorate
// attributions in the source document.
var authorNoise = strings.NewReplacer("@", "", "[", "", "]", "")

// CleanAuthor removes @, [ and ] characters and surrounding whitespace.
// No other transformation is performed: inputs are assumed to be in final
// display form already.
func CleanAuthor(author string) string {
	return strings.TrimSpace(authorNoise.Replace(author))
}
