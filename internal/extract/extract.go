package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// RawCase is one record recovered from the source document before
// classification. RawCases are ephemeral: they live only within a single
// pipeline run.
type RawCase struct {
	CaseNumber int
	Title      string
	Author     string
	SourceURL  string

	// GeminiImage and GPT4oImage are the first and second inline image
	// URLs of the section, in document order. Images beyond the second
	// are ignored.
	GeminiImage string
	GPT4oImage  string

	Prompt string

	// Notes is empty when the section has no 注意 marker. A present but
	// blank note is treated as absent.
	Notes string

	RequiresUpload bool
}

// headingPattern matches a case section heading:
// "### 案例 <number>：<title> (by <author>)". Title and author are lazy and
// confined to the heading line.
var headingPattern = regexp.MustCompile(`### 案例 (\d+)：(.+?) \(by (.+?)\)`)

// sourcePattern matches the canonical source link "[原文链接](url)".
var sourcePattern = regexp.MustCompile(`\[原文链接\]\((.+?)\)`)

// imagePattern matches inline image embeds in the section body.
var imagePattern = regexp.MustCompile(`<img src="([^"]+)"`)

// promptPattern matches the first fenced code block labelled with a bolded
// 提示词 marker. The capture is trimmed by the caller.
var promptPattern = regexp.MustCompile("(?s)\\*\\*提示词\\*\\*\\s*```\\s*(.*?)\\s*```")

// notePattern marks the start of the optional note text.
var notePattern = regexp.MustCompile(`\*注意[：:]`)

// Upload markers: a literal phrase anywhere in the body, or a bracketed
// placeholder token inside the prompt itself.
const (
	uploadPhrase      = "需上传参考图片"
	uploadPlaceholder = "【上传图片】"
)

// Parse scans the full document text and returns the retained records in
// document order. A section begins at a heading match and runs until the
// next heading or end of document. Sections missing a case number, a
// non-blank title, or a fenced prompt are dropped here, not merely flagged.
// Duplicate case numbers are preserved as-is.
func Parse(content string) []RawCase {
	matches := headingPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	cases := make([]RawCase, 0, len(matches))
	for i, m := range matches {
		// m indices: [full0 full1 num0 num1 title0 title1 author0 author1]
		number, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			continue
		}
		title := strings.TrimSpace(content[m[4]:m[5]])
		author := content[m[6]:m[7]]

		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := content[m[1]:bodyEnd]

		prompt := extractPrompt(body)
		if title == "" || prompt == "" {
			continue
		}

		c := RawCase{
			CaseNumber: number,
			Title:      title,
			Author:     CleanAuthor(author),
			SourceURL:  strings.TrimSpace(extractSource(body)),
			Prompt:     prompt,
			Notes:      extractNote(body),
			RequiresUpload: strings.Contains(body, uploadPhrase) ||
				strings.Contains(prompt, uploadPlaceholder),
		}
		c.GeminiImage, c.GPT4oImage = extractImages(body)
		cases = append(cases, c)
	}

	return cases
}

// extractSource returns the URL of the first 原文链接 link, or "".
func extractSource(body string) string {
	m := sourcePattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractImages returns the first two inline image URLs in document order.
func extractImages(body string) (gemini, gpt4o string) {
	matches := imagePattern.FindAllStringSubmatch(body, 2)
	if len(matches) >= 1 {
		gemini = strings.TrimSpace(matches[0][1])
	}
	if len(matches) >= 2 {
		gpt4o = strings.TrimSpace(matches[1][1])
	}
	return gemini, gpt4o
}

// extractPrompt returns the trimmed contents of the 提示词 fenced block, or
// "" when the section has none (the record is then dropped by Parse).
func extractPrompt(body string) string {
	m := promptPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractNote returns the note text following the 注意 marker, up to the
// next blank line or bold marker. Leading whitespace after the marker is
// skipped before scanning for a terminator, so a note separated from its
// marker by a blank line is still captured.
func extractNote(body string) string {
	loc := notePattern.FindStringIndex(body)
	if loc == nil {
		return ""
	}

	rest := strings.TrimLeft(body[loc[1]:], " \t\r\n")
	end := len(rest)
	if i := strings.Index(rest, "\n\n"); i >= 0 && i < end {
		end = i
	}
	if i := strings.Index(rest, "**"); i >= 0 && i < end {
		end = i
	}
	return strings.TrimSpace(rest[:end])
}
