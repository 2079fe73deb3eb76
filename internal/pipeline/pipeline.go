package pipeline

import (
	"sort"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/classify"
	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/extract"
)

// timestampLayout matches the millisecond-precision UTC format the artifact
// has always used.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// dateLayout is the calendar-date format of the lastUpdated field.
const dateLayout = "2006-01-02"

// Build runs the full extraction pipeline over the document text and
// assembles the corpus. It is the single shared engine: both the offline
// generator and the runtime fallback loader call it, so classification and
// tagging behave identically on either path. No I/O happens here; callers
// inject reading and writing.
func Build(content string, now time.Time) *corpus.Corpus {
	return Assemble(extract.Parse(content), now)
}

// Assemble classifies and tags the records, sorts them descending by case
// number (stable: ties keep extraction order), stamps every case with the
// same timestamps, and pairs the result with the static category catalog.
// An empty input yields a corpus with zero cases; deciding whether that is
// a problem is the caller's job.
func Assemble(records []extract.RawCase, now time.Time) *corpus.Corpus {
	stamp := now.UTC().Format(timestampLayout)

	cases := make([]corpus.Case, len(records))
	for i, r := range records {
		cases[i] = corpus.Case{
			CaseNumber: r.CaseNumber,
			Title:      r.Title,
			Author:     r.Author,
			SourceURL:  r.SourceURL,
			Category:   classify.Classify(r.Title, r.Prompt),
			Tags:       classify.Tags(r.Title, r.Prompt),
			Images: corpus.Images{
				Gemini: r.GeminiImage,
				GPT4o:  r.GPT4oImage,
			},
			Prompt:         r.Prompt,
			Notes:          r.Notes,
			RequiresUpload: r.RequiresUpload,
			CreatedAt:      stamp,
			UpdatedAt:      stamp,
		}
	}

	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].CaseNumber > cases[j].CaseNumber
	})

	return &corpus.Corpus{
		Version:     corpus.Version,
		LastUpdated: now.UTC().Format(dateLayout),
		Description: corpus.Description,
		TotalCases:  len(cases),
		Cases:       cases,
		Categories:  corpus.Catalog(),
	}
}
