package ops

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
	"github.com/rb7a/nano-banana-prompt/internal/pipeline"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct {
	DocumentPath string    // required
	ArtifactPath string    // required
	Now          time.Time // zero value means time.Now()
}

// CategoryCount pairs a category display name with its case count.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GenerateOutput contains the result of the Generate operation.
type GenerateOutput struct {
	ArtifactPath string          `json:"artifact_path"`
	DocumentPath string          `json:"document_path"`
	TotalCases   int             `json:"total_cases"`
	LastUpdated  string          `json:"last_updated"`
	Categories   []CategoryCount `json:"categories"`
}

// Generate reads the markdown document, runs the pipeline, and writes the
// JSON artifact. A missing document or a run that yields zero cases is an
// error; a stale artifact must never be silently overwritten with nothing.
func Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if input.DocumentPath == "" {
		return nil, errors.NewInvalidRequest("document path is required")
	}
	if input.ArtifactPath == "" {
		return nil, errors.NewInvalidRequest("artifact path is required")
	}

	content, err := os.ReadFile(input.DocumentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewDocumentMissing(input.DocumentPath)
		}
		return nil, errors.NewInternal(err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	c := pipeline.Build(string(content), now)
	if c.TotalCases == 0 {
		return nil, errors.NewEmptyCorpus(input.DocumentPath)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := os.WriteFile(input.ArtifactPath, data, 0644); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &GenerateOutput{
		ArtifactPath: input.ArtifactPath,
		DocumentPath: input.DocumentPath,
		TotalCases:   c.TotalCases,
		LastUpdated:  c.LastUpdated,
		Categories:   categoryCounts(c),
	}, nil
}

// categoryCounts reports per-category case counts in catalog order.
// Cases classified outside the catalog (possible when reading an artifact
// produced elsewhere) are appended after the known categories.
func categoryCounts(c *corpus.Corpus) []CategoryCount {
	counts := c.CountByCategory()

	out := make([]CategoryCount, 0, len(counts))
	for _, cat := range c.Categories {
		out = append(out, CategoryCount{Name: cat.Name, Count: counts[cat.Name]})
		delete(counts, cat.Name)
	}
	for name, count := range counts {
		out = append(out, CategoryCount{Name: name, Count: count})
	}
	return out
}
