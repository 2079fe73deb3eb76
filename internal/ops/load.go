package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/config"
	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
	"github.com/rb7a/nano-banana-prompt/internal/loader"
)

// LoadOutput contains the result of the Load operation.
type LoadOutput struct {
	Source      loader.Source  `json:"source"`
	TotalCases  int            `json:"total_cases"`
	LastUpdated string         `json:"last_updated"`
	Corpus      *corpus.Corpus `json:"-"`
}

// Load resolves a corpus over HTTP using the configured URLs and the
// artifact/document/sample fallback chain.
func Load(ctx context.Context, cfg *config.Config) (*LoadOutput, error) {
	l := loader.New(cfg.BaseURL)
	l.ArtifactURL = cfg.ResolveArtifactURL()
	l.DocumentURL = cfg.ResolveDocumentURL()
	if cfg.HTTPTimeoutSeconds > 0 {
		l.Client = &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}
	}

	c, source, err := l.Load(ctx)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return &LoadOutput{
		Source:      source,
		TotalCases:  c.TotalCases,
		LastUpdated: c.LastUpdated,
		Corpus:      c,
	}, nil
}

// LoadArtifactFile reads and validates a local artifact file. Unlike the
// HTTP chain there is no fallback: callers asked for this file
// specifically, so failures surface as errors.
func LoadArtifactFile(path string) (*corpus.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewArtifactUnavailable(path, err)
		}
		return nil, errors.NewInternal(err)
	}

	var c corpus.Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.NewArtifactMalformed(path, err)
	}
	if c.Cases == nil {
		return nil, errors.NewArtifactMalformed(path, nil)
	}

	return &c, nil
}
