// Package loader resolves a corpus for consumers at runtime. It tries the
// published artifact first, falls back to parsing the source document, and
// finally falls back to a small built-in sample set so callers always get
// a usable corpus.
package loader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/pipeline"
)

// Source identifies which tier of the fallback chain produced the corpus.
type Source string

const (
	SourceArtifact Source = "artifact"
	SourceDocument Source = "document"
	SourceSample   Source = "sample"
)

const (
	DefaultBaseURL      = "http://localhost:5173"
	DefaultArtifactPath = "/prompts-data.json"
	DefaultDocumentPath = "/README.md"
)

// maxBodySize caps response reads; the real corpus is well under this.
const maxBodySize = 32 << 20

// Loader fetches and assembles the corpus. The zero value is not usable;
// call New.
type Loader struct {
	ArtifactURL string
	DocumentURL string
	Client      *http.Client
	Now         func() time.Time
}

// New returns a Loader for the given base URL using the conventional
// artifact and document paths. An empty baseURL selects the default
// development server address.
func New(baseURL string) *Loader {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Loader{
		ArtifactURL: baseURL + DefaultArtifactPath,
		DocumentURL: baseURL + DefaultDocumentPath,
		Client:      &http.Client{Timeout: 15 * time.Second},
		Now:         time.Now,
	}
}

// Load walks the fallback chain and returns the first corpus it can
// produce, along with the tier that produced it. It never returns an
// error for a missing or malformed artifact; only a nil context or
// similar programming mistake surfaces as an error.
func (l *Loader) Load(ctx context.Context) (*corpus.Corpus, Source, error) {
	if c := l.loadArtifact(ctx); c != nil {
		return c, SourceArtifact, nil
	}
	if c := l.loadDocument(ctx); c != nil {
		return c, SourceDocument, nil
	}
	return pipeline.Assemble(sampleRecords(), l.now()), SourceSample, nil
}

// loadArtifact fetches the published JSON artifact. Any failure, from a
// refused connection to a schema mismatch, yields nil so the caller moves
// to the next tier.
func (l *Loader) loadArtifact(ctx context.Context) *corpus.Corpus {
	body := l.fetch(ctx, l.ArtifactURL)
	if body == nil {
		return nil
	}
	var c corpus.Corpus
	if err := json.Unmarshal(body, &c); err != nil {
		return nil
	}
	if c.Cases == nil {
		return nil
	}
	return &c
}

// loadDocument fetches the markdown document and runs the full pipeline
// over it. A document that parses to zero cases is treated as a miss; the
// sample tier takes over.
func (l *Loader) loadDocument(ctx context.Context) *corpus.Corpus {
	body := l.fetch(ctx, l.DocumentURL)
	if body == nil {
		return nil
	}
	c := pipeline.Build(string(body), l.now())
	if c.TotalCases == 0 {
		return nil
	}
	return c
}

func (l *Loader) fetch(ctx context.Context, url string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := l.client().Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil
	}
	return body
}

func (l *Loader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return http.DefaultClient
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
