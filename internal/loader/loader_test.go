package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/pipeline"
)

const testDoc = "### 案例 12：复古海报 (by @retro)\n\n" +
	"[原文链接](https://example.com/12)\n\n" +
	"**提示词**\n\n" +
	"```\n一张复古怀旧风格的海报\n```\n"

const testArtifact = `{
  "version": "1.0.0",
  "lastUpdated": "2025-03-01",
  "description": "Awesome Nano Banana Images 提示词数据集",
  "totalCases": 1,
  "cases": [
    {
      "caseNumber": 42,
      "title": "测试",
      "author": "tester",
      "sourceUrl": "https://example.com/42",
      "category": "其他",
      "tags": [],
      "images": {},
      "prompt": "一个提示词",
      "requiresUpload": false,
      "createdAt": "2025-03-01T00:00:00.000Z",
      "updatedAt": "2025-03-01T00:00:00.000Z"
    }
  ],
  "categories": []
}`

func newTestLoader(srv *httptest.Server) *Loader {
	l := New(srv.URL)
	l.Client = srv.Client()
	l.Now = func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }
	return l
}

func TestLoadArtifactTier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case DefaultArtifactPath:
			w.Write([]byte(testArtifact))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, src, err := newTestLoader(srv).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceArtifact {
		t.Fatalf("source = %q, want %q", src, SourceArtifact)
	}
	if len(c.Cases) != 1 || c.Cases[0].CaseNumber != 42 {
		t.Errorf("unexpected cases: %+v", c.Cases)
	}
	if c.LastUpdated != "2025-03-01" {
		t.Errorf("lastUpdated = %q, want artifact value preserved", c.LastUpdated)
	}
}

func TestLoadFallsBackToDocument(t *testing.T) {
	tests := []struct {
		name     string
		artifact http.HandlerFunc
	}{
		{"missing", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }},
		{"malformed", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("{not json")) }},
		{"no cases field", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"version":"1.0.0"}`)) }},
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case DefaultArtifactPath:
					tt.artifact(w, r)
				case DefaultDocumentPath:
					w.Write([]byte(testDoc))
				default:
					http.NotFound(w, r)
				}
			}))
			defer srv.Close()

			c, src, err := newTestLoader(srv).Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if src != SourceDocument {
				t.Fatalf("source = %q, want %q", src, SourceDocument)
			}
			if len(c.Cases) != 1 || c.Cases[0].CaseNumber != 12 {
				t.Errorf("unexpected cases: %+v", c.Cases)
			}
			if c.Cases[0].Category != "复古怀旧" {
				t.Errorf("category = %q, want 复古怀旧", c.Cases[0].Category)
			}
		})
	}
}

func TestLoadFallsBackToSample(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == DefaultDocumentPath {
			w.Write([]byte("# 没有案例的文档\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, src, err := newTestLoader(srv).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceSample {
		t.Fatalf("source = %q, want %q", src, SourceSample)
	}
	if c.TotalCases != 8 {
		t.Errorf("totalCases = %d, want 8", c.TotalCases)
	}
	if c.Cases[0].CaseNumber != 100 || c.Cases[7].CaseNumber != 93 {
		t.Errorf("sample cases not sorted descending: first %d, last %d",
			c.Cases[0].CaseNumber, c.Cases[7].CaseNumber)
	}
}

func TestLoadSampleWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := srv.Client()
	srv.Close()

	l := New(srv.URL)
	l.Client = client
	_, src, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceSample {
		t.Fatalf("source = %q, want %q", src, SourceSample)
	}
}

func TestSampleRecordsClassified(t *testing.T) {
	c := pipeline.Assemble(sampleRecords(), time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	byNumber := func(n int) int {
		for i, cs := range c.Cases {
			if cs.CaseNumber == n {
				return i
			}
		}
		t.Fatalf("case %d not found", n)
		return -1
	}

	if got := c.Cases[byNumber(100)].Category; got != "创意设计" {
		t.Errorf("case 100 category = %q, want 创意设计", got)
	}
	if got := c.Cases[byNumber(96)].Category; got != "动漫风格" {
		t.Errorf("case 96 category = %q, want 动漫风格", got)
	}
	if !c.Cases[byNumber(97)].RequiresUpload {
		t.Errorf("case 97 should require an uploaded reference image")
	}
	for _, cs := range c.Cases {
		if !cs.HasImages() {
			t.Errorf("case %d missing images", cs.CaseNumber)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	l := New("")
	if l.ArtifactURL != DefaultBaseURL+DefaultArtifactPath {
		t.Errorf("artifact URL = %q", l.ArtifactURL)
	}
	if l.DocumentURL != DefaultBaseURL+DefaultDocumentPath {
		t.Errorf("document URL = %q", l.DocumentURL)
	}
	if l.Client == nil || l.Now == nil {
		t.Error("client and clock should be populated")
	}
}
