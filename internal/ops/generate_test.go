package ops

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rb7a/nano-banana-prompt/internal/corpus"
	"github.com/rb7a/nano-banana-prompt/internal/errors"
)

const generateDoc = "### 案例 2：可爱猫咪贴纸 (by @cat)\n\n" +
	"[原文链接](https://example.com/2)\n\n" +
	"**提示词**\n\n" +
	"```\n一组可爱的Q版猫咪贴纸\n```\n\n" +
	"### 案例 1：城市夜景 (by @city)\n\n" +
	"[原文链接](https://example.com/1)\n\n" +
	"**提示词**\n\n" +
	"```\n赛博朋克风格的未来城市夜景\n```\n"

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "README.md")
	artifactPath := filepath.Join(dir, "prompts-data.json")
	if err := os.WriteFile(docPath, []byte(generateDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	out, err := Generate(context.Background(), GenerateInput{
		DocumentPath: docPath,
		ArtifactPath: artifactPath,
		Now:          now,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out.TotalCases != 2 {
		t.Errorf("TotalCases = %d, want 2", out.TotalCases)
	}
	if out.LastUpdated != "2025-03-14" {
		t.Errorf("LastUpdated = %q", out.LastUpdated)
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	var c corpus.Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("artifact not valid JSON: %v", err)
	}
	if c.Version != corpus.Version {
		t.Errorf("version = %q", c.Version)
	}
	if len(c.Cases) != 2 || c.Cases[0].CaseNumber != 2 || c.Cases[1].CaseNumber != 1 {
		t.Errorf("cases not sorted descending: %+v", c.Cases)
	}
	if c.Cases[1].Category != "未来科幻" {
		t.Errorf("case 1 category = %q, want 未来科幻", c.Cases[1].Category)
	}
}

func TestGenerate_CategoryCounts(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "README.md")
	if err := os.WriteFile(docPath, []byte(generateDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := Generate(context.Background(), GenerateInput{
		DocumentPath: docPath,
		ArtifactPath: filepath.Join(dir, "out.json"),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	counts := make(map[string]int)
	for _, cc := range out.Categories {
		counts[cc.Name] = cc.Count
	}
	if counts["可爱风格"] != 1 {
		t.Errorf("可爱风格 count = %d, want 1", counts["可爱风格"])
	}
	if counts["未来科幻"] != 1 {
		t.Errorf("未来科幻 count = %d, want 1", counts["未来科幻"])
	}
	if counts["其他"] != 0 {
		t.Errorf("其他 count = %d, want 0", counts["其他"])
	}
	// All catalog entries are reported, including empty ones.
	if len(out.Categories) != len(corpus.Catalog()) {
		t.Errorf("len(Categories) = %d, want %d", len(out.Categories), len(corpus.Catalog()))
	}
}

func TestGenerate_DocumentMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(context.Background(), GenerateInput{
		DocumentPath: filepath.Join(dir, "missing.md"),
		ArtifactPath: filepath.Join(dir, "out.json"),
	})
	if !errors.Is(err, errors.ErrDocumentMissing) {
		t.Errorf("error = %v, want DOCUMENT_MISSING", err)
	}
}

func TestGenerate_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "README.md")
	if err := os.WriteFile(docPath, []byte("# 文档\n\n没有案例。\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	artifactPath := filepath.Join(dir, "out.json")

	_, err := Generate(context.Background(), GenerateInput{
		DocumentPath: docPath,
		ArtifactPath: artifactPath,
	})
	if !errors.Is(err, errors.ErrEmptyCorpus) {
		t.Errorf("error = %v, want EMPTY_CORPUS", err)
	}
	if _, statErr := os.Stat(artifactPath); !os.IsNotExist(statErr) {
		t.Error("artifact written despite empty corpus")
	}
}

func TestGenerate_MissingPaths(t *testing.T) {
	_, err := Generate(context.Background(), GenerateInput{ArtifactPath: "out.json"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
	_, err = Generate(context.Background(), GenerateInput{DocumentPath: "README.md"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}
