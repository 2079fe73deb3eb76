package extract

import (
	"strconv"
	"strings"
	"testing"
)

var testDocument = "# Awesome Nano Banana Images\n" +
	"\n" +
	"一些介绍文字。\n" +
	"\n" +
	"### 案例 5：夜间城市 (by alice)\n" +
	"\n" +
	"[原文链接](https://example.com/post/5)\n" +
	"\n" +
	"<table>\n" +
	"<tr><td><img src=\"https://example.com/gemini-5.png\" width=\"300\"></td>\n" +
	"<td><img src=\"https://example.com/gpt4o-5.png\" width=\"300\"></td></tr>\n" +
	"</table>\n" +
	"\n" +
	"**提示词**\n" +
	"```\n" +
	"夜晚，赛博朋克风格的城市\n" +
	"```\n" +
	"\n" +
	"*注意：需要高分辨率输出*\n" +
	"\n" +
	"### 案例 4：针织玩偶 (by @bob)\n" +
	"\n" +
	"[原文链接](https://example.com/post/4)\n" +
	"\n" +
	"<img src=\"https://example.com/gemini-4.png\">\n" +
	"\n" +
	"**需上传参考图片**\n" +
	"\n" +
	"**提示词**\n" +
	"```\n" +
	"一个可爱的针织玩偶，【上传图片】人物形象\n" +
	"```\n" +
	"\n" +
	"### 案例 3：没有提示词的案例 (by carol)\n" +
	"\n" +
	"[原文链接](https://example.com/post/3)\n" +
	"\n" +
	"这一节没有提示词代码块。\n"

func TestParse_RetainedRecords(t *testing.T) {
	cases := Parse(testDocument)
	if len(cases) != 2 {
		t.Fatalf("Parse returned %d cases, want 2 (case 3 has no prompt block)", len(cases))
	}

	// Document order is preserved; sorting happens later in assembly.
	if cases[0].CaseNumber != 5 || cases[1].CaseNumber != 4 {
		t.Errorf("case numbers = %d, %d, want 5, 4", cases[0].CaseNumber, cases[1].CaseNumber)
	}
}

func TestParse_FullSection(t *testing.T) {
	cases := Parse(testDocument)
	c := cases[0]

	if c.Title != "夜间城市" {
		t.Errorf("Title = %q, want 夜间城市", c.Title)
	}
	if c.Author != "alice" {
		t.Errorf("Author = %q, want alice", c.Author)
	}
	if c.SourceURL != "https://example.com/post/5" {
		t.Errorf("SourceURL = %q", c.SourceURL)
	}
	if c.GeminiImage != "https://example.com/gemini-5.png" {
		t.Errorf("GeminiImage = %q", c.GeminiImage)
	}
	if c.GPT4oImage != "https://example.com/gpt4o-5.png" {
		t.Errorf("GPT4oImage = %q", c.GPT4oImage)
	}
	if c.Prompt != "夜晚，赛博朋克风格的城市" {
		t.Errorf("Prompt = %q", c.Prompt)
	}
	// The note runs to the next blank line, so the closing italic
	// asterisk is part of the captured text.
	if c.Notes != "需要高分辨率输出*" {
		t.Errorf("Notes = %q", c.Notes)
	}
	if c.RequiresUpload {
		t.Error("RequiresUpload should be false for case 5")
	}
}

func TestParse_UploadMarkers(t *testing.T) {
	cases := Parse(testDocument)
	c := cases[1]

	if !c.RequiresUpload {
		t.Error("RequiresUpload should be true for case 4 (phrase and placeholder)")
	}
	if c.GeminiImage == "" || c.GPT4oImage != "" {
		t.Errorf("images = %q, %q, want only the first slot populated", c.GeminiImage, c.GPT4oImage)
	}

	// Placeholder alone is sufficient.
	doc := "### 案例 1：测试 (by x)\n**提示词**\n```\n请结合【上传图片】生成\n```\n"
	got := Parse(doc)
	if len(got) != 1 || !got[0].RequiresUpload {
		t.Errorf("prompt placeholder should set RequiresUpload, got %+v", got)
	}
}

func TestParse_NoSections(t *testing.T) {
	if got := Parse("# 只是一个标题\n\n没有案例。\n"); got != nil {
		t.Errorf("Parse = %v, want nil for a document with no sections", got)
	}
	if got := Parse(""); got != nil {
		t.Errorf("Parse(\"\") = %v, want nil", got)
	}
}

func TestParse_MissingOptionalFields(t *testing.T) {
	doc := "### 案例 7：极简构图 (by dave)\n" +
		"**提示词**\n```\n极简主义的白色空间\n```\n"

	cases := Parse(doc)
	if len(cases) != 1 {
		t.Fatalf("Parse returned %d cases, want 1", len(cases))
	}
	c := cases[0]
	if c.SourceURL != "" {
		t.Errorf("SourceURL = %q, want empty", c.SourceURL)
	}
	if c.GeminiImage != "" || c.GPT4oImage != "" {
		t.Errorf("images should be empty, got %q, %q", c.GeminiImage, c.GPT4oImage)
	}
	if c.Notes != "" {
		t.Errorf("Notes = %q, want empty", c.Notes)
	}
}

func TestParse_DuplicateCaseNumbersBothSurvive(t *testing.T) {
	doc := "### 案例 2：第一个 (by a)\n**提示词**\n```\nprompt one\n```\n" +
		"### 案例 2：第二个 (by b)\n**提示词**\n```\nprompt two\n```\n"

	cases := Parse(doc)
	if len(cases) != 2 {
		t.Fatalf("Parse returned %d cases, want 2 (duplicates are not collapsed)", len(cases))
	}
	if cases[0].Title != "第一个" || cases[1].Title != "第二个" {
		t.Errorf("titles = %q, %q", cases[0].Title, cases[1].Title)
	}
}

func TestParse_ExtraImagesIgnored(t *testing.T) {
	doc := "### 案例 8：三张图 (by e)\n" +
		"<img src=\"https://example.com/1.png\">\n" +
		"<img src=\"https://example.com/2.png\">\n" +
		"<img src=\"https://example.com/3.png\">\n" +
		"**提示词**\n```\nsome prompt\n```\n"

	cases := Parse(doc)
	if len(cases) != 1 {
		t.Fatalf("Parse returned %d cases, want 1", len(cases))
	}
	if cases[0].GeminiImage != "https://example.com/1.png" {
		t.Errorf("GeminiImage = %q", cases[0].GeminiImage)
	}
	if cases[0].GPT4oImage != "https://example.com/2.png" {
		t.Errorf("GPT4oImage = %q", cases[0].GPT4oImage)
	}
}

func TestExtractNote(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "terminated by blank line",
			body: "*注意：保持长宽比\n\n后续内容",
			want: "保持长宽比",
		},
		{
			name: "terminated by bold marker",
			body: "*注意: keep the aspect ratio**提示词**",
			want: "keep the aspect ratio",
		},
		{
			name: "runs to end of body",
			body: "*注意：最后一行",
			want: "最后一行",
		},
		{
			name: "blank line between marker and text",
			body: "*注意：\n\n真正的内容**",
			want: "真正的内容",
		},
		{
			name: "no marker",
			body: "没有注意标记",
			want: "",
		},
		{
			name: "marker with nothing after",
			body: "*注意：   \n\n",
			want: "",
		},
		{
			name: "ascii colon",
			body: "*注意: uses ascii colon\n\n",
			want: "uses ascii colon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractNote(tt.body); got != tt.want {
				t.Errorf("extractNote(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestExtractPrompt_Trimmed(t *testing.T) {
	body := "**提示词**\n```\n\n  多行提示词\n第二行  \n\n```\n"
	want := "多行提示词\n第二行"
	if got := extractPrompt(body); got != want {
		t.Errorf("extractPrompt = %q, want %q", got, want)
	}
}

func TestExtractPrompt_FirstBlockOnly(t *testing.T) {
	body := "**提示词**\n```\nfirst\n```\n**提示词**\n```\nsecond\n```\n"
	if got := extractPrompt(body); got != "first" {
		t.Errorf("extractPrompt = %q, want first", got)
	}
}

func TestParse_BlankTitleDropped(t *testing.T) {
	// A title of pure whitespace survives the heading regex but fails the
	// retention rule after trimming.
	doc := "### 案例 6：  (by f)\n**提示词**\n```\nprompt\n```\n"
	if got := Parse(doc); len(got) != 0 {
		t.Errorf("Parse = %+v, want no retained cases", got)
	}
}

func TestParse_LargeDocumentOrder(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 25; i++ {
		sb.WriteString("### 案例 ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("：案例标题 (by author)\n**提示词**\n```\nprompt text\n```\n\n")
	}

	cases := Parse(sb.String())
	if len(cases) != 25 {
		t.Fatalf("Parse returned %d cases, want 25", len(cases))
	}
	for i, c := range cases {
		if c.CaseNumber != i+1 {
			t.Fatalf("case %d has number %d, want document order preserved", i, c.CaseNumber)
		}
	}
}
