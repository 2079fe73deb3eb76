package classify

import (
	"slices"
	"testing"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		prompt string
		want   []string
	}{
		{
			name:   "single tag",
			title:  "黑白影像",
			prompt: "高对比度",
			want:   []string{"黑白"},
		},
		{
			name:   "multiple tags in declaration order",
			title:  "可爱针织玩偶",
			prompt: "手工钩织的毛线娃娃",
			want:   []string{"可爱", "针织", "玩偶"},
		},
		{
			name:   "no tags",
			title:  "别的",
			prompt: "毫无匹配的内容",
			want:   []string{},
		},
		{
			name:   "cyberpunk implies future tag",
			title:  "夜间城市",
			prompt: "夜晚，赛博朋克风格的城市",
			want:   []string{"未来"},
		},
		{
			name:   "english keyword case insensitive",
			title:  "Anime Figure",
			prompt: "GAME asset",
			want:   []string{"动漫", "游戏"},
		},
		{
			name:   "keyword in both title and prompt counted once",
			title:  "3D立体",
			prompt: "三维3d场景",
			want:   []string{"3D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tags(tt.title, tt.prompt)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tags(%q, %q) = %v, want %v", tt.title, tt.prompt, got, tt.want)
			}
		})
	}
}

func TestTags_Idempotent(t *testing.T) {
	title, prompt := "可爱的3D手办", "定制个性化的动漫模型"

	first := Tags(title, prompt)
	for range 5 {
		again := Tags(title, prompt)
		if !slices.Equal(first, again) {
			t.Fatalf("Tags not stable across runs: %v vs %v", first, again)
		}
	}
}

func TestTags_NeverNil(t *testing.T) {
	got := Tags("", "")
	if got == nil {
		t.Fatal("Tags should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("Tags(\"\", \"\") = %v, want empty", got)
	}
}

func TestTags_NoDuplicates(t *testing.T) {
	got := Tags("玩偶娃娃", "玩偶 娃娃 玩偶")
	seen := make(map[string]bool)
	for _, tag := range got {
		if seen[tag] {
			t.Fatalf("duplicate tag %q in %v", tag, got)
		}
		seen[tag] = true
	}
}
