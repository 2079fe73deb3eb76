package classify

import (
	"strings"

	"github.com/rb7a/nano-banana-prompt/internal/corpus"
)

// rule pairs a label with the keyword substrings that trigger it.
type rule struct {
	Label    string
	Keywords []string
}

// categoryRules is the ordered classification table. Order is significant:
// classification is first-match-wins, so a record matching several rules is
// assigned only to the earliest. Kept as a slice, not a map, so the order
// cannot be disturbed.
var categoryRules = []rule{
	{Label: "3D艺术", Keywords: []string{"3d", "立体", "三维"}},
	{Label: "动漫风格", Keywords: []string{"动漫", "卡通", "anime"}},
	{Label: "写实摄影", Keywords: []string{"写实", "摄影", "照片"}},
	{Label: "艺术插画", Keywords: []string{"艺术", "绘画", "插画"}},
	{Label: "创意设计", Keywords: []string{"创意", "设计", "广告"}},
	{Label: "可爱风格", Keywords: []string{"可爱", "萌", "q版"}},
	{Label: "未来科幻", Keywords: []string{"未来", "科幻", "赛博朋克", "cyberpunk"}},
	{Label: "复古怀旧", Keywords: []string{"复古", "怀旧", "vintage"}},
	{Label: "极简风格", Keywords: []string{"极简", "简约", "minimalist"}},
	{Label: "游戏风格", Keywords: []string{"游戏", "像素", "game"}},
}

// SearchText builds the lowercased text both the classifier and the tagger
// match against.
func SearchText(title, prompt string) string {
	return strings.ToLower(title + " " + prompt)
}

// Classify assigns exactly one category display name to the given title and
// prompt. Matching is case-insensitive substring containment, no word
// boundaries: false positives from substrings are an accepted limitation.
// Records matching no rule fall through to the fixed default category.
func Classify(title, prompt string) string {
	text := SearchText(title, prompt)

	for _, r := range categoryRules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Label
			}
		}
	}

	return corpus.DefaultCategory
}
