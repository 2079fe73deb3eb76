package classify

import "strings"

// tagRules maps each tag label to its trigger keywords. Unlike the category
// table, every rule is evaluated: a record may receive any number of tags,
// including none. Declaration order fixes the output order so runs are
// reproducible; the order itself carries no meaning.
var tagRules = []rule{
	{Label: "3D", Keywords: []string{"3d", "立体", "三维"}},
	{Label: "动漫", Keywords: []string{"动漫", "卡通", "anime"}},
	{Label: "写实", Keywords: []string{"写实", "摄影", "照片"}},
	{Label: "艺术", Keywords: []string{"艺术", "绘画", "插画"}},
	{Label: "创意", Keywords: []string{"创意", "设计", "广告"}},
	{Label: "可爱", Keywords: []string{"可爱", "萌", "q版"}},
	{Label: "未来", Keywords: []string{"未来", "科幻", "赛博朋克", "cyberpunk"}},
	{Label: "复古", Keywords: []string{"复古", "怀旧", "vintage"}},
	{Label: "极简", Keywords: []string{"极简", "简约", "minimalist"}},
	{Label: "游戏", Keywords: []string{"游戏", "像素", "game"}},
	{Label: "黑白", Keywords: []string{"黑白", "单色"}},
	{Label: "肖像", Keywords: []string{"肖像", "人像"}},
	{Label: "剪影", Keywords: []string{"剪影", "轮廓"}},
	{Label: "玻璃", Keywords: []string{"玻璃", "透明"}},
	{Label: "针织", Keywords: []string{"针织", "毛线"}},
	{Label: "玩偶", Keywords: []string{"玩偶", "娃娃"}},
	{Label: "手办", Keywords: []string{"手办", "模型"}},
	{Label: "定制", Keywords: []string{"定制", "个性化"}},
}

// Tags returns the set of tag labels whose keywords appear in the title or
// prompt. The result is deduplicated and never nil.
func Tags(title, prompt string) []string {
	text := SearchText(title, prompt)

	tags := make([]string, 0)
	seen := make(map[string]bool, len(tagRules))
	for _, r := range tagRules {
		if seen[r.Label] {
			continue
		}
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, r.Label)
				seen[r.Label] = true
				break
			}
		}
	}

	return tags
}
