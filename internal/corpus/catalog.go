package corpus

// DefaultCategory is assigned when no classification rule matches.
const DefaultCategory = "其他"

// catalog is the fixed category catalog. It is static configuration: a
// category absent from the current corpus still appears here.
var catalog = []Category{
	{
		ID:          "3d-art",
		Name:        "3D艺术",
		Description: "立体感强烈的三维艺术作品",
		Icon:        "🎨",
	},
	{
		ID:          "anime-style",
		Name:        "动漫风格",
		Description: "日系动漫和卡通风格图像",
		Icon:        "🎭",
	},
	{
		ID:          "realistic-photography",
		Name:        "写实摄影",
		Description: "逼真的摄影风格作品",
		Icon:        "📸",
	},
	{
		ID:          "art-illustration",
		Name:        "艺术插画",
		Description: "富有艺术感的插画作品",
		Icon:        "🖼️",
	},
	{
		ID:          "creative-design",
		Name:        "创意设计",
		Description: "创意十足的设计作品",
		Icon:        "💡",
	},
	{
		ID:          "cute-style",
		Name:        "可爱风格",
		Description: "萌系可爱的Q版作品",
		Icon:        "🥰",
	},
	{
		ID:          "futuristic-scifi",
		Name:        "未来科幻",
		Description: "充满科技感的未来主义作品",
		Icon:        "🚀",
	},
	{
		ID:          "retro-vintage",
		Name:        "复古怀旧",
		Description: "怀旧复古风格作品",
		Icon:        "📻",
	},
	{
		ID:          "minimalist",
		Name:        "极简风格",
		Description: "简约清新的极简主义作品",
		Icon:        "⚪",
	},
	{
		ID:          "game-style",
		Name:        "游戏风格",
		Description: "游戏相关的像素和概念艺术",
		Icon:        "🎮",
	},
	{
		ID:          "other",
		Name:        "其他",
		Description: "其他风格的精彩作品",
		Icon:        "✨",
	},
}

// Catalog returns a copy of the fixed category catalog.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryByName returns the catalog entry with the given display name, or nil.
func CategoryByName(name string) *Category {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}
