package corpus

// Version is the artifact schema version.
const Version = "1.0.0"

// Description is the fixed corpus description embedded in the artifact.
const Description = "Awesome Nano Banana Images 提示词数据集"

// Images holds the reference image URLs for a case. Slot order is
// positional: the first image in the source document is the gemini render,
// the second the gpt4o render. Empty slots are omitted from the artifact.
type Images struct {
	Gemini string `json:"gemini,omitempty"`
	GPT4o  string `json:"gpt4o,omitempty"`
}

// Case is one classified, tagged prompt case as it appears in the artifact.
type Case struct {
	// CaseNumber is the number from the section heading. Uniqueness is not
	// enforced: duplicate numbers in the source document both survive.
	CaseNumber int `json:"caseNumber"`

	// Title is the heading title, whitespace-trimmed.
	Title string `json:"title"`

	// Author is the attribution with @ and bracket noise stripped.
	Author string `json:"author"`

	// SourceURL is the 原文链接 target, empty if the section has none.
	SourceURL string `json:"sourceUrl"`

	// Category is exactly one display name from the fixed catalog.
	Category string `json:"category"`

	// Tags is the set of matched tag labels. May be empty, never null.
	Tags []string `json:"tags"`

	// Images holds up to two reference image URLs.
	Images Images `json:"images"`

	// Prompt is the generation prompt from the fenced 提示词 block.
	// Always non-empty: sections without one are dropped during extraction.
	Prompt string `json:"prompt"`

	// Notes is the optional 注意 text. Omitted from the artifact when absent.
	Notes string `json:"notes,omitempty"`

	// RequiresUpload is true when the case needs an uploaded reference image.
	RequiresUpload bool `json:"requiresUpload"`

	// CreatedAt and UpdatedAt are RFC 3339 timestamps with millisecond
	// precision, identical for every case assembled in one run.
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// HasImages reports whether at least one image slot is populated.
func (c *Case) HasImages() bool {
	return c.Images.Gemini != "" || c.Images.GPT4o != ""
}

// Category describes one entry of the fixed category catalog.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Corpus is the versioned artifact: the only durable output of a pipeline
// run, treated as immutable by all readers until the next run replaces it.
type Corpus struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Description string     `json:"description"`
	TotalCases  int        `json:"totalCases"`
	Cases       []Case     `json:"cases"`
	Categories  []Category `json:"categories"`
}

// FindCase returns the first case with the given number, or nil.
func (c *Corpus) FindCase(caseNumber int) *Case {
	for i := range c.Cases {
		if c.Cases[i].CaseNumber == caseNumber {
			return &c.Cases[i]
		}
	}
	return nil
}

// CountByCategory returns the number of cases per category display name.
// Categories with no cases are present with a zero count so the catalog
// can always be rendered in full.
func (c *Corpus) CountByCategory() map[string]int {
	counts := make(map[string]int, len(c.Categories))
	for _, cat := range c.Categories {
		counts[cat.Name] = 0
	}
	for i := range c.Cases {
		counts[c.Cases[i].Category]++
	}
	return counts
}
