package models

// CategoryUncategorized is the fallback category every transaction starts in.
// The category store guarantees it is always present.
const CategoryUncategorized = "Uncategorized"

// CategoryConfig maps a category name to the keywords that select it.
// Keywords are stored normalized (upper case, trimmed) and deduplicated.
type CategoryConfig struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// HasKeyword reports whether the keyword is already present in the config.
func (c CategoryConfig) HasKeyword(keyword string) bool {
	for _, k := range c.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}
