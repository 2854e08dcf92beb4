package models

import "time"

// Prompt is a shared prompt listing. Comments are kept in insertion order,
// which is also chronological order. The Author snapshot is immutable after
// creation.
type Prompt struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Description   string    `json:"description" yaml:"description"`
	PromptContent string    `json:"prompt_content" yaml:"prompt_content"`
	Tags          []string  `json:"tags" yaml:"tags"`
	Author        Author    `json:"author" yaml:"author"`
	Upvotes       int       `json:"upvotes" yaml:"upvotes"`
	Comments      []Comment `json:"comments" yaml:"comments"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
}

// Comment is a single comment on a prompt. Comments are append-only: they
// are never edited or deleted.
type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Author    Author    `json:"author" yaml:"author"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// HasTag reports whether the prompt carries the given tag. Duplicate tags in
// the source data are tolerated; membership is what matters.
func (p *Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the prompt.
func (p *Prompt) Clone() Prompt {
	out := *p
	out.Tags = append([]string(nil), p.Tags...)
	out.Comments = append([]Comment(nil), p.Comments...)
	return out
}
