// Package models contains data structures for the application's domain models.
package models

// User represents a registered member of the marketplace. The Prompts,
// SavedPrompts, and UpvotedPrompts fields hold prompt IDs, not embedded
// prompts.
type User struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Email          string   `json:"email" yaml:"email"`
	Password       string   `json:"-" yaml:"password,omitempty"`
	AvatarURL      string   `json:"avatar_url" yaml:"avatar_url"`
	Followers      int      `json:"followers" yaml:"followers"`
	Following      int      `json:"following" yaml:"following"`
	Prompts        []string `json:"prompts" yaml:"prompts"`
	SavedPrompts   []string `json:"saved_prompts" yaml:"saved_prompts"`
	UpvotedPrompts []string `json:"upvoted_prompts" yaml:"upvoted_prompts"`
}

// Author is a denormalized copy of a user's public identity, embedded in
// prompts and comments at the moment they are written. It is never updated
// afterwards: profile changes only touch the users collection, existing
// snapshots keep the identity the author had at write time.
type Author struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// Snapshot captures the user's current identity as an Author value.
// This is the only way author snapshots are constructed.
func (u *User) Snapshot() Author {
	return Author{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

// Clone returns a deep copy of the user so callers cannot alias the
// store's internal slices.
func (u *User) Clone() User {
	out := *u
	out.Prompts = append([]string(nil), u.Prompts...)
	out.SavedPrompts = append([]string(nil), u.SavedPrompts...)
	out.UpvotedPrompts = append([]string(nil), u.UpvotedPrompts...)
	return out
}
