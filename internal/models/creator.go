package models

// Creator is a read-mostly aggregate used by the leaderboard and discovery
// views. It is an independent seed-time projection, not derived live from the
// users and prompts collections, so its counts may drift from them. That
// separation is deliberate and is not reconciled.
type Creator struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	AvatarURL    string `json:"avatar_url" yaml:"avatar_url"`
	Followers    int    `json:"followers" yaml:"followers"`
	Following    int    `json:"following" yaml:"following"`
	PromptsCount int    `json:"prompts_count" yaml:"prompts_count"`
	TotalUpvotes int    `json:"total_upvotes" yaml:"total_upvotes"`
}

// Dataset is a full snapshot of the collections the store owns. It is what
// seed presets produce and what the store is initialized from.
type Dataset struct {
	Users    []User    `yaml:"users"`
	Prompts  []Prompt  `yaml:"prompts"`
	Creators []Creator `yaml:"creators"`
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Users:    make([]User, len(d.Users)),
		Prompts:  make([]Prompt, len(d.Prompts)),
		Creators: append([]Creator(nil), d.Creators...),
	}
	for i := range d.Users {
		out.Users[i] = d.Users[i].Clone()
	}
	for i := range d.Prompts {
		out.Prompts[i] = d.Prompts[i].Clone()
	}
	return out
}
