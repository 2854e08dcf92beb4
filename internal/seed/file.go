package seed

import (
	"fmt"
	"os"

	"promptvault/internal/models"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a dataset fixture from a YAML file. Passwords in fixtures
// must already be bcrypt hashes; fixtures are development input, not a place
// for plaintext credentials.
func LoadFile(path string) (models.Dataset, error) {
	var ds models.Dataset
	raw, err := os.ReadFile(path)
	if err != nil {
		return ds, fmt.Errorf("read dataset file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return ds, fmt.Errorf("parse dataset file: %w", err)
	}
	if err := Validate(ds); err != nil {
		return ds, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return ds, nil
}

// WriteFile marshals a dataset to YAML at path.
func WriteFile(path string, ds models.Dataset) error {
	raw, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write dataset file: %w", err)
	}
	return nil
}

// Validate checks the referential invariants a dataset must satisfy before
// the store will accept it: unique user ids and emails, unique prompt ids,
// every user prompt-list entry naming a prompt that user authored, and vote
// sets referencing known prompts.
func Validate(ds models.Dataset) error {
	userIDs := make(map[string]struct{}, len(ds.Users))
	emails := make(map[string]struct{}, len(ds.Users))
	for _, u := range ds.Users {
		if u.ID == "" {
			return fmt.Errorf("user with empty id")
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		userIDs[u.ID] = struct{}{}
		if _, dup := emails[u.Email]; dup {
			return fmt.Errorf("duplicate email %q", u.Email)
		}
		emails[u.Email] = struct{}{}
	}

	promptAuthor := make(map[string]string, len(ds.Prompts))
	for _, p := range ds.Prompts {
		if p.ID == "" {
			return fmt.Errorf("prompt with empty id")
		}
		if _, dup := promptAuthor[p.ID]; dup {
			return fmt.Errorf("duplicate prompt id %q", p.ID)
		}
		promptAuthor[p.ID] = p.Author.ID
		if p.Upvotes < 0 {
			return fmt.Errorf("prompt %q has negative upvotes", p.ID)
		}
	}

	for _, u := range ds.Users {
		for _, pid := range u.Prompts {
			author, ok := promptAuthor[pid]
			if !ok {
				return fmt.Errorf("user %q lists unknown prompt %q", u.ID, pid)
			}
			if author != u.ID {
				return fmt.Errorf("user %q lists prompt %q authored by %q", u.ID, pid, author)
			}
		}
		for _, pid := range append(append([]string{}, u.SavedPrompts...), u.UpvotedPrompts...) {
			if _, ok := promptAuthor[pid]; !ok {
				return fmt.Errorf("user %q references unknown prompt %q", u.ID, pid)
			}
		}
	}

	return nil
}
