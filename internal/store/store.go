// Package store implements the in-memory application state: the users,
// prompts, and creators collections plus the session and navigation slice.
// It is the single source of truth; everything else reads through it.
//
// The store is an explicit value constructed from a seed dataset and passed
// by dependency injection. State lives for the lifetime of the process: there
// is no persistence, and Reset restores the seed dataset.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"promptvault/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// PlaceholderPassword is assigned to accounts created through Register.
// Registration does not collect a password in this design.
const PlaceholderPassword = "password123"

// Store owns the canonical collections and the session/navigation slice.
// All operations are atomic: the mutex is held for the full mutation, so a
// reader can never observe the upvote counter and the membership set out of
// sync, or a prompt without its owner's prompt-list entry.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	prompts  []models.Prompt
	creators []models.Creator

	currentID   string // "" when logged out
	currentPage models.Page
	pageParam   string

	seed models.Dataset
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's time source. Used by tests to make
// createdAt values and time-derived comment IDs deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store from the given dataset. The dataset is deep-copied, so
// the caller's value stays untouched by later mutations.
func New(ds models.Dataset, opts ...Option) *Store {
	s := &Store{
		seed:        ds.Clone(),
		currentPage: models.DefaultPage,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(s.seed)
	return s
}

func (s *Store) load(ds models.Dataset) {
	fresh := ds.Clone()
	s.users = fresh.Users
	s.prompts = fresh.Prompts
	s.creators = fresh.Creators
}

// Reset discards all mutations and restores the seed dataset, the in-process
// equivalent of a page reload. The session is cleared as well.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(s.seed)
	s.currentID = ""
	s.currentPage = models.DefaultPage
	s.pageParam = ""
}

// CreatePromptInput carries the caller-supplied fields of a new prompt.
type CreatePromptInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PromptContent string   `json:"prompt_content"`
	Tags          []string `json:"tags"`
}

// Login authenticates by exact email match and password verification.
// On success the session user is set and the current page resets to the
// default landing page. On failure the state is unchanged; unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (s *Store) Login(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndexByEmail(email)
	if i < 0 {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(s.users[i].Password), []byte(password)) != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	s.currentID = s.users[i].ID
	s.currentPage = models.DefaultPage
	s.pageParam = ""
	u := s.users[i].Clone()
	return &u, nil
}

// Register creates a new account and logs it in. The email must not already
// be taken (case-sensitive exact match). The new user gets a placeholder
// password and a deterministic avatar derived from its id.
//
// IDs are derived from the collection length. That is safe only because
// deletion is unsupported; if deletion is ever added this must move to a
// monotonic counter.
func (s *Store) Register(name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || email == "" {
		return nil, models.NewValidationError("Name and email are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndexByEmail(email) >= 0 {
		return nil, models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(PlaceholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	id := fmt.Sprintf("u%d", len(s.users)+1)
	user := models.User{
		ID:             id,
		Name:           name,
		Email:          email,
		Password:       string(hashed),
		AvatarURL:      fmt.Sprintf("https://picsum.photos/seed/%s/80/80", id),
		Prompts:        []string{},
		SavedPrompts:   []string{},
		UpvotedPrompts: []string{},
	}
	s.users = append(s.users, user)
	s.currentID = id
	s.currentPage = models.DefaultPage
	s.pageParam = ""

	out := user.Clone()
	return &out, nil
}

// Logout clears the session user. The current page is left as-is; reacting
// to the session going away is the caller's concern.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = ""
}

// NavigateTo sets the current page and the parameter slot atomically. When
// no param is given the slot is cleared, never merged with a previous value.
func (s *Store) NavigateTo(page models.Page, param string) error {
	if !page.Valid() {
		return models.NewValidationError(fmt.Sprintf("Unknown page %q", string(page)))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
	s.pageParam = param
	return nil
}

// ClearPageParam clears only the parameter slot. Pages that consume a
// passed-in parameter once call this so the value is not reapplied later.
func (s *Store) ClearPageParam() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageParam = ""
}

// UpdateProfile replaces the session user's name and avatar. Author
// snapshots already embedded in prompts and comments are intentionally left
// alone: identity is copied at write time, not referenced live.
func (s *Store) UpdateProfile(name, avatarURL string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return nil, err
	}
	if name != "" {
		s.users[i].Name = name
	}
	if avatarURL != "" {
		s.users[i].AvatarURL = avatarURL
	}
	u := s.users[i].Clone()
	return &u, nil
}

// ToggleSavePrompt flips the prompt's membership in the session user's saved
// set. It returns whether the prompt is saved after the toggle. Upvote state
// is never touched.
func (s *Store) ToggleSavePrompt(promptID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return false, err
	}
	if s.promptIndex(promptID) < 0 {
		return false, models.NewNotFoundError("Prompt", promptID)
	}
	s.users[i].SavedPrompts, _ = toggle(s.users[i].SavedPrompts, promptID)
	return contains(s.users[i].SavedPrompts, promptID), nil
}

// ToggleUpvotePrompt flips the prompt's membership in the session user's
// upvoted set and adjusts the prompt's upvote counter by one in the same
// critical section. Both sides commit together; the counter can never be
// observed out of sync with the membership set.
func (s *Store) ToggleUpvotePrompt(promptID string) (*models.Prompt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return nil, false, err
	}
	pi := s.promptIndex(promptID)
	if pi < 0 {
		return nil, false, models.NewNotFoundError("Prompt", promptID)
	}

	var added bool
	s.users[i].UpvotedPrompts, added = toggle(s.users[i].UpvotedPrompts, promptID)
	if added {
		s.prompts[pi].Upvotes++
	} else {
		s.prompts[pi].Upvotes--
	}

	p := s.prompts[pi].Clone()
	return &p, added, nil
}

// CreatePrompt appends a new prompt authored by the session user. The author
// snapshot is taken from the user's identity at this moment; later profile
// changes will not be reflected in it. The prompt id is also recorded in the
// owner's prompt list.
func (s *Store) CreatePrompt(in CreatePromptInput) (*models.Prompt, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.PromptContent) == "" {
		return nil, models.NewValidationError("Prompt content is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return nil, err
	}

	prompt := models.Prompt{
		ID:            fmt.Sprintf("p%d", len(s.prompts)+1),
		Title:         in.Title,
		Description:   in.Description,
		PromptContent: in.PromptContent,
		Tags:          append([]string(nil), in.Tags...),
		Author:        s.users[i].Snapshot(),
		Upvotes:       0,
		Comments:      []models.Comment{},
		CreatedAt:     s.now().UTC(),
	}
	s.prompts = append(s.prompts, prompt)
	s.users[i].Prompts = append(s.users[i].Prompts, prompt.ID)

	out := prompt.Clone()
	return &out, nil
}

// AddComment appends a comment to the target prompt, preserving insertion
// order. Comment IDs are millisecond-time derived; when two comments land in
// the same millisecond the id is bumped until unique.
func (s *Store) AddComment(promptID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.sessionIndex()
	if err != nil {
		return nil, err
	}
	pi := s.promptIndex(promptID)
	if pi < 0 {
		return nil, models.NewNotFoundError("Prompt", promptID)
	}

	now := s.now().UTC()
	ms := now.UnixMilli()
	id := fmt.Sprintf("c%d", ms)
	for s.commentIDTaken(id) {
		ms++
		id = fmt.Sprintf("c%d", ms)
	}

	comment := models.Comment{
		ID:        id,
		Text:      text,
		Author:    s.users[i].Snapshot(),
		CreatedAt: now,
	}
	s.prompts[pi].Comments = append(s.prompts[pi].Comments, comment)
	return &comment, nil
}

// Users returns a deep copy of the users collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	for i := range s.users {
		out[i] = s.users[i].Clone()
	}
	return out
}

// Prompts returns a deep copy of the prompts collection in insertion order.
func (s *Store) Prompts() []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prompt, len(s.prompts))
	for i := range s.prompts {
		out[i] = s.prompts[i].Clone()
	}
	return out
}

// Creators returns a copy of the creators projection.
func (s *Store) Creators() []models.Creator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Creator(nil), s.creators...)
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentID == "" {
		return nil
	}
	i := s.userIndex(s.currentID)
	if i < 0 {
		return nil
	}
	u := s.users[i].Clone()
	return &u
}

// Session returns the navigation slice: current page and the parameter slot.
func (s *Store) Session() (models.Page, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage, s.pageParam
}

// UserByID looks up a user by id.
func (s *Store) UserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.userIndex(id)
	if i < 0 {
		return nil, models.NewNotFoundError("User", id)
	}
	u := s.users[i].Clone()
	return &u, nil
}

// PromptByID looks up a prompt by id.
func (s *Store) PromptByID(id string) (*models.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.promptIndex(id)
	if i < 0 {
		return nil, models.NewNotFoundError("Prompt", id)
	}
	p := s.prompts[i].Clone()
	return &p, nil
}

// sessionIndex returns the index of the session user's record, or an
// unauthorized error when nobody is logged in. Callers must hold the lock.
func (s *Store) sessionIndex() (int, error) {
	if s.currentID == "" {
		return -1, models.NewUnauthorizedError("Login required")
	}
	i := s.userIndex(s.currentID)
	if i < 0 {
		return -1, models.NewUnauthorizedError("Login required")
	}
	return i, nil
}

func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) userIndexByEmail(email string) int {
	for i := range s.users {
		if s.users[i].Email == email {
			return i
		}
	}
	return -1
}

func (s *Store) promptIndex(id string) int {
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) commentIDTaken(id string) bool {
	for i := range s.prompts {
		for j := range s.prompts[i].Comments {
			if s.prompts[i].Comments[j].ID == id {
				return true
			}
		}
	}
	return false
}

// toggle flips membership of v in set, returning the new set and whether v
// was added.
func toggle(set []string, v string) ([]string, bool) {
	for i, s := range set {
		if s == v {
			return append(set[:i], set[i+1:]...), false
		}
	}
	return append(set, v), true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
