package models

import "fmt"

// Page identifies a navigation target in the client application. The store
// tracks the current page plus a single optional parameter slot (a prompt id,
// a profile id, a search term) that is overwritten on every navigation.
type Page string

const (
	PageDashboard    Page = "dashboard"
	PageLeaderboard  Page = "leaderboard"
	PageTrending     Page = "trending"
	PageExplore      Page = "explore"
	PageCreate       Page = "create"
	PageProfile      Page = "profile"
	PageFavorites    Page = "favorites"
	PagePromptDetail Page = "promptDetail"
	PageDonate       Page = "donate"
)

// DefaultPage is the landing page after login and registration.
const DefaultPage = PageDashboard

var pages = map[Page]struct{}{
	PageDashboard:    {},
	PageLeaderboard:  {},
	PageTrending:     {},
	PageExplore:      {},
	PageCreate:       {},
	PageProfile:      {},
	PageFavorites:    {},
	PagePromptDetail: {},
	PageDonate:       {},
}

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	_, ok := pages[p]
	return ok
}

// ParsePage converts a raw string into a Page, rejecting unknown names.
func ParsePage(s string) (Page, error) {
	p := Page(s)
	if !p.Valid() {
		return "", NewValidationError(fmt.Sprintf("Unknown page %q", s))
	}
	return p, nil
}
