package domain

import (
	"strings"
	"time"
)

// ContentEntry is one editable text fragment of the public site, unique
// per (section, key) pair.
type ContentEntry struct {
	ID        int64     `json:"id"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentUpdate struct {
	Section string
	Key     string
	Value   string
}

func (u *ContentUpdate) Normalize() {
	u.Section = strings.TrimSpace(u.Section)
	u.Key = strings.TrimSpace(u.Key)
}

// Validate only requires an addressable (section, key) pair; the value is
// accepted as-is.
func (u *ContentUpdate) Validate() map[string]string {
	errs := make(map[string]string)
	if u.Section == "" {
		errs["section"] = "Section is required"
	}
	if u.Key == "" {
		errs["key"] = "Key is required"
	}
	return errs
}

// DefaultContent is the set seeded at first initialization.
func DefaultContent() []ContentUpdate {
	return []ContentUpdate{
		{Section: "hero", Key: "title", Value: "CREATIVE PHOTOGRAPHY"},
		{Section: "hero", Key: "subtitle", Value: "Capturing life's most precious moments through artistic vision"},
		{Section: "about", Key: "title", Value: "ABOUT JEFFERY"},
		{Section: "about", Key: "description", Value: "Jeffery Chinda is a passionate photographer with an eye for detail and a commitment to excellence."},
	}
}
