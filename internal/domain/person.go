package domain

import (
	"database/sql"
	"strings"
	"time"
	"unicode"
)

// Person is a team directory entry.
type Person struct {
	ID          int64          `db:"id" json:"id"`
	FirstName   string         `db:"first_name" json:"first_name"`
	LastName    string         `db:"last_name" json:"last_name"`
	Email       string         `db:"email" json:"email"`
	Title       string         `db:"title" json:"title"`
	LinkedinURL sql.NullString `db:"linkedin_url" json:"linkedin_url"`
	GithubURL   sql.NullString `db:"github_url" json:"github_url"`
	TwitterURL  sql.NullString `db:"twitter_url" json:"twitter_url"`
	Image       string         `db:"image" json:"image"`
	Slug        string         `db:"slug" json:"slug"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Slugify builds a URL-safe slug: lowercase alphanumeric runs joined by
// single hyphens.
func Slugify(parts ...string) string {
	var b strings.Builder
	pending := false

	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				if pending && b.Len() > 0 {
					b.WriteByte('-')
				}
				pending = false
				b.WriteRune(r)
			} else {
				pending = true
			}
		}
		pending = true
	}

	return b.String()
}
