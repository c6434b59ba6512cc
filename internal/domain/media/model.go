package media

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted publication date format.
const DateLayout = "2006-01-02"

// Media is a single catalog entry. Screenshot is nil until an image has
// been attached to the record.
type Media struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Author          string  `json:"author"`
	PublicationDate string  `json:"publication_date"`
	Category        string  `json:"category"`
	Screenshot      *string `json:"screenshot"`
}

// Year extracts the publication year, or 0 when the stored date does not
// parse.
func (m Media) Year() int {
	t, err := time.Parse(DateLayout, m.PublicationDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

// Draft carries the caller-supplied fields for create and update. The id
// and the screenshot path are owned by the store and never come from a
// draft.
type Draft struct {
	Name            string `json:"name"`
	Author          string `json:"author"`
	PublicationDate string `json:"publication_date"`
	Category        string `json:"category"`
}

// Validate checks that all required fields are present and that the
// publication date is a real YYYY-MM-DD date.
func (d Draft) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"author", d.Author},
		{"publication_date", d.PublicationDate},
		{"category", d.Category},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	if _, err := time.Parse(DateLayout, d.PublicationDate); err != nil {
		return fmt.Errorf("%w: publication_date must be in YYYY-MM-DD format", ErrValidation)
	}

	return nil
}

// Update describes a partial merge into an existing record. Nil fields
// keep their current value.
type Update struct {
	Name            *string
	Author          *string
	PublicationDate *string
	Category        *string
}

// UpdateFrom converts a fully validated draft into an update touching
// every editable field.
func UpdateFrom(d Draft) Update {
	return Update{
		Name:            &d.Name,
		Author:          &d.Author,
		PublicationDate: &d.PublicationDate,
		Category:        &d.Category,
	}
}

// Stats aggregates catalog-wide counters.
type Stats struct {
	TotalItems     int            `json:"total_items"`
	TotalFavorites int            `json:"total_favorites"`
	Categories     map[string]int `json:"categories"`
}
