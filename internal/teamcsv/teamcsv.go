// internal/teamcsv/teamcsv.go

// Package teamcsv imports and exports team members as CSV.
package teamcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"landingkit/internal/document"
)

var (
	ErrNoRows      = errors.New("CSV must have a header row and at least one data row")
	ErrMissingName = errors.New("CSV must have a 'name' column")
)

const (
	DefaultName  = "Team Member"
	DefaultRole  = "Position"
	DefaultImage = "/professional-headshot.png"
)

// columns holds the index of each recognised header, or -1.
type columns struct {
	name, role, bio, image, linkedin, email int
}

// matchHeader finds each column by case-insensitive substring. The first
// matching header wins.
func matchHeader(header []string) columns {
	find := func(keys ...string) int {
		for i, h := range header {
			h = strings.ToLower(strings.TrimSpace(h))
			for _, k := range keys {
				if strings.Contains(h, k) {
					return i
				}
			}
		}
		return -1
	}
	return columns{
		name:     find("name"),
		role:     find("role", "position", "title"),
		bio:      find("bio", "description"),
		image:    find("image", "photo", "picture"),
		linkedin: find("linkedin"),
		email:    find("email"),
	}
}

// Parse reads team members from CSV. Quoted fields may contain commas and
// rows may be ragged. Every member gets a fresh csv-<uuid> id.
func Parse(r io.Reader) ([]document.TeamMember, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}
	if len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	cols := matchHeader(records[0])
	if cols.name < 0 {
		return nil, ErrMissingName
	}

	var members []document.TeamMember
	for _, row := range records[1:] {
		if blank(row) {
			continue
		}
		get := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		members = append(members, document.TeamMember{
			ID:       "csv-" + uuid.NewString(),
			Name:     orDefault(get(cols.name), DefaultName),
			Role:     orDefault(get(cols.role), DefaultRole),
			Bio:      get(cols.bio),
			Image:    orDefault(get(cols.image), DefaultImage),
			LinkedIn: get(cols.linkedin),
			Email:    get(cols.email),
		})
	}
	if len(members) == 0 {
		return nil, ErrNoRows
	}
	return members, nil
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var header = []string{"name", "role", "bio", "image", "linkedin", "email"}

// Write exports members in the column order Parse reads back.
func Write(w io.Writer, members []document.TeamMember) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, m := range members {
		if err := cw.Write([]string{m.Name, m.Role, m.Bio, m.Image, m.LinkedIn, m.Email}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Sample is a starter CSV showing the expected columns.
func Sample() string {
	return `name,role,bio,image,linkedin,email
John Doe,CEO & Founder,Visionary leader with 15+ years of experience in technology and innovation,/professional-headshot.png,https://linkedin.com/in/johndoe,john@company.com
Jane Smith,CTO,Technical expert specializing in scalable architecture and team leadership,/professional-headshot.png,https://linkedin.com/in/janesmith,jane@company.com
Mike Johnson,Head of Design,Creative director with a passion for user-centered design,/professional-headshot.png,https://linkedin.com/in/mikejohnson,mike@company.com
`
}
