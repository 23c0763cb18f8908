// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// User is a person who checks in, reviews and favorites locations.
type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"` // Unique across all users.
	Password    string  `json:"-"`        // Opaque credential; stored as a bcrypt hash.
	DisplayName *string `json:"displayName"`
	Initials    *string `json:"initials"`
}

// Author is the public projection of a user attached to reviews.
type Author struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Initials    string `json:"initials"`
}

// Author builds the public projection, falling back to the username where the optional fields are empty.
func (u *User) Author() *Author {
	author := &Author{
		ID:          u.ID,
		DisplayName: u.Username,
		Initials:    usernameInitials(u.Username),
	}
	if u.DisplayName != nil && *u.DisplayName != "" {
		author.DisplayName = *u.DisplayName
	}
	if u.Initials != nil && *u.Initials != "" {
		author.Initials = *u.Initials
	}

	return author
}

func usernameInitials(username string) string {
	runes := []rune(username)
	if len(runes) > 2 {
		runes = runes[:2]
	}

	return strings.ToUpper(string(runes))
}
