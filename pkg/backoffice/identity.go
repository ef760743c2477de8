// Package backoffice is a Go client for the back-office API: session
// persistence, authenticated HTTP access, identity mapping, navigation
// guards, and dashboard payload classification.
package backoffice

import (
	"fmt"
	"strings"
	"time"
)

// Role is one of the four fixed role values the API recognises.
type Role string

const (
	RoleClient            Role = "Client"
	RoleAccountSpecialist Role = "Account Specialist"
	RoleMarketing         Role = "Marketing"
	RoleHumanResource     Role = "Human Resource"
)

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAccountSpecialist, RoleMarketing, RoleHumanResource:
		return true
	}
	return false
}

// Identity is the wire-format user resource: snake_cased keys, ISO-8601
// timestamp strings, nullable middle/full names.
type Identity struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	MiddleName    *string `json:"middle_name"`
	LastName      string  `json:"last_name"`
	FullName      *string `json:"full_name"`
	Role          Role    `json:"role"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contact_number"`
	CompanyName   string  `json:"company_name"`
	ImagePath     *string `json:"image_path"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// User is the domain-format identity: parsed timestamps, a full name that is
// always populated, and the image path renamed to a URL.
type User struct {
	ID            int64
	FirstName     string
	MiddleName    *string
	LastName      string
	FullName      string
	Role          Role
	Email         string
	Address       string
	ContactNumber string
	CompanyName   string
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToUser converts a wire-format identity to the domain format. FullName falls
// back to "first [middle] last" when the upstream value is null or empty.
func ToUser(res Identity) (User, error) {
	createdAt, err := time.Parse(time.RFC3339, res.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, res.UpdatedAt)
	if err != nil {
		return User{}, fmt.Errorf("parse updated_at: %w", err)
	}

	return User{
		ID:            res.ID,
		FirstName:     res.FirstName,
		MiddleName:    res.MiddleName,
		LastName:      res.LastName,
		FullName:      fullNameOf(res),
		Role:          res.Role,
		Email:         res.Email,
		Address:       res.Address,
		ContactNumber: res.ContactNumber,
		CompanyName:   res.CompanyName,
		ImageURL:      res.ImagePath,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

// ToResource converts a domain user back to the wire format. Rarely needed —
// updates go out as partial field sets, not whole-identity round trips.
func ToResource(user User) Identity {
	fullName := user.FullName
	return Identity{
		ID:            user.ID,
		FirstName:     user.FirstName,
		MiddleName:    user.MiddleName,
		LastName:      user.LastName,
		FullName:      &fullName,
		Role:          user.Role,
		Email:         user.Email,
		Address:       user.Address,
		ContactNumber: user.ContactNumber,
		CompanyName:   user.CompanyName,
		ImagePath:     user.ImageURL,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     user.UpdatedAt.Format(time.RFC3339),
	}
}

func fullNameOf(res Identity) string {
	if res.FullName != nil && *res.FullName != "" {
		return *res.FullName
	}
	name := res.FirstName
	if res.MiddleName != nil && *res.MiddleName != "" {
		name += " " + *res.MiddleName
	}
	return strings.TrimSpace(name + " " + res.LastName)
}

// Initials returns the upper-cased first letters of the first and last name,
// for avatar fallbacks.
func Initials(user User) string {
	var b strings.Builder
	if user.FirstName != "" {
		b.WriteString(strings.ToUpper(user.FirstName[:1]))
	}
	if user.LastName != "" {
		b.WriteString(strings.ToUpper(user.LastName[:1]))
	}
	return b.String()
}

// DisplayName returns the name to show for a user.
func DisplayName(user User) string {
	return user.FullName
}

// HasRole reports whether the user holds the given role.
func HasRole(user User, role Role) bool {
	return user.Role == role
}

func IsClient(user User) bool            { return HasRole(user, RoleClient) }
func IsAccountSpecialist(user User) bool { return HasRole(user, RoleAccountSpecialist) }
func IsMarketing(user User) bool         { return HasRole(user, RoleMarketing) }
func IsHumanResource(user User) bool     { return HasRole(user, RoleHumanResource) }

// IsStaff reports whether the user is internal staff (anyone but a client).
func IsStaff(user User) bool { return !IsClient(user) }

// FormatContactNumber reformats an 11-digit Philippine mobile number
// (09XXXXXXXXX) into the grouped international form "+63 XXX XXX XXXX".
// Any other input is returned unchanged.
func FormatContactNumber(contactNumber string) string {
	var digits strings.Builder
	for _, r := range contactNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if len(cleaned) != 11 || !strings.HasPrefix(cleaned, "09") {
		return contactNumber
	}
	return "+63 " + cleaned[1:4] + " " + cleaned[4:7] + " " + cleaned[7:]
}

// RelativeCreationTime describes how long ago the account was created, using
// floor division on whole days. No calendar-aware month or year arithmetic.
func RelativeCreationTime(user User, now time.Time) string {
	days := int(now.Sub(user.CreatedAt).Hours() / 24)

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
