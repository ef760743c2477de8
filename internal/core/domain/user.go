package domain

import "time"

// Role values form a closed enumeration shared with every consumer of the API,
// including navigation rendering on the front end.
const (
	RoleClient            = "Client"
	RoleAccountSpecialist = "Account Specialist"
	RoleMarketing         = "Marketing"
	RoleHumanResource     = "Human Resource"
)

// Roles lists every valid role value.
var Roles = []string{RoleClient, RoleAccountSpecialist, RoleMarketing, RoleHumanResource}

// ValidRole reports whether role is a member of the enumeration.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User models an authenticated actor. JSON tags produce the snake_cased wire
// format consumed by the front end; the password hash never leaves the server.
type User struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	MiddleName    *string   `json:"middle_name"`
	LastName      string    `json:"last_name"`
	FullName      *string   `json:"full_name"`
	Role          string    `json:"role"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	CompanyName   string    `json:"company_name"`
	ImagePath     *string   `json:"image_path"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
