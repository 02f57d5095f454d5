package entity

// UserType represents the kind of account a user holds.
type UserType string

const (
	// UserTypeUser indicates a regular contributor.
	UserTypeUser UserType = "user"
	// UserTypeAdmin indicates a moderator allowed to review proposals.
	UserTypeAdmin UserType = "admin"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeUser, UserTypeAdmin:
		return true
	default:
		return false
	}
}
