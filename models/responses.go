package models

// CardPage is the staff card listing response: one page of cards plus the
// total match count for client-side pagination.
type CardPage struct {
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// ClaimPage is the staff claim listing response.
type ClaimPage struct {
	Claims []Claim `json:"claims"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token and the authenticated
// account's public profile.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UserProfile is the credential-free view of a staff account returned by the
// login endpoint.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Profile projects a User into its credential-free form.
func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
