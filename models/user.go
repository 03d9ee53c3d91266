package models

// AuthUser is the identity verified from a Supabase access token. The token
// itself is issued and refreshed by Supabase Auth; this service only reads it.
type AuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
