package model

import (
	"restate/infras/appwrite"
)

// User is the resolved identity of the active session, with the display
// avatar derived from the name. Fetched fresh per session check, never
// cached beyond request scope.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// FromAccount fills the user from the provider identity plus the derived
// avatar URL.
func (u *User) FromAccount(account appwrite.User, avatarURL string) {
	u.ID = account.ID
	u.Name = account.Name
	u.Email = account.Email
	u.Avatar = avatarURL
}
