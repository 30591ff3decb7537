package appwrite

import (
	"net/url"
)

// Avatars builds URLs for the avatar rendering endpoints. The avatar is
// derived from the user's name, never stored.
type Avatars struct {
	client *Client
}

func NewAvatars(client *Client) *Avatars {
	return &Avatars{client: client}
}

// GetInitials returns the URL of an initials avatar for the given name.
func (a *Avatars) GetInitials(name string) string {
	query := url.Values{}
	query.Set("name", name)
	query.Set("project", a.client.Project())

	return a.client.Endpoint() + "/avatars/initials?" + query.Encode()
}
