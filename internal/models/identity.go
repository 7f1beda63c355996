package models

// AdminIdentity is the authenticated principal behind an admin request.
type AdminIdentity struct {
	ID     string `json:"id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Source string `json:"source"` // "session", "jwt" or "api_key"
}

// Credentials are the raw authentication inputs extracted from a request.
type Credentials struct {
	SessionToken string
	BearerToken  string
	APIKey       string
}

// Empty reports whether no credential was presented at all.
func (c Credentials) Empty() bool {
	return c.SessionToken == "" && c.BearerToken == "" && c.APIKey == ""
}
