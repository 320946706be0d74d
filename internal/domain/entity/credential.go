package entity

// CredentialKind selects which identifier a login attempt uses.
type CredentialKind string

const (
	CredentialUsername CredentialKind = "username"
	CredentialEmail    CredentialKind = "email"
	CredentialPhone    CredentialKind = "phone"
)

// ParseCredentialKind maps the login tab name to a kind. Unknown values fall
// back to username, the default tab.
func ParseCredentialKind(s string) CredentialKind {
	switch CredentialKind(s) {
	case CredentialEmail:
		return CredentialEmail
	case CredentialPhone:
		return CredentialPhone
	default:
		return CredentialUsername
	}
}

// Credential is one login identifier tagged with its kind.
type Credential struct {
	Kind  CredentialKind
	Value string
}
