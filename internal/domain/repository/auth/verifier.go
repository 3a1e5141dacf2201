package auth

// Verifier checks the Authorization header of an upload request and yields
// the authenticated user identity. Credential issuance is outside this
// service; the verifier only consumes tokens.
type Verifier interface {
	Authenticate(authHeader string) (userID string, err error)
}
