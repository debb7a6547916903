package user

// PasswordHasher hashes and verifies credentials. Verify returns a generic error
// on any mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
