package ports

// CredentialHasher is a salted one-way hash. Verify must not leak timing
// information about the stored hash.
type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
