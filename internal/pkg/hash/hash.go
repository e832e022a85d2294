package hash

// Hash computes and verifies one-way hashes of secret material.
type Hash interface {
	// Hash returns the hashed form of plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hashed, plaintext string) bool
}
