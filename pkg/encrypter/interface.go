package encrypter

// Encrypter seals service keys and hashes credentials. Implementations are
// safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// New returns an AES-GCM backed Encrypter. The key must be 16, 24, or 32
// bytes.
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
