package encrypter

import "errors"

var (
	ErrInvalidKeyLength   = errors.New("aes key must be 16, 24, or 32 bytes")
	ErrCiphertextTooShort = errors.New("ciphertext shorter than nonce")
	ErrDecryptionFailed   = errors.New("ciphertext or key invalid")
)
