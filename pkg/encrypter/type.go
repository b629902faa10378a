package encrypter

// implEncrypter implements Encrypter using AES-GCM and bcrypt.
type implEncrypter struct {
	key string
}
