package jwt

// MinSecretKeyLen is the floor for HS256 secrets.
const MinSecretKeyLen = 32
