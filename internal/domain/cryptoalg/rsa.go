package cryptoalg

import "crypto/rsa"

// RSAProcessor handles the RSA operations needed to prepare a measurement run.
// Decryption itself is not part of this interface; it is measured through timing.Decrypter.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// EncryptBlock encrypts a single message with PKCS#1 v1.5 padding.
	// The result is exactly publicKey.Size() bytes long.
	EncryptBlock(message []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
	SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error

	// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
	SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error
}
