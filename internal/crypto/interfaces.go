package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyRing owns every operation on the vault's OpenPGP master key.
//
// A [MasterKey] is kept locked. Operations that need private material take
// the passphrase, unlock a throwaway copy of the key for the duration of the
// call and drop it before returning. The KeyRing never stores a passphrase.
type KeyRing interface {
	// Generate creates a self-signed RSA-2048 keypair whose private keys are
	// encrypted under passphrase. An empty passphrase leaves them unprotected.
	Generate(passphrase []byte) (*MasterKey, error)

	// Parse reads an armored private key. Malformed input, a missing private
	// key or a self-signature that does not verify yield ErrKeyFormat.
	Parse(armored []byte) (*MasterKey, error)

	// VerifyPassphrase reports ErrWrongPassphrase unless passphrase unlocks
	// key. The key itself is left untouched.
	VerifyPassphrase(key *MasterKey, passphrase []byte) error

	// Encrypt encrypts plaintext to the key's public encryption subkey.
	// No passphrase is involved.
	Encrypt(key *MasterKey, plaintext []byte) ([]byte, error)

	// Decrypt unlocks key with passphrase and decrypts ciphertext. It fails
	// with ErrWrongPassphrase or ErrDecrypt and never returns partial output.
	Decrypt(key *MasterKey, passphrase, ciphertext []byte) ([]byte, error)

	// ExportPrivate returns the armored (still passphrase-protected) private
	// key after checking that passphrase unlocks it.
	ExportPrivate(key *MasterKey, passphrase []byte) ([]byte, error)
}

// Wrapper protects exported key material with a separate export passphrase.
type Wrapper interface {
	// Wrap encrypts material, an armored private key, under a key derived
	// from passphrase.
	Wrap(material, passphrase []byte) ([]byte, error)

	// Unwrap reverses Wrap. Bundles of every supported format are accepted
	// regardless of the format the Wrapper writes. A bundle that does not
	// decrypt cleanly, or whose legacy plaintext is not an armored private
	// key, yields ErrWrongExportPassphrase.
	Unwrap(bundle, passphrase []byte) ([]byte, error)
}
