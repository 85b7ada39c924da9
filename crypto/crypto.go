// Package crypto provides lineage-key attestation: agents carry an Ed25519
// keypair per lineage and sign their genome hashes so birth and death
// records can be verified by the surrounding ledger.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// GenerateLineageKeyPair generates a new Ed25519 keypair, hex-encoded.
func GenerateLineageKeyPair() (publicKeyHex, privateKeyHex string, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(pub), hex.EncodeToString(priv), nil
}

// SignMessage signs a message using the private key.
func SignMessage(privateKeyHex string, message []byte) (string, error) {
	privateKey, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return "", errors.New("invalid private key format")
	}
	if len(privateKey) != ed25519.PrivateKeySize {
		return "", errors.New("invalid private key length")
	}
	signature := ed25519.Sign(privateKey, message)
	return hex.EncodeToString(signature), nil
}

// VerifySignature verifies a signed message using the public key.
func VerifySignature(publicKeyHex string, message []byte, signatureHex string) bool {
	publicKey, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	return ed25519.Verify(publicKey, message, signature)
}

// SignGenomeHash signs a genome hash under a lineage key.
func SignGenomeHash(privateKeyHex, genomeHash string) (string, error) {
	return SignMessage(privateKeyHex, []byte(genomeHash))
}

// VerifyGenomeSignature checks a genome-hash attestation.
func VerifyGenomeSignature(publicKeyHex, genomeHash, signatureHex string) bool {
	return VerifySignature(publicKeyHex, []byte(genomeHash), signatureHex)
}

// HashData creates a SHA256 hash of the input data.
func HashData(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
