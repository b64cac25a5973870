package ethereum

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateKey creates a fresh key pair and returns it with its hex address
func GenerateKey() (*ecdsa.PrivateKey, string, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, "", err
	}
	return privateKey, crypto.PubkeyToAddress(privateKey.PublicKey).Hex(), nil
}
