package ethutil

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ZeroAddress is the on-chain sentinel for "unassigned freelancer" and
// "pay in native currency".
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// GeneratePrivateKey derives the wallet key of one (secret, nonce) pair. The
// derivation must be deterministic: on-chain ownership is bound to the
// address, so the same pair has to yield the same key on every call and
// every restart. The key bytes come straight from the hash; feeding a seeded
// reader to ecdsa.GenerateKey would not be stable across calls.
func GeneratePrivateKey(secret, nonce []byte) (*ecdsa.PrivateKey, error) {
	seed := sha256.Sum256(append(secret, nonce...))
	for {
		key, err := ethcrypto.ToECDSA(seed[:])
		if err == nil {
			return key, nil
		}

		// The hash landed outside the curve order. Hash again; the next
		// candidate is still a pure function of the inputs.
		seed = sha256.Sum256(seed[:])
	}
}

func GeneratePublicKey(secret, nonce []byte) (common.Address, error) {
	walletPrivateKey, err := GeneratePrivateKey(secret, nonce)
	if err != nil {
		return common.Address{}, err
	}

	return ethcrypto.PubkeyToAddress(walletPrivateKey.PublicKey), nil
}

// IsZeroAddress reports whether s is the zero-address sentinel. The check is
// an exact case-insensitive string comparison, never truthiness, since the
// sentinel is a non-empty string.
func IsZeroAddress(s string) bool {
	return strings.EqualFold(s, ZeroAddress)
}

func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// SameAddress compares two hex addresses ignoring case and checksum.
func SameAddress(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// ShortenAddress renders an address as its first 6 and last 4 characters
// joined by an ellipsis, the form used for any address display.
func ShortenAddress(s string) string {
	if len(s) <= 10 {
		return s
	}

	return s[:6] + "..." + s[len(s)-4:]
}
