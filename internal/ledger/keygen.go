package ledger

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

const (
	// Account keys are derived with expand_message_xof over SHAKE-256.
	KeygenSuiteID = "BLOCKCHAIN_BLS12381_XOF:SHAKE-256_"
	KeygenDST     = KeygenSuiteID + "KEYGEN_DST_"

	// Transactions are hashed to G1 with the library's XMD:SHA-256 SSWU map.
	SignatureSuiteID = "BLOCKCHAIN_BLS12381G1_XMD:SHA-256_SSWU_RO_"
	SignatureDST     = SignatureSuiteID + "TX_SIG_"

	// MinKeyMaterial is the shortest key material KeyGen accepts.
	MinKeyMaterial = 32

	expandLen          = 48
	OctetPointLengthG1 = 48
	OctetPointLengthG2 = 96
)

var (
	ErrKeyMaterial = fmt.Errorf("INVALID: key material shorter than %d bytes", MinKeyMaterial)
	ErrKeyInfo     = errors.New("INVALID: key info longer than 65535 bytes")
	ErrPublicKey   = errors.New("INVALID: public key")
)

var (
	_, _, _, g2Aff = bls12381.Generators()
)

// expandXOF derives n bytes from msg under dst:
// SHAKE-256(msg || len(n) as 2 bytes || dst || len(dst) as 1 byte).
func expandXOF(msg, dst []byte, n int) []byte {
	shake := sha3.NewShake256()
	shake.Write(msg)
	shake.Write([]byte{byte(n >> 8), byte(n)})
	shake.Write(dst)
	shake.Write([]byte{byte(len(dst))})

	out := make([]byte, n)
	shake.Read(out)
	return out
}

// GenerateRandomKeyMaterial returns max(length, MinKeyMaterial) random bytes.
func GenerateRandomKeyMaterial(length int) ([]byte, error) {
	material := make([]byte, max(length, MinKeyMaterial))
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("reading key material: %w", err)
	}
	return material, nil
}

// KeyGen derives an account secret key. The same material and info always
// give the same key; different info gives independent keys.
func KeyGen(keyMaterial, keyInfo []byte) (fr.Element, error) {
	var sk fr.Element
	if len(keyMaterial) < MinKeyMaterial {
		return sk, ErrKeyMaterial
	}
	if len(keyInfo) > 0xffff {
		return sk, ErrKeyInfo
	}

	input := make([]byte, 0, len(keyMaterial)+2+len(keyInfo))
	input = append(input, keyMaterial...)
	input = append(input, byte(len(keyInfo)>>8), byte(len(keyInfo)))
	input = append(input, keyInfo...)

	sk.SetBytes(expandXOF(input, []byte(KeygenDST), expandLen))
	if sk.IsZero() {
		return sk, fmt.Errorf("%w: derived key is zero", ErrKeyMaterial)
	}
	return sk, nil
}

// PublicKey returns the compressed G2 point sk * BP2.
func PublicKey(sk fr.Element) []byte {
	var s big.Int
	sk.BigInt(&s)

	var pk bls12381.G2Affine
	pk.ScalarMultiplication(&g2Aff, &s)
	b := pk.Bytes()
	return b[:]
}

// OctetsToPublicKey decodes pk, rejecting the identity and points outside
// the prime order subgroup.
func OctetsToPublicKey(pk []byte) (bls12381.G2Affine, error) {
	var w bls12381.G2Affine
	if len(pk) != OctetPointLengthG2 {
		return w, fmt.Errorf("%w: length %d", ErrPublicKey, len(pk))
	}
	if _, err := w.SetBytes(pk); err != nil {
		return w, fmt.Errorf("%w: %v", ErrPublicKey, err)
	}
	if w.IsInfinity() || !w.IsInSubGroup() {
		return w, fmt.Errorf("%w: not a subgroup point", ErrPublicKey)
	}
	return w, nil
}
