package ledger

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SignTransaction signs the serialised transaction with sk and stores the
// compressed G1 signature in tx.Signature.
func SignTransaction(sk fr.Element, tx *Transaction) error {
	h, err := bls12381.HashToG1([]byte(tx.Serialise()), []byte(SignatureDST))
	if err != nil {
		return fmt.Errorf("INVALID: hash_to_curve failed: %w", err)
	}

	var skBigInt big.Int
	sk.BigInt(&skBigInt)

	var sig bls12381.G1Affine
	sig.ScalarMultiplication(&h, &skBigInt)

	bytes := sig.Bytes()
	tx.Signature = bytes[:]
	return nil
}

// VerifyTransaction checks tx.Signature against the public key pk by
// testing e(sig, BP2) * e(-H(tx), PK) == 1.
func VerifyTransaction(pk []byte, tx Transaction) (bool, error) {
	W, err := OctetsToPublicKey(pk)
	if err != nil {
		return false, err
	}

	if len(tx.Signature) != OctetPointLengthG1 {
		return false, fmt.Errorf("%w: length %d", ErrBadSignature, len(tx.Signature))
	}
	var sig bls12381.G1Affine
	if _, err := sig.SetBytes(tx.Signature); err != nil {
		return false, fmt.Errorf("%w: cannot decode G1 point", ErrBadSignature)
	}
	if sig.IsInfinity() {
		return false, fmt.Errorf("%w: signature is identity", ErrBadSignature)
	}

	h, err := bls12381.HashToG1([]byte(tx.Serialise()), []byte(SignatureDST))
	if err != nil {
		return false, fmt.Errorf("INVALID: hash_to_curve failed: %w", err)
	}
	var negH bls12381.G1Affine
	negH.Neg(&h)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{sig, negH},
		[]bls12381.G2Affine{g2Aff, W},
	)
}
