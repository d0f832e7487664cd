// Package deposit turns validated records into signed deposit receipts.
package deposit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dinero-dev/dinero/internal/model"
)

// Tags baked into every deposit signature string.
const (
	alg = "SHA-256"
	typ = "DEPOSIT"
)

// SignatureString composes the canonical string the deposit signature is
// computed over. The layout is part of the receipt format: changing it
// invalidates every previously issued signature.
func SignatureString(d model.Deposit) string {
	return fmt.Sprintf("{alg:%s,typ:%s,iban:%s,amount:EUR %s,deposit_date:%d}",
		alg, typ, d.ToIBAN, d.Amount.StringFixed(2), d.Date.Unix())
}

// Signature returns the SHA-256 hex signature of a deposit.
func Signature(d model.Deposit) string {
	sum := sha256.Sum256([]byte(SignatureString(d)))
	return hex.EncodeToString(sum[:])
}

// ReceiptName returns the receipt file name for a deposit, derived from
// the target IBAN and the deposit time.
func ReceiptName(d model.Deposit) string {
	return fmt.Sprintf("deposit_%s_%d.json", d.ToIBAN, d.Date.Unix())
}
