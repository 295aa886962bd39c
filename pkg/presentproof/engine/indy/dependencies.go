package indy

import (
	"github.com/scoir/studybits/pkg/schema"
)

// SubProof describes what one credential in a proof must demonstrate.
type SubProof struct {
	Identifier    *schema.Identifier
	RevealedAttrs []string
	Predicates    []*schema.IndyProofRequestPredicate
}

//go:generate mockery -name=CryptoVerifier -inpkg
type CryptoVerifier interface {
	VerifyCrypto(proof *schema.IndyProof, subProofs []*SubProof, nonce string) error
}
