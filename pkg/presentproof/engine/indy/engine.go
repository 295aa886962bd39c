package indy

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/scoir/studybits/pkg/schema"
)

type Engine struct {
	crypto CryptoVerifier
	log    *log.Entry
}

func New(crypto CryptoVerifier) *Engine {
	return &Engine{
		crypto: crypto,
		log:    log.WithField("component", "indy-verifier"),
	}
}

// Verify checks an indy proof against the request it answers and returns the value of every
// requested attribute keyed by the request referent.
func (r *Engine) Verify(proofRequest *schema.ProofRequest, indyProof *schema.IndyProof) ([]*schema.Attr, error) {
	if proofRequest == nil {
		return nil, errors.New("proof request is required")
	}

	if indyProof == nil || indyProof.RequestedProof == nil {
		return nil, errors.New("invalid proof format, requested proof missing")
	}

	cryptoProof := &schema.CryptoProof{}
	err := json.Unmarshal(indyProof.Proof, cryptoProof)
	if err != nil {
		return nil, errors.Wrap(err, "invalid crypto proof")
	}

	receivedRevealedAttrs, err := receivedRevealedAttrs(indyProof)
	if err != nil {
		return nil, err
	}

	receivedUnrevealedAttrs, err := receivedUnrevealedAttrs(indyProof)
	if err != nil {
		return nil, err
	}

	receivedPredicates, err := receivedPredicates(indyProof)
	if err != nil {
		return nil, err
	}

	receivedSelfAttestedAttrs := receivedSelfAttestedAttrs(indyProof)

	err = compareAttrFromProofAndRequest(proofRequest, receivedRevealedAttrs, receivedUnrevealedAttrs,
		receivedSelfAttestedAttrs, receivedPredicates)
	if err != nil {
		return nil, err
	}

	err = verifyRevealedAttributeValues(proofRequest, indyProof, cryptoProof)
	if err != nil {
		return nil, err
	}

	err = verifyRequestedRestrictions(proofRequest, receivedRevealedAttrs, receivedUnrevealedAttrs,
		receivedPredicates, receivedSelfAttestedAttrs)
	if err != nil {
		return nil, err
	}

	subProofs := make([]*SubProof, len(indyProof.Identifiers))
	for idx, identifier := range indyProof.Identifiers {
		subProofs[idx] = &SubProof{
			Identifier:    identifier,
			RevealedAttrs: attributesForCredential(idx, indyProof.RequestedProof, proofRequest),
			Predicates:    predicatesForCredential(idx, indyProof.RequestedProof, proofRequest),
		}
	}

	err = r.crypto.VerifyCrypto(indyProof, subProofs, proofRequest.Nonce)
	if err != nil {
		return nil, errors.Wrap(err, "crypto verification failed")
	}

	r.log.WithField("proof", proofRequest.Name).Debug("proof verified")

	return extractAttributes(proofRequest, indyProof)
}

func extractAttributes(proofRequest *schema.ProofRequest, indyProof *schema.IndyProof) ([]*schema.Attr, error) {
	referents := make([]string, 0, len(proofRequest.RequestedAttributes))
	for referent := range proofRequest.RequestedAttributes {
		referents = append(referents, referent)
	}
	sort.Strings(referents)

	out := make([]*schema.Attr, 0, len(referents))
	for _, referent := range referents {
		if info, ok := indyProof.RequestedProof.RevealedAttrs[referent]; ok {
			out = append(out, &schema.Attr{Name: referent, Value: info.Raw})
			continue
		}

		if value, ok := indyProof.RequestedProof.SelfAttestedAttrs[referent]; ok {
			out = append(out, &schema.Attr{Name: referent, Value: value})
			continue
		}

		return nil, errors.Errorf("attribute %s was not revealed", referent)
	}

	return out, nil
}

func attributesForCredential(subProofIdx int, requestedProof *schema.IndyRequestedProof, proofRequest *schema.ProofRequest) []string {
	var revealedAttrs []string

	for attrReferent, rattr := range requestedProof.RevealedAttrs {
		pa, ok := proofRequest.RequestedAttributes[attrReferent]
		if subProofIdx == int(rattr.SubProofIndex) && ok {
			revealedAttrs = append(revealedAttrs, pa.Name)
		}
	}

	sort.Strings(revealedAttrs)
	return revealedAttrs
}

func predicatesForCredential(subProofIdx int, requestedProof *schema.IndyRequestedProof,
	proofRequest *schema.ProofRequest) []*schema.IndyProofRequestPredicate {

	var predicates []*schema.IndyProofRequestPredicate

	for predicateReferent, rpredicate := range requestedProof.Predicates {
		p, ok := proofRequest.RequestedPredicates[predicateReferent]
		if subProofIdx == int(rpredicate.SubProofIndex) && ok {
			predicates = append(predicates, p)
		}
	}

	sort.Slice(predicates, func(i, j int) bool { return predicates[i].Name < predicates[j].Name })
	return predicates
}
