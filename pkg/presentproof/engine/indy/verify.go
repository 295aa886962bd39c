package indy

import (
	"math/big"
	"reflect"

	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/schema"
)

func compareAttrFromProofAndRequest(proofReq *schema.ProofRequest, receivedRevealedAttrs map[string]*schema.Identifier,
	receivedUnrevealedAttrs map[string]*schema.Identifier, receivedSelfAttestedAttrs []string, receivedPredicates map[string]*schema.Identifier) error {

	empty := struct{}{}
	requestedAttrs := map[string]struct{}{}
	for k := range proofReq.RequestedAttributes {
		requestedAttrs[k] = empty
	}

	receivedAttrs := map[string]struct{}{}
	for k := range receivedRevealedAttrs {
		receivedAttrs[k] = empty
	}

	for k := range receivedUnrevealedAttrs {
		receivedAttrs[k] = empty
	}

	for _, k := range receivedSelfAttestedAttrs {
		receivedAttrs[k] = empty
	}

	if !reflect.DeepEqual(requestedAttrs, receivedAttrs) {
		return errors.Errorf("requested attributes [%v] do not correspond with received [%v]", requestedAttrs, receivedAttrs)
	}

	requestedPreds := map[string]struct{}{}
	for k := range proofReq.RequestedPredicates {
		requestedPreds[k] = empty
	}

	receivedPreds := map[string]struct{}{}
	for k := range receivedPredicates {
		receivedPreds[k] = empty
	}

	if !reflect.DeepEqual(requestedPreds, receivedPreds) {
		return errors.Errorf("requested predicates [%v] do not correspond to received [%v]", requestedPreds, receivedPreds)
	}

	return nil
}

func verifyRevealedAttributeValues(proofRequest *schema.ProofRequest, indyProof *schema.IndyProof, cryptoProof *schema.CryptoProof) error {
	for attrReferent, info := range indyProof.RequestedProof.RevealedAttrs {
		requestAttr, ok := proofRequest.RequestedAttributes[attrReferent]
		if !ok {
			return errors.Errorf("attribute with referent %s not found in proof request", attrReferent)
		}

		if EncodeValue(info.Raw) != info.Encoded {
			return errors.Errorf("encoded value for %q does not match its raw value", requestAttr.Name)
		}

		err := verifyRevealedAttrValue(requestAttr.Name, cryptoProof, info)
		if err != nil {
			return err
		}
	}

	return nil
}

func verifyRevealedAttrValue(attrName string, cryptoProof *schema.CryptoProof, info *schema.RevealedAttributeInfo) error {
	revealedAttrEnc := info.Encoded
	subProofIdx := int(info.SubProofIndex)

	if subProofIdx >= len(cryptoProof.Proofs) {
		return errors.Errorf("crypto proof not found by index %d", subProofIdx)
	}
	attrs := cryptoProof.Proofs[subProofIdx].RevealedAttrs()

	var cryptoProofEnc string
	for k, v := range attrs {
		if schema.AttrCommonView(k) == schema.AttrCommonView(attrName) {
			cryptoProofEnc = v
			break
		}
	}

	if cryptoProofEnc == "" {
		return errors.Errorf("attribute with name %q not found in crypto proof", attrName)
	}

	i, ok := new(big.Int).SetString(revealedAttrEnc, 10)
	if !ok {
		return errors.Errorf("encoded value for %q is not a number", attrName)
	}

	j, ok := new(big.Int).SetString(cryptoProofEnc, 10)
	if !ok {
		return errors.Errorf("crypto proof value for %q is not a number", attrName)
	}

	if i.Cmp(j) != 0 {
		return errors.Errorf("encoded values for %q are different in requested proof %q and crypto proof %q", attrName, revealedAttrEnc, cryptoProofEnc)
	}

	return nil
}

// verifyRequestedRestrictions requires every restricted attribute and predicate to come from a
// credential accepted by at least one of its filters.
func verifyRequestedRestrictions(proofReq *schema.ProofRequest, receivedRevealedAttrs map[string]*schema.Identifier,
	receivedUnrevealedAttrs map[string]*schema.Identifier, receivedPredicates map[string]*schema.Identifier, receivedSelfAttestedAttrs []string) error {

	proofAttrIdentifiers := map[string]*schema.Identifier{}
	for k, v := range receivedRevealedAttrs {
		proofAttrIdentifiers[k] = v
	}

	for k, v := range receivedUnrevealedAttrs {
		proofAttrIdentifiers[k] = v
	}

	for referent, info := range proofReq.RequestedAttributes {
		if !info.Restricted() {
			continue
		}

		if isSelfAttested(referent, receivedSelfAttestedAttrs) {
			return errors.Errorf("attribute %s must come from a credential but was self attested", referent)
		}

		identifier, ok := proofAttrIdentifiers[referent]
		if !ok {
			return errors.Errorf("no credential provided for attribute %s", referent)
		}

		err := matchIdentifier(referent, identifier, info.AnyMatch)
		if err != nil {
			return err
		}
	}

	for referent, predicate := range proofReq.RequestedPredicates {
		if predicate.Restrictions == nil {
			continue
		}

		identifier, ok := receivedPredicates[referent]
		if !ok {
			return errors.Errorf("no credential provided for predicate %s", referent)
		}

		info := &schema.AttributeInfo{Name: predicate.Name, Restrictions: predicate.Restrictions}
		err := matchIdentifier(referent, identifier, info.AnyMatch)
		if err != nil {
			return err
		}
	}

	return nil
}

func matchIdentifier(referent string, identifier *schema.Identifier, match func(issuerDID, name, version string) bool) error {
	version, err := identifier.SchemaVersion()
	if err != nil {
		return errors.Wrapf(err, "invalid identifier for %s", referent)
	}

	issuer, err := identifier.IssuerDID()
	if err != nil {
		return errors.Wrapf(err, "invalid identifier for %s", referent)
	}

	if !match(issuer, version.Name, version.Version) {
		return errors.Errorf("credential for %s from %s (%s) does not satisfy any restriction", referent, issuer, version)
	}

	return nil
}

func isSelfAttested(referent string, attrs []string) bool {
	for _, attr := range attrs {
		if attr == referent {
			return true
		}
	}
	return false
}

func receivedRevealedAttrs(proof *schema.IndyProof) (map[string]*schema.Identifier, error) {
	out := map[string]*schema.Identifier{}
	for k, v := range proof.RequestedProof.RevealedAttrs {
		ident, err := getProofIdentifier(proof, int(v.SubProofIndex))
		if err != nil {
			return nil, err
		}
		out[k] = ident
	}

	return out, nil
}

func receivedUnrevealedAttrs(proof *schema.IndyProof) (map[string]*schema.Identifier, error) {
	out := map[string]*schema.Identifier{}
	for k, v := range proof.RequestedProof.UnrevealedAttrs {
		ident, err := getProofIdentifier(proof, int(v.SubProofIndex))
		if err != nil {
			return nil, err
		}
		out[k] = ident
	}

	return out, nil
}

func receivedPredicates(proof *schema.IndyProof) (map[string]*schema.Identifier, error) {
	out := map[string]*schema.Identifier{}
	for k, v := range proof.RequestedProof.Predicates {
		ident, err := getProofIdentifier(proof, int(v.SubProofIndex))
		if err != nil {
			return nil, err
		}
		out[k] = ident
	}

	return out, nil
}

func receivedSelfAttestedAttrs(proof *schema.IndyProof) []string {
	out := make([]string, 0, len(proof.RequestedProof.SelfAttestedAttrs))
	for k := range proof.RequestedProof.SelfAttestedAttrs {
		out = append(out, k)
	}

	return out
}

func getProofIdentifier(proof *schema.IndyProof, idx int) (*schema.Identifier, error) {
	if idx < 0 || idx >= len(proof.Identifiers) {
		return nil, errors.Errorf("sub proof index %d out of range", idx)
	}
	return proof.Identifiers[idx], nil
}
