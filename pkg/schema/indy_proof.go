/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// IndyProof is the holder's response to a ProofRequest.
type IndyProof struct {
	Proof          json.RawMessage     `json:"proof"`
	RequestedProof *IndyRequestedProof `json:"requested_proof"`
	Identifiers    []*Identifier       `json:"identifiers"`
}

type IndyRequestedProof struct {
	RevealedAttrs      map[string]*RevealedAttributeInfo      `json:"revealed_attrs"`
	RevealedAttrGroups map[string]*RevealedAttributeGroupInfo `json:"revealed_attr_groups,omitempty"`
	SelfAttestedAttrs  map[string]string                      `json:"self_attested_attrs"`
	UnrevealedAttrs    map[string]*SubProofReferent           `json:"unrevealed_attrs"`
	Predicates         map[string]*SubProofReferent           `json:"predicates"`
}

type Identifier struct {
	SchemaID  string `json:"schema_id"`
	CredDefID string `json:"cred_def_id"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// SchemaVersion parses an indy schema id of the form <issuer did>:2:<name>:<version>.
func (r *Identifier) SchemaVersion() (Version, error) {
	parts := strings.Split(r.SchemaID, ":")
	if len(parts) != 4 || parts[1] != "2" {
		return Version{}, errors.Errorf("malformed schema id %q", r.SchemaID)
	}

	return NewVersion(parts[2], parts[3]), nil
}

// IssuerDID is the origin of the credential definition, <issuer did>:3:CL:<ref>:<tag>.
func (r *Identifier) IssuerDID() (string, error) {
	parts := strings.Split(r.CredDefID, ":")
	if len(parts) < 4 || parts[1] != "3" {
		return "", errors.Errorf("malformed cred def id %q", r.CredDefID)
	}

	return parts[0], nil
}

type SubProofReferent struct {
	SubProofIndex int32 `json:"sub_proof_index"`
}

type RevealedAttributeInfo struct {
	SubProofIndex int32  `json:"sub_proof_index"`
	Raw           string `json:"raw"`
	Encoded       string `json:"encoded"`
}

type RevealedAttributeGroupInfo struct {
	SubProofIndex int32                          `json:"sub_proof_index"`
	Values        map[string]*IndyAttributeValue `json:"values"`
}

type IndyAttributeValue struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
}

// CryptoProof only decodes the parts of the CL proof needed to cross check revealed values.
// The complete proof is handed to the crypto verifier as raw JSON.
type CryptoProof struct {
	Proofs []*SubProof `json:"proofs"`
}

type SubProof struct {
	Primary *PrimaryProof `json:"primary_proof"`
}

type PrimaryProof struct {
	EqProof PrimaryEqualProof `json:"eq_proof"`
}

type PrimaryEqualProof struct {
	RevealedAttrs map[string]string `json:"revealed_attrs"`
}

func (r *SubProof) RevealedAttrs() map[string]string {
	out := map[string]string{}
	if r.Primary == nil {
		return out
	}

	for k, v := range r.Primary.EqProof.RevealedAttrs {
		out[k] = v
	}
	return out
}
