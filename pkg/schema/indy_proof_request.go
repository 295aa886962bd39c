/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"github.com/pkg/errors"
)

// Filter narrows which issued credential may satisfy an attribute. Empty fields do not restrict.
type Filter struct {
	IssuerDID     string `json:"issuer_did,omitempty"`
	SchemaName    string `json:"schema_name,omitempty"`
	SchemaVersion string `json:"schema_version,omitempty"`
}

// Matches reports whether a credential with the given issuer and schema satisfies the filter.
func (r Filter) Matches(issuerDID, schemaName, schemaVersion string) bool {
	if r.IssuerDID != "" && r.IssuerDID != issuerDID {
		return false
	}
	if r.SchemaName != "" && r.SchemaName != schemaName {
		return false
	}
	if r.SchemaVersion != "" && r.SchemaVersion != schemaVersion {
		return false
	}
	return true
}

// AttributeInfo names a requested attribute. A nil Restrictions slice leaves the attribute
// unrestricted; a non-nil slice must hold at least one Filter and any of them satisfies it.
type AttributeInfo struct {
	Name         string   `json:"name"`
	Restrictions []Filter `json:"restrictions,omitempty"`
}

func (r *AttributeInfo) Restricted() bool {
	return r.Restrictions != nil
}

// AnyMatch reports whether at least one restriction accepts the credential.
func (r *AttributeInfo) AnyMatch(issuerDID, schemaName, schemaVersion string) bool {
	if !r.Restricted() {
		return true
	}

	for _, f := range r.Restrictions {
		if f.Matches(issuerDID, schemaName, schemaVersion) {
			return true
		}
	}

	return false
}

func (r *AttributeInfo) Validate() error {
	if r.Name == "" {
		return errors.New("attribute name is required")
	}
	if r.Restrictions != nil && len(r.Restrictions) == 0 {
		return errors.Errorf("attribute %s has an empty restriction list", r.Name)
	}
	return nil
}

type IndyProofRequestPredicate struct {
	Name         string   `json:"name"`
	PType        string   `json:"p_type"`
	PValue       int32    `json:"p_value"`
	Restrictions []Filter `json:"restrictions,omitempty"`
}

// ProofRequest is the wire-level request a verifier sends to a holder.
type ProofRequest struct {
	Name                string                                `json:"name"`
	Version             string                                `json:"version"`
	Nonce               string                                `json:"nonce"`
	TheirDID            string                                `json:"their_did"`
	RequestedAttributes map[string]*AttributeInfo             `json:"requested_attributes"`
	RequestedPredicates map[string]*IndyProofRequestPredicate `json:"requested_predicates,omitempty"`
}

func (r *ProofRequest) ProofVersion() Version {
	return NewVersion(r.Name, r.Version)
}

func (r *ProofRequest) Validate() error {
	if r.Name == "" || r.Version == "" || r.Nonce == "" {
		return errors.New("proof request requires name, version and nonce")
	}

	for field, info := range r.RequestedAttributes {
		if info == nil {
			return errors.Errorf("requested attribute %s is empty", field)
		}
		if err := info.Validate(); err != nil {
			return errors.Wrapf(err, "invalid requested attribute %s", field)
		}
	}

	return nil
}
