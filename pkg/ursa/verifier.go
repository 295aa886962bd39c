/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ursa

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/indy-vdr/wrappers/golang/vdr"
	"github.com/hyperledger/ursa-wrapper-go/pkg/libursa/ursa"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/scoir/studybits/pkg/presentproof/engine/indy"
	"github.com/scoir/studybits/pkg/schema"
)

//go:generate mockery -name=VDRClient -inpkg
type VDRClient interface {
	GetCredDef(credDefID string) (*vdr.ReadReply, error)
	GetSchema(schemaID string) (*vdr.ReadReply, error)
}

// Verifier checks the CL signatures of an indy proof against cred defs and schemas on the ledger.
type Verifier struct {
	client VDRClient
	log    *log.Entry
}

func NewVerifier(client VDRClient) *Verifier {
	return &Verifier{
		client: client,
		log:    log.WithField("component", "ursa-verifier"),
	}
}

func (r *Verifier) VerifyCrypto(indyProof *schema.IndyProof, subProofs []*indy.SubProof, nonce string) error {
	nonCredSchema, err := BuildNonCredentialSchema()
	if err != nil {
		return errors.Wrap(err, "unable to build non credential schema")
	}

	verifier, err := ursa.NewProofVerifier()
	if err != nil {
		return errors.Wrap(err, "unable to create proof verifier")
	}

	for idx, sp := range subProofs {
		req, err := r.subProofRequest(sp)
		if err != nil {
			return errors.Wrapf(err, "sub proof %d", idx)
		}

		err = verifier.AddSubProofRequest(req.request, req.schema, nonCredSchema, req.pubKey)
		if err != nil {
			return errors.Wrapf(err, "unable to add sub proof request %d", idx)
		}
	}

	proofReqNonce, err := ursa.NonceFromJSON(fmt.Sprintf("\"%s\"", nonce))
	if err != nil {
		return errors.Wrap(err, "invalid proof request nonce")
	}

	cryptoProof, err := ursa.ProofFromJSON(indyProof.Proof)
	if err != nil {
		return errors.Wrap(err, "invalid ursa proof format")
	}
	defer func() { _ = cryptoProof.Free() }()

	return verifier.Verify(cryptoProof, proofReqNonce)
}

type subProofInputs struct {
	request *ursa.SubProofRequestHandle
	schema  *ursa.CredentialSchemaHandle
	pubKey  *ursa.CredentialDefPubKey
}

func (r *Verifier) subProofRequest(sp *indy.SubProof) (*subProofInputs, error) {
	if sp.Identifier == nil {
		return nil, errors.New("missing identifier")
	}

	attrs, err := r.schemaAttributes(sp.Identifier.SchemaID)
	if err != nil {
		return nil, err
	}

	credentialSchema, err := BuildCredentialSchema(attrs)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build verify schema")
	}

	credDef, err := r.credDef(sp.Identifier.CredDefID)
	if err != nil {
		return nil, err
	}

	pubKey, err := CredDefPublicKey(credDef.PKey(), credDef.RKey())
	if err != nil {
		return nil, errors.Wrap(err, "unable to load cred def handle")
	}

	req, err := buildSubProofRequest(sp)
	if err != nil {
		return nil, err
	}

	r.log.WithField("credDef", sp.Identifier.CredDefID).Debug("sub proof request built")
	return &subProofInputs{request: req, schema: credentialSchema, pubKey: pubKey}, nil
}

func (r *Verifier) credDef(credDefID string) (*vdr.ClaimDefData, error) {
	rply, err := r.client.GetCredDef(credDefID)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to get cred def %s from ledger", credDefID)
	}

	credDef := &vdr.ClaimDefData{ID: credDefID}
	err = credDef.UnmarshalReadReply(rply)
	if err != nil {
		return nil, errors.Wrap(err, "invalid reply from ledger for cred def")
	}

	return credDef, nil
}

type ledgerSchema struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attr_names"`
}

func (r *Verifier) schemaAttributes(schemaID string) ([]string, error) {
	rply, err := r.client.GetSchema(schemaID)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to get schema %s from ledger", schemaID)
	}

	return decodeSchemaAttributes(rply)
}

func decodeSchemaAttributes(rply *vdr.ReadReply) ([]string, error) {
	if rply == nil || rply.Data == nil {
		return nil, errors.New("schema not found on ledger")
	}

	d, err := json.Marshal(rply.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid reply from ledger for schema")
	}

	ls := &ledgerSchema{}
	err = json.Unmarshal(d, ls)
	if err != nil {
		return nil, errors.Wrap(err, "invalid reply from ledger for schema")
	}

	if len(ls.AttrNames) == 0 {
		return nil, errors.Errorf("schema %s:%s has no attributes", ls.Name, ls.Version)
	}

	return ls.AttrNames, nil
}

func buildSubProofRequest(sp *indy.SubProof) (*ursa.SubProofRequestHandle, error) {
	subProofBuilder, err := ursa.NewSubProofRequestBuilder()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create sub proof request builder")
	}

	for _, name := range sp.RevealedAttrs {
		err := subProofBuilder.AddRevealedAttr(schema.AttrCommonView(name))
		if err != nil {
			return nil, errors.Wrap(err, "unable to add revealed attribute")
		}
	}

	for _, predicate := range sp.Predicates {
		err = subProofBuilder.AddPredicate(schema.AttrCommonView(predicate.Name), predicate.PType, predicate.PValue)
		if err != nil {
			return nil, errors.Wrap(err, "unable to add predicate to sub proof")
		}
	}

	subProofRequest, err := subProofBuilder.Finalize()
	if err != nil {
		return nil, errors.Wrap(err, "unable to finalize sub proof request")
	}

	return subProofRequest, nil
}
