/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/schema"
)

// Pairwise is one side of a DID to DID relationship.
type Pairwise struct {
	MyDID       string
	MyVerkey    string
	TheirDID    string
	TheirVerkey string
}

type contents struct {
	DID      string
	Verkey   string
	Keys     map[string][]byte
	Pairwise map[string]*Pairwise
}

// Wallet is only valid inside Manager.With.
type Wallet struct {
	ownerID string
	data    *contents
	dirty   bool
}

func newContents() *contents {
	return &contents{
		Keys:     map[string][]byte{},
		Pairwise: map[string]*Pairwise{},
	}
}

func (r *Wallet) OwnerID() string {
	return r.ownerID
}

// Identity returns the wallet's main DID, creating it on first use.
func (r *Wallet) Identity() (string, string, error) {
	if r.data.DID != "" {
		return r.data.DID, r.data.Verkey, nil
	}

	did, verkey, err := r.CreateDID()
	if err != nil {
		return "", "", err
	}

	r.data.DID = did
	r.data.Verkey = verkey

	return did, verkey, nil
}

// CreateDID generates a new key pair and stores it in the wallet.
func (r *Wallet) CreateDID() (string, string, error) {
	kp, err := newKeyPair()
	if err != nil {
		return "", "", err
	}

	r.data.Keys[kp.verkey()] = append([]byte{}, kp.priv[:]...)
	r.dirty = true

	return kp.did(), kp.verkey(), nil
}

// StorePairwise records the other party of a connection against one of our DIDs.
func (r *Wallet) StorePairwise(p *Pairwise) error {
	if _, ok := r.data.Keys[p.MyVerkey]; !ok {
		return errors.Errorf("no key for verkey %s", p.MyVerkey)
	}

	r.data.Pairwise[p.MyDID] = p
	r.dirty = true

	return nil
}

func (r *Wallet) GetPairwise(myDID string) (*Pairwise, error) {
	p, ok := r.data.Pairwise[myDID]
	if !ok {
		return nil, errors.Errorf("no pairwise for %s", myDID)
	}

	return p, nil
}

// AcceptConnectionRequest creates a pairwise DID for the requester and answers with it.
func (r *Wallet) AcceptConnectionRequest(req *schema.ConnectionRequest) (*schema.ConnectionResponse, *Pairwise, error) {
	if req.DID == "" || req.Verkey == "" {
		return nil, nil, errors.New("connection request requires did and verkey")
	}

	_, err := decodeVerkey(req.Verkey)
	if err != nil {
		return nil, nil, err
	}

	did, verkey, err := r.CreateDID()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create pairwise did")
	}

	p := &Pairwise{MyDID: did, MyVerkey: verkey, TheirDID: req.DID, TheirVerkey: req.Verkey}
	err = r.StorePairwise(p)
	if err != nil {
		return nil, nil, err
	}

	return &schema.ConnectionResponse{DID: did, Verkey: verkey, RequestNonce: req.RequestNonce}, p, nil
}

func (r *Wallet) AnonDecrypt(myVerkey string, msg []byte) ([]byte, error) {
	kp, err := r.keyPair(myVerkey)
	if err != nil {
		return nil, err
	}

	return anonDecrypt(kp, msg)
}

func (r *Wallet) AuthEncrypt(myVerkey, theirVerkey string, msg []byte) ([]byte, error) {
	kp, err := r.keyPair(myVerkey)
	if err != nil {
		return nil, err
	}

	return authEncrypt(kp, theirVerkey, msg)
}

func (r *Wallet) AuthDecrypt(myVerkey, theirVerkey string, msg []byte) ([]byte, error) {
	kp, err := r.keyPair(myVerkey)
	if err != nil {
		return nil, err
	}

	return authDecrypt(kp, theirVerkey, msg)
}

func (r *Wallet) keyPair(verkey string) (*keyPair, error) {
	priv, ok := r.data.Keys[verkey]
	if !ok || len(priv) != 32 {
		return nil, errors.Errorf("no key for verkey %s", verkey)
	}

	pub, err := decodeVerkey(verkey)
	if err != nil {
		return nil, err
	}

	kp := &keyPair{pub: pub, priv: new([32]byte)}
	copy(kp.priv[:], priv)

	return kp, nil
}

func (r *Wallet) close() {
	for _, k := range r.data.Keys {
		for i := range k {
			k[i] = 0
		}
	}

	r.data = nil
}

// AnonEncrypt seals msg so that only the holder of theirVerkey can read it. No wallet is needed.
func AnonEncrypt(theirVerkey string, msg []byte) ([]byte, error) {
	return anonEncrypt(theirVerkey, msg)
}
