/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
)

// Manager opens wallets one operation at a time. Wallets are sealed at rest with the master lock key.
type Manager struct {
	store datastore.Store
	key   [32]byte
	log   *log.Entry

	lock  sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store datastore.Store, masterLockKey string) (*Manager, error) {
	raw, err := base64.URLEncoding.DecodeString(masterLockKey)
	if err != nil {
		return nil, errors.Wrap(err, "master lock key must be url safe base64")
	}

	if len(raw) != 32 {
		return nil, errors.Errorf("master lock key must be 32 bytes, got %d", len(raw))
	}

	m := &Manager{
		store: store,
		log:   log.WithField("component", "wallet"),
		locks: map[string]*sync.Mutex{},
	}
	copy(m.key[:], raw)

	return m, nil
}

func (r *Manager) ownerLock(ownerID string) *sync.Mutex {
	r.lock.Lock()
	defer r.lock.Unlock()

	l, ok := r.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[ownerID] = l
	}

	return l
}

// With opens the owner's wallet, creating it if needed, runs f and closes it again.
// Changes are persisted only when f succeeds. Do not hold a wallet across network calls.
func (r *Manager) With(ownerID string, f func(w *Wallet) error) error {
	l := r.ownerLock(ownerID)
	l.Lock()
	defer l.Unlock()

	rec, err := r.store.GetWallet(ownerID)
	isNew := false
	switch {
	case err == datastore.ErrNotFound:
		isNew = true
		rec = &datastore.WalletRecord{OwnerID: ownerID}
	case err != nil:
		return errors.Wrap(err, "unable to load wallet")
	}

	w := &Wallet{ownerID: ownerID}
	if isNew {
		w.data = newContents()
		w.dirty = true
	} else {
		w.data, err = r.open(rec.Sealed)
		if err != nil {
			return err
		}
	}
	defer w.close()

	err = f(w)
	if err != nil {
		return err
	}

	if !w.dirty {
		return nil
	}

	rec.Sealed, err = r.seal(w.data)
	if err != nil {
		return err
	}

	if isNew {
		err = r.store.InsertWallet(rec)
	} else {
		err = r.store.UpdateWallet(rec)
	}

	if err != nil {
		return errors.Wrap(err, "unable to save wallet")
	}

	r.log.WithField("owner", ownerID).Debug("wallet saved")

	return nil
}

func (r *Manager) seal(c *contents) ([]byte, error) {
	d, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal wallet")
	}

	var nonce [nonceSize]byte
	_, err = io.ReadFull(rand.Reader, nonce[:])
	if err != nil {
		return nil, errors.Wrap(err, "unable to create nonce")
	}

	return secretbox.Seal(nonce[:], d, &nonce, &r.key), nil
}

func (r *Manager) open(sealed []byte) (*contents, error) {
	if len(sealed) < nonceSize {
		return nil, errors.New("sealed wallet is truncated")
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	d, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &r.key)
	if !ok {
		return nil, errors.New("unable to open wallet, wrong master lock key")
	}

	c := newContents()
	err := json.Unmarshal(d, c)
	if err != nil {
		return nil, errors.Wrap(err, "corrupt wallet")
	}

	return c, nil
}

// CreatePairwiseDID generates a fresh DID for a new connection.
func (r *Manager) CreatePairwiseDID(ownerID string) (string, string, error) {
	var did, verkey string
	err := r.With(ownerID, func(w *Wallet) error {
		var err error
		did, verkey, err = w.CreateDID()
		return err
	})

	return did, verkey, err
}

func (r *Manager) AcceptConnectionRequest(ownerID string, req *schema.ConnectionRequest) (*schema.ConnectionResponse, *Pairwise, error) {
	var resp *schema.ConnectionResponse
	var p *Pairwise
	err := r.With(ownerID, func(w *Wallet) error {
		var err error
		resp, p, err = w.AcceptConnectionRequest(req)
		return err
	})

	return resp, p, err
}

func (r *Manager) AnonEncrypt(theirVerkey string, msg []byte) ([]byte, error) {
	return AnonEncrypt(theirVerkey, msg)
}

func (r *Manager) AnonDecrypt(ownerID, myVerkey string, msg []byte) ([]byte, error) {
	var out []byte
	err := r.With(ownerID, func(w *Wallet) error {
		var err error
		out, err = w.AnonDecrypt(myVerkey, msg)
		return err
	})

	return out, err
}

func (r *Manager) AuthEncrypt(ownerID, myVerkey, theirVerkey string, msg []byte) ([]byte, error) {
	var out []byte
	err := r.With(ownerID, func(w *Wallet) error {
		var err error
		out, err = w.AuthEncrypt(myVerkey, theirVerkey, msg)
		return err
	})

	return out, err
}

func (r *Manager) AuthDecrypt(ownerID, myVerkey, theirVerkey string, msg []byte) ([]byte, error) {
	var out []byte
	err := r.With(ownerID, func(w *Wallet) error {
		var err error
		out, err = w.AuthDecrypt(myVerkey, theirVerkey, msg)
		return err
	})

	return out, err
}
