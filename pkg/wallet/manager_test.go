/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/datastore/mocks"
	"github.com/scoir/studybits/pkg/schema"
)

const testLockKey = "OTsonzgWMNAqR24bgGcZVHVBB_oqLoXntW4s_vCs6uQ="

type walletStore struct {
	mocks.Store
	lock    sync.Mutex
	wallets map[string]datastore.WalletRecord
	inserts int
	updates int
}

func newWalletStore() *walletStore {
	return &walletStore{wallets: map[string]datastore.WalletRecord{}}
}

func (r *walletStore) GetWallet(ownerID string) (*datastore.WalletRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	w, ok := r.wallets[ownerID]
	if !ok {
		return nil, datastore.ErrNotFound
	}
	return &w, nil
}

func (r *walletStore) InsertWallet(w *datastore.WalletRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.inserts++
	r.wallets[w.OwnerID] = *w
	return nil
}

func (r *walletStore) UpdateWallet(w *datastore.WalletRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.updates++
	r.wallets[w.OwnerID] = *w
	return nil
}

func TestNewManager(t *testing.T) {
	t.Run("bad encoding", func(t *testing.T) {
		_, err := NewManager(newWalletStore(), "not base64!")
		require.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := NewManager(newWalletStore(), "AAAA")
		require.Error(t, err)
		require.Contains(t, err.Error(), "32 bytes")
	})
}

func TestManager_With(t *testing.T) {
	t.Run("creates, seals and reopens", func(t *testing.T) {
		store := newWalletStore()
		mgr, err := NewManager(store, testLockKey)
		require.NoError(t, err)

		var did string
		err = mgr.With("student-1", func(w *Wallet) error {
			did, _, err = w.Identity()
			return err
		})
		require.NoError(t, err)
		require.Equal(t, 1, store.inserts)
		require.NotContains(t, string(store.wallets["student-1"].Sealed), did)

		err = mgr.With("student-1", func(w *Wallet) error {
			again, _, err := w.Identity()
			require.Equal(t, did, again)
			return err
		})
		require.NoError(t, err)
		require.Equal(t, 0, store.updates)
	})

	t.Run("failure does not persist", func(t *testing.T) {
		store := newWalletStore()
		mgr, err := NewManager(store, testLockKey)
		require.NoError(t, err)

		err = mgr.With("student-1", func(w *Wallet) error {
			_, _, _ = w.CreateDID()
			return errors.New("boom")
		})
		require.Error(t, err)
		require.Equal(t, 0, store.inserts)
	})

	t.Run("wrong master key", func(t *testing.T) {
		store := newWalletStore()
		mgr, err := NewManager(store, testLockKey)
		require.NoError(t, err)

		_, _, err = mgr.CreatePairwiseDID("uni")
		require.NoError(t, err)

		other, err := NewManager(store, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=")
		require.NoError(t, err)

		err = other.With("uni", func(w *Wallet) error { return nil })
		require.Error(t, err)
		require.Contains(t, err.Error(), "wrong master lock key")
	})
}

func TestConnectionAndMessaging(t *testing.T) {
	store := newWalletStore()
	mgr, err := NewManager(store, testLockKey)
	require.NoError(t, err)

	uniDID, uniVerkey, err := mgr.CreatePairwiseDID("university")
	require.NoError(t, err)

	req := &schema.ConnectionRequest{DID: uniDID, Verkey: uniVerkey, RequestNonce: "nonce-1"}
	resp, pairwise, err := mgr.AcceptConnectionRequest("student", req)
	require.NoError(t, err)
	require.Equal(t, "nonce-1", resp.RequestNonce)
	require.Equal(t, uniVerkey, pairwise.TheirVerkey)

	err = mgr.With("student", func(w *Wallet) error {
		stored, err := w.GetPairwise(resp.DID)
		require.NoError(t, err)
		require.Equal(t, uniDID, stored.TheirDID)

		_, err = w.GetPairwise(uniDID)
		require.Error(t, err)
		return nil
	})
	require.NoError(t, err)

	t.Run("anoncrypt to university", func(t *testing.T) {
		ct, err := mgr.AnonEncrypt(uniVerkey, []byte("hello"))
		require.NoError(t, err)

		pt, err := mgr.AnonDecrypt("university", uniVerkey, ct)
		require.NoError(t, err)
		require.Equal(t, "hello", string(pt))

		_, err = mgr.AnonDecrypt("student", resp.Verkey, ct)
		require.Error(t, err)
	})

	t.Run("authcrypt both ways", func(t *testing.T) {
		ct, err := mgr.AuthEncrypt("university", uniVerkey, resp.Verkey, []byte("proof request"))
		require.NoError(t, err)

		pt, err := mgr.AuthDecrypt("student", resp.Verkey, uniVerkey, ct)
		require.NoError(t, err)
		require.Equal(t, "proof request", string(pt))

		ct, err = mgr.AuthEncrypt("student", resp.Verkey, uniVerkey, []byte("proof"))
		require.NoError(t, err)

		pt, err = mgr.AuthDecrypt("university", uniVerkey, resp.Verkey, ct)
		require.NoError(t, err)
		require.Equal(t, "proof", string(pt))
	})

	t.Run("authdecrypt rejects unexpected sender", func(t *testing.T) {
		_, strangerVerkey, err := mgr.CreatePairwiseDID("stranger")
		require.NoError(t, err)

		ct, err := mgr.AuthEncrypt("stranger", strangerVerkey, uniVerkey, []byte("forged"))
		require.NoError(t, err)

		_, err = mgr.AuthDecrypt("university", uniVerkey, resp.Verkey, ct)
		require.Error(t, err)
		require.Equal(t, ErrDecrypt, errors.Cause(err))
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := mgr.AuthEncrypt("student", uniVerkey, resp.Verkey, []byte("x"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "no key for verkey")
	})
}
