/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package couchdbstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-kivik/kivik"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/datastore"
)

const (
	couchDBURL = "localhost:5984"
)

// Useful during testing http://127.0.0.1:5984/_utils/#/_all_dbs
func TestMain(m *testing.M) {
	err := waitForCouchDBToStart()
	if err != nil {
		fmt.Printf(err.Error() +
			". Make sure you start a couchDB instance using" +
			" 'docker run -p 5984:5984 couchdb:2.3.1' before running the unit tests")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func waitForCouchDBToStart() error {
	client, err := kivik.New("couch", couchDBURL)
	if err != nil {
		return err
	}

	timeout := time.After(5 * time.Second)

	for {
		select {
		case <-timeout:
			return fmt.Errorf("timeout: couldn't reach CouchDB server")
		default:
			dbs, err := client.AllDBs(context.Background())
			if err != nil {
				return err
			}

			for _, v := range dbs {
				if err := client.DestroyDB(context.Background(), v); err != nil {
					panic(err.Error())
				}
			}

			return nil
		}
	}
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider("")
	require.Error(t, err)
	require.Equal(t, blankHostErrMsg, err.Error())
}

func TestCompleteProofRecord(t *testing.T) {
	prov, err := NewProvider(couchDBURL)
	require.NoError(t, err)

	store, err := prov.OpenStore("test_proofs")
	require.NoError(t, err)

	t.Run("write once", func(t *testing.T) {
		id, err := store.InsertProofRecord(&datastore.ProofRecord{StudentID: "s1", ProofName: "Diploma", ProofVersion: "1.0", Nonce: "99"})
		require.NoError(t, err)

		err = store.CompleteProofRecord(id, `{"first":true}`)
		require.NoError(t, err)

		err = store.CompleteProofRecord(id, `{"second":true}`)
		require.Equal(t, datastore.ErrProofAlreadyProvided, err)

		rec, err := store.GetProofRecord(id)
		require.NoError(t, err)
		require.Equal(t, `{"first":true}`, *rec.ProofJSON)
	})

	t.Run("not found", func(t *testing.T) {
		err := store.CompleteProofRecord("missing", `{}`)
		require.Equal(t, datastore.ErrNotFound, err)
	})
}

func TestUpdateStudent(t *testing.T) {
	prov, err := NewProvider(couchDBURL)
	require.NoError(t, err)

	store, err := prov.OpenStore("test_students")
	require.NoError(t, err)

	id, err := store.InsertStudent(&datastore.Student{UserName: "SxxxLbbb", UniversityID: "u1"})
	require.NoError(t, err)

	s, err := store.GetStudentByUserName("u1", "SxxxLbbb")
	require.NoError(t, err)
	require.Equal(t, id, s.ID)

	s.Pending = &datastore.PendingConnection{MyDID: "d", MyVerkey: "v", RequestNonce: "n"}
	err = store.UpdateStudent(s)
	require.NoError(t, err)

	s, err = store.GetStudent(id)
	require.NoError(t, err)
	require.Equal(t, "n", s.Pending.RequestNonce)

	err = store.DeleteStudent(id)
	require.NoError(t, err)

	_, err = store.GetStudent(id)
	require.Equal(t, datastore.ErrNotFound, err)
}
