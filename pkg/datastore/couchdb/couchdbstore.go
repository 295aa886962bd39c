/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package couchdbstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	_ "github.com/go-kivik/couchdb" // The CouchDB driver
	"github.com/go-kivik/kivik"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
)

// Provider represents an CouchDB implementation of the storage.Provider interface
type Provider struct {
	hostURL       string
	couchDBClient *kivik.Client
	dbs           map[string]*couchDBStore
	sync.RWMutex
}

const (
	blankHostErrMsg           = "hostURL for new CouchDB provider can't be blank"
	failToCloseProviderErrMsg = "failed to close provider"
)

type Config struct {
	URL string `mapstructure:"url"`
}

// NewProvider instantiates Provider
func NewProvider(hostURL string) (*Provider, error) {
	if hostURL == "" {
		return nil, errors.New(blankHostErrMsg)
	}

	client, err := kivik.New("couch", hostURL)
	if err != nil {
		return nil, err
	}

	p := &Provider{hostURL: hostURL, couchDBClient: client, dbs: map[string]*couchDBStore{}}
	return p, nil
}

// OpenStore opens an existing store with the given name and returns it.
func (p *Provider) OpenStore(name string) (datastore.Store, error) {
	p.Lock()
	defer p.Unlock()

	// Check cache first
	cachedStore, existsInCache := p.dbs[name]
	if existsInCache {
		return cachedStore, nil
	}

	store := &couchDBStore{dbs: map[string]*kivik.DB{}}
	for _, c := range []string{
		datastore.UniversityC, datastore.StudentC, datastore.ClaimSchemaC, datastore.ProofRecordC,
		datastore.WalletC, datastore.ExchangePositionC, datastore.WebhookC, datastore.ConnectionC,
		datastore.ProofRequestC,
	} {
		dbname := strings.ToLower(name + "_" + c)
		err := p.couchDBClient.CreateDB(context.Background(), dbname)
		if err != nil && kivik.StatusCode(err) != http.StatusPreconditionFailed {
			return nil, errors.Wrapf(err, "failed to create db %s", dbname)
		}

		db := p.couchDBClient.DB(context.Background(), dbname)
		if db.Err() != nil {
			return nil, db.Err()
		}

		store.dbs[c] = db
	}

	p.dbs[name] = store

	return store, nil
}

// CloseStore closes a previously opened store.
func (p *Provider) CloseStore(name string) error {
	p.Lock()
	defer p.Unlock()

	store, exists := p.dbs[name]
	if !exists {
		return nil
	}

	delete(p.dbs, name)

	return store.close()
}

// Close closes the provider.
func (p *Provider) Close() error {
	p.Lock()
	defer p.Unlock()

	for _, store := range p.dbs {
		err := store.close()
		if err != nil {
			return fmt.Errorf(failToCloseProviderErrMsg+": %w", err)
		}
	}

	if err := p.couchDBClient.Close(context.Background()); err != nil {
		return err
	}

	p.dbs = make(map[string]*couchDBStore)

	return nil
}

// couchDBStore keeps one CouchDB database per entity
type couchDBStore struct {
	dbs map[string]*kivik.DB
}

func (r *couchDBStore) close() error {
	for _, db := range r.dbs {
		err := db.Close(context.Background())
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *couchDBStore) put(c, id string, doc interface{}) error {
	_, err := r.dbs[c].Put(context.Background(), id, doc)
	if err != nil {
		return errors.Wrapf(err, "unable to insert %s", c)
	}

	return nil
}

func (r *couchDBStore) get(c, id string, out interface{}) error {
	row := r.dbs[c].Get(context.Background(), id)

	err := row.ScanDoc(out)
	if err != nil {
		if kivik.StatusCode(err) == http.StatusNotFound {
			return datastore.ErrNotFound
		}
		return errors.Wrapf(err, "unable to load %s", c)
	}

	return nil
}

// replace overwrites doc at id with the latest revision, merging the _rev like a partial update
func (r *couchDBStore) replace(c, id string, doc interface{}) error {
	current := map[string]interface{}{}
	err := r.get(c, id, &current)
	if err != nil {
		return err
	}

	_, err = r.dbs[c].Put(context.Background(), id, withRev(doc, current["_rev"]))
	if err != nil {
		return errors.Wrapf(err, "unable to update %s", c)
	}

	return nil
}

// find runs a mango query and calls next for each document
func (r *couchDBStore) find(c string, selector map[string]interface{}, limit int, next func() interface{}) error {
	query := map[string]interface{}{
		"selector": selector,
	}

	if limit > 0 {
		query["limit"] = limit
	}

	rows, err := r.dbs[c].Find(context.Background(), query)
	if err != nil {
		return errors.Wrapf(err, "unable to query %s", c)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		err = rows.ScanDoc(next())
		if err != nil {
			return errors.Wrapf(err, "scanning %s rows", c)
		}
	}

	return rows.Err()
}

func (r *couchDBStore) findOne(c string, selector map[string]interface{}, out interface{}) error {
	var found bool
	err := r.find(c, selector, 1, func() interface{} {
		found = true
		return out
	})
	if err != nil {
		return err
	}

	if !found {
		return datastore.ErrNotFound
	}

	return nil
}

func withRev(doc interface{}, rev interface{}) map[string]interface{} {
	b, _ := json.Marshal(doc)
	m := make(map[string]interface{})
	_ = json.Unmarshal(b, &m)

	m["_rev"] = rev

	return m
}

func (r *couchDBStore) InsertUniversity(u *datastore.University) (string, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	return u.ID, r.put(datastore.UniversityC, u.ID, u)
}

func (r *couchDBStore) GetUniversity(id string) (*datastore.University, error) {
	u := &datastore.University{}
	err := r.get(datastore.UniversityC, id, u)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *couchDBStore) GetUniversityByName(name string) (*datastore.University, error) {
	u := &datastore.University{}
	err := r.findOne(datastore.UniversityC, map[string]interface{}{"Name": name}, u)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *couchDBStore) ListUniversities() ([]*datastore.University, error) {
	out := []*datastore.University{}
	err := r.find(datastore.UniversityC, map[string]interface{}{}, 0, func() interface{} {
		u := &datastore.University{}
		out = append(out, u)
		return u
	})

	return out, err
}

func (r *couchDBStore) InsertStudent(s *datastore.Student) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return s.ID, r.put(datastore.StudentC, s.ID, s)
}

func (r *couchDBStore) GetStudent(id string) (*datastore.Student, error) {
	s := &datastore.Student{}
	err := r.get(datastore.StudentC, id, s)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *couchDBStore) GetStudentByUserName(universityID, userName string) (*datastore.Student, error) {
	s := &datastore.Student{}
	err := r.findOne(datastore.StudentC, map[string]interface{}{"UniversityID": universityID, "UserName": userName}, s)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *couchDBStore) ListStudents(universityID string) ([]*datastore.Student, error) {
	out := []*datastore.Student{}
	err := r.find(datastore.StudentC, map[string]interface{}{"UniversityID": universityID}, 0, func() interface{} {
		s := &datastore.Student{}
		out = append(out, s)
		return s
	})

	return out, err
}

func (r *couchDBStore) UpdateStudent(s *datastore.Student) error {
	return r.replace(datastore.StudentC, s.ID, s)
}

func (r *couchDBStore) DeleteStudent(id string) error {
	current := map[string]interface{}{}
	err := r.get(datastore.StudentC, id, &current)
	if err != nil {
		return err
	}

	rev, _ := current["_rev"].(string)
	_, err = r.dbs[datastore.StudentC].Delete(context.Background(), id, rev)
	return err
}

func (r *couchDBStore) InsertClaimSchema(s *datastore.ClaimSchema) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return s.ID, r.put(datastore.ClaimSchemaC, s.ID, s)
}

func (r *couchDBStore) FindClaimSchema(universityID, name, version string) (*datastore.ClaimSchema, error) {
	s := &datastore.ClaimSchema{}
	selector := map[string]interface{}{"UniversityID": universityID, "SchemaName": name, "SchemaVersion": version}
	err := r.findOne(datastore.ClaimSchemaC, selector, s)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *couchDBStore) InsertProofRecord(p *datastore.ProofRecord) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return p.ID, r.put(datastore.ProofRecordC, p.ID, p)
}

func (r *couchDBStore) GetProofRecord(id string) (*datastore.ProofRecord, error) {
	p := &datastore.ProofRecord{}
	err := r.get(datastore.ProofRecordC, id, p)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *couchDBStore) ListOpenProofRecords(studentID, proofName string) ([]*datastore.ProofRecord, error) {
	out := []*datastore.ProofRecord{}
	selector := map[string]interface{}{"StudentID": studentID, "ProofName": proofName, "ProofJSON": nil}
	err := r.find(datastore.ProofRecordC, selector, 0, func() interface{} {
		p := &datastore.ProofRecord{}
		out = append(out, p)
		return p
	})

	return out, err
}

// CompleteProofRecord relies on CouchDB revisions; a concurrent writer makes the Put fail with a conflict.
func (r *couchDBStore) CompleteProofRecord(id, proofJSON string) error {
	current := map[string]interface{}{}
	err := r.get(datastore.ProofRecordC, id, &current)
	if err != nil {
		return err
	}

	if current["ProofJSON"] != nil {
		return datastore.ErrProofAlreadyProvided
	}

	current["ProofJSON"] = proofJSON

	_, err = r.dbs[datastore.ProofRecordC].Put(context.Background(), id, current)
	if err != nil {
		if kivik.StatusCode(err) == http.StatusConflict {
			return datastore.ErrProofAlreadyProvided
		}
		return errors.Wrap(err, "unable to complete proof record")
	}

	return nil
}

func (r *couchDBStore) InsertWallet(w *datastore.WalletRecord) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return r.put(datastore.WalletC, w.OwnerID, w)
}

func (r *couchDBStore) GetWallet(ownerID string) (*datastore.WalletRecord, error) {
	w := &datastore.WalletRecord{}
	err := r.get(datastore.WalletC, ownerID, w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (r *couchDBStore) UpdateWallet(w *datastore.WalletRecord) error {
	return r.replace(datastore.WalletC, w.OwnerID, w)
}

func (r *couchDBStore) InsertExchangePosition(p *datastore.ExchangePosition) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	key := p.UniversityID + ":" + p.ProofRecordID
	_, err := r.dbs[datastore.ExchangePositionC].Put(context.Background(), key, p)
	if err == nil {
		return p.ID, nil
	}

	if kivik.StatusCode(err) != http.StatusConflict {
		return "", errors.Wrap(err, "unable to insert exchange position")
	}

	existing := &datastore.ExchangePosition{}
	err = r.get(datastore.ExchangePositionC, key, existing)
	if err != nil {
		return "", err
	}

	return existing.ID, nil
}

func (r *couchDBStore) ListExchangePositions(universityID string) ([]*datastore.ExchangePosition, error) {
	out := []*datastore.ExchangePosition{}
	err := r.find(datastore.ExchangePositionC, map[string]interface{}{"UniversityID": universityID}, 0, func() interface{} {
		p := &datastore.ExchangePosition{}
		out = append(out, p)
		return p
	})

	return out, err
}

func (r *couchDBStore) InsertWebhook(w *datastore.Webhook) error {
	return r.put(datastore.WebhookC, uuid.New().String(), w)
}

func (r *couchDBStore) ListWebhooks(topic string) ([]*datastore.Webhook, error) {
	out := []*datastore.Webhook{}
	err := r.find(datastore.WebhookC, map[string]interface{}{"Type": topic}, 0, func() interface{} {
		w := &datastore.Webhook{}
		out = append(out, w)
		return w
	})

	return out, err
}

func (r *couchDBStore) InsertConnectionRecord(c *datastore.ConnectionRecord) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return c.ID, r.put(datastore.ConnectionC, c.ID, c)
}

func (r *couchDBStore) GetConnectionRecord(studentID, universityID string) (*datastore.ConnectionRecord, error) {
	c := &datastore.ConnectionRecord{}
	err := r.findOne(datastore.ConnectionC, map[string]interface{}{"StudentID": studentID, "UniversityID": universityID}, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *couchDBStore) UpdateConnectionRecord(c *datastore.ConnectionRecord) error {
	return r.replace(datastore.ConnectionC, c.ID, c)
}

func (r *couchDBStore) SaveProofRequestIfNew(p *datastore.ReceivedProofRequest) (bool, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	_, err := r.dbs[datastore.ProofRequestC].Put(context.Background(), p.UniversityID+":"+p.Nonce, p)
	if err == nil {
		return true, nil
	}

	if kivik.StatusCode(err) == http.StatusConflict {
		return false, nil
	}

	return false, errors.Wrap(err, "unable to save proof request")
}

func (r *couchDBStore) ListProofRequests(studentID string) ([]*datastore.ReceivedProofRequest, error) {
	out := []*datastore.ReceivedProofRequest{}
	err := r.find(datastore.ProofRequestC, map[string]interface{}{"StudentID": studentID}, 0, func() interface{} {
		p := &datastore.ReceivedProofRequest{}
		out = append(out, p)
		return p
	})

	return out, err
}
