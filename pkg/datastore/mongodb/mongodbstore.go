/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scoir/studybits/pkg/datastore"
)

type Config struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// Provider represents a Mongo DB implementation of the storage.Provider interface
type Provider struct {
	db     *mongo.Database
	stores map[string]*mongoDBStore
	sync.RWMutex
}

// mongoDBStore keeps one collection per entity, prefixed with the store name.
type mongoDBStore struct {
	db   *mongo.Database
	name string
}

// NewProvider instantiates Provider
func NewProvider(config *Config) (*Provider, error) {
	if config == nil {
		return nil, errors.New("config missing")
	}

	tM := reflect.TypeOf(bson.M{})
	reg := bson.NewRegistryBuilder().RegisterTypeMapEntry(bsontype.EmbeddedDocument, tM).Build()
	clientOpts := options.Client().SetRegistry(reg).ApplyURI(config.URL)

	mongoClient, err := mongo.NewClient(clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "error creating mongo client")
	}

	err = mongoClient.Connect(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to mongo")
	}

	err = mongoClient.Ping(context.Background(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "error pinging mongo")
	}

	p := &Provider{
		db:     mongoClient.Database(config.Database),
		stores: map[string]*mongoDBStore{}}

	return p, nil
}

// OpenStore opens and returns the store for given name space.
func (p *Provider) OpenStore(name string) (datastore.Store, error) {
	p.Lock()
	defer p.Unlock()

	if name == "" {
		return nil, errors.New("store name is required")
	}

	if store, ok := p.stores[name]; ok {
		return store, nil
	}

	store := &mongoDBStore{
		db:   p.db,
		name: name,
	}

	err := store.ensureIndexes()
	if err != nil {
		return nil, err
	}

	p.stores[name] = store

	return store, nil
}

// Close closes the provider.
func (p *Provider) Close() error {
	p.Lock()
	defer p.Unlock()

	p.stores = make(map[string]*mongoDBStore)

	return p.db.Client().Disconnect(context.Background())
}

// CloseStore closes a previously opened stores
func (p *Provider) CloseStore(name string) error {
	p.Lock()
	defer p.Unlock()

	delete(p.stores, name)

	return nil
}

func (r *mongoDBStore) collection(c string) *mongo.Collection {
	return r.db.Collection(r.name + "_" + c)
}

func (r *mongoDBStore) ensureIndexes() error {
	unique := options.Index().SetUnique(true)
	idx := map[string]mongo.IndexModel{
		datastore.ExchangePositionC: {Keys: bson.D{{Key: "universityid", Value: 1}, {Key: "proofrecordid", Value: 1}}, Options: unique},
		datastore.ProofRequestC:     {Keys: bson.D{{Key: "universityid", Value: 1}, {Key: "nonce", Value: 1}}, Options: unique},
		datastore.WalletC:           {Keys: bson.D{{Key: "ownerid", Value: 1}}, Options: unique},
	}

	for c, model := range idx {
		_, err := r.collection(c).Indexes().CreateOne(context.Background(), model)
		if err != nil {
			return errors.Wrapf(err, "unable to create index on %s", c)
		}
	}

	return nil
}

func (r *mongoDBStore) insert(c string, doc interface{}) error {
	_, err := r.collection(c).InsertOne(context.Background(), doc)
	if err != nil {
		return errors.Wrapf(err, "unable to insert %s", c)
	}

	return nil
}

func (r *mongoDBStore) findOne(c string, filter bson.M, out interface{}) error {
	result := r.collection(c).FindOne(context.Background(), filter)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return datastore.ErrNotFound
		}
		return errors.Wrapf(result.Err(), "error trying to find %s", c)
	}

	err := result.Decode(out)
	if err != nil {
		return errors.Wrapf(err, "unable to decode %s", c)
	}

	return nil
}

func (r *mongoDBStore) replace(c string, filter bson.M, doc interface{}) error {
	result, err := r.collection(c).ReplaceOne(context.Background(), filter, doc)
	if err != nil {
		return errors.Wrapf(err, "unable to update %s", c)
	}

	if result.MatchedCount == 0 {
		return datastore.ErrNotFound
	}

	return nil
}

func (r *mongoDBStore) InsertUniversity(u *datastore.University) (string, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	return u.ID, r.insert(datastore.UniversityC, u)
}

func (r *mongoDBStore) GetUniversity(id string) (*datastore.University, error) {
	u := &datastore.University{}
	err := r.findOne(datastore.UniversityC, bson.M{"id": id}, u)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *mongoDBStore) GetUniversityByName(name string) (*datastore.University, error) {
	u := &datastore.University{}
	err := r.findOne(datastore.UniversityC, bson.M{"name": name}, u)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *mongoDBStore) ListUniversities() ([]*datastore.University, error) {
	ctx := context.Background()
	results, err := r.collection(datastore.UniversityC).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find universities")
	}

	out := []*datastore.University{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode universities")
	}

	return out, nil
}

func (r *mongoDBStore) InsertStudent(s *datastore.Student) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return s.ID, r.insert(datastore.StudentC, s)
}

func (r *mongoDBStore) GetStudent(id string) (*datastore.Student, error) {
	s := &datastore.Student{}
	err := r.findOne(datastore.StudentC, bson.M{"id": id}, s)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *mongoDBStore) GetStudentByUserName(universityID, userName string) (*datastore.Student, error) {
	s := &datastore.Student{}
	err := r.findOne(datastore.StudentC, bson.M{"universityid": universityID, "username": userName}, s)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *mongoDBStore) ListStudents(universityID string) ([]*datastore.Student, error) {
	ctx := context.Background()
	results, err := r.collection(datastore.StudentC).Find(ctx, bson.M{"universityid": universityID})
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find students")
	}

	out := []*datastore.Student{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode students")
	}

	return out, nil
}

func (r *mongoDBStore) UpdateStudent(s *datastore.Student) error {
	return r.replace(datastore.StudentC, bson.M{"id": s.ID}, s)
}

func (r *mongoDBStore) DeleteStudent(id string) error {
	_, err := r.collection(datastore.StudentC).DeleteOne(context.Background(), bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete student")
	}

	return nil
}

func (r *mongoDBStore) InsertClaimSchema(s *datastore.ClaimSchema) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return s.ID, r.insert(datastore.ClaimSchemaC, s)
}

func (r *mongoDBStore) FindClaimSchema(universityID, name, version string) (*datastore.ClaimSchema, error) {
	s := &datastore.ClaimSchema{}
	filter := bson.M{"universityid": universityID, "schemaname": name, "schemaversion": version}
	err := r.findOne(datastore.ClaimSchemaC, filter, s)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *mongoDBStore) InsertProofRecord(p *datastore.ProofRecord) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return p.ID, r.insert(datastore.ProofRecordC, p)
}

func (r *mongoDBStore) GetProofRecord(id string) (*datastore.ProofRecord, error) {
	p := &datastore.ProofRecord{}
	err := r.findOne(datastore.ProofRecordC, bson.M{"id": id}, p)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *mongoDBStore) ListOpenProofRecords(studentID, proofName string) ([]*datastore.ProofRecord, error) {
	ctx := context.Background()
	filter := bson.M{"studentid": studentID, "proofname": proofName, "proofjson": nil}
	results, err := r.collection(datastore.ProofRecordC).Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find proof records")
	}

	out := []*datastore.ProofRecord{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode proof records")
	}

	return out, nil
}

func (r *mongoDBStore) CompleteProofRecord(id, proofJSON string) error {
	filter := bson.M{"id": id, "proofjson": nil}
	update := bson.M{"$set": bson.M{"proofjson": proofJSON}}

	result, err := r.collection(datastore.ProofRecordC).UpdateOne(context.Background(), filter, update)
	if err != nil {
		return errors.Wrap(err, "unable to complete proof record")
	}

	if result.MatchedCount == 1 {
		return nil
	}

	_, err = r.GetProofRecord(id)
	if err != nil {
		return err
	}

	return datastore.ErrProofAlreadyProvided
}

func (r *mongoDBStore) InsertWallet(w *datastore.WalletRecord) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return r.insert(datastore.WalletC, w)
}

func (r *mongoDBStore) GetWallet(ownerID string) (*datastore.WalletRecord, error) {
	w := &datastore.WalletRecord{}
	err := r.findOne(datastore.WalletC, bson.M{"ownerid": ownerID}, w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (r *mongoDBStore) UpdateWallet(w *datastore.WalletRecord) error {
	return r.replace(datastore.WalletC, bson.M{"ownerid": w.OwnerID}, w)
}

func (r *mongoDBStore) InsertExchangePosition(p *datastore.ExchangePosition) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	filter := bson.M{"universityid": p.UniversityID, "proofrecordid": p.ProofRecordID}
	opts := options.Update().SetUpsert(true)
	result, err := r.collection(datastore.ExchangePositionC).UpdateOne(context.Background(), filter, bson.M{"$setOnInsert": p}, opts)
	if err != nil {
		return "", errors.Wrap(err, "unable to insert exchange position")
	}

	if result.UpsertedCount == 1 {
		return p.ID, nil
	}

	existing := &datastore.ExchangePosition{}
	err = r.findOne(datastore.ExchangePositionC, filter, existing)
	if err != nil {
		return "", err
	}

	return existing.ID, nil
}

func (r *mongoDBStore) ListExchangePositions(universityID string) ([]*datastore.ExchangePosition, error) {
	ctx := context.Background()
	results, err := r.collection(datastore.ExchangePositionC).Find(ctx, bson.M{"universityid": universityID})
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find exchange positions")
	}

	out := []*datastore.ExchangePosition{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode exchange positions")
	}

	return out, nil
}

func (r *mongoDBStore) InsertWebhook(w *datastore.Webhook) error {
	return r.insert(datastore.WebhookC, w)
}

func (r *mongoDBStore) ListWebhooks(topic string) ([]*datastore.Webhook, error) {
	ctx := context.Background()
	results, err := r.collection(datastore.WebhookC).Find(ctx, bson.M{"type": topic})
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find webhooks")
	}

	out := []*datastore.Webhook{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode webhooks")
	}

	return out, nil
}

func (r *mongoDBStore) InsertConnectionRecord(c *datastore.ConnectionRecord) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return c.ID, r.insert(datastore.ConnectionC, c)
}

func (r *mongoDBStore) GetConnectionRecord(studentID, universityID string) (*datastore.ConnectionRecord, error) {
	c := &datastore.ConnectionRecord{}
	err := r.findOne(datastore.ConnectionC, bson.M{"studentid": studentID, "universityid": universityID}, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *mongoDBStore) UpdateConnectionRecord(c *datastore.ConnectionRecord) error {
	return r.replace(datastore.ConnectionC, bson.M{"id": c.ID}, c)
}

func (r *mongoDBStore) SaveProofRequestIfNew(p *datastore.ReceivedProofRequest) (bool, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	filter := bson.M{"universityid": p.UniversityID, "nonce": p.Nonce}
	opts := options.Update().SetUpsert(true)
	result, err := r.collection(datastore.ProofRequestC).UpdateOne(context.Background(), filter, bson.M{"$setOnInsert": p}, opts)
	if err != nil {
		return false, errors.Wrap(err, "unable to save proof request")
	}

	return result.UpsertedCount == 1, nil
}

func (r *mongoDBStore) ListProofRequests(studentID string) ([]*datastore.ReceivedProofRequest, error) {
	ctx := context.Background()
	results, err := r.collection(datastore.ProofRequestC).Find(ctx, bson.M{"studentid": studentID})
	if err != nil {
		return nil, errors.Wrap(err, "error trying to find proof requests")
	}

	out := []*datastore.ReceivedProofRequest{}
	err = results.All(ctx, &out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode proof requests")
	}

	return out, nil
}
