/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // The postgres driver
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
)

const (
	tablePrefix = "t_"
)

var collections = []string{
	datastore.UniversityC,
	datastore.StudentC,
	datastore.ClaimSchemaC,
	datastore.ProofRecordC,
	datastore.WalletC,
	datastore.ExchangePositionC,
	datastore.WebhookC,
	datastore.ConnectionC,
	datastore.ProofRequestC,
}

var uniqueIndexes = map[string]string{
	datastore.ExchangePositionC: "((data->>'UniversityID'), (data->>'ProofRecordID'))",
	datastore.ProofRequestC:     "((data->>'UniversityID'), (data->>'Nonce'))",
	datastore.WalletC:           "((data->>'OwnerID'))",
}

// Provider represents a Postgres DB implementation of the storage.Provider interface
type Provider struct {
	config  *Config
	adminDB *sql.DB
	dbs     map[string]*sqlDBStore
	sync.RWMutex
}

type sqlDBStore struct {
	db *sql.DB
}

// NewProvider instantiates Provider
func NewProvider(config *Config) (*Provider, error) {
	if config == nil {
		return nil, errors.New("info for new postgres DB provider can't be empty")
	}

	admindb, err := sql.Open("postgres", config.AdminString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open admin connection")
	}

	err = admindb.Ping()
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach postgres")
	}

	p := &Provider{
		config:  config,
		adminDB: admindb,
		dbs:     map[string]*sqlDBStore{},
	}

	return p, nil
}

// OpenStore opens and returns new db for given name space.
func (p *Provider) OpenStore(name string) (datastore.Store, error) {
	p.Lock()
	defer p.Unlock()

	if name == "" {
		return nil, errors.New("store name is required")
	}

	if store, ok := p.dbs[name]; ok {
		return store, nil
	}

	dbname := strings.ToLower(strings.ReplaceAll(name, "-", "_"))

	var exists bool
	row := p.adminDB.QueryRow(`SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1);`, dbname)
	err := row.Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check for database")
	}

	if !exists {
		_, err = p.adminDB.Exec(fmt.Sprintf("CREATE DATABASE %s;", dbname))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create database %s", dbname)
		}
	}

	newDBConn, err := sql.Open("postgres", p.config.String(dbname))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create new connection to %s", dbname)
	}

	for _, c := range collections {
		createTableStmt := `CREATE TABLE IF NOT EXISTS ` + tableName(c) +
			` (key SERIAL NOT NULL, data JSONB, PRIMARY KEY (key));`

		_, err = newDBConn.Exec(createTableStmt)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create table %s", c)
		}
	}

	for c, expr := range uniqueIndexes {
		stmt := fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s_unique ON %s %s;`, tableName(c), tableName(c), expr)
		_, err = newDBConn.Exec(stmt)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create index on %s", c)
		}
	}

	store := &sqlDBStore{
		db: newDBConn,
	}

	p.dbs[name] = store

	return store, nil
}

// Close closes the provider.
func (p *Provider) Close() error {
	p.Lock()
	defer p.Unlock()

	for _, store := range p.dbs {
		err := store.db.Close()
		if err != nil {
			return errors.Wrap(err, "failed to close provider")
		}
	}

	p.dbs = make(map[string]*sqlDBStore)

	return p.adminDB.Close()
}

// CloseStore closes a previously opened store
func (p *Provider) CloseStore(name string) error {
	p.Lock()
	defer p.Unlock()

	store, exists := p.dbs[name]
	if !exists {
		return nil
	}

	delete(p.dbs, name)

	return store.db.Close()
}

func tableName(c string) string {
	return tablePrefix + strings.ToLower(c)
}

func (p *sqlDBStore) insert(c string, doc interface{}) error {
	_, err := p.db.Exec("INSERT INTO "+tableName(c)+" (data) VALUES ($1)", doc)
	if err != nil {
		return errors.Wrapf(err, "unable to insert %s", c)
	}

	return nil
}

func (p *sqlDBStore) queryOne(c string, out sql.Scanner, where string, args ...interface{}) error {
	row := p.db.QueryRow("SELECT data FROM "+tableName(c)+" WHERE "+where+" LIMIT 1", args...)

	err := row.Scan(out)
	if err == sql.ErrNoRows {
		return datastore.ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "unable to load %s", c)
	}

	return nil
}

// query scans every row into a value produced by next
func (p *sqlDBStore) query(c string, next func() sql.Scanner, where string, args ...interface{}) error {
	rows, err := p.db.Query("SELECT data FROM "+tableName(c)+" WHERE "+where+" ORDER BY key", args...)
	if err != nil {
		return errors.Wrapf(err, "unable to query %s", c)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		err = rows.Scan(next())
		if err != nil {
			return errors.Wrapf(err, "scanning %s rows", c)
		}
	}

	return rows.Err()
}

func (p *sqlDBStore) update(c string, doc interface{}, where string, args ...interface{}) error {
	args = append([]interface{}{doc}, args...)
	result, err := p.db.Exec("UPDATE "+tableName(c)+" SET data = $1 WHERE "+where, args...)
	if err != nil {
		return errors.Wrapf(err, "unable to update %s", c)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "unable to update %s", c)
	}

	if n == 0 {
		return datastore.ErrNotFound
	}

	return nil
}

func (p *sqlDBStore) InsertUniversity(u *datastore.University) (string, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	return u.ID, p.insert(datastore.UniversityC, u)
}

func (p *sqlDBStore) GetUniversity(id string) (*datastore.University, error) {
	u := &datastore.University{}
	err := p.queryOne(datastore.UniversityC, u, "data->>'ID' = $1", id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (p *sqlDBStore) GetUniversityByName(name string) (*datastore.University, error) {
	u := &datastore.University{}
	err := p.queryOne(datastore.UniversityC, u, "data->>'Name' = $1", name)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (p *sqlDBStore) ListUniversities() ([]*datastore.University, error) {
	out := []*datastore.University{}
	err := p.query(datastore.UniversityC, func() sql.Scanner {
		u := &datastore.University{}
		out = append(out, u)
		return u
	}, "TRUE")

	return out, err
}

func (p *sqlDBStore) InsertStudent(s *datastore.Student) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return s.ID, p.insert(datastore.StudentC, s)
}

func (p *sqlDBStore) GetStudent(id string) (*datastore.Student, error) {
	s := &datastore.Student{}
	err := p.queryOne(datastore.StudentC, s, "data->>'ID' = $1", id)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (p *sqlDBStore) GetStudentByUserName(universityID, userName string) (*datastore.Student, error) {
	s := &datastore.Student{}
	err := p.queryOne(datastore.StudentC, s, "data->>'UniversityID' = $1 AND data->>'UserName' = $2", universityID, userName)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (p *sqlDBStore) ListStudents(universityID string) ([]*datastore.Student, error) {
	out := []*datastore.Student{}
	err := p.query(datastore.StudentC, func() sql.Scanner {
		s := &datastore.Student{}
		out = append(out, s)
		return s
	}, "data->>'UniversityID' = $1", universityID)

	return out, err
}

func (p *sqlDBStore) UpdateStudent(s *datastore.Student) error {
	return p.update(datastore.StudentC, s, "data->>'ID' = $2", s.ID)
}

func (p *sqlDBStore) DeleteStudent(id string) error {
	_, err := p.db.Exec("DELETE FROM "+tableName(datastore.StudentC)+" WHERE data->>'ID' = $1", id)
	if err != nil {
		return errors.Wrap(err, "unable to delete student")
	}

	return nil
}

func (p *sqlDBStore) InsertClaimSchema(s *datastore.ClaimSchema) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return s.ID, p.insert(datastore.ClaimSchemaC, s)
}

func (p *sqlDBStore) FindClaimSchema(universityID, name, version string) (*datastore.ClaimSchema, error) {
	s := &datastore.ClaimSchema{}
	err := p.queryOne(datastore.ClaimSchemaC, s,
		"data->>'UniversityID' = $1 AND data->>'SchemaName' = $2 AND data->>'SchemaVersion' = $3",
		universityID, name, version)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (p *sqlDBStore) InsertProofRecord(r *datastore.ProofRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return r.ID, p.insert(datastore.ProofRecordC, r)
}

func (p *sqlDBStore) GetProofRecord(id string) (*datastore.ProofRecord, error) {
	r := &datastore.ProofRecord{}
	err := p.queryOne(datastore.ProofRecordC, r, "data->>'ID' = $1", id)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (p *sqlDBStore) ListOpenProofRecords(studentID, proofName string) ([]*datastore.ProofRecord, error) {
	out := []*datastore.ProofRecord{}
	err := p.query(datastore.ProofRecordC, func() sql.Scanner {
		r := &datastore.ProofRecord{}
		out = append(out, r)
		return r
	}, "data->>'StudentID' = $1 AND data->>'ProofName' = $2 AND data->>'ProofJSON' IS NULL", studentID, proofName)

	return out, err
}

func (p *sqlDBStore) CompleteProofRecord(id, proofJSON string) error {
	stmt := `UPDATE ` + tableName(datastore.ProofRecordC) +
		` SET data = jsonb_set(data, '{ProofJSON}', to_jsonb($2::text), true)` +
		` WHERE data->>'ID' = $1 AND data->>'ProofJSON' IS NULL`

	result, err := p.db.Exec(stmt, id, proofJSON)
	if err != nil {
		return errors.Wrap(err, "unable to complete proof record")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "unable to complete proof record")
	}

	if n == 1 {
		return nil
	}

	_, err = p.GetProofRecord(id)
	if err != nil {
		return err
	}

	return datastore.ErrProofAlreadyProvided
}

func (p *sqlDBStore) InsertWallet(w *datastore.WalletRecord) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return p.insert(datastore.WalletC, w)
}

func (p *sqlDBStore) GetWallet(ownerID string) (*datastore.WalletRecord, error) {
	w := &datastore.WalletRecord{}
	err := p.queryOne(datastore.WalletC, w, "data->>'OwnerID' = $1", ownerID)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (p *sqlDBStore) UpdateWallet(w *datastore.WalletRecord) error {
	return p.update(datastore.WalletC, w, "data->>'OwnerID' = $2", w.OwnerID)
}

func (p *sqlDBStore) InsertExchangePosition(e *datastore.ExchangePosition) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	_, err := p.db.Exec("INSERT INTO "+tableName(datastore.ExchangePositionC)+" (data) VALUES ($1) ON CONFLICT DO NOTHING", e)
	if err != nil {
		return "", errors.Wrap(err, "unable to insert exchange position")
	}

	existing := &datastore.ExchangePosition{}
	err = p.queryOne(datastore.ExchangePositionC, existing, "data->>'UniversityID' = $1 AND data->>'ProofRecordID' = $2",
		e.UniversityID, e.ProofRecordID)
	if err != nil {
		return "", err
	}

	return existing.ID, nil
}

func (p *sqlDBStore) ListExchangePositions(universityID string) ([]*datastore.ExchangePosition, error) {
	out := []*datastore.ExchangePosition{}
	err := p.query(datastore.ExchangePositionC, func() sql.Scanner {
		e := &datastore.ExchangePosition{}
		out = append(out, e)
		return e
	}, "data->>'UniversityID' = $1", universityID)

	return out, err
}

func (p *sqlDBStore) InsertWebhook(w *datastore.Webhook) error {
	return p.insert(datastore.WebhookC, w)
}

func (p *sqlDBStore) ListWebhooks(topic string) ([]*datastore.Webhook, error) {
	out := []*datastore.Webhook{}
	err := p.query(datastore.WebhookC, func() sql.Scanner {
		w := &datastore.Webhook{}
		out = append(out, w)
		return w
	}, "data->>'Type' = $1", topic)

	return out, err
}

func (p *sqlDBStore) InsertConnectionRecord(c *datastore.ConnectionRecord) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return c.ID, p.insert(datastore.ConnectionC, c)
}

func (p *sqlDBStore) GetConnectionRecord(studentID, universityID string) (*datastore.ConnectionRecord, error) {
	c := &datastore.ConnectionRecord{}
	err := p.queryOne(datastore.ConnectionC, c, "data->>'StudentID' = $1 AND data->>'UniversityID' = $2", studentID, universityID)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (p *sqlDBStore) UpdateConnectionRecord(c *datastore.ConnectionRecord) error {
	return p.update(datastore.ConnectionC, c, "data->>'ID' = $2", c.ID)
}

func (p *sqlDBStore) SaveProofRequestIfNew(r *datastore.ReceivedProofRequest) (bool, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	result, err := p.db.Exec("INSERT INTO "+tableName(datastore.ProofRequestC)+" (data) VALUES ($1) ON CONFLICT DO NOTHING", r)
	if err != nil {
		return false, errors.Wrap(err, "unable to save proof request")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "unable to save proof request")
	}

	return n == 1, nil
}

func (p *sqlDBStore) ListProofRequests(studentID string) ([]*datastore.ReceivedProofRequest, error) {
	out := []*datastore.ReceivedProofRequest{}
	err := p.query(datastore.ProofRequestC, func() sql.Scanner {
		r := &datastore.ReceivedProofRequest{}
		out = append(out, r)
		return r
	}, "data->>'StudentID' = $1", studentID)

	return out, err
}
