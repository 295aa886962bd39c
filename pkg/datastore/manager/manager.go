package manager

import (
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	couchdbstore "github.com/scoir/studybits/pkg/datastore/couchdb"
	"github.com/scoir/studybits/pkg/datastore/mongodb"
	"github.com/scoir/studybits/pkg/datastore/postgres"
	"github.com/scoir/studybits/pkg/framework"
	"github.com/scoir/studybits/pkg/util"
)

type providerFactory func(dc *framework.DatastoreConfig) (datastore.Provider, error)

type DataProviderManager struct {
	lock       sync.Mutex
	dc         *framework.DatastoreConfig
	ds         map[string]datastore.Provider
	maxElapsed time.Duration
	factories  map[string]providerFactory
}

func NewDataProviderManager(dc *framework.DatastoreConfig) *DataProviderManager {
	return &DataProviderManager{
		dc:         dc,
		ds:         map[string]datastore.Provider{},
		maxElapsed: time.Minute,
		factories: map[string]providerFactory{
			"mongo": func(dc *framework.DatastoreConfig) (datastore.Provider, error) {
				return mongodb.NewProvider(dc.Mongo)
			},
			"postgres": func(dc *framework.DatastoreConfig) (datastore.Provider, error) {
				return postgres.NewProvider(dc.Postgres)
			},
			"couchdb": func(dc *framework.DatastoreConfig) (datastore.Provider, error) {
				if dc.CouchDB == nil {
					return nil, errors.New("couchdb configuration missing")
				}
				return couchdbstore.NewProvider(dc.CouchDB.URL)
			},
		},
	}
}

func (r *DataProviderManager) Config() *framework.DatastoreConfig {
	return r.dc
}

func (r *DataProviderManager) DefaultStoreProvider() (datastore.Provider, error) {
	return r.StorageProvider(r.dc)
}

// StorageProvider connects to the configured database, retrying while the server comes up.
func (r *DataProviderManager) StorageProvider(dc *framework.DatastoreConfig) (datastore.Provider, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	key := fmt.Sprintf("%s:%s", dc.Database, dc.Name())
	ds, ok := r.ds[key]
	if ok {
		return ds, nil
	}

	factory, ok := r.factories[dc.Database]
	if !ok {
		return nil, errors.New("no datastore configuration was provided")
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = r.maxElapsed

	err := backoff.RetryNotify(func() error {
		var err error
		ds, err = factory(dc)
		return err
	}, b, util.Logger)

	if err != nil {
		return nil, errors.Wrap(err, "unable to create datastore based on config")
	}

	r.ds[key] = ds

	return ds, nil
}
