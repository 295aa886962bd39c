/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"github.com/scoir/studybits/pkg/datastore/couchdb"
	"github.com/scoir/studybits/pkg/datastore/mongodb"
	"github.com/scoir/studybits/pkg/datastore/postgres"
)

type DatastoreConfig struct {
	Database string               `mapstructure:"database"`
	Mongo    *mongodb.Config      `mapstructure:"mongo"`
	Postgres *postgres.Config     `mapstructure:"postgres"`
	CouchDB  *couchdbstore.Config `mapstructure:"couchdb"`
}

// Name identifies the backing server so providers can be shared
func (r *DatastoreConfig) Name() string {
	switch r.Database {
	case "mongo":
		if r.Mongo != nil {
			return r.Mongo.URL + "/" + r.Mongo.Database
		}
	case "postgres":
		if r.Postgres != nil {
			return r.Postgres.AdminString()
		}
	case "couchdb":
		if r.CouchDB != nil {
			return r.CouchDB.URL
		}
	}

	return ""
}
