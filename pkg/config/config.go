package config

import "github.com/scoir/studybits/pkg/framework"

// Provider rename to ConfigBuilder
type Provider interface {
	Load(file string) Config
}

// Config
type Config interface {
	WithAMQP(opts ...Option) Config
	AMQPConfig() (*framework.AMQPConfig, error)

	WithMasterLockKey(opts ...Option) Config
	MasterLockKey() string

	WithDatastore(opts ...Option) Config
	DataStore() (*framework.DatastoreConfig, error)

	WithIndyRegistry(opts ...Option) Config
	IndyRegistry() string

	Endpoint(s string) (*framework.Endpoint, error)
	LogLevel() string

	University() (*framework.UniversityConfig, error)
	Universities() ([]*framework.RemoteUniversity, error)
}
