package config

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scoir/studybits/pkg/framework"
)

const (
	defaultAMQP          = "studybits-amqp-config"
	defaultDataStore     = "studybits-data-store-config"
	defaultMasterLockKey = "studybits-master-lock-key"
	defaultIndyRegistry  = "studybits-indy-registry"
)

// Option configures the config...
type Option func(opts *vpr)

// WithDBPrefix option is for adding prefix to db name.
func WithFile(file string) Option {
	return func(opts *vpr) {
		opts.file = file
	}
}

type ViperConfigProvider struct {
	DefaultConfigName string
}

type vpr struct {
	*viper.Viper
	file string
}

func (r *ViperConfigProvider) Load(file string) Config {
	config := &vpr{
		viper.New(),
		"", // really don't like this
	}

	if file != "" {
		config.SetConfigFile(file)
	} else {
		config.SetConfigType("yaml")
		config.AddConfigPath("/etc/studybits/")
		config.AddConfigPath("./deploy/compose/")
		config.SetConfigName(r.DefaultConfigName)
	}

	config.SetEnvPrefix("STUDYBITS")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	err := config.BindPFlags(pflag.CommandLine)
	if err != nil {
		log.Fatalln("failed to bind flags", err)
	}

	err = config.ReadInConfig()
	if err != nil {
		log.Fatalln("failed to read config after merge", config.ConfigFileUsed(), err)
	}

	return config
}

func (r *vpr) WithDatastore(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultDataStore)
}

func (r *vpr) WithMasterLockKey(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultMasterLockKey)
}

func (r *vpr) WithAMQP(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultAMQP)
}

func (r *vpr) with(file, defawlt string) Config {
	if file != "" {
		return r.withFile(r.SetConfigFile, file)
	}

	return r.withFile(r.SetConfigName, defawlt)
}

func (r *vpr) withFile(setter func(name string), file string) Config {
	setter(file)

	err := r.MergeInConfig()
	if err != nil {
		log.Fatalln("failed to merge", r.ConfigFileUsed(), err)
	}

	return r
}

func (r *vpr) MasterLockKey() string {
	mlk := r.GetString("wallet.masterLockKey")

	if mlk == "" {
		mlk = "OTsonzgWMNAqR24bgGcZVHVBB_oqLoXntW4s_vCs6uQ="
	}

	return mlk
}

func (r *vpr) AMQPConfig() (*framework.AMQPConfig, error) {
	config := &framework.AMQPConfig{}

	err := r.UnmarshalKey("amqp", config)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amqp configuration")
	}

	if config.Host == "" {
		return nil, errors.New("amqp.host is required")
	}

	return config, nil
}

func (r *vpr) DataStore() (*framework.DatastoreConfig, error) {
	dc := &framework.DatastoreConfig{}

	err := r.UnmarshalKey("datastore", dc)
	if err != nil {
		return nil, err
	}

	return dc, nil
}

func (r *vpr) Endpoint(key string) (*framework.Endpoint, error) {
	ep := &framework.Endpoint{}

	err := r.UnmarshalKey(key, ep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load key "+key)
	}

	return ep, nil
}

func (r *vpr) WithIndyRegistry(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultIndyRegistry)
}

func (r *vpr) IndyRegistry() string {
	return r.GetString("registry.indy.genesisFile")
}

func (r *vpr) LogLevel() string {
	lvl := r.GetString("log.level")
	if lvl == "" {
		lvl = "info"
	}

	return lvl
}

func (r *vpr) University() (*framework.UniversityConfig, error) {
	uc := &framework.UniversityConfig{}

	err := r.UnmarshalKey("university", uc)
	if err != nil {
		return nil, errors.Wrap(err, "invalid university configuration")
	}

	if uc.Name == "" {
		return nil, errors.New("university.name is required")
	}

	return uc, nil
}

func (r *vpr) Universities() ([]*framework.RemoteUniversity, error) {
	var out []*framework.RemoteUniversity

	err := r.UnmarshalKey("student.universities", &out)
	if err != nil {
		return nil, errors.Wrap(err, "invalid student.universities configuration")
	}

	return out, nil
}
