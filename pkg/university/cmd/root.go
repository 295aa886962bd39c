/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hyperledger/indy-vdr/wrappers/golang/vdr"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/amqp"
	"github.com/scoir/studybits/pkg/amqp/rabbitmq"
	"github.com/scoir/studybits/pkg/apiserver"
	"github.com/scoir/studybits/pkg/config"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/datastore/manager"
	"github.com/scoir/studybits/pkg/didexchange"
	"github.com/scoir/studybits/pkg/notifier"
	"github.com/scoir/studybits/pkg/presentproof"
	"github.com/scoir/studybits/pkg/presentproof/engine/indy"
	"github.com/scoir/studybits/pkg/prooftype"
	"github.com/scoir/studybits/pkg/schema"
	"github.com/scoir/studybits/pkg/ursa"
	"github.com/scoir/studybits/pkg/util"
	"github.com/scoir/studybits/pkg/wallet"
)

var (
	cfgFile string
	ctx     *Provider
)

var rootCmd = &cobra.Command{
	Use:   "studybits-university",
	Short: "The studybits university agent.",
	Long: `"The studybits university agent.".

 Onboards students and verifies the proofs they present.`,
}

// Provider holds the long lived collaborators of the university agent.
type Provider struct {
	conf       config.Config
	store      datastore.Store
	university *datastore.University
	wallet     *wallet.Manager
	publisher  amqp.Publisher
	verifier   presentproof.Verifier
	nonces     presentproof.NonceOracle
	registry   *presentproof.Registry
	services   map[schema.Version]*presentproof.Service
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/studybits/studybits-university-config.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	vp := (&config.ViperConfigProvider{DefaultConfigName: "studybits-university-config"}).Load(cfgFile)
	conf := vp.WithDatastore().WithMasterLockKey().WithAMQP().WithIndyRegistry()

	err := util.SetupLogging(conf.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}

	ctx, err = NewProvider(conf)
	if err != nil {
		log.Fatalln("unable to initialize university agent", err)
	}
}

func NewProvider(conf config.Config) (*Provider, error) {
	r := &Provider{
		conf:     conf,
		nonces:   presentproof.NewNumericOracle(),
		services: map[schema.Version]*presentproof.Service{},
	}

	dc, err := conf.DataStore()
	if err != nil {
		return nil, errors.Wrap(err, "invalid datastore configuration")
	}

	sp, err := manager.NewDataProviderManager(dc).DefaultStoreProvider()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to datastore")
	}

	r.store, err = sp.OpenStore("university")
	if err != nil {
		return nil, errors.Wrap(err, "unable to open datastore")
	}

	r.university, err = r.loadUniversity()
	if err != nil {
		return nil, err
	}

	r.wallet, err = wallet.NewManager(r.store, conf.MasterLockKey())
	if err != nil {
		return nil, errors.Wrap(err, "unable to open wallets")
	}

	ac, err := conf.AMQPConfig()
	if err != nil {
		return nil, err
	}

	r.publisher, err = rabbitmq.NewPublisher(ac.Endpoint(), notifier.QueueName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to amqp")
	}

	client, err := ledgerClient(conf.IndyRegistry(), vdr.New)
	if err != nil {
		return nil, err
	}
	r.verifier = indy.New(ursa.NewVerifier(client))

	r.registry, err = presentproof.NewRegistry()
	if err != nil {
		return nil, err
	}

	err = prooftype.Register(r.registry, r.store)
	if err != nil {
		return nil, errors.Wrap(err, "unable to register proof types")
	}

	for _, pt := range r.registry.Types() {
		r.services[pt.Version()] = presentproof.NewService(r, pt)
	}

	return r, nil
}

// ledgerClient connects to the ledger described by the genesis file at path. The file is closed on return.
func ledgerClient(path string, connect func(io.ReadCloser) (*vdr.Client, error)) (*vdr.Client, error) {
	genesis, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read indy genesis file")
	}
	defer genesis.Close()

	client, err := connect(genesis)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to indy ledger")
	}

	return client, nil
}

func (r *Provider) loadUniversity() (*datastore.University, error) {
	uc, err := r.conf.University()
	if err != nil {
		return nil, err
	}

	u, err := r.store.GetUniversityByName(uc.Name)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrap(err, "unable to load university")
	}

	u = &datastore.University{Name: uc.Name, Endpoint: uc.Endpoint}
	_, err = r.store.InsertUniversity(u)
	if err != nil {
		return nil, errors.Wrap(err, "unable to save university")
	}

	log.WithField("university", u.Name).Info("university created")
	return u, nil
}

func (r *Provider) GetDatastore() datastore.Store {
	return r.store
}

func (r *Provider) GetUniversity() *datastore.University {
	return r.university
}

func (r *Provider) GetWallet() presentproof.Wallet {
	return r.wallet
}

func (r *Provider) GetUniversityWallet() didexchange.UniversityWallet {
	return r.wallet
}

func (r *Provider) GetVerifier() presentproof.Verifier {
	return r.verifier
}

func (r *Provider) GetPublisher() amqp.Publisher {
	return r.publisher
}

func (r *Provider) GetNonceOracle() presentproof.NonceOracle {
	return r.nonces
}

func (r *Provider) GetOnboarding() apiserver.Onboarding {
	return didexchange.NewBouncer(r)
}

func (r *Provider) GetProofService(v schema.Version) (apiserver.ProofService, error) {
	svc, ok := r.services[v]
	if !ok {
		return nil, errors.Errorf("proof type %s is not registered", v)
	}

	return svc, nil
}
