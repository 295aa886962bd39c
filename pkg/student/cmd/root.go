/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/client/university"
	"github.com/scoir/studybits/pkg/config"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/datastore/manager"
	"github.com/scoir/studybits/pkg/didexchange"
	"github.com/scoir/studybits/pkg/holder"
	"github.com/scoir/studybits/pkg/util"
	"github.com/scoir/studybits/pkg/wallet"
)

var (
	cfgFile string
	timeout time.Duration
	ctx     *Provider
)

var rootCmd = &cobra.Command{
	Use:   "studybits-student",
	Short: "The studybits student agent.",
	Long: `"The studybits student agent.".

 Registers and onboards with universities and answers their proof requests.`,
}

// Provider holds the collaborators of the student agent.
type Provider struct {
	store  datastore.Store
	wallet *wallet.Manager
	holder *holder.Holder
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/studybits/studybits-student-config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "how long to wait for a university to answer")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	vp := (&config.ViperConfigProvider{DefaultConfigName: "studybits-student-config"}).Load(cfgFile)
	conf := vp.WithDatastore().WithMasterLockKey()

	err := util.SetupLogging(conf.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}

	ctx, err = NewProvider(conf)
	if err != nil {
		log.Fatalln("unable to initialize student agent", err)
	}
}

func NewProvider(conf config.Config) (*Provider, error) {
	r := &Provider{}

	dc, err := conf.DataStore()
	if err != nil {
		return nil, errors.Wrap(err, "invalid datastore configuration")
	}

	sp, err := manager.NewDataProviderManager(dc).DefaultStoreProvider()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to datastore")
	}

	r.store, err = sp.OpenStore("student")
	if err != nil {
		return nil, errors.Wrap(err, "unable to open datastore")
	}

	r.wallet, err = wallet.NewManager(r.store, conf.MasterLockKey())
	if err != nil {
		return nil, errors.Wrap(err, "unable to open wallets")
	}

	r.holder = holder.New(r)

	universities, err := conf.Universities()
	if err != nil {
		return nil, err
	}

	err = r.holder.LoadUniversities(universities)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Provider) GetDatastore() datastore.Store {
	return r.store
}

func (r *Provider) GetStudentWallet() didexchange.StudentWallet {
	return r.wallet
}

func (r *Provider) GetHolderWallet() holder.Wallet {
	return r.wallet
}

func (r *Provider) GetUniversityClient(u *datastore.University) didexchange.UniversityClient {
	return university.New(u.Endpoint)
}

func (r *Provider) GetHolderClient(u *datastore.University) holder.UniversityClient {
	return university.New(u.Endpoint)
}

func (r *Provider) GetOnboarder() holder.Onboarder {
	return didexchange.NewOnboarder(r)
}
