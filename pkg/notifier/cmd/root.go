/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/amqp"
	"github.com/scoir/studybits/pkg/amqp/rabbitmq"
	"github.com/scoir/studybits/pkg/config"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/datastore/manager"
	"github.com/scoir/studybits/pkg/util"
)

var (
	cfgFile string
	prov    *Provider
)

var rootCmd = &cobra.Command{
	Use:   "studybits-notifier",
	Short: "The studybits webhook notifier.",
	Long: `"The studybits webhook notifier.".

 Posts university connection and proof events to registered webhooks.`,
}

type Provider struct {
	conf  config.Config
	store datastore.Store
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/studybits/studybits-webhook-notifier.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	vp := (&config.ViperConfigProvider{DefaultConfigName: "studybits-webhook-notifier"}).Load(cfgFile)
	conf := vp.WithDatastore().WithAMQP()

	err := util.SetupLogging(conf.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}

	dc, err := conf.DataStore()
	if err != nil {
		log.Fatalln("invalid datastore key in configuration", err)
	}

	sp, err := manager.NewDataProviderManager(dc).DefaultStoreProvider()
	if err != nil {
		log.Fatalln(err)
	}

	store, err := sp.OpenStore("university")
	if err != nil {
		log.Fatalln("unable to open datastore", err)
	}

	prov = &Provider{
		conf:  conf,
		store: store,
	}
}

func (r *Provider) GetDatastore() datastore.Store {
	return r.store
}

func (r *Provider) GetAMQPListener(queue string) amqp.Listener {
	ac, err := r.conf.AMQPConfig()
	if err != nil {
		log.WithError(err).Error("invalid amqp configuration")
		return nil
	}

	l, err := rabbitmq.NewListener(ac.Endpoint(), queue)
	if err != nil {
		log.WithError(err).Error("unable to connect to amqp")
		return nil
	}

	return l
}
