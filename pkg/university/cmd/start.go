/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/apiserver"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the university agent",
	Long:  `Starts the university HTTP API for onboarding and proof exchange`,
	Run:   runStart,
}

func runStart(_ *cobra.Command, _ []string) {
	ep, err := ctx.conf.Endpoint("api.http")
	if err != nil {
		log.Fatalln("unable to load api endpoint", err)
	}

	srv := apiserver.New(ctx, ep.Token)
	err = srv.ListenAndServe(ep)
	if err != nil {
		log.Println("university agent exited with error", err)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
}
