package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/schema"
)

var syncCmd = &cobra.Command{
	Use:   "sync <user name> <university> <proof name> <proof version>",
	Short: "Fetches open proof requests from a university",
	Args:  cobra.ExactArgs(4),
	Run: func(_ *cobra.Command, args []string) {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		n, err := ctx.holder.SyncProofRequests(c, args[0], args[1], schema.NewVersion(args[2], args[3]))
		if err != nil {
			log.Fatalln("unable to sync proof requests", err)
		}

		fmt.Printf("%d new proof requests\n", n)
	},
}

var listCmd = &cobra.Command{
	Use:   "requests <user name>",
	Short: "Lists the proof requests received",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		requests, err := ctx.holder.ProofRequests(args[0])
		if err != nil {
			log.Fatalln("unable to list proof requests", err)
		}

		for _, pr := range requests {
			fmt.Printf("%s\t%s:%s\t%s\n", pr.ID, pr.Name, pr.Version, string(pr.Request))
		}
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit <user name> <request id> <proof file>",
	Short: "Presents a proof answering a received request",
	Args:  cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		d, err := ioutil.ReadFile(args[2])
		if err != nil {
			log.Fatalln("unable to read proof", err)
		}

		proof := &schema.IndyProof{}
		err = json.Unmarshal(d, proof)
		if err != nil {
			log.Fatalln("invalid proof", err)
		}

		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		accepted, err := ctx.holder.SubmitProof(c, args[0], args[1], proof)
		if err != nil {
			log.Fatalln("unable to submit proof", err)
		}

		fmt.Println("accepted:", accepted)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd, listCmd, submitCmd)
}
