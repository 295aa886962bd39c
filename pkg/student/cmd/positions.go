package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Exchange positions offered by connected universities",
}

var positionsSyncCmd = &cobra.Command{
	Use:   "sync <user name>",
	Short: "Fetches exchange positions from every connected university",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		n, err := ctx.holder.SyncExchangePositions(c, args[0])
		if err != nil {
			log.Fatalln("unable to sync exchange positions", err)
		}

		fmt.Printf("%d new exchange positions\n", n)
	},
}

var positionsListCmd = &cobra.Command{
	Use:   "list <user name>",
	Short: "Lists the stored exchange positions",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		positions, err := ctx.holder.ExchangePositions(args[0])
		if err != nil {
			log.Fatalln("unable to list exchange positions", err)
		}

		for _, p := range positions {
			fmt.Printf("%s\t%s\t%s\t%s\n", p.UniversityID, p.ProofRecordID, p.Degree, p.Status)
		}
	},
}

func init() {
	positionsCmd.AddCommand(positionsSyncCmd, positionsListCmd)
	rootCmd.AddCommand(positionsCmd)
}
