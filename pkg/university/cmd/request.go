package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/schema"
)

var requestCmd = &cobra.Command{
	Use:   "request-proof <proof name> <proof version> <student>",
	Short: "Asks a student for a proof",
	Args:  cobra.ExactArgs(3),
	Run:   runRequest,
}

func runRequest(_ *cobra.Command, args []string) {
	svc, ok := ctx.services[schema.NewVersion(args[0], args[1])]
	if !ok {
		log.Fatalf("proof type %s:%s is not registered", args[0], args[1])
	}

	student, err := ctx.store.GetStudentByUserName(ctx.university.ID, args[2])
	if err != nil {
		log.Fatalln("unable to find student", err)
	}

	record, err := svc.AddProofRequest(student.ID)
	if err != nil {
		log.Fatalln("unable to request proof", err)
	}

	fmt.Println(record.ID)
}

func init() {
	rootCmd.AddCommand(requestCmd)
}
