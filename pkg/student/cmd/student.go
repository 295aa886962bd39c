package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/studybits/pkg/datastore"
)

var (
	firstName string
	lastName  string
	ssn       string
)

var createCmd = &cobra.Command{
	Use:   "create <user name>",
	Short: "Creates the student profile",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		s, err := ctx.holder.CreateStudent(&datastore.Student{
			UserName:  args[0],
			FirstName: firstName,
			LastName:  lastName,
			SSN:       ssn,
		})
		if err != nil {
			log.Fatalln("unable to create student", err)
		}

		fmt.Println(s.ID)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <user name> <university>",
	Short: "Enrolls the student with a university",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := ctx.holder.Register(c, args[0], args[1])
		if err != nil {
			log.Fatalln("registration failed", err)
		}
	},
}

var onboardCmd = &cobra.Command{
	Use:   "onboard <user name> <university>",
	Short: "Establishes a connection with a university",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := ctx.holder.Onboard(c, args[0], args[1])
		if err != nil {
			log.Fatalln("onboarding failed", err)
		}

		fmt.Println(record.MyDID)
	},
}

var enrollCmd = &cobra.Command{
	Use:   "enroll <user name> <university>",
	Short: "Creates the student profile from a university record and onboards",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s, err := ctx.holder.Enroll(c, args[0], args[1])
		if err != nil {
			log.Fatalln("enrollment failed", err)
		}

		fmt.Println(s.UserName, s.FirstName, s.LastName)
	},
}

func init() {
	createCmd.Flags().StringVar(&firstName, "first-name", "", "student first name")
	createCmd.Flags().StringVar(&lastName, "last-name", "", "student last name")
	createCmd.Flags().StringVar(&ssn, "ssn", "", "student social security number")

	rootCmd.AddCommand(createCmd, enrollCmd, registerCmd, onboardCmd)
}
