package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/interfaces/cli/cmdutil"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users and tickets from a YAML file",
		Long:  `Create the users and tickets described in a fixtures file. Existing users are skipped; tickets are always added.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/fixtures.yaml", "Fixtures file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fixtures, err := Load(f)
	if err != nil {
		return err
	}

	e, err := cmdutil.LoadWithDatabase(env)
	if err != nil {
		return err
	}
	defer e.Close()

	seeder := NewSeeder(e.DB, e.Config.Auth.Password.BcryptCost, e.Log)
	sum, err := seeder.Apply(cmd.Context(), fixtures)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "users: %d created, %d skipped; tickets: %d; replies: %d\n",
		sum.UsersCreated, sum.UsersSkipped, sum.Tickets, sum.Replies)
	return nil
}
