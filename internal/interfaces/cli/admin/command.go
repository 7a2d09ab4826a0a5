package admin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/cmdutil"
)

var (
	env      string
	email    string
	password string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account or promote an existing user",
		Long: `Create an ADMIN account with the given email. If a customer account with
that email already exists it is promoted and keeps its password.`,
		RunE: runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password for a new account (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := cmdutil.LoadWithDatabase(env)
	if err != nil {
		return err
	}
	defer e.Close()

	userRepo := repository.NewUserRepository(e.DB, e.Log)

	pw := password
	if pw == "" {
		existing, err := userRepo.GetByEmail(cmd.Context(), strings.ToLower(strings.TrimSpace(email)))
		if err != nil {
			return fmt.Errorf("failed to look up user: %w", err)
		}
		if existing == nil {
			if pw, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
				return err
			}
		}
	}

	uc := usecases.NewEnsureAdminUseCase(
		userRepo,
		auth.NewBcryptPasswordHasher(e.Config.Auth.Password.BcryptCost),
		e.Log,
	)
	result, err := uc.Execute(cmd.Context(), usecases.EnsureAdminCommand{Email: email, Password: pw})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case result.Created:
		fmt.Fprintf(out, "created admin %s (id %d)\n", result.User.Email, result.User.ID)
	case result.Promoted:
		fmt.Fprintf(out, "promoted %s (id %d) to admin\n", result.User.Email, result.User.ID)
	default:
		fmt.Fprintf(out, "%s (id %d) is already an admin\n", result.User.Email, result.User.ID)
	}
	return nil
}

// readPassword prompts without echo when stdin is a terminal and reads one
// line otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
