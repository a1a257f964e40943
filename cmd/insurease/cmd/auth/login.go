package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SilasBach/insurease/cmd/insurease/internal/config"
	"github.com/SilasBach/insurease/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with InsurEase",
	Long: `Authenticates with the InsurEase server using email and password.

The session cookie issued by the server is persisted under ~/.insurease so
subsequent commands run authenticated. The password is prompted for when not
given via --password; in non-interactive mode the flag is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if loginEmail == "" {
			return fmt.Errorf("--email is required")
		}
		password, err := resolvePassword(loginPassword, cfg.NonInteractive)
		if err != nil {
			return err
		}

		session, err := cfg.ClientProvider.NewSession()
		if err != nil {
			return err
		}

		identity, err := session.Login(cmd.Context(), sdk.LoginInput{
			Email:    loginEmail,
			Password: password,
		})
		if err != nil {
			return err
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", loginEmail, identity.Role)
		return nil
	},
}

// resolvePassword returns the --password flag value, or prompts on the
// terminal. Non-interactive runs never prompt.
func resolvePassword(flagValue string, nonInteractive bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if nonInteractive {
		return "", fmt.Errorf("--password is required in non-interactive mode")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}
