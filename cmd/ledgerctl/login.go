package main

import (
	"errors"
	"fmt"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func loginCmd() *cobra.Command {
	var (
		email    string
		password string
		code     string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the accounting backend",
		Long: `Authenticate with email and password and print the backend access token.

Accounts with two-factor authentication need --code. With --save, or when a
config file was loaded, the token is written to that config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = viper.GetString("password")
			}
			if email == "" || password == "" {
				return errors.New("--email and --password (or LEDGER_PASSWORD) are required")
			}

			manager := newManager()
			defer manager.Stop()

			creds := domain.Credentials{Username: email, Password: password}
			sess, err := manager.Login(cmd.Context(), creds)
			var twoFactor *session.TwoFactorError
			if errors.As(err, &twoFactor) {
				if code == "" {
					return errors.New("this account uses two-factor authentication, rerun with --code")
				}
				sess, err = manager.VerifyTwoFactor(cmd.Context(), creds, code)
			}
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return errors.New(domain.ErrorMessage(err, "Incorrect email or password"))
				}
				return fmt.Errorf("login failed: %w", err)
			}

			cmd.Println(successStyle.Render("Logged in as " + sess.Subject))
			if save || viper.ConfigFileUsed() != "" {
				path, err := saveToken(sess.Token())
				if err != nil {
					return err
				}
				cmd.Println(mutedStyle.Render("Token saved to " + path))
				return nil
			}
			cmd.Println(sess.Token())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&code, "code", "", "two-factor authentication code")
	cmd.Flags().BoolVar(&save, "save", false, "write the token to the config file")

	return cmd
}
