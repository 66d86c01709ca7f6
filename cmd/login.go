package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginRemember bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the board",
	Long: `Log in with the demo account. With --remember the session is persisted
and stays valid for 7 days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, authStore, _, err := openStores()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := authStore.Login(loginEmail, loginPassword, loginRemember); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", loginEmail)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, authStore, _, err := openStores()
		if err != nil {
			return err
		}
		defer store.Close()

		authStore.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	// Without persistence a headless login would not outlive the process.
	loginCmd.Flags().BoolVar(&loginRemember, "remember", true, "persist the session for 7 days")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
