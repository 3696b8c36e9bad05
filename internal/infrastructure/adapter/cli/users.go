package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

func newUsersCommand(a *app) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List and create accounts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every account, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.userUseCase(cmd.Context())
			if err != nil {
				return err
			}
			list, err := users.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			return printUsers(cmd.OutOrStdout(), list...)
		},
	}

	createCmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an account, or show the existing one for this email",
		Example: `  smartlens-admin users create --email reader@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")

			users, err := a.userUseCase(cmd.Context())
			if err != nil {
				return err
			}
			user, err := users.GetOrCreateUser(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			return printUsers(cmd.OutOrStdout(), user)
		},
	}
	createCmd.Flags().String("email", "", "Email address of the account")
	_ = createCmd.MarkFlagRequired("email")

	usersCmd.AddCommand(listCmd, createCmd)
	return usersCmd
}

func printUsers(out io.Writer, users ...*entity.User) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tCREDITS\tPRO\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n", u.ID, u.Email, u.Credits, u.IsPro, u.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
