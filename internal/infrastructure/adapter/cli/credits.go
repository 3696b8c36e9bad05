package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

func newCreditsCommand(a *app) *cobra.Command {
	creditsCmd := &cobra.Command{
		Use:   "credits",
		Short: "Change account balances",
	}

	adjustCmd := &cobra.Command{
		Use:   "adjust",
		Short: "Add or remove credits. The balance never drops below zero.",
		Example: `  # Grant 10 credits
  smartlens-admin credits adjust --user usr_1a2b3c4d5e6f --amount 10

  # Preview a debit without writing it
  smartlens-admin credits adjust --user usr_1a2b3c4d5e6f --amount -100 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			amount, _ := cmd.Flags().GetInt64("amount")
			description, _ := cmd.Flags().GetString("description")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			if err := entity.ValidateAmount(amount); err != nil {
				return err
			}

			users, err := a.userUseCase(cmd.Context())
			if err != nil {
				return err
			}

			if dryRun {
				user, err := users.GetUser(cmd.Context(), userID)
				if err != nil {
					return fmt.Errorf("failed to load user: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d (%s %d, not applied)\n",
					user.ID, user.Credits, entity.ClampBalance(user.Credits, amount), entity.TypeForAmount(amount), amount)
				return nil
			}

			user, err := users.ApplyCreditDelta(cmd.Context(), userID, amount, description)
			if err != nil {
				return fmt.Errorf("failed to adjust credits: %w", err)
			}
			return printUsers(cmd.OutOrStdout(), user)
		},
	}
	adjustCmd.Flags().String("user", "", "Account ID")
	adjustCmd.Flags().Int64("amount", 0, "Signed credit delta")
	adjustCmd.Flags().String("description", "", "Transaction description")
	adjustCmd.Flags().Bool("dry-run", false, "Show the resulting balance without writing it")
	_ = adjustCmd.MarkFlagRequired("user")
	_ = adjustCmd.MarkFlagRequired("amount")

	creditsCmd.AddCommand(adjustCmd)
	return creditsCmd
}

func newTransactionsCommand(a *app) *cobra.Command {
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Inspect the credit ledger",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List an account's transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			limit, _ := cmd.Flags().GetInt("limit")
			if limit < 0 {
				return fmt.Errorf("limit must not be negative")
			}

			users, err := a.userUseCase(cmd.Context())
			if err != nil {
				return err
			}
			transactions, err := users.ListTransactions(cmd.Context(), userID, limit)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tAMOUNT\tTYPE\tDESCRIPTION\tCREATED")
			for _, t := range transactions {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", t.ID, t.Amount, t.Type, t.Description, t.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
	listCmd.Flags().String("user", "", "Account ID")
	listCmd.Flags().Int("limit", 0, "Maximum rows, 0 for the default")
	_ = listCmd.MarkFlagRequired("user")

	transactionsCmd.AddCommand(listCmd)
	return transactionsCmd
}

func newUsageCommand(a *app) *cobra.Command {
	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Show the total credits an account has been debited",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")

			users, err := a.userUseCase(cmd.Context())
			if err != nil {
				return err
			}
			total, err := users.TotalDebited(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("failed to load usage: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s debited %d credits\n", userID, total)
			return nil
		},
	}
	usageCmd.Flags().String("user", "", "Account ID")
	_ = usageCmd.MarkFlagRequired("user")

	return usageCmd
}
