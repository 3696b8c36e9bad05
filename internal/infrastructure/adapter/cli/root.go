package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// ServiceFactory opens the ledger services on first use. The returned
// func releases them.
type ServiceFactory func(ctx context.Context) (usecase.UserUseCase, func() error, error)

type app struct {
	factory ServiceFactory
	users   usecase.UserUseCase
	closeFn func() error
}

// Run executes the admin command line and releases the services afterwards
func Run(ctx context.Context, factory ServiceFactory, version string, args []string, out, errOut io.Writer) error {
	a := &app{factory: factory}

	rootCmd := newRootCommand(a, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCommand(a *app, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smartlens-admin",
		Short: "Administer SmartLensOCR accounts and credits",
		Long: `smartlens-admin works directly against the service database.

It uses the same configuration as the API server (configs/<env>.yaml,
SL_ prefixed variables, DATABASE_PATH and DATABASE_URL).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newUsersCommand(a),
		newCreditsCommand(a),
		newTransactionsCommand(a),
		newUsageCommand(a),
	)

	return rootCmd
}

// userUseCase opens the services once per invocation
func (a *app) userUseCase(ctx context.Context) (usecase.UserUseCase, error) {
	if a.users != nil {
		return a.users, nil
	}
	users, closeFn, err := a.factory(ctx)
	if err != nil {
		return nil, err
	}
	a.users = users
	a.closeFn = closeFn
	return users, nil
}

func (a *app) close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	a.users = nil
	return err
}
