package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogurasousui/employee-directory/internal/adapters/grpc/client"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/platform/config"
	"github.com/ogurasousui/employee-directory/internal/platform/logging"
	"github.com/ogurasousui/employee-directory/internal/platform/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// app はサブコマンド間で共有する状態です。
type app struct {
	configPath string
	remote     string
	verbose    bool

	cfg     *config.Config
	logger  *zap.Logger
	closers []func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "directory",
		Short: "Employee directory admin panel",
		Long: `Browse, filter, sort and edit an in-memory employee directory.

Records are seeded from the built-in sample or from directory.seed_path,
and live for the lifetime of the process. Use --remote to talk to a
running directory server instead of a local session.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $CONFIG_PATH or "+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&a.remote, "remote", "", "address of a directory gRPC server")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(a), newSummaryCmd(a), newPanelCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) teardown() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	if err := errors.Join(errs...); err != nil && a.logger != nil {
		a.logger.Warn("cleanup failed", zap.Error(err))
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// directory はローカルセッションまたはリモートサーバーのユースケースを返します。
func (a *app) directory(ctx context.Context) (employee.UseCase, error) {
	if a.remote != "" {
		conn, err := grpc.NewClient(a.remote, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", a.remote, err)
		}
		a.closers = append(a.closers, conn.Close)
		a.logger.Debug("using remote directory", zap.String("addr", a.remote))
		return client.New(conn), nil
	}

	sess, err := session.New(ctx, a.cfg.Directory, a.logger)
	if err != nil {
		return nil, err
	}
	return sess.Service, nil
}
