package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"dbcheck/config"
	"dbcheck/internal/adapter/console"
	"dbcheck/internal/core/ports"
	"dbcheck/internal/service"
	"dbcheck/pkg/apperror"
	"dbcheck/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// env is everything the command takes from the process, injected so tests
// never touch the real environment.
type env struct {
	stdout    io.Writer
	stderr    io.Writer
	environ   []string
	dir       string
	connector func(log zerolog.Logger) ports.Connector
}

type flags struct {
	configPath string
	envFile    string
	timeout    time.Duration
	limit      int
	sort       bool
	noColor    bool
	jsonOut    bool
	debug      bool
}

// execute runs the command and returns the process exit code.
func execute(args []string, e env) int {
	exitCode := apperror.ExitOK
	cmd := newRootCmd(e, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return apperror.ExitFailure
	}
	return exitCode
}

func newRootCmd(e env, exitCode *int) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "Verify that the dashboard database is reachable and healthy",
		Long: `dbcheck loads MONGODB_URI from the environment or .env.local/.env, connects,
pings the server, lists the databases visible to the credentials and
disconnects. It exits 0 when every step passed and 1 otherwise.

Besides mongodb:// and mongodb+srv://, postgres://, redis:// and
sqlite:// URIs are accepted.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*exitCode = run(cmd.Context(), cmd, e, f)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (default ./dbcheck.yaml or ./config/dbcheck.yaml)")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "KEY=VALUE file to read (default .env.local, then .env)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "connect and server selection timeout (e.g. 5s)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "number of databases to list before summarising the rest")
	cmd.Flags().BoolVar(&f.sort, "sort", false, "sort databases by name before listing")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "write a single JSON document instead of the progress report")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging on stderr")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, e env, f flags) int {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: f.configPath,
		EnvFile:    f.envFile,
		Dir:        e.dir,
		Environ:    e.environ,
	})
	if err != nil {
		appErr := apperror.ErrInvalidConfig(err)
		if f.jsonOut {
			jr := console.NewJSONReporter(e.stdout)
			jr.ConfigurationFailed(appErr)
			if jr.Err() != nil {
				fmt.Fprintf(e.stderr, "❌ %v\n", appErr)
			}
		} else {
			fmt.Fprintf(e.stderr, "❌ %v\n", appErr)
		}
		return apperror.ExitCode(appErr)
	}

	flagSet := cmd.Flags()
	if flagSet.Changed("timeout") {
		cfg.Database.ConnectTimeout = f.timeout
		cfg.Database.ServerSelectionTimeout = f.timeout
	}
	if flagSet.Changed("limit") {
		cfg.Report.Limit = f.limit
	}
	if flagSet.Changed("sort") {
		cfg.Report.Sort = f.sort
	}
	if f.noColor {
		cfg.Report.Color = false
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, e.stderr)
	log.Debug().
		Str("uri_source", cfg.URISource).
		Dur("connect_timeout", cfg.Database.ConnectTimeout).
		Dur("server_selection_timeout", cfg.Database.ServerSelectionTimeout).
		Msg("configuration loaded")

	var (
		reporter ports.Reporter = console.NewReporter(e.stdout, e.stderr, cfg.Report.Color)
		jr       *console.JSONReporter
	)
	if f.jsonOut {
		jr = console.NewJSONReporter(e.stdout)
		reporter = jr
	}
	svc := service.NewDiagnosticService(e.connector(log), reporter, log)

	_, err = svc.Run(ctx, cfg.Connection())
	if jr != nil && jr.Err() != nil {
		log.Error().Err(jr.Err()).Msg("failed to write JSON report")
		return apperror.ExitFailure
	}
	return apperror.ExitCode(err)
}
