package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/gateway"
	"station-reassignment-service/internal/mapper"
	"station-reassignment-service/internal/pacing"
	"station-reassignment-service/internal/service"
	"station-reassignment-service/pkg/config"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

const exitIncomplete = 2

// exitError carries a non-zero exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type submitOptions struct {
	file     string
	envFile  string
	apiURL   string
	token    string
	interval time.Duration
	pacing   string
	quiet    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reassignctl",
		Short:         "Submit batch station reassignments to the reassignment API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSubmitCmd())
	return root
}

func newSubmitCmd() *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Reassign every entity in a batch file to one station",
		Long: `Reads a YAML or JSON batch file and submits one pending-approval
reassignment per selected entity, in file order, one at a time.

Exit codes: 0 all submitted, 2 some or all failed, 1 invalid input.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSubmit(ctx, cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "batch file (YAML or JSON)")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file with REMOTE_API_URL and friends")
	flags.StringVar(&opts.apiURL, "api-url", "", "override REMOTE_API_URL")
	flags.StringVar(&opts.token, "token", "", "override REMOTE_API_TOKEN")
	flags.DurationVar(&opts.interval, "interval", 0, "override PACING_INTERVAL")
	flags.StringVar(&opts.pacing, "pacing", "", "override PACING_MODE (fixed, token-bucket, none)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print per-item progress")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSubmit(ctx context.Context, out io.Writer, opts *submitOptions) error {
	req, err := loadBatchFile(opts.file)
	if err != nil {
		return err
	}
	if err := validator.New().Struct(req); err != nil {
		return fmt.Errorf("invalid batch file: %w", err)
	}

	// flags win over the environment
	if opts.apiURL != "" {
		if err := os.Setenv("REMOTE_API_URL", opts.apiURL); err != nil {
			return err
		}
	}
	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}
	remote, pacingCfg, err := config.LoadClient(envFiles...)
	if err != nil {
		return err
	}
	if opts.token != "" {
		remote.Token = opts.token
	}
	if opts.pacing != "" {
		pacingCfg.Mode = opts.pacing
	}
	if opts.interval > 0 {
		pacingCfg.Interval = opts.interval
	}

	pacer, err := pacing.New(pacingCfg.Mode, pacingCfg.Interval, pacingCfg.Burst)
	if err != nil {
		return err
	}

	gw := gateway.NewHTTPGateway(gateway.HTTPGatewayConfig{
		BaseURL:      remote.BaseURL,
		Token:        remote.Token,
		TokenSecret:  remote.TokenSecret,
		TokenSubject: remote.TokenSubject,
		Timeout:      remote.Timeout,
	}, nil)

	var progress service.ProgressReporter = service.NopProgress{}
	if !opts.quiet {
		progress = consoleProgress{out: out}
	}

	batch := service.NewBatchService(gw, pacer,
		service.WithProgress(progress),
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	report, err := batch.Run(ctx, mapper.MapBatchRequestToDomain(req))
	if err != nil {
		return err
	}

	printReport(out, report)
	if report.Classification != domain.CompleteSuccess {
		return &exitError{code: exitIncomplete}
	}
	return nil
}
