package testctl

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// Main runs the testctl command tree and exits non-zero on failure.
func Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := buildRootCmd().ExecuteContext(ctx); err != nil {
		errl("%v", err)
		killProcesses()
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "testctl",
		Short:         "Test and dev utilities for intentd",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", envStr("TESTCTL_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		lvl, _ := cmd.Flags().GetString("log-level")
		SetLogLevel(lvl)
	}
	root.AddCommand(newTestCmd(), newSmokeCmd(), newPortsCmd())
	return root
}

func suiteNames() []string {
	var names []string
	for name := range suites(false) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newTestCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:       "test <suite>",
		Short:     "Run a Go test suite",
		Example:   "  testctl test unit\n  testctl test all\n  testctl test live",
		ValidArgs: append(suiteNames(), "all"),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("test requires one suite: %s|all", strings.Join(suiteNames(), "|"))
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "all" {
				return runAll(cmd.Context(), verbose)
			}
			return runSuite(cmd.Context(), args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", envBool("TESTCTL_VERBOSE", false), "Pass -v to go test")
	return cmd
}

func newSmokeCmd() *cobra.Command {
	cfg := SmokeConfig{}
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Build intentd, start it, and classify one utterance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmoke(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.Port, "port", envInt("TESTCTL_PORT", 18080), "Preferred port; a free one is used when busy")
	cmd.Flags().StringVar(&cfg.ConfigPath, "config", envStr("INTENTD_CONFIG", "config/app_config.yaml"), "Label config passed to intentd")
	cmd.Flags().StringVar(&cfg.CacheDir, "cache-dir", os.Getenv("INTENTD_CACHE_DIR"), "Model cache directory")
	cmd.Flags().BoolVar(&cfg.Offline, "offline", envBool("INTENTD_OFFLINE", false), "Never download; the model must already be cached")
	cmd.Flags().StringVar(&cfg.Text, "text", "what is the flight number of the 8am flight to boston", "Utterance to classify")
	cmd.Flags().DurationVar(&cfg.ReadyTimeout, "ready-timeout", 10*time.Minute, "How long to wait for the model to load")
	return cmd
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports <port>...",
		Short: "Report whether ports are free",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var busy []string
			for _, a := range args {
				var p int
				if _, err := fmt.Sscanf(a, "%d", &p); err != nil || p <= 0 {
					return fmt.Errorf("invalid port %q", a)
				}
				if isPortBusy(p) {
					warn("[ports] Port %d is busy", p)
					busy = append(busy, a)
					continue
				}
				info("[ports] Port %d is free", p)
			}
			if len(busy) > 0 {
				return fmt.Errorf("ports in use: %s", strings.Join(busy, ", "))
			}
			return nil
		},
	}
}
