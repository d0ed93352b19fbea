package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"d2mapi/packages/Game/d2"
	"d2mapi/packages/Game/game"
	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/logging"
	"d2mapi/packages/Memory/process_monitor"
	"d2mapi/packages/Memory/version"
)

var (
	configPath string
	cfg        game.Config
	log        *logging.Logger
	metrics    *prometheus.Registry
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "d2mapi",
		Short:         "Inspect Diablo II installations and processes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = game.LoadConfig(configPath); err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log = logging.New(os.Stderr, level)
			if cfg.Metrics {
				metrics = prometheus.NewRegistry()
				return game.RegisterMetrics(metrics)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if metrics == nil {
				return nil
			}
			return renderMetrics(cmd.OutOrStdout(), metrics)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "d2mapi.json", "path to the JSON config file")
	root.AddCommand(identifyCmd(), signaturesCmd(), detectCmd(), resolveCmd(), videoModeCmd(), layoutsCmd(), watchCmd())
	return root
}

func identifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [path...]",
		Short: "Match file header signatures against the signature table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{cfg.GameExecutable}
			}
			rows := make([]identified, 0, len(args))
			for _, path := range args {
				row := identified{Path: path}
				row.Signature, row.Err = version.ReadSignature(path)
				if row.Err == nil {
					row.Revision, row.Err = version.Identify(path)
				}
				rows = append(rows, row)
			}
			renderIdentified(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func signaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signatures",
		Short: "List the known revision signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSignatures(cmd.OutOrStdout(), version.Default, version.Launchers)
			return nil
		},
	}
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Detect the revision of the configured game executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := game.New(cfg, game.Options{Log: log})
			if err != nil {
				return err
			}
			res, err := s.Detection()
			if err != nil {
				return err
			}
			renderDetection(cmd.OutOrStdout(), cfg.GameExecutable, res)
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <library> <name>",
		Short: "Resolve an address-table entry in this process",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := address.ParseLibrary(args[0])
			if err != nil {
				return err
			}
			s, err := game.New(cfg, game.Options{Log: log})
			if err != nil {
				return err
			}
			loc, err := s.Locator(lib, args[1])
			if err != nil {
				return err
			}
			addr, err := s.Resolve(loc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", loc, addr)
			return nil
		},
	}
}

func videoModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video-mode",
		Short: "Show the renderer the game is configured to use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := game.New(cfg, game.Options{Log: log})
			if err != nil {
				return err
			}
			mode, src, err := s.VideoMode()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (from %s)\n", mode, src)
			return nil
		},
	}
}

func layoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "Check the compiled struct layouts against their offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderLayouts(cmd.OutOrStdout(), d2.Contracts())
		},
	}
}

func watchCmd() *cobra.Command {
	var names []string
	var poll time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report the revision of every game process that starts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			log.Info("watching for game processes", "names", names)
			return process_monitor.Watch(ctx, names, poll, func(ev process_monitor.Event) {
				go inspect(ev)
			})
		},
	}
	cmd.Flags().StringSliceVar(&names, "name", []string{"Game.exe", "D2SE.exe", "Diablo II.exe"}, "executable names to watch")
	cmd.Flags().DurationVar(&poll, "poll", time.Second, "WMI polling interval")
	return cmd
}

func inspect(ev process_monitor.Event) {
	l := log.With("pid", ev.Pid, "name", ev.Name)
	info, err := process_monitor.Inspect(int32(ev.Pid))
	if err != nil {
		l.Warn("process vanished before inspection", "err", err)
		return
	}
	c := cfg
	c.GameExecutable = info.Executable
	c.Revision = ""
	s, err := game.New(c, game.Options{Log: l})
	if err != nil {
		l.Error("session setup failed", "err", err)
		return
	}
	res, err := s.Detection()
	if err != nil {
		l.Error("revision detection failed", "executable", info.Executable, "err", err)
		return
	}
	// The window appears a moment after the process.
	time.Sleep(3 * time.Second)
	w, found, err := process_monitor.FindWindow(ev.Pid, process_monitor.GameWindowClass)
	l.Info("game process started",
		"revision", res.Revision,
		"source", res.Source,
		"dir", filepath.Dir(info.Executable),
		"parent", info.Parent,
		"window", found,
		"title", w.Title,
		"window_err", err)
}
