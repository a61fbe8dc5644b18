package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/deploymenttheory/go-checksum/internal/checksum"
	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"github.com/deploymenttheory/go-checksum/internal/common/compressionutil"
	"github.com/deploymenttheory/go-checksum/internal/common/fsutil"
	"github.com/deploymenttheory/go-checksum/internal/config"
	"github.com/deploymenttheory/go-checksum/internal/logger"
	"github.com/deploymenttheory/go-checksum/internal/report"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X .../cmd.Version=..."
var Version = "0.1.0"

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// app carries what PersistentPreRunE prepares for the command that runs
type app struct {
	cfgFile string
	cfg     *config.AppConfig
	log     *logger.Logger
	output  report.Format
}

// NewRootCmd builds the base CLI command writing results to stdout and
// diagnostics to stderr
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "go-checksum <file> <8|16|32>",
		Short: "Compute an 8, 16 or 32 bit additive checksum of a text file",
		Long: `go-checksum reads a text file into memory and computes a simple additive
checksum over its bytes.

For 16 and 32 bit checksums the content is padded with 'X' to a multiple
of 2 or 4 bytes and summed as big-endian words. The sum is truncated to the
requested width and printed with the number of bytes summed.`,
		Example: `  go-checksum input.txt 8
  go-checksum input.txt 32 --echo
  go-checksum notes.txt.gz 16 --output json`,
		Version:       Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.OutOrStdout(), args[0], args[1])
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("go-checksum v{{.Version}}\n")

	// Config file flag
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is search in standard locations)")

	// Logging flags
	rootCmd.PersistentFlags().Bool("debug", defaults.Debug, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", defaults.LogFormat, "Log format: json or human")
	rootCmd.PersistentFlags().String("log-level", defaults.LogLevel, "Minimum log level when --debug is off")
	rootCmd.PersistentFlags().String("log-file", defaults.LogFile, "Also write logs to this file")

	// Report flags
	rootCmd.Flags().Bool("echo", defaults.Echo, "Print the source text before the checksum")
	rootCmd.Flags().Int("columns", defaults.Columns, "Line width used by --echo")
	rootCmd.Flags().StringP("output", "o", defaults.Output, "Output format: text, json, yaml or plist")

	// Input flags
	rootCmd.Flags().String("decompress", defaults.Decompress, "Input decoding: none (raw bytes), auto (by extension), gzip, xz, bzip2 or zstd")

	return rootCmd
}

// validateArgs rejects anything but a file and a width
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: got %d argument(s)", commonerrors.ErrArgumentCount, len(args))
	}
	return nil
}

// setup loads configuration with flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	output, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	log, err := logger.InitLogger(logger.LoggerConfig{
		Debug:     cfg.Debug,
		LogFormat: cfg.LogFormat,
		LogLevel:  cfg.LogLevel,
		LogFile:   cfg.LogFile,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.output = output

	a.log.LogDebug("Configuration loaded", map[string]interface{}{
		"config_file": cfg.ConfigFile,
		"output":      cfg.Output,
		"decompress":  cfg.Decompress,
	})
	return nil
}

// run validates the file and width in that order, then computes and reports
// the checksum
func (a *app) run(out io.Writer, path, widthToken string) error {
	file, err := fsutil.OpenFile(path)
	if err != nil {
		a.log.LogDebug("Input rejected", map[string]interface{}{"file": path, "error": err.Error()})
		return err
	}
	_ = file.Close()

	width, err := checksum.ParseWidth(widthToken)
	if err != nil {
		a.log.LogDebug("Width rejected", map[string]interface{}{"width": widthToken, "error": err.Error()})
		return err
	}

	summer, err := checksum.NewChecksummer(width)
	if err != nil {
		return err
	}

	format := compressionutil.FormatNone
	switch a.cfg.Decompress {
	case "none":
	case "auto":
		format = compressionutil.DetectFormat(path)
	default:
		if format, err = compressionutil.ParseFormat(a.cfg.Decompress); err != nil {
			return err
		}
	}

	log := a.log.WithFields(map[string]interface{}{
		"file":        path,
		"width":       int(width),
		"compression": string(format),
	})

	reader, err := compressionutil.Open(path, format)
	if err != nil {
		return err
	}
	defer reader.Close()

	// keep a copy of what was summed only when it has to be echoed
	var echoed bytes.Buffer
	var input io.Reader = reader
	if a.cfg.Echo {
		input = io.TeeReader(reader, &echoed)
	}

	res, err := summer.SumReader(input)
	if err != nil {
		log.LogError("Checksum failed", err, nil)
		return err
	}

	log.LogInfo("Checksum computed", map[string]interface{}{
		"value":  fmt.Sprintf("%x", res.Value),
		"length": res.Length,
	})

	if a.cfg.Echo {
		filled := res.Filled(echoed.Len())
		if err := report.Echo(out, echoed.Bytes(), filled, a.cfg.Columns); err != nil {
			return fmt.Errorf("failed to echo input: %w", err)
		}
	}

	return report.Write(out, report.NewSummary(path, res), a.output)
}

// Execute runs the root command against the process arguments and returns
// the exit status
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the CLI with args and returns the exit status. Failures are
// reported on stderr as a single line.
func Run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}
