// Package cli wires the store-art commands together: configuration,
// logging and the dims, feature and mcp subcommands.
package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/store-art/internal/config"
	"github.com/ironsheep/store-art/internal/diag"
	"github.com/ironsheep/store-art/internal/feature"
	"github.com/ironsheep/store-art/internal/imaging"
	"github.com/ironsheep/store-art/internal/lister"
	"github.com/ironsheep/store-art/internal/server"
)

// BuildInfo is set by the linker in cmd/store-art.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

type app struct {
	build BuildInfo
	log   *logrus.Logger
	cfg   config.Config

	envFile   string
	sourceDir string
	logLevel  string
	diagLog   string

	pattern string

	source  string
	output  string
	size    string
	filter  string
	gravity string
	palette int
}

// NewRootCommand returns the store-art command tree. Diagnostics go to log;
// command output goes to the command's configured output stream.
func NewRootCommand(build BuildInfo, log *logrus.Logger) *cobra.Command {
	a := &app{build: build, log: log}

	root := &cobra.Command{
		Use:   "store-art",
		Short: "Prepare app-store marketing images from screenshots",
		Long: `store-art lists screenshot dimensions and turns a screenshot into a
fixed-size feature graphic by cover-cropping it to the banner's aspect ratio
and resizing it with a high quality filter.

Every setting can also come from STORE_ART_* environment variables or a .env
file; command line flags take precedence.`,
		Version:           build.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}
	root.SetVersionTemplate(a.versionText())

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with STORE_ART_* settings")
	pf.StringVarP(&a.sourceDir, "source-dir", "d", "", "directory holding the screenshots (default \".\")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default \"info\")")
	pf.StringVar(&a.diagLog, "diag-log", "", "file that records imaging support failures (default store-art.log next to the binary)")

	root.AddCommand(a.dimsCommand(), a.featureCommand(), a.mcpCommand(), a.versionCommand())
	return root
}

func (a *app) versionText() string {
	return fmt.Sprintf("store-art %s\n  Build time: %s\n  Git commit: %s\n",
		a.build.Version, a.build.BuildTime, a.build.GitCommit)
}

// loadConfig resolves settings as flags > environment > .env > defaults and
// configures the logger.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	env, err := config.Environ(a.envFile)
	if err != nil {
		return err
	}
	cfg, err := config.FromEnv(env)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("source-dir") {
		cfg.SourceDir = a.sourceDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("diag-log") {
		cfg.DiagLog = a.diagLog
	}
	if flags.Changed("pattern") {
		cfg.Pattern = a.pattern
	}
	if flags.Changed("source") {
		cfg.SourceFile = a.source
	}
	if flags.Changed("output") {
		cfg.OutputPath = a.output
	}
	if flags.Changed("filter") {
		cfg.Filter = a.filter
	}
	if flags.Changed("gravity") {
		g, err := imaging.ParseGravity(a.gravity)
		if err != nil {
			return err
		}
		cfg.Gravity = g
	}
	if flags.Changed("size") {
		target, err := imaging.ParseSize(a.size)
		if err != nil {
			return errors.Wrap(err, "--size")
		}
		cfg.Target = target
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	a.log.SetLevel(level)
	a.log.WithFields(logrus.Fields{
		"command":    cmd.Name(),
		"source_dir": cfg.SourceDir,
		"version":    a.build.Version,
	}).Debug("configuration loaded")

	a.cfg = cfg
	return nil
}

func (a *app) dimsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dims",
		Short: "Print the pixel size of every matching screenshot",
		Long: `dims prints "Found N screenshots" followed by "<name>: <W>x<H>" for each
file in the source directory matching the pattern, sorted by name. Files that
cannot be read are reported and counted; the command then exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := lister.List(a.cfg.SourceDir, a.cfg.Pattern, a.log)
			if err != nil {
				return err
			}
			if err := report.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			return report.Err()
		},
	}
	cmd.Flags().StringVarP(&a.pattern, "pattern", "p", "", "file name glob (default \"Screenshot_*.jpg\")")
	return cmd
}

func (a *app) featureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Build a feature graphic from one screenshot",
		Long: `feature cover-crops the source screenshot to the target aspect ratio,
keeping the center, resizes it to exactly the target size and writes it to the
output path, replacing any existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := diag.Guard(a.cfg.DiagLogPath(), a.log, diag.ImagingSupport)
			if err != nil {
				return err
			}

			res, err := feature.Generate(a.cfg, feature.Options{Palette: a.palette}, a.log)
			if err != nil {
				return err
			}
			return res.Write(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&a.source, "source", "s", "", "screenshot to crop, relative to --source-dir unless absolute")
	f.StringVarP(&a.output, "output", "o", "", "output file (default feature-graphic.png in --source-dir)")
	f.StringVar(&a.size, "size", "", "target size WIDTHxHEIGHT (default 1024x500)")
	f.StringVar(&a.filter, "filter", "", "resampling filter: lanczos, catmullrom, mitchell, linear, box, nearest")
	f.StringVar(&a.gravity, "gravity", "", "crop placement: center or smart")
	f.IntVar(&a.palette, "palette", 0, "also print this many dominant colors of the result")
	return cmd
}

func (a *app) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the store-art tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.WithFields(logrus.Fields{
				"version": a.build.Version,
				"built":   a.build.BuildTime,
				"commit":  a.build.GitCommit,
			}).Debug("MCP server starting")
			return server.New(a.cfg, a.log).Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.versionText())
		},
	}
}
