package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/knpwrs/wcurl/internal/curl"
	"github.com/knpwrs/wcurl/internal/options"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is reported by -V/--version. Overridden at build time with
// -ldflags "-X github.com/knpwrs/wcurl/cmd.version=...".
var version = "2025.11.09"

// errUsage is returned when wcurl runs without arguments. The usage text has
// already been printed, so Execute only sets the exit status.
var errUsage = errors.New("usage")

const usage = `wcurl -- a simple wrapper around curl to easily download files.

Usage: wcurl <URL>...
       wcurl [--curl-options <CURL_OPTIONS>]... [--no-decode-filename] [-o|-O|--output <PATH>] [--dry-run] [--] <URL>...
       wcurl [--curl-options=<CURL_OPTIONS>]... [--no-decode-filename] [--output=<PATH>] [--dry-run] [--] <URL>...
       wcurl -h|--help
       wcurl -V|--version

Options:

  --curl-options <CURL_OPTIONS>: Specify extra options to be passed when invoking curl. May be
                                 specified more than once.

  -o, -O, --output <PATH>: Use the provided output path instead of getting it from the URL. If
                           multiple URLs are provided, resulting files share the same name with a
                           number appended to the end (curl >= 7.83.0). If this option is provided
                           multiple times, only the last value is considered.

  --no-decode-filename: Don't percent-decode the output filename, even if the percent-encoding in
                        the URL was done by wcurl, e.g.: The URL contained whitespace.

  --dry-run: Don't actually execute curl, just print what would be invoked.

  -V, --version: Print version information.

  -h, --help: Print this usage message.

  <CURL_OPTIONS>: Any option supported by curl can be set here. This is not used by wcurl; it is
                  instead forwarded to the curl invocation.

  <URL>: URL to be downloaded. Anything that is not a parameter is considered
         an URL. Whitespace is percent-encoded and the URL is passed to curl, which
         then performs the parsing. May be specified more than once.

Environment:

  WCURL_CURL: curl executable to use instead of "curl" from PATH.
  WCURL_DEBUG: when non-empty, log the detected curl version and the invocation to stderr.
`

// rootCmd represents the base command when called without any subcommands.
//
// Flag parsing is left to options.Parse: the wcurl grammar is positional
// ("--" turns the rest of the line into URLs, values may be glued to -o/-O)
// and unknown options must be rejected by name.
//
// See: https://context7.com/golang/go for Go documentation
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:                "wcurl <URL>...",
		Short:              "A simple wrapper around curl to easily download files",
		Long:               usage,
		Version:            version,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               runWcurl,
	}
	c.SetHelpTemplate("{{.Long}}")
	return c
}

// Execute runs the root command and exits with status 1 on any error.
//
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(rootCmd))
}

// execute runs c and returns the process exit status. Errors are printed to
// c's error stream with the "Error: " prefix.
func execute(c *cobra.Command) int {
	if err := c.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			c.PrintErrln(c.ErrPrefix(), err.Error())
		}
		return 1
	}
	return 0
}

// newLogger returns the debug logger. Output is limited to warnings unless
// WCURL_DEBUG is set.
func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	log.Level = logrus.WarnLevel
	if os.Getenv("WCURL_DEBUG") != "" {
		log.Level = logrus.DebugLevel
	}
	return log
}

// runWcurl is the main execution function for the root command.
func runWcurl(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if err := cmd.Help(); err != nil {
			return err
		}
		return errUsage
	}

	cfg, err := options.Parse(args)
	switch {
	case errors.Is(err, options.ErrHelp):
		return cmd.Help()
	case errors.Is(err, options.ErrVersion):
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cmd.Version)
		return err
	case err != nil:
		return err
	}

	log := newLogger(cmd.ErrOrStderr())

	exe := os.Getenv("WCURL_CURL")
	if exe == "" {
		exe = curl.DefaultExe
	}

	ctx := cmd.Context()
	v, err := curl.Probe(ctx, exe)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"exe":     exe,
		"version": v.String(),
	}).Debug("detected curl version")

	curlArgs := curl.BuildArgs(cfg, v)
	log.WithFields(logrus.Fields{
		"urls":          len(cfg.URLs),
		"custom_output": cfg.HasOutput,
		"args":          len(curlArgs),
	}).Debug("assembled curl invocation")

	runner := &curl.Runner{
		Exe:    exe,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: log,
	}

	if cfg.DryRun {
		return runner.DryRun(curlArgs)
	}
	return runner.Run(ctx, curlArgs)
}
