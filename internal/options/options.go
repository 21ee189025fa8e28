package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Parse when -h or --help is seen.
var ErrHelp = errors.New("help requested")

// ErrVersion is returned by Parse when -V or --version is seen.
var ErrVersion = errors.New("version requested")

// Config holds everything parsed from the command line for one run.
//
// It is built once by Parse and only read afterwards.
type Config struct {
	// CurlOptions are forwarded verbatim to curl, in the order given
	CurlOptions []string
	// URLs to download, with literal spaces already encoded as %20
	URLs []string
	// Output is the user-supplied output path, valid when HasOutput is set
	Output    string
	HasOutput bool
	// DecodeFilename controls percent-decoding of derived filenames
	DecodeFilename bool
	// DryRun prints the curl invocation instead of running it
	DryRun bool
}

// Parse converts the process arguments (without the program name) into a Config.
//
// Tokens are read strictly left to right. A literal "--" makes every remaining
// token a URL, even ones starting with "-". For -o/-O/--output the last value
// wins; --curl-options accumulates.
//
// Parse returns ErrHelp or ErrVersion when the corresponding flag is met; the
// caller is expected to print the text and exit successfully.
func Parse(args []string) (*Config, error) {
	cfg := &Config{DecodeFilename: true}
	readingURLs := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if readingURLs {
			cfg.URLs = append(cfg.URLs, EncodeWhitespace(arg))
			continue
		}

		switch arg {
		case "-h", "--help":
			return nil, ErrHelp
		case "-V", "--version":
			return nil, ErrVersion
		case "--dry-run":
			cfg.DryRun = true
		case "--no-decode-filename":
			cfg.DecodeFilename = false
		case "--curl-options":
			i++
			if i >= len(args) {
				return nil, errors.New("--curl-options requires an argument")
			}
			cfg.CurlOptions = append(cfg.CurlOptions, args[i])
		case "-o", "-O", "--output":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("%s requires an argument", arg)
			}
			cfg.setOutput(args[i])
		case "--":
			readingURLs = true
		default:
			switch {
			case strings.HasPrefix(arg, "--curl-options="):
				cfg.CurlOptions = append(cfg.CurlOptions, strings.TrimPrefix(arg, "--curl-options="))
			case strings.HasPrefix(arg, "--output="):
				cfg.setOutput(strings.TrimPrefix(arg, "--output="))
			case strings.HasPrefix(arg, "-o"), strings.HasPrefix(arg, "-O"):
				cfg.setOutput(arg[2:])
			case strings.HasPrefix(arg, "-"):
				return nil, fmt.Errorf("Unknown option: '%s'", arg)
			default:
				cfg.URLs = append(cfg.URLs, EncodeWhitespace(arg))
			}
		}
	}

	if len(cfg.URLs) == 0 {
		return nil, errors.New("You must provide at least one URL to download.")
	}

	return cfg, nil
}

func (c *Config) setOutput(path string) {
	c.Output = path
	c.HasOutput = true
}

// EncodeWhitespace replaces every literal space with %20.
//
// Nothing else is touched, so an existing %20 is not re-encoded and curl still
// does the real URL parsing.
func EncodeWhitespace(url string) string {
	return strings.ReplaceAll(url, " ", "%20")
}
