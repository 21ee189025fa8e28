package curl

import (
	"github.com/knpwrs/wcurl/internal/filename"
	"github.com/knpwrs/wcurl/internal/options"
)

// MaxRetries is passed to --retry for every URL.
const MaxRetries = "5"

// ParallelMaxHost caps simultaneous connections per host in parallel mode.
const ParallelMaxHost = "5"

// perURLParams is added to every transfer.
var perURLParams = []string{
	"--fail",
	"--globoff",
	"--location",
	"--proto-default", "https",
	"--remote-time",
	"--retry", MaxRetries,
}

// features is the set of version-gated behaviors enabled for one invocation.
type features struct {
	parallel        bool
	parallelMaxHost bool
	noClobber       bool
}

// featureRule enables part of features when curl is at least min.
type featureRule struct {
	min   Version
	apply func(f *features, cfg *options.Config)
}

// featureRules are evaluated in order against the probed version.
var featureRules = []featureRule{
	{
		// --parallel
		min: Version{7, 66},
		apply: func(f *features, cfg *options.Config) {
			f.parallel = len(cfg.URLs) >= 2
		},
	},
	{
		// --parallel-max-host
		min: Version{8, 16},
		apply: func(f *features, cfg *options.Config) {
			f.parallelMaxHost = len(cfg.URLs) >= 2
		},
	},
	{
		// --no-clobber
		min: Version{7, 83},
		apply: func(f *features, _ *options.Config) {
			f.noClobber = true
		},
	},
}

func resolveFeatures(cfg *options.Config, v Version) features {
	var f features
	for _, r := range featureRules {
		if v.AtLeast(r.min) {
			r.apply(&f, cfg)
		}
	}
	return f
}

// BuildArgs returns the full curl argument list for cfg, given the installed
// curl version.
//
// All URLs go into a single invocation, separated with --next. Each transfer
// gets the fixed parameter block, --no-clobber when supported, an --output,
// the user's extra options and finally the URL.
//
// A user-supplied output path is used verbatim for every URL. With several
// URLs curl itself has to keep the files apart; on versions without
// --no-clobber later transfers may overwrite earlier ones.
func BuildArgs(cfg *options.Config, v Version) []string {
	f := resolveFeatures(cfg, v)

	var args []string
	if f.parallel {
		args = append(args, "--parallel")
	}
	if f.parallelMaxHost {
		args = append(args, "--parallel-max-host", ParallelMaxHost)
	}

	for i, url := range cfg.URLs {
		if i > 0 {
			args = append(args, "--next")
		}

		args = append(args, perURLParams...)

		if f.noClobber {
			args = append(args, "--no-clobber")
		}

		output := cfg.Output
		if !cfg.HasOutput {
			output = filename.FromURL(url, cfg.DecodeFilename)
		}
		args = append(args, "--output", output)

		args = append(args, cfg.CurlOptions...)
		args = append(args, url)
	}

	return args
}
