// Package curl probes the local curl binary, assembles its argument list and
// runs it.
package curl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultExe is the curl executable name, resolved through PATH.
const DefaultExe = "curl"

// Version is the (major, minor) part of curl's self-reported version.
type Version struct {
	Major uint
	Minor uint
}

// AtLeast reports whether v is the same as or newer than min.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Probe runs "<exe> --version" and parses its output.
func Probe(ctx context.Context, exe string) (Version, error) {
	out, err := exec.CommandContext(ctx, exe, "--version").Output()
	if err != nil && len(out) == 0 {
		return Version{}, fmt.Errorf("failed to execute %s: %w", exe, err)
	}
	return ParseVersion(out)
}

// ParseVersion extracts the version from "curl --version" output.
//
// Only the first line is used. Its second whitespace-separated field must be a
// dotted version with at least two numeric components, e.g.
// "curl 8.5.0 (x86_64-pc-linux-gnu) libcurl/8.5.0".
func ParseVersion(out []byte) (Version, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	if !sc.Scan() {
		return Version{}, errors.New("no version output")
	}

	fields := strings.Fields(sc.Text())
	if len(fields) < 2 {
		return Version{}, errors.New("could not parse curl version")
	}

	parts := strings.Split(fields[1], ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("invalid version format: %q", fields[1])
	}

	major, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version %q: %w", parts[0], err)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version %q: %w", parts[1], err)
	}

	return Version{Major: uint(major), Minor: uint(minor)}, nil
}
