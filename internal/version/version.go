// Package version reports the build version of profileform.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/profileform/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/profileform/internal/version.Commit=abc1234"
//
// Unset values are filled from the embedded VCS build settings on first use.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Info is the resolved build information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

var (
	resolveOnce sync.Once
	resolved    Info
)

// Get returns the build information, resolving it once
func Get() Info {
	resolveOnce.Do(func() {
		resolved = resolve(Version, Commit, Date, readSettings())
	})
	return resolved
}

// Full returns the version string including commit
func Full() string {
	info := Get()
	return fmt.Sprintf("%s (commit: %s)", info.Version, info.Commit)
}

// String returns a one-line description for `profileform version`
func (i Info) String() string {
	s := fmt.Sprintf("profileform %s (commit: %s", i.Version, i.Commit)
	if i.Date != "" {
		s += ", built " + i.Date
	}
	return s + fmt.Sprintf(") %s %s", i.GoVersion, i.Platform)
}

func readSettings() map[string]string {
	settings := make(map[string]string)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve fills missing ldflags values from VCS settings. A binary with no
// version and no VCS time reports dev-unknown.
func resolve(version, commit, date string, vcs map[string]string) Info {
	if commit == "" {
		if rev := vcs["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if vcs["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
		if version == "" {
			version = "dev-" + t.Format("20060102")
		}
		if date == "" {
			date = t.Format("2006-01-02")
		}
	}

	if version == "" {
		version = "dev-unknown"
	}
	if commit == "" {
		commit = "unknown"
	}

	return Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
