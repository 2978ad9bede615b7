// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the version line printed by `codeora --version`.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.Commit != "" {
		v += " (" + i.Commit + ")"
	}
	if i.BuildDate != "" {
		v += " built " + i.BuildDate
	}
	return v
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/codeora"
}
