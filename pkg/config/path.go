package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// snapshotLayout is the timestamp format of generated file names.
const snapshotLayout = "2006-01-02_15-04-05"

// Env carries the process state used to resolve paths. It is filled once
// at startup so nothing below the command reads the environment directly.
type Env struct {
	LookupEnv func(string) (string, bool)
	Home      string
	Now       time.Time
}

// Lookup returns the value of an environment variable and whether it is
// set. A variable set to the empty string is set.
func (e Env) Lookup(name string) (string, bool) {
	if e.LookupEnv == nil {
		return "", false
	}
	return e.LookupEnv(name)
}

// ResolveOutputPath picks the output file for cfg: OutputPath when set,
// otherwise a timestamped snapshot file in SnapshotDir, the home directory
// or the working directory. "~" and $VAR references are expanded; an
// undefined variable is an error.
func ResolveOutputPath(cfg Config, env Env) (string, error) {
	path := cfg.OutputPath
	if path == "" {
		dir := cfg.SnapshotDir
		if dir == "" {
			dir = env.Home
		}
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, SnapshotFileName(env.Now))
	}
	return ExpandPath(path, env)
}

// SnapshotFileName returns the generated file name for t.
func SnapshotFileName(t time.Time) string {
	return "snapshot-" + t.Format(snapshotLayout) + ".png"
}

// ExpandPath expands a leading "~" and $VAR / ${VAR} references.
func ExpandPath(path string, env Env) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if env.Home == "" {
			return "", fmt.Errorf("expand %q: home directory unknown", path)
		}
		path = env.Home + path[1:]
	}

	missing := map[string]bool{}
	expanded := os.Expand(path, func(name string) string {
		v, ok := env.Lookup(name)
		if !ok {
			missing[name] = true
		}
		return v
	})
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("expand %q: undefined variable %s", path, strings.Join(names, ", "))
	}
	return expanded, nil
}
