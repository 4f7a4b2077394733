package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/codesnap/pkg/pipeline"
)

func pipelineDoc() pipeline.Document {
	return pipeline.Document{Lines: []pipeline.Line{{Text: "x"}}}
}

func testEnv() Env {
	vars := map[string]string{"PROJECT": "codesnap", "HOME": "/home/dev", "EMPTY": ""}
	return Env{
		LookupEnv: func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		},
		Home: "/home/dev",
		Now:  time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC),
	}
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		env  Env
		want string
	}{
		{
			name: "explicit path",
			cfg:  Config{OutputPath: "/tmp/a.png"},
			env:  testEnv(),
			want: "/tmp/a.png",
		},
		{
			name: "explicit path with tilde and variable",
			cfg:  Config{OutputPath: "~/shots/$PROJECT.png"},
			env:  testEnv(),
			want: "/home/dev/shots/codesnap.png",
		},
		{
			name: "snapshot dir",
			cfg:  Config{SnapshotDir: "/var/shots"},
			env:  testEnv(),
			want: filepath.Join("/var/shots", "snapshot-2024-03-09_07-05-02.png"),
		},
		{
			name: "snapshot dir with braces",
			cfg:  Config{SnapshotDir: "${HOME}/Pictures"},
			env:  testEnv(),
			want: filepath.Join("/home/dev/Pictures", "snapshot-2024-03-09_07-05-02.png"),
		},
		{
			name: "home fallback",
			cfg:  Config{},
			env:  testEnv(),
			want: filepath.Join("/home/dev", "snapshot-2024-03-09_07-05-02.png"),
		},
		{
			name: "working directory fallback",
			cfg:  Config{},
			env:  Env{Now: testEnv().Now},
			want: "snapshot-2024-03-09_07-05-02.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOutputPath(tt.cfg, tt.env)
			if err != nil {
				t.Fatalf("ResolveOutputPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveOutputPath_UndefinedVariable(t *testing.T) {
	_, err := ResolveOutputPath(Config{OutputPath: "$NOPE/$ALSO_NOPE/a.png"}, testEnv())
	if err == nil {
		t.Fatal("expected error for undefined variable")
	}
	if !strings.Contains(err.Error(), "ALSO_NOPE, NOPE") {
		t.Errorf("expected both names in error, got %v", err)
	}
}

func TestExpandPath_EmptyVariableIsDefined(t *testing.T) {
	got, err := ExpandPath("/tmp/a${EMPTY}b.png", testEnv())
	if err != nil {
		t.Fatalf("expected a set but empty variable to expand, got %v", err)
	}
	if got != "/tmp/ab.png" {
		t.Errorf("expected %q, got %q", "/tmp/ab.png", got)
	}
}

func TestExpandPath_TildeWithoutHome(t *testing.T) {
	if _, err := ExpandPath("~/a.png", Env{}); err == nil {
		t.Error("expected error when home is unknown")
	}
	got, err := ExpandPath("a~b.png", Env{})
	if err != nil || got != "a~b.png" {
		t.Errorf("expected non-leading tilde untouched, got %q, %v", got, err)
	}
}

func TestSnapshotFileName(t *testing.T) {
	got := SnapshotFileName(time.Date(2025, 12, 31, 23, 59, 58, 0, time.Local))
	if got != "snapshot-2025-12-31_23-59-58.png" {
		t.Errorf("unexpected name %q", got)
	}
}
