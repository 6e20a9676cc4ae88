package cli

// Notes:
// - Run: we test the observable contract of both commands through Run with
//   injected writers: exit codes, success and failure lines, written files.
// - Config search by name is covered in internal/config; here configs are
//   passed by path.
// - Main is not tested: it only wires os.Args, automaxprocs, and signals.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-textclean/internal/config"
)

const testTrack = "1\n00:00:01,000 --> 00:00:02,000\n<font color=\"#fff\">We lopen naar</font>\n\n" +
	"2\n00:00:02,000 --> 00:00:03,000\n<font color=\"#fff\">de haven.</font>\n"

const testDocument = "Titel\n\nEen inleiding.\n\n1 Begin\nregel een\nregel twee\n"

func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := DefaultEnv("1.2.3")
	env.Stdout = stdout
	env.Stderr = stderr
	return env, stdout, stderr
}

func writeTestFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRun_Usage - Help, version, and argument errors
// ---------------------------------------------------------------------------

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cmd        Command
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no input prints usage", Subtitles, nil, ExitGeneral, "", "Usage: srtclean <input>"},
		{"help", Documents, []string{"-h"}, ExitSuccess, "Usage: mdreflow <input>", ""},
		{"help lists filters for srtclean", Subtitles, []string{"--help"}, ExitSuccess, "--print-filters", ""},
		{"version", Subtitles, []string{"--version"}, ExitSuccess, "srtclean 1.2.3", ""},
		{"unknown flag", Subtitles, []string{"--bogus", "x.srt"}, ExitUsage, "", "invalid flag"},
		{"profile is srtclean only", Documents, []string{"--profile", "none", "x.md"}, ExitUsage, "", "invalid flag"},
		{"too many arguments", Documents, []string{"a", "b", "c"}, ExitUsage, "", "too many arguments"},
		{"negative workers", Subtitles, []string{"-w", "-1", "x.srt"}, ExitUsage, "", "invalid worker count"},
		{"too many workers", Subtitles, []string{"-w", "40", "x.srt"}, ExitUsage, "", "maximum is 32"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := Run(context.Background(), tt.cmd, tt.args, env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want containing %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want containing %q", stderr, tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun_SingleFile - One input, one output
// ---------------------------------------------------------------------------

func TestRun_SingleFile(t *testing.T) {
	t.Parallel()

	t.Run("srtclean default output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeTestFile(t, filepath.Join(dir, "walk.srt"), testTrack)
		env, stdout, stderr := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		out := filepath.Join(dir, "walk_clean.txt")
		if got := readTestFile(t, out); got != "We lopen naar de haven." {
			t.Errorf("output = %q", got)
		}
		if want := "Cleaned text saved to " + out + "\n"; stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("mdreflow explicit output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeTestFile(t, filepath.Join(dir, "boek.md"), testDocument)
		out := filepath.Join(dir, "nieuw", "boek.txt")
		env, _, stderr := newTestEnv()

		if code := Run(context.Background(), Documents, []string{in, out}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		want := "Titel\n\nEen inleiding.\n\n1 Begin\n\nregel een regel twee"
		if got := readTestFile(t, out); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("quiet prints nothing", func(t *testing.T) {
		t.Parallel()

		in := writeTestFile(t, filepath.Join(t.TempDir(), "walk.srt"), testTrack)
		env, stdout, _ := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"-q", in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d", code)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout)
		}
	})

	t.Run("html preview", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeTestFile(t, filepath.Join(dir, "walk.srt"), testTrack)
		env, stdout, stderr := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"--html", "--style", "plain", in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		htmlPath := filepath.Join(dir, "walk_clean.txt.html")
		if page := readTestFile(t, htmlPath); !strings.Contains(page, "<p>We lopen naar de haven.</p>") {
			t.Errorf("page = %q", page)
		}
		if !strings.Contains(stdout.String(), "HTML preview saved to "+htmlPath) {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv()
		code := Run(context.Background(), Subtitles, []string{filepath.Join(t.TempDir(), "nope.srt")}, env)
		if code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want a hint", stderr)
		}
	})

	t.Run("mdreflow rejects invalid utf-8", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeTestFile(t, filepath.Join(dir, "oud.md"), "caf\xe9\n")
		env, _, stderr := newTestEnv()

		if code := Run(context.Background(), Documents, []string{in}, env); code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "UTF-8") {
			t.Errorf("stderr = %q, want decode hint", stderr)
		}
		if _, err := os.Stat(filepath.Join(dir, "oud_clean.md")); !os.IsNotExist(err) {
			t.Error("no output should be written")
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		t.Parallel()

		in := writeTestFile(t, filepath.Join(t.TempDir(), "walk.srt"), testTrack)
		env, _, stderr := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"-p", "klingon", in}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "available: nl-podwalk, none") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("canceled before start", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeTestFile(t, filepath.Join(dir, "walk.srt"), testTrack)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		env, _, _ := newTestEnv()

		if code := Run(ctx, Subtitles, []string{in}, env); code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		if _, err := os.Stat(filepath.Join(dir, "walk_clean.txt")); !os.IsNotExist(err) {
			t.Error("no output should be written")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRun_Directory - Batch processing
// ---------------------------------------------------------------------------

func TestRun_Directory(t *testing.T) {
	t.Parallel()

	t.Run("mirrors tree into output directory", func(t *testing.T) {
		t.Parallel()

		in := t.TempDir()
		writeTestFile(t, filepath.Join(in, "a.srt"), testTrack)
		writeTestFile(t, filepath.Join(in, "sub", "b.SRT"), testTrack)
		writeTestFile(t, filepath.Join(in, "notes.txt"), "ignored")
		writeTestFile(t, filepath.Join(in, "old_clean.srt"), testTrack)
		out := filepath.Join(t.TempDir(), "out")
		env, stdout, stderr := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"-w", "2", in, out}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}

		for _, p := range []string{filepath.Join(out, "a_clean.txt"), filepath.Join(out, "sub", "b_clean.txt")} {
			if got := readTestFile(t, p); got != "We lopen naar de haven." {
				t.Errorf("%s = %q", p, got)
			}
		}
		if _, err := os.Stat(filepath.Join(out, "old_clean_clean.txt")); !os.IsNotExist(err) {
			t.Error("earlier outputs must be skipped")
		}
		if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("one failure does not stop the others", func(t *testing.T) {
		t.Parallel()

		in := t.TempDir()
		writeTestFile(t, filepath.Join(in, "goed.md"), testDocument)
		writeTestFile(t, filepath.Join(in, "slecht.md"), "caf\xe9\n")
		env, stdout, stderr := newTestEnv()

		if code := Run(context.Background(), Documents, []string{in}, env); code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stderr.String(), "FAILED "+filepath.Join(in, "slecht.md")) {
			t.Errorf("stderr = %q", stderr)
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout = %q", stdout)
		}
		readTestFile(t, filepath.Join(in, "goed_clean.md"))
	})

	t.Run("no matching files", func(t *testing.T) {
		t.Parallel()

		in := t.TempDir()
		writeTestFile(t, filepath.Join(in, "readme.md"), "x")
		env, _, _ := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{in}, env); code != ExitIO {
			t.Errorf("exit code = %d, want %d", code, ExitIO)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRun_Config - Config files and filters
// ---------------------------------------------------------------------------

func TestRun_Config(t *testing.T) {
	t.Parallel()

	t.Run("default input directory", func(t *testing.T) {
		t.Parallel()

		in := t.TempDir()
		writeTestFile(t, filepath.Join(in, "a.srt"), testTrack)
		cfgPath := writeTestFile(t, filepath.Join(t.TempDir(), "tc.yaml"), "input:\n  defaultDir: "+in+"\n")
		env, _, stderr := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"-c", cfgPath}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		readTestFile(t, filepath.Join(in, "a_clean.txt"))
	})

	t.Run("config overrides filters", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeTestFile(t, filepath.Join(dir, "walk.srt"), testTrack)
		cfgPath := writeTestFile(t, filepath.Join(dir, "tc.yaml"),
			"filters:\n  inlineStrips:\n    - pattern: 'naar '\n      replace: ''\n")
		env, _, stderr := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"-c", cfgPath, in}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		if got := readTestFile(t, filepath.Join(dir, "walk_clean.txt")); got != "We lopen de haven." {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeTestFile(t, filepath.Join(t.TempDir(), "tc.yaml"), "workers: 99\n")
		env, _, _ := newTestEnv()

		if code := Run(context.Background(), Subtitles, []string{"-c", cfgPath, "x.srt"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv()
		missing := filepath.Join(t.TempDir(), "nope.yaml")

		if code := Run(context.Background(), Subtitles, []string{"-c", missing, "x.srt"}, env); code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "config file not found") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("print filters", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv()
		if code := Run(context.Background(), Subtitles, []string{"--print-filters"}, env); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, stderr)
		}
		for _, want := range []string{"skipPhrases:", "soundKeywords:", "rumoer"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout missing %q:\n%s", want, stdout)
			}
		}
	})
}

func TestResolvePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name       string
		positional []string
		defaultDir string
		wantIn     string
		wantOut    string
		wantErr    bool
	}{
		{name: "input only", positional: []string{"a.srt"}, wantIn: "a.srt"},
		{name: "input and output", positional: []string{"a.srt", "b.txt"}, wantIn: "a.srt", wantOut: "b.txt"},
		{name: "default directory", defaultDir: dir, wantIn: dir},
		{name: "missing default directory", defaultDir: filepath.Join(dir, "nope"), wantErr: true},
		{name: "nothing", wantErr: true},
		{name: "too many", positional: []string{"a", "b", "c"}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Input: config.InputConfig{DefaultDir: tt.defaultDir}}
			in, out, err := resolvePaths(tt.positional, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolvePaths() error = %v, wantErr %v", err, tt.wantErr)
			}
			if in != tt.wantIn || out != tt.wantOut {
				t.Errorf("resolvePaths() = %q, %q, want %q, %q", in, out, tt.wantIn, tt.wantOut)
			}
		})
	}
}
