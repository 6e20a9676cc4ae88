package textclean

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTrack = "1\n00:00:01,000 --> 00:00:02,000\n<font color=\"#ffffff\">Hallo, ik ben Anna</font>\n\n" +
	"2\n00:00:02,000 --> 00:00:03,000\n<font color=\"#ffffff\">en dit is mijn verhaal.</font>\n\n" +
	"3\n00:00:03,000 --> 00:00:04,000\n<font color=\"#ffff00\">Ja, op!</font>\n\n" +
	"4\n00:00:04,000 --> 00:00:05,000\n<font color=\"#ffff00\">Welkom!</font><font color=\"#ffff00\">Kom binnen.</font>\n"

func TestNewSubtitleCleaner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "none profile", opts: []Option{WithProfile("none")}},
		{name: "explicit filters", opts: []Option{WithFilters(Filters{SoundKeywords: []string{"klok"}})}},
		{name: "filters win over profile", opts: []Option{WithProfile("klingon"), WithFilters(Filters{})}},
		{name: "unknown profile", opts: []Option{WithProfile("klingon")}, wantErr: ErrProfileNotFound},
		{name: "bad filter", opts: []Option{WithFilters(Filters{SkipPhrases: []string{"(x"}})}, wantErr: ErrInvalidFilter},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewSubtitleCleaner(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c == nil {
				t.Fatal("NewSubtitleCleaner() returned nil")
			}
		})
	}
}

func TestSubtitleCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("default filters drop the go command", func(t *testing.T) {
		t.Parallel()

		want := "Hallo, ik ben Anna en dit is mijn verhaal.\n\nWelkom! Kom binnen."
		if got := Clean(sampleTrack); got != want {
			t.Errorf("Clean() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("none profile keeps it", func(t *testing.T) {
		t.Parallel()

		c, err := NewSubtitleCleaner(WithProfile("none"))
		if err != nil {
			t.Fatal(err)
		}
		want := "Hallo, ik ben Anna en dit is mijn verhaal.\n\nJa, op! Welkom! Kom binnen."
		if got := c.Clean(sampleTrack); got != want {
			t.Errorf("Clean() =\n%q\nwant\n%q", got, want)
		}
	})

	t.Run("sound cue entry", func(t *testing.T) {
		t.Parallel()

		if got := Clean("1\n00:00:01,000 --> 00:00:02,000\n<font color=\"c1\">(GRRR)</font>\n\n"); got != "" {
			t.Errorf("Clean() = %q, want empty", got)
		}
	})

	t.Run("second pass produces nothing new", func(t *testing.T) {
		t.Parallel()

		if got := Clean(Clean(sampleTrack)); got != "" {
			t.Errorf("Clean(Clean()) = %q, want empty", got)
		}
	})
}

func TestSubtitleCleaner_DefaultOutputPath(t *testing.T) {
	t.Parallel()

	c, err := NewSubtitleCleaner()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct{ in, want string }{
		{"talk.srt", "talk_clean.txt"},
		{filepath.Join("a", "b", "talk.nl.srt"), filepath.Join("a", "b", "talk.nl_clean.txt")},
		{"noext", "noext_clean.txt"},
	}
	for _, tt := range tests {
		tt := tt
		if got := c.DefaultOutputPath(tt.in); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubtitleCleaner_ProcessFile(t *testing.T) {
	t.Parallel()

	c, err := NewSubtitleCleaner()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("utf-8 input, default output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "talk.srt")
		if err := os.WriteFile(in, []byte(sampleTrack), 0o644); err != nil {
			t.Fatal(err)
		}

		res, err := c.ProcessFile(in, "")
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}
		if res.OutputPath != filepath.Join(dir, "talk_clean.txt") {
			t.Errorf("OutputPath = %q", res.OutputPath)
		}
		if res.FallbackUsed {
			t.Error("FallbackUsed = true for UTF-8 input")
		}
		data, err := os.ReadFile(res.OutputPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != res.Text || !strings.HasPrefix(res.Text, "Hallo, ik ben Anna") {
			t.Errorf("written = %q, result = %q", data, res.Text)
		}
	})

	t.Run("latin-1 input is decoded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "oud.srt")
		latin1 := "1\n00:00:01,000 --> 00:00:02,000\n<font color=\"a\">Het caf\xe9 is dicht.</font>\n"
		if err := os.WriteFile(in, []byte(latin1), 0o644); err != nil {
			t.Fatal(err)
		}
		out := filepath.Join(dir, "out", "oud.txt")

		res, err := c.ProcessFile(in, out)
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}
		if !res.FallbackUsed {
			t.Error("FallbackUsed = false, want true")
		}
		if res.Text != "Het café is dicht." {
			t.Errorf("Text = %q", res.Text)
		}
		if res.OutputPath != out {
			t.Errorf("OutputPath = %q, want %q", res.OutputPath, out)
		}
	})

	t.Run("missing input writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := c.ProcessFile(filepath.Join(dir, "missing.srt"), "")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if entries, _ := os.ReadDir(dir); len(entries) != 0 {
			t.Errorf("expected no files, found %d", len(entries))
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "talk.srt")
		if err := os.WriteFile(in, []byte(sampleTrack), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := c.ProcessFile(in, filepath.Join(in, "nested.txt"))
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error = %v, want ErrWriteOutput", err)
		}
	})
}
