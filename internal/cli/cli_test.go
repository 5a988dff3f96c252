package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/aoc2022/pkg/crane"
	apperr "github.com/matzehuels/aoc2022/pkg/errors"
	"github.com/matzehuels/aoc2022/pkg/observability"
	"github.com/matzehuels/aoc2022/pkg/pipeline"
)

const day5Sample = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// isolate points the XDG directories at temporary ones so tests never touch
// the real cache or config.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)
}

func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeResults(t *testing.T, out string) []pipeline.Result {
	t.Helper()
	var results []pipeline.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return results
}

func TestRunDay5(t *testing.T) {
	isolate(t)
	input := writeInput(t, "day5.txt", day5Sample)

	out, err := execute(t, "", "run", "5", "-i", input, "-o", "json")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	results := decodeResults(t, out)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Answer != "CMZ" || results[1].Answer != "MCD" {
		t.Errorf("answers = %q, %q; want CMZ, MCD", results[0].Answer, results[1].Answer)
	}
}

func TestRunCachesAnswers(t *testing.T) {
	isolate(t)
	input := writeInput(t, "day5.txt", day5Sample)

	if _, err := execute(t, "", "run", "5", "1", "-i", input); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	out, err := execute(t, "", "run", "5", "1", "-i", input, "-o", "json")
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if r := decodeResults(t, out); !r[0].Cached || r[0].Answer != "CMZ" {
		t.Errorf("second run = %+v, want cached CMZ", r[0])
	}

	out, err = execute(t, "", "run", "5", "1", "-i", input, "-o", "json", "--no-cache")
	if err != nil {
		t.Fatalf("no-cache run error: %v", err)
	}
	if r := decodeResults(t, out); r[0].Cached {
		t.Error("--no-cache must not read the cache")
	}
}

func TestRunFromInputDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day5.txt"), []byte(day5Sample), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := writeConfig(t, "input_dir = \""+filepath.ToSlash(dir)+"\"\n")

	out, err := execute(t, "", "--config", cfg, "run", "5", "2", "-o", "yaml")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out, "answer: MCD") {
		t.Errorf("yaml output missing answer:\n%s", out)
	}
}

func TestRunStdin(t *testing.T) {
	isolate(t)

	out, err := execute(t, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n", "run", "6", "1", "-i", "-")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out, "day 6 part 1") || !strings.Contains(out, "7") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRunErrors(t *testing.T) {
	isolate(t)
	good := writeInput(t, "day5.txt", day5Sample)
	broken := writeInput(t, "broken.txt", day5Sample+"move 9 from 1 to 2\n")

	tests := []struct {
		name string
		args []string
		code apperr.Code
	}{
		{"bad day", []string{"run", "five", "-i", good}, apperr.ErrCodeInvalidDay},
		{"day out of range", []string{"run", "26", "-i", good}, apperr.ErrCodeInvalidDay},
		{"bad part", []string{"run", "5", "3", "-i", good}, apperr.ErrCodeInvalidPart},
		{"bad format", []string{"run", "5", "-i", good, "-o", "xml"}, apperr.ErrCodeInvalidFormat},
		{"missing input", []string{"run", "5", "-i", filepath.Join(t.TempDir(), "none.txt")}, apperr.ErrCodeFileNotFound},
		{"unsolved day", []string{"run", "20", "-i", good}, apperr.ErrCodeNotFound},
		{"impossible move", []string{"run", "5", "1", "-i", broken}, apperr.ErrCodeMalformedState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if !apperr.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCrates(t *testing.T) {
	isolate(t)
	input := writeInput(t, "day5.txt", day5Sample)

	out, err := execute(t, "", "crates", "-i", input)
	if err != nil {
		t.Fatalf("crates error: %v", err)
	}
	if strings.TrimSpace(out) != "CMZ" {
		t.Errorf("crates = %q, want CMZ", out)
	}

	out, err = execute(t, "", "crates", "-i", input, "--policy", "block", "--show")
	if err != nil {
		t.Fatalf("crates --show error: %v", err)
	}
	for _, want := range []string{"[D]", "[M]", " 1   2   3", "MCD"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCratesLayoutFlags(t *testing.T) {
	isolate(t)
	input := writeInput(t, "wide.txt", " [A]  \n [B]   [C]\n  1     2  \n\nmove 2 from 1 to 2\n")

	out, err := execute(t, "", "crates", "-i", input, "--slot-width", "6", "--label-offset", "2", "-p", "block")
	if err != nil {
		t.Fatalf("crates error: %v", err)
	}
	if strings.TrimSpace(out) != "A" {
		t.Errorf("crates = %q, want A", out)
	}
}

func TestCratesPolicyFromConfig(t *testing.T) {
	isolate(t)
	input := writeInput(t, "day5.txt", day5Sample)
	cfg := writeConfig(t, "[crates]\npolicy = \"block\"\n")

	out, err := execute(t, "", "--config", cfg, "crates", "-i", input)
	if err != nil {
		t.Fatalf("crates error: %v", err)
	}
	if strings.TrimSpace(out) != "MCD" {
		t.Errorf("crates = %q, want MCD", out)
	}
}

func TestCratesErrors(t *testing.T) {
	isolate(t)
	input := writeInput(t, "day5.txt", day5Sample)

	if _, err := execute(t, "", "crates", "-i", input, "--policy", "sideways"); err == nil {
		t.Error("unknown policy should fail")
	}
	if _, err := execute(t, "", "crates", "-i", input, "--slot-width", "2"); !apperr.IsParse(err) {
		t.Errorf("narrow slot error = %v, want PARSE_ERROR", err)
	}
}

func TestList(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, want := range []string{"Calorie Counting", "Supply Stacks", "Tuning Trouble"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestCachePath(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the command name")
	}
}

func TestParseDayPart(t *testing.T) {
	tests := []struct {
		args      []string
		day, part int
		wantErr   bool
	}{
		{[]string{"5"}, 5, 0, false},
		{[]string{"5", "2"}, 5, 2, false},
		{[]string{"0"}, 0, 0, true},
		{[]string{"x"}, 0, 0, true},
		{[]string{"5", "two"}, 0, 0, true},
	}

	for _, tt := range tests {
		day, part, err := parseDayPart(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDayPart(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if day != tt.day || part != tt.part {
			t.Errorf("parseDayPart(%v) = %d, %d", tt.args, day, part)
		}
	}
}

func TestFormatStacks(t *testing.T) {
	got := formatStacks(crane.Stacks{{'Z', 'N'}, {'M', 'C', 'D'}, {'P'}})
	want := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3"
	if got != want {
		t.Errorf("formatStacks() =\n%s\nwant\n%s", got, want)
	}
}
