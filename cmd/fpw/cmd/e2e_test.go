package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// Reset flags to prevent accumulation between runs
	verbose, configFile = false, ""
	inputKind, inputName, inputUnits, inputSheet, inputSets = "", "", "", "", nil
	outputDir, writeWizard, noLicense = "", false, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateE2E(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantFiles   []string
	}{
		{
			name:        "chip resistor preset",
			args:        []string{"generate", "-o", dir, "--type", "RESC", "--name", "?RESC1608X55N"},
			wantContain: []string{"RESC", "RESC1608X55N", "2 pads"},
			wantFiles:   []string{"RESC1608X55N.fp"},
		},
		{
			name:        "lower case kind with wizard file",
			args:        []string{"generate", "-o", dir, "-w", "--type", "qfn", "--name", "?QFN50P400X400X90-25N"},
			wantContain: []string{"QFN50P400X400X90-25N.fpw"},
			wantFiles:   []string{"QFN50P400X400X90-25N.fp", "QFN50P400X400X90-25N.fpw"},
		},
		{
			name: "override breaks clearance",
			args: []string{"generate", "-o", dir, "--type", "RESC", "--name", "?RESC2012X70N",
				"--set", "pitch_x=1.0", "--set", "pad_length=1.0", "--set", "pad_clearance=0.5"},
			wantErr:     true,
			wantContain: []string{"failed the design rule check", "No footprint was written"},
		},
		{
			name:    "no input",
			args:    []string{"generate", "-o", dir},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			args:    []string{"generate", "-o", dir, "--type", "SOT23", "--name", "X"},
			wantErr: true,
		},
		{
			name:    "unknown field",
			args:    []string{"generate", "-o", dir, "--type", "SO", "--name", "?SOIC127P600X175-8N", "--set", "colour=red"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, logs, err := execute(t, tt.args...)

			if tt.wantErr && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v\nOutput: %s\nLogs: %s", err, output, logs)
				return
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
			for _, name := range tt.wantFiles {
				if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
					t.Errorf("Expected file %s: %v", name, err)
				}
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "RESC2012X70N.fp")); !os.IsNotExist(err) {
		t.Errorf("Footprint written despite violations: %v", err)
	}
}

func TestCheckE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "clean preset",
			args:        []string{"check", "--type", "DIOMELF", "--name", "?DIOMELF1911L"},
			wantContain: []string{"DIOMELF1911L"},
		},
		{
			name:        "courtyard too small",
			args:        []string{"check", "--type", "DIOMELF", "--name", "?DIOMELF1911L", "--set", "courtyard_length=0.1"},
			wantErr:     true,
			wantContain: []string{"courtyard clearance"},
		},
		{
			name:    "malformed override",
			args:    []string{"check", "--type", "SO", "--set", "pitch_y=wide"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, _, err := execute(t, tt.args...)
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestWizardE2E(t *testing.T) {
	dir := t.TempDir()
	wiz := filepath.Join(dir, "so8.fpw")
	fp := filepath.Join(dir, "so8.fp")

	output, _, err := execute(t, "wizard", "new", "--type", "SO", "--name", "?SOIC127P600X175-8N", wiz)
	if err != nil {
		t.Fatalf("wizard new: %v", err)
	}
	if !strings.Contains(output, "pitch_y") {
		t.Errorf("wizard new output missing fields:\n%s", output)
	}

	output, _, err = execute(t, "wizard", "show", wiz)
	if err != nil {
		t.Fatalf("wizard show: %v", err)
	}
	if !strings.Contains(output, "SOIC127P600X175-8N") {
		t.Errorf("wizard show output missing name:\n%s", output)
	}

	output, _, err = execute(t, "wizard", "convert", "--no-license", wiz)
	if err != nil {
		t.Fatalf("wizard convert: %v", err)
	}
	if !strings.HasPrefix(output, "Element[") {
		t.Errorf("expected footprint on stdout, got:\n%s", output)
	}
	if n := strings.Count(output, "\tPad["); n != 8 {
		t.Errorf("got %d pads, want 8", n)
	}

	if _, _, err := execute(t, "wizard", "convert", wiz, fp); err != nil {
		t.Fatalf("wizard convert to file: %v", err)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# ") {
		t.Errorf("expected license block, got:\n%s", data)
	}

	// Regenerating from the wizard file gives the same footprint.
	if _, _, err := execute(t, "generate", "-o", dir, wiz); err != nil {
		t.Fatalf("generate: %v", err)
	}
	again, err := os.ReadFile(filepath.Join(dir, "SOIC127P600X175-8N.fp"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("generate and convert disagree")
	}

	if _, _, err := execute(t, "wizard", "new", "--type", "SO", "--name", "?NOPE", wiz); err == nil {
		t.Errorf("expected error for unknown preset")
	}
}

func TestPresetsE2E(t *testing.T) {
	output, _, err := execute(t, "presets", "list", "SO")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "SOIC127P600X175-8N") || strings.Contains(output, "RESC") {
		t.Errorf("unexpected list output:\n%s", output)
	}

	output, _, err = execute(t, "presets", "show", "resc", "RESC1608X55N")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(output, "package_body_length") {
		t.Errorf("show output missing fields:\n%s", output)
	}

	if _, _, err := execute(t, "presets", "show", "RESC", "RESC9999"); err == nil {
		t.Errorf("expected error for unknown preset")
	}

	sheet := filepath.Join(t.TempDir(), "chips.xlsx")
	if _, _, err := execute(t, "presets", "export", sheet, "RESC"); err != nil {
		t.Fatal(err)
	}
	output, _, err = execute(t, "check", "--sheet", sheet)
	if err != nil {
		t.Fatalf("check --sheet: %v\n%s", err, output)
	}
	if !strings.Contains(output, "RESC1608X55N") {
		t.Errorf("check output missing preset:\n%s", output)
	}
}

func TestInfoE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantContain []string
	}{
		{"kinds", []string{"kinds"}, []string{"KIND", "DIOMELF", "CON_DIL", "TO92"}},
		{"config", []string{"config", "show"}, []string{"output_dir", "license_block = true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}
