package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the ui512calc binary and exercises it the way a user
// would.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "ui512calc"
	if runtime.GOOS == "windows" {
		binName = "ui512calc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/ui512calc")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build ui512calc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "multiply quiet",
			args:     []string{"-op", "mul", "-a", "12345", "-b", "678", "-q"},
			wantOut:  "8369910 0",
			wantCode: 0,
		},
		{
			name:     "divide styled",
			args:     []string{"-op", "div", "-a", "100", "-b", "7", "-no-color"},
			wantOut:  "quotient: 14",
			wantCode: 0,
		},
		{
			name:     "hex operands",
			args:     []string{"-op", "add", "-a", "0xff", "-b", "1", "-base", "16", "-q"},
			wantOut:  "100 0",
			wantCode: 0,
		},
		{
			name:     "divide by zero",
			args:     []string{"-op", "div", "-a", "1", "-b", "0", "-q"},
			wantOut:  "division by zero",
			wantCode: 2,
		},
		{
			name:     "self test",
			args:     []string{"-selftest", "10", "-seed", "1", "-q"},
			wantOut:  "all backends agreed",
			wantCode: 0,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "version flag",
			args:     []string{"--version"},
			wantOut:  "ui512calc",
			wantCode: 0,
		},
		{
			name:     "missing operands",
			args:     []string{"-op", "mul"},
			wantOut:  "required",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed unexpectedly: %v\noutput: %s", err, outStr)
				}
			} else {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("expected exit code %d, got err %v\noutput: %s", tt.wantCode, err, outStr)
				}
				if exitErr.ExitCode() != tt.wantCode {
					t.Errorf("exit code = %d, want %d\noutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
