package checkstyle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExecEngine runs the Checkstyle CLI through the JVM and decodes its
// XML audit output. A non-zero exit with a parseable audit document is
// the engine's way of reporting violations, not a failure.
type ExecEngine struct {
	// JarPath locates the checkstyle-all jar.
	JarPath string
	// ConfigPath locates the ruleset XML (e.g. google_checks.xml).
	ConfigPath string
	// Java overrides the JVM binary; empty means "java" from PATH.
	Java string
}

// ErrEngineFailed indicates the Checkstyle process failed without
// producing a decodable audit document.
var ErrEngineFailed = errors.New("checkstyle engine failed")

// Analyze implements Engine by invoking the Checkstyle CLI once for the
// whole batch.
func (e *ExecEngine) Analyze(ctx context.Context, files []string) ([]Finding, error) {
	if len(files) == 0 {
		return nil, nil
	}

	java := e.Java
	if java == "" {
		java = "java"
	}

	args := []string{"-jar", e.JarPath, "-c", e.ConfigPath, "-f", "xml"}
	args = append(args, files...)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, java, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	findings, decodeErr := DecodeAudit(bytes.NewReader(stdout.Bytes()))
	if decodeErr != nil {
		if runErr != nil {
			return nil, fmt.Errorf("%w: %v: %s", ErrEngineFailed, runErr, stderr.String())
		}

		return nil, decodeErr
	}

	return findings, nil
}

// ReportEngine decodes an existing Checkstyle XML report instead of
// running the JVM, for ingesting audits produced elsewhere (CI jobs).
// The file list is ignored; the report already fixes the file set.
type ReportEngine struct {
	// Path locates the XML audit report.
	Path string
}

// Analyze implements Engine by reading the report file.
func (e *ReportEngine) Analyze(_ context.Context, _ []string) ([]Finding, error) {
	f, err := os.Open(e.Path)
	if err != nil {
		return nil, fmt.Errorf("open checkstyle report: %w", err)
	}
	defer f.Close()

	return DecodeAudit(f)
}
