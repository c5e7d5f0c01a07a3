// Package commands implements CLI command handlers for stylelens.
package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/csmtools/stylelens/internal/checkstyle"
	"github.com/csmtools/stylelens/internal/classify"
	"github.com/csmtools/stylelens/internal/config"
	"github.com/csmtools/stylelens/internal/report"
	"github.com/csmtools/stylelens/internal/violation"
)

// outputTimestampLayout names default reports, e.g.
// csm_analysis_report_20260827_120000.xlsx.
const outputTimestampLayout = "20060102_150405"

// RunCommand holds configuration and flags for the run command.
type RunCommand struct {
	configPath string
	xmlReport  string
	jarPath    string
	checksPath string
	noColor    bool

	now func() time.Time
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{now: time.Now}

	cmd := &cobra.Command{
		Use:   "run [directory] [output.xlsx]",
		Short: "Analyze a directory and generate a report",
		Long: "Analyze Java sources under a directory with Checkstyle, classify\n" +
			"violations under CSM principles, and write an xlsx report.\n" +
			"With no arguments an interactive prompt flow is entered.",
		Args: cobra.MaximumNArgs(2),
		RunE: rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Config file path (default: .stylelens.yaml in CWD or $HOME)")
	cmd.Flags().StringVar(&rc.xmlReport, "xml-report", "", "Use an existing Checkstyle XML report instead of running the JVM")
	cmd.Flags().StringVar(&rc.jarPath, "checkstyle-jar", "", "Path to the checkstyle-all jar")
	cmd.Flags().StringVar(&rc.checksPath, "checks", "", "Path to the Checkstyle ruleset XML")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored summary output")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}

	rc.applyFlagOverrides(cfg)

	classifier := cfg.BuildClassifier()

	if len(args) == 0 {
		return rc.runInteractive(cmd, cfg, classifier)
	}

	directory := args[0]

	output := ""
	if len(args) > 1 {
		output = args[1]
	}

	if output == "" {
		output = rc.defaultOutputPath(cfg.Output.Dir)
	}

	return rc.perform(cmd, cfg, classifier, directory, output)
}

func (rc *RunCommand) applyFlagOverrides(cfg *config.Config) {
	if rc.jarPath != "" {
		cfg.Checkstyle.Jar = rc.jarPath
	}

	if rc.checksPath != "" {
		cfg.Checkstyle.Checks = rc.checksPath
	}

	if rc.xmlReport != "" {
		cfg.Checkstyle.Report = rc.xmlReport
	}
}

// perform runs the full pipeline: discover, analyze, normalize,
// aggregate, emit.
func (rc *RunCommand) perform(
	cmd *cobra.Command,
	cfg *config.Config,
	classifier *classify.Classifier,
	directory string,
	output string,
) error {
	quiet := isQuiet(cmd)
	progressWriter := cmd.ErrOrStderr()

	progressf(quiet, progressWriter, "analyzing %s", directory)

	files, err := checkstyle.DiscoverJavaFiles(directory)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "found %d Java files", len(files))

	assembler := report.NewAssembler(rc.engine(cfg), violation.NewNormalizer(classifier))

	result, err := assembler.Run(context.Background(), files)
	if err != nil {
		return err
	}

	err = report.WriteWorkbook(result, output)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "report written to %s", output)

	if !quiet {
		report.WriteSummary(cmd.OutOrStdout(), result, rc.noColor)
	}

	return nil
}

// engine selects the analysis engine: a pre-produced XML report when
// configured, the Checkstyle CLI otherwise.
func (rc *RunCommand) engine(cfg *config.Config) checkstyle.Engine {
	if cfg.Checkstyle.Report != "" {
		return &checkstyle.ReportEngine{Path: cfg.Checkstyle.Report}
	}

	return &checkstyle.ExecEngine{
		JarPath:    cfg.Checkstyle.Jar,
		ConfigPath: cfg.Checkstyle.Checks,
		Java:       cfg.Checkstyle.Java,
	}
}

func (rc *RunCommand) defaultOutputPath(dir string) string {
	name := "csm_analysis_report_" + rc.now().Format(outputTimestampLayout) + ".xlsx"

	return filepath.Join(dir, name)
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return false
	}

	return quiet
}

func progressf(quiet bool, writer io.Writer, format string, args ...any) {
	if quiet {
		return
	}

	_, _ = fmt.Fprintf(writer, "progress: "+format+"\n", args...)
}
