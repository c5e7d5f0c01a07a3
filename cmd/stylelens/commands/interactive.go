package commands

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csmtools/stylelens/internal/classify"
	"github.com/csmtools/stylelens/internal/config"
	"github.com/csmtools/stylelens/internal/principle"
)

// mappingPreviewLimit bounds the mapping preview shown before the
// customization menu.
const mappingPreviewLimit = 10

// runInteractive drives the prompt flow used when run is invoked with
// no positional arguments.
func (rc *RunCommand) runInteractive(cmd *cobra.Command, cfg *config.Config, classifier *classify.Classifier) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "=== Stylelens CSM Analysis ===")
	fmt.Fprintln(out)

	directory := prompt(in, out, "Enter the path to the Java source directory to analyze: ")
	if directory == "" {
		fmt.Fprintln(out, "No directory specified. Exiting.")

		return nil
	}

	output := prompt(in, out, "Enter output xlsx file path (press Enter for default): ")
	if output == "" {
		output = rc.defaultOutputPath(cfg.Output.Dir)
	}

	fmt.Fprintln(out)

	customize := strings.ToLower(prompt(in, out, "Do you want to customize CSM principle mappings? (y/n): "))
	if customize == "y" || customize == "yes" {
		customizeMappings(in, out, classifier)
	}

	return rc.perform(cmd, cfg, classifier, directory, output)
}

// customizeMappings loops over the mapping customization menu until
// the operator chooses to continue.
func customizeMappings(in *bufio.Scanner, out io.Writer, classifier *classify.Classifier) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Current CSM Principles:")

	for _, p := range principle.All() {
		fmt.Fprintf(out, "  - %s\n", principle.Label(p))
	}

	fmt.Fprintln(out)
	printMappingPreview(out, classifier)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Mapping customization options:")
	fmt.Fprintln(out, "1. Add new mapping")
	fmt.Fprintln(out, "2. Remove existing mapping")
	fmt.Fprintln(out, "3. View all mappings")
	fmt.Fprintln(out, "4. Continue with current mappings")

	for {
		choice := prompt(in, out, "Enter choice (1-4): ")

		switch choice {
		case "1":
			addMapping(in, out, classifier)
		case "2":
			removeMapping(in, out, classifier)
		case "3":
			printAllMappings(out, classifier)
		case "4":
			return
		case "":
			// EOF on stdin: stop prompting.
			return
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter 1-4.")
		}
	}
}

func addMapping(in *bufio.Scanner, out io.Writer, classifier *classify.Classifier) {
	rule := prompt(in, out, "Enter Checkstyle rule name: ")
	if rule == "" {
		fmt.Fprintln(out, "Rule name cannot be empty.")

		return
	}

	all := principle.All()

	fmt.Fprintln(out, "Available CSM Principles:")

	for i, p := range all {
		fmt.Fprintf(out, "  %d. %s\n", i+1, principle.Label(p))
	}

	answer := prompt(in, out, fmt.Sprintf("Enter principle number (1-%d): ", len(all)))

	index, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintln(out, "Invalid number format.")

		return
	}

	if index < 1 || index > len(all) {
		fmt.Fprintln(out, "Invalid principle number.")

		return
	}

	chosen := all[index-1]
	classifier.Add(rule, chosen)
	fmt.Fprintf(out, "Added mapping: %s -> %s\n", rule, principle.Label(chosen))
}

func removeMapping(in *bufio.Scanner, out io.Writer, classifier *classify.Classifier) {
	rule := prompt(in, out, "Enter Checkstyle rule name to remove: ")

	if classifier.Has(rule) {
		classifier.Remove(rule)
		fmt.Fprintf(out, "Removed mapping for: %s\n", rule)
	} else {
		fmt.Fprintf(out, "No mapping found for: %s\n", rule)
	}
}

func printMappingPreview(out io.Writer, classifier *classify.Classifier) {
	rules := classifier.RuleIDs()
	sort.Strings(rules)

	fmt.Fprintf(out, "Current mappings (showing first %d):\n", mappingPreviewLimit)

	for i, rule := range rules {
		if i >= mappingPreviewLimit {
			break
		}

		fmt.Fprintf(out, "  %s -> %s\n", rule, classifier.Classify(rule))
	}

	if len(rules) > mappingPreviewLimit {
		fmt.Fprintf(out, "  ... and %d more mappings\n", len(rules)-mappingPreviewLimit)
	}
}

func printAllMappings(out io.Writer, classifier *classify.Classifier) {
	rules := classifier.RuleIDs()
	sort.Strings(rules)

	fmt.Fprintln(out, "Current Checkstyle rule to CSM principle mappings:")

	for _, rule := range rules {
		fmt.Fprintf(out, "  %s -> %s\n", rule, classifier.Classify(rule))
	}
}

// prompt writes the question and returns the trimmed next input line,
// or empty on EOF.
func prompt(in *bufio.Scanner, out io.Writer, question string) string {
	fmt.Fprint(out, question)

	if !in.Scan() {
		return ""
	}

	return strings.TrimSpace(in.Text())
}
