package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goxmldom/internal/logging"
	"github.com/yaklabco/goxmldom/internal/ui/pretty"
	"github.com/yaklabco/goxmldom/pkg/runner"
)

// ErrParseIssues is returned when check finds files that fail to parse.
var ErrParseIssues = errors.New("parse issues found")

type checkFlags struct {
	jobs       int
	strictRoot bool
	ignore     []string
	noContext  bool
	summary    bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check XML files for well-formedness",
		Long: `Check XML files for well-formedness.

By default, checks all XML files (.xml, .xsd, .xsl, .svg, .plist) in the
current directory and subdirectories. Specify paths to check specific
files or directories.

Examples:
  goxmldom check                 # Check current directory
  goxmldom check data/           # Check a directory
  goxmldom check feed.xml        # Check a single file
  goxmldom check --strict-root   # Require exactly one root element
  goxmldom check --jobs 8        # Limit worker concurrency`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.strictRoot, "strict-root", false, "require exactly one root element per document")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a full summary block instead of one line")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	opts := runner.OptionsFromConfig(cfg)
	opts.Paths = args
	if cmd.Flags().Changed("jobs") {
		opts.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("strict-root") {
		opts.StrictRoot = flags.strictRoot
	}
	opts.ExcludeGlobs = append(opts.ExcludeGlobs, flags.ignore...)

	logger.Debug("starting check run",
		logging.FieldPaths, opts.Paths,
		logging.FieldJobs, opts.Jobs,
		logging.FieldStrictRoot, opts.StrictRoot,
	)

	result, err := runner.Run(cmd.Context(), opts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	for _, outcome := range result.Files {
		if outcome.Err == nil {
			continue
		}
		var source []byte
		if !flags.noContext {
			// Re-read for context; a failure here just drops the snippet.
			source, _ = os.ReadFile(outcome.Path)
		}
		fmt.Fprint(out, styles.FormatParseError(outcome.Path, outcome.Err, source))
	}

	if flags.summary {
		for _, outcome := range result.Files {
			if outcome.Err != nil {
				continue
			}
			fmt.Fprintln(out, styles.FormatFileHeader(outcome.Path, outcome.Tags))
		}
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if !result.Clean() {
		return ErrParseIssues
	}
	return nil
}
