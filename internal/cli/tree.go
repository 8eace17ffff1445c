package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goxmldom/internal/logging"
	"github.com/yaklabco/goxmldom/internal/ui/pretty"
	"github.com/yaklabco/goxmldom/pkg/fsutil"
	"github.com/yaklabco/goxmldom/pkg/xmldetect"
	"github.com/yaklabco/goxmldom/pkg/xmldom"
	"github.com/yaklabco/goxmldom/pkg/xmlparse"
)

func newTreeCommand() *cobra.Command {
	var strictRoot bool
	var debugDump bool

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the entity tree of an XML file",
		Long: `Parse an XML file and print its entity tree.

Tags render with attributes inline; text and comments render as child
nodes. Use --dump for the flat debug view with explicit entity kinds.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], strictRoot, debugDump)
		},
	}

	cmd.Flags().BoolVar(&strictRoot, "strict-root", false, "require exactly one root element")
	cmd.Flags().BoolVar(&debugDump, "dump", false, "print the flat debug dump instead of the tree")

	return cmd
}

func runTree(cmd *cobra.Command, path string, strictRoot, debugDump bool) error {
	content, _, err := fsutil.ReadFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	if !xmldetect.IsXML(path, content) {
		logging.Default().Warn("file does not look like XML", logging.FieldPath, path)
	}

	var parseOpts []xmlparse.Option
	if strictRoot {
		parseOpts = append(parseOpts, xmlparse.WithSingleRoot())
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	root, err := xmldom.Parse(content, parseOpts...)
	if err != nil {
		fmt.Fprint(out, styles.FormatParseError(path, err, content))
		return errors.Join(ErrParseIssues, err)
	}

	if debugDump {
		return root.Dump(out)
	}

	fmt.Fprint(out, styles.FormatTree(root, pretty.TerminalWidth(out)))
	return nil
}
