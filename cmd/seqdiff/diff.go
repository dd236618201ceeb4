package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/htmlreport"
	"github.com/seqdiff/seqdiff/internal/log"
	"github.com/seqdiff/seqdiff/textdiff"
)

var (
	diffJSON    bool
	diffHTMLOut string
	diffLang    string
	diffSummary bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Compare two files position by position",
	Long: `Compare two files position by position.

Line i of <before> is compared to line i of <after> and classified as kept,
changed, removed or added. No realignment takes place: an inserted line shifts
all following positions into changes. With --json, the files must contain a
top-level JSON array and the array elements are compared instead of lines.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		before, after := args[0], args[1]

		xb, err := os.ReadFile(before)
		if err != nil {
			return fmt.Errorf("reading %s: %v", before, err)
		}
		yb, err := os.ReadFile(after)
		if err != nil {
			return fmt.Errorf("reading %s: %v", after, err)
		}
		log.Debugf("loaded %s (%s) and %s (%s)",
			before, humanize.Bytes(uint64(len(xb))), after, humanize.Bytes(uint64(len(yb))))

		var x, y []string
		if diffJSON {
			if x, err = jsonElements(xb); err != nil {
				return fmt.Errorf("parsing %s: %v", before, err)
			}
			if y, err = jsonElements(yb); err != nil {
				return fmt.Errorf("parsing %s: %v", after, err)
			}
		} else {
			x = textdiff.Lines(string(xb))
			y = textdiff.Lines(string(yb))
		}
		edits := textdiff.Compare(x, y)

		if diffHTMLOut != "" {
			if diffJSON {
				return errors.New("--json and --html can't be combined")
			}
			opt := htmlreport.LangFromFilename(before)
			if diffLang != "" {
				opt = htmlreport.Lang(diffLang)
			}
			b, err := htmlreport.Render(before+" vs "+after, string(xb), string(yb), opt)
			if err != nil {
				return fmt.Errorf("rendering report: %v", err)
			}
			if err := os.WriteFile(diffHTMLOut, b, 0644); err != nil {
				return fmt.Errorf("writing report: %v", err)
			}
		} else {
			fmt.Print(textdiff.Format(edits))
		}

		keeps, changes, removes, adds := textdiff.Stats(edits)
		if diffSummary {
			fmt.Printf("%d kept, %d changed, %d removed, %d added\n", keeps, changes, removes, adds)
		}
		if changes+removes+adds > 0 {
			exitStatus = 1
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "compare top-level JSON array elements instead of lines")
	diffCmd.Flags().StringVar(&diffHTMLOut, "html", "", "write an HTML report to the given file instead of printing")
	diffCmd.Flags().StringVar(&diffLang, "lang", "", "language for syntax highlighting in the HTML report")
	diffCmd.Flags().BoolVar(&diffSummary, "summary", false, "print edit counts after the diff")
}
