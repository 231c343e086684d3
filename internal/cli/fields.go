package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kdambrauskas/plancheck/internal/errors"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the required field catalog",
	Long: `Print every required field with its category and description, in
schema order. Useful as a reference while filling fields manually.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFlag, _ := cmd.Flags().GetString("category")
		out := cmd.OutOrStdout()

		sch := schema.Default()
		categories := schema.Categories()
		if categoryFlag != "" {
			found := false
			for _, c := range categories {
				if string(c) == categoryFlag {
					categories = []schema.Category{c}
					found = true
					break
				}
			}
			if !found {
				return errors.NewArgumentError(
					fmt.Sprintf("unknown category %q", categoryFlag),
					"use one of: company, project, financial, technical, competition, risk",
				)
			}
		}

		bold := color.New(color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()

		for _, cat := range categories {
			fields := sch.ByCategory(cat)
			if len(fields) == 0 {
				continue
			}
			fmt.Fprintf(out, "%s (%d fields)\n", bold(string(cat)), len(fields))
			for _, f := range fields {
				fmt.Fprintf(out, "  %-28s %s\n", f.Name, dim(schema.Describe(f)))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	fieldsCmd.Flags().String("category", "", "Only show fields of one category")
}
