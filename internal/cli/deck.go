package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/emoji"
)

func newDeckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Inspect deck files",
		Long: `List and validate deck files.

A deck is a YAML file holding job postings (for students) and candidate
profiles (for employers). Records without an id get a generated one.`,
	}

	cmd.AddCommand(newDeckListCommand())
	cmd.AddCommand(newDeckValidateCommand())

	return cmd
}

func newDeckListCommand() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list [deck.yaml]",
		Short: "List the cards of a deck",
		Long: `List the cards a role would swipe through, in deck order.

Without a file the configured catalog paths are used, or the built-in
sample deck.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()
			c, err := loadCatalog(deckPaths(args, cfg), cfg.Catalog.EnableDefaults)
			if err != nil {
				return err
			}

			r := c.Role
			if cmd.Flag("role").Changed || r == "" {
				if r, err = catalog.ParseRole(firstNonEmpty(role, cfg.Catalog.Role)); err != nil {
					return err
				}
			}
			return runDeckList(cmd.OutOrStdout(), c, r)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "who is browsing (student, employer)")

	return cmd
}

func newDeckValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate deck files",
		Long: `Validate one or more deck YAML files.

Checks YAML syntax, required fields, match score ranges, and that no two
records share an id.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeckValidate(cmd.OutOrStdout(), args)
		},
	}
}

func runDeckList(w io.Writer, c *catalog.Catalog, role catalog.Role) error {
	items := c.Items(role)
	if len(items) == 0 {
		fmt.Fprintf(w, "No cards for role %s\n", role)
		return nil
	}

	fmt.Fprintf(w, "%d card(s) for role %s:\n\n", len(items), role)
	for i, item := range items {
		rec, ok := item.(catalog.Record)
		if !ok {
			fmt.Fprintf(w, "  %2d. %s\n", i+1, item.Key())
			continue
		}
		fmt.Fprintf(w, "  %2d. %-10s %-50s %3.0f%%\n", i+1, rec.Key(), rec.Headline(), rec.Match()*100)
	}
	return nil
}

func runDeckValidate(w io.Writer, files []string) error {
	allValid := true

	for _, file := range files {
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Validating: %s\n", file)
		}

		c, err := catalog.Load(file)
		if err != nil {
			allValid = false
			fmt.Fprintf(w, "%s %s\n", emoji.GetEmoji("error"), file)

			var verr *catalog.ValidationError
			if errors.As(err, &verr) && len(verr.Fields) > 0 {
				for _, f := range verr.Fields {
					fmt.Fprintf(w, "   %s\n", f)
				}
			} else {
				fmt.Fprintf(w, "   %v\n", err)
			}
			continue
		}

		fmt.Fprintf(w, "%s %s: %d job(s), %d student(s)\n", emoji.GetEmoji("success"), file, len(c.Jobs), len(c.Students))
	}

	if !allValid {
		return fmt.Errorf("some deck files are invalid")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
