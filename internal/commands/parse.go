package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dvloznov/dompet/internal/domain"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		eo        extractorOptions
		asJSON    bool
		title     string
		amount    int64
		date      string
		category  string
		forceType string
	)

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse one sentence into a transaction",
		Example: `  dompet parse beli kopi 15rb kemarin
  dompet parse --json --type income "dapat transferan 2jt"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			extractor, err := a.newExtractor(ctx, eo)
			if err != nil {
				return err
			}

			var overrides domain.Overrides
			flags := cmd.Flags()
			if flags.Changed("title") {
				overrides.Title = &title
			}
			if flags.Changed("amount") {
				overrides.Amount = &amount
			}
			if flags.Changed("date") {
				overrides.Date = &date
			}
			if flags.Changed("category") {
				overrides.Category = &category
			}
			if flags.Changed("type") {
				overrides.Type = &forceType
			}

			tx, err := extractor.Parse(ctx, strings.Join(args, " "), overrides)
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(tx)
			}
			printTransaction(cmd.OutOrStdout(), tx)
			return nil
		},
	}

	eo.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&title, "title", "", "override the title")
	cmd.Flags().Int64Var(&amount, "amount", 0, "override the amount (whole rupiah)")
	cmd.Flags().StringVar(&date, "date", "", "override the date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "override the category")
	cmd.Flags().StringVar(&forceType, "type", "", "force the type: income or expense")

	return cmd
}

func printTransaction(w io.Writer, tx *domain.ParsedTransaction) {
	label := color.New(color.Faint).SprintfFunc()
	amount := color.New(color.FgRed, color.Bold).SprintFunc()
	sign := "-"
	if tx.Type == domain.TypeIncome {
		amount = color.New(color.FgGreen, color.Bold).SprintFunc()
		sign = "+"
	}

	fmt.Fprintf(w, "%s %s\n", label("%-9s", "title"), color.New(color.Bold).Sprint(tx.Title))
	fmt.Fprintf(w, "%s %s\n", label("%-9s", "amount"), amount(sign+formatRupiah(tx.Amount)))
	fmt.Fprintf(w, "%s %s\n", label("%-9s", "date"), tx.Date)
	fmt.Fprintf(w, "%s %s\n", label("%-9s", "category"), color.New(color.FgCyan).Sprint(tx.Category))
	fmt.Fprintf(w, "%s %s\n", label("%-9s", "type"), tx.Type)
}

// formatRupiah renders 1500000 as "Rp1.500.000".
func formatRupiah(n int64) string {
	digits := fmt.Sprint(n)
	var b strings.Builder
	b.WriteString("Rp")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
