package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show planned monthly spending per subcategory",
	RunE:  runPlanShow,
}

var planSetCmd = &cobra.Command{
	Use:   "set <needs|wants> <subcategory> <amount>",
	Short: "Set the planned monthly amount for a subcategory",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlanSet,
}

func init() {
	planCmd.AddCommand(planSetCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlanSet(_ *cobra.Command, args []string) error {
	cat, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	if cat == model.CategorySavings {
		return fmt.Errorf("savings has no subcategory plan; it is always 20%% of income")
	}
	key := model.Subcategory(args[1])
	if !model.KnownSubcategory(cat, key) {
		return fmt.Errorf("unknown %s subcategory %q", cat, args[1])
	}
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	switch cat {
	case model.CategoryNeeds:
		st.Needs[key] = amount
	case model.CategoryWants:
		st.Wants[key] = amount
	}
	if err := saveState(s, st); err != nil {
		return err
	}

	fmt.Printf("  %s/%s planned at %s per month\n", cat, key, cli.FormatMoney(amount))
	return nil
}

func runPlanShow(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := requireIncome(st); err != nil {
		return err
	}

	b := engine.Allocate(st.Income)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING PLAN"))
	fmt.Println()

	fmt.Print(cli.RenderTable(planTable("Needs (50%)", needKeysForProfile(st), st.Needs, b.Needs)))
	fmt.Println()
	fmt.Print(cli.RenderTable(planTable("Wants (30%)", model.WantKeys(), st.Wants, b.Wants)))
	fmt.Println()
	return nil
}

// needKeysForProfile hides the children/pets rows when the family profile
// does not enable them and nothing is planned there.
func needKeysForProfile(st *model.State) []model.Subcategory {
	keys := make([]model.Subcategory, 0, 8)
	for _, k := range model.NeedKeys() {
		if k == model.NeedChildren && !st.Profile.HasChildren && st.Needs[k] == 0 {
			continue
		}
		if k == model.NeedPets && !st.Profile.HasPets && st.Needs[k] == 0 {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func planTable(title string, keys []model.Subcategory, m model.AllocationMap, budget float64) cli.Table {
	rows := make([][]string, 0, len(keys)+3)
	for _, k := range keys {
		rows = append(rows, []string{string(k), cli.FormatMoney(m[k])})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"planned", cli.FormatMoney(m.Total())})
	rows = append(rows, []string{"budget", cli.FormatMoney(budget)})

	return cli.Table{
		Title:   title,
		Headers: []string{"Subcategory", "Monthly"},
		Rows:    rows,
	}
}
