// Package cmd - branches command group
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nava-ops/adapters/registry"
	"nava-ops/core/pricing"
	"nava-ops/internal/config"
	"nava-ops/internal/errors"
)

var brandID string

// branchesCmd groups the branch registry commands
var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Manage a brand's branches",
}

var branchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a brand's branches with the current subscription price",
	RunE:  runBranchesList,
}

var branchesAddCmd = &cobra.Command{
	Use:   "add <name> [location]",
	Short: "Register a new branch",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runBranchesAdd,
}

var branchesRemoveCmd = &cobra.Command{
	Use:   "remove <branch-id>",
	Short: "Remove a branch",
	Args:  cobra.ExactArgs(1),
	RunE:  runBranchesRemove,
}

func init() {
	branchesCmd.PersistentFlags().StringVarP(&brandID, "brand", "b", "", "brand ID (required)")
	branchesCmd.AddCommand(branchesListCmd)
	branchesCmd.AddCommand(branchesAddCmd)
	branchesCmd.AddCommand(branchesRemoveCmd)
}

// openRegistry opens the configured branch registry backend
func openRegistry() (registry.Registry, error) {
	dsn := config.Get().Database.DSN
	if dsn == "" {
		return nil, errors.New(errors.TypeConfig,
			"no database configured; set database.dsn or NAVA_DATABASE_DSN")
	}
	return registry.NewPostgresRegistry(dsn, nil)
}

func requireBrand() error {
	if brandID == "" {
		return errors.Input("--brand is required")
	}
	return nil
}

func runBranchesList(cmd *cobra.Command, args []string) error {
	if err := requireBrand(); err != nil {
		return err
	}
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()
	ctx := context.Background()

	branches, err := reg.List(ctx, brandID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tACTIVE\tCREATED")
	for _, b := range branches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
			b.ID, b.Name, b.Location, b.Active, b.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()

	plan, err := activePlan()
	if err != nil {
		return err
	}
	count, err := reg.CountActive(ctx, brandID)
	if err != nil {
		return err
	}
	bd := pricing.NewCalculator(plan).Breakdown(count)
	fmt.Printf("\n%d active branches, %s %s/month\n", count, bd.MonthlyTotal, bd.CurrencyCode)
	return nil
}

func runBranchesAdd(cmd *cobra.Command, args []string) error {
	if err := requireBrand(); err != nil {
		return err
	}
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	location := ""
	if len(args) > 1 {
		location = args[1]
	}
	branch, err := reg.Create(context.Background(), brandID, args[0], location)
	if err != nil {
		return err
	}
	fmt.Printf("registered branch %s (%s)\n", branch.Name, branch.ID)
	return nil
}

func runBranchesRemove(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := reg.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("removed branch %s\n", args[0])
	return nil
}
