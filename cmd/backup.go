package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/codec"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full state as a JSON document (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the current state with a previously exported document",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := codec.Export(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Printf("  Exported state to %s\n", args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	// Decode and validate fully before touching the database, so a bad
	// document never clobbers existing data.
	st, err := codec.Import(data)
	if err != nil {
		return err
	}

	s, _, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := saveState(s, st); err != nil {
		return err
	}
	fmt.Printf("  Imported %d expenses and %d goals from %s\n",
		len(st.Expenses), len(st.Goals), args[0])
	return nil
}
