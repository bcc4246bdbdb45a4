package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagImportYes bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all data to a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Export(args[0]); err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		fmt.Printf("Exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagImportYes {
			fmt.Print("Importing replaces ALL existing data. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Import(args[0]); err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		fmt.Printf("Imported from %s\n", args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVarP(&flagImportYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(exportCmd, importCmd)
}
