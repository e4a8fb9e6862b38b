// Package export handles the transaction CSV export command.
package export

import (
	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/export"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transaction log to CSV",
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	transactions, err := db.ListTransactions(cmd.Context())
	if err != nil {
		return err
	}

	writer := export.NewWriter([]rune(root.Cfg.Export.Delimiter)[0], root.Cfg.Export.DateFormat, root.Log)
	if err := writer.WriteTransactions(transactions, output); err != nil {
		return err
	}

	root.Log.WithField("count", len(transactions)).Info("Exported transactions to " + output)
	return nil
}
