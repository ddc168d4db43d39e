package codec

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

// WriteExpensesCSV writes one row per expense record in a spreadsheet-
// friendly delimited format.
func WriteExpensesCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "date", "category", "subcategory", "amount", "description", "created_at"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, e := range expenses {
		row := []string{
			e.ID.String(),
			e.Date.Format(model.DateLayout),
			string(e.Category),
			e.Subcategory,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Description,
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
