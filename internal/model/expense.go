package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for expense dates and goal
// target dates everywhere they are serialized or displayed.
const DateLayout = "2006-01-02"

// Expense is one recorded spending event. Expenses are immutable once
// created; a correction is a delete plus a new record.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time // day precision
	Category    Category
	Subcategory string // free-form label, not restricted to the closed key set
	Amount      float64
	Description string
	CreatedAt   time.Time
}

// NewExpense builds an expense with a fresh ID and creation timestamp.
// The caller is responsible for validating amount > 0 and the date.
func NewExpense(date time.Time, cat Category, sub string, amount float64, desc string) Expense {
	return Expense{
		ID:          uuid.New(),
		Date:        date,
		Category:    cat,
		Subcategory: sub,
		Amount:      amount,
		Description: desc,
		CreatedAt:   time.Now().UTC(),
	}
}
