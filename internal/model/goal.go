package model

import (
	"time"

	"github.com/google/uuid"
)

// Priority ranks how urgent a planned purchase is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// PurchaseGoal is a planned purchase being saved toward in equal monthly
// installments. MonthlySave and MonthsNeeded are fixed at creation;
// AmountSaved grows monotonically as payments are recorded.
type PurchaseGoal struct {
	ID           uuid.UUID
	Name         string
	Price        float64
	Priority     Priority
	MonthlySave  float64
	MonthsNeeded int
	AmountSaved  float64
	CreatedAt    time.Time
	TargetDate   time.Time
}

// MonthsCompleted is the number of monthly installments the saved amount
// covers. It can exceed MonthsNeeded when the goal is overpaid.
func (g PurchaseGoal) MonthsCompleted() float64 {
	if g.MonthlySave <= 0 {
		return 0
	}
	return g.AmountSaved / g.MonthlySave
}

// Completed reports whether the goal has reached its target price.
func (g PurchaseGoal) Completed() bool {
	return g.AmountSaved >= g.Price
}

// Progress returns completion as a 0..1 fraction, capped at 1 for display.
func (g PurchaseGoal) Progress() float64 {
	if g.Price <= 0 {
		return 0
	}
	p := g.AmountSaved / g.Price
	if p > 1 {
		p = 1
	}
	return p
}
