package model

import "github.com/google/uuid"

// Budget is the 50/30/20 split of monthly income.
type Budget struct {
	Needs   float64
	Wants   float64
	Savings float64
}

// FamilyProfile gates which needs subcategories are relevant. It has no
// effect on budget math.
type FamilyProfile struct {
	HasChildren bool
	NumChildren int
	HasPets     bool
	NumPets     int
}

// State is the session-scoped aggregate that exclusively owns all planner
// data. Every engine operation takes it (or a slice it owns) explicitly;
// there is no ambient singleton.
type State struct {
	Income   float64
	Needs    AllocationMap
	Wants    AllocationMap
	Profile  FamilyProfile
	Expenses []Expense
	Goals    []PurchaseGoal
}

// NewState returns an empty state with initialized allocation maps.
func NewState() *State {
	return &State{
		Needs: make(AllocationMap),
		Wants: make(AllocationMap),
	}
}

// FindGoal returns a pointer to the goal with the given ID, or nil.
func (s *State) FindGoal(id uuid.UUID) *PurchaseGoal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}
