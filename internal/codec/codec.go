// Package codec serializes the full planner state to and from a versioned
// JSON interchange document, and exports the expense ledger as CSV.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

// FormatVersion tags the export document layout.
const FormatVersion = "1"

// ErrMalformedDocument wraps every structural import failure: bad JSON,
// missing required fields, unparseable dates or identifiers.
var ErrMalformedDocument = errors.New("malformed document")

// Document is the JSON interchange representation of the whole state
// aggregate.
type Document struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Income     float64            `json:"income"`
	Needs      map[string]float64 `json:"needs"`
	Wants      map[string]float64 `json:"wants"`
	Family     familyDoc          `json:"family"`
	Goals      []goalDoc          `json:"goals"`
	Expenses   []expenseDoc       `json:"expenses"`
}

type familyDoc struct {
	HasChildren bool `json:"has_children"`
	NumChildren int  `json:"num_children,omitempty"`
	HasPets     bool `json:"has_pets"`
	NumPets     int  `json:"num_pets,omitempty"`
}

type goalDoc struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Priority        string    `json:"priority"`
	MonthlySave     float64   `json:"monthly_save"`
	MonthsNeeded    int       `json:"months_needed"`
	MonthsCompleted float64   `json:"months_completed"` // derived, ignored on import
	AmountSaved     float64   `json:"amount_saved"`
	CreatedAt       time.Time `json:"created_at"`
	TargetDate      string    `json:"target_date"` // calendar date
}

type expenseDoc struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // calendar date
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Export serializes the state as an indented JSON document.
func Export(st *model.State) ([]byte, error) {
	doc := Document{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC(),
		Income:     st.Income,
		Needs:      allocToDoc(st.Needs),
		Wants:      allocToDoc(st.Wants),
		Family: familyDoc{
			HasChildren: st.Profile.HasChildren,
			NumChildren: st.Profile.NumChildren,
			HasPets:     st.Profile.HasPets,
			NumPets:     st.Profile.NumPets,
		},
		Goals:    make([]goalDoc, 0, len(st.Goals)),
		Expenses: make([]expenseDoc, 0, len(st.Expenses)),
	}

	for _, g := range st.Goals {
		doc.Goals = append(doc.Goals, goalDoc{
			ID:              g.ID.String(),
			Name:            g.Name,
			Price:           g.Price,
			Priority:        string(g.Priority),
			MonthlySave:     g.MonthlySave,
			MonthsNeeded:    g.MonthsNeeded,
			MonthsCompleted: g.MonthsCompleted(),
			AmountSaved:     g.AmountSaved,
			CreatedAt:       g.CreatedAt,
			TargetDate:      g.TargetDate.Format(model.DateLayout),
		})
	}
	for _, e := range st.Expenses {
		doc.Expenses = append(doc.Expenses, expenseDoc{
			ID:          e.ID.String(),
			Date:        e.Date.Format(model.DateLayout),
			Category:    string(e.Category),
			Subcategory: e.Subcategory,
			Amount:      e.Amount,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Import parses a document and reconstructs the full state aggregate.
// Any structural failure returns a nil state and an error wrapping
// ErrMalformedDocument; the import either yields a complete state or
// nothing.
func Import(data []byte) (*model.State, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if doc.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrMalformedDocument)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedDocument, doc.Version)
	}

	st := model.NewState()
	st.Income = doc.Income
	st.Needs = docToAlloc(doc.Needs)
	st.Wants = docToAlloc(doc.Wants)
	st.Profile = model.FamilyProfile{
		HasChildren: doc.Family.HasChildren,
		NumChildren: doc.Family.NumChildren,
		HasPets:     doc.Family.HasPets,
		NumPets:     doc.Family.NumPets,
	}

	for i, gd := range doc.Goals {
		g, err := goalFromDoc(gd)
		if err != nil {
			return nil, fmt.Errorf("%w: goal %d: %v", ErrMalformedDocument, i, err)
		}
		st.Goals = append(st.Goals, g)
	}
	for i, ed := range doc.Expenses {
		e, err := expenseFromDoc(ed)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %d: %v", ErrMalformedDocument, i, err)
		}
		st.Expenses = append(st.Expenses, e)
	}

	return st, nil
}

func goalFromDoc(gd goalDoc) (model.PurchaseGoal, error) {
	id, err := uuid.Parse(gd.ID)
	if err != nil {
		return model.PurchaseGoal{}, fmt.Errorf("bad id %q: %v", gd.ID, err)
	}
	if gd.Name == "" {
		return model.PurchaseGoal{}, errors.New("missing name")
	}
	prio := model.Priority(gd.Priority)
	if !prio.Valid() {
		return model.PurchaseGoal{}, fmt.Errorf("bad priority %q", gd.Priority)
	}
	target, err := time.Parse(model.DateLayout, gd.TargetDate)
	if err != nil {
		return model.PurchaseGoal{}, fmt.Errorf("bad target date %q: %v", gd.TargetDate, err)
	}

	return model.PurchaseGoal{
		ID:           id,
		Name:         gd.Name,
		Price:        gd.Price,
		Priority:     prio,
		MonthlySave:  gd.MonthlySave,
		MonthsNeeded: gd.MonthsNeeded,
		AmountSaved:  gd.AmountSaved,
		CreatedAt:    gd.CreatedAt,
		TargetDate:   target,
	}, nil
}

func expenseFromDoc(ed expenseDoc) (model.Expense, error) {
	id, err := uuid.Parse(ed.ID)
	if err != nil {
		return model.Expense{}, fmt.Errorf("bad id %q: %v", ed.ID, err)
	}
	date, err := time.Parse(model.DateLayout, ed.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("bad date %q: %v", ed.Date, err)
	}
	cat := model.Category(ed.Category)
	if !cat.Valid() {
		return model.Expense{}, fmt.Errorf("bad category %q", ed.Category)
	}

	return model.Expense{
		ID:          id,
		Date:        date,
		Category:    cat,
		Subcategory: ed.Subcategory,
		Amount:      ed.Amount,
		Description: ed.Description,
		CreatedAt:   ed.CreatedAt,
	}, nil
}

func allocToDoc(m model.AllocationMap) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func docToAlloc(m map[string]float64) model.AllocationMap {
	out := make(model.AllocationMap, len(m))
	for k, v := range m {
		out[model.Subcategory(k)] = v
	}
	return out
}
