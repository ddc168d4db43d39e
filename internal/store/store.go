// Package store provides SQLite-backed persistence for the planner state
// between CLI invocations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store holds the planner state database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the state database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the whole state aggregate. A fresh database yields an empty
// state, not an error.
func (s *Store) Load() (*model.State, error) {
	st := model.NewState()

	var hasChildren, hasPets int
	err := s.db.QueryRow(`SELECT income, has_children, num_children, has_pets, num_pets
		FROM profile WHERE id = 1`).
		Scan(&st.Income, &hasChildren, &st.Profile.NumChildren, &hasPets, &st.Profile.NumPets)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	st.Profile.HasChildren = hasChildren != 0
	st.Profile.HasPets = hasPets != 0

	if err := s.loadAllocations(st); err != nil {
		return nil, err
	}
	if err := s.loadExpenses(st); err != nil {
		return nil, err
	}
	if err := s.loadGoals(st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Store) loadAllocations(st *model.State) error {
	rows, err := s.db.Query("SELECT category, subcategory, amount FROM allocations")
	if err != nil {
		return fmt.Errorf("loading allocations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cat, sub string
		var amount float64
		if err := rows.Scan(&cat, &sub, &amount); err != nil {
			return fmt.Errorf("scanning allocation: %w", err)
		}
		switch model.Category(cat) {
		case model.CategoryNeeds:
			st.Needs[model.Subcategory(sub)] = amount
		case model.CategoryWants:
			st.Wants[model.Subcategory(sub)] = amount
		}
	}
	return rows.Err()
}

func (s *Store) loadExpenses(st *model.State) error {
	rows, err := s.db.Query(`SELECT id, date, category, subcategory, amount, description, created_at
		FROM expenses ORDER BY date, created_at`)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var idStr, dateStr, cat, sub, createdStr string
		var desc sql.NullString
		var amount float64
		if err := rows.Scan(&idStr, &dateStr, &cat, &sub, &amount, &desc, &createdStr); err != nil {
			return fmt.Errorf("scanning expense: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("expense id %q: %w", idStr, err)
		}
		date, err := time.Parse(model.DateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("expense date %q: %w", dateStr, err)
		}
		created, err := time.Parse(time.RFC3339, createdStr)
		if err != nil {
			return fmt.Errorf("expense timestamp %q: %w", createdStr, err)
		}

		st.Expenses = append(st.Expenses, model.Expense{
			ID:          id,
			Date:        date,
			Category:    model.Category(cat),
			Subcategory: sub,
			Amount:      amount,
			Description: desc.String,
			CreatedAt:   created,
		})
	}
	return rows.Err()
}

func (s *Store) loadGoals(st *model.State) error {
	rows, err := s.db.Query(`SELECT id, name, price, priority, monthly_save, months_needed,
		amount_saved, created_at, target_date FROM goals ORDER BY created_at`)
	if err != nil {
		return fmt.Errorf("loading goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var idStr, name, prio, createdStr, targetStr string
		var price, monthlySave, amountSaved float64
		var monthsNeeded int
		if err := rows.Scan(&idStr, &name, &price, &prio, &monthlySave, &monthsNeeded,
			&amountSaved, &createdStr, &targetStr); err != nil {
			return fmt.Errorf("scanning goal: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("goal id %q: %w", idStr, err)
		}
		created, err := time.Parse(time.RFC3339, createdStr)
		if err != nil {
			return fmt.Errorf("goal timestamp %q: %w", createdStr, err)
		}
		target, err := time.Parse(model.DateLayout, targetStr)
		if err != nil {
			return fmt.Errorf("goal target date %q: %w", targetStr, err)
		}

		st.Goals = append(st.Goals, model.PurchaseGoal{
			ID:           id,
			Name:         name,
			Price:        price,
			Priority:     model.Priority(prio),
			MonthlySave:  monthlySave,
			MonthsNeeded: monthsNeeded,
			AmountSaved:  amountSaved,
			CreatedAt:    created,
			TargetDate:   target,
		})
	}
	return rows.Err()
}

// Save writes the whole state aggregate in one transaction, replacing
// whatever was stored before. The replace is atomic: a failed save leaves
// the previous state untouched.
func (s *Store) Save(st *model.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"profile", "allocations", "expenses", "goals"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO profile (id, income, has_children, num_children, has_pets, num_pets)
		VALUES (1, ?, ?, ?, ?, ?)`,
		st.Income, boolInt(st.Profile.HasChildren), st.Profile.NumChildren,
		boolInt(st.Profile.HasPets), st.Profile.NumPets)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	for sub, amount := range st.Needs {
		if _, err := tx.Exec("INSERT INTO allocations (category, subcategory, amount) VALUES (?, ?, ?)",
			string(model.CategoryNeeds), string(sub), amount); err != nil {
			return fmt.Errorf("saving needs allocation: %w", err)
		}
	}
	for sub, amount := range st.Wants {
		if _, err := tx.Exec("INSERT INTO allocations (category, subcategory, amount) VALUES (?, ?, ?)",
			string(model.CategoryWants), string(sub), amount); err != nil {
			return fmt.Errorf("saving wants allocation: %w", err)
		}
	}

	for _, e := range st.Expenses {
		_, err := tx.Exec(`INSERT INTO expenses (id, date, category, subcategory, amount, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID.String(), e.Date.Format(model.DateLayout), string(e.Category), e.Subcategory,
			e.Amount, e.Description, e.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("saving expense: %w", err)
		}
	}

	for _, g := range st.Goals {
		_, err := tx.Exec(`INSERT INTO goals (id, name, price, priority, monthly_save, months_needed,
			amount_saved, created_at, target_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID.String(), g.Name, g.Price, string(g.Priority), g.MonthlySave, g.MonthsNeeded,
			g.AmountSaved, g.CreatedAt.UTC().Format(time.RFC3339), g.TargetDate.Format(model.DateLayout))
		if err != nil {
			return fmt.Errorf("saving goal: %w", err)
		}
	}

	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
