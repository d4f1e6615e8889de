// Package attendance holds the daily attendance workflow: roster state,
// the row model, the lock state of the form and the submission batcher.
package attendance

import (
	"sync"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

// State is the employee/boat roster shared by the loader and submitter.
// It is overwritten wholesale on every refetch.
type State struct {
	mu        sync.RWMutex
	employees []models.Employee
	boats     []models.Boat
}

func NewState() *State {
	return &State{}
}

// Replace swaps in a freshly fetched roster.
func (s *State) Replace(employees []models.Employee, boats []models.Boat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append([]models.Employee(nil), employees...)
	s.boats = append([]models.Boat(nil), boats...)
}

func (s *State) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Employee(nil), s.employees...)
}

func (s *State) Boats() []models.Boat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Boat(nil), s.boats...)
}

func (s *State) Employee(id int64) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

func (s *State) Boat(id int64) (models.Boat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.boats {
		if b.ID == id {
			return b, true
		}
	}
	return models.Boat{}, false
}
