package patients

import (
	"sync"

	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/types"
)

// Registry stores all patient records. Ids are assigned monotonically
// and never reused; lookups go through the id-keyed index so callers
// never hold a reference an insertion could invalidate.
type Registry struct {
	mu     sync.Mutex
	byID   map[int]*Record
	order  []*Record
	lastID int
	logger *logger.Logger
}

// NewRegistry creates an empty patient registry
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		byID:   make(map[int]*Record),
		logger: log,
	}
}

// Register creates and stores a new patient record and returns its id.
// It never fails given validated inputs.
func (r *Registry) Register(reg types.PatientRegistration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	record := newRecord(r.lastID, reg)
	r.byID[record.ID()] = record
	r.order = append(r.order, record)

	r.logger.WithComponent("patients").
		WithField("patient_id", record.ID()).
		Info("Patient registered")

	return record.ID()
}

// FindByID returns the record for the given id. Absence is a normal,
// reportable outcome.
func (r *Registry) FindByID(id int) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found")
	}
	return record, nil
}

// ListBrief returns (id, name) pairs in registration order
func (r *Registry) ListBrief() []types.PatientBrief {
	r.mu.Lock()
	defer r.mu.Unlock()

	briefs := make([]types.PatientBrief, 0, len(r.order))
	for _, record := range r.order {
		briefs = append(briefs, types.PatientBrief{ID: record.ID(), Name: record.Name()})
	}
	return briefs
}
