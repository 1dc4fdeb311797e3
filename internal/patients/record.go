// Package patients holds the patient registry and per-patient clinical
// records. Records are created through the registry, addressed by a
// stable numeric id, and never deleted.
package patients

import (
	"github.com/clinicore/hms/internal/billing"
	"github.com/clinicore/hms/pkg/types"
)

// Record aggregates a patient's demographic data, clinical annotations
// and the owned bill. Clinical lists are append-only.
type Record struct {
	id            int
	name          string
	age           int
	gender        string
	symptoms      string
	admissionDate string

	diagnoses     []string
	medicalNotes  []string
	prescriptions []string

	bill *billing.Bill
}

func newRecord(id int, reg types.PatientRegistration) *Record {
	return &Record{
		id:            id,
		name:          reg.Name,
		age:           reg.Age,
		gender:        reg.Gender,
		symptoms:      reg.Symptoms,
		admissionDate: reg.AdmissionDate,
		bill:          billing.New(),
	}
}

// ID returns the immutable patient id
func (r *Record) ID() int {
	return r.id
}

// Name returns the patient name
func (r *Record) Name() string {
	return r.name
}

// AddDiagnosis appends a diagnosis entry. Empty text is ignored.
func (r *Record) AddDiagnosis(text string) {
	if text == "" {
		return
	}
	r.diagnoses = append(r.diagnoses, text)
}

// AddMedicalNote appends a medical note. Empty text is ignored.
func (r *Record) AddMedicalNote(text string) {
	if text == "" {
		return
	}
	r.medicalNotes = append(r.medicalNotes, text)
}

// AddPrescription appends a prescription entry. Empty text is ignored.
func (r *Record) AddPrescription(text string) {
	if text == "" {
		return
	}
	r.prescriptions = append(r.prescriptions, text)
}

// Bill returns the patient's bill. The record owns exactly one bill
// for its whole lifetime; billing logic lives on the bill itself.
func (r *Record) Bill() *billing.Bill {
	return r.bill
}

// Basic returns the demographic view of the record
func (r *Record) Basic() types.PatientBasic {
	return types.PatientBasic{
		ID:            r.id,
		Name:          r.name,
		Age:           r.age,
		Gender:        r.gender,
		Symptoms:      r.symptoms,
		AdmissionDate: r.admissionDate,
	}
}

// Snapshot returns an immutable full view of the record for
// presentation, including the bill summary
func (r *Record) Snapshot() types.PatientSnapshot {
	diagnoses := make([]string, len(r.diagnoses))
	copy(diagnoses, r.diagnoses)
	notes := make([]string, len(r.medicalNotes))
	copy(notes, r.medicalNotes)
	prescriptions := make([]string, len(r.prescriptions))
	copy(prescriptions, r.prescriptions)

	return types.PatientSnapshot{
		PatientBasic:  r.Basic(),
		Diagnoses:     diagnoses,
		MedicalNotes:  notes,
		Prescriptions: prescriptions,
		Bill:          r.bill.Summary(),
	}
}
