package types

// PatientBrief is the (id, name) listing view of a patient
type PatientBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PatientBasic is the demographic view of a patient record
type PatientBasic struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Symptoms      string `json:"symptoms"`
	AdmissionDate string `json:"admission_date"`
}

// PatientSnapshot is an immutable full view of a patient record,
// including clinical annotations and the bill
type PatientSnapshot struct {
	PatientBasic
	Diagnoses     []string    `json:"diagnoses"`
	MedicalNotes  []string    `json:"medical_notes"`
	Prescriptions []string    `json:"prescriptions"`
	Bill          BillSummary `json:"bill"`
}

// PatientRegistration carries the validated inputs for registering a patient
type PatientRegistration struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Symptoms      string `json:"symptoms"`
	AdmissionDate string `json:"admission_date"`
}
