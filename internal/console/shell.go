// Package console implements the interactive menu shell. It owns all
// terminal reading and formatting; every domain operation goes through
// the session coordinator, which re-checks permissions itself.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clinicore/hms/internal/session"
	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/types"
)

// Shell drives one interactive session over a line-based reader and
// writer
type Shell struct {
	coordinator *session.Coordinator
	in          *bufio.Scanner
	out         io.Writer
	logger      *logger.Logger
}

// New creates a shell bound to the given input and output streams
func New(coordinator *session.Coordinator, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	return &Shell{
		coordinator: coordinator,
		in:          bufio.NewScanner(in),
		out:         out,
		logger:      log,
	}
}

// Run drives the top-level login/exit loop until the user exits or
// input ends
func (s *Shell) Run() {
	for {
		s.printf("\n=== Hospital Management System ===\n")
		s.printf("1. Login\n")
		s.printf("2. Exit\n")

		opt, ok := s.readIntInRange("Choose an option: ", 1, 2)
		if !ok || opt == 2 {
			s.printf("Exiting. Goodbye.\n")
			return
		}

		username, ok := s.readNonEmpty("Username: ")
		if !ok {
			return
		}
		password, ok := s.readNonEmpty("Password: ")
		if !ok {
			return
		}

		account, err := s.coordinator.Login(username, password)
		if err != nil {
			s.printf("Invalid username or password.\n")
			continue
		}

		s.printf("Login successful. Welcome, %s (%s)\n", account.Username, account.Role.DisplayName())
		s.sessionLoop()
		s.coordinator.Logout()
		s.printf("Logged out.\n")
	}
}

// sessionLoop shows the menu for the logged-in role until logout or
// end of input
func (s *Shell) sessionLoop() {
	actions := s.coordinator.PermittedActions()

	for {
		current := s.coordinator.Current()
		if current == nil {
			return
		}

		s.printf("\n--- %s Menu ---\n", current.Role.DisplayName())
		for i, action := range actions {
			s.printf("%d. %s\n", i+1, menuLabel(current.Role, action))
		}
		s.printf("%d. Logout (Back)\n", len(actions)+1)

		opt, ok := s.readIntInRange("Choose an option: ", 1, len(actions)+1)
		if !ok || opt == len(actions)+1 {
			return
		}

		s.dispatch(actions[opt-1])
	}
}

func (s *Shell) dispatch(action types.Action) {
	switch action {
	case types.ActionCreateEmployee:
		s.handleCreateEmployee()
	case types.ActionDeleteEmployee:
		s.handleDeleteEmployee()
	case types.ActionListEmployees:
		s.handleListEmployees()
	case types.ActionRegisterPatient:
		s.handleRegisterPatient()
	case types.ActionViewPatientBasic:
		s.handleViewPatientBasic()
	case types.ActionViewPatientFull:
		s.handleViewPatientFull()
	case types.ActionAddDiagnosis:
		s.handleClinicalEntry(action, "Enter diagnostic information: ", "Diagnosis added.")
	case types.ActionAddMedicalNote:
		s.handleClinicalEntry(action, "Enter medical note: ", "Medical note added.")
	case types.ActionAddPrescription:
		s.handleClinicalEntry(action, "Enter prescription details: ", "Prescription recorded.")
	case types.ActionDispenseMedication:
		s.handleClinicalEntry(action, "Enter medication details dispensed: ", "Medication dispensed and recorded.")
	case types.ActionAddBillingCharge:
		s.handleAddCharge()
	case types.ActionRecordPayment:
		s.handleRecordPayment()
	case types.ActionSetBillStatus:
		s.handleSetBillStatus()
	case types.ActionViewBillSummary:
		s.handleViewBillSummary()
	case types.ActionChangeOwnCredential:
		s.handleChangePassword()
	}
}

func (s *Shell) handleCreateEmployee() {
	username, ok := s.readNonEmpty("Enter username for employee: ")
	if !ok {
		return
	}

	s.printf("Select role:\n")
	for i, role := range types.AllRoles {
		s.printf("%d. %s\n", i+1, role.DisplayName())
	}
	choice, ok := s.readIntInRange("Choose role: ", 1, len(types.AllRoles))
	if !ok {
		return
	}
	role := types.AllRoles[choice-1]

	password, ok := s.readNonEmpty("Set password for employee: ")
	if !ok {
		return
	}

	account, err := s.coordinator.CreateAccount(username, password, role)
	if err != nil {
		s.reportError(err)
		return
	}
	s.printf("Employee registered: %s (%s)\n", account.Username, account.Role.DisplayName())
}

func (s *Shell) handleDeleteEmployee() {
	s.handleListEmployees()

	username, ok := s.readNonEmpty("Enter username to delete (or type 'back' to cancel): ")
	if !ok || username == "back" {
		return
	}

	if err := s.coordinator.DeleteAccount(username); err != nil {
		s.reportError(err)
		return
	}
	s.printf("Deleted user: %s\n", username)
}

func (s *Shell) handleListEmployees() {
	accounts, err := s.coordinator.ListAccounts()
	if err != nil {
		s.reportError(err)
		return
	}

	s.printf("---- Registered Employees ----\n")
	for _, account := range accounts {
		s.printf("Username: %s | Role: %s\n", account.Username, account.Role.DisplayName())
	}
	s.printf("------------------------------\n")
}

func (s *Shell) handleRegisterPatient() {
	name, ok := s.readNonEmpty("Full name: ")
	if !ok {
		return
	}
	age, ok := s.readIntInRange("Age: ", 1, 150)
	if !ok {
		return
	}
	gender, ok := s.readNonEmpty("Gender: ")
	if !ok {
		return
	}
	symptoms, ok := s.readNonEmpty("Symptoms: ")
	if !ok {
		return
	}
	date, ok := s.readNonEmpty("Date of admission (YYYY-MM-DD): ")
	if !ok {
		return
	}

	id, err := s.coordinator.RegisterPatient(types.PatientRegistration{
		Name:          name,
		Age:           age,
		Gender:        gender,
		Symptoms:      symptoms,
		AdmissionDate: date,
	})
	if err != nil {
		s.reportError(err)
		return
	}
	s.printf("Patient registered with ID: %d\n", id)
}

func (s *Shell) handleViewPatientBasic() {
	s.renderPatientsBrief()

	id, ok := s.readIntInRange("Enter patient ID to view (0 to cancel): ", 0, 1000000)
	if !ok || id == 0 {
		return
	}

	basic, err := s.coordinator.FindPatientBasic(id)
	if err != nil {
		s.reportError(err)
		return
	}
	s.renderBasicInfo(basic)
}

func (s *Shell) handleViewPatientFull() {
	id, ok := s.readIntInRange("Enter patient ID (0 to cancel): ", 0, 1000000)
	if !ok || id == 0 {
		return
	}

	snapshot, err := s.coordinator.PatientFullView(id)
	if err != nil {
		s.reportError(err)
		return
	}
	s.renderFullRecord(snapshot)
}

func (s *Shell) handleClinicalEntry(action types.Action, prompt, confirmation string) {
	id, ok := s.readIntInRange("Enter patient ID: ", 1, 1000000)
	if !ok {
		return
	}
	text, ok := s.readNonEmpty(prompt)
	if !ok {
		return
	}

	var err error
	switch action {
	case types.ActionAddDiagnosis:
		err = s.coordinator.AddDiagnosis(id, text)
	case types.ActionAddMedicalNote:
		err = s.coordinator.AddMedicalNote(id, text)
	case types.ActionAddPrescription:
		err = s.coordinator.AddPrescription(id, text)
	case types.ActionDispenseMedication:
		err = s.coordinator.DispenseMedication(id, text)
	}
	if err != nil {
		s.reportError(err)
		return
	}
	s.printf("%s\n", confirmation)
}

func (s *Shell) handleAddCharge() {
	id, ok := s.readIntInRange("Enter patient ID: ", 1, 1000000)
	if !ok {
		return
	}
	description, ok := s.readNonEmpty("Charge description (e.g., Consultation, X-ray): ")
	if !ok {
		return
	}
	amount, ok := s.readPositiveAmount("Amount: $")
	if !ok {
		return
	}

	if err := s.coordinator.AddCharge(id, description, amount); err != nil {
		s.reportError(err)
		return
	}
	s.printf("Charge added to bill.\n")
}

func (s *Shell) handleRecordPayment() {
	id, ok := s.readIntInRange("Enter patient ID: ", 1, 1000000)
	if !ok {
		return
	}
	method, ok := s.readNonEmpty("Payment method (e.g., Cash/Card/Insurance): ")
	if !ok {
		return
	}
	amount, ok := s.readPositiveAmount("Amount paid: $")
	if !ok {
		return
	}

	if err := s.coordinator.AddPayment(id, method, amount); err != nil {
		s.reportError(err)
		return
	}
	s.printf("Payment recorded.\n")
}

func (s *Shell) handleSetBillStatus() {
	id, ok := s.readIntInRange("Enter patient ID: ", 1, 1000000)
	if !ok {
		return
	}

	s.printf("Select status:\n1. Fully cleared\n2. Partially paid\n3. Pending\n")
	choice, ok := s.readIntInRange("Choose: ", 1, 3)
	if !ok {
		return
	}

	var status types.BillStatus
	switch choice {
	case 1:
		status = types.BillStatusFullyCleared
	case 2:
		status = types.BillStatusPartiallyPaid
	default:
		status = types.BillStatusPending
	}

	if err := s.coordinator.SetBillStatus(id, status); err != nil {
		s.reportError(err)
		return
	}
	s.printf("Bill status updated.\n")
}

func (s *Shell) handleViewBillSummary() {
	id, ok := s.readIntInRange("Enter patient ID: ", 1, 1000000)
	if !ok {
		return
	}

	summary, err := s.coordinator.BillSummary(id)
	if err != nil {
		s.reportError(err)
		return
	}
	s.renderBillSummary(summary)
}

func (s *Shell) handleChangePassword() {
	password, ok := s.readNonEmpty("Enter new password: ")
	if !ok {
		return
	}

	if err := s.coordinator.ChangeOwnPassword(password); err != nil {
		s.reportError(err)
		return
	}
	s.printf("Password updated.\n")
}

func (s *Shell) renderPatientsBrief() {
	briefs, err := s.coordinator.ListPatientsBrief()
	if err != nil {
		s.reportError(err)
		return
	}

	s.printf("---- Patients (brief) ----\n")
	for _, brief := range briefs {
		s.printf("ID: %d | Name: %s\n", brief.ID, brief.Name)
	}
	s.printf("--------------------------\n")
}

func (s *Shell) renderBasicInfo(basic types.PatientBasic) {
	s.printf("Patient ID: %d\n", basic.ID)
	s.printf("Name: %s, Age: %d, Gender: %s\n", basic.Name, basic.Age, basic.Gender)
	s.printf("Symptoms: %s\n", basic.Symptoms)
	s.printf("Date of admission: %s\n", basic.AdmissionDate)
}

func (s *Shell) renderFullRecord(snapshot types.PatientSnapshot) {
	s.renderBasicInfo(snapshot.PatientBasic)
	s.renderEntries("Diagnoses", snapshot.Diagnoses)
	s.renderEntries("Medical Notes", snapshot.MedicalNotes)
	s.renderEntries("Prescriptions", snapshot.Prescriptions)
	s.renderBillSummary(snapshot.Bill)
}

func (s *Shell) renderEntries(heading string, entries []string) {
	s.printf("%s:\n", heading)
	if len(entries) == 0 {
		s.printf("  (none)\n")
	}
	for _, entry := range entries {
		s.printf("  - %s\n", entry)
	}
}

func (s *Shell) renderBillSummary(summary types.BillSummary) {
	s.printf("---- Bill Summary ----\n")
	s.printf("Charges:\n")
	if len(summary.Charges) == 0 {
		s.printf("  (none)\n")
	}
	for _, charge := range summary.Charges {
		s.printf("  %s : $%.2f\n", charge.Description, charge.Amount)
	}
	s.printf("Payments:\n")
	if len(summary.Payments) == 0 {
		s.printf("  (none)\n")
	}
	for _, payment := range summary.Payments {
		s.printf("  %s : $%.2f\n", payment.Description, payment.Amount)
	}
	s.printf("Total Charges: $%.2f\n", summary.TotalCharges)
	s.printf("Total Payments: $%.2f\n", summary.TotalPayments)
	s.printf("Balance: $%.2f\n", summary.Balance)
	s.printf("Status: %s\n", summary.Status.DisplayName())
	s.printf("----------------------\n")
}

func (s *Shell) reportError(err error) {
	switch types.ErrorCode(err) {
	case types.ErrCodeNotFound:
		s.printf("Patient or user not found.\n")
	case types.ErrCodeDuplicateUsername:
		s.printf("Username already exists.\n")
	case types.ErrCodeLastAdmin:
		s.printf("Cannot delete the last Admin account.\n")
	case types.ErrCodeSelfDeletion:
		s.printf("You cannot delete your own account here.\n")
	case types.ErrCodePermissionDenied:
		s.printf("You are not permitted to perform this action.\n")
	default:
		s.printf("Operation failed: %v\n", err)
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine reads one line; ok is false when input has ended
func (s *Shell) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readNonEmpty re-prompts until a non-empty line arrives
func (s *Shell) readNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return "", false
		}
		if line == "" {
			s.printf("Input cannot be empty. Try again.\n")
			continue
		}
		return line, true
	}
}

// readIntInRange re-prompts until an integer within [min, max] arrives
func (s *Shell) readIntInRange(prompt string, min, max int) (int, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			s.printf("Invalid input. Enter a number.\n")
			continue
		}
		if value < min || value > max {
			s.printf("Enter a number between %d and %d.\n", min, max)
			continue
		}
		return value, true
	}
}

// readPositiveAmount re-prompts until a positive amount arrives
func (s *Shell) readPositiveAmount(prompt string) (float64, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value <= 0 {
			s.printf("Invalid amount.\n")
			continue
		}
		return value, true
	}
}

func menuLabel(role types.Role, action types.Action) string {
	// Doctors see the patient list as a record overview, not a lookup
	if role == types.RoleDoctor && action == types.ActionViewPatientBasic {
		return "View registered patient records (brief)"
	}

	switch action {
	case types.ActionCreateEmployee:
		return "Register employee"
	case types.ActionDeleteEmployee:
		return "Delete employee"
	case types.ActionListEmployees:
		return "View all employees"
	case types.ActionRegisterPatient:
		return "Register new patient"
	case types.ActionViewPatientBasic:
		return "View basic patient information"
	case types.ActionViewPatientFull:
		return "View full patient record by ID"
	case types.ActionAddDiagnosis:
		return "Add diagnostic information"
	case types.ActionAddMedicalNote:
		return "Add medical notes"
	case types.ActionAddPrescription:
		return "Prescribe medication"
	case types.ActionAddBillingCharge:
		return "Add billing entry (consultation/tests)"
	case types.ActionDispenseMedication:
		return "Record medication dispensed"
	case types.ActionRecordPayment:
		return "Record payment made"
	case types.ActionSetBillStatus:
		return "Mark bill status manually"
	case types.ActionViewBillSummary:
		return "View complete patient bill"
	case types.ActionChangeOwnCredential:
		return "Change my password"
	default:
		return string(action)
	}
}
