// Package session implements the login state machine and the
// role-gated dispatch in front of the domain stores. Every operation
// re-checks the access controller, regardless of what the calling
// shell chose to display.
package session

import (
	"github.com/clinicore/hms/internal/access"
	"github.com/clinicore/hms/internal/directory"
	"github.com/clinicore/hms/internal/patients"
	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/monitoring"
	"github.com/clinicore/hms/pkg/types"
)

// Coordinator authenticates a caller and forwards permitted actions to
// the owning component. One coordinator serves one interactive
// session at a time.
type Coordinator struct {
	directory *directory.AccountDirectory
	registry  *patients.Registry
	access    *access.Controller
	metrics   *monitoring.MetricsCollector
	logger    *logger.Logger

	current *types.Account
}

// NewCoordinator creates a coordinator in the logged-out state
func NewCoordinator(
	dir *directory.AccountDirectory,
	registry *patients.Registry,
	controller *access.Controller,
	metrics *monitoring.MetricsCollector,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		directory: dir,
		registry:  registry,
		access:    controller,
		metrics:   metrics,
		logger:    log,
	}
}

// Login authenticates the credentials and moves the session to the
// logged-in state. A failed attempt leaves the session untouched.
func (c *Coordinator) Login(username, password string) (*types.Account, error) {
	account, err := c.directory.Authenticate(username, password)
	c.metrics.RecordAuthAttempt(err == nil)
	if err != nil {
		c.logger.WithComponent("session").
			WithField("username", username).
			Warn("Authentication failed")
		return nil, err
	}

	c.current = account
	c.logger.WithComponent("session").
		WithField("username", account.Username).
		WithField("role", account.Role).
		Info("Login successful")

	return account, nil
}

// Logout returns the session to the logged-out state
func (c *Coordinator) Logout() {
	if c.current != nil {
		c.logger.WithComponent("session").
			WithField("username", c.current.Username).
			Info("Logged out")
	}
	c.current = nil
}

// LoggedIn reports whether a session is active
func (c *Coordinator) LoggedIn() bool {
	return c.current != nil
}

// Current returns the logged-in account, or nil when logged out
func (c *Coordinator) Current() *types.Account {
	return c.current
}

// IsPermitted reports whether the active session may perform the
// action. Shells use it to decide which menu entries to offer; every
// operation below re-checks regardless.
func (c *Coordinator) IsPermitted(action types.Action) bool {
	if c.current == nil {
		return false
	}
	return c.access.Permitted(c.current.Role, action)
}

// PermittedActions returns the actions the active session may perform,
// in menu order. Empty when logged out.
func (c *Coordinator) PermittedActions() []types.Action {
	if c.current == nil {
		return nil
	}
	return c.access.PermittedActions(c.current.Role)
}

// guard rejects the request unless a session is active and the
// session's role permits the action
func (c *Coordinator) guard(action types.Action) error {
	if c.current == nil {
		return types.NewAuthenticationError(types.ErrCodeNoSession, "no active session")
	}

	permitted := c.access.Permitted(c.current.Role, action)
	c.metrics.RecordAccessDecision(string(c.current.Role), string(action), permitted)
	if !permitted {
		c.logger.WithComponent("session").
			WithField("username", c.current.Username).
			WithField("role", c.current.Role).
			WithField("action", action).
			Warn("Permission denied")
		return types.NewAuthorizationError(types.ErrCodePermissionDenied, "role is not permitted to perform this action")
	}

	return nil
}

// CreateAccount registers a new staff account
func (c *Coordinator) CreateAccount(username, password string, role types.Role) (*types.Account, error) {
	if err := c.guard(types.ActionCreateEmployee); err != nil {
		return nil, err
	}

	account, err := c.directory.Create(username, password, role)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordMutation("account", "create")
	return account, nil
}

// DeleteAccount removes a staff account. A session may never delete
// its own account, whatever its role.
func (c *Coordinator) DeleteAccount(username string) error {
	if err := c.guard(types.ActionDeleteEmployee); err != nil {
		return err
	}

	if username == c.current.Username {
		return types.NewAuthorizationError(types.ErrCodeSelfDeletion, "cannot delete your own account")
	}

	if err := c.directory.Delete(username); err != nil {
		return err
	}
	c.metrics.RecordMutation("account", "delete")
	return nil
}

// ListAccounts returns all accounts in storage order
func (c *Coordinator) ListAccounts() ([]types.AccountSummary, error) {
	if err := c.guard(types.ActionListEmployees); err != nil {
		return nil, err
	}
	return c.directory.List(), nil
}

// ChangeOwnPassword replaces the password of the logged-in account
func (c *Coordinator) ChangeOwnPassword(password string) error {
	if err := c.guard(types.ActionChangeOwnCredential); err != nil {
		return err
	}

	if err := c.directory.SetPassword(c.current.Username, password); err != nil {
		return err
	}
	c.current.Password = password
	c.metrics.RecordMutation("account", "change_password")
	return nil
}

// RegisterPatient creates a new patient record and returns its id
func (c *Coordinator) RegisterPatient(reg types.PatientRegistration) (int, error) {
	if err := c.guard(types.ActionRegisterPatient); err != nil {
		return 0, err
	}

	id := c.registry.Register(reg)
	c.metrics.RecordMutation("patient", "register")
	return id, nil
}

// ListPatientsBrief returns (id, name) pairs in registration order
func (c *Coordinator) ListPatientsBrief() ([]types.PatientBrief, error) {
	if err := c.guard(types.ActionViewPatientBasic); err != nil {
		return nil, err
	}
	return c.registry.ListBrief(), nil
}

// FindPatientBasic returns the demographic view of a patient
func (c *Coordinator) FindPatientBasic(id int) (types.PatientBasic, error) {
	if err := c.guard(types.ActionViewPatientBasic); err != nil {
		return types.PatientBasic{}, err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return types.PatientBasic{}, err
	}
	return record.Basic(), nil
}

// PatientFullView returns the complete record snapshot including the
// bill summary
func (c *Coordinator) PatientFullView(id int) (types.PatientSnapshot, error) {
	if err := c.guard(types.ActionViewPatientFull); err != nil {
		return types.PatientSnapshot{}, err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return types.PatientSnapshot{}, err
	}
	return record.Snapshot(), nil
}

// AddDiagnosis appends diagnostic information to a patient record
func (c *Coordinator) AddDiagnosis(id int, text string) error {
	if err := c.guard(types.ActionAddDiagnosis); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.AddDiagnosis(text)
	c.metrics.RecordMutation("patient", "add_diagnosis")
	return nil
}

// AddMedicalNote appends a medical note to a patient record
func (c *Coordinator) AddMedicalNote(id int, text string) error {
	if err := c.guard(types.ActionAddMedicalNote); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.AddMedicalNote(text)
	c.metrics.RecordMutation("patient", "add_medical_note")
	return nil
}

// AddPrescription appends a prescription to a patient record
func (c *Coordinator) AddPrescription(id int, text string) error {
	if err := c.guard(types.ActionAddPrescription); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.AddPrescription(text)
	c.metrics.RecordMutation("patient", "add_prescription")
	return nil
}

// DispenseMedication records a dispensed medication on the patient
// record. Dispensed medications are stored as prescription entries.
func (c *Coordinator) DispenseMedication(id int, text string) error {
	if err := c.guard(types.ActionDispenseMedication); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.AddPrescription(text)
	c.metrics.RecordMutation("patient", "dispense_medication")
	return nil
}

// AddCharge appends a billing charge to the patient's bill.
// Non-positive amounts are silently ignored by the bill.
func (c *Coordinator) AddCharge(id int, description string, amount float64) error {
	if err := c.guard(types.ActionAddBillingCharge); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.Bill().AddCharge(description, amount)
	c.metrics.RecordMutation("bill", "add_charge")
	return nil
}

// AddPayment records a payment against the patient's bill.
// Non-positive amounts are silently ignored by the bill.
func (c *Coordinator) AddPayment(id int, method string, amount float64) error {
	if err := c.guard(types.ActionRecordPayment); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.Bill().AddPayment(method, amount)
	c.metrics.RecordMutation("bill", "add_payment")
	return nil
}

// SetBillStatus manually overrides the bill status. The override
// holds until the next charge or payment recomputes it.
func (c *Coordinator) SetBillStatus(id int, status types.BillStatus) error {
	if err := c.guard(types.ActionSetBillStatus); err != nil {
		return err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return err
	}
	record.Bill().SetStatus(status)
	c.metrics.RecordMutation("bill", "set_status")
	return nil
}

// BillSummary returns the full bill view for a patient
func (c *Coordinator) BillSummary(id int) (types.BillSummary, error) {
	if err := c.guard(types.ActionViewBillSummary); err != nil {
		return types.BillSummary{}, err
	}

	record, err := c.registry.FindByID(id)
	if err != nil {
		return types.BillSummary{}, err
	}
	return record.Bill().Summary(), nil
}
