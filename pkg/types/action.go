package types

// Action represents a role-gated operation a session may request
type Action string

const (
	ActionCreateEmployee      Action = "create_employee"
	ActionDeleteEmployee      Action = "delete_employee"
	ActionListEmployees       Action = "list_employees"
	ActionRegisterPatient     Action = "register_patient"
	ActionViewPatientBasic    Action = "view_patient_basic"
	ActionViewPatientFull     Action = "view_patient_full"
	ActionAddDiagnosis        Action = "add_diagnosis"
	ActionAddMedicalNote      Action = "add_medical_note"
	ActionAddPrescription     Action = "add_prescription"
	ActionAddBillingCharge    Action = "add_billing_charge"
	ActionDispenseMedication  Action = "dispense_medication"
	ActionRecordPayment       Action = "record_payment"
	ActionSetBillStatus       Action = "set_bill_status"
	ActionViewBillSummary     Action = "view_bill_summary"
	ActionChangeOwnCredential Action = "change_own_credential"
)
