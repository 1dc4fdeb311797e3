// Package access implements role-based access control. The permission
// matrix below is the single source of truth for authorization; no
// action bypasses it.
package access

import (
	"github.com/clinicore/hms/pkg/types"
)

// Controller maps (role, action) to a permit/deny decision
type Controller struct {
	permissionMatrix map[types.Role][]types.Action
}

// NewController creates a controller with the permission matrix
// initialized
func NewController() *Controller {
	c := &Controller{}
	c.initializePermissionMatrix()
	return c
}

// Permitted reports whether the role may perform the action
func (c *Controller) Permitted(role types.Role, action types.Action) bool {
	for _, allowed := range c.permissionMatrix[role] {
		if allowed == action {
			return true
		}
	}
	return false
}

// PermittedActions returns the actions the role may perform, in menu
// order
func (c *Controller) PermittedActions(role types.Role) []types.Action {
	actions := make([]types.Action, len(c.permissionMatrix[role]))
	copy(actions, c.permissionMatrix[role])
	return actions
}

// initializePermissionMatrix sets up the role permission matrix.
// Self-deletion of one's own account is additionally rejected by the
// session layer; that is an identity check, not a role check, so it
// does not appear here.
func (c *Controller) initializePermissionMatrix() {
	c.permissionMatrix = map[types.Role][]types.Action{
		types.RoleAdmin: {
			types.ActionCreateEmployee,
			types.ActionDeleteEmployee,
			types.ActionListEmployees,
			types.ActionChangeOwnCredential,
		},
		types.RoleNurse: {
			types.ActionRegisterPatient,
			types.ActionViewPatientBasic,
			types.ActionChangeOwnCredential,
		},
		types.RoleDoctor: {
			types.ActionViewPatientBasic,
			types.ActionViewPatientFull,
			types.ActionAddDiagnosis,
			types.ActionAddMedicalNote,
			types.ActionAddPrescription,
			types.ActionAddBillingCharge,
			types.ActionChangeOwnCredential,
		},
		types.RolePharmacist: {
			types.ActionViewPatientFull,
			types.ActionDispenseMedication,
			types.ActionAddBillingCharge,
			types.ActionChangeOwnCredential,
		},
		types.RoleAccounts: {
			types.ActionViewBillSummary,
			types.ActionRecordPayment,
			types.ActionSetBillStatus,
			types.ActionChangeOwnCredential,
		},
	}
}
