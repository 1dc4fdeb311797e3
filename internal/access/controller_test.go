package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinicore/hms/pkg/types"
)

func TestController_Permitted(t *testing.T) {
	controller := NewController()

	t.Run("billing charge split between roles", func(t *testing.T) {
		assert.False(t, controller.Permitted(types.RoleNurse, types.ActionAddBillingCharge))
		assert.True(t, controller.Permitted(types.RoleDoctor, types.ActionAddBillingCharge))
		assert.True(t, controller.Permitted(types.RolePharmacist, types.ActionAddBillingCharge))
		assert.False(t, controller.Permitted(types.RoleAccounts, types.ActionAddBillingCharge))
	})

	t.Run("every role may change its own credential", func(t *testing.T) {
		for _, role := range types.AllRoles {
			assert.True(t, controller.Permitted(role, types.ActionChangeOwnCredential), string(role))
		}
	})

	t.Run("only admin manages employees", func(t *testing.T) {
		for _, action := range []types.Action{
			types.ActionCreateEmployee,
			types.ActionDeleteEmployee,
			types.ActionListEmployees,
		} {
			assert.True(t, controller.Permitted(types.RoleAdmin, action), string(action))
			for _, role := range []types.Role{
				types.RoleDoctor, types.RoleNurse, types.RolePharmacist, types.RoleAccounts,
			} {
				assert.False(t, controller.Permitted(role, action), "%s/%s", role, action)
			}
		}
	})

	t.Run("admin has no clinical or billing access", func(t *testing.T) {
		for _, action := range []types.Action{
			types.ActionRegisterPatient,
			types.ActionViewPatientFull,
			types.ActionAddDiagnosis,
			types.ActionAddBillingCharge,
			types.ActionRecordPayment,
			types.ActionSetBillStatus,
		} {
			assert.False(t, controller.Permitted(types.RoleAdmin, action), string(action))
		}
	})

	t.Run("unknown role is denied everything", func(t *testing.T) {
		assert.False(t, controller.Permitted(types.Role("intruder"), types.ActionViewPatientBasic))
	})
}

// TestController_FullMatrix pins the complete authorization table so
// any change to it is a deliberate, reviewed one.
func TestController_FullMatrix(t *testing.T) {
	controller := NewController()

	expected := map[types.Role][]types.Action{
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

	for role, actions := range expected {
		assert.Equal(t, actions, controller.PermittedActions(role), string(role))
	}
}

func TestController_PermittedActionsIsACopy(t *testing.T) {
	controller := NewController()

	actions := controller.PermittedActions(types.RoleNurse)
	actions[0] = types.ActionDeleteEmployee

	assert.False(t, controller.Permitted(types.RoleNurse, types.ActionDeleteEmployee))
}
