package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinicore/hms/internal/access"
	"github.com/clinicore/hms/internal/directory"
	"github.com/clinicore/hms/internal/patients"
	"github.com/clinicore/hms/internal/session"
	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/monitoring"
)

func setupShellTest(input string) (*Shell, *bytes.Buffer) {
	log := logger.NewNop()
	dir := directory.New("admin", "admin123", log)
	registry := patients.NewRegistry(log)
	coordinator := session.NewCoordinator(dir, registry, access.NewController(), monitoring.NewMetricsCollector(), log)

	out := &bytes.Buffer{}
	return New(coordinator, strings.NewReader(input), out, log), out
}

func TestShell_AdminCreatesNurseWhoAdmitsPatient(t *testing.T) {
	// Admin menu: 1 register employee ... 5 logout.
	// Nurse menu: 1 register patient, 2 view basic, 3 change password, 4 logout.
	input := strings.Join([]string{
		"1", // login
		"admin",
		"admin123",
		"1", // register employee
		"n1",
		"3", // role: Nurse
		"secret",
		"5", // logout
		"1", // login
		"n1",
		"secret",
		"1", // register new patient
		"Jane",
		"30",
		"F",
		"fever",
		"2024-03-01",
		"2", // view basic patient information
		"1",
		"4", // logout
		"2", // exit
	}, "\n") + "\n"

	shell, out := setupShellTest(input)
	shell.Run()

	output := out.String()
	assert.Contains(t, output, "Login successful. Welcome, admin (Admin)")
	assert.Contains(t, output, "Employee registered: n1 (Nurse)")
	assert.Contains(t, output, "Login successful. Welcome, n1 (Nurse)")
	assert.Contains(t, output, "Patient registered with ID: 1")
	assert.Contains(t, output, "ID: 1 | Name: Jane")
	assert.Contains(t, output, "Name: Jane, Age: 30, Gender: F")
	assert.Contains(t, output, "Exiting. Goodbye.")
}

func TestShell_RejectsBadCredentials(t *testing.T) {
	input := "1\nadmin\nwrong\n2\n"

	shell, out := setupShellTest(input)
	shell.Run()

	output := out.String()
	assert.Contains(t, output, "Invalid username or password.")
	assert.NotContains(t, output, "Login successful")
}

func TestShell_MenuListsOnlyPermittedActions(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"admin",
		"admin123",
		"5", // logout
		"2", // exit
	}, "\n") + "\n"

	shell, out := setupShellTest(input)
	shell.Run()

	output := out.String()
	assert.Contains(t, output, "--- Admin Menu ---")
	assert.Contains(t, output, "Register employee")
	assert.NotContains(t, output, "Register new patient")
	assert.NotContains(t, output, "Add billing entry")
}

func TestShell_DoctorMenuLabels(t *testing.T) {
	input := strings.Join([]string{
		"1", // login
		"admin",
		"admin123",
		"1", // register employee
		"d1",
		"2", // role: Doctor
		"secret",
		"5", // logout
		"1", // login
		"d1",
		"secret",
		"8", // logout (doctor menu: 7 actions + logout)
		"2", // exit
	}, "\n") + "\n"

	shell, out := setupShellTest(input)
	shell.Run()

	output := out.String()
	assert.Contains(t, output, "--- Doctor Menu ---")
	assert.Contains(t, output, "View registered patient records (brief)")
	assert.Contains(t, output, "View full patient record by ID")
	assert.NotContains(t, output, "Doctor Menu ---\n1. View basic patient information")
}

func TestShell_ReValidatesInput(t *testing.T) {
	input := strings.Join([]string{
		"nonsense", // not a number
		"9",        // out of range
		"2",        // exit
	}, "\n") + "\n"

	shell, out := setupShellTest(input)
	shell.Run()

	output := out.String()
	assert.Contains(t, output, "Invalid input. Enter a number.")
	assert.Contains(t, output, "Enter a number between 1 and 2.")
	assert.Contains(t, output, "Exiting. Goodbye.")
}

func TestShell_EndOfInputStopsCleanly(t *testing.T) {
	shell, out := setupShellTest("")

	shell.Run()

	assert.Contains(t, out.String(), "Exiting. Goodbye.")
}

func TestShell_UnknownPatientIsReported(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"admin",
		"admin123",
		"1", // register employee (accounts manager)
		"a1",
		"5", // role: Accounts Manager
		"secret",
		"5", // logout
		"1",
		"a1",
		"secret",
		"1", // view complete patient bill
		"999",
		"5", // logout
		"2",
	}, "\n") + "\n"

	shell, out := setupShellTest(input)
	shell.Run()

	assert.Contains(t, out.String(), "Patient or user not found.")
}
