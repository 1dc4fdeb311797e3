package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/types"
)

func setupDirectoryTest() *AccountDirectory {
	return New("admin", "admin123", logger.NewNop())
}

func TestAccountDirectory_Bootstrap(t *testing.T) {
	dir := setupDirectoryTest()

	assert.True(t, dir.Exists("admin"))
	assert.Equal(t, []types.AccountSummary{{Username: "admin", Role: types.RoleAdmin}}, dir.List())
}

func TestAccountDirectory_Create(t *testing.T) {
	dir := setupDirectoryTest()

	t.Run("creates account with opaque id", func(t *testing.T) {
		account, err := dir.Create("n1", "secret", types.RoleNurse)

		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "n1", account.Username)
		assert.Equal(t, types.RoleNurse, account.Role)
		assert.True(t, dir.Exists("n1"))
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		before := dir.List()

		account, err := dir.Create("admin", "other", types.RoleDoctor)

		assert.Nil(t, account)
		assert.True(t, types.IsCode(err, types.ErrCodeDuplicateUsername))
		assert.Equal(t, before, dir.List())
	})

	t.Run("usernames are case-sensitive", func(t *testing.T) {
		_, err := dir.Create("Admin", "pw", types.RoleDoctor)
		assert.NoError(t, err)
	})
}

func TestAccountDirectory_Delete(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		dir := setupDirectoryTest()

		err := dir.Delete("ghost")
		assert.True(t, types.IsCode(err, types.ErrCodeNotFound))
	})

	t.Run("last admin is protected", func(t *testing.T) {
		dir := setupDirectoryTest()

		err := dir.Delete("admin")

		assert.True(t, types.IsCode(err, types.ErrCodeLastAdmin))
		assert.True(t, dir.Exists("admin"))
		assert.Len(t, dir.List(), 1)
	})

	t.Run("admin can be deleted when another remains", func(t *testing.T) {
		dir := setupDirectoryTest()
		_, err := dir.Create("admin2", "pw", types.RoleAdmin)
		require.NoError(t, err)

		err = dir.Delete("admin")

		assert.NoError(t, err)
		assert.False(t, dir.Exists("admin"))
		assert.True(t, dir.Exists("admin2"))

		// admin2 is now the last admin
		err = dir.Delete("admin2")
		assert.True(t, types.IsCode(err, types.ErrCodeLastAdmin))
	})

	t.Run("non-admin roles are never protected", func(t *testing.T) {
		dir := setupDirectoryTest()
		_, err := dir.Create("d1", "pw", types.RoleDoctor)
		require.NoError(t, err)

		assert.NoError(t, dir.Delete("d1"))
		assert.False(t, dir.Exists("d1"))
	})
}

func TestAccountDirectory_Authenticate(t *testing.T) {
	dir := setupDirectoryTest()

	t.Run("exact match succeeds", func(t *testing.T) {
		account, err := dir.Authenticate("admin", "admin123")

		require.NoError(t, err)
		assert.Equal(t, "admin", account.Username)
		assert.Equal(t, types.RoleAdmin, account.Role)
	})

	t.Run("failure is uniform for unknown user and wrong password", func(t *testing.T) {
		_, unknownErr := dir.Authenticate("ghost", "admin123")
		_, wrongErr := dir.Authenticate("admin", "nope")

		assert.True(t, types.IsCode(unknownErr, types.ErrCodeAuthFailed))
		assert.True(t, types.IsCode(wrongErr, types.ErrCodeAuthFailed))
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("returned account is a detached copy", func(t *testing.T) {
		account, err := dir.Authenticate("admin", "admin123")
		require.NoError(t, err)

		account.Password = "mutated"

		again, err := dir.Authenticate("admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, "admin123", again.Password)
	})
}

func TestAccountDirectory_SetPassword(t *testing.T) {
	dir := setupDirectoryTest()

	require.NoError(t, dir.SetPassword("admin", "newpass"))

	_, err := dir.Authenticate("admin", "admin123")
	assert.True(t, types.IsCode(err, types.ErrCodeAuthFailed))

	_, err = dir.Authenticate("admin", "newpass")
	assert.NoError(t, err)

	assert.True(t, types.IsCode(dir.SetPassword("ghost", "pw"), types.ErrCodeNotFound))
}

func TestAccountDirectory_ListOrder(t *testing.T) {
	dir := setupDirectoryTest()
	dir.Create("d1", "pw", types.RoleDoctor)
	dir.Create("n1", "pw", types.RoleNurse)
	dir.Create("p1", "pw", types.RolePharmacist)

	assert.Equal(t, []types.AccountSummary{
		{Username: "admin", Role: types.RoleAdmin},
		{Username: "d1", Role: types.RoleDoctor},
		{Username: "n1", Role: types.RoleNurse},
		{Username: "p1", Role: types.RolePharmacist},
	}, dir.List())
}
