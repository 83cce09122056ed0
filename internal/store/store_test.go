package store

import (
	"testing"

	"labtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsBuiltinAccounts(t *testing.T) {
	s := New()

	users := s.Users()
	require.Len(t, users, 3)

	byName := map[string]models.UserRole{}
	for _, u := range users {
		byName[u.Username] = u.Role
		assert.Nil(t, u.LastLogin)
		assert.NotEmpty(t, u.PasswordHash)
	}
	assert.Equal(t, models.RoleAdmin, byName["admin"])
	assert.Equal(t, models.RoleSuperUser, byName["super"])
	assert.Equal(t, models.RoleUser, byName["user"])
}

func TestAddUser_RejectsDuplicateUsername(t *testing.T) {
	s := New()
	before := s.Users()

	_, err := s.AddUser("admin", "secret", models.RoleUser)
	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, before, s.Users(), "store must stay unchanged")

	// сравнение с учётом регистра: "Admin" — другое имя
	_, err = s.AddUser("Admin", "secret", models.RoleUser)
	require.NoError(t, err)
}

func TestUpdateUserRole(t *testing.T) {
	s := New()
	actor := mustUser(t, s, "admin")
	target := mustUser(t, s, "user")

	require.NoError(t, s.UpdateUserRole(actor.ID, target.ID, models.RoleSuperUser))

	updated, err := s.UserByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperUser, updated.Role)
}

func TestUpdateUserRole_SelfEditRejected(t *testing.T) {
	s := New()
	actor := mustUser(t, s, "admin")

	err := s.UpdateUserRole(actor.ID, actor.ID, models.RoleUser)
	require.ErrorIs(t, err, ErrSelfEdit)

	unchanged, err := s.UserByID(actor.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, unchanged.Role)
}

func TestDeleteUser(t *testing.T) {
	s := New()
	actor := mustUser(t, s, "admin")
	target := mustUser(t, s, "user")

	require.NoError(t, s.DeleteUser(actor.ID, target.ID))
	_, err := s.UserByID(target.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.ErrorIs(t, s.DeleteUser(actor.ID, actor.ID), ErrSelfDelete)
	require.ErrorIs(t, s.DeleteUser(actor.ID, 9999), ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	s := New()

	user, err := s.Authenticate("admin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	require.NotNil(t, user.LastLogin, "successful login stamps lastLogin")

	// отметка сохраняется в хранилище, не только в копии
	stored := mustUser(t, s, "admin")
	assert.NotNil(t, stored.LastLogin)

	_, err = s.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate("ghost", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEquipmentLifecycle(t *testing.T) {
	s := New()

	a := s.AddEquipment(models.Equipment{Asset: "A-1"})
	b := s.AddEquipment(models.Equipment{Asset: "B-2"})
	require.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ID, a.ID, "ids are monotonic")

	a.Location = "Bldg 5"
	require.NoError(t, s.UpdateEquipment(a))
	got, err := s.EquipmentByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bldg 5", got.Location)

	require.NoError(t, s.DeleteEquipment(b.ID))
	_, err = s.EquipmentByID(b.ID)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	require.ErrorIs(t, s.UpdateEquipment(models.Equipment{ID: 9999}), ErrEquipmentNotFound)
	require.ErrorIs(t, s.DeleteEquipment(9999), ErrEquipmentNotFound)
}

func TestReplaceEquipment_FullReplace(t *testing.T) {
	s := New()
	s.AddEquipment(models.Equipment{Asset: "OLD-1"})
	s.AddEquipment(models.Equipment{Asset: "OLD-2"})

	s.ReplaceEquipment([]models.Equipment{{ID: s.NextID(), Asset: "NEW-1"}})

	items := s.Equipment()
	require.Len(t, items, 1)
	assert.Equal(t, "NEW-1", items[0].Asset)
}

func TestDeleteEquipmentMany(t *testing.T) {
	s := New()
	a := s.AddEquipment(models.Equipment{Asset: "A"})
	b := s.AddEquipment(models.Equipment{Asset: "B"})
	c := s.AddEquipment(models.Equipment{Asset: "C"})

	deleted := s.DeleteEquipmentMany([]int64{a.ID, c.ID, 9999})
	assert.Equal(t, 2, deleted)

	items := s.Equipment()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
}

func TestEquipmentSnapshotIsCopy(t *testing.T) {
	s := New()
	s.AddEquipment(models.Equipment{Asset: "A"})

	snap := s.Equipment()
	snap[0].Asset = "mutated"

	fresh := s.Equipment()
	assert.Equal(t, "A", fresh[0].Asset)
}

func TestActivityLog(t *testing.T) {
	s := New()
	s.LogActivity("admin", "equipment", 1, "create", "first")
	s.LogActivity("admin", "equipment", 2, "delete", "second")

	entries := s.Activity()
	require.Len(t, entries, 2)
	// новые записи первыми
	assert.Equal(t, "second", entries[0].Details)
	assert.Equal(t, "first", entries[1].Details)
}

func mustUser(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	for _, u := range s.Users() {
		if u.Username == username {
			return u
		}
	}
	t.Fatalf("user %q not found", username)
	return models.User{}
}
