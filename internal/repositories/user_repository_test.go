package repositories

import (
	"testing"

	"hiringbooth/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := seedUser(t, db, models.UserRoleSeeker)

	dup := &models.User{
		Email:        user.Email,
		PasswordHash: "hash",
		Role:         models.UserRoleSeeker,
	}
	err := repo.Create(db, dup)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmailPreloadsProfiles(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	employer := seedUser(t, db, models.UserRoleEmployer)
	require.NoError(t, db.Create(&models.CompanyProfile{
		UserID:      employer.ID,
		CompanyName: "Acme Inc",
	}).Error)

	found, err := repo.FindByEmail(db, employer.Email)
	require.NoError(t, err)
	require.NotNil(t, found.CompanyProfile)
	assert.Equal(t, "Acme Inc", found.CompanyProfile.CompanyName)

	_, err = repo.FindByEmail(db, "nobody@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_SetVerifiedClearsOTP(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := seedUser(t, db, models.UserRoleSeeker)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"is_verified": false,
		"otp_code":    "123456",
	}).Error)

	require.NoError(t, repo.SetVerified(db, user.ID))

	found, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsVerified)
	assert.Empty(t, found.OTPCode)
	assert.Nil(t, found.OTPExpiresAt)
}

func TestUserRepository_SetApproval(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	employer := seedUser(t, db, models.UserRoleEmployer)

	require.NoError(t, repo.SetApproval(db, employer.ID, true))
	found, err := repo.FindByID(db, employer.ID)
	require.NoError(t, err)
	assert.True(t, found.IsApproved)

	assert.ErrorIs(t, repo.SetApproval(db, "missing-id", true), ErrUserNotFound)
}

func TestUserRepository_FindWithFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	seedUser(t, db, models.UserRoleSeeker)
	seedUser(t, db, models.UserRoleSeeker)
	seedUser(t, db, models.UserRoleEmployer)

	users, total, err := repo.FindWithFilter(db, UserFilter{Role: models.UserRoleSeeker})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)

	// пагинация не ломает total
	users, total, err = repo.FindWithFilter(db, UserFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 2)
}

func TestUserRepository_FindPendingEmployers(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	pending := seedUser(t, db, models.UserRoleEmployer)
	approved := seedUser(t, db, models.UserRoleEmployer)
	require.NoError(t, repo.SetApproval(db, approved.ID, true))
	seedUser(t, db, models.UserRoleSeeker)

	employers, err := repo.FindPendingEmployers(db)
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, pending.ID, employers[0].ID)
}

func TestUserRepository_DeleteRemovesAssociations(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	seeker := seedUser(t, db, models.UserRoleSeeker)
	require.NoError(t, db.Create(&models.UserProfile{UserID: seeker.ID, FullName: "Test"}).Error)

	require.NoError(t, repo.Delete(db, seeker.ID))

	_, err := repo.FindByID(db, seeker.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var profiles int64
	db.Model(&models.UserProfile{}).Where("user_id = ?", seeker.ID).Count(&profiles)
	assert.EqualValues(t, 0, profiles)

	assert.ErrorIs(t, repo.Delete(db, seeker.ID), ErrUserNotFound)
}
