package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Appointment{}))
	return db
}

func TestAppointmentListNewestFirst(t *testing.T) {
	store := NewAppointmentStore(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		appt := &models.Appointment{
			DoctorName:      "Dr. A",
			PatientName:     name,
			PatientEmail:    name + "@x.com",
			PatientPhone:    "555-0100",
			AppointmentDate: "2024-05-01",
			AppointmentTime: "10:00",
		}
		require.NoError(t, store.Create(ctx, appt))
	}

	appts, err := store.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 3)
	assert.Equal(t, "third", appts[0].PatientName)
	assert.Equal(t, "first", appts[2].PatientName)
}

func TestUserStoreTranslatesDuplicate(t *testing.T) {
	store := NewUserStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &models.User{Username: "jane", PasswordHash: "x"}))
	err := store.Create(ctx, &models.User{Username: "jane", PasswordHash: "y"})
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)

	users, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
