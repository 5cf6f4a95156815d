package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Tufail-188/SkinAI-Hub/models"
	"github.com/Tufail-188/SkinAI-Hub/storage"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	users := storage.NewUserStore(db)
	sessions := NewSessionStore(client, time.Hour)
	return NewService(users, sessions, "test-secret", time.Hour), db
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, "jane", "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, "hunter2", first.PasswordHash)

	_, err = svc.Register(ctx, "jane", "different")
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "failed signup must not leave a partial row")
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "jane", "hunter2")
	require.NoError(t, err)

	// Unknown user and wrong password yield the same error.
	_, err = svc.Authenticate(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "jane", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "jane", "hunter2")
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, "not-a-token")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	token, err := svc.Authenticate(ctx, "jane", "hunter2")
	require.NoError(t, err)

	sess, err := svc.Authorize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "jane", sess.Username)

	require.NoError(t, svc.End(ctx, token))

	_, err = svc.Authorize(ctx, token)
	assert.ErrorIs(t, err, models.ErrUnauthorized, "a valid signature must not outlive the session")
}

func TestAuthorizeRejectsTamperedToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "jane", "hunter2")
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, "jane", "hunter2")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Authorize(ctx, tampered)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}
