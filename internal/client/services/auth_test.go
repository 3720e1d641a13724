package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

func TestAuthService_LoginPersistsAndRestores(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	fc := &fakeClient{user: &models.User{ID: 1, Username: "alice"}}
	svc := NewAuthService(fc, db, logging.Discard())

	u, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	name, err := svc.LastUsername(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	// a fresh process: new client without cookies
	fresh := &fakeClient{}
	require.NoError(t, NewAuthService(fresh, db, logging.Discard()).Restore(ctx))
	require.Len(t, fresh.cookies, 1)
	assert.Equal(t, "s-alice", fresh.cookies[0].Value)
}

func TestAuthService_LoginFailureDoesNotPersist(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	fc := &fakeClient{loginErr: &client.APIError{Status: 401, Message: "Invalid credentials"}}
	svc := NewAuthService(fc, db, logging.Discard())

	_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "x"})
	require.ErrorIs(t, err, client.ErrUnauthorized)

	_, ok, err := preferences.NewSQLiteRepository(db).Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_LogoutForgetsSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	fc := &fakeClient{user: &models.User{ID: 1, Username: "bob"}}
	svc := NewAuthService(fc, db, logging.Discard())
	_, err := svc.Register(ctx, models.Registration{Username: "bob", Email: "b@x.io", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 1, fc.logouts)
	assert.Empty(t, fc.cookies)

	_, ok, err := preferences.NewSQLiteRepository(db).Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	name, err := svc.LastUsername(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestAuthService_LogoutSucceedsWhenLocalCleanupFails(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	fc := &fakeClient{user: &models.User{ID: 1, Username: "bob"}}
	svc := NewAuthService(fc, db, logging.Discard())
	_, err := svc.Login(ctx, models.Credentials{Username: "bob", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, db.Close())

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 1, fc.logouts)
	assert.Empty(t, fc.cookies)
}

func TestAuthService_LogoutFailureKeepsSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	fc := &fakeClient{user: &models.User{ID: 1, Username: "bob"}}
	svc := NewAuthService(fc, db, logging.Discard())
	_, err := svc.Login(ctx, models.Credentials{Username: "bob", Password: "123456"})
	require.NoError(t, err)

	fc.logoutErr = client.ErrUnavailable
	require.ErrorIs(t, svc.Logout(ctx), client.ErrUnavailable)
	assert.Len(t, fc.cookies, 1)

	_, ok, err := preferences.NewSQLiteRepository(db).Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_CurrentDropsStaleSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := preferences.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, sessionKey, `[{"name":"session_id","value":"old"}]`))

	svc := NewAuthService(&fakeClient{}, db, logging.Discard())
	u, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	_, ok, err := repo.Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_CurrentPropagatesTransportError(t *testing.T) {
	svc := NewAuthService(&fakeClient{meErr: client.ErrUnavailable}, setupDB(t), logging.Discard())
	_, err := svc.Current(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestAuthService_RestoreIgnoresGarbage(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := preferences.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, sessionKey, `not json`))

	fc := &fakeClient{}
	require.NoError(t, NewAuthService(fc, db, logging.Discard()).Restore(ctx))
	assert.Empty(t, fc.cookies)

	_, ok, err := repo.Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
