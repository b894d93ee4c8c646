package services

import (
	"testing"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	svc := NewSessionService(testConfig(), nil)

	account := &models.Account{IsAdmin: false}
	account.ID = 7

	token, err := svc.IssueToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), session.AccountID)
	assert.False(t, session.IsAdmin)
	assert.NotEmpty(t, session.TokenID)
}

func TestParseTokenCachesAdminFlag(t *testing.T) {
	svc := NewSessionService(testConfig(), nil)

	admin := &models.Account{IsAdmin: true}
	admin.ID = 1

	token, err := svc.IssueToken(admin)
	require.NoError(t, err)

	session, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	svc := NewSessionService(testConfig(), nil)

	other := NewSessionService(&config.Config{
		JWTSecretKey:    "another-secret",
		SessionTTLHours: 1,
	}, nil)

	account := &models.Account{}
	account.ID = 1
	token, err := other.IssueToken(account)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewSessionService(testConfig(), nil)

	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestRevokeTokenWithoutRedis(t *testing.T) {
	// 没有Redis时注销只依赖客户端清除Cookie，调用本身不报错且幂等
	svc := NewSessionService(testConfig(), nil)

	account := &models.Account{}
	account.ID = 3
	token, err := svc.IssueToken(account)
	require.NoError(t, err)

	assert.NoError(t, svc.RevokeToken(token))
	assert.NoError(t, svc.RevokeToken(token))
	assert.NoError(t, svc.RevokeToken("not-a-token"))
}

func TestEachTokenHasUniqueID(t *testing.T) {
	svc := NewSessionService(testConfig(), nil)

	account := &models.Account{}
	account.ID = 5

	first, err := svc.IssueToken(account)
	require.NoError(t, err)
	second, err := svc.IssueToken(account)
	require.NoError(t, err)

	s1, err := svc.ParseToken(first)
	require.NoError(t, err)
	s2, err := svc.ParseToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, s1.TokenID, s2.TokenID)
}
