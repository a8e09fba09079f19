package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckToken(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid jwt", token: signedToken(now.Add(time.Hour))},
		{name: "expired jwt", token: signedToken(now.Add(-time.Second)), wantErr: ErrSessionExpired},
		{name: "expires exactly now", token: signedToken(now), wantErr: ErrSessionExpired},
		{name: "opaque token", token: "not-a-jwt"},
		{name: "empty", token: "", wantErr: ErrMissingToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckToken(tc.token, now)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTokenSources(t *testing.T) {
	token, err := StaticTokenSource(" abc ").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = StaticTokenSource("").Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)

	failing := TokenSourceFunc(func(context.Context) (string, error) {
		return "", errors.New("keyring locked")
	})
	_, err = failing.Token(context.Background())
	assert.EqualError(t, err, "keyring locked")
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "fallback.xlsx", attachmentName("", "fallback.xlsx"))
	assert.Equal(t, "fallback.xlsx", attachmentName("attachment", "fallback.xlsx"))
	assert.Equal(t, "fallback.xlsx", attachmentName("%%invalid", "fallback.xlsx"))
	assert.Equal(t, "report.xlsx", attachmentName(`attachment; filename="report.xlsx"`, "fallback.xlsx"))
	assert.Equal(t, "evil.xlsx", attachmentName(`attachment; filename="..\\..\\evil.xlsx"`, "fallback.xlsx"))
}
