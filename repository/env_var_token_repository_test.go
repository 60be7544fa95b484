package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youtube-trigger-sidecar/models"
)

func TestEnvVarTokenRepository_GetCurrentToken(t *testing.T) {
	tests := map[string]struct {
		refreshToken  string
		accessToken   string
		expectError   bool
		expectExpired bool
	}{
		"refresh_token_only_forces_refresh": {
			refreshToken:  "env_refresh_token",
			expectExpired: true,
		},
		"access_and_refresh_token": {
			refreshToken:  "env_refresh_token",
			accessToken:   "env_access_token",
			expectExpired: false,
		},
		"missing_refresh_token": {
			expectError: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("YOUTUBE_REFRESH_TOKEN", tc.refreshToken)
			t.Setenv("YOUTUBE_ACCESS_TOKEN", tc.accessToken)

			repo := NewEnvVarTokenRepository(nil)
			token, err := repo.GetCurrentToken(context.Background())

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.refreshToken, token.RefreshToken)
			assert.Equal(t, tc.accessToken, token.AccessToken)
			assert.Equal(t, "Bearer", token.TokenType)
			assert.Equal(t, tc.expectExpired, token.IsExpired())
		})
	}
}

func TestEnvVarTokenRepository_SaveToken_ReadOnly(t *testing.T) {
	t.Setenv("YOUTUBE_REFRESH_TOKEN", "original_token")

	repo := NewEnvVarTokenRepository(nil)

	// Saving never fails even though the backing store cannot be written
	err := repo.SaveToken(context.Background(), &models.OAuth2Token{
		AccessToken:  "new_access",
		RefreshToken: "rotated_token",
		TokenType:    "Bearer",
	})
	assert.NoError(t, err)
}

func TestEnvVarTokenRepository_IsHealthy(t *testing.T) {
	repo := NewEnvVarTokenRepository(nil)

	t.Setenv("YOUTUBE_REFRESH_TOKEN", "")
	assert.Error(t, repo.IsHealthy(context.Background()))

	t.Setenv("YOUTUBE_REFRESH_TOKEN", "present")
	assert.NoError(t, repo.IsHealthy(context.Background()))
}
