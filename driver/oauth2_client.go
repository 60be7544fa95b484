package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"youtube-trigger-sidecar/models"
)

// OAuth2TokenResponse represents the response from the OAuth2 token endpoint
type OAuth2TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token"`
	Scope        string    `json:"scope"`
	ExpiresAt    time.Time `json:"-"` // Calculated field
}

// OAuth2 specific error types for better error handling
var (
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")
	ErrRateLimited         = errors.New("OAuth2 API rate limit exceeded")
	ErrTokenRevoked        = errors.New("refresh token has been revoked")
	ErrInvalidGrant        = errors.New("invalid grant type or parameters")
	ErrTemporaryFailure    = errors.New("temporary OAuth2 service failure")
)

// OAuth2ErrorResponse represents an error response from the OAuth2 API
type OAuth2ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// jwtBearerGrantType is the grant type for Google's server-to-server flow
const jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// OAuth2Client handles OAuth2 token exchanges with the Google token endpoint
type OAuth2Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	userAgent    string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewOAuth2Client creates a new OAuth2 client for the Google token endpoint
func NewOAuth2Client(clientID, clientSecret, tokenURL, userAgent string, logger *slog.Logger) *OAuth2Client {
	if logger == nil {
		logger = slog.Default()
	}
	if tokenURL == "" {
		tokenURL = "https://oauth2.googleapis.com/token"
	}
	if userAgent == "" {
		userAgent = "youtube-trigger-sidecar/1.0"
	}

	return &OAuth2Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		userAgent:    userAgent,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
			},
		},
	}
}

// RefreshToken exchanges a refresh token for a new access token
func (c *OAuth2Client) RefreshToken(ctx context.Context, refreshToken string) (*models.GoogleTokenResponse, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	return c.exchange(ctx, data)
}

// ExchangeServiceAccountJWT performs the jwt-bearer grant with a signed
// service-account assertion. Used instead of the refresh-token grant when the
// sidecar runs with a Google service-account key.
func (c *OAuth2Client) ExchangeServiceAccountJWT(ctx context.Context, saEmail, privateKeyPEM string, scopes []string) (*models.GoogleTokenResponse, error) {
	assertion, err := c.signServiceAccountAssertion(saEmail, privateKeyPEM, scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to sign service account assertion: %w", err)
	}

	data := url.Values{
		"grant_type": {jwtBearerGrantType},
		"assertion":  {assertion},
	}

	return c.exchange(ctx, data)
}

// signServiceAccountAssertion builds and signs the RS256 JWT assertion
func (c *OAuth2Client) signServiceAccountAssertion(saEmail, privateKeyPEM string, scopes []string) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("failed to parse service account private key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   saEmail,
		"scope": strings.Join(scopes, " "),
		"aud":   c.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(), // Google caps assertion lifetime at 1h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign assertion: %w", err)
	}

	return signed, nil
}

// exchange posts form data to the token endpoint and maps error responses
func (c *OAuth2Client) exchange(ctx context.Context, data url.Values) (*models.GoogleTokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute token request: %w", err)
	}
	defer resp.Body.Close()

	// Check for HTTP errors FIRST before parsing JSON
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		bodyStr := string(body)

		c.logger.Error("OAuth2 token exchange failed",
			"status_code", resp.StatusCode,
			"response_body", bodyStr,
			"content_type", resp.Header.Get("Content-Type"))

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			// 401 - Invalid refresh token or client credentials
			var oauthErr OAuth2ErrorResponse
			if err := json.Unmarshal(body, &oauthErr); err == nil {
				if oauthErr.Error == "invalid_grant" {
					c.logger.Error("Refresh token is invalid or expired", "oauth2_error", oauthErr.Error, "description", oauthErr.ErrorDescription)
					return nil, ErrInvalidRefreshToken
				}
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidRefreshToken, bodyStr)

		case http.StatusForbidden:
			// 403 - Token may have been revoked
			c.logger.Error("Refresh token may have been revoked")
			return nil, fmt.Errorf("%w: %s", ErrTokenRevoked, bodyStr)

		case http.StatusTooManyRequests:
			// 429 - Rate limited
			retryAfter := resp.Header.Get("Retry-After")
			c.logger.Warn("OAuth2 API rate limited", "retry_after", retryAfter)
			return nil, fmt.Errorf("%w: retry after %s", ErrRateLimited, retryAfter)

		case http.StatusBadRequest:
			// 400 - invalid_grant comes back as 400 from the Google endpoint
			var oauthErr OAuth2ErrorResponse
			if err := json.Unmarshal(body, &oauthErr); err == nil {
				if oauthErr.Error == "invalid_grant" {
					c.logger.Error("Refresh token rejected", "oauth2_error", oauthErr.Error, "description", oauthErr.ErrorDescription)
					return nil, fmt.Errorf("%w: %s", ErrInvalidRefreshToken, oauthErr.ErrorDescription)
				}
				c.logger.Error("Invalid OAuth2 request", "oauth2_error", oauthErr.Error, "description", oauthErr.ErrorDescription)
				return nil, fmt.Errorf("%w: %s", ErrInvalidGrant, oauthErr.ErrorDescription)
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidGrant, bodyStr)

		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// 5xx - Temporary server failures
			c.logger.Warn("OAuth2 server temporary failure", "status_code", resp.StatusCode)
			return nil, fmt.Errorf("%w: HTTP %d", ErrTemporaryFailure, resp.StatusCode)

		default:
			return nil, fmt.Errorf("OAuth2 token exchange failed with status %d: %s", resp.StatusCode, bodyStr)
		}
	}

	// Parse JSON response only after confirming success
	var tokenResponse OAuth2TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	hasNewRefreshToken := tokenResponse.RefreshToken != ""

	googleResponse := &models.GoogleTokenResponse{
		AccessToken:  tokenResponse.AccessToken,
		TokenType:    tokenResponse.TokenType,
		ExpiresIn:    tokenResponse.ExpiresIn,
		RefreshToken: tokenResponse.RefreshToken, // May be empty if not rotated
		Scope:        tokenResponse.Scope,
	}

	c.logger.Info("OAuth2 token exchange successful",
		"expires_in_seconds", tokenResponse.ExpiresIn,
		"token_type", tokenResponse.TokenType,
		"has_new_refresh_token", hasNewRefreshToken)

	return googleResponse, nil
}

// SetHTTPClient allows injecting a custom HTTP client (useful for testing with proxies)
func (c *OAuth2Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetTimeout sets the HTTP client timeout for testing purposes
func (c *OAuth2Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}
