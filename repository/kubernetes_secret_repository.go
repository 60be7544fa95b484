// ABOUTME: Kubernetes Secret-based OAuth2TokenRepository implementation
// ABOUTME: Persists rotated refresh tokens across sidecar restarts

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"youtube-trigger-sidecar/models"
)

// KubernetesSecretRepository implements OAuth2TokenRepository using Kubernetes Secrets
type KubernetesSecretRepository struct {
	clientset  kubernetes.Interface
	namespace  string
	secretName string
	logger     *slog.Logger
}

// NewKubernetesSecretRepository creates a new Secret-based token repository
// using the in-cluster config of the running Pod
func NewKubernetesSecretRepository(namespace, secretName string, logger *slog.Logger) (*KubernetesSecretRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}

	config, err := rest.InClusterConfig()
	if err != nil {
		logger.Error("Failed to create in-cluster config", "error", err)
		return nil, fmt.Errorf("failed to create Kubernetes config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		logger.Error("Failed to create Kubernetes clientset", "error", err)
		return nil, fmt.Errorf("failed to create Kubernetes clientset: %w", err)
	}

	return &KubernetesSecretRepository{
		clientset:  clientset,
		namespace:  namespace,
		secretName: secretName,
		logger:     logger,
	}, nil
}

// NewKubernetesSecretRepositoryWithClientset creates a repository with a custom clientset (for testing)
func NewKubernetesSecretRepositoryWithClientset(clientset kubernetes.Interface, namespace, secretName string, logger *slog.Logger) *KubernetesSecretRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &KubernetesSecretRepository{
		clientset:  clientset,
		namespace:  namespace,
		secretName: secretName,
		logger:     logger,
	}
}

// GetCurrentToken retrieves the current OAuth2 token from the Secret
func (r *KubernetesSecretRepository) GetCurrentToken(ctx context.Context) (*models.OAuth2Token, error) {
	r.logger.Debug("Retrieving OAuth2 token from Kubernetes Secret",
		"namespace", r.namespace,
		"secret_name", r.secretName)

	secret, err := r.clientset.CoreV1().Secrets(r.namespace).Get(
		ctx, r.secretName, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, ErrTokenNotFound
		}
		r.logger.Error("Failed to retrieve secret from Kubernetes",
			"error", err,
			"namespace", r.namespace,
			"secret_name", r.secretName)
		return nil, fmt.Errorf("failed to retrieve token secret: %w", err)
	}

	tokenDataBytes, exists := secret.Data["token_data"]
	if !exists {
		r.logger.Error("Token data not found in secret", "secret_name", r.secretName)
		return nil, ErrTokenNotFound
	}

	var token models.OAuth2Token
	if err := json.Unmarshal(tokenDataBytes, &token); err != nil {
		r.logger.Error("Failed to parse token data from secret", "error", err)
		return nil, fmt.Errorf("invalid token data in secret: %w", err)
	}

	r.logger.Info("Retrieved OAuth2 token from Kubernetes Secret",
		"expires_at", token.ExpiresAt,
		"is_expired", token.IsExpired())

	return &token, nil
}

// SaveToken stores a refreshed OAuth2 token, creating the Secret when missing
func (r *KubernetesSecretRepository) SaveToken(ctx context.Context, token *models.OAuth2Token) error {
	if token == nil || token.AccessToken == "" {
		return ErrInvalidToken
	}

	r.logger.Info("Saving OAuth2 token to Kubernetes Secret",
		"secret_name", r.secretName,
		"expires_at", token.ExpiresAt)

	tokenBytes, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}

	secretData := map[string][]byte{
		"token_data":    tokenBytes,
		"access_token":  []byte(token.AccessToken),
		"refresh_token": []byte(token.RefreshToken),
		"expires_at":    []byte(token.ExpiresAt.Format(time.RFC3339)),
	}

	_, err = r.clientset.CoreV1().Secrets(r.namespace).Get(
		ctx, r.secretName, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return r.createSecret(ctx, secretData)
		}
		return fmt.Errorf("failed to get current secret for update: %w", err)
	}

	return r.updateSecret(ctx, secretData)
}

// createSecret creates a new secret with the given data
func (r *KubernetesSecretRepository) createSecret(ctx context.Context, data map[string][]byte) error {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      r.secretName,
			Namespace: r.namespace,
			Labels: map[string]string{
				"app.kubernetes.io/name":       "youtube-trigger-sidecar",
				"app.kubernetes.io/component":  "oauth2-token",
				"app.kubernetes.io/managed-by": "youtube-trigger-sidecar",
			},
			Annotations: map[string]string{
				"youtube-trigger-sidecar/last-updated": time.Now().Format(time.RFC3339),
			},
		},
		Type: corev1.SecretTypeOpaque,
		Data: data,
	}

	_, err := r.clientset.CoreV1().Secrets(r.namespace).Create(ctx, secret, metav1.CreateOptions{})
	if err != nil {
		r.logger.Error("Failed to create secret", "error", err)
		return fmt.Errorf("failed to create token secret: %w", err)
	}

	r.logger.Info("Successfully created OAuth2 token secret")
	return nil
}

// updateSecret updates an existing secret with the given data
func (r *KubernetesSecretRepository) updateSecret(ctx context.Context, data map[string][]byte) error {
	currentSecret, err := r.clientset.CoreV1().Secrets(r.namespace).Get(
		ctx, r.secretName, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("failed to get current secret for update: %w", err)
	}

	currentSecret.Data = data
	if currentSecret.Annotations == nil {
		currentSecret.Annotations = make(map[string]string)
	}
	currentSecret.Annotations["youtube-trigger-sidecar/last-updated"] = time.Now().Format(time.RFC3339)

	_, err = r.clientset.CoreV1().Secrets(r.namespace).Update(ctx, currentSecret, metav1.UpdateOptions{})
	if err != nil {
		r.logger.Error("Failed to update secret", "error", err)
		return fmt.Errorf("failed to update token secret: %w", err)
	}

	r.logger.Info("Successfully updated OAuth2 token secret")
	return nil
}

// IsHealthy checks if the repository can access the Kubernetes API
func (r *KubernetesSecretRepository) IsHealthy(ctx context.Context) error {
	_, err := r.clientset.CoreV1().Secrets(r.namespace).Get(
		ctx, r.secretName, metav1.GetOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		// A missing secret is fine (it can be created); auth or connectivity
		// failures are not
		return fmt.Errorf("kubernetes API connectivity check failed: %w", err)
	}

	return nil
}

// GetStoragePath returns description of storage location
func (r *KubernetesSecretRepository) GetStoragePath() string {
	return fmt.Sprintf("Kubernetes Secret %s/%s", r.namespace, r.secretName)
}
