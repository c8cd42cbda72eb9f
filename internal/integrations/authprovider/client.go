package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// defaultIdentityEndpoint endpoint Identity Toolkit для проверки пароля
const defaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Client клиент внешнего auth-провайдера (Firebase)
// Admin SDK используется для чтения и мутаций профиля, Identity Toolkit
// REST - для re-аутентификации текущим паролем (Admin SDK пароль не проверяет)
type Client struct {
	auth             *auth.Client
	httpClient       *http.Client
	identityEndpoint string
	apiKey           string
	log              Logger
}

// NewClient создает клиент auth-провайдера из файла сервисного аккаунта
func NewClient(ctx context.Context, credentialsFile, apiKey, identityEndpoint string, log Logger) (*Client, error) {
	opt := option.WithCredentialsFile(credentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize app: %v", ErrInternal, err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get auth client: %v", ErrInternal, err)
	}

	if identityEndpoint == "" {
		identityEndpoint = defaultIdentityEndpoint
	}

	return &Client{
		auth:             authClient,
		httpClient:       &http.Client{Timeout: 15 * time.Second},
		identityEndpoint: identityEndpoint,
		apiKey:           apiKey,
		log:              log,
	}, nil
}

// VerifySessionToken проверяет ID-токен и возвращает сессию пользователя
// Отсутствие валидной сессии трактуется как "пользователь разлогинен"
func (c *Client) VerifySessionToken(ctx context.Context, idToken string) (*Session, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return c.GetSession(ctx, token.UID)
}

// GetSession читает данные пользователя у провайдера
func (c *Client) GetSession(ctx context.Context, uid string) (*Session, error) {
	record, err := c.auth.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: failed to get user %s: %v", ErrInternal, uid, err)
	}

	providers := make([]string, 0, len(record.ProviderUserInfo))
	for _, info := range record.ProviderUserInfo {
		providers = append(providers, info.ProviderID)
	}

	return &Session{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Providers:   providers,
	}, nil
}

// UpdateProfile меняет отображаемое имя и/или email пользователя
func (c *Client) UpdateProfile(ctx context.Context, uid string, params UpdateProfileParams) error {
	update := &auth.UserToUpdate{}
	changed := false

	if params.DisplayName != nil {
		update = update.DisplayName(*params.DisplayName)
		changed = true
	}
	if params.Email != nil {
		update = update.Email(*params.Email)
		changed = true
	}
	if !changed {
		return nil
	}

	if _, err := c.auth.UpdateUser(ctx, uid, update); err != nil {
		switch {
		case auth.IsEmailAlreadyExists(err):
			return ErrEmailAlreadyInUse
		case auth.IsUserNotFound(err):
			return ErrUserNotFound
		default:
			return fmt.Errorf("%w: failed to update user %s: %v", ErrInternal, uid, err)
		}
	}

	c.log.Info("AuthProvider: profile updated for uid=%s", uid)
	return nil
}

// UpdatePassword устанавливает новый пароль пользователя
// Вызывающий обязан предварительно re-аутентифицировать пользователя
func (c *Client) UpdatePassword(ctx context.Context, uid string, newPassword string) error {
	if _, err := c.auth.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(newPassword)); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: failed to update password for %s: %v", ErrInternal, uid, err)
	}

	c.log.Info("AuthProvider: password updated for uid=%s", uid)
	return nil
}

// Reauthenticate проверяет текущий пароль пользователя через Identity Toolkit
// Неверный пароль - ErrInvalidCredentials; сетевой сбой - ErrNetwork
func (c *Client) Reauthenticate(ctx context.Context, email, password string) error {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s?key=%s", c.identityEndpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var errResp signInErrorResponse
	_ = json.Unmarshal(body, &errResp)

	c.log.Warn("AuthProvider: reauthentication failed for %s: status=%d, message=%s",
		email, resp.StatusCode, errResp.Error.Message)

	if resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, errResp.Error.Message)
	}
	return fmt.Errorf("%w: unexpected status %d", ErrInternal, resp.StatusCode)
}
