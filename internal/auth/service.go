// Package auth holds the session-validating operations: login, register,
// federated sign-in, and logout. An identity is committed to the session
// store only after a two-step confirmation: the credential exchange must
// succeed and a follow-up profile fetch must prove the session is usable.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/golang-jwt/jwt/v5"

	"tienda/internal/api"
	"tienda/internal/profile"
	"tienda/pkg/result"
)

// Pre-network validation messages.
const (
	MsgCredentialsRequired = "El correo electrónico y la contraseña son requeridos"
	MsgInvalidEmail        = "Por favor ingresa un correo electrónico válido"
	MsgShortPassword       = "La contraseña debe tener al menos 6 caracteres"
	MsgNameRequired        = "El nombre y el apellido son requeridos"
	MsgSignInCanceled      = "Inicio de sesión cancelado."
)

const minPasswordLen = 6

// ErrValidation marks failures produced before any network call.
var ErrValidation = errors.New("auth validation failed")

// SessionStore is the slice of the session store the auth flows mutate.
type SessionStore interface {
	MarkAuthenticated(userID int, email string) error
	Clear() error
}

// CredentialJar is the slice of the cookie jar logout empties.
type CredentialJar interface {
	Clear() error
}

// ProfileFetcher is the follow-up confirmation call. profile.Service
// satisfies it.
type ProfileFetcher interface {
	Get(ctx context.Context) result.Result[profile.User]
}

type Service struct {
	api      *api.Client
	sessions SessionStore
	jar      CredentialJar
	profiles ProfileFetcher
	broker   CredentialBroker
	log      *slog.Logger
}

func NewService(client *api.Client, sessions SessionStore, jar CredentialJar, profiles ProfileFetcher, broker CredentialBroker, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		api:      client,
		sessions: sessions,
		jar:      jar,
		profiles: profiles,
		broker:   broker,
		log:      log,
	}
}

// sessionDTO is the credential exchange acknowledgement. The identity it
// carries is advisory; the profile fetch is what the client trusts.
type sessionDTO struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

// Login authenticates with email and password. Validation short-circuits
// before any network call; the session store is touched only after both the
// login and the profile confirmation succeed.
func (s *Service) Login(ctx context.Context, email, password string) result.Result[profile.User] {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return result.Fail[profile.User](ErrValidation, MsgCredentialsRequired)
	}
	if !govalidator.IsEmail(email) {
		return result.Fail[profile.User](ErrValidation, MsgInvalidEmail)
	}

	body := map[string]string{"email": email, "password": password}
	primary := api.Call[sessionDTO](ctx, s.api, http.MethodPost, "/auth/login", body)
	if !primary.Ok() {
		return result.Forward[sessionDTO, profile.User](primary)
	}

	return s.confirm(ctx)
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates an account and signs in, with the same two-step
// confirmation as Login.
func (s *Service) Register(ctx context.Context, in RegisterInput) result.Result[profile.User] {
	in.Email = strings.TrimSpace(in.Email)
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return result.Fail[profile.User](ErrValidation, MsgNameRequired)
	}
	if in.Email == "" || in.Password == "" {
		return result.Fail[profile.User](ErrValidation, MsgCredentialsRequired)
	}
	if !govalidator.IsEmail(in.Email) {
		return result.Fail[profile.User](ErrValidation, MsgInvalidEmail)
	}
	if len(in.Password) < minPasswordLen {
		return result.Fail[profile.User](ErrValidation, MsgShortPassword)
	}

	body := map[string]string{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"password":   in.Password,
	}
	primary := api.Call[sessionDTO](ctx, s.api, http.MethodPost, "/auth/register", body)
	if !primary.Ok() {
		return result.Forward[sessionDTO, profile.User](primary)
	}

	return s.confirm(ctx)
}

// FederatedSignIn obtains an ID token from the credential broker and
// exchanges it with the backend. A user cancellation in the broker is its
// own terminal outcome.
func (s *Service) FederatedSignIn(ctx context.Context) result.Result[profile.User] {
	token, err := s.broker.IdentityToken(ctx)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return result.Fail[profile.User](err, MsgSignInCanceled)
		}
		return result.Fail[profile.User](err, result.FallbackMessage)
	}

	if email := tokenEmail(token); email != "" {
		s.log.Debug("federated identity resolved", "email", email)
	}

	body := map[string]string{"id_token": token}
	primary := api.Call[sessionDTO](ctx, s.api, http.MethodPost, "/auth/federated", body)
	if !primary.Ok() {
		return result.Forward[sessionDTO, profile.User](primary)
	}

	return s.confirm(ctx)
}

// confirm is the second step shared by every sign-in flow: re-validate the
// fresh session with a profile fetch, and only then commit the identity.
func (s *Service) confirm(ctx context.Context) result.Result[profile.User] {
	confirmed := s.profiles.Get(ctx)
	if !confirmed.Ok() {
		return confirmed
	}

	user := confirmed.Value()
	if err := s.sessions.MarkAuthenticated(user.ID, user.Email); err != nil {
		s.log.Warn("session persist failed after sign-in", "error", err)
		return result.Fail[profile.User](err, result.FallbackMessage)
	}
	return confirmed
}

// Logout always succeeds from the client's perspective. It clears the
// credential jar, then the session store; there is no network call, the
// server-side session dies with its cookie.
func (s *Service) Logout() {
	if err := s.jar.Clear(); err != nil {
		s.log.Warn("credential jar clear failed", "error", err)
	}
	if err := s.sessions.Clear(); err != nil {
		s.log.Warn("session clear failed", "error", err)
	}
}

// tokenEmail pulls the email claim out of the provider's ID token without
// verifying the signature; verification belongs to the backend exchange.
func tokenEmail(token string) string {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
