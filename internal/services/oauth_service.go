package services

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"spendwise/internal/config"
	apperrors "spendwise/internal/errors"
)

// oauthService implements the Google OAuth code-exchange flow.
type oauthService struct {
	conf     *oauth2.Config
	clientID string
}

// NewOAuthService creates an OAuthServicer from the application config.
// When the Google client credentials are absent the service stays disabled
// and every operation returns ErrOAuthNotConfigured.
func NewOAuthService(cfg *config.Config) OAuthServicer {
	svc := &oauthService{clientID: cfg.GoogleClientID}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		svc.conf = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
	return svc
}

// Enabled reports whether Google OAuth credentials are configured.
func (s *oauthService) Enabled() bool {
	return s.conf != nil
}

// AuthURL returns the Google consent-screen URL for the given state value.
func (s *oauthService) AuthURL(state string) (string, error) {
	if s.conf == nil {
		return "", apperrors.ErrOAuthNotConfigured
	}
	return s.conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// Exchange trades an authorization code for tokens and fetches the Google
// profile via the userinfo API.
func (s *oauthService) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	if s.conf == nil {
		return nil, apperrors.ErrOAuthNotConfigured
	}

	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrOAuthExchange, err)
	}

	svc, err := googleoauth.NewService(ctx, option.WithTokenSource(s.conf.TokenSource(ctx, token)))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrOAuthExchange, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrOAuthExchange, err)
	}

	return &GoogleProfile{
		GoogleID: info.Id,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
	}, nil
}

// VerifyIDToken validates a Google ID token against the tokeninfo endpoint
// and checks it was issued for this application.
func (s *oauthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleProfile, error) {
	if s.conf == nil {
		return nil, apperrors.ErrOAuthNotConfigured
	}

	svc, err := googleoauth.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidIDToken, err)
	}

	info, err := svc.Tokeninfo().IdToken(idToken).Context(ctx).Do()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidIDToken, err)
	}
	if info.Audience != s.clientID {
		return nil, apperrors.ErrInvalidIDToken
	}

	return &GoogleProfile{
		GoogleID: info.UserId,
		Email:    info.Email,
	}, nil
}
