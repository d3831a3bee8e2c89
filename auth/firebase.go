package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// IdentityToken is the verified identity extracted from the provider's token.
type IdentityToken struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// Verifier resolves a provider ID token to a verified identity.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (IdentityToken, error)
}

// FirebaseVerifier checks tokens against the configured Firebase project,
// including revocation and audience.
type FirebaseVerifier struct {
	client    *fbauth.Client
	projectID string
}

func NewFirebaseVerifier(ctx context.Context) (*FirebaseVerifier, error) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client, projectID: projectID}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (IdentityToken, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return IdentityToken{}, err
	}
	if token.Audience != v.projectID {
		return IdentityToken{}, errors.New("invalid token audience")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)

	return IdentityToken{
		UID:     token.UID,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
