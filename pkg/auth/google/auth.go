package google

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/playpub/pkg/auth/status"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/androidpublisher/v3"
)

const serviceAccountType = "service_account"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// New returns a new instance of google Auth
func New(opts ...Option) Auth {
	g := Auth{
		scopes: []string{androidpublisher.AndroidpublisherScope},
	}
	for _, apply := range opts {
		apply(&g)
	}
	return g
}

// Option is a functor to pass optional parameters to the google authenticator
type Option func(*Auth)

// Scopes overrides the oauth2 scopes requested for the token
func Scopes(scopes ...string) Option {
	return func(g *Auth) {
		if len(scopes) > 0 {
			g.scopes = scopes
		}
	}
}

// Auth implements Authable for google service account keys
type Auth struct {
	scopes []string
}

type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	ProjectID   string `json:"project_id"`
}

func parseKey(key []byte) (serviceAccountKey, error) {
	var k serviceAccountKey
	if err := json.Unmarshal(key, &k); err != nil {
		return serviceAccountKey{}, status.ErrInvalidCredentials.Wrap(err)
	}
	if k.Type != serviceAccountType {
		return serviceAccountKey{}, status.ErrCredentialsType.WrapMessage("key type is %q", k.Type)
	}
	if k.ClientEmail == "" || k.PrivateKey == "" {
		return serviceAccountKey{}, status.ErrInvalidCredentials.WrapMessage("service account key must have client_email and private_key")
	}
	return k, nil
}

// Principal returns the email of the service account owning the key
func (g Auth) Principal(key []byte) (string, error) {
	k, err := parseKey(key)
	if err != nil {
		return "", err
	}
	return k.ClientEmail, nil
}

// Credentials builds oauth2 credentials from a service account key.
//
// Token refresh is handled by the returned token source.
func (g Auth) Credentials(ctx context.Context, key []byte) (*google.Credentials, error) {
	if _, err := parseKey(key); err != nil {
		return nil, err
	}
	creds, err := google.CredentialsFromJSON(ctx, key, g.scopes...)
	if err != nil {
		return nil, status.ErrAuthService.Wrap(err)
	}
	return creds, nil
}
