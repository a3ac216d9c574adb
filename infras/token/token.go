package token

import (
	"errors"

	"github.com/alexfurtado22/djangobnb/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
)

// Inspector reads claims out of a backend-issued access token without
// verifying its signature. The backend is the only party that verifies
// tokens; this side just needs a fast local answer to "is this session
// plausibly still alive" before deciding whether a getUser round trip is
// worth making.
type Inspector interface {
	IsExpired(tokenString string) (bool, error)
	Subject(tokenString string) (string, error)
}

type inspectorImpl struct {
	parser *jwt.Parser
}

func New() Inspector {
	return &inspectorImpl{
		parser: jwt.NewParser(),
	}
}

func (i *inspectorImpl) IsExpired(tokenString string) (bool, error) {
	claims, err := i.claims(tokenString)
	if err != nil {
		return true, err
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return true, ErrMalformedToken
	}

	return !expiry.After(timezone.Now()), nil
}

func (i *inspectorImpl) Subject(tokenString string) (string, error) {
	claims, err := i.claims(tokenString)
	if err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", ErrMalformedToken
	}

	return subject, nil
}

func (i *inspectorImpl) claims(tokenString string) (jwt.Claims, error) {
	parsed, _, err := i.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, ErrMalformedToken
	}

	return parsed.Claims, nil
}
