package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs and verifies HS256 access and refresh tokens. The two kinds
// use different secrets so neither can stand in for the other.
type Issuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Now defaults to time.Now. It drives both iat/exp and expiry checks.
	Now func() time.Time
}

func (i *Issuer) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

func (i *Issuer) IssueAccessToken(userID, username string) (string, time.Time, error) {
	return i.sign(userID, username, i.AccessTTL, i.AccessSecret)
}

func (i *Issuer) IssueRefreshToken(userID, username string) (string, time.Time, error) {
	return i.sign(userID, username, i.RefreshTTL, i.RefreshSecret)
}

func (i *Issuer) VerifyAccessToken(token string) (*Claims, error) {
	return claimsFromToken(token, i.AccessSecret, i.now)
}

func (i *Issuer) VerifyRefreshToken(token string) (*Claims, error) {
	return claimsFromToken(token, i.RefreshSecret, i.now)
}

func (i *Issuer) sign(userID, username string, ttl time.Duration, secret []byte) (string, time.Time, error) {
	iat := i.now()
	exp := iat.Add(ttl)

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   Subject,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}
