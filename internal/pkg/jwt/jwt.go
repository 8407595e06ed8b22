package jwt

import (
	"time"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(actor user.Actor) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(actor user.Actor) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":     actor.UserID,
		"email":       actor.Email,
		"name":        actor.Name,
		"employee_id": valueOrNil(actor.EmployeeID),
		"role":        string(actor.Role),
		"type":        TokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ActorFromClaims rebuilds the authenticated principal from verified access token claims.
func ActorFromClaims(claims map[string]interface{}) (user.Actor, bool) {
	if t, _ := claims["type"].(string); t != TokenTypeAccess {
		return user.Actor{}, false
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || !user.Role(role).IsValid() {
		return user.Actor{}, false
	}

	actor := user.Actor{UserID: userID, Role: user.Role(role)}
	actor.Email, _ = claims["email"].(string)
	actor.Name, _ = claims["name"].(string)
	actor.EmployeeID, _ = claims["employee_id"].(string)
	return actor, true
}

func valueOrNil(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
