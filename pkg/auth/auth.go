package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

var JWTKey = jwtKey()

func jwtKey() []byte {
	if k := os.Getenv("JWT_KEY"); k != "" {
		return []byte(k)
	}
	return []byte("circulation-dev-key")
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

// NewToken issues a signed JWT carrying the username and a typed role claim.
func NewToken(username, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		Profile: Profile{Username: username, Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
}

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, username)
	return context.WithValue(ctx, userRoleKey, role)
}

func Username(ctx context.Context) string {
	name, _ := ctx.Value(userNameKey).(string)
	return name
}

func Role(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

func IsStaff(ctx context.Context) bool {
	return Role(ctx) == RoleStaff
}
