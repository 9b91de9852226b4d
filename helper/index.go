package helper

import (
	"errors"
	"fmt"
	"fsdine_restaurant/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim, secret string, lifetime time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(lifetime)

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["adminId"] = tokenClaim.AdminId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = expiresAt.Unix()

	t, err := token.SignedString([]byte(secret))
	return t, expiresAt, err
}

func ParseToken(tokenString, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
}

func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("unexpected claims type")
	}
	adminId, ok := claims["adminId"].(float64)
	if !ok || adminId <= 0 {
		return model.TokenClaim{}, errors.New("token has no admin id")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return model.TokenClaim{
		AdminId: uint(adminId),
		Email:   email,
		Role:    role,
	}, nil
}

// GetAdminClaim reads the claim stored by middleware.Protected.
func GetAdminClaim(c *fiber.Ctx) (model.TokenClaim, bool) {
	claim, ok := c.Locals("admin").(model.TokenClaim)
	return claim, ok
}
