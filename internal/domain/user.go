package domain

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações do usuário presentes no token emitido pelo serviço de identidade
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

// UserKey identifica o usuário para recursos por usuário, como o painel
func (c *Claims) UserKey() string {
	if c.UserID != 0 {
		return strconv.Itoa(c.UserID)
	}
	return c.Subject
}
