package repoargs

import "github.com/kursusin/affiliate-backend/internal/domain"

type CreateUser struct {
	Email             string
	FullName          string
	Role              domain.RoleType
	EncryptedPassword string
}
