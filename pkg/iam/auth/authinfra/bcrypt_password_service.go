package authinfra

import (
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordService implements admin.PasswordService with bcrypt
type BcryptPasswordService struct {
	cost int
}

func NewBcryptPasswordService(cost int) admin.PasswordService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordService{
		cost: cost,
	}
}

func (s *BcryptPasswordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *BcryptPasswordService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
