package services

import (
	"errors"

	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/gorm"
)

// ScopedRepository reads and writes records visible to one user. Lookups and
// deletes for rows outside the scope report gorm.ErrRecordNotFound.
type ScopedRepository[T any] interface {
	ListForUser(userID uint) ([]T, error)
	FindForUser(id uint, userID uint) (T, error)
	Create(record *T) error
	Save(record *T) error
	DeleteForUser(id uint, userID uint) error
}

type CoupleMemberLookup interface {
	FindForMember(userID uint) (models.Couple, error)
}

func findCoupleForMember(couples CoupleMemberLookup, userID uint) (models.Couple, error) {
	couple, err := couples.FindForMember(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Couple{}, ErrCoupleNotFound
		}
		return models.Couple{}, err
	}
	return couple, nil
}
