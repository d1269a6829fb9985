package db

import (
	"gorm.io/gorm"
)

// ownerScope narrows a query to the rows the user may see. The predicate is
// applied inside the same statement as the read, update or delete, so a row
// that belongs to someone else is indistinguishable from a missing one.
type ownerScope func(query *gorm.DB, userID uint) *gorm.DB

func ownedByUser(query *gorm.DB, userID uint) *gorm.DB {
	return query.Where("user_id = ?", userID)
}

func ownedByCoupleMember(query *gorm.DB, userID uint) *gorm.DB {
	return query.Where(
		"couple_id IN (SELECT id FROM couples WHERE bride_id = ? OR groom_id = ?)",
		userID,
		userID,
	)
}

type scopedRepository[T any] struct {
	database *gorm.DB
	scope    ownerScope
	order    string
}

func newScopedRepository[T any](database *gorm.DB, scope ownerScope, order string) scopedRepository[T] {
	return scopedRepository[T]{database: database, scope: scope, order: order}
}

func (repo scopedRepository[T]) ListForUser(userID uint) ([]T, error) {
	records := make([]T, 0)
	query := repo.scope(repo.database.Model(new(T)), userID)
	if repo.order != "" {
		query = query.Order(repo.order)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindForUser returns gorm.ErrRecordNotFound both for unknown ids and for
// rows outside the user's scope.
func (repo scopedRepository[T]) FindForUser(id uint, userID uint) (T, error) {
	var record T
	if err := repo.scope(repo.database.Where("id = ?", id), userID).First(&record).Error; err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

func (repo scopedRepository[T]) Create(record *T) error {
	return repo.database.Create(record).Error
}

func (repo scopedRepository[T]) Save(record *T) error {
	return repo.database.Save(record).Error
}

// DeleteForUser reports gorm.ErrRecordNotFound when nothing in scope matched.
func (repo scopedRepository[T]) DeleteForUser(id uint, userID uint) error {
	result := repo.scope(repo.database.Where("id = ?", id), userID).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
