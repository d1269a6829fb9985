package db

import (
	"errors"
	"strings"

	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/gorm"
)

var ErrCoupleMemberTaken = errors.New("user already belongs to a couple")

type CoupleRepository struct {
	database *gorm.DB
}

func NewCoupleRepository(database *gorm.DB) *CoupleRepository {
	return &CoupleRepository{database: database}
}

func (repo *CoupleRepository) withMembers() *gorm.DB {
	return repo.database.Preload("Bride").Preload("Groom").Preload("Planner")
}

// FindForMember returns the couple in which the user is the bride or the groom.
func (repo *CoupleRepository) FindForMember(userID uint) (models.Couple, error) {
	couple := models.Couple{}
	if err := repo.withMembers().
		Where("bride_id = ? OR groom_id = ?", userID, userID).
		Order("id ASC").
		First(&couple).Error; err != nil {
		return models.Couple{}, err
	}
	return couple, nil
}

func (repo *CoupleRepository) FindByID(coupleID uint) (models.Couple, error) {
	couple := models.Couple{}
	if err := repo.withMembers().First(&couple, coupleID).Error; err != nil {
		return models.Couple{}, err
	}
	return couple, nil
}

func (repo *CoupleRepository) Create(couple *models.Couple) error {
	return repo.database.Omit("Bride", "Groom", "Planner").Create(couple).Error
}

// CreateForMembers inserts the couple unless one of its members already
// belongs to another couple. The check and the insert share a transaction.
func (repo *CoupleRepository) CreateForMembers(couple *models.Couple) error {
	members := make([]uint, 0, 2)
	for _, memberID := range []*uint{couple.BrideID, couple.GroomID} {
		if memberID != nil {
			members = append(members, *memberID)
		}
	}

	return repo.database.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Couple{}).
			Where("bride_id IN ? OR groom_id IN ?", members, members).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrCoupleMemberTaken
		}
		return tx.Omit("Bride", "Groom", "Planner").Create(couple).Error
	})
}

func (repo *CoupleRepository) Save(couple *models.Couple) error {
	return repo.database.Omit("Bride", "Groom", "Planner").Save(couple).Error
}

func (repo *CoupleRepository) Delete(coupleID uint) error {
	result := repo.database.Delete(&models.Couple{}, coupleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *CoupleRepository) ListForPlanner(plannerID uint) ([]models.Couple, error) {
	couples := make([]models.Couple, 0)
	if err := repo.withMembers().
		Where("planner_id = ?", plannerID).
		Order("created_at DESC, id DESC").
		Find(&couples).Error; err != nil {
		return nil, err
	}
	return couples, nil
}

// ListPage filters by status and by a case-insensitive search over the
// bride's and groom's name and email.
func (repo *CoupleRepository) ListPage(search string, status string, offset int, limit int) ([]models.Couple, int64, error) {
	filtered := func() *gorm.DB {
		query := repo.database.Model(&models.Couple{}).
			Joins("LEFT JOIN users AS brides ON brides.id = couples.bride_id").
			Joins("LEFT JOIN users AS grooms ON grooms.id = couples.groom_id")
		if status != "" {
			query = query.Where("couples.status = ?", status)
		}
		if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
			pattern := "%" + term + "%"
			query = query.Where(
				"lower(brides.name) LIKE ? OR lower(brides.email) LIKE ? OR lower(grooms.name) LIKE ? OR lower(grooms.email) LIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	couples := make([]models.Couple, 0)
	if err := filtered().
		Select("couples.*").
		Preload("Bride").Preload("Groom").Preload("Planner").
		Order("couples.created_at DESC, couples.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&couples).Error; err != nil {
		return nil, 0, err
	}
	return couples, total, nil
}
