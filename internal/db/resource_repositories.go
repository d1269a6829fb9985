package db

import (
	"database/sql"
	"errors"

	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository struct {
	scopedRepository[models.Event]
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{newScopedRepository[models.Event](database, ownedByCoupleMember, "date IS NULL, date ASC, time ASC, id ASC")}
}

type AttendeeRepository struct {
	scopedRepository[models.Attendee]
}

func NewAttendeeRepository(database *gorm.DB) *AttendeeRepository {
	return &AttendeeRepository{newScopedRepository[models.Attendee](database, ownedByUser, "created_at DESC, id DESC")}
}

// DetachChildren clears parent links pointing at a removed attendee.
func (repo *AttendeeRepository) DetachChildren(parentID uint, userID uint) error {
	return repo.database.Model(&models.Attendee{}).
		Where("parent_id = ? AND user_id = ?", parentID, userID).
		Update("parent_id", nil).Error
}

type DocumentRepository struct {
	scopedRepository[models.Document]
}

func NewDocumentRepository(database *gorm.DB) *DocumentRepository {
	return &DocumentRepository{newScopedRepository[models.Document](database, ownedByCoupleMember, "uploaded_at DESC, id DESC")}
}

type ChecklistRepository struct {
	scopedRepository[models.ChecklistItem]
}

func NewChecklistRepository(database *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{newScopedRepository[models.ChecklistItem](database, ownedByCoupleMember, "due_date IS NULL, due_date ASC, id ASC")}
}

type BudgetItemRepository struct {
	scopedRepository[models.BudgetItem]
}

func NewBudgetItemRepository(database *gorm.DB) *BudgetItemRepository {
	return &BudgetItemRepository{newScopedRepository[models.BudgetItem](database, ownedByCoupleMember, "category ASC, id ASC")}
}

type BudgetTotalRepository struct {
	database *gorm.DB
}

func NewBudgetTotalRepository(database *gorm.DB) *BudgetTotalRepository {
	return &BudgetTotalRepository{database: database}
}

// FindByUser returns a zero amount when the user never set a total.
func (repo *BudgetTotalRepository) FindByUser(userID uint) (models.BudgetTotal, error) {
	total := models.BudgetTotal{}
	err := repo.database.Where("user_id = ?", userID).First(&total).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BudgetTotal{UserID: userID}, nil
	}
	if err != nil {
		return models.BudgetTotal{}, err
	}
	return total, nil
}

func (repo *BudgetTotalRepository) Upsert(total *models.BudgetTotal) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(total).Error
}

type TimelineRepository struct {
	scopedRepository[models.TimelineTask]
}

func NewTimelineRepository(database *gorm.DB) *TimelineRepository {
	return &TimelineRepository{newScopedRepository[models.TimelineTask](database, ownedByUser, "phase ASC, id ASC")}
}

type TrousseauRepository struct {
	scopedRepository[models.TrousseauItem]
}

func NewTrousseauRepository(database *gorm.DB) *TrousseauRepository {
	return &TrousseauRepository{newScopedRepository[models.TrousseauItem](database, ownedByUser, "category ASC, id ASC")}
}

type WeddingDayRepository struct {
	scopedRepository[models.WeddingDay]
}

func NewWeddingDayRepository(database *gorm.DB) *WeddingDayRepository {
	return &WeddingDayRepository{newScopedRepository[models.WeddingDay](database, ownedByUser, "sort_order ASC, id ASC")}
}

func (repo *WeddingDayRepository) NextOrder(userID uint) (int, error) {
	var result struct {
		MaxOrder sql.NullInt64
	}
	if err := repo.database.Model(&models.WeddingDay{}).
		Select("MAX(sort_order) AS max_order").
		Where("user_id = ?", userID).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	if !result.MaxOrder.Valid {
		return 1, nil
	}
	return int(result.MaxOrder.Int64) + 1, nil
}

// SaveAsMainDay stores the day and clears the main flag on the user's other days.
func (repo *WeddingDayRepository) SaveAsMainDay(day *models.WeddingDay) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if day.ID == 0 {
			if err := tx.Create(day).Error; err != nil {
				return err
			}
		} else if err := tx.Save(day).Error; err != nil {
			return err
		}
		return tx.Model(&models.WeddingDay{}).
			Where("user_id = ? AND id <> ?", day.UserID, day.ID).
			Update("is_main_day", false).Error
	})
}

func (repo *WeddingDayRepository) FindMainDay(userID uint) (models.WeddingDay, bool, error) {
	day := models.WeddingDay{}
	result := repo.database.
		Where("user_id = ? AND is_main_day = ?", userID, true).
		Limit(1).
		Find(&day)
	if result.Error != nil {
		return models.WeddingDay{}, false, result.Error
	}
	return day, result.RowsAffected > 0, nil
}
