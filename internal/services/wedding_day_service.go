package services

import "github.com/terraincognita07/mariage/internal/models"

type WeddingDayInput struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsMainDay   bool    `json:"isMainDay"`
}

type WeddingDayRepository interface {
	ScopedRepository[models.WeddingDay]
	NextOrder(userID uint) (int, error)
	SaveAsMainDay(day *models.WeddingDay) error
	FindMainDay(userID uint) (models.WeddingDay, bool, error)
}

type WeddingDayService struct {
	days WeddingDayRepository
}

func NewWeddingDayService(days WeddingDayRepository) *WeddingDayService {
	return &WeddingDayService{days: days}
}

func (service *WeddingDayService) List(userID uint) ([]models.WeddingDay, error) {
	return service.days.ListForUser(userID)
}

func (service *WeddingDayService) MainDay(userID uint) (models.WeddingDay, bool, error) {
	return service.days.FindMainDay(userID)
}

func (service *WeddingDayService) Create(userID uint, input WeddingDayInput) (models.WeddingDay, error) {
	name, err := requiredText("name", input.Name)
	if err != nil {
		return models.WeddingDay{}, err
	}
	date, err := requiredDate("date", input.Date)
	if err != nil {
		return models.WeddingDay{}, err
	}

	order, err := service.days.NextOrder(userID)
	if err != nil {
		return models.WeddingDay{}, err
	}
	if input.Order != nil {
		if *input.Order < 0 {
			return models.WeddingDay{}, invalidField("order", CodeNegative)
		}
		order = *input.Order
	}

	day := models.WeddingDay{
		UserID:      userID,
		Name:        name,
		Date:        date,
		Location:    optionalText(input.Location),
		Description: optionalText(input.Description),
		IsMainDay:   input.IsMainDay,
		Order:       order,
	}
	if err := service.store(&day); err != nil {
		return models.WeddingDay{}, err
	}
	return day, nil
}

func (service *WeddingDayService) Update(userID uint, dayID uint, input WeddingDayInput) (models.WeddingDay, error) {
	day, err := service.days.FindForUser(dayID, userID)
	if err != nil {
		return models.WeddingDay{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("name", &day.Name, input.Name); err != nil {
		return models.WeddingDay{}, err
	}
	if input.Date != nil {
		date, err := requiredDate("date", input.Date)
		if err != nil {
			return models.WeddingDay{}, err
		}
		day.Date = date
	}
	if input.Order != nil {
		if *input.Order < 0 {
			return models.WeddingDay{}, invalidField("order", CodeNegative)
		}
		day.Order = *input.Order
	}
	mergeText(&day.Location, input.Location)
	mergeText(&day.Description, input.Description)
	day.IsMainDay = input.IsMainDay

	if err := service.store(&day); err != nil {
		return models.WeddingDay{}, err
	}
	return day, nil
}

func (service *WeddingDayService) Delete(userID uint, dayID uint) error {
	return normalizeNotFound(service.days.DeleteForUser(dayID, userID))
}

func (service *WeddingDayService) store(day *models.WeddingDay) error {
	if day.IsMainDay {
		return service.days.SaveAsMainDay(day)
	}
	if day.ID == 0 {
		return service.days.Create(day)
	}
	return service.days.Save(day)
}
