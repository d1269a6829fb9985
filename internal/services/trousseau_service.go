package services

import "github.com/terraincognita07/mariage/internal/models"

type TrousseauItemInput struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Notes       *string  `json:"notes"`
	IsPurchased bool     `json:"isPurchased"`
}

type TrousseauService struct {
	items ScopedRepository[models.TrousseauItem]
}

func NewTrousseauService(items ScopedRepository[models.TrousseauItem]) *TrousseauService {
	return &TrousseauService{items: items}
}

func (service *TrousseauService) List(userID uint) ([]models.TrousseauItem, error) {
	return service.items.ListForUser(userID)
}

func (service *TrousseauService) Create(userID uint, input TrousseauItemInput) (models.TrousseauItem, error) {
	name, err := requiredText("name", input.Name)
	if err != nil {
		return models.TrousseauItem{}, err
	}
	category, err := requiredText("category", input.Category)
	if err != nil {
		return models.TrousseauItem{}, err
	}
	quantity := 1
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return models.TrousseauItem{}, invalidField("quantity", CodeInvalid)
		}
		quantity = *input.Quantity
	}
	price, err := nonNegativeAmount("price", input.Price)
	if err != nil {
		return models.TrousseauItem{}, err
	}

	item := models.TrousseauItem{
		UserID:      userID,
		Name:        name,
		Category:    category,
		Quantity:    quantity,
		Price:       price,
		Notes:       optionalText(input.Notes),
		IsPurchased: input.IsPurchased,
	}
	if err := service.items.Create(&item); err != nil {
		return models.TrousseauItem{}, err
	}
	return item, nil
}

func (service *TrousseauService) Update(userID uint, itemID uint, input TrousseauItemInput) (models.TrousseauItem, error) {
	item, err := service.items.FindForUser(itemID, userID)
	if err != nil {
		return models.TrousseauItem{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("name", &item.Name, input.Name); err != nil {
		return models.TrousseauItem{}, err
	}
	if err := mergeRequiredText("category", &item.Category, input.Category); err != nil {
		return models.TrousseauItem{}, err
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return models.TrousseauItem{}, invalidField("quantity", CodeInvalid)
		}
		item.Quantity = *input.Quantity
	}
	if err := mergeAmount("price", &item.Price, input.Price); err != nil {
		return models.TrousseauItem{}, err
	}
	mergeText(&item.Notes, input.Notes)
	item.IsPurchased = input.IsPurchased

	if err := service.items.Save(&item); err != nil {
		return models.TrousseauItem{}, err
	}
	return item, nil
}

func (service *TrousseauService) Delete(userID uint, itemID uint) error {
	return normalizeNotFound(service.items.DeleteForUser(itemID, userID))
}
