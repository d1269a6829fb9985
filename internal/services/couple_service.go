package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/mariage/internal/db"
	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/gorm"
)

const (
	CoupleRoleBride = "bride"
	CoupleRoleGroom = "groom"

	DefaultCouplePageLimit = 10
	MaxCouplePageLimit     = 100
)

type CoupleRepository interface {
	FindForMember(userID uint) (models.Couple, error)
	FindByID(coupleID uint) (models.Couple, error)
	CreateForMembers(couple *models.Couple) error
	Save(couple *models.Couple) error
	Delete(coupleID uint) error
	ListForPlanner(plannerID uint) ([]models.Couple, error)
	ListPage(search string, status string, offset int, limit int) ([]models.Couple, int64, error)
}

type CoupleUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
}

type CreateCoupleInput struct {
	Role         string  `json:"role"`
	PartnerEmail string  `json:"partnerEmail"`
	WeddingDate  *string `json:"weddingDate"`
}

type UpdateCoupleInput struct {
	WeddingDate *string `json:"weddingDate"`
	Status      *string `json:"status"`
}

type AdminCoupleInput struct {
	Status    *string `json:"status"`
	PlannerID *uint   `json:"plannerId"`
}

type CoupleQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

type CouplePage struct {
	Items      []models.Couple `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

type CoupleService struct {
	couples CoupleRepository
	users   CoupleUserRepository
}

func NewCoupleService(couples CoupleRepository, users CoupleUserRepository) *CoupleService {
	return &CoupleService{couples: couples, users: users}
}

func (service *CoupleService) ForMember(userID uint) (models.Couple, error) {
	return findCoupleForMember(service.couples, userID)
}

// Create places the caller in the requested slot. The partner is linked
// only when the email belongs to a registered user who is not already part
// of a couple.
func (service *CoupleService) Create(userID uint, input CreateCoupleInput) (models.Couple, error) {
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != CoupleRoleBride && role != CoupleRoleGroom {
		return models.Couple{}, invalidField("role", CodeInvalid)
	}
	weddingDate, err := optionalDate("weddingDate", input.WeddingDate)
	if err != nil {
		return models.Couple{}, err
	}

	var partnerID *uint
	if strings.TrimSpace(input.PartnerEmail) != "" {
		email := NormalizeAuthEmail(input.PartnerEmail)
		if email == "" {
			return models.Couple{}, invalidField("partnerEmail", CodeInvalid)
		}
		partner, err := service.users.FindByNormalizedEmail(email)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return models.Couple{}, err
		case partner.ID == userID:
			return models.Couple{}, invalidField("partnerEmail", CodeInvalid)
		default:
			partnerID = &partner.ID
		}
	}

	memberID := userID
	couple := models.Couple{WeddingDate: weddingDate, Status: models.CoupleStatusPlanning}
	if role == CoupleRoleBride {
		couple.BrideID, couple.GroomID = &memberID, partnerID
	} else {
		couple.GroomID, couple.BrideID = &memberID, partnerID
	}

	err = service.couples.CreateForMembers(&couple)
	if errors.Is(err, db.ErrCoupleMemberTaken) && partnerID != nil {
		// The partner may be the one already taken; retry without linking.
		if role == CoupleRoleBride {
			couple.GroomID = nil
		} else {
			couple.BrideID = nil
		}
		err = service.couples.CreateForMembers(&couple)
	}
	if errors.Is(err, db.ErrCoupleMemberTaken) {
		return models.Couple{}, ErrCoupleExists
	}
	if err != nil {
		return models.Couple{}, err
	}
	return service.couples.FindByID(couple.ID)
}

func (service *CoupleService) Update(userID uint, input UpdateCoupleInput) (models.Couple, error) {
	couple, err := findCoupleForMember(service.couples, userID)
	if err != nil {
		return models.Couple{}, err
	}
	if err := mergeOptionalDate("weddingDate", &couple.WeddingDate, input.WeddingDate); err != nil {
		return models.Couple{}, err
	}
	if err := mergeCoupleStatus(&couple, input.Status); err != nil {
		return models.Couple{}, err
	}
	if err := service.couples.Save(&couple); err != nil {
		return models.Couple{}, err
	}
	return couple, nil
}

func (service *CoupleService) ListForPlanner(plannerID uint) ([]models.Couple, error) {
	return service.couples.ListForPlanner(plannerID)
}

func (service *CoupleService) ListPage(query CoupleQuery) (CouplePage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = DefaultCouplePageLimit
	}
	if limit > MaxCouplePageLimit {
		limit = MaxCouplePageLimit
	}
	status := strings.ToLower(strings.TrimSpace(query.Status))
	if status != "" && !models.IsKnownCoupleStatus(status) {
		return CouplePage{}, invalidField("status", CodeInvalid)
	}

	couples, total, err := service.couples.ListPage(query.Search, status, (page-1)*limit, limit)
	if err != nil {
		return CouplePage{}, err
	}
	return CouplePage{
		Items:      couples,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// AdminUpdate changes status or planner assignment. A plannerId of 0
// removes the planner.
func (service *CoupleService) AdminUpdate(coupleID uint, input AdminCoupleInput) (models.Couple, error) {
	couple, err := service.couples.FindByID(coupleID)
	if err != nil {
		return models.Couple{}, normalizeNotFound(err)
	}
	if err := mergeCoupleStatus(&couple, input.Status); err != nil {
		return models.Couple{}, err
	}
	if input.PlannerID != nil {
		couple.Planner = nil
		if *input.PlannerID == 0 {
			couple.PlannerID = nil
		} else {
			planner, err := service.users.FindByID(*input.PlannerID)
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && planner.Role != models.RolePlanner) {
				return models.Couple{}, invalidField("plannerId", CodeInvalid)
			}
			if err != nil {
				return models.Couple{}, err
			}
			couple.PlannerID = &planner.ID
		}
	}
	if err := service.couples.Save(&couple); err != nil {
		return models.Couple{}, err
	}
	return service.couples.FindByID(couple.ID)
}

func (service *CoupleService) Delete(coupleID uint) error {
	return normalizeNotFound(service.couples.Delete(coupleID))
}

func mergeCoupleStatus(couple *models.Couple, value *string) error {
	if value == nil {
		return nil
	}
	status := strings.ToLower(strings.TrimSpace(*value))
	if !models.IsKnownCoupleStatus(status) {
		return invalidField("status", CodeInvalid)
	}
	couple.Status = status
	return nil
}
