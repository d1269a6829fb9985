package services

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/datatypes"
)

type AttendeeInput struct {
	FirstName    *string         `json:"firstName"`
	LastName     *string         `json:"lastName"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	Category     *string         `json:"category"`
	Side         *string         `json:"side"`
	Relationship *string         `json:"relationship"`
	TableNumber  *int            `json:"tableNumber"`
	ParentID     *uint           `json:"parentId"`
	Metadata     json.RawMessage `json:"metadata"`
	Confirmed    bool            `json:"confirmed"`
	PlusOne      bool            `json:"plusOne"`
}

type AttendeeRepository interface {
	ScopedRepository[models.Attendee]
	DetachChildren(parentID uint, userID uint) error
}

type AttendeeNode struct {
	models.Attendee
	Children []*AttendeeNode `json:"children"`
}

var AttendeeCSVHeaders = []string{
	"First name",
	"Last name",
	"Email",
	"Phone",
	"Category",
	"Side",
	"Relationship",
	"Table",
	"Confirmed",
	"Plus one",
}

type AttendeeService struct {
	attendees AttendeeRepository
}

func NewAttendeeService(attendees AttendeeRepository) *AttendeeService {
	return &AttendeeService{attendees: attendees}
}

func (service *AttendeeService) List(userID uint) ([]models.Attendee, error) {
	return service.attendees.ListForUser(userID)
}

func (service *AttendeeService) Create(userID uint, input AttendeeInput) (models.Attendee, error) {
	firstName, err := requiredText("firstName", input.FirstName)
	if err != nil {
		return models.Attendee{}, err
	}
	side, err := attendeeSideValue(input.Side)
	if err != nil {
		return models.Attendee{}, err
	}
	metadata, err := attendeeMetadata(input.Metadata)
	if err != nil {
		return models.Attendee{}, err
	}
	if err := validateTableNumber(input.TableNumber); err != nil {
		return models.Attendee{}, err
	}

	attendee := models.Attendee{
		UserID:       userID,
		FirstName:    firstName,
		LastName:     optionalText(input.LastName),
		Email:        optionalText(input.Email),
		Phone:        optionalText(input.Phone),
		Category:     optionalText(input.Category),
		Side:         side,
		Relationship: optionalText(input.Relationship),
		TableNumber:  input.TableNumber,
		Metadata:     metadata,
		Confirmed:    input.Confirmed,
		PlusOne:      input.PlusOne,
	}
	if input.ParentID != nil && *input.ParentID != 0 {
		if err := service.validateParent(userID, 0, *input.ParentID); err != nil {
			return models.Attendee{}, err
		}
		attendee.ParentID = input.ParentID
	}

	if err := service.attendees.Create(&attendee); err != nil {
		return models.Attendee{}, err
	}
	return attendee, nil
}

// Update treats parentId 0 as a request to detach the attendee from its parent.
func (service *AttendeeService) Update(userID uint, attendeeID uint, input AttendeeInput) (models.Attendee, error) {
	attendee, err := service.attendees.FindForUser(attendeeID, userID)
	if err != nil {
		return models.Attendee{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("firstName", &attendee.FirstName, input.FirstName); err != nil {
		return models.Attendee{}, err
	}
	if input.Side != nil {
		side, err := attendeeSideValue(input.Side)
		if err != nil {
			return models.Attendee{}, err
		}
		attendee.Side = side
	}
	if len(input.Metadata) > 0 {
		metadata, err := attendeeMetadata(input.Metadata)
		if err != nil {
			return models.Attendee{}, err
		}
		attendee.Metadata = metadata
	}
	if input.TableNumber != nil {
		if err := validateTableNumber(input.TableNumber); err != nil {
			return models.Attendee{}, err
		}
		attendee.TableNumber = input.TableNumber
	}
	if input.ParentID != nil {
		if *input.ParentID == 0 {
			attendee.ParentID = nil
		} else {
			if err := service.validateParent(userID, attendee.ID, *input.ParentID); err != nil {
				return models.Attendee{}, err
			}
			parentID := *input.ParentID
			attendee.ParentID = &parentID
		}
	}
	mergeText(&attendee.LastName, input.LastName)
	mergeText(&attendee.Email, input.Email)
	mergeText(&attendee.Phone, input.Phone)
	mergeText(&attendee.Category, input.Category)
	mergeText(&attendee.Relationship, input.Relationship)
	attendee.Confirmed = input.Confirmed
	attendee.PlusOne = input.PlusOne
	if len(attendee.Metadata) == 0 {
		attendee.Metadata = datatypes.JSON("{}")
	}

	if err := service.attendees.Save(&attendee); err != nil {
		return models.Attendee{}, err
	}
	return attendee, nil
}

func (service *AttendeeService) Delete(userID uint, attendeeID uint) error {
	if _, err := service.attendees.FindForUser(attendeeID, userID); err != nil {
		return normalizeNotFound(err)
	}
	if err := service.attendees.DetachChildren(attendeeID, userID); err != nil {
		return err
	}
	return normalizeNotFound(service.attendees.DeleteForUser(attendeeID, userID))
}

// Tree nests attendees under their parent. Attendees whose parent is gone
// become roots.
func (service *AttendeeService) Tree(userID uint) ([]*AttendeeNode, error) {
	attendees, err := service.attendees.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	return BuildAttendeeTree(attendees), nil
}

func BuildAttendeeTree(attendees []models.Attendee) []*AttendeeNode {
	nodes := make(map[uint]*AttendeeNode, len(attendees))
	for _, attendee := range attendees {
		nodes[attendee.ID] = &AttendeeNode{Attendee: attendee, Children: make([]*AttendeeNode, 0)}
	}

	roots := make([]*AttendeeNode, 0)
	for _, attendee := range attendees {
		node := nodes[attendee.ID]
		if attendee.ParentID != nil {
			if parent, ok := nodes[*attendee.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (service *AttendeeService) ExportRows(userID uint) ([][]string, error) {
	attendees, err := service.attendees.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(attendees))
	for _, attendee := range attendees {
		table := ""
		if attendee.TableNumber != nil {
			table = strconv.Itoa(*attendee.TableNumber)
		}
		rows = append(rows, []string{
			attendee.FirstName,
			attendee.LastName,
			attendee.Email,
			attendee.Phone,
			attendee.Category,
			attendee.Side,
			attendee.Relationship,
			table,
			strconv.FormatBool(attendee.Confirmed),
			strconv.FormatBool(attendee.PlusOne),
		})
	}
	return rows, nil
}

// validateParent rejects parents outside the owner's attendees and links
// that would make an attendee its own ancestor.
func (service *AttendeeService) validateParent(userID uint, attendeeID uint, parentID uint) error {
	if parentID == attendeeID {
		return invalidField("parentId", CodeInvalid)
	}
	if _, err := service.attendees.FindForUser(parentID, userID); err != nil {
		if normalizeNotFound(err) == ErrNotFound {
			return invalidField("parentId", CodeInvalid)
		}
		return err
	}
	if attendeeID == 0 {
		return nil
	}

	attendees, err := service.attendees.ListForUser(userID)
	if err != nil {
		return err
	}
	parents := make(map[uint]*uint, len(attendees))
	for _, attendee := range attendees {
		parents[attendee.ID] = attendee.ParentID
	}

	current := &parentID
	for steps := 0; current != nil && steps <= len(attendees); steps++ {
		if *current == attendeeID {
			return invalidField("parentId", CodeInvalid)
		}
		current = parents[*current]
	}
	return nil
}

func attendeeSideValue(value *string) (string, error) {
	side, err := requiredText("side", value)
	if err != nil {
		return "", err
	}
	side = strings.ToLower(side)
	if !models.IsKnownSide(side) {
		return "", invalidField("side", CodeInvalid)
	}
	return side, nil
}

func attendeeMetadata(raw json.RawMessage) (datatypes.JSON, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return datatypes.JSON("{}"), nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, invalidField("metadata", CodeInvalid)
	}
	return datatypes.JSON(trimmed), nil
}

func validateTableNumber(tableNumber *int) error {
	if tableNumber != nil && *tableNumber < 0 {
		return invalidField("tableNumber", CodeNegative)
	}
	return nil
}
