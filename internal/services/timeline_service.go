package services

import "github.com/terraincognita07/mariage/internal/models"

type TimelineTaskInput struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Phase       *string `json:"phase"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	IsCompleted bool    `json:"isCompleted"`
}

type TimelineService struct {
	tasks ScopedRepository[models.TimelineTask]
}

func NewTimelineService(tasks ScopedRepository[models.TimelineTask]) *TimelineService {
	return &TimelineService{tasks: tasks}
}

func (service *TimelineService) List(userID uint) ([]models.TimelineTask, error) {
	return service.tasks.ListForUser(userID)
}

func (service *TimelineService) Create(userID uint, input TimelineTaskInput) (models.TimelineTask, error) {
	title, err := requiredText("title", input.Title)
	if err != nil {
		return models.TimelineTask{}, err
	}
	category, err := requiredText("category", input.Category)
	if err != nil {
		return models.TimelineTask{}, err
	}
	phase, err := requiredText("phase", input.Phase)
	if err != nil {
		return models.TimelineTask{}, err
	}
	dueDate, err := optionalDate("dueDate", input.DueDate)
	if err != nil {
		return models.TimelineTask{}, err
	}

	task := models.TimelineTask{
		UserID:      userID,
		Title:       title,
		Category:    category,
		Phase:       phase,
		Description: optionalText(input.Description),
		DueDate:     dueDate,
		IsCompleted: input.IsCompleted,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.TimelineTask{}, err
	}
	return task, nil
}

func (service *TimelineService) Update(userID uint, taskID uint, input TimelineTaskInput) (models.TimelineTask, error) {
	task, err := service.tasks.FindForUser(taskID, userID)
	if err != nil {
		return models.TimelineTask{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("title", &task.Title, input.Title); err != nil {
		return models.TimelineTask{}, err
	}
	if err := mergeRequiredText("category", &task.Category, input.Category); err != nil {
		return models.TimelineTask{}, err
	}
	if err := mergeRequiredText("phase", &task.Phase, input.Phase); err != nil {
		return models.TimelineTask{}, err
	}
	if err := mergeOptionalDate("dueDate", &task.DueDate, input.DueDate); err != nil {
		return models.TimelineTask{}, err
	}
	mergeText(&task.Description, input.Description)
	task.IsCompleted = input.IsCompleted

	if err := service.tasks.Save(&task); err != nil {
		return models.TimelineTask{}, err
	}
	return task, nil
}

func (service *TimelineService) Delete(userID uint, taskID uint) error {
	return normalizeNotFound(service.tasks.DeleteForUser(taskID, userID))
}
