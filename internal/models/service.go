package models

// Service is a catalogue entry customers book appointments for.
// Duration is in minutes.
type Service struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

func (in ServiceInput) WithID(id uint) Service {
	status := in.Status
	if status == "" {
		status = StatusActive
	}
	return Service{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		Status:      status,
	}
}

func (s Service) Input() ServiceInput {
	return ServiceInput{
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		Status:      s.Status,
	}
}

type ServicePatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty" binding:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
