package models

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Barber struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	StartDate string `json:"start_date"`
	About     string `json:"about"`
	Status    string `json:"status"`
}

type BarberInput struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	StartDate string `json:"start_date"`
	About     string `json:"about"`
	Status    string `json:"status"`
}

func (in BarberInput) WithID(id uint) Barber {
	status := in.Status
	if status == "" {
		status = StatusActive
	}
	return Barber{
		ID:        id,
		Name:      in.Name,
		Position:  in.Position,
		Phone:     in.Phone,
		Email:     in.Email,
		Specialty: in.Specialty,
		StartDate: in.StartDate,
		About:     in.About,
		Status:    status,
	}
}

func (b Barber) Input() BarberInput {
	return BarberInput{
		Name:      b.Name,
		Position:  b.Position,
		Phone:     b.Phone,
		Email:     b.Email,
		Specialty: b.Specialty,
		StartDate: b.StartDate,
		About:     b.About,
		Status:    b.Status,
	}
}

type BarberPatch struct {
	Name      *string `json:"name,omitempty"`
	Position  *string `json:"position,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Specialty *string `json:"specialty,omitempty"`
	StartDate *string `json:"start_date,omitempty" binding:"omitempty,ymd"`
	About     *string `json:"about,omitempty"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

func (p BarberPatch) Apply(b *Barber) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Position != nil {
		b.Position = *p.Position
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.Specialty != nil {
		b.Specialty = *p.Specialty
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.About != nil {
		b.About = *p.About
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}
