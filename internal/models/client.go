package models

import "time"

// Client has no login. CreatedAt is stamped by the store on creation and
// never changes afterwards.
type Client struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Birthdate string    `json:"birthdate"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate"`
	Notes     string `json:"notes"`
}

func (in ClientInput) WithID(id uint, createdAt time.Time) Client {
	return Client{
		ID:        id,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Birthdate: in.Birthdate,
		Notes:     in.Notes,
		CreatedAt: createdAt,
	}
}

func (c Client) Input() ClientInput {
	return ClientInput{
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Birthdate: c.Birthdate,
		Notes:     c.Notes,
	}
}

type ClientPatch struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Birthdate *string `json:"birthdate,omitempty" binding:"omitempty,ymd"`
	Notes     *string `json:"notes,omitempty"`
}

func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Birthdate != nil {
		c.Birthdate = *p.Birthdate
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
