package models

const (
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
	PaymentCash   = "cash"
	PaymentPix    = "pix"
)

// Sale is either a product sale (ProductID) or the payment of an
// appointment (AppointmentID). ClientID may be set independently of both.
type Sale struct {
	ID            uint    `json:"id"`
	ClientID      *uint   `json:"client_id"`
	ProductID     *uint   `json:"product_id"`
	AppointmentID *uint   `json:"appointment_id"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

type SaleInput struct {
	ClientID      *uint   `json:"client_id"`
	ProductID     *uint   `json:"product_id"`
	AppointmentID *uint   `json:"appointment_id"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

func (in SaleInput) WithID(id uint) Sale {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	return Sale{
		ID:            id,
		ClientID:      cloneUint(in.ClientID),
		ProductID:     cloneUint(in.ProductID),
		AppointmentID: cloneUint(in.AppointmentID),
		Quantity:      qty,
		TotalPrice:    in.TotalPrice,
		Date:          in.Date,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
}

func (s Sale) Input() SaleInput {
	return SaleInput{
		ClientID:      cloneUint(s.ClientID),
		ProductID:     cloneUint(s.ProductID),
		AppointmentID: cloneUint(s.AppointmentID),
		Quantity:      s.Quantity,
		TotalPrice:    s.TotalPrice,
		Date:          s.Date,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
	}
}

// Clone returns a copy that shares no pointers with s.
func (s Sale) Clone() Sale {
	s.ClientID = cloneUint(s.ClientID)
	s.ProductID = cloneUint(s.ProductID)
	s.AppointmentID = cloneUint(s.AppointmentID)
	return s
}

type SalePatch struct {
	ClientID      Nullable[uint] `json:"client_id,omitzero"`
	ProductID     Nullable[uint] `json:"product_id,omitzero"`
	AppointmentID Nullable[uint] `json:"appointment_id,omitzero"`
	Quantity      *int           `json:"quantity,omitempty" binding:"omitempty,min=1"`
	TotalPrice    *float64       `json:"total_price,omitempty" binding:"omitempty,min=0"`
	Date          *string        `json:"date,omitempty" binding:"omitempty,ymd"`
	PaymentMethod *string        `json:"payment_method,omitempty" binding:"omitempty,oneof=credit debit cash pix"`
	Notes         *string        `json:"notes,omitempty"`
}

func (p SalePatch) Apply(s *Sale) {
	applyNullable(&s.ClientID, p.ClientID)
	applyNullable(&s.ProductID, p.ProductID)
	applyNullable(&s.AppointmentID, p.AppointmentID)
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.TotalPrice != nil {
		s.TotalPrice = *p.TotalPrice
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}
