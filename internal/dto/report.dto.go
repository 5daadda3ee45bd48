package dto

type ReportData struct {
	StartDate             string            `json:"start_date"`
	EndDate               string            `json:"end_date"`
	TotalRevenue          float64           `json:"total_revenue"`
	TotalAppointments     int               `json:"total_appointments"`
	CompletedAppointments int               `json:"completed_appointments"`
	ProductSales          int               `json:"product_sales"`
	TopService            string            `json:"top_service"`
	BarberPerformance     []BarberReport    `json:"barber_performance"`
	ServicePopularity     []ServiceCount    `json:"service_popularity"`
	DailyRevenue          []DailyAmount     `json:"daily_revenue"`
	TopProducts           []ProductQuantity `json:"top_products"`
}

type BarberReport struct {
	BarberID     uint    `json:"barber_id"`
	Name         string  `json:"name"`
	Appointments int     `json:"appointments"`
	Completed    int     `json:"completed"`
	Revenue      float64 `json:"revenue"`
}

type ServiceCount struct {
	ServiceID uint   `json:"service_id"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

type DailyAmount struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ProductQuantity struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}
