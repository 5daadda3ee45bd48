package dto

type DashboardData struct {
	Date               string          `json:"date"`
	TodayAppointments  int             `json:"today_appointments"`
	TodayClientsServed int             `json:"today_clients_served"`
	TodayRevenue       float64         `json:"today_revenue"`
	TodayProductsSold  int             `json:"today_products_sold"`
	BarberPerformance  []BarberClients `json:"barber_performance"`
	TopServices        []ServiceShare  `json:"top_services"`
}

type BarberClients struct {
	BarberID uint   `json:"barber_id"`
	Name     string `json:"name"`
	Clients  int    `json:"clients"`
}

type ServiceShare struct {
	ServiceID  uint   `json:"service_id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}
