// Package seed loads the demo barbershop: three barbers, five services,
// three clients, three products and a day of appointments and sales.
package seed

import (
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

// Load inserts the demo data into s, dating appointments and sales today
// (YYYY-MM-DD). References use the ids the store hands back, so Load also
// works on a store that already holds records.
func Load(s *store.Store, today string) {
	marcos := s.CreateBarber(models.BarberInput{
		Name:      "Marcos Oliveira",
		Position:  "Barbeiro Senior",
		Phone:     "(11) 98765-4321",
		Email:     "marcos@barberhub.com",
		Specialty: "Degradê",
		StartDate: "2022-01-01",
		About:     "Especialista em cortes modernos e degradês.",
	})
	felipe := s.CreateBarber(models.BarberInput{
		Name:      "Felipe Costa",
		Position:  "Barbeiro Senior",
		Phone:     "(11) 97654-3210",
		Email:     "felipe@barberhub.com",
		Specialty: "Barba",
		StartDate: "2022-03-01",
		About:     "Especialista em designs de barba.",
	})
	s.CreateBarber(models.BarberInput{
		Name:      "Lucas Mendes",
		Position:  "Barbeiro Pleno",
		Phone:     "(11) 96543-2109",
		Email:     "lucas@barberhub.com",
		Specialty: "Corte Social",
		StartDate: "2022-06-01",
		About:     "Especialista em cortes sociais e tradicionais.",
	})

	degrade := s.CreateService(models.ServiceInput{
		Name: "Corte Degradê", Description: "Corte moderno com máquina e tesoura.", Duration: 30, Price: 40,
	})
	combo := s.CreateService(models.ServiceInput{
		Name: "Corte + Barba", Description: "Corte completo com barba.", Duration: 60, Price: 60,
	})
	s.CreateService(models.ServiceInput{
		Name: "Barba", Description: "Aparar e modelar a barba.", Duration: 30, Price: 30,
	})
	s.CreateService(models.ServiceInput{
		Name: "Corte Infantil", Description: "Corte para crianças até 12 anos.", Duration: 20, Price: 25,
	})
	s.CreateService(models.ServiceInput{
		Name: "Pigmentação", Description: "Pigmentação para disfarçar falhas.", Duration: 45, Price: 50,
	})

	joao := s.CreateClient(models.ClientInput{
		Name: "João Silva", Phone: "(11) 98765-4321", Email: "joao@email.com",
		Birthdate: "1990-05-15", Notes: "Cliente regular, prefere corte degradê.",
	})
	pedro := s.CreateClient(models.ClientInput{
		Name: "Pedro Santos", Phone: "(11) 91234-5678", Email: "pedro@email.com",
		Birthdate: "1985-10-20", Notes: "Prefere ser atendido pelo Felipe.",
	})
	rafael := s.CreateClient(models.ClientInput{
		Name: "Rafael Gomes", Phone: "(11) 99876-5432", Email: "rafael@email.com",
		Birthdate: "1988-03-25", Notes: "Alérgico a alguns produtos.",
	})

	pomada := s.CreateProduct(models.ProductInput{
		Name: "Pomada Modeladora", Description: "Pomada para estilizar o cabelo.",
		Price: 35, Stock: 20, Category: "Estilização",
	})
	oleo := s.CreateProduct(models.ProductInput{
		Name: "Óleo para Barba", Description: "Óleo hidratante para barba.",
		Price: 45, Stock: 15, Category: "Barba",
	})
	s.CreateProduct(models.ProductInput{
		Name: "Shampoo Especializado", Description: "Shampoo para cabelos masculinos.",
		Price: 30, Stock: 25, Category: "Higiene",
	})

	first := s.CreateAppointment(models.AppointmentInput{
		ClientID: joao.ID, BarberID: marcos.ID, ServiceID: combo.ID,
		Date: today, Time: "10:30", Status: "confirmed",
	})
	s.CreateAppointment(models.AppointmentInput{
		ClientID: pedro.ID, BarberID: felipe.ID, ServiceID: degrade.ID,
		Date: today, Time: "13:00", Status: "waiting",
	})
	s.CreateAppointment(models.AppointmentInput{
		ClientID: rafael.ID, BarberID: marcos.ID, ServiceID: combo.ID,
		Date: today, Time: "15:30", Status: "confirmed",
		Notes: "Cliente solicitou pigmentação também.",
	})

	s.CreateSale(models.SaleInput{
		ClientID: &joao.ID, ProductID: &pomada.ID, Quantity: 1,
		TotalPrice: 35, Date: today, PaymentMethod: models.PaymentCredit,
	})
	s.CreateSale(models.SaleInput{
		ClientID: &rafael.ID, ProductID: &oleo.ID, Quantity: 1,
		TotalPrice: 45, Date: today, PaymentMethod: models.PaymentCash,
	})
	s.CreateSale(models.SaleInput{
		ClientID: &joao.ID, AppointmentID: &first.ID, Quantity: 1,
		TotalPrice: 60, Date: today, PaymentMethod: models.PaymentCredit,
	})
}
