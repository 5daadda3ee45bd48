// Package store keeps the barbershop entities in process memory.
//
// Each entity kind has its own id sequence starting at 1. All six
// collections share one lock, so a reader passed to View sees a state no
// writer is halfway through.
package store

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/barberhub/internal/models"
)

const (
	EntityBarber      = "barber"
	EntityService     = "service"
	EntityClient      = "client"
	EntityAppointment = "appointment"
	EntityProduct     = "product"
	EntitySale        = "sale"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Reader is the read side of the store. Lookups report absence through
// the boolean, never through an error.
type Reader interface {
	ListBarbers() []models.Barber
	GetBarber(id uint) (models.Barber, bool)
	ListServices() []models.Service
	GetService(id uint) (models.Service, bool)
	ListClients() []models.Client
	GetClient(id uint) (models.Client, bool)
	ListAppointments() []models.Appointment
	GetAppointment(id uint) (models.Appointment, bool)
	ListProducts() []models.Product
	GetProduct(id uint) (models.Product, bool)
	ListSales() []models.Sale
	GetSale(id uint) (models.Sale, bool)
}

// MutationHook observes every successful write. records is the size of the
// entity's collection after the write.
type MutationHook func(entity, op string, records int)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithMutationHook(h MutationHook) Option {
	return func(s *Store) { s.hook = h }
}

type Store struct {
	mu   sync.RWMutex
	st   *state
	now  func() time.Time
	hook MutationHook
}

func New(opts ...Option) *Store {
	s := &Store{
		st:  newState(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View runs fn under the read lock. The Reader must not escape fn.
func (s *Store) View(fn func(r Reader)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

func (s *Store) mutated(entity, op string, records int) {
	if s.hook != nil {
		s.hook(entity, op, records)
	}
}

type state struct {
	barbers      *table[models.Barber]
	services     *table[models.Service]
	clients      *table[models.Client]
	appointments *table[models.Appointment]
	products     *table[models.Product]
	sales        *table[models.Sale]
}

func newState() *state {
	return &state{
		barbers:      newTable[models.Barber](nil),
		services:     newTable[models.Service](nil),
		clients:      newTable[models.Client](nil),
		appointments: newTable[models.Appointment](nil),
		products:     newTable[models.Product](nil),
		sales:        newTable(models.Sale.Clone),
	}
}

func (st *state) ListBarbers() []models.Barber {
	return st.barbers.list()
}

func (st *state) GetBarber(id uint) (models.Barber, bool) {
	return st.barbers.get(id)
}

func (st *state) ListServices() []models.Service {
	return st.services.list()
}

func (st *state) GetService(id uint) (models.Service, bool) {
	return st.services.get(id)
}

func (st *state) ListClients() []models.Client {
	return st.clients.list()
}

func (st *state) GetClient(id uint) (models.Client, bool) {
	return st.clients.get(id)
}

func (st *state) ListAppointments() []models.Appointment {
	return st.appointments.list()
}

func (st *state) ListProducts() []models.Product {
	return st.products.list()
}

func (st *state) GetProduct(id uint) (models.Product, bool) {
	return st.products.get(id)
}

func (st *state) ListSales() []models.Sale {
	return st.sales.list()
}

func (st *state) GetSale(id uint) (models.Sale, bool) {
	return st.sales.get(id)
}

func (st *state) GetAppointment(id uint) (models.Appointment, bool) {
	return st.appointments.get(id)
}

// Counts reports the number of records per entity kind.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		EntityBarber:      s.st.barbers.len(),
		EntityService:     s.st.services.len(),
		EntityClient:      s.st.clients.len(),
		EntityAppointment: s.st.appointments.len(),
		EntityProduct:     s.st.products.len(),
		EntitySale:        s.st.sales.len(),
	}
}

var _ Reader = (*Store)(nil)
var _ Reader = (*state)(nil)
