package store

import "github.com/BruksfildServices01/barberhub/internal/models"

// Snapshot is the full entity graph in insertion order.
type Snapshot struct {
	Barbers      []models.Barber      `json:"barbers"`
	Services     []models.Service     `json:"services"`
	Clients      []models.Client      `json:"clients"`
	Appointments []models.Appointment `json:"appointments"`
	Products     []models.Product     `json:"products"`
	Sales        []models.Sale        `json:"sales"`
}

// Remap maps snapshot ids to the ids assigned by Restore, per entity kind.
type Remap map[string]map[uint]uint

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Barbers:      s.st.ListBarbers(),
		Services:     s.st.ListServices(),
		Clients:      s.st.ListClients(),
		Appointments: s.st.ListAppointments(),
		Products:     s.st.ListProducts(),
		Sales:        s.st.ListSales(),
	}
}

// Restore inserts every record of snap as a new record, rewriting foreign
// ids to the freshly assigned ones. Ids must be unique per collection and
// references must resolve inside snap; the first violation is returned and
// the store is left untouched.
// Clients keep their snapshot CreatedAt when it is set.
func (s *Store) Restore(snap Snapshot) (Remap, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	remap := Remap{
		EntityBarber:      make(map[uint]uint, len(snap.Barbers)),
		EntityService:     make(map[uint]uint, len(snap.Services)),
		EntityClient:      make(map[uint]uint, len(snap.Clients)),
		EntityAppointment: make(map[uint]uint, len(snap.Appointments)),
		EntityProduct:     make(map[uint]uint, len(snap.Products)),
		EntitySale:        make(map[uint]uint, len(snap.Sales)),
	}

	s.mu.Lock()
	now := s.now()
	for _, b := range snap.Barbers {
		remap[EntityBarber][b.ID] = s.st.barbers.insert(b.Input().WithID).ID
	}
	for _, sv := range snap.Services {
		remap[EntityService][sv.ID] = s.st.services.insert(sv.Input().WithID).ID
	}
	for _, c := range snap.Clients {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		in := c.Input()
		remap[EntityClient][c.ID] = s.st.clients.insert(func(id uint) models.Client {
			return in.WithID(id, createdAt)
		}).ID
	}
	for _, p := range snap.Products {
		remap[EntityProduct][p.ID] = s.st.products.insert(p.Input().WithID).ID
	}
	for _, a := range snap.Appointments {
		in := a.Input()
		in.ClientID = remap[EntityClient][a.ClientID]
		in.BarberID = remap[EntityBarber][a.BarberID]
		in.ServiceID = remap[EntityService][a.ServiceID]
		remap[EntityAppointment][a.ID] = s.st.appointments.insert(in.WithID).ID
	}
	for _, sale := range snap.Sales {
		in := sale.Input()
		in.ClientID = remapRef(remap[EntityClient], sale.ClientID)
		in.ProductID = remapRef(remap[EntityProduct], sale.ProductID)
		in.AppointmentID = remapRef(remap[EntityAppointment], sale.AppointmentID)
		remap[EntitySale][sale.ID] = s.st.sales.insert(in.WithID).ID
	}
	counts := map[string]int{
		EntityBarber:      s.st.barbers.len(),
		EntityService:     s.st.services.len(),
		EntityClient:      s.st.clients.len(),
		EntityAppointment: s.st.appointments.len(),
		EntityProduct:     s.st.products.len(),
		EntitySale:        s.st.sales.len(),
	}
	s.mu.Unlock()

	for entity, ids := range remap {
		if len(ids) > 0 {
			s.mutated(entity, OpCreate, counts[entity])
		}
	}
	return remap, nil
}

func remapRef(ids map[uint]uint, ref *uint) *uint {
	if ref == nil {
		return nil
	}
	v := ids[*ref]
	return &v
}

func validateSnapshot(snap Snapshot) error {
	clients, err := idSet(EntityClient, snap.Clients, func(c models.Client) uint { return c.ID })
	if err != nil {
		return err
	}
	barbers, err := idSet(EntityBarber, snap.Barbers, func(b models.Barber) uint { return b.ID })
	if err != nil {
		return err
	}
	services, err := idSet(EntityService, snap.Services, func(s models.Service) uint { return s.ID })
	if err != nil {
		return err
	}
	products, err := idSet(EntityProduct, snap.Products, func(p models.Product) uint { return p.ID })
	if err != nil {
		return err
	}
	appointments, err := idSet(EntityAppointment, snap.Appointments, func(a models.Appointment) uint { return a.ID })
	if err != nil {
		return err
	}
	if _, err := idSet(EntitySale, snap.Sales, func(s models.Sale) uint { return s.ID }); err != nil {
		return err
	}

	for _, a := range snap.Appointments {
		if !clients[a.ClientID] {
			return &DanglingReferenceError{Entity: EntityAppointment, ID: a.ID, Field: EntityClient, Ref: a.ClientID}
		}
		if !barbers[a.BarberID] {
			return &DanglingReferenceError{Entity: EntityAppointment, ID: a.ID, Field: EntityBarber, Ref: a.BarberID}
		}
		if !services[a.ServiceID] {
			return &DanglingReferenceError{Entity: EntityAppointment, ID: a.ID, Field: EntityService, Ref: a.ServiceID}
		}
	}

	for _, sale := range snap.Sales {
		if sale.ClientID != nil && !clients[*sale.ClientID] {
			return &DanglingReferenceError{Entity: EntitySale, ID: sale.ID, Field: EntityClient, Ref: *sale.ClientID}
		}
		if sale.ProductID != nil && !products[*sale.ProductID] {
			return &DanglingReferenceError{Entity: EntitySale, ID: sale.ID, Field: EntityProduct, Ref: *sale.ProductID}
		}
		if sale.AppointmentID != nil && !appointments[*sale.AppointmentID] {
			return &DanglingReferenceError{Entity: EntitySale, ID: sale.ID, Field: EntityAppointment, Ref: *sale.AppointmentID}
		}
	}
	return nil
}

// idSet collects the ids of rows. A repeated id would make two records
// share one remap entry, so it is rejected.
func idSet[T any](entity string, rows []T, id func(T) uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(rows))
	for _, r := range rows {
		k := id(r)
		if set[k] {
			return nil, &DuplicateIDError{Entity: entity, ID: k}
		}
		set[k] = true
	}
	return set, nil
}
