//go:build unit

// Package fake provides an in-memory stand-in for the Postgres
// persistence layer. Within serializes transactions on one mutex, which
// models the per-room row lock closely enough for command tests.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotelier/internal/domain/guest"
	"hotelier/internal/domain/payment"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	rooms        map[uuid.UUID]*room.Room
	guests       map[uuid.UUID]*guest.Guest
	reservations map[uuid.UUID]*reservation.Reservation
	payments     map[uuid.UUID]*payment.Payment
	createdAt    map[uuid.UUID]time.Time
	seq          int
}

func NewStore() *Store {
	return &Store{
		rooms:        make(map[uuid.UUID]*room.Room),
		guests:       make(map[uuid.UUID]*guest.Guest),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		payments:     make(map[uuid.UUID]*payment.Payment),
		createdAt:    make(map[uuid.UUID]time.Time),
	}
}

// Within implements shared.UnitOfWork. The whole store is one lock
// domain; on error every staged change is rolled back.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapRooms := copyMap(s.rooms)
	snapGuests := copyMap(s.guests)
	snapReservations := copyMap(s.reservations)
	snapPayments := copyMap(s.payments)
	snapCreated := copyMap(s.createdAt)
	snapSeq := s.seq

	if err := fn(ctx, (*storeTx)(s)); err != nil {
		s.rooms = snapRooms
		s.guests = snapGuests
		s.reservations = snapReservations
		s.payments = snapPayments
		s.createdAt = snapCreated
		s.seq = snapSeq
		return err
	}
	return nil
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// nextTime hands out strictly increasing timestamps so list ordering by
// creation time is deterministic.
func (s *Store) nextTime() time.Time {
	s.seq++
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
}

// SeedRoom inserts a room directly, bypassing command validation.
func (s *Store) SeedRoom(rm *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[rm.ID()] = rm
	s.createdAt[rm.ID()] = s.nextTime()
}

// SeedGuest inserts a guest directly.
func (s *Store) SeedGuest(g *guest.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests[g.ID()] = g
	s.createdAt[g.ID()] = s.nextTime()
}

// Reservation returns the stored reservation, for asserting persisted state.
func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservations[id]
}

// Room returns the stored room by number.
func (s *Store) Room(number string) *room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomByNumber(number)
}

// PaymentCount reports how many payments exist for a reservation.
func (s *Store) PaymentCount(reservationID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.payments {
		if p.ReservationID() == reservationID {
			n++
		}
	}
	return n
}

func (s *Store) roomByNumber(number string) *room.Room {
	for _, rm := range s.rooms {
		if rm.Number() == number {
			return rm
		}
	}
	return nil
}

// storeTx exposes the repository view of a Store while Within holds the
// lock. Repository methods therefore do not lock again.
type storeTx Store

func (t *storeTx) Rooms() shared.RoomRepository               { return (*roomRepo)(t) }
func (t *storeTx) Guests() shared.GuestRepository             { return (*guestRepo)(t) }
func (t *storeTx) Reservations() shared.ReservationRepository { return (*reservationRepo)(t) }
func (t *storeTx) Payments() shared.PaymentRepository         { return (*paymentRepo)(t) }

type roomRepo storeTx

func (r *roomRepo) Create(_ context.Context, rm *room.Room) error {
	if (*Store)(r).roomByNumber(rm.Number()) != nil {
		return infra.WrapRepoErr("room number already exists", nil, infra.KindDuplicateKey)
	}
	r.rooms[rm.ID()] = rm
	r.createdAt[rm.ID()] = (*Store)(r).nextTime()
	return nil
}

func (r *roomRepo) FindByNumberForUpdate(_ context.Context, number string) (*room.Room, error) {
	rm := (*Store)(r).roomByNumber(number)
	if rm == nil {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return cloneRoom(rm), nil
}

func (r *roomRepo) UpdateStatus(_ context.Context, id uuid.UUID, status room.Status) error {
	rm, ok := r.rooms[id]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	r.rooms[id] = room.ReconstructRoom(rm.ID(), rm.Number(), rm.RoomType(), rm.PriceCents(), rm.Capacity(), rm.Amenities(), status)
	return nil
}

type guestRepo storeTx

func (r *guestRepo) UpsertByPhone(_ context.Context, g *guest.Guest) (uuid.UUID, error) {
	for id, existing := range r.guests {
		if existing.Phone() == g.Phone() {
			email := existing.Email()
			if g.Email() != nil {
				email = g.Email()
			}
			r.guests[id] = guest.ReconstructGuest(id, g.Name(), g.Phone(), email)
			return id, nil
		}
	}
	r.guests[g.ID()] = g
	r.createdAt[g.ID()] = (*Store)(r).nextTime()
	return g.ID(), nil
}

func (r *guestRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.guests[id]
	return ok, nil
}

type reservationRepo storeTx

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	created := (*Store)(r).nextTime()
	r.reservations[res.ID()] = reservation.ReconstructReservation(
		res.ID(), res.RoomID(), res.GuestID(), res.Period(),
		res.Status(), res.Total(), res.MethodHint(), created,
	)
	r.createdAt[res.ID()] = created
	return res.ID(), nil
}

func (r *reservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return cloneReservation(res), nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status reservation.Status) error {
	res, ok := r.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.reservations[id] = reservation.ReconstructReservation(
		res.ID(), res.RoomID(), res.GuestID(), res.Period(),
		status, res.Total(), res.MethodHint(), res.CreatedAt(),
	)
	return nil
}

func (r *reservationRepo) HasBlockingOverlap(_ context.Context, roomID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	for _, res := range r.reservations {
		if res.RoomID() == roomID && res.IsBlocking() && res.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) HasBlockingStayEndingAfter(_ context.Context, roomID uuid.UUID, date time.Time) (bool, error) {
	for _, res := range r.reservations {
		if res.RoomID() == roomID && res.IsBlocking() && res.Period().EndsAfter(date) {
			return true, nil
		}
	}
	return false, nil
}

type paymentRepo storeTx

func (r *paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	for _, existing := range r.payments {
		if existing.ReservationID() == p.ReservationID() {
			return infra.WrapRepoErr("payment already recorded", nil, infra.KindDuplicateKey)
		}
	}
	paid := (*Store)(r).nextTime()
	r.payments[p.ID()] = payment.ReconstructPayment(p.ID(), p.ReservationID(), p.AmountCents(), p.Method(), p.Status(), paid)
	return nil
}

func (r *paymentRepo) ExistsForReservation(_ context.Context, reservationID uuid.UUID) (bool, error) {
	for _, p := range r.payments {
		if p.ReservationID() == reservationID {
			return true, nil
		}
	}
	return false, nil
}

func cloneRoom(rm *room.Room) *room.Room {
	return room.ReconstructRoom(rm.ID(), rm.Number(), rm.RoomType(), rm.PriceCents(), rm.Capacity(), rm.Amenities(), rm.Status())
}

func cloneReservation(res *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		res.ID(), res.RoomID(), res.GuestID(), res.Period(),
		res.Status(), res.Total(), res.MethodHint(), res.CreatedAt(),
	)
}

// Read store adapters backing the queries layer in tests. Each interface
// wants its own FindAll signature, so each gets its own wrapper type.

type RoomReads struct{ s *Store }
type GuestReads struct{ s *Store }
type ReservationReads struct{ s *Store }
type PaymentReads struct{ s *Store }

func (s *Store) RoomReads() *RoomReads               { return &RoomReads{s} }
func (s *Store) GuestReads() *GuestReads             { return &GuestReads{s} }
func (s *Store) ReservationReads() *ReservationReads { return &ReservationReads{s} }
func (s *Store) PaymentReads() *PaymentReads         { return &PaymentReads{s} }

func (s *Store) roomView(rm *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:         rm.ID(),
		Number:     rm.Number(),
		Type:       rm.RoomType().String(),
		PriceCents: rm.PriceCents(),
		Capacity:   rm.Capacity(),
		Amenities:  rm.Amenities(),
		Status:     rm.Status().String(),
		CreatedAt:  s.createdAt[rm.ID()],
	}
}

func (r *RoomReads) FindByNumber(_ context.Context, number string) (*queries.RoomView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	rm := s.roomByNumber(number)
	if rm == nil {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return s.roomView(rm), nil
}

func (r *RoomReads) FindAll(_ context.Context, status *room.Status) ([]*queries.RoomView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.RoomView, 0, len(s.rooms))
	for _, rm := range s.rooms {
		if status != nil && rm.Status() != *status {
			continue
		}
		views = append(views, s.roomView(rm))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Number < views[j].Number })
	return views, nil
}

func (r *RoomReads) CountByStatus(_ context.Context) (*queries.RoomStatusSummary, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := &queries.RoomStatusSummary{}
	for _, rm := range s.rooms {
		summary.Total++
		switch rm.Status() {
		case room.StatusAvailable:
			summary.Available++
		case room.StatusOccupied:
			summary.Occupied++
		case room.StatusMaintenance:
			summary.Maintenance++
		}
	}
	return summary, nil
}

func (r *RoomReads) HasBlockingOverlap(_ context.Context, roomNumber string, period reservation.StayPeriod) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	rm := s.roomByNumber(roomNumber)
	if rm == nil {
		return false, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	for _, res := range s.reservations {
		if res.RoomID() == rm.ID() && res.IsBlocking() && res.Period().Overlaps(period) {
			return true, nil
		}
	}
	return false, nil
}

func (r *RoomReads) FindAvailableRooms(_ context.Context, period reservation.StayPeriod, minCapacity *int) ([]*queries.RoomView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.RoomView, 0, len(s.rooms))
	for _, rm := range s.rooms {
		if rm.Status() == room.StatusMaintenance {
			continue
		}
		if minCapacity != nil && rm.Capacity() < *minCapacity {
			continue
		}
		blocked := false
		for _, res := range s.reservations {
			if res.RoomID() == rm.ID() && res.IsBlocking() && res.Period().Overlaps(period) {
				blocked = true
				break
			}
		}
		if !blocked {
			views = append(views, s.roomView(rm))
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Number < views[j].Number })
	return views, nil
}

func (r *GuestReads) FindByPhone(_ context.Context, phone string) (*queries.GuestView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		if g.Phone() == phone {
			return s.guestView(g), nil
		}
	}
	return nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
}

func (s *Store) guestView(g *guest.Guest) *queries.GuestView {
	return &queries.GuestView{
		ID:        g.ID(),
		Name:      g.Name(),
		Phone:     g.Phone(),
		Email:     g.Email(),
		CreatedAt: s.createdAt[g.ID()],
	}
}

func (r *GuestReads) FindAll(_ context.Context) ([]*queries.GuestView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.GuestView, 0, len(s.guests))
	for _, g := range s.guests {
		views = append(views, s.guestView(g))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.Before(views[j].CreatedAt) })
	return views, nil
}

func (r *ReservationReads) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return s.reservationView(res), nil
}

func (s *Store) reservationView(res *reservation.Reservation) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:           res.ID(),
		RoomID:       res.RoomID(),
		GuestID:      res.GuestID(),
		CheckInDate:  res.Period().CheckIn(),
		CheckOutDate: res.Period().CheckOut(),
		Nights:       res.Period().Nights(),
		Status:       res.Status().String(),
		TotalCents:   res.Total().Cents(),
		MethodHint:   res.MethodHint(),
		CreatedAt:    res.CreatedAt(),
	}
	if rm, ok := s.rooms[res.RoomID()]; ok {
		view.RoomNumber = rm.Number()
	}
	if g, ok := s.guests[res.GuestID()]; ok {
		view.GuestName = g.Name()
		view.GuestPhone = g.Phone()
	}
	return view
}

func (r *ReservationReads) FindAll(_ context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.ReservationView, 0, len(s.reservations))
	for _, res := range s.reservations {
		v := s.reservationView(res)
		if filter.Status != nil && v.Status != *filter.Status {
			continue
		}
		if filter.RoomNumber != nil && v.RoomNumber != *filter.RoomNumber {
			continue
		}
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.Before(views[j].CreatedAt) })
	return views, nil
}

func (r *PaymentReads) FindAll(_ context.Context, reservationID *uuid.UUID) ([]*queries.PaymentView, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.PaymentView, 0, len(s.payments))
	for _, p := range s.payments {
		if reservationID != nil && p.ReservationID() != *reservationID {
			continue
		}
		views = append(views, &queries.PaymentView{
			ID:            p.ID(),
			ReservationID: p.ReservationID(),
			AmountCents:   p.AmountCents(),
			Method:        p.Method().String(),
			Status:        p.Status().String(),
			PaidAt:        p.PaidAt(),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].PaidAt.Before(views[j].PaidAt) })
	return views, nil
}
