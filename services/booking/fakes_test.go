package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"doctospeech/models"
	"doctospeech/utils"
)

// memStore backs every repository the booking service needs. It enforces the
// same uniqueness rules as the Mongo indexes.
type memStore struct {
	mu           sync.Mutex
	users        map[string]models.User
	entries      map[string]models.AvailabilityEntry // key therapistID|day
	bookings     map[string]models.Booking
	transactions map[string]models.Transaction // key paymentIntentID
	kids         map[string]models.Kid
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[string]models.User{},
		entries:      map[string]models.AvailabilityEntry{},
		bookings:     map[string]models.Booking{},
		transactions: map[string]models.Transaction{},
		kids:         map[string]models.Kid{},
	}
}

type memUsers struct{ *memStore }
type memAvailability struct{ *memStore }
type memBookings struct{ *memStore }
type memTransactions struct{ *memStore }
type memKids struct{ *memStore }

// users

func (m memUsers) EnsureIndexes(context.Context) error { return nil }

func (m memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return fmt.Errorf("email taken: %w", utils.ErrConflict)
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", utils.ErrNotFound)
	}
	return &u, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", utils.ErrNotFound)
}

func (m memUsers) GetByIDs(_ context.Context, ids []string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m memUsers) Update(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return fmt.Errorf("user: %w", utils.ErrNotFound)
	}
	m.users[u.ID] = *u
	return nil
}

func (m memUsers) SetSelectSlots(_ context.Context, id string, selected bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user: %w", utils.ErrNotFound)
	}
	u.IsSelectSlots = selected
	m.users[id] = u
	return nil
}

func (m memUsers) SetEntitlement(_ context.Context, id string, e models.Entitlement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user: %w", utils.ErrNotFound)
	}
	u.Type = e
	m.users[id] = u
	return nil
}

func (m memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m memUsers) FindTherapists(_ context.Context, _ models.TherapistQuery, limit int64) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		if u.IsTherapist() && u.IsProfileCompleted {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// availability

func (m memAvailability) EnsureIndexes(context.Context) error { return nil }

func (m memAvailability) ListByTherapist(_ context.Context, therapistID string) ([]models.AvailabilityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.AvailabilityEntry{}
	for _, e := range m.entries {
		if e.TherapistID == therapistID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m memAvailability) GetByDay(_ context.Context, therapistID string, day models.Weekday) (*models.AvailabilityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[therapistID+"|"+string(day)]
	if !ok {
		return nil, fmt.Errorf("availability: %w", utils.ErrNotFound)
	}
	return &e, nil
}

func (m memAvailability) FindByTimeID(_ context.Context, therapistID, timeID string) (*models.AvailabilityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.TherapistID != therapistID {
			continue
		}
		if _, ok := e.FindTime(timeID); ok {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("availability: %w", utils.ErrNotFound)
}

func (m memAvailability) Upsert(_ context.Context, e *models.AvailabilityEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.TherapistID+"|"+string(e.Day)] = *e
	return nil
}

func (m memAvailability) DeleteDaysExcept(_ context.Context, therapistID string, keep []models.Weekday) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := map[models.Weekday]bool{}
	for _, d := range keep {
		kept[d] = true
	}
	for k, e := range m.entries {
		if e.TherapistID == therapistID && !kept[e.Day] {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m memAvailability) DeleteByTherapist(_ context.Context, therapistID string) error {
	return m.DeleteDaysExcept(context.Background(), therapistID, nil)
}

// bookings

func (m memBookings) EnsureIndexes(context.Context) error { return nil }

func (m memBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.HoldsSlot = b.Status.HoldsSlot()
	if b.HoldsSlot {
		for _, other := range m.bookings {
			if other.HoldsSlot && other.TherapistID == b.TherapistID && other.TimeID == b.TimeID && other.Date == b.Date {
				return fmt.Errorf("time %s on %s: %w", b.TimeID, b.Date, utils.ErrSlotAlreadyBooked)
			}
		}
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m memBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}
	return &b, nil
}

func (m memBookings) Transition(_ context.Context, id string, t models.Transition) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok || b.Status != t.From {
		return nil, fmt.Errorf("booking %s: %w", id, utils.ErrInvalidTransition)
	}
	b.Status = t.To
	b.HoldsSlot = t.To.HoldsSlot()
	if t.CancelReason != "" {
		b.CancelReason = t.CancelReason
		b.CancelBy = t.CancelBy
	}
	m.bookings[id] = b
	return &b, nil
}

func (m memBookings) DeleteActive(_ context.Context, id, bookedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok || b.BookedBy != bookedBy || !b.HoldsSlot {
		return fmt.Errorf("booking %s: %w", id, utils.ErrInvalidTransition)
	}
	delete(m.bookings, id)
	return nil
}

func (m memBookings) SetPaid(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
	}
	b.IsPaid = true
	m.bookings[id] = b
	return nil
}

func (m memBookings) DeleteByUser(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, b := range m.bookings {
		if b.IsParty(userID) {
			delete(m.bookings, id)
			n++
		}
	}
	return n, nil
}

func (m memBookings) ListActiveTimeIDs(_ context.Context, therapistID, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []string{}
	for _, b := range m.bookings {
		if b.TherapistID == therapistID && b.Date == date && b.HoldsSlot {
			out = append(out, b.TimeID)
		}
	}
	return out, nil
}

func (m memBookings) ListByClient(_ context.Context, clientID string, f models.BookingFilter) ([]models.Booking, error) {
	return m.list(func(b models.Booking) bool { return b.BookedBy == clientID }, f), nil
}

func (m memBookings) ListByTherapist(_ context.Context, therapistID string, f models.BookingFilter) ([]models.Booking, error) {
	return m.list(func(b models.Booking) bool { return b.TherapistID == therapistID }, f), nil
}

func (m memBookings) list(match func(models.Booking) bool, f models.BookingFilter) []models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if !match(b) {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.From != "" && b.Date < f.From {
			continue
		}
		if f.To != "" && b.Date > f.To {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m memBookings) CountByStatus(_ context.Context, therapistID string) (map[models.BookingStatus]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[models.BookingStatus]int64{}
	for _, b := range m.bookings {
		if b.TherapistID == therapistID {
			out[b.Status]++
		}
	}
	return out, nil
}

// transactions

func (m memTransactions) EnsureIndexes(context.Context) error { return nil }

func (m memTransactions) Create(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[tx.PaymentIntentID]; ok {
		return fmt.Errorf("payment intent %s: %w", tx.PaymentIntentID, utils.ErrConflict)
	}
	m.transactions[tx.PaymentIntentID] = *tx
	return nil
}

func (m memTransactions) GetByPaymentIntent(_ context.Context, id string) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction: %w", utils.ErrNotFound)
	}
	return &tx, nil
}

func (m memTransactions) ListByPayer(_ context.Context, payer string) ([]models.Transaction, error) {
	return m.list(func(tx models.Transaction) bool { return tx.Payer == payer }), nil
}

func (m memTransactions) ListByReceiver(_ context.Context, receiver string) ([]models.Transaction, error) {
	return m.list(func(tx models.Transaction) bool { return tx.Receiver == receiver }), nil
}

func (m memTransactions) list(match func(models.Transaction) bool) []models.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Transaction{}
	for _, tx := range m.transactions {
		if match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func (m memTransactions) SumByReceiver(_ context.Context, receiver string) (float64, int64, error) {
	var total float64
	var count int64
	for _, tx := range m.list(func(tx models.Transaction) bool {
		return tx.Receiver == receiver && tx.Status == models.TransactionSucceeded
	}) {
		total += tx.Amount
		count++
	}
	return total, count, nil
}

func (m memTransactions) DeleteByUser(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, tx := range m.transactions {
		if tx.Payer == userID || tx.Receiver == userID {
			delete(m.transactions, k)
			n++
		}
	}
	return n, nil
}

func (m *memStore) transactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transactions)
}

// kids

func (m memKids) EnsureIndexes(context.Context) error { return nil }

func (m memKids) Create(_ context.Context, k *models.Kid) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kids[k.ID] = *k
	return nil
}

func (m memKids) GetByID(_ context.Context, id string) (*models.Kid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.kids[id]
	if !ok {
		return nil, fmt.Errorf("kid %s: %w", id, utils.ErrNotFound)
	}
	return &k, nil
}

func (m memKids) ListByUser(_ context.Context, userID string) ([]models.Kid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Kid{}
	for _, k := range m.kids {
		if k.User == userID {
			out = append(out, k)
		}
	}
	return out, nil
}

func (m memKids) Delete(_ context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.kids[id]
	if !ok || k.User != userID {
		return fmt.Errorf("kid %s: %w", id, utils.ErrNotFound)
	}
	delete(m.kids, id)
	return nil
}

func (m memKids) DeleteByUser(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, k := range m.kids {
		if k.User == userID {
			delete(m.kids, id)
			n++
		}
	}
	return n, nil
}
