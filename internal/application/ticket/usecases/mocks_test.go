package usecases

import (
	"context"
	"errors"
	"sort"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type plainRenderer struct{}

func (plainRenderer) Render(markdown string) string { return "<p>" + markdown + "</p>" }

type memoryLookups struct {
	catalog.Repository
	entries    map[catalog.Kind][]*catalog.Entry
	keyLookups int
}

func newMemoryLookups() *memoryLookups {
	m := &memoryLookups{entries: make(map[catalog.Kind][]*catalog.Entry)}
	m.add(catalog.KindProduct, 1, "Laptop-X")
	m.add(catalog.KindProduct, 2, "Printer")
	m.add(catalog.KindStatus, 1, "Open")
	m.add(catalog.KindStatus, 2, "Closed")
	return m
}

func (m *memoryLookups) add(kind catalog.Kind, id uint, key string) {
	e, err := catalog.ReconstructEntry(id, kind, key, 1, timeZero, timeZero)
	if err != nil {
		panic(err)
	}
	m.entries[kind] = append(m.entries[kind], e)
}

func (m *memoryLookups) remove(kind catalog.Kind, id uint) {
	kept := m.entries[kind][:0]
	for _, e := range m.entries[kind] {
		if e.ID() != id {
			kept = append(kept, e)
		}
	}
	m.entries[kind] = kept
}

func (m *memoryLookups) GetByID(ctx context.Context, kind catalog.Kind, id uint) (*catalog.Entry, error) {
	for _, e := range m.entries[kind] {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memoryLookups) GetByKey(ctx context.Context, kind catalog.Kind, key string) (*catalog.Entry, error) {
	m.keyLookups++
	for _, e := range m.entries[kind] {
		if e.Key() == key {
			return e, nil
		}
	}
	return nil, nil
}

// memoryTickets stores tickets and notes together so cascades can be checked.
type memoryTickets struct {
	nextTicket uint
	nextNote   uint
	tickets    map[uint]*ticket.Ticket
	notes      map[uint]*ticket.Note
	failDelete bool
}

func newMemoryTickets() *memoryTickets {
	return &memoryTickets{
		tickets: make(map[uint]*ticket.Ticket),
		notes:   make(map[uint]*ticket.Note),
	}
}

func (m *memoryTickets) Create(ctx context.Context, t *ticket.Ticket) error {
	m.nextTicket++
	if err := t.SetID(m.nextTicket); err != nil {
		return err
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *memoryTickets) Update(ctx context.Context, t *ticket.Ticket) error {
	m.tickets[t.ID()] = t
	return nil
}

func (m *memoryTickets) Delete(ctx context.Context, ticketID uint) error {
	if m.failDelete {
		return errors.New("delete failed")
	}
	delete(m.tickets, ticketID)
	return nil
}

func (m *memoryTickets) DeleteByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	for id, t := range m.tickets {
		if t.AuthorID() == authorID {
			delete(m.tickets, id)
			n++
		}
	}
	return n, nil
}

func (m *memoryTickets) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return m.tickets[ticketID], nil
}

func (m *memoryTickets) GetDetails(ctx context.Context, ticketID uint) (*ticket.Details, error) {
	t := m.tickets[ticketID]
	if t == nil {
		return nil, nil
	}
	return &ticket.Details{Ticket: t, AuthorUsername: "alice"}, nil
}

func (m *memoryTickets) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Details, error) {
	var result []*ticket.Details
	for _, t := range m.tickets {
		if filter.AuthorID != nil && t.AuthorID() != *filter.AuthorID {
			continue
		}
		result = append(result, &ticket.Details{Ticket: t})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Ticket.ID() > result[j].Ticket.ID() })
	return result, nil
}

func (m *memoryTickets) ListIDsByAuthorID(ctx context.Context, authorID uint) ([]uint, error) {
	var ids []uint
	for id, t := range m.tickets {
		if t.AuthorID() == authorID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memoryTickets) CountByProductID(ctx context.Context, productID uint) (int64, error) {
	return 0, nil
}

func (m *memoryTickets) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	return 0, nil
}

// noteRepo returns the NoteRepository view of the same store.
func (m *memoryTickets) noteRepo() *memoryNotes { return &memoryNotes{m} }

type memoryNotes struct{ *memoryTickets }

func (m *memoryNotes) Create(ctx context.Context, n *ticket.Note) error {
	m.nextNote++
	if err := n.SetID(m.nextNote); err != nil {
		return err
	}
	m.notes[n.ID()] = n
	return nil
}

func (m *memoryNotes) Update(ctx context.Context, n *ticket.Note) error {
	m.notes[n.ID()] = n
	return nil
}

func (m *memoryNotes) Delete(ctx context.Context, noteID uint) error {
	delete(m.notes, noteID)
	return nil
}

func (m *memoryNotes) deleteWhere(match func(n *ticket.Note) bool) int64 {
	var count int64
	for id, n := range m.notes {
		if match(n) {
			delete(m.notes, id)
			count++
		}
	}
	return count
}

func (m *memoryNotes) DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	return m.deleteWhere(func(n *ticket.Note) bool { return n.TicketID() == ticketID }), nil
}

func (m *memoryNotes) DeleteByTicketIDs(ctx context.Context, ticketIDs []uint) (int64, error) {
	set := make(map[uint]bool, len(ticketIDs))
	for _, id := range ticketIDs {
		set[id] = true
	}
	return m.deleteWhere(func(n *ticket.Note) bool { return set[n.TicketID()] }), nil
}

func (m *memoryNotes) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	return m.deleteWhere(func(n *ticket.Note) bool { return n.UserID() == userID }), nil
}

func (m *memoryNotes) GetByID(ctx context.Context, noteID uint) (*ticket.Note, error) {
	return m.notes[noteID], nil
}

func (m *memoryNotes) GetDetails(ctx context.Context, noteID uint) (*ticket.NoteDetails, error) {
	n := m.notes[noteID]
	if n == nil {
		return nil, nil
	}
	return &ticket.NoteDetails{Note: n}, nil
}

func (m *memoryNotes) List(ctx context.Context, filter ticket.NoteFilter) ([]*ticket.NoteDetails, error) {
	var result []*ticket.NoteDetails
	for _, n := range m.notes {
		if filter.TicketID != nil && n.TicketID() != *filter.TicketID {
			continue
		}
		result = append(result, &ticket.NoteDetails{Note: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Note.ID() > result[j].Note.ID() })
	return result, nil
}
