package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

var timeZero = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedTicket(t *testing.T, store *memoryTickets, authorID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(authorID, 1, 1, "Printer jams", "Paper jams on every page")
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), tk))
	return tk
}

func seedNote(t *testing.T, store *memoryTickets, ticketID, userID uint) *ticket.Note {
	t.Helper()
	n, err := ticket.NewNote(ticketID, userID, "Rebooted the printer")
	require.NoError(t, err)
	require.NoError(t, store.noteRepo().Create(context.Background(), n))
	return n
}

func validForm() TicketForm {
	return TicketForm{
		Title:       "Printer jams",
		Description: "Paper jams on every page",
		Product:     "Printer",
		Status:      "Open",
	}
}
