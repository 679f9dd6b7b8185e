package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/sanaol/canteen/internal/client/models"
)

// bookCatering walks through the booking form field by field, then the item
// list, and submits the event.
func (a *App) bookCatering(ctx context.Context) error {
	var event models.CateringEvent
	var err error

	prompts := []struct {
		prompt string
		dst    *string
	}{
		{"Event name", &event.Name},
		{"Client / company name", &event.ClientName},
		{"Contact person", &event.ContactName},
		{"Contact phone", &event.ContactPhone},
		{"Event date (YYYY-MM-DD)", &event.EventDate},
		{"Start time (HH:MM)", &event.StartTime},
		{"End time (HH:MM)", &event.EndTime},
		{"Location", &event.Location},
	}
	for _, p := range prompts {
		*p.dst, err = getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			return err
		}
	}

	guests, err := getSimpleText(a.reader, "Number of guests", os.Stdout)
	if err != nil {
		return err
	}
	event.GuestCount, _ = strconv.Atoi(guests)

	event.Notes, err = GetMultiline(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	// Items come from the last menu listing, same numbering as 'add'.
	if len(a.lastMenu) == 0 {
		fmt.Println("List the menu first with 'menu' to pick catering items.")
		return nil
	}
	for {
		line, err := getSimpleText(a.reader, "Item number and quantity, e.g. '2 40' (empty to finish)", os.Stdout)
		if err != nil || line == "" {
			break
		}
		var n, qty int
		if _, err := fmt.Sscanf(line, "%d %d", &n, &qty); err != nil || n < 1 || n > len(a.lastMenu) || qty < 1 {
			fmt.Println("Could not parse that, try again.")
			continue
		}
		item := a.lastMenu[n-1]
		event.Items = append(event.Items, models.CateringItem{
			MenuItem:  item.ID,
			Name:      item.Name,
			Quantity:  qty,
			UnitPrice: item.Price,
		})
	}

	created, err := a.catering.Schedule(ctx, event)
	if err != nil {
		printError(err)
		return err
	}
	fmt.Printf("Catering event #%d booked for %s.\n", created.ID, created.EventDate)
	return nil
}

// listEvents shows the bookings made under the given client name
// (defaulting to the logged-in user's display name).
func (a *App) listEvents(ctx context.Context) {
	clientName, err := getSimpleText(a.reader, "Client / company name", os.Stdout)
	if err != nil {
		return
	}
	if clientName == "" && a.profile != nil {
		clientName = a.profile.Name
	}

	events, err := a.catering.UserEvents(ctx, clientName)
	if err != nil {
		printError(err)
		return
	}
	if len(events) == 0 {
		fmt.Println("No catering events found.")
		return
	}
	for _, e := range events {
		fmt.Printf("#%-4d %-25s %s %s-%s at %s (%d guests)\n",
			e.ID, e.Name, e.EventDate, e.StartTime, e.EndTime, e.Location, e.GuestCount)
	}
}
