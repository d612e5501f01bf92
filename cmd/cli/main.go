package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra/db"
	"hotelier/internal/infra/readstore"
	"hotelier/internal/infra/uow"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/config"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type app struct {
	roomCommands        commands.RoomCommands
	guestCommands       commands.GuestCommands
	reservationCommands commands.ReservationCommands
	roomQueries         queries.RoomQueries
	availabilityQueries queries.AvailabilityQueries
	guestQueries        queries.GuestQueries
	reservationQueries  queries.ReservationQueries
	in                  *bufio.Scanner
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	roomStore := readstore.NewRoomReadStore(pool)
	roomQueries := queries.NewRoomQueries(roomStore)
	availabilityQueries := queries.NewAvailabilityQueries(roomStore)
	guestQueries := queries.NewGuestQueries(readstore.NewGuestReadStore(pool))
	reservationQueries := queries.NewReservationQueries(readstore.NewReservationReadStore(pool))
	paymentQueries := queries.NewPaymentQueries(readstore.NewPaymentReadStore(pool))

	unit := uow.NewPostgresUoW(pool)
	a := &app{
		roomCommands:        commands.NewRoomCommands(unit, roomQueries, clock.NewRealClock()),
		guestCommands:       commands.NewGuestCommands(unit, guestQueries),
		reservationCommands: commands.NewReservationCommands(unit, reservationQueries, paymentQueries),
		roomQueries:         roomQueries,
		availabilityQueries: availabilityQueries,
		guestQueries:        guestQueries,
		reservationQueries:  reservationQueries,
		in:                  bufio.NewScanner(os.Stdin),
	}
	a.loop(context.Background())
}

func (a *app) loop(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("    HOTEL MANAGEMENT SYSTEM")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("1. Add Room")
		fmt.Println("2. View All Rooms")
		fmt.Println("3. Check Room Availability")
		fmt.Println("4. Make Reservation")
		fmt.Println("5. View Reservations")
		fmt.Println("6. Check In Guest")
		fmt.Println("7. Check Out Guest")
		fmt.Println("8. View Guests")
		fmt.Println("9. Room Status Summary")
		fmt.Println("10. Cancel Reservation")
		fmt.Println("0. Exit")
		fmt.Println(strings.Repeat("=", 50))

		switch a.prompt("Select option: ") {
		case "1":
			a.addRoom(ctx)
		case "2":
			a.viewRooms(ctx)
		case "3":
			a.checkAvailability(ctx)
		case "4":
			a.makeReservation(ctx)
		case "5":
			a.viewReservations(ctx)
		case "6":
			a.checkIn(ctx)
		case "7":
			a.checkOut(ctx)
		case "8":
			a.viewGuests(ctx)
		case "9":
			a.statusSummary(ctx)
		case "10":
			a.cancelReservation(ctx)
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option, try again.")
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return "0"
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) addRoom(ctx context.Context) {
	number := a.prompt("Room Number: ")
	roomType := strings.ToLower(a.prompt("Room Type (single/double/suite/presidential): "))
	priceCents, err := strconv.ParseInt(a.prompt("Price per Night (cents): "), 10, 64)
	if err != nil {
		fmt.Println("Error: invalid price")
		return
	}
	capacity, err := strconv.Atoi(a.prompt("Capacity (number of guests): "))
	if err != nil {
		fmt.Println("Error: invalid capacity")
		return
	}
	var amenities []string
	if raw := a.prompt("Amenities (comma-separated, optional): "); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			amenities = append(amenities, strings.TrimSpace(s))
		}
	}

	view, err := a.roomCommands.Add(ctx, commands.AddRoomParams{
		Number:     number,
		Type:       roomType,
		PriceCents: priceCents,
		Capacity:   capacity,
		Amenities:  amenities,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Room %s added successfully!\n", view.Number)
}

func (a *app) viewRooms(ctx context.Context) {
	views, err := a.roomQueries.List(ctx, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(views) == 0 {
		fmt.Println("No rooms found.")
		return
	}
	fmt.Printf("%-10s %-15s %-15s %-10s %-12s\n", "Room #", "Type", "Price/Night", "Capacity", "Status")
	fmt.Println(strings.Repeat("-", 70))
	for _, r := range views {
		fmt.Printf("%-10s %-15s $%-14.2f %-10d %-12s\n",
			r.Number, r.Type, float64(r.PriceCents)/100, r.Capacity, r.Status)
	}
}

func (a *app) readPeriod() (reservation.StayPeriod, bool) {
	checkIn := a.prompt("Check-in Date (YYYY-MM-DD): ")
	checkOut := a.prompt("Check-out Date (YYYY-MM-DD): ")
	period, err := reservation.ParseStayPeriod(checkIn, checkOut)
	if err != nil {
		fmt.Println("Error: invalid date range")
		return reservation.StayPeriod{}, false
	}
	return period, true
}

func (a *app) checkAvailability(ctx context.Context) {
	period, ok := a.readPeriod()
	if !ok {
		return
	}
	views, err := a.availabilityQueries.ListAvailableRooms(ctx, period, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(views) == 0 {
		fmt.Println("No available rooms for the selected dates.")
		return
	}
	fmt.Printf("\nAvailable Rooms (%d):\n", len(views))
	fmt.Printf("%-10s %-15s %-15s %-10s\n", "Room #", "Type", "Price/Night", "Capacity")
	fmt.Println(strings.Repeat("-", 55))
	for _, r := range views {
		fmt.Printf("%-10s %-15s $%-14.2f %-10d\n", r.Number, r.Type, float64(r.PriceCents)/100, r.Capacity)
	}
}

func (a *app) makeReservation(ctx context.Context) {
	period, ok := a.readPeriod()
	if !ok {
		return
	}
	available, err := a.availabilityQueries.ListAvailableRooms(ctx, period, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(available) == 0 {
		fmt.Println("No available rooms for the selected dates.")
		return
	}
	fmt.Println("\nAvailable Rooms:")
	for _, r := range available {
		fmt.Printf("  %s (%s) - $%.2f/night\n", r.Number, r.Type, float64(r.PriceCents)/100)
	}

	roomNumber := a.prompt("\nSelect Room Number: ")
	name := a.prompt("Guest Name: ")
	phone := a.prompt("Phone Number: ")
	var email *string
	if raw := a.prompt("Email (optional): "); raw != "" {
		email = &raw
	}

	guestView, err := a.guestCommands.Register(ctx, commands.RegisterGuestParams{
		Name:  name,
		Phone: phone,
		Email: email,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var hint *string
	if raw := strings.ToLower(a.prompt("Payment Method Hint (cash/card/online, optional): ")); raw != "" {
		hint = &raw
	}

	view, err := a.reservationCommands.Create(ctx, commands.CreateReservationParams{
		RoomNumber: roomNumber,
		GuestID:    guestView.ID,
		CheckIn:    period.CheckIn().Format(reservation.DateLayout),
		CheckOut:   period.CheckOut().Format(reservation.DateLayout),
		MethodHint: hint,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Reservation %s created: room %s, %d night(s), total $%.2f\n",
		view.ID, view.RoomNumber, view.Nights, float64(view.TotalCents)/100)
}

func (a *app) viewReservations(ctx context.Context) {
	views, err := a.reservationQueries.List(ctx, queries.ReservationFilter{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(views) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	fmt.Printf("%-38s %-8s %-20s %-12s %-12s %-12s\n",
		"ID", "Room", "Guest", "Check-in", "Check-out", "Status")
	fmt.Println(strings.Repeat("-", 105))
	for _, r := range views {
		fmt.Printf("%-38s %-8s %-20s %-12s %-12s %-12s\n",
			r.ID, r.RoomNumber, r.GuestName,
			r.CheckInDate.Format(reservation.DateLayout),
			r.CheckOutDate.Format(reservation.DateLayout),
			r.Status)
	}
}

func (a *app) readReservationID() (uuid.UUID, bool) {
	id, err := uuid.Parse(a.prompt("Reservation ID: "))
	if err != nil {
		fmt.Println("Error: invalid reservation ID")
		return uuid.Nil, false
	}
	return id, true
}

func (a *app) checkIn(ctx context.Context) {
	id, ok := a.readReservationID()
	if !ok {
		return
	}
	view, err := a.reservationCommands.CheckIn(ctx, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Guest %s checked in to room %s.\n", view.GuestName, view.RoomNumber)
}

func (a *app) checkOut(ctx context.Context) {
	id, ok := a.readReservationID()
	if !ok {
		return
	}
	var method *string
	if raw := strings.ToLower(a.prompt("Payment Method (cash/card/online, blank = use hint): ")); raw != "" {
		method = &raw
	}
	result, err := a.reservationCommands.CheckOut(ctx, id, method)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Guest %s checked out of room %s.\n",
		result.Reservation.GuestName, result.Reservation.RoomNumber)
	if result.Payment != nil {
		fmt.Printf("Payment recorded: $%.2f via %s\n",
			float64(result.Payment.AmountCents)/100, result.Payment.Method)
	}
}

func (a *app) viewGuests(ctx context.Context) {
	views, err := a.guestQueries.List(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(views) == 0 {
		fmt.Println("No guests found.")
		return
	}
	fmt.Printf("%-25s %-18s %-30s\n", "Name", "Phone", "Email")
	fmt.Println(strings.Repeat("-", 75))
	for _, g := range views {
		email := ""
		if g.Email != nil {
			email = *g.Email
		}
		fmt.Printf("%-25s %-18s %-30s\n", g.Name, g.Phone, email)
	}
}

func (a *app) statusSummary(ctx context.Context) {
	summary, err := a.roomQueries.StatusSummary(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("\n--- Room Status Summary ---")
	fmt.Printf("Total rooms:  %d\n", summary.Total)
	fmt.Printf("Available:    %d\n", summary.Available)
	fmt.Printf("Occupied:     %d\n", summary.Occupied)
	fmt.Printf("Maintenance:  %d\n", summary.Maintenance)
}

func (a *app) cancelReservation(ctx context.Context) {
	id, ok := a.readReservationID()
	if !ok {
		return
	}
	view, err := a.reservationCommands.Cancel(ctx, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Reservation %s cancelled.\n", view.ID)
}
