package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"hotelier/internal/infra/db"
	"hotelier/internal/infra/readstore"
	"hotelier/internal/infra/uow"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/cockroachdb/errors"
)

type seedRoom struct {
	Number     string
	Type       string
	PriceCents int64
	Capacity   int
	Amenities  []string
}

var sampleRooms = []seedRoom{
	{"101", "single", 8000, 1, []string{"WiFi", "TV", "AC"}},
	{"102", "single", 8000, 1, []string{"WiFi", "TV", "AC"}},
	{"201", "double", 12000, 2, []string{"WiFi", "TV", "AC", "Mini Bar"}},
	{"202", "double", 12000, 2, []string{"WiFi", "TV", "AC", "Mini Bar"}},
	{"301", "suite", 20000, 4, []string{"WiFi", "TV", "AC", "Mini Bar", "Living Room"}},
	{"302", "suite", 20000, 4, []string{"WiFi", "TV", "AC", "Mini Bar", "Living Room"}},
	{"401", "presidential", 50000, 6, []string{"WiFi", "TV", "AC", "Mini Bar", "Living Room", "Jacuzzi", "Balcony"}},
}

func main() {
	if err := run(); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	roomQueries := queries.NewRoomQueries(readstore.NewRoomReadStore(pool))
	roomCommands := commands.NewRoomCommands(uow.NewPostgresUoW(pool), roomQueries, clock.NewRealClock())

	ctx := context.Background()
	for _, r := range sampleRooms {
		_, err := roomCommands.Add(ctx, commands.AddRoomParams{
			Number:     r.Number,
			Type:       r.Type,
			PriceCents: r.PriceCents,
			Capacity:   r.Capacity,
			Amenities:  r.Amenities,
		})
		switch {
		case err == nil:
			fmt.Printf("added room %s\n", r.Number)
		case errors.Is(err, errs.ErrDuplicateRoom):
			fmt.Printf("room %s already exists, skipping\n", r.Number)
		default:
			return err
		}
	}

	fmt.Println("sample data initialization complete")
	return nil
}
