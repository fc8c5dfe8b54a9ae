package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/config"
	dbpkg "github.com/northpeaklabs/marketing-ops/internal/db"
	infraRepo "github.com/northpeaklabs/marketing-ops/internal/infra/repository"
	"github.com/northpeaklabs/marketing-ops/internal/slotgen"
	"github.com/northpeaklabs/marketing-ops/internal/timezone"
)

func main() {
	days := flag.Int("days", 14, "days ahead to fill (weekends skipped)")
	startHour := flag.Int("start-hour", 9, "first slot hour")
	endHour := flag.Int("end-hour", 17, "hour after the last slot")
	duration := flag.Int("duration", 60, "slot duration in minutes")
	amount := flag.Float64("amount", 0, "consultation price, 0 for free slots")
	flag.Parse()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store := infraRepo.NewSlotGormStore(db)

	res, err := slotgen.Generate(context.Background(), store, slotgen.Options{
		Days:            *days,
		StartHour:       *startHour,
		EndHour:         *endHour,
		DurationMinutes: *duration,
		PaymentAmount:   *amount,
		Start:           time.Now(),
		Location:        timezone.Location(cfg.BusinessTimezone),
	})
	if err != nil {
		log.Fatalf("slot generation failed: %v", err)
	}

	log.Printf("slots created=%d skipped=%d", res.Created, res.Skipped)
}
