package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
	"stayhub/internal/shared"
	mysqlrepo "stayhub/internal/storage/mysql"
)

// Development fixtures. Reruns are harmless: rows that already exist
// are reported as conflicts and skipped.
var seedUsers = []struct {
	name, email, password string
	role                  domain.Role
}{
	{"Admin", "admin@stayhub.dev", "admin123", domain.RoleAdmin},
	{"Demo User", "user@stayhub.dev", "user123", domain.RoleUser},
}

var seedHotels = []domain.Hotel{
	{Name: "Sunset Resort", Address: "123 Beach Road", District: "Mueang Phuket", Province: "Phuket", Postalcode: "83000", Tel: "076123456", Region: "South"},
	{Name: "Urban Stay", Address: "88 Sukhumvit Road", District: "Watthana", Province: "Bangkok", Postalcode: "10110", Tel: "021234567", Region: "Central"},
	{Name: "Mountain View Lodge", Address: "55 Nimman Road", District: "Mueang Chiang Mai", Province: "Chiang Mai", Postalcode: "50200", Tel: "053123456", Region: "North"},
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("bcrypt failed")
		}
		err = repo.CreateUser(ctx, domain.User{
			ID:           uuid.NewString(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			CreatedAt:    time.Now().UTC(),
		})
		switch {
		case errors.Is(err, domain.ErrConflict):
			log.Info().Str("email", u.email).Msg("user already seeded")
		case err != nil:
			log.Fatal().Err(err).Str("email", u.email).Msg("seed user failed")
		default:
			log.Info().Str("email", u.email).Str("role", string(u.role)).Msg("user seeded")
		}
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range seedHotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			h.ID = uuid.NewString()
			h.CreatedAt = time.Now().UTC()
			err := repo.CreateHotel(ctx, h)
			switch {
			case errors.Is(err, domain.ErrConflict):
				log.Info().Str("name", h.Name).Msg("hotel already seeded")
			case err != nil:
				log.Warn().Err(err).Str("name", h.Name).Msg("seed hotel failed")
			default:
				log.Info().Str("name", h.Name).Msg("hotel seeded")
			}
		}(h)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
