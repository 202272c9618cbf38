// Command seed provisions the initial data a fresh deployment needs: one
// ADMIN staff account and the default holding locations. Safe to run
// repeatedly; existing records are left untouched.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/idfinder-gh/idfinder/internal/config"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/models"
)

var defaultLocations = []models.Location{
	{Name: "Accra Central Police Station", Address: "Kinbu Road, Accra", Region: "Greater Accra", Phone: "0302662441", Hours: "Mon-Fri 8:00-17:00"},
	{Name: "Kumasi Metropolitan Assembly", Address: "Prempeh II Street, Kumasi", Region: "Ashanti", Phone: "0322022156", Hours: "Mon-Fri 8:00-16:30"},
	{Name: "Tamale Central Post Office", Address: "Daboya Road, Tamale", Region: "Northern", Phone: "0372022673", Hours: "Mon-Fri 8:00-16:00"},
	{Name: "Takoradi Harbour Office", Address: "Harbour Area, Takoradi", Region: "Western", Phone: "0312024851", Hours: "Mon-Fri 8:30-17:00"},
	{Name: "Cape Coast Municipal Office", Address: "Commercial Street, Cape Coast", Region: "Central", Phone: "0332132552", Hours: "Mon-Fri 8:00-16:30"},
}

func main() {
	log := logger.NewLogger("idfinder-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)
	ids := utils.NewUUIDGenerator()

	seedAdmin(ctx, repos.Users, ids, log)
	seedLocations(ctx, repos.Locations, ids, log)

	log.Info().Msg("seeding finished")
}

func seedAdmin(ctx context.Context, users store.UserRepository, ids *utils.UUIDGenerator, log *logger.Logger) {
	email := envOr("SEED_ADMIN_EMAIL", "admin@idfinder.local")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD must be set")
	}

	if _, err := users.FindUserByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin account already exists, skipping")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("error checking for existing admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing admin password")
	}

	admin := models.User{
		ID:           ids.Generate(),
		Name:         envOr("SEED_ADMIN_NAME", "Administrator"),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if _, err := users.CreateUser(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("error creating admin account")
	}

	log.Info().Str("email", email).Msg("admin account created")
}

func seedLocations(ctx context.Context, locations store.LocationRepository, ids *utils.UUIDGenerator, log *logger.Logger) {
	for _, loc := range defaultLocations {
		if _, err := locations.FindLocationByName(ctx, loc.Name); err == nil {
			log.Info().Str("name", loc.Name).Msg("location already exists, skipping")
			continue
		} else if !errors.Is(err, store.ErrLocationNotFound) {
			log.Fatal().Err(err).Msg("error checking for existing location")
		}

		loc.ID = ids.Generate()
		loc.CreatedAt = time.Now()

		if _, err := locations.CreateLocation(ctx, loc); err != nil {
			log.Fatal().Err(err).Str("name", loc.Name).Msg("error creating location")
		}

		log.Info().Str("name", loc.Name).Msg("location created")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
