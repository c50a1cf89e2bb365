package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prakashv/minehaul/internal/pkg/database"
	"github.com/prakashv/minehaul/internal/pkg/models"
)

// TripRepo reads trip assignments from the marketplace Postgres store.
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository instance
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// LocationRepo keeps the last-known location record per trip in Redis.
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewLocationRepo creates a new location repository instance
func NewLocationRepo(cfg *models.Config, redis *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		redis: redis,
	}
}
