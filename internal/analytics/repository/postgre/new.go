package postgre

import (
	"database/sql"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

func New(l log.Logger, db *sql.DB) repository.PostgresRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
