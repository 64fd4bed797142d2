package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/aprec-backend/internal/model"
)

// APClassRepository handles AP class data access.
type APClassRepository struct {
	db DBTX
}

// NewAPClassRepository creates a new APClassRepository.
func NewAPClassRepository(db DBTX) *APClassRepository {
	return &APClassRepository{db: db}
}

// ListOffered retrieves classes flagged as offered, in id order.
func (r *APClassRepository) ListOffered(ctx context.Context) ([]model.APClass, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, resources, offered
		 FROM ap_classes WHERE offered = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query offered classes: %w", err)
	}
	defer rows.Close()

	classes := []model.APClass{}
	for rows.Next() {
		var c model.APClass
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Resources, &c.Offered); err != nil {
			return nil, fmt.Errorf("scan ap class: %w", err)
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offered classes: %w", err)
	}
	return classes, nil
}

// Create inserts a new class.
func (r *APClassRepository) Create(ctx context.Context, c *model.APClass) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO ap_classes (name, description, resources, offered)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Name, c.Description, c.Resources, c.Offered,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert ap class: %w", err)
	}
	return nil
}

// DeleteAll removes every class.
func (r *APClassRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM ap_classes`); err != nil {
		return fmt.Errorf("delete ap classes: %w", err)
	}
	return nil
}
