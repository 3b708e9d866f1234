package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/shopcore/customer-service/internal/model"
)

// CustomerRepositoryInterface defines the methods used by the service.
// GetByID and Delete return (nil, nil) when no row matches.
type CustomerRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error)
	Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id string) (*model.Customer, error)
}

// CustomerRepository is the Postgres implementation.
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `id, first_name, last_name, email, phone, location, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Location, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll fetches every customer.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        ORDER BY created_at
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

// GetByID fetches a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1
    `
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	return c, err
}

// Exists reports whether a customer row exists for the ID.
func (r *CustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new customer with a generated UUID.
func (r *CustomerRepository) Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	query := `
        INSERT INTO customers (id, first_name, last_name, email, phone, location, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING ` + customerColumns + `
    `
	now := time.Now().UTC()
	row := r.DB.QueryRowContext(ctx, query,
		uuid.NewString(), in.FirstName, in.LastName, in.Email, in.Phone, in.Location, now,
	)
	return scanCustomer(row)
}

// Update overwrites the customer's profile fields.
func (r *CustomerRepository) Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error) {
	query := `
        UPDATE customers
        SET first_name = $2, last_name = $3, email = $4, phone = $5, location = $6, updated_at = $7
        WHERE id = $1
        RETURNING ` + customerColumns + `
    `
	row := r.DB.QueryRowContext(ctx, query,
		id, in.FirstName, in.LastName, in.Email, in.Phone, in.Location, time.Now().UTC(),
	)
	c, err := scanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// Delete removes the customer and returns the deleted row.
func (r *CustomerRepository) Delete(ctx context.Context, id string) (*model.Customer, error) {
	query := `
        DELETE FROM customers
        WHERE id = $1
        RETURNING ` + customerColumns + `
    `
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}
