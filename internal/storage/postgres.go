package storage

import (
	"context"
	"database/sql"
	"fmt"

	"takeaway/internal/domain"

	"github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		contact_number TEXT NOT NULL,
		delivery_address TEXT NOT NULL,
		total_cost NUMERIC(10, 2) NOT NULL,
		meal_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position INT NOT NULL,
		category TEXT NOT NULL,
		toppings TEXT[] NOT NULL DEFAULT '{}',
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS pending_orders (
		position INT PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id)
	)`,
	`CREATE TABLE IF NOT EXISTS customer_history (
		customer TEXT NOT NULL,
		position INT NOT NULL,
		order_id UUID NOT NULL REFERENCES orders(id),
		PRIMARY KEY (customer, position)
	)`,
}

// PostgresStore keeps every order once in the orders table. The queue and
// the history only hold ordered references to it.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) LoadQueue(ctx context.Context) ([]*domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT o.id, o.customer_name, o.contact_number, o.delivery_address, o.created_at
		FROM pending_orders p
		JOIN orders o ON o.id = p.order_id
		ORDER BY p.position
	`)
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}

	var records []OrderRecord
	for rows.Next() {
		rec, err := scanOrderHeader(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("load queue: %w", err)
		}
		records = append(records, rec)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}

	if err := s.loadItems(ctx, records); err != nil {
		return nil, err
	}
	return decodeOrders(records)
}

func (s *PostgresStore) LoadHistory(ctx context.Context) (map[string][]*domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT h.customer, o.id, o.customer_name, o.contact_number, o.delivery_address, o.created_at
		FROM customer_history h
		JOIN orders o ON o.id = h.order_id
		ORDER BY h.customer, h.position
	`)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var (
		customers []string
		records   []OrderRecord
	)
	for rows.Next() {
		var customer string
		rec := OrderRecord{Version: RecordVersion}
		if err := rows.Scan(&customer, &rec.ID, &rec.CustomerName, &rec.ContactNumber, &rec.DeliveryAddress, &rec.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("load history: %w", err)
		}
		customers = append(customers, customer)
		records = append(records, rec)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	if err := s.loadItems(ctx, records); err != nil {
		return nil, err
	}

	grouped := make(map[string][]OrderRecord)
	for i, rec := range records {
		grouped[customers[i]] = append(grouped[customers[i]], rec)
	}
	return decodeHistory(grouped)
}

func (s *PostgresStore) SaveQueue(ctx context.Context, queue []*domain.Order) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, order := range queue {
			if err := upsertOrder(ctx, tx, order); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM pending_orders`); err != nil {
			return fmt.Errorf("clear queue: %w", err)
		}
		for i, order := range queue {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO pending_orders (position, order_id)
				VALUES ($1, $2)
			`, i, order.ID()); err != nil {
				return fmt.Errorf("queue order %s: %w", order.ID(), err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) SaveHistory(ctx context.Context, history map[string][]*domain.Order) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, orders := range history {
			for _, order := range orders {
				if err := upsertOrder(ctx, tx, order); err != nil {
					return err
				}
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM customer_history`); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		for customer, orders := range history {
			for i, order := range orders {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO customer_history (customer, position, order_id)
					VALUES ($1, $2, $3)
				`, customer, i, order.ID()); err != nil {
					return fmt.Errorf("history of %q: %w", customer, err)
				}
			}
		}
		return nil
	})
}

func (s *PostgresStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// upsertOrder writes an order and its items the first time it is seen.
// Orders are never changed once placed, so later saves skip them.
func upsertOrder(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, contact_number, delivery_address, total_cost, meal_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`, order.ID(), order.CustomerName(), order.ContactNumber(), order.DeliveryAddress(),
		order.TotalCost(), string(order.MealType()), order.CreatedAt())
	if err != nil {
		return fmt.Errorf("save order %s: %w", order.ID(), err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save order %s: %w", order.ID(), err)
	}
	if inserted == 0 {
		return nil
	}

	for i, item := range order.Items() {
		rec := encodeItem(item)
		toppings := rec.Toppings
		if toppings == nil {
			toppings = []string{}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, category, toppings)
			VALUES ($1, $2, $3, $4)
		`, order.ID(), i, string(rec.Category), pq.Array(toppings)); err != nil {
			return fmt.Errorf("save order %s item %d: %w", order.ID(), i, err)
		}
	}
	return nil
}

func (s *PostgresStore) loadItems(ctx context.Context, records []OrderRecord) error {
	for i := range records {
		rows, err := s.DB.QueryContext(ctx, `
			SELECT category, toppings
			FROM order_items
			WHERE order_id = $1
			ORDER BY position
		`, records[i].ID)
		if err != nil {
			return fmt.Errorf("load items of %s: %w", records[i].ID, err)
		}

		records[i].Items = []ItemRecord{}
		for rows.Next() {
			var (
				category string
				toppings pq.StringArray
			)
			if err := rows.Scan(&category, &toppings); err != nil {
				rows.Close()
				return fmt.Errorf("load items of %s: %w", records[i].ID, err)
			}
			records[i].Items = append(records[i].Items, ItemRecord{
				Category: domain.Category(category),
				Toppings: []string(toppings),
			})
		}
		if err := closeRows(rows); err != nil {
			return fmt.Errorf("load items of %s: %w", records[i].ID, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderHeader(row rowScanner) (OrderRecord, error) {
	rec := OrderRecord{Version: RecordVersion}
	if err := row.Scan(&rec.ID, &rec.CustomerName, &rec.ContactNumber, &rec.DeliveryAddress, &rec.CreatedAt); err != nil {
		return OrderRecord{}, err
	}
	return rec, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
