package state

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/dhwani/internal/db"
	"github.com/llehouerou/dhwani/internal/order"
)

var _ order.Store = (*Manager)(nil)

// LoadOrder returns the persisted track order for folder, or an empty slice.
func (m *Manager) LoadOrder(ctx context.Context, folder string) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT track_id FROM track_order
		WHERE folder = ?
		ORDER BY position
	`, folder)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, unavailable(err)
		}
		ids = append(ids, id)
	}
	return ids, unavailable(rows.Err())
}

// SaveOrder replaces the persisted track order for folder.
func (m *Manager) SaveOrder(ctx context.Context, folder string, ids []string) error {
	err := dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM track_order WHERE folder = ?`, folder); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO track_order (folder, position, track_id) VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, id := range ids {
			if _, err := stmt.ExecContext(ctx, folder, i, id); err != nil {
				return err
			}
		}
		return nil
	})
	return unavailable(err)
}
