package db

import (
	"fmt"
	"time"

	"wealth-projector/internal/engine"

	"github.com/google/uuid"
)

// ListPositions returns all stored positions, oldest first.
func (d *DB) ListPositions() ([]engine.Position, error) {
	rows, err := d.sql.Query(`
		SELECT id, symbol, asset_class, expected_return, investment_amount, added_at
		FROM positions ORDER BY added_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var positions []engine.Position
	for rows.Next() {
		var p engine.Position
		if err := rows.Scan(&p.ID, &p.Symbol, &p.AssetClass, &p.ExpectedReturn, &p.InvestmentAmount, &p.AddedAt); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// InsertPosition stores a new position, assigning it an ID and timestamp.
// The filled-in position is returned.
func (d *DB) InsertPosition(p engine.Position) (engine.Position, error) {
	p.ID = uuid.NewString()
	p.AddedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := d.sql.Exec(`
		INSERT INTO positions (id, symbol, asset_class, expected_return, investment_amount, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Symbol, p.AssetClass, p.ExpectedReturn, p.InvestmentAmount, p.AddedAt)
	if err != nil {
		return engine.Position{}, fmt.Errorf("insert position: %w", err)
	}
	return p, nil
}

// UpdatePosition overwrites the mutable fields of an existing position.
// Returns false if no position with that ID exists.
func (d *DB) UpdatePosition(p engine.Position) (bool, error) {
	res, err := d.sql.Exec(`
		UPDATE positions SET symbol = ?, asset_class = ?, expected_return = ?, investment_amount = ?
		WHERE id = ?
	`, p.Symbol, p.AssetClass, p.ExpectedReturn, p.InvestmentAmount, p.ID)
	if err != nil {
		return false, fmt.Errorf("update position: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DeletePosition removes a position by ID. Returns false if it did not exist.
func (d *DB) DeletePosition(id string) (bool, error) {
	res, err := d.sql.Exec("DELETE FROM positions WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete position: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
