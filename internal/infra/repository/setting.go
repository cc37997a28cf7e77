package repository

import (
	"context"

	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"
)

type SettingRepository struct{}

func NewSettingRepository() *SettingRepository {
	return &SettingRepository{}
}

func (r *SettingRepository) Get(ctx context.Context, dbtx db.DBTX, key string) (string, error) {
	var value string
	err := dbtx.QueryRow(ctx,
		`SELECT setting_value FROM settings WHERE setting_key = $1`, key,
	).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("setting not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read setting", err)
	}
	return value, nil
}

func (r *SettingRepository) Set(ctx context.Context, dbtx db.DBTX, key, value string) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO settings (setting_key, setting_value) VALUES ($1, $2)
		 ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value`,
		key, value,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to write setting", err)
	}
	return nil
}

func (r *SettingRepository) All(ctx context.Context, dbtx db.DBTX) (map[string]string, error) {
	rows, err := dbtx.Query(ctx, `SELECT setting_key, setting_value FROM settings ORDER BY setting_key`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan setting", err)
		}
		settings[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate settings", err)
	}
	return settings, nil
}
