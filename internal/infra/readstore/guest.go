package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

func (s *GuestReadStore) FindByPhone(ctx context.Context, phone string) (*queries.GuestView, error) {
	var view queries.GuestView
	err := s.db.QueryRow(ctx, `
		SELECT id, name, phone, email, created_at FROM guests WHERE phone = $1`,
		phone,
	).Scan(&view.ID, &view.Name, &view.Phone, &view.Email, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by phone", err)
	}
	return &view, nil
}

func (s *GuestReadStore) FindAll(ctx context.Context) ([]*queries.GuestView, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, phone, email, created_at FROM guests ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	views := []*queries.GuestView{}
	for rows.Next() {
		var view queries.GuestView
		if err := rows.Scan(&view.ID, &view.Name, &view.Phone, &view.Email, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guest rows", err)
	}
	return views, nil
}
