package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

func (u *Usecase) Menus(ctx context.Context) ([]entity.Menu, error) {
	menus, err := u.store.ListMenus(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return menus, nil
}

func (u *Usecase) Menu(ctx context.Context, id int64) (entity.Menu, error) {
	m, err := u.store.GetMenu(ctx, id)
	if err != nil {
		return entity.Menu{}, mapStoreErr(err, "menu")
	}
	return m, nil
}

func (u *Usecase) CreateMenu(ctx context.Context, in MenuInput) (entity.Menu, error) {
	if err := u.validate(in); err != nil {
		return entity.Menu{}, err
	}

	id, err := u.store.CreateMenu(ctx, entity.Menu{Title: in.Title})
	if err != nil {
		return entity.Menu{}, normalizeErr(err)
	}

	return u.Menu(ctx, id)
}

func (u *Usecase) UpdateMenu(ctx context.Context, id int64, in MenuInput) (entity.Menu, error) {
	if err := u.validate(in); err != nil {
		return entity.Menu{}, err
	}

	if err := u.store.UpdateMenu(ctx, entity.Menu{ID: id, Title: in.Title}); err != nil {
		return entity.Menu{}, mapStoreErr(err, "menu")
	}

	return u.Menu(ctx, id)
}

// DeleteMenu removes a menu that owns no items.
func (u *Usecase) DeleteMenu(ctx context.Context, id int64) error {
	n, err := u.store.CountMenuItems(ctx, id)
	if err != nil {
		return normalizeErr(err)
	}
	if n > 0 {
		slog.WarnContext(ctx, "refusing to delete menu with items", "menu_id", id, "items", n)
		return pkgerror.NewBusiness("menu still has menu items", pkgerror.CodeReferenced)
	}

	if err := u.store.DeleteMenu(ctx, id); err != nil {
		return mapStoreErr(err, "menu")
	}
	return nil
}
