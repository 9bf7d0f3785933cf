package usecase

import (
	"context"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

func (u *Usecase) MenuItems(ctx context.Context, menuID int64) ([]entity.MenuItem, error) {
	items, err := u.store.ListMenuItems(ctx, menuID)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return items, nil
}

// MenuItem returns the item only when it belongs to menuID.
func (u *Usecase) MenuItem(ctx context.Context, menuID, id int64) (entity.MenuItem, error) {
	item, err := u.store.GetMenuItem(ctx, id)
	if err != nil {
		return entity.MenuItem{}, mapStoreErr(err, "menu item")
	}
	if item.MenuID != menuID {
		return entity.MenuItem{}, pkgerror.NewNotFound("menu item not found")
	}
	return item, nil
}

func (u *Usecase) CreateMenuItem(ctx context.Context, menuID int64, in MenuItemInput) (entity.MenuItem, error) {
	if err := u.validate(in); err != nil {
		return entity.MenuItem{}, err
	}

	id, err := u.store.CreateMenuItem(ctx, menuItemFrom(0, menuID, in))
	if err != nil {
		return entity.MenuItem{}, normalizeErr(err)
	}

	return u.MenuItem(ctx, menuID, id)
}

func (u *Usecase) UpdateMenuItem(ctx context.Context, menuID, id int64, in MenuItemInput) (entity.MenuItem, error) {
	if err := u.validate(in); err != nil {
		return entity.MenuItem{}, err
	}

	if err := u.store.UpdateMenuItem(ctx, menuItemFrom(id, menuID, in)); err != nil {
		return entity.MenuItem{}, mapStoreErr(err, "menu item")
	}

	return u.MenuItem(ctx, menuID, id)
}

func (u *Usecase) DeleteMenuItem(ctx context.Context, menuID, id int64) error {
	if _, err := u.MenuItem(ctx, menuID, id); err != nil {
		return err
	}

	if err := u.store.DeleteMenuItem(ctx, id); err != nil {
		return mapStoreErr(err, "menu item")
	}
	return nil
}

func menuItemFrom(id, menuID int64, in MenuItemInput) entity.MenuItem {
	return entity.MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Inventory:   in.Inventory,
		Price:       in.Price,
		MenuID:      menuID,
	}
}
