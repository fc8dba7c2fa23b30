package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/pkg/apperr"
	"github.com/nazex2000/LittleLemon/repository"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewCategoryRepository(db), repository.NewMenuRepository(db))
}

func TestCreateMenuItemDuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	cat, err := svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)

	in := &MenuItemIn{Title: "Lemon Tart", Price: decimal.RequireFromString("10.00"), CategoryID: cat.ID}
	_, err = svc.CreateMenuItem(in)
	require.NoError(t, err)

	_, err = svc.CreateMenuItem(in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestCreateMenuItemUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CreateMenuItem(&MenuItemIn{Title: "Lemon Tart", Price: decimal.RequireFromString("10.00"), CategoryID: 42})
	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestDeleteCategoryProtected(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	cat, err := svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)
	item, err := svc.CreateMenuItem(&MenuItemIn{Title: "Lemon Tart", Price: decimal.RequireFromString("10.00"), CategoryID: cat.ID})
	require.NoError(t, err)

	err = svc.DeleteCategory(cat.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	require.NoError(t, svc.DeleteMenuItem(item.ID))
	require.NoError(t, svc.DeleteCategory(cat.ID))
}

func TestDeleteMenuItemProtectedWhileOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	carts := newCartService(db)
	orders := newOrderService(db)
	user := seedUser(t, db, "carla", "customer")
	item := seedMenuItem(t, db, "Lemon Tart", "10.00")

	_, err := carts.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = orders.Place(user.ID)
	require.NoError(t, err)

	err = svc.DeleteMenuItem(item.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// the referenced item survives so the order history stays resolvable
	_, err = svc.GetMenuItem(item.ID)
	assert.NoError(t, err)
}

func TestDeleteMenuItemClearsCartLines(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	carts := newCartService(db)
	user := seedUser(t, db, "carla", "customer")
	item := seedMenuItem(t, db, "Lemon Tart", "10.00")

	_, err := carts.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	// no orders reference the item, so the delete goes through and takes
	// the pending cart lines with it
	require.NoError(t, svc.DeleteMenuItem(item.ID))

	out, err := carts.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestRecreateMenuItemAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	cat, err := svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)

	in := &MenuItemIn{Title: "Phoenix", Price: decimal.RequireFromString("9.00"), CategoryID: cat.ID}
	item, err := svc.CreateMenuItem(in)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMenuItem(item.ID))

	// a deleted title is free again
	_, err = svc.CreateMenuItem(in)
	require.NoError(t, err)
}

func TestRecreateCategoryAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	cat, err := svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCategory(cat.ID))

	_, err = svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)
}

func TestDuplicateCategorySlug(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Sweets"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func seedCatalog(t *testing.T, svc *CatalogService) {
	t.Helper()
	mains, err := svc.CreateCategory(&CategoryIn{Slug: "mains", Name: "Mains"})
	require.NoError(t, err)
	desserts, err := svc.CreateCategory(&CategoryIn{Slug: "desserts", Name: "Desserts"})
	require.NoError(t, err)

	rows := []struct {
		title string
		price string
		cat   uint
	}{
		{"Greek Salad", "8.00", mains.ID},
		{"Pasta", "12.50", mains.ID},
		{"Grilled Fish", "20.00", mains.ID},
		{"Lemon Tart", "10.00", desserts.ID},
		{"Baklava", "6.50", desserts.ID},
	}
	for _, row := range rows {
		_, err := svc.CreateMenuItem(&MenuItemIn{
			Title:      row.title,
			Price:      decimal.RequireFromString(row.price),
			CategoryID: row.cat,
		})
		require.NoError(t, err)
	}
}

func TestMenuListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	seedCatalog(t, svc)

	from := decimal.RequireFromString("8.00")
	to := decimal.RequireFromString("12.50")
	page, err := svc.ListMenuItems(repository.MenuFilter{PriceFrom: &from, PriceTo: &to})
	require.NoError(t, err)
	// bounds are inclusive
	require.Equal(t, int64(3), page.Total)
	for _, it := range page.Items {
		assert.True(t, it.Price.GreaterThanOrEqual(from) && it.Price.LessThanOrEqual(to))
	}

	page, err = svc.ListMenuItems(repository.MenuFilter{Search: "dessert"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total, "search matches category names too")

	page, err = svc.ListMenuItems(repository.MenuFilter{Ordering: []string{"-price"}})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	assert.Equal(t, "Grilled Fish", page.Items[0].Title)
}

func TestMenuListPageClamp(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	seedCatalog(t, svc)

	page, err := svc.ListMenuItems(repository.MenuFilter{Page: 99, PerPage: 2})
	require.NoError(t, err)
	// 5 items, 2 per page -> page 99 clamps to page 3 with the remaining item
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 1)
}

func TestPatchMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	seedCatalog(t, svc)

	page, err := svc.ListMenuItems(repository.MenuFilter{Search: "Baklava"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	id := page.Items[0].ID

	newPrice := decimal.RequireFromString("7.00")
	updated, err := svc.PatchMenuItem(id, &MenuItemPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Baklava", updated.Title, "untouched fields survive a patch")

	// renaming onto an existing title conflicts
	title := "Pasta"
	_, err = svc.PatchMenuItem(id, &MenuItemPatch{Title: &title})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
