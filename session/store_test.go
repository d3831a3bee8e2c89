package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

func product(id uint, price float64) models.Product {
	return models.Product{ID: id, Name: fmt.Sprintf("Product %d", id), Price: price}
}

func TestAddToCartMergesByProductID(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToCart(product(1, 100), 1)
	s.AddToCart(product(1, 100), 2)
	s.AddToCart(product(1, 100), 3)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, uint(1), cart[0].Product.ID)
	assert.Equal(t, 6, cart[0].Quantity)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToCart(product(1, 100), 2)
	s.AddToCart(product(2, 50), 1)
	s.UpdateQuantity(1, 0)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, uint(2), cart[0].Product.ID)
}

func TestCartTotalsAndCount(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToCart(product(1, 100), 2)
	s.AddToCart(product(2, 49.5), 3)

	assert.InDelta(t, 348.5, s.CartTotal(), 1e-9)
	assert.Equal(t, 5, s.CartCount())
}

func TestAddToWishlistIdempotent(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToWishlist(product(7, 10))
	s.AddToWishlist(product(7, 10))

	require.Len(t, s.Wishlist(), 1)
	assert.True(t, s.IsInWishlist(7))
	assert.False(t, s.IsInWishlist(8))
}

func TestMoveToCart(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToWishlist(product(3, 25))
	require.True(t, s.MoveToCart(3))

	assert.False(t, s.IsInWishlist(3))
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	// Moving an absent product is a no-op.
	assert.False(t, s.MoveToCart(99))
}

func TestMoveToCartMergesExistingEntry(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToCart(product(3, 25), 2)
	s.AddToWishlist(product(3, 25))
	require.True(t, s.MoveToCart(3))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestRecentlyViewedCapAndOrder(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	for i := 1; i <= 11; i++ {
		s.AddToRecentlyViewed(product(uint(i), 1))
	}

	recent := s.RecentlyViewed()
	require.Len(t, recent, 10)
	assert.Equal(t, uint(11), recent[0].ID)
	assert.Equal(t, uint(2), recent[9].ID)
}

func TestRecentlyViewedDeduplicates(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	s.AddToRecentlyViewed(product(1, 1))
	s.AddToRecentlyViewed(product(2, 1))
	s.AddToRecentlyViewed(product(1, 1))

	recent := s.RecentlyViewed()
	require.Len(t, recent, 2)
	assert.Equal(t, uint(1), recent[0].ID)
	assert.Equal(t, uint(2), recent[1].ID)
}

func TestNamespaceSwitchRoundTrips(t *testing.T) {
	storage := NewMemoryStorage()
	s := NewStore(storage)

	s.SetCurrentUserID("alice")
	s.AddToCart(product(1, 100), 2)
	s.AddToWishlist(product(2, 50))
	s.AddToRecentlyViewed(product(3, 25))

	s.SetCurrentUserID("bob")
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Wishlist())
	s.AddToCart(product(9, 5), 1)

	s.SetCurrentUserID("alice")
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, uint(1), cart[0].Product.ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.True(t, s.IsInWishlist(2))
	require.Len(t, s.RecentlyViewed(), 1)
	assert.Equal(t, uint(3), s.RecentlyViewed()[0].ID)
}

func TestGuestNamespaceIsDefault(t *testing.T) {
	storage := NewMemoryStorage()

	s := NewStore(storage)
	s.AddToCart(product(1, 10), 1)

	// A new store over the same storage sees the guest snapshot.
	s2 := NewStore(storage)
	require.Len(t, s2.Cart(), 1)
}

type failingStorage struct{}

func (failingStorage) Load(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStorage) Save(string, []byte) error   { return errors.New("disk on fire") }

func TestStorageFailuresDegradeToEmpty(t *testing.T) {
	s := NewStore(failingStorage{})

	// Mutations must not panic or surface errors.
	s.AddToCart(product(1, 10), 1)
	s.SetCurrentUserID("alice")
	assert.Empty(t, s.Cart())
}

func TestCorruptSnapshotDegradesToEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(namespaceKeyFor("alice"), []byte("{not json")))

	s := NewStore(storage)
	s.SetCurrentUserID("alice")
	assert.Empty(t, s.Cart())
}

func TestEphemeralStateNotPersisted(t *testing.T) {
	storage := NewMemoryStorage()
	s := NewStore(storage)
	s.SetCurrentUserID("alice")
	s.SetSearchQuery("sofa")
	s.SetFilters(Filters{Brands: []string{"Havn"}})
	s.SetSortOrder(SortPriceAsc)
	s.SetViewMode(ViewList)
	s.AddToCart(product(1, 10), 1) // force a snapshot write

	fresh := NewStore(storage)
	fresh.SetCurrentUserID("alice")
	assert.Equal(t, "", fresh.SearchQuery())
	assert.Empty(t, fresh.FiltersState().Brands)
	assert.Equal(t, SortFeatured, fresh.SortState())
	assert.Equal(t, ViewGrid, fresh.ViewModeState())
}

func TestApplyFilters(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	products := []models.Product{
		{ID: 1, Name: "Aurora Sofa", Price: 1299, Material: "Linen", Brand: "Havn", Category: models.Category{Slug: "sofas"}},
		{ID: 2, Name: "Oslo Chair", Price: 449, Material: "Oak", Brand: "Nordlys", Category: models.Category{Slug: "chairs"}},
		{ID: 3, Name: "Budget Sofa", Price: 399, Material: "Polyester", Brand: "Havn", Category: models.Category{Slug: "sofas"}},
	}

	s.SetFilters(Filters{Categories: []string{"sofas"}})
	got := s.ApplyFilters(products)
	require.Len(t, got, 2)

	s.SetFilters(Filters{Categories: []string{"sofas"}, PriceMin: 500})
	got = s.ApplyFilters(products)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	s.SetFilters(Filters{})
	s.SetSearchQuery("sofa")
	s.SetSortOrder(SortPriceAsc)
	got = s.ApplyFilters(products)
	require.Len(t, got, 2)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestManagerReusesStores(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	a := m.For("alice")
	a.AddToCart(product(1, 10), 1)

	assert.Same(t, a, m.For("alice"))
	assert.NotSame(t, a, m.For("bob"))
	assert.Len(t, m.For("alice").Cart(), 1)
}
