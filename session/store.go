// Package session holds the per-identity shopping state: cart, wishlist and
// recently viewed items survive in durable storage under a namespace key per
// signed-in identity; search/filter/sort state is ephemeral.
package session

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

const (
	keyPrefix         = "furniture-store"
	guestNamespace    = "guest"
	snapshotVersion   = 1
	recentlyViewedCap = 10
)

type CartItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type WishlistItem struct {
	Product models.Product `json:"product"`
	AddedAt time.Time      `json:"added_at"`
}

// Filters narrows the catalog view. Zero PriceMax means unbounded.
type Filters struct {
	Categories []string `json:"categories"`
	PriceMin   float64  `json:"price_min"`
	PriceMax   float64  `json:"price_max"`
	Materials  []string `json:"materials"`
	Colors     []string `json:"colors"`
	Brands     []string `json:"brands"`
}

type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortNewest    SortOrder = "newest"
	SortRating    SortOrder = "rating"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// State is the durable part of a namespace.
type State struct {
	Cart           []CartItem       `json:"cart"`
	Wishlist       []WishlistItem   `json:"wishlist"`
	RecentlyViewed []models.Product `json:"recentlyViewed"`
}

type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// Store is the session-scoped source of truth for one client's shopping
// state. It is constructed per identity and handed to consumers; switching
// the identity flushes the outgoing namespace and loads the incoming one.
type Store struct {
	mu      sync.Mutex
	storage Storage
	userID  string // empty means guest

	state State

	// Ephemeral view state, reset on reload, never persisted.
	searchQuery string
	filters     Filters
	sortOrder   SortOrder
	viewMode    ViewMode
}

func NewStore(storage Storage) *Store {
	s := &Store{
		storage:   storage,
		sortOrder: SortFeatured,
		viewMode:  ViewGrid,
	}
	s.state = s.load(s.namespaceKey())
	return s
}

func namespaceKeyFor(userID string) string {
	if userID == "" {
		return keyPrefix + "-" + guestNamespace
	}
	return keyPrefix + "-" + userID
}

func (s *Store) namespaceKey() string {
	return namespaceKeyFor(s.userID)
}

// CurrentUserID returns the identity owning the active namespace.
func (s *Store) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// SetCurrentUserID switches namespaces. The outgoing state is flushed to
// durable storage, the incoming snapshot replaces in-memory state. Storage
// failures are logged and degrade to empty collections, never to an error.
func (s *Store) SetCurrentUserID(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if userID == s.userID {
		return
	}
	s.persistLocked()
	s.userID = userID
	s.state = s.load(s.namespaceKey())
}

func (s *Store) load(key string) State {
	payload, err := s.storage.Load(key)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("❌ session: failed to load snapshot %s: %v", key, err)
		}
		return State{}
	}
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		log.Printf("❌ session: corrupt snapshot %s, starting empty: %v", key, err)
		return State{}
	}
	return env.State
}

func (s *Store) persistLocked() {
	payload, err := json.Marshal(envelope{State: s.state, Version: snapshotVersion})
	if err != nil {
		log.Printf("❌ session: failed to encode snapshot: %v", err)
		return
	}
	if err := s.storage.Save(s.namespaceKey(), payload); err != nil {
		log.Printf("❌ session: failed to save snapshot %s: %v", s.namespaceKey(), err)
	}
}

// ---------------- Cart ----------------

// AddToCart merges by product id: an existing entry gets its quantity bumped,
// otherwise a new entry is appended.
func (s *Store) AddToCart(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == product.ID {
			s.state.Cart[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}
	s.state.Cart = append(s.state.Cart, CartItem{Product: product, Quantity: quantity})
	s.persistLocked()
}

func (s *Store) RemoveFromCart(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID)
	s.persistLocked()
}

func (s *Store) removeFromCartLocked(productID uint) {
	kept := s.state.Cart[:0]
	for _, item := range s.state.Cart {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.state.Cart = kept
}

// UpdateQuantity sets the quantity for a cart entry; zero or below removes it.
func (s *Store) UpdateQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		s.persistLocked()
		return
	}
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == productID {
			s.state.Cart[i].Quantity = quantity
			break
		}
	}
	s.persistLocked()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Cart = nil
	s.persistLocked()
}

func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.state.Cart))
	copy(out, s.state.Cart)
	return out
}

// CartTotal is the sum of price×quantity over all entries.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.state.Cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// CartCount is the sum of quantities.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.state.Cart {
		count += item.Quantity
	}
	return count
}

// ---------------- Wishlist ----------------

// AddToWishlist is idempotent; a product already present keeps its original
// added-at timestamp.
func (s *Store) AddToWishlist(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Wishlist {
		if item.Product.ID == product.ID {
			return
		}
	}
	s.state.Wishlist = append(s.state.Wishlist, WishlistItem{Product: product, AddedAt: time.Now()})
	s.persistLocked()
}

func (s *Store) RemoveFromWishlist(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromWishlistLocked(productID)
	s.persistLocked()
}

func (s *Store) removeFromWishlistLocked(productID uint) {
	kept := s.state.Wishlist[:0]
	for _, item := range s.state.Wishlist {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.state.Wishlist = kept
}

func (s *Store) IsInWishlist(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Wishlist {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Wishlist() []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]WishlistItem, len(s.state.Wishlist))
	copy(out, s.state.Wishlist)
	return out
}

// MoveToCart adds the wishlist entry to the cart, then drops it from the
// wishlist. Two persistence writes; there is no concurrent writer per
// namespace so the intermediate snapshot is acceptable.
func (s *Store) MoveToCart(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var product *models.Product
	for i := range s.state.Wishlist {
		if s.state.Wishlist[i].Product.ID == productID {
			product = &s.state.Wishlist[i].Product
			break
		}
	}
	if product == nil {
		return false
	}

	merged := false
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == productID {
			s.state.Cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.state.Cart = append(s.state.Cart, CartItem{Product: *product, Quantity: 1})
	}
	s.persistLocked()

	s.removeFromWishlistLocked(productID)
	s.persistLocked()
	return true
}

// ---------------- Recently viewed ----------------

// AddToRecentlyViewed prepends, de-duplicates by id and keeps the 10 most
// recent entries.
func (s *Store) AddToRecentlyViewed(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]models.Product, 0, len(s.state.RecentlyViewed)+1)
	kept = append(kept, product)
	for _, p := range s.state.RecentlyViewed {
		if p.ID != product.ID {
			kept = append(kept, p)
		}
	}
	if len(kept) > recentlyViewedCap {
		kept = kept[:recentlyViewedCap]
	}
	s.state.RecentlyViewed = kept
	s.persistLocked()
}

func (s *Store) RecentlyViewed() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.state.RecentlyViewed))
	copy(out, s.state.RecentlyViewed)
	return out
}

// ---------------- Ephemeral view state ----------------

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *Store) FiltersState() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Store) SetSortOrder(o SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOrder = o
}

func (s *Store) SortState() SortOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortOrder
}

func (s *Store) SetViewMode(m ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = m
}

func (s *Store) ViewModeState() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMode
}

// ApplyFilters narrows and orders a product list with the store's current
// facets, matching the storefront's client-side catalog view.
func (s *Store) ApplyFilters(products []models.Product) []models.Product {
	s.mu.Lock()
	f := s.filters
	query := s.searchQuery
	order := s.sortOrder
	s.mu.Unlock()

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesFilters(p, f, query) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, order)
	return out
}

func matchesFilters(p models.Product, f Filters, query string) bool {
	if query != "" && !containsFold(p.Name, query) && !containsFold(p.Description, query) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category.Slug) {
		return false
	}
	if p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if len(f.Materials) > 0 && !containsString(f.Materials, p.Material) {
		return false
	}
	if len(f.Colors) > 0 && !containsString(f.Colors, p.Color) {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
		return false
	}
	return true
}

func sortProducts(products []models.Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
