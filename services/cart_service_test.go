package services

import (
	"testing"

	"bookstore/models"
	"bookstore/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookRepo struct {
	books  map[int]*models.Book
	nextID int
}

func newStubBookRepo(books ...models.Book) *stubBookRepo {
	r := &stubBookRepo{books: map[int]*models.Book{}, nextID: 1}
	for i := range books {
		b := books[i]
		r.Create(&b)
	}
	return r
}

func (r *stubBookRepo) Create(book *models.Book) error {
	book.ID = r.nextID
	r.nextID++
	copied := *book
	r.books[book.ID] = &copied
	return nil
}

func (r *stubBookRepo) FindAll() ([]models.Book, error) {
	books := []models.Book{}
	for id := 1; id < r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (r *stubBookRepo) FindByID(id int) (*models.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *stubBookRepo) Search(query string) ([]models.Book, error) {
	books := []models.Book{}
	for id := 1; id < r.nextID; id++ {
		b, ok := r.books[id]
		if !ok {
			continue
		}
		if containsFold(b.Title, query) || containsFold(b.Author, query) {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (r *stubBookRepo) UpdateTitleAndPrice(id int, title string, price int) error {
	b, ok := r.books[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.Title = title
	b.Price = price
	return nil
}

func (r *stubBookRepo) UpdateImageURL(id int, imageURL string) error {
	b, ok := r.books[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.ImageURL = imageURL
	return nil
}

func (r *stubBookRepo) Delete(id int) error {
	if _, ok := r.books[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

type stubCartRepo struct {
	books  *stubBookRepo
	items  map[int]*models.CartItem
	nextID int
}

func newStubCartRepo(books *stubBookRepo) *stubCartRepo {
	return &stubCartRepo{books: books, items: map[int]*models.CartItem{}, nextID: 1}
}

func (r *stubCartRepo) FindByUser(userID int) ([]models.CartEntry, error) {
	entries := []models.CartEntry{}
	for id := 1; id < r.nextID; id++ {
		item, ok := r.items[id]
		if !ok || item.UserID != userID {
			continue
		}
		book := r.books.books[item.BookID]
		entries = append(entries, models.CartEntry{
			ID:        item.ID,
			BookID:    item.BookID,
			Title:     book.Title,
			Author:    book.Author,
			ISBN:      book.ISBN,
			Price:     book.Price,
			Quantity:  item.Quantity,
			Available: book.Quantity,
			ImageURL:  book.ImageURL,
		})
	}
	return entries, nil
}

func (r *stubCartRepo) FindByUserAndBook(userID, bookID int) (*models.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.BookID == bookID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubCartRepo) Insert(item *models.CartItem) error {
	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.BookID == item.BookID {
			return repositories.ErrDuplicate
		}
	}
	item.ID = r.nextID
	r.nextID++
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *stubCartRepo) UpdateQuantity(userID, itemID, quantity int) error {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return repositories.ErrNotFound
	}
	item.Quantity = quantity
	return nil
}

func (r *stubCartRepo) Delete(userID, itemID int) error {
	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.items, itemID)
	return nil
}

func newCartFixture(books ...models.Book) (CartService, *stubCartRepo, *stubBookRepo) {
	bookRepo := newStubBookRepo(books...)
	cartRepo := newStubCartRepo(bookRepo)
	return NewCartService(cartRepo, bookRepo), cartRepo, bookRepo
}

func TestAddToCartUnknownBook(t *testing.T) {
	svc, cartRepo, _ := newCartFixture()

	item, err := svc.Add(1, 99, 1)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Nil(t, item)
	assert.Empty(t, cartRepo.items)
}

func TestAddToCartQuantityExceedsStock(t *testing.T) {
	svc, cartRepo, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", Quantity: 3})

	item, err := svc.Add(1, 1, 4)
	assert.ErrorIs(t, err, ErrQuantityExceedsStock)
	assert.Nil(t, item)
	assert.Empty(t, cartRepo.items)
}

func TestAddToCartDuplicateBook(t *testing.T) {
	svc, cartRepo, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", Quantity: 5})

	_, err := svc.Add(1, 1, 2)
	require.NoError(t, err)

	item, err := svc.Add(1, 1, 1)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
	assert.Nil(t, item)
	assert.Len(t, cartRepo.items, 1)
}

func TestAddToCartSameBookDifferentUsers(t *testing.T) {
	svc, cartRepo, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", Quantity: 5})

	_, err := svc.Add(1, 1, 2)
	require.NoError(t, err)
	_, err = svc.Add(2, 1, 2)
	require.NoError(t, err)
	assert.Len(t, cartRepo.items, 2)
}

func TestUpdateQuantitySkipsStockCheck(t *testing.T) {
	svc, _, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", Quantity: 5})

	item, err := svc.Add(1, 1, 2)
	require.NoError(t, err)

	// The update path deliberately trusts the caller on quantity.
	err = svc.UpdateQuantity(1, item.ID, 10)
	assert.NoError(t, err)
}

func TestUpdateQuantityMissingItem(t *testing.T) {
	svc, _, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", Quantity: 5})

	err := svc.UpdateQuantity(1, 42, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestUpdateQuantityOtherUsersItem(t *testing.T) {
	svc, _, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", Quantity: 5})

	item, err := svc.Add(1, 1, 2)
	require.NoError(t, err)

	err = svc.UpdateQuantity(2, item.ID, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveMissingItem(t *testing.T) {
	svc, _, _ := newCartFixture()

	err := svc.Remove(1, 42)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestEntriesJoinsCatalog(t *testing.T) {
	svc, _, _ := newCartFixture(models.Book{Title: "Dune", Author: "Herbert", ISBN: "9780441172719", Price: 12, Quantity: 5})

	item, err := svc.Add(1, 1, 2)
	require.NoError(t, err)

	entries, err := svc.Entries(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, item.ID, entries[0].ID)
	assert.Equal(t, "Dune", entries[0].Title)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, 5, entries[0].Available)
}

func TestEntriesEmptyCart(t *testing.T) {
	svc, _, _ := newCartFixture()

	entries, err := svc.Entries(1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
