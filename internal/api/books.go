package api

import (
	"context"
	"net/http"
	"net/url"

	"bookstorefront/pkg/domain"
)

func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var out []domain.Book
	if err := c.doJSON(ctx, http.MethodGet, "/user/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBook(ctx context.Context, id string) (domain.Book, error) {
	var out domain.Book
	if err := c.doJSON(ctx, http.MethodGet, "/user/books/"+id, nil, &out); err != nil {
		return domain.Book{}, err
	}
	return out, nil
}

func (c *Client) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	var out []domain.Book
	path := "/user/books/search?q=" + url.QueryEscape(query)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BooksByCategory(ctx context.Context, categoryID string) ([]domain.Book, error) {
	var out []domain.Book
	if err := c.doJSON(ctx, http.MethodGet, "/user/books/category/"+categoryID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
