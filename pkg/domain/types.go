package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Book is a sellable catalog entry. InventoryID identifies the stock unit
// (book + store) and is the key cart and wishlist operations use; BookID
// identifies the title itself.
type Book struct {
	InventoryID   string  `json:"inventory_id"`
	BookID        string  `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         float64 `json:"price"`
	CategoryID    string  `json:"category_id,omitempty"`
	CoverImageURL string  `json:"cover_image_url,omitempty"`
	Stock         int     `json:"stock,omitempty"`
}

// CartItem records the unit price at the moment of addition; subtotals are
// always computed from that price, never from the current catalog price.
type CartItem struct {
	CartItemID      string  `json:"cart_item_id"`
	InventoryID     string  `json:"inventory_id"`
	Title           string  `json:"title"`
	PriceAtAddition float64 `json:"price_at_addition"`
	Quantity        int     `json:"quantity"`
}

// Subtotal is price-at-addition times quantity.
func (i CartItem) Subtotal() float64 {
	return i.PriceAtAddition * float64(i.Quantity)
}

type Address struct {
	AddressID   string `json:"address_id"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

type Order struct {
	OrderID     string      `json:"order_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at,omitempty"`
}

type OrderItem struct {
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type WishlistItem struct {
	InventoryID string  `json:"inventory_id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Review struct {
	ReviewID string `json:"review_id"`
	BookID   string `json:"book_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type PaymentStatus struct {
	OrderID string `json:"order_id"`
	Method  string `json:"method"`
	Status  string `json:"status"`
}
