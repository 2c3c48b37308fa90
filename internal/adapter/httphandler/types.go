package httphandler

import (
	"time"

	"github.com/shopmart/storefront/internal/core/domain"
)

type (
	Product struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Price         float64  `json:"price"`
		OriginalPrice float64  `json:"original_price"`
		Discount      int      `json:"discount"`
		Rating        float64  `json:"rating"`
		ReviewCount   int      `json:"review_count"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		Images        []string `json:"images"`
		InStock       bool     `json:"in_stock"`
		Featured      bool     `json:"featured"`
	}

	Category struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		Image        string `json:"image"`
		ProductCount int    `json:"product_count"`
	}

	CartLine struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	// CartView is the price-details block the storefront renders.
	CartView struct {
		Lines      []CartLine `json:"lines"`
		TotalItems int        `json:"total_items"`
		Subtotal   float64    `json:"subtotal"`
		Savings    float64    `json:"savings"`
		Shipping   float64    `json:"shipping"`
		Total      float64    `json:"total"`
	}

	WishlistView struct {
		Items []Product `json:"items"`
		Count int       `json:"count"`
	}

	SessionView struct {
		Authenticated bool   `json:"authenticated"`
		Name          string `json:"name,omitempty"`
		Email         string `json:"email,omitempty"`
	}

	Order struct {
		ID       string     `json:"id"`
		PlacedAt time.Time  `json:"placed_at"`
		Lines    []CartLine `json:"lines"`
		Subtotal float64    `json:"subtotal"`
		Savings  float64    `json:"savings"`
		Shipping float64    `json:"shipping"`
		Total    float64    `json:"total"`
	}

	EventsSummary struct {
		Counts          map[string]int `json:"counts"`
		OrdersPlaced    int            `json:"orders_placed"`
		GrossOrderValue float64        `json:"gross_order_value"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		Title:         p.Title,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Description:   p.Description,
		Category:      p.Category,
		Images:        p.Images,
		InStock:       p.InStock,
		Featured:      p.Featured,
	}
}

func toProducts(ps []domain.Product) []Product {
	res := make([]Product, 0, len(ps))
	for _, p := range ps {
		res = append(res, toProduct(p))
	}
	return res
}

func toCategories(cs []domain.Category) []Category {
	res := make([]Category, 0, len(cs))
	for _, c := range cs {
		res = append(res, Category{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Image:        c.Image,
			ProductCount: c.ProductCount,
		})
	}
	return res
}

func toCartLines(ls []domain.CartLine) []CartLine {
	res := make([]CartLine, 0, len(ls))
	for _, l := range ls {
		res = append(res, CartLine{
			Product:  toProduct(l.Product),
			Quantity: l.Quantity,
		})
	}
	return res
}

func toOrder(o domain.Order) Order {
	return Order{
		ID:       o.ID,
		PlacedAt: o.PlacedAt,
		Lines:    toCartLines(o.Lines),
		Subtotal: o.Subtotal,
		Savings:  o.Savings,
		Shipping: o.Shipping,
		Total:    o.Total,
	}
}
