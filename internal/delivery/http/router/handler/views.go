package handler

import (
	"time"

	"localfarm/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Response views decouple the JSON wire shape from the domain entities. The
// user view in particular exists so the password hash can never leak.

type productView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Image     *string         `json:"image"`
	Approved  bool            `json:"approved"`
	CreatedAt time.Time       `json:"created_at"`
}

func toProductView(product *entity.Product) *productView {
	return &productView{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		Image:     product.Image,
		Approved:  product.Approved,
		CreatedAt: product.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type userView struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name,omitempty"`
	Business  *string     `json:"business,omitempty"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID,
		Name:      user.Name,
		Business:  user.Business,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

type farmerApplicationView struct {
	ID           int64     `json:"id"`
	BusinessName string    `json:"business_name"`
	OwnerName    string    `json:"owner_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	City         string    `json:"city"`
	Products     string    `json:"products"`
	BankDetails  *string   `json:"bank_details"`
	Website      *string   `json:"website"`
	Photo        *string   `json:"photo"`
	CreatedAt    time.Time `json:"created_at"`
}

func toFarmerApplicationView(application *entity.FarmerApplication) *farmerApplicationView {
	return &farmerApplicationView{
		ID:           application.ID,
		BusinessName: application.BusinessName,
		OwnerName:    application.OwnerName,
		Email:        application.Email,
		Phone:        application.Phone,
		City:         application.City,
		Products:     application.Products,
		BankDetails:  application.BankDetails,
		Website:      application.Website,
		Photo:        application.Photo,
		CreatedAt:    application.CreatedAt,
	}
}

func toFarmerApplicationViews(applications []*entity.FarmerApplication) []*farmerApplicationView {
	views := make([]*farmerApplicationView, 0, len(applications))
	for _, application := range applications {
		views = append(views, toFarmerApplicationView(application))
	}

	return views
}

type testimonialView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Quote  string `json:"quote"`
	Avatar string `json:"avatar"`
}

func toTestimonialView(testimonial *entity.Testimonial) *testimonialView {
	return &testimonialView{
		ID:     testimonial.ID,
		Name:   testimonial.Name,
		Quote:  testimonial.Quote,
		Avatar: testimonial.Avatar,
	}
}

func toTestimonialViews(testimonials []*entity.Testimonial) []*testimonialView {
	views := make([]*testimonialView, 0, len(testimonials))
	for _, testimonial := range testimonials {
		views = append(views, toTestimonialView(testimonial))
	}

	return views
}

type orderItemView struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type orderView struct {
	ID             int64                 `json:"id"`
	CustomerName   string                `json:"customer_name"`
	Email          string                `json:"email"`
	Phone          *string               `json:"phone"`
	Address        *string               `json:"address"`
	DeliveryMethod entity.DeliveryMethod `json:"delivery_method"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DeliveryFee    decimal.Decimal       `json:"delivery_fee"`
	Total          decimal.Decimal       `json:"total"`
	Status         entity.OrderStatus    `json:"status"`
	Items          []*orderItemView      `json:"items"`
	CreatedAt      time.Time             `json:"created_at"`
}

func toOrderView(order *entity.Order) *orderView {
	items := make([]*orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &orderItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &orderView{
		ID:             order.ID,
		CustomerName:   order.CustomerName,
		Email:          order.Email,
		Phone:          order.Phone,
		Address:        order.Address,
		DeliveryMethod: order.DeliveryMethod,
		Subtotal:       order.Subtotal,
		DeliveryFee:    order.DeliveryFee,
		Total:          order.Total,
		Status:         order.Status,
		Items:          items,
		CreatedAt:      order.CreatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}
