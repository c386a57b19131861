package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ItemKindService = "service"
	ItemKindProduct = "product"
)

type Cart struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Items []CartItem `gorm:"foreignKey:CartID"`

	gorm.Model
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}

// A cart item references either a service or a product, never both.
type CartItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Kind      string     `gorm:"type:varchar(10);not null"` // service | product
	ServiceID *uuid.UUID `gorm:"type:uuid"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	Qty       int        `gorm:"default:1"`
	Price     float64    `gorm:"type:decimal(10,2);not null"`

	gorm.Model
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	i.ID = uuid.New()
	return
}

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	SalonID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Total      float64   `gorm:"type:decimal(10,2);not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	gorm.Model
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	o.ID = uuid.New()
	return
}

// An order item of kind 'service' is payable but unscheduled until a
// Booking row links it to an appointment.
type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	Kind      string     `gorm:"type:varchar(10);not null"`
	ServiceID *uuid.UUID `gorm:"type:uuid"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	Qty       int        `gorm:"default:1"`
	UnitPrice float64    `gorm:"type:decimal(10,2);not null"`
	LineTotal float64    `gorm:"type:decimal(10,2);not null"`

	Order *Order `gorm:"foreignKey:OrderID"`

	gorm.Model
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	i.ID = uuid.New()
	return
}

// Booking is the 1:1 link between an order item and an appointment.
// It exists only once both sides exist; deleting either side cascades.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderItemID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	OrderItem   *OrderItem   `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
