// Package orderrepo persists the order aggregate in the orders and order_lines
// tables and maps rows back into domain objects.
package orderrepo

import (
	"errors"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table plus its lines.
type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status         string         `gorm:"type:varchar(16);not null"`
	Amounts        AmountsDTO     `gorm:"embedded"`
	Address        AddressDTO     `gorm:"embedded;embeddedPrefix:address_"`
	Payment        PaymentDTO     `gorm:"embedded;embeddedPrefix:payment_"`
	Shipping       ShippingDTO    `gorm:"embedded;embeddedPrefix:shipping_"`
	IdempotencyKey *string        `gorm:"type:varchar(255)"`
	CreatedAt      time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime:false"`
	Version        int64          `gorm:"not null;default:0"`
	Lines          []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AmountsDTO struct {
	ItemsTotal    decimal.Decimal `gorm:"type:numeric(14,2)"`
	ShippingFee   decimal.Decimal `gorm:"type:numeric(14,2)"`
	DiscountTotal decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxTotal      decimal.Decimal `gorm:"type:numeric(14,2)"`
	GrandTotal    decimal.Decimal `gorm:"type:numeric(14,2)"`
}

type AddressDTO struct {
	Title    string
	Street   string
	City     string
	District string
	Zip      string
}

type PaymentDTO struct {
	Method        string
	Status        string
	TransactionID string
	Provider      string
}

type ShippingDTO struct {
	Carrier        string
	TrackingNumber string
	Status         string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// OrderLineDTO is one row of order_lines. Position keeps cart order.
type OrderLineDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   string          `gorm:"type:varchar(64);not null"`
	ProductCode string          `gorm:"type:varchar(64)"`
	Name        string          `gorm:"type:varchar(255)"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity    int             `gorm:"not null"`
	ImageURL    string
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, l := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     orderID,
			Position:    i,
			ProductID:   l.ProductID(),
			ProductCode: l.ProductCode(),
			Name:        l.Name(),
			UnitPrice:   l.UnitPrice().Decimal(),
			Quantity:    l.Quantity(),
			ImageURL:    l.ImageURL(),
		})
	}

	var key *string
	if k := aggregate.IdempotencyKey(); k != "" {
		key = &k
	}

	amounts := aggregate.Amounts()
	address := aggregate.Address()
	payment := aggregate.Payment()
	shipping := aggregate.Shipping()

	return OrderDTO{
		ID:      orderID,
		OwnerID: aggregate.OwnerID().Bytes(),
		Status:  aggregate.Status().String(),
		Amounts: AmountsDTO{
			ItemsTotal:    amounts.ItemsTotal().Decimal(),
			ShippingFee:   amounts.ShippingFee().Decimal(),
			DiscountTotal: amounts.DiscountTotal().Decimal(),
			TaxTotal:      amounts.TaxTotal().Decimal(),
			GrandTotal:    amounts.GrandTotal().Decimal(),
		},
		Address: AddressDTO{
			Title:    address.Title(),
			Street:   address.Street(),
			City:     address.City(),
			District: address.District(),
			Zip:      address.Zip(),
		},
		Payment: PaymentDTO{
			Method:        payment.Method(),
			Status:        payment.Status().String(),
			TransactionID: payment.TransactionID(),
			Provider:      payment.Provider(),
		},
		Shipping: ShippingDTO{
			Carrier:        shipping.Carrier(),
			TrackingNumber: shipping.TrackingNumber(),
			Status:         shipping.Status().String(),
			ShippedAt:      shipping.ShippedAt(),
			DeliveredAt:    shipping.DeliveredAt(),
		},
		IdempotencyKey: key,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
		Lines:          lines,
	}
}

// mutableColumns are the columns Update may change. Lines, amounts and
// address are immutable after creation.
func mutableColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":                   dto.Status,
		"payment_method":           dto.Payment.Method,
		"payment_status":           dto.Payment.Status,
		"payment_transaction_id":   dto.Payment.TransactionID,
		"payment_provider":         dto.Payment.Provider,
		"shipping_carrier":         dto.Shipping.Carrier,
		"shipping_tracking_number": dto.Shipping.TrackingNumber,
		"shipping_status":          dto.Shipping.Status,
		"shipping_shipped_at":      dto.Shipping.ShippedAt,
		"shipping_delivered_at":    dto.Shipping.DeliveredAt,
		"updated_at":               dto.UpdatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLine(l.ProductID, l.ProductCode, l.Name, price, l.Quantity, l.ImageURL)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	amounts, err := amountsToDomain(dto.Amounts)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddressSnapshot(
		dto.Address.Title, dto.Address.Street, dto.Address.City, dto.Address.District, dto.Address.Zip,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.Payment.Status)
	if err != nil {
		return nil, err
	}
	shippingStatus, err := order.ShippingStatusFromString(dto.Shipping.Status)
	if err != nil {
		return nil, err
	}

	var key string
	if dto.IdempotencyKey != nil {
		key = *dto.IdempotencyKey
	}

	return order.RestoreOrder(order.State{
		ID:      id,
		OwnerID: ownerID,
		Lines:   lines,
		Amounts: amounts,
		Address: address,
		Payment: order.RestorePayment(
			dto.Payment.Method, paymentStatus, dto.Payment.TransactionID, dto.Payment.Provider,
		),
		Shipping: order.RestoreShipping(
			dto.Shipping.Carrier, dto.Shipping.TrackingNumber, shippingStatus,
			utcPtr(dto.Shipping.ShippedAt), utcPtr(dto.Shipping.DeliveredAt),
		),
		Status:         status,
		IdempotencyKey: key,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
		Version:        dto.Version,
	})
}

func amountsToDomain(dto AmountsDTO) (order.Amounts, error) {
	items, itemsErr := kernel.NewMoney(dto.ItemsTotal)
	fee, feeErr := kernel.NewMoney(dto.ShippingFee)
	discount, discountErr := kernel.NewMoney(dto.DiscountTotal)
	tax, taxErr := kernel.NewMoney(dto.TaxTotal)
	grand, grandErr := kernel.NewMoney(dto.GrandTotal)
	if err := errors.Join(itemsErr, feeErr, discountErr, taxErr, grandErr); err != nil {
		return order.Amounts{}, err
	}
	return order.RestoreAmounts(items, fee, discount, tax, grand)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
