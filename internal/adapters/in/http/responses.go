package http

import (
	"encoding/json"
	"time"

	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
)

type OrderLineResponse struct {
	ProductID  string      `json:"productId"`
	MaterialNo string      `json:"materialNo,omitempty"`
	Name       string      `json:"name"`
	Price      json.Number `json:"price"`
	Qty        int         `json:"qty"`
	Image      string      `json:"image,omitempty"`
}

type AmountsResponse struct {
	ItemsTotal    json.Number `json:"itemsTotal"`
	ShippingFee   json.Number `json:"shippingFee"`
	DiscountTotal json.Number `json:"discountTotal"`
	TaxTotal      json.Number `json:"taxTotal"`
	GrandTotal    json.Number `json:"grandTotal"`
}

type AddressResponse struct {
	Title    string `json:"title"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Zip      string `json:"zip"`
}

type PaymentResponse struct {
	Method   string `json:"method"`
	Status   string `json:"status"`
	TxnID    string `json:"txnId,omitempty"`
	Provider string `json:"provider"`
}

type ShippingResponse struct {
	Carrier     string     `json:"carrier"`
	TrackingNo  string     `json:"trackingNo,omitempty"`
	Status      string     `json:"status"`
	ShippedAt   *time.Time `json:"shippedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	Items           []OrderLineResponse `json:"items"`
	Amounts         AmountsResponse     `json:"amounts"`
	AddressSnapshot AddressResponse     `json:"addressSnapshot"`
	Payment         PaymentResponse     `json:"payment"`
	Shipping        ShippingResponse    `json:"shipping"`
	Status          string              `json:"status"`
	IdempotencyKey  string              `json:"idempotencyKey,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type ShippingInfoResponse struct {
	ID       string           `json:"id"`
	Status   string           `json:"status"`
	Shipping ShippingResponse `json:"shipping"`
}

// money renders amounts as JSON numbers with two fraction digits.
func money(m kernel.Money) json.Number {
	return json.Number(m.String())
}

func toOrderResponse(o *order.Order) OrderResponse {
	lines := o.Lines()
	items := make([]OrderLineResponse, len(lines))
	for i, l := range lines {
		items[i] = OrderLineResponse{
			ProductID:  l.ProductID(),
			MaterialNo: l.ProductCode(),
			Name:       l.Name(),
			Price:      money(l.UnitPrice()),
			Qty:        l.Quantity(),
			Image:      l.ImageURL(),
		}
	}

	amounts := o.Amounts()
	address := o.Address()
	payment := o.Payment()
	shipping := o.Shipping()

	return OrderResponse{
		ID:     o.ID().String(),
		UserID: o.OwnerID().String(),
		Items:  items,
		Amounts: AmountsResponse{
			ItemsTotal:    money(amounts.ItemsTotal()),
			ShippingFee:   money(amounts.ShippingFee()),
			DiscountTotal: money(amounts.DiscountTotal()),
			TaxTotal:      money(amounts.TaxTotal()),
			GrandTotal:    money(amounts.GrandTotal()),
		},
		AddressSnapshot: AddressResponse{
			Title:    address.Title(),
			Address:  address.Street(),
			City:     address.City(),
			District: address.District(),
			Zip:      address.Zip(),
		},
		Payment: PaymentResponse{
			Method:   payment.Method(),
			Status:   payment.Status().String(),
			TxnID:    payment.TransactionID(),
			Provider: payment.Provider(),
		},
		Shipping: ShippingResponse{
			Carrier:     shipping.Carrier(),
			TrackingNo:  shipping.TrackingNumber(),
			Status:      shipping.Status().String(),
			ShippedAt:   shipping.ShippedAt(),
			DeliveredAt: shipping.DeliveredAt(),
		},
		Status:         o.Status().String(),
		IdempotencyKey: o.IdempotencyKey(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func toShippingInfoResponse(s *queries.GetShippingQueryResponse) ShippingInfoResponse {
	return ShippingInfoResponse{
		ID:     s.OrderID.String(),
		Status: s.Status.String(),
		Shipping: ShippingResponse{
			Carrier:     s.Carrier,
			TrackingNo:  s.TrackingNumber,
			Status:      s.ShippingStatus.String(),
			ShippedAt:   s.ShippedAt,
			DeliveredAt: s.DeliveredAt,
		},
	}
}
