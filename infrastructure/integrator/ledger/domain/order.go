package ledgerdomain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

// statusesNotCounted são pedidos que não contam como realizado
var statusesNotCounted = []OrderStatus{
	OrderStatusCancelled,
	OrderStatusReturned,
}

type Order struct {
	ID            string          `json:"id"`
	OrderBookerID string          `json:"order_booker_id"`
	Date          string          `json:"date"`
	Status        OrderStatus     `json:"status"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	Discount      decimal.Decimal `json:"discount"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

func (o Order) Counts() bool {
	return !slices.Contains(statusesNotCounted, o.Status)
}

// AchievedByOrderBooker soma o valor líquido dos pedidos que contam, por order booker
func AchievedByOrderBooker(orders []Order) map[string]decimal.Decimal {
	achieved := make(map[string]decimal.Decimal)
	for _, order := range orders {
		if order.OrderBookerID == "" || !order.Counts() {
			continue
		}
		achieved[order.OrderBookerID] = achieved[order.OrderBookerID].Add(order.NetAmount)
	}
	return achieved
}

type GetOrdersParams struct {
	Year  int
	Month int
}
