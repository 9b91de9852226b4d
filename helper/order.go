package helper

import (
	"fmt"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/model"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionID is an audit token, not a uniqueness guarantee: two
// submissions of the same order at the same table within one second collide.
func SubmissionID(orderNumber, tableNumber string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%d", orderNumber, tableNumber, at.Unix())
}

// ItemsSummary renders the first few line items as "2x Burger, 1x Fries"
// followed by " +N more" when the order is longer.
func ItemsSummary(items []model.OrderItem) string {
	limit := constants.NOTIFICATION_SUMMARY_ITEMS
	parts := make([]string, 0, limit)
	for i, item := range items {
		if i == limit {
			break
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}

	summary := strings.Join(parts, ", ")
	if len(items) > limit {
		summary += fmt.Sprintf(" +%d more", len(items)-limit)
	}
	return summary
}

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}

func OrderResult(order *model.TableOrder) model.PlaceOrderResult {
	return model.PlaceOrderResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		ItemsCount:  len(order.OrderItems),
		TotalAmount: FormatAmount(order.TotalAmount),
		CreatedAt:   FormatTimestamp(order.CreatedAt),
	}
}

// TrimOrderInput trims every string of a placement request before it is
// validated, turning blank notes into no notes.
func TrimOrderInput(input *model.PlaceOrderInput) {
	input.TableNumber = strings.TrimSpace(input.TableNumber)
	input.OrderNumber = strings.TrimSpace(input.OrderNumber)
	input.Notes = trimOptional(input.Notes)
	for i := range input.Items {
		input.Items[i].Name = strings.TrimSpace(input.Items[i].Name)
		input.Items[i].Notes = trimOptional(input.Items[i].Notes)
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
