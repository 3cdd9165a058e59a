package repository

import (
	"fmt"
	"time"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// storedTimeLayout is RFC3339 with fixed-width nanoseconds so stored dates
// sort lexically.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(storedTimeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// checkPayment rejects a decoded sale whose payment amounts no longer add up.
func checkPayment(s entities.Sale) error {
	if s.Payment != nil && !s.Payment.Balanced() {
		return fmt.Errorf("sale %s: %w", s.ID, interfaces.ErrUnbalancedPayment)
	}
	return nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
