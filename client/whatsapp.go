package client

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// DefaultStoreNumber is the store's WhatsApp number orders are handed off to.
const DefaultStoreNumber = "919123536601"

// CustomerInfo is attached to an order message. Empty fields are omitted
// from the rendered message, never replaced with placeholders.
type CustomerInfo struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ComposeOrderMessage renders the cart and customer info into the order
// message handed to WhatsApp. Output is deterministic for identical input.
func ComposeOrderMessage(lines []Line, info CustomerInfo) string {
	var b strings.Builder
	b.WriteString("*🛒 KBS Store Order*\n\n")

	if info.Name != "" {
		fmt.Fprintf(&b, "*Customer:* %s\n", info.Name)
	}
	if info.Phone != "" {
		fmt.Fprintf(&b, "*Phone:* %s\n", info.Phone)
	}
	if info.Address != "" {
		fmt.Fprintf(&b, "*Address:* %s\n", info.Address)
	}

	details := make([]string, 0, len(lines))
	var total float64
	for _, line := range lines {
		subtotal := line.Price * float64(line.Quantity)
		total += subtotal
		details = append(details, fmt.Sprintf("%s x%d - ₹%s", line.Name, line.Quantity, formatAmount(subtotal)))
	}

	fmt.Fprintf(&b, "\n*📦 Order Details:*\n%s\n\n", strings.Join(details, "\n"))
	fmt.Fprintf(&b, "*💰 Total Amount: ₹%s*\n\n", formatAmount(total))
	b.WriteString("Please confirm your order and provide delivery details if needed.")

	return b.String()
}

// ComposePinMessage renders the admin PIN notification.
func ComposePinMessage(pin string) string {
	return fmt.Sprintf("*🔐 KBS Store Admin PIN*\n\n"+
		"Your verification PIN is: *%s*\n\n"+
		"This PIN will expire in 5 minutes.\n\n"+
		"Do not share this PIN with anyone.", pin)
}

// MessageURL builds the wa.me deep link that opens a chat with the given
// number and the message prefilled. Opening the link is the caller's job.
func MessageURL(number, message string) string {
	query := url.Values{"text": {message}}
	return fmt.Sprintf("https://wa.me/%s?%s", number, query.Encode())
}

// OrderURL composes the order message and wraps it in a deep link to the
// store's number.
func OrderURL(lines []Line, info CustomerInfo, storeNumber string) string {
	if storeNumber == "" {
		storeNumber = DefaultStoreNumber
	}
	return MessageURL(storeNumber, ComposeOrderMessage(lines, info))
}

// formatAmount renders a rupee amount with thousands grouping, dropping the
// decimal part for whole amounts.
func formatAmount(v float64) string {
	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100

	s := groupThousands(whole)
	if frac != 0 {
		s = fmt.Sprintf("%s.%02d", s, frac)
	}
	return s
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
