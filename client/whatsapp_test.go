package client

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderLines() []Line {
	return []Line{
		{ID: "item001", Name: "Headphones", Price: 2999, Quantity: 2},
		{ID: "item002", Name: "Speaker", Price: 50, Quantity: 1},
	}
}

func TestComposeOrderMessage(t *testing.T) {
	msg := ComposeOrderMessage(orderLines(), CustomerInfo{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 MG Road",
	})

	assert.Contains(t, msg, "*🛒 KBS Store Order*")
	assert.Contains(t, msg, "*Customer:* Asha")
	assert.Contains(t, msg, "*Phone:* 9876543210")
	assert.Contains(t, msg, "*Address:* 12 MG Road")
	assert.Contains(t, msg, "Headphones x2 - ₹5,998")
	assert.Contains(t, msg, "Speaker x1 - ₹50")
	assert.Contains(t, msg, "*💰 Total Amount: ₹6,048*")
	assert.Contains(t, msg, "Please confirm your order")
}

func TestComposeOrderMessageOmitsEmptyCustomerFields(t *testing.T) {
	msg := ComposeOrderMessage(orderLines(), CustomerInfo{Name: "Asha"})

	assert.Contains(t, msg, "*Customer:* Asha")
	assert.NotContains(t, msg, "*Phone:*")
	assert.NotContains(t, msg, "*Address:*")
}

func TestComposeOrderMessageDeterministic(t *testing.T) {
	info := CustomerInfo{Name: "Asha", Phone: "9876543210"}
	assert.Equal(t, ComposeOrderMessage(orderLines(), info), ComposeOrderMessage(orderLines(), info))
}

func TestMessageURL(t *testing.T) {
	link := MessageURL("919123536601", "hello world & more")

	require.True(t, strings.HasPrefix(link, "https://wa.me/919123536601?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hello world & more", parsed.Query().Get("text"))
}

func TestOrderURLUsesDefaultNumber(t *testing.T) {
	link := OrderURL(orderLines(), CustomerInfo{}, "")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/"+DefaultStoreNumber+"?"))
}

func TestComposePinMessage(t *testing.T) {
	msg := ComposePinMessage("123456")
	assert.Contains(t, msg, "*123456*")
	assert.Contains(t, msg, "expire in 5 minutes")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{999, "999"},
		{1000, "1,000"},
		{15999, "15,999"},
		{1234567, "1,234,567"},
		{2999.5, "2,999.50"},
		{99.99, "99.99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), "formatAmount(%v)", tt.in)
	}
}
