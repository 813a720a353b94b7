package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
)

func TestCheckoutPromptEchoesContextProduct(t *testing.T) {
	h := NewCheckoutHandler(seededStub(), testVocab(), "user-123")
	sess := &SessionContext{}
	sess.RememberProduct(findSeed("Runner Pro Shoes"))

	res, err := h.Process(context.Background(), "buy it", sess)
	require.NoError(t, err)

	assert.Equal(t, "You're buying 'Runner Pro Shoes'. Would you like to use your saved card ending in 4242?", res.Content)
	require.NotNil(t, res.Product)
	assert.Equal(t, "RUN-PRO-001", res.Product.SKU)
}

func TestCheckoutExplicitMentionOverridesContext(t *testing.T) {
	h := NewCheckoutHandler(seededStub(), testVocab(), "user-123")
	sess := &SessionContext{}
	sess.RememberProduct(findSeed("SmartPhone Z"))

	res, err := h.Process(context.Background(), "buy the navy blue polo t-shirt", sess)
	require.NoError(t, err)

	assert.Equal(t, "Navy Blue Polo T-Shirt", sess.LastProductName)
	assert.Contains(t, res.Content, "Navy Blue Polo T-Shirt")
}

func TestCheckoutPromptWithoutContextProduct(t *testing.T) {
	h := NewCheckoutHandler(seededStub(), testVocab(), "user-123")
	sess := &SessionContext{}

	res, err := h.Process(context.Background(), "i want to pay", sess)
	require.NoError(t, err)

	assert.Equal(t, "I can help you with that. Would you like to use your saved card ending in 4242?", res.Content)
}

func TestCheckoutConfirmationSubmitsOrder(t *testing.T) {
	gw := seededStub()
	h := NewCheckoutHandler(gw, testVocab(), "user-123")
	sess := &SessionContext{LastAgent: AgentCheckout}
	sess.RememberProduct(findSeed("Runner Pro Shoes"))

	res, err := h.Process(context.Background(), "yes", sess)
	require.NoError(t, err)

	assert.Equal(t, "Payment successful! Your order (order-fixed-id) has been placed.", res.Content)
	require.Len(t, gw.orders, 1)
	assert.Equal(t, "user-123", gw.orders[0].userRef)
	assert.Equal(t, []catalog.LineItem{{SKU: "RUN-PRO-001", Quantity: 1}}, gw.orders[0].items)
	assert.Equal(t, 0.0, gw.orders[0].total)
}

func TestCheckoutConfirmationWithoutContextSubmitsEmptyOrder(t *testing.T) {
	gw := seededStub()
	h := NewCheckoutHandler(gw, testVocab(), "user-123")
	sess := &SessionContext{LastAgent: AgentCheckout}

	res, err := h.Process(context.Background(), "yes", sess)
	require.NoError(t, err)

	assert.Contains(t, res.Content, "Payment successful!")
	require.Len(t, gw.orders, 1)
	assert.Empty(t, gw.orders[0].items)
}

func TestCheckoutPaymentFailureStaysLocal(t *testing.T) {
	gw := seededStub()
	gw.createErr = errGatewayDown
	h := NewCheckoutHandler(gw, testVocab(), "user-123")
	sess := &SessionContext{LastAgent: AgentCheckout}
	sess.RememberProduct(findSeed("Runner Pro Shoes"))

	res, err := h.Process(context.Background(), "yes", sess)
	require.NoError(t, err, "write failures become a reply, not an error")

	assert.Equal(t, "Payment failed: gateway unavailable", res.Content)
	assert.Empty(t, gw.orders)
	assert.Equal(t, "Runner Pro Shoes", sess.LastProductName, "session stays intact")
}

func TestCheckoutDeclineFallsBackToOffer(t *testing.T) {
	h := NewCheckoutHandler(seededStub(), testVocab(), "user-123")
	sess := &SessionContext{LastAgent: AgentCheckout}

	res, err := h.Process(context.Background(), "no", sess)
	require.NoError(t, err)

	assert.Equal(t, "I can assist with payments. Do you want to checkout?", res.Content)
}

func TestCheckoutAffirmativeWithoutPriorPromptDoesNotOrder(t *testing.T) {
	gw := seededStub()
	h := NewCheckoutHandler(gw, testVocab(), "user-123")
	sess := &SessionContext{LastAgent: AgentDiscovery}

	res, err := h.Process(context.Background(), "yes", sess)
	require.NoError(t, err)

	assert.Empty(t, gw.orders)
	assert.Equal(t, "I can assist with payments. Do you want to checkout?", res.Content)
}
