package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingRecognizedReference(t *testing.T) {
	h := NewTrackingHandler(testVocab())

	res, err := h.Process(context.Background(), "Where is my order ORD-7F3A2?", &SessionContext{})
	require.NoError(t, err)

	assert.Contains(t, res.Content, "ORD-7F3A2")
	assert.Contains(t, res.Content, "in transit")
}

func TestTrackingReferenceIsCaseInsensitive(t *testing.T) {
	h := NewTrackingHandler(testVocab())

	res, err := h.Process(context.Background(), "track ord-9x8y please", &SessionContext{})
	require.NoError(t, err)

	assert.Contains(t, res.Content, "ORD-9X8Y")
}

func TestTrackingAsksForReference(t *testing.T) {
	h := NewTrackingHandler(testVocab())

	res, err := h.Process(context.Background(), "track my order", &SessionContext{})
	require.NoError(t, err)

	assert.Contains(t, res.Content, "order ID")
}

func TestTrackingGenericShippingFallback(t *testing.T) {
	h := NewTrackingHandler(testVocab())

	res, err := h.Process(context.Background(), "hello", &SessionContext{})
	require.NoError(t, err)

	assert.Contains(t, res.Content, "registered address")
}
