package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the browse, buy, confirm flow end to end: discovery remembers the
// product, checkout prompts off it, and the follow-up affirmative lands
// back in checkout because the previous agent is consulted before dispatch.
func TestOrchestratorCheckoutFlow(t *testing.T) {
	gw := seededStub()
	o := NewOrchestrator(gw, testVocab(), "user-123")
	sess := &SessionContext{}
	ctx := context.Background()

	res, err := o.HandleTurn(ctx, "show me running shoes", sess)
	require.NoError(t, err)
	assert.Equal(t, AgentDiscovery, res.Agent)
	assert.Equal(t, AgentDiscovery, sess.LastAgent)
	require.NotEmpty(t, sess.LastProductName)

	res, err = o.HandleTurn(ctx, "buy it", sess)
	require.NoError(t, err)
	assert.Equal(t, AgentCheckout, res.Agent)
	assert.Contains(t, res.Content, sess.LastProductName)

	res, err = o.HandleTurn(ctx, "yes", sess)
	require.NoError(t, err)
	assert.Equal(t, AgentCheckout, res.Agent)
	assert.Contains(t, res.Content, "Payment successful!")
	require.Len(t, gw.orders, 1)
	require.Len(t, gw.orders[0].items, 1)
	assert.Equal(t, 1, gw.orders[0].items[0].Quantity)
}

func TestOrchestratorLastAgentUpdatedOnlyOnSuccess(t *testing.T) {
	gw := seededStub()
	o := NewOrchestrator(gw, testVocab(), "user-123")
	sess := &SessionContext{}
	ctx := context.Background()

	_, err := o.HandleTurn(ctx, "track my order", sess)
	require.NoError(t, err)
	assert.Equal(t, AgentTracking, sess.LastAgent)

	gw.readErr = errGatewayDown
	_, err = o.HandleTurn(ctx, "show me dresses", sess)
	require.Error(t, err)
	assert.Equal(t, AgentTracking, sess.LastAgent, "a failed turn leaves the slot untouched")
}

func TestOrchestratorRequiresSession(t *testing.T) {
	o := NewOrchestrator(seededStub(), testVocab(), "user-123")

	_, err := o.HandleTurn(context.Background(), "hello", nil)
	require.Error(t, err)
}

func TestOrchestratorGatewayFailurePropagates(t *testing.T) {
	o := NewOrchestrator(&stubGateway{readErr: errGatewayDown}, testVocab(), "user-123")
	sess := &SessionContext{}

	_, err := o.HandleTurn(context.Background(), "show me shoes", sess)
	require.Error(t, err)
	assert.ErrorIs(t, err, errGatewayDown)
	assert.Empty(t, sess.LastAgent)
}
