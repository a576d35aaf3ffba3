package catalogue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRetryPolicy(t *testing.T) {
	policy := DefaultRetryPolicy()

	assert.Equal(t, uint(4), policy.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, policy.Delay)
	assert.Equal(t, 10*time.Second, policy.MaxDelay)
	assert.Equal(t, []int{429, 503}, policy.Statuses)
}

func TestRetryPolicyRetryable(t *testing.T) {
	policy := DefaultRetryPolicy()

	assert.True(t, policy.retryable(429))
	assert.True(t, policy.retryable(503))
	assert.False(t, policy.retryable(200))
	assert.False(t, policy.retryable(400))
	assert.False(t, policy.retryable(500))

	custom := RetryPolicy{Statuses: []int{500, 502, 503}}
	assert.True(t, custom.retryable(502))
	assert.False(t, custom.retryable(429))
}
