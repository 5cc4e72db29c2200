package clock_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/otpserver/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	t.Parallel()
	before := time.Now()
	now := clock.New().Now()
	assert.False(t, now.Before(before))
}

func TestFixed(t *testing.T) {
	t.Parallel()
	start := time.Unix(59, 0)
	c := clock.NewFixed(start)
	assert.Equal(t, start, c.Now())

	c.Advance(time.Second)
	assert.Equal(t, time.Unix(60, 0), c.Now())

	c.Set(time.Unix(1234567890, 0))
	assert.Equal(t, time.Unix(1234567890, 0), c.Now())
}
