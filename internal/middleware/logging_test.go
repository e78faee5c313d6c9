package middleware

import (
	"fmt"
	"testing"

	"wordcards/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestLogger_SetsTraceID(t *testing.T) {
	c := testutil.NewFakeContext(&tele.User{ID: 1}, "hi")

	var seen interface{}
	handler := Logger(testutil.NewTestLogger())(func(c tele.Context) error {
		seen = c.Get(TraceIDKey)
		return nil
	})

	assert.NoError(t, handler(c))

	traceID, ok := seen.(string)
	assert.True(t, ok)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestLogger_PassesError(t *testing.T) {
	c := testutil.NewFakeContext(nil, "hi")
	want := fmt.Errorf("send failed")

	handler := Logger(testutil.NewTestLogger())(func(tele.Context) error {
		return want
	})

	assert.Equal(t, want, handler(c))
}

func TestRecover(t *testing.T) {
	c := testutil.NewFakeContext(&tele.User{ID: 1}, "hi")

	handler := Recover(testutil.NewTestLogger())(func(tele.Context) error {
		panic("boom")
	})

	err := handler(c)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
