package pubsub

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Prompt string
}

func TestPubSub(t *testing.T) {
	testee := New[testEvent]()
	s := testee.Subscribe(context.Background())
	defer s.Stop()

	eventCount := 3

	go func() {
		for i := 0; i < eventCount; i++ {
			testee.Publish(testEvent{Prompt: fmt.Sprintf("prompt %d", i)})
		}
	}()

	time.Sleep(100 * time.Millisecond)

	go func() {
		time.Sleep(time.Second)
		s.Stop()
		testee.Publish(testEvent{Prompt: "event sent after stop"})
	}()

	expected := []string{"prompt 0", "prompt 1", "prompt 2"}
	actual := make([]string, 0, 3)

	for evt := range s.ResultChan() {
		actual = append(actual, evt.Prompt)
	}

	require.Equal(t, expected, actual, "received events")
}

func TestPubSubSubscribeAfterStop(t *testing.T) {
	testee := New[testEvent]()
	testee.Stop()

	s := testee.Subscribe(context.Background())
	defer s.Stop()

	_, open := <-s.ResultChan()
	require.False(t, open, "subscription channel after stop")
}
