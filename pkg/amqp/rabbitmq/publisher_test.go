package rabbitmq

import (
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

func requireRabbit(t *testing.T, addy string) {
	conn, err := amqp.Dial(addy)
	if err != nil {
		t.Skipf("rabbitmq not available at %s: %v", addy, err)
	}
	_ = conn.Close()
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("publish and listen", func(t *testing.T) {
		addy := "amqp://rabbit:5672/"
		queue := "studybits-test-queue"
		requireRabbit(t, addy)

		publisher, err := NewPublisher(addy, queue)
		require.NoError(t, err)
		listener, err := NewListener(addy, queue)
		require.NoError(t, err)

		msgCh := make(chan []byte, 1)
		go func() {
			ch, err := listener.Listen()
			require.NoError(t, err)

			incoming := <-ch
			msgCh <- incoming.Body
		}()

		err = publisher.Publish([]byte("{}"), "application/json")
		require.NoError(t, err)

		err = publisher.Close()
		require.NoError(t, err)

		result := <-msgCh
		require.Equal(t, []byte("{}"), result)

		err = listener.Close()
		require.NoError(t, err)

	})

	t.Run("bad address publisher", func(t *testing.T) {
		addy := "amqp://localhost:9999/"
		queue := "studybits-test-queue"
		publisher, err := NewPublisher(addy, queue)
		require.Error(t, err)
		require.Nil(t, publisher)
	})

	t.Run("bad address listener", func(t *testing.T) {
		addy := "amqp://localhost:9999/"
		queue := "studybits-test-queue"
		listener, err := NewListener(addy, queue)
		require.Error(t, err)
		require.Nil(t, listener)
	})

}
