package blobstore

//go:generate go run go.uber.org/mock/mockgen -source=./feed.go -destination=./mocks/feed_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const feedChannel = "fairhall:blob-changes"

// Event announces that a blob was overwritten. Origin identifies the
// publishing process so a subscriber can skip its own writes, the same way a
// storage event never fires in the tab that performed the write.
type Event struct {
	Key    string `json:"key"`
	Origin string `json:"origin"`
}

// Feed broadcasts blob change events across process instances.
type Feed interface {
	Publish(ctx context.Context, key string) error
	Subscribe(ctx context.Context, handler func(Event))
}

type redisFeed struct {
	client *redis.Client
	origin string
}

func NewFeed(client *redis.Client) Feed {
	return &redisFeed{
		client: client,
		origin: uuid.NewString(),
	}
}

func (f *redisFeed) Publish(ctx context.Context, key string) error {
	payload, err := json.Marshal(Event{Key: key, Origin: f.origin})
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := f.client.Publish(ctx, feedChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event (%s): %w", key, err)
	}

	return nil
}

// Subscribe delivers foreign change events to handler until ctx is done.
// Delivery runs on a dedicated goroutine; handlers reload snapshots wholesale,
// so losing an event under reconnect only delays convergence.
func (f *redisFeed) Subscribe(ctx context.Context, handler func(Event)) {
	sub := f.client.Subscribe(ctx, feedChannel)

	go func() {
		defer func() {
			if err := sub.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close blob feed subscription")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}

				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Error().Err(err).Str("payload", msg.Payload).Msg("malformed blob change event")

					continue
				}

				if event.Origin == f.origin {
					continue
				}

				handler(event)
			}
		}
	}()
}
