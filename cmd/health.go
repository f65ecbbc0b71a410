package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type pinger interface {
	Ping() error
}

type queueStatus interface {
	Ping(ctx context.Context) error
	Size(ctx context.Context) (int64, error)
}

type degradable interface {
	Degraded() bool
}

// healthHandler reports dependency reachability. queue_depth is -1 when
// the dispatch queue cannot be read.
func healthHandler(db pinger, queue queueStatus, sessions degradable) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		depth, err := queue.Size(ctx)
		if err != nil {
			depth = -1
		}

		return c.JSON(fiber.Map{
			"status":            "ok",
			"db":                db.Ping() == nil,
			"redis":             queue.Ping(ctx) == nil,
			"queue_depth":       depth,
			"sessions_degraded": sessions.Degraded(),
		})
	}
}
