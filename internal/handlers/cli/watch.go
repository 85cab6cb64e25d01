package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"
)

const defaultSettle = 2 * time.Second

func followFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "follow",
			Usage: "Keep printing every update until interrupted",
		},
		&cli.DurationFlag{
			Name:  "settle",
			Usage: "Without --follow, print once no update arrived for this long",
			Value: defaultSettle,
		},
	}
}

// watch consumes ch until it is closed or ctx is done. With follow every
// value is emitted; otherwise only the latest value is emitted, once ch
// stayed quiet for settle. received runs for every value first.
func watch[T any](ctx context.Context, ch <-chan T, follow bool, settle time.Duration, received, emit func(T) error) error {
	var (
		latest T
		seen   bool
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-ch:
			if !ok {
				if seen && !follow {
					return emit(latest)
				}
				return nil
			}

			if err := received(v); err != nil {
				return err
			}

			if follow {
				if err := emit(v); err != nil {
					return err
				}
			}

			latest, seen = v, true
		case <-time.After(settle):
			if follow || !seen {
				continue
			}
			return emit(latest)
		}
	}
}
