package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"ebiten-gridsim/clock"
	"ebiten-gridsim/config"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/scenes"
)

// runHeadless drives a level scene on a wall-clock ticker until frames
// steps ran, the stack emptied, or the process was interrupted. frames <= 0
// means no limit.
func runHeadless(w *scenes.World, frames int) error {
	log := logger.WithComponent("headless")

	level, err := scenes.NewLevelScene(w)
	if err != nil {
		return err
	}
	stack := scenes.NewStack(w.Metrics)
	stack.Push(level)
	defer stack.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stepper := clock.NewStepper(config.StepDuration, clock.Wall)
	ticker := time.NewTicker(stepper.Step())
	defer ticker.Stop()

	start := time.Now()
	done := 0
	for {
		select {
		case <-ctx.Done():
			log.WithField("frames", done).Info("Interrupted")
			return nil
		case <-ticker.C:
		}

		// Catch up on every step the ticker missed
		for n := stepper.Advance(); n > 0; n-- {
			stack.Update(w)
			done++
			if stack.Empty() {
				log.WithField("frames", done).Info("Scene stack empty")
				return nil
			}
			if frames > 0 && done >= frames {
				log.WithFields(logrus.Fields{
					"frames":  done,
					"elapsed": time.Since(start).Round(time.Millisecond),
				}).Info("Headless run complete")
				return nil
			}
		}
	}
}
