package vcui

import (
	"context"
	"fmt"
	"image"
)

// Run drives root in win until a quit event, the window's event channel closing,
// or ctx being canceled. Each frame it waits for the clock, collects the pending
// events without blocking, runs the functions sent on env.Call, dispatches the
// events, then updates, renders and presents root.
//
// If root is not active, Run navigates to it first and deactivates it on return.
// A root that does not declare HookResize but implements DimensionUpdater is
// resized to the window on resize events.
func Run(ctx context.Context, env *Env, root ViewController, win Window) error {
	clock, err := NewClock(env.Config.LoopsPerSecond)
	if err != nil {
		return err
	}
	if !root.Base().Active() {
		if err := Navigate(env, root); err != nil {
			return fmt.Errorf("navigate to root: %w", err)
		}
		defer env.Deactivate(root)
	}

	events := win.Events()
	var batch []Event
	for {
		delta := clock.Tick()

		batch = batch[:0]
		quit := false
	drain:
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case fn := <-env.Call:
				fn()
			case e, ok := <-events:
				if !ok {
					return nil
				}
				if e.Type == EventQuit {
					quit = true
					break drain
				}
				batch = append(batch, e)
			default:
				break drain
			}
		}
		if quit {
			return nil
		}

		resizeRoot(root, batch)
		env.Bus.Dispatch(batch)
		root.Update(0, 0, delta)
		root.Render()
		if err := win.Present(root.Surface()); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}
}

func resizeRoot(root ViewController, events []Event) {
	if root.Hooks()&HookResize != 0 {
		return
	}
	d, ok := root.(DimensionUpdater)
	if !ok {
		return
	}
	size := image.Point{-1, -1}
	for _, e := range events {
		if e.Type == EventWindowResize {
			size = e.Size
		}
	}
	if size.X < 0 || size == root.Surface().Size() {
		return
	}
	if err := d.UpdateDimensions(size); err != nil {
		logf("resize root: %s\n", err)
	}
}
