package scrim_test

import (
	"fmt"

	"github.com/vito/scrim/pkg/scrim"
)

// Example drives a small UI headlessly: a scripted backend feeds keys
// through the loop, a button callback mutates a named view, and the
// default exit binding stops the loop.
func Example() {
	backend := scrim.NewDummyBackend(scrim.XY(24, 6))
	app := scrim.NewApp(backend)

	app.AddFullscreenLayer(scrim.NewVerticalLayout().
		AddChild(scrim.Named("status", scrim.NewTextView("waiting"))).
		AddChild(scrim.NewButton("Go", func(app *scrim.App) {
			scrim.CallOn(app.Root(), "status", func(tv *scrim.TextView) {
				tv.SetContent("done")
			})
		})))

	backend.PushEvent(
		scrim.KeyEvent{Key: scrim.KeyDown},  // focus the button
		scrim.KeyEvent{Key: scrim.KeyEnter}, // press it
		scrim.ExitEvent{},
	)
	app.Run()

	status, _ := scrim.Find[*scrim.TextView](app.Root(), "status")
	fmt.Println(status.Content())
	// Output: done
}
