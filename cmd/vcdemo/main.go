// Command vcdemo shows the vcui controllers and widgets in a tab bar.
//
// Usage:
//
//	vcdemo [-backend devdraw|term] [-config file.toml] [-lps n] [-image path] [-log-events]
package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/mjl-/vcui"
	"github.com/mjl-/vcui/devdraw"
	"github.com/mjl-/vcui/term"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func main() {
	log.SetFlags(0)
	backend := flag.String("backend", "devdraw", "devdraw or term")
	configPath := flag.String("config", "", "toml config file, defaults are used when empty")
	lps := flag.Int("lps", 0, "loops per second, overrides the config")
	imagePath := flag.String("image", "", "image to show in the scroll tab")
	logEvents := flag.Bool("log-events", false, "log each dispatched event")
	flag.Usage = func() {
		log.Println("usage: vcdemo [flags]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := vcui.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = vcui.LoadConfig(*configPath)
		check(err, "config")
	}
	if *lps > 0 {
		cfg.LoopsPerSecond = *lps
	}

	var win vcui.Window
	switch *backend {
	case "devdraw":
		w, err := devdraw.Open("vcdemo", "1200x800")
		check(err, "open window")
		win = w
	case "term":
		term.Configure(&cfg)
		w, err := term.Open()
		check(err, "open terminal")
		win = w
	default:
		log.Fatalf("unknown backend %q\n", *backend)
	}
	defer win.Close()

	env, err := vcui.NewEnv(win, cfg)
	check(err, "new env")
	defer env.Close()
	env.Bus.LogEvents = *logEvents

	items := []vcui.TabItem{
		{Title: "Home", New: newHome},
		{Title: "Scroll", New: func(env *vcui.Env, size image.Point) (vcui.ViewController, error) {
			return newGallery(env, size, *imagePath)
		}},
		{Title: "Menu", New: newMenuPage},
		{Title: "Gradient", New: newWide},
	}
	root, err := vcui.NewTabBarController(env, win.Size(), items)
	check(err, "tab bar")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err = vcui.Run(ctx, env, root, win)
	if err != nil && err != context.Canceled {
		log.Printf("run: %s\n", err)
	}
}
