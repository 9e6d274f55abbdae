// Package main is a demonstration driver for the fontstorm object
// graph: it builds a small font, subscribes to its notifications, and
// traces the change cascade for each edit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/fontstorm/font"
	"github.com/dshills/fontstorm/notification"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// tracer records every notification it observes.
type tracer struct {
	notification.Ident
}

func (t *tracer) observe(n *notification.Notification) error {
	source := "<dead>"
	if obj := n.Object(); obj != nil {
		source = fmt.Sprintf("%T", obj)
	}
	fmt.Printf("  %-28s from %s\n", n.Name(), source)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	var logLevel string
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	if showVersion {
		fmt.Printf("fontstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		return 0
	}

	level, ok := parseLevel(logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
		return 1
	}
	cfg := notification.DefaultLoggerConfig()
	cfg.Level = level
	logger := notification.NewLogger(cfg)

	f := font.NewFont(font.WithLogger(logger))
	defer f.Close()

	t := &tracer{}
	t.Bind(t)
	f.NotificationDispatcher().AddObserver(t, t.observe, "", nil)

	layer := f.DefaultLayer()
	glyph, err := layer.NewGlyph("A")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println("appending a contour point:")
	contour := font.NewContour()
	if err := glyph.AppendContour(contour); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := contour.AppendPoint(font.Point{X: 20, Y: 0, Type: font.PointTypeMove}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println("the same edit under a hold, then released:")
	glyph.HoldNotifications("batch edit")
	if err := contour.AppendPoint(font.Point{X: 480, Y: 700, Type: font.PointTypeLine}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := glyph.ReleaseHeldNotifications(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if bounds, ok := glyph.Bounds(); ok {
		fmt.Printf("glyph bounds: (%g, %g) to (%g, %g)\n",
			bounds.XMin, bounds.YMin, bounds.XMax, bounds.YMax)
	}
	return 0
}

func parseLevel(s string) (notification.LogLevel, bool) {
	switch s {
	case "debug":
		return notification.LogLevelDebug, true
	case "info":
		return notification.LogLevelInfo, true
	case "warn":
		return notification.LogLevelWarn, true
	case "error":
		return notification.LogLevelError, true
	}
	return notification.LogLevelInfo, false
}
