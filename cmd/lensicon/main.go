// Command lensicon writes icon16.png, icon48.png and icon128.png for the
// PDS Lens browser extension into the current directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pdslens/lensicon"
)

func main() {
	lensicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(lensicon.NewIconSet(".", os.Stdout), os.Stdout); err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}
}

// run generates the icon set. A missing encoder is reported on out with a
// hint and is not treated as a failure.
func run(set *lensicon.IconSet, out io.Writer) error {
	err := set.Generate()

	var missing *lensicon.MissingDependencyError
	if errors.As(err, &missing) {
		fmt.Fprintln(out, missing.Error())
		fmt.Fprintf(out, "\nNo icons were written. %s\n", missing.Hint)
		return nil
	}
	return err
}
