package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"gitlab.com/gomidi/midi/v2/smf"
)

// atminspect walks a directory of generated .mid files and checks that
// an independent SMF implementation can parse them, reporting success
// statistics. Useful as a sanity check over a large generated corpus.
func main() {
	cmd := &cli.Command{
		Name:  "atminspect",
		Usage: "Parse generated MIDI files and report statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "path",
				Usage:    "MIDI file scan path (dir or file)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "show-events",
				Usage: "log the events of each parsed file",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return inspect(c.String("path"), c.Bool("show-events"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func inspect(scanPath string, showEvents bool) error {
	var successes, failures int64
	var successSize, totalSize int64

	onEachFile := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(strings.ToLower(path), ".mid") {
			return nil
		}

		totalSize += info.Size()

		data, err := smf.ReadFile(path)
		if err != nil {
			logrus.WithField("path", path).Warnf("parse failed: %v", err)
			failures++
			return nil
		}

		if showEvents {
			for i, track := range data.Tracks {
				for j, event := range track {
					logrus.Infof("%s trk %d evt %d delta=%d %s", path, i, j, event.Delta, event.Message.String())
				}
			}
		}
		successes++
		successSize += info.Size()
		return nil
	}

	t0 := time.Now()
	if err := filepath.Walk(scanPath, onEachFile); err != nil {
		return fmt.Errorf("scanning %q: %w", scanPath, err)
	}
	elapsed := time.Since(t0)

	total := successes + failures
	if total == 0 {
		return fmt.Errorf("no .mid files under %q", scanPath)
	}

	logrus.Infof("%d/%d file(s) parsed successfully (%d of %d bytes) in %v",
		successes, total, successSize, totalSize, elapsed)
	if failures > 0 {
		return fmt.Errorf("%d file(s) failed to parse", failures)
	}
	return nil
}
