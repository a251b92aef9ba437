package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/allthemusicllc/libatm"
)

func main() {
	cmd := &cli.Command{
		Name:  "atmgen",
		Usage: "Generate a minimal single-track MIDI file from a note sequence",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "notes",
				Usage:    "comma-separated note sequence, e.g. 'C:4,D:4,E:4'",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output path (default: <hash>.mid in the working directory)",
			},
			&cli.IntFlag{
				Name:  "division",
				Value: 1,
				Usage: "ticks per quarter note (must fit in one byte)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sequence, err := libatm.ParseNoteSequence(c.String("notes"))
			if err != nil {
				return fmt.Errorf("parsing --notes: %w", err)
			}

			division := c.Int("division")
			if division < 1 || division > 0xFF {
				return fmt.Errorf("--division %d out of range [1, 255]", division)
			}

			file := libatm.NewFile(sequence, libatm.Format0, 1, uint16(division))

			output := c.String("output")
			if output == "" {
				output = file.Hash() + ".mid"
			}

			if err := file.WriteFile(output); err != nil {
				return fmt.Errorf("writing %q: %w", output, err)
			}

			logrus.WithFields(logrus.Fields{
				"path":  output,
				"bytes": file.Size(),
				"notes": sequence.Len(),
				"hash":  file.Hash(),
			}).Info("wrote MIDI file")
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
