package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/region-locator-mcp/internal/config"
	"github.com/ironsheep/region-locator-mcp/internal/detection"
	"github.com/ironsheep/region-locator-mcp/internal/imaging"
	"github.com/ironsheep/region-locator-mcp/internal/logger"
)

// Exit codes of the locate command.
const (
	exitOK       = 0
	exitError    = 1
	exitNoRegion = 2
)

const outlineWidth = 2

type locateOutput struct {
	Path      string  `json:"path"`
	Found     bool    `json:"found"`
	Threshold float64 `json:"threshold"`
	*detection.Result
}

// runLocate implements "region-locator-mcp locate". The JSON result goes to
// out; the returned code is exitNoRegion when nothing was found.
func runLocate(args []string, cfg *config.Config, log logger.Logger, out io.Writer) (int, error) {
	fs := flag.NewFlagSet("locate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	threshold := fs.Float64("threshold", cfg.Threshold, "binarization threshold")
	annotatePath := fs.String("annotate", "", "write the outlined image to this PNG file")
	maskPath := fs.String("mask", "", "write the region mask to this PNG file")
	outline := fs.String("color", cfg.OutlineColor, "outline colour for -annotate")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if fs.NArg() != 1 {
		return exitError, errors.New("expected exactly one image path")
	}
	path := fs.Arg(0)

	outlineColor, err := imaging.ParseColor(*outline)
	if err != nil {
		return exitError, err
	}

	img, err := imgio.Open(path)
	if err != nil {
		return exitError, fmt.Errorf("failed to open image: %w", err)
	}

	res, err := detection.NewLocator(*threshold, log).Locate(imaging.SplitChannels(img))
	found := err == nil
	if err != nil && !errors.Is(err, detection.ErrNoRegion) {
		return exitError, err
	}

	if *maskPath != "" {
		if err := imgio.Save(*maskPath, imaging.MaskImage(res.Mask), imgio.PNGEncoder()); err != nil {
			return exitError, fmt.Errorf("failed to write mask: %w", err)
		}
		log.Info("locate", "mask written", map[string]interface{}{"path": *maskPath})
	}

	if *annotatePath != "" && found {
		annotated := imaging.DrawRegion(img, res.Region, outlineColor, outlineWidth)
		if err := imgio.Save(*annotatePath, annotated, imgio.PNGEncoder()); err != nil {
			return exitError, fmt.Errorf("failed to write annotated image: %w", err)
		}
		log.Info("locate", "annotated image written", map[string]interface{}{"path": *annotatePath})
	}

	result := locateOutput{Path: path, Found: found, Threshold: *threshold}
	if found {
		result.Result = res
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return exitError, err
	}

	if !found {
		return exitNoRegion, nil
	}
	return exitOK, nil
}
