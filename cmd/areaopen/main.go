// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command areaopen demonstrates the maxtreepar pipeline end to end: load a
// grayscale PGM image, build its max-tree, scan it for per-node area, keep
// only the nodes whose area meets a threshold, and save the filtered image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Geek0x0/maxtreepar"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: areaopen [-workers N] [-v] <input.pgm> <output.pgm> <lambda>\n")
	flag.PrintDefaults()
}

func main() {
	workers := flag.Int("workers", 0, "worker count (0 = runtime.NumCPU())")
	verbose := flag.Bool("v", false, "show progress output")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(1)
	}

	logger := maxtreepar.DefaultLogger()
	logger.ShowInfo = *verbose

	exitCode := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), *workers, logger)
	os.Exit(exitCode)
}

// run is split out from main so a core panic (a precondition violation:
// malformed image buffer, unsupported connectivity) can be converted to a
// nonzero exit code instead of a bare stack trace, per the CLI's recover
// boundary.
func run(inputPath, outputPath, lambdaArg string, workers int, logger *maxtreepar.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("fatal: %v", r)
			code = 3
		}
	}()

	lambda, err := parseLambda(lambdaArg)
	if err != nil {
		logger.Error(err.Error())
		return 1
	}

	pixels, width, height, err := readPGM(inputPath)
	if err != nil {
		logger.Errorf("read %s: %v", inputPath, err)
		return 1
	}
	logger.Infof("loaded %s: %dx%d", inputPath, width, height)

	img := maxtreepar.NewImage(pixels, maxtreepar.Dimensions{width, height})
	pool := maxtreepar.NewPool(workers)

	logger.Info("building max-tree")
	parent := maxtreepar.Build(pool, img, maxtreepar.Connectivity8)

	logger.Info("computing per-node area")
	area := maxtreepar.TreeScan(parent, func(maxtreepar.Index) int64 { return 1 }, func(a, b int64) int64 { return a + b })

	logger.Infof("filtering at lambda=%d", lambda)
	filtered := maxtreepar.Reconstruct(img.Values, parent, func(i maxtreepar.Index) bool {
		return area[i] >= lambda
	})

	if err := writePGM(outputPath, filtered, width, height); err != nil {
		logger.Errorf("write %s: %v", outputPath, err)
		return 1
	}
	logger.Infof("wrote %s", outputPath)
	return 0
}

func parseLambda(s string) (int64, error) {
	var lambda int64
	if _, err := fmt.Sscanf(s, "%d", &lambda); err != nil {
		return 0, fmt.Errorf("invalid lambda %q: must be a non-negative integer", s)
	}
	if lambda < 0 {
		return 0, fmt.Errorf("invalid lambda %q: must be non-negative", s)
	}
	return lambda, nil
}

// readPGM reads a binary (P5) grayscale PGM image with a maxval <= 255,
// the simplest self-decodable image format and the only one this command
// needs -- image codec support is explicitly out of the core's scope.
func readPGM(path string) (pixels []uint8, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var magic string
	var maxval int
	if _, err := fmt.Fscan(r, &magic); err != nil {
		return nil, 0, 0, fmt.Errorf("read magic: %w", err)
	}
	if magic != "P5" {
		return nil, 0, 0, fmt.Errorf("unsupported PGM magic %q (only P5 is supported)", magic)
	}
	if _, err := fmt.Fscan(r, &width, &height, &maxval); err != nil {
		return nil, 0, 0, fmt.Errorf("read header: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if maxval <= 0 || maxval > 255 {
		return nil, 0, 0, fmt.Errorf("unsupported maxval %d (only 8-bit PGM is supported)", maxval)
	}

	// Consume the single whitespace byte separating the header from the
	// raw sample data.
	if _, err := r.ReadByte(); err != nil {
		return nil, 0, 0, fmt.Errorf("read header terminator: %w", err)
	}

	n := width * height
	pixels = make([]uint8, n)
	if _, err := io.ReadFull(r, pixels); err != nil {
		return nil, 0, 0, fmt.Errorf("read samples: %w", err)
	}
	return pixels, width, height, nil
}

func writePGM(path string, pixels []uint8, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	if _, err := w.Write(pixels); err != nil {
		return err
	}
	return w.Flush()
}
