package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/hawkjo/visualizationtools/animate"
)

// readFields returns the whitespace separated fields of each data line,
// skipping blank lines and lines starting with #.
func readFields(fileName string, fn func(lineNo int, fields []string) error) error {
	f, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := fn(lineNo, strings.Fields(line)); err != nil {
			return fmt.Errorf("%s:%d: %w", fileName, lineNo, err)
		}
	}
	return scanner.Err()
}

// readValues reads the first column of a file as numbers.
func readValues(fileName string) ([]float64, error) {
	var values []float64
	err := readFields(fileName, func(_ int, fields []string) error {
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	return values, err
}

// readPairs reads the first two columns of a file as numbers.
func readPairs(fileName string) (xs, ys []float64, err error) {
	err = readFields(fileName, func(_ int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("expected two columns, got %d", len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return err
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		xs = append(xs, x)
		ys = append(ys, y)
		return nil
	})
	return
}

// readFrames decodes image files into a stack of gray intensities in [0, 1].
func readFrames(fileNames []string) (animate.Stack, error) {
	stack := make(animate.Stack, 0, len(fileNames))
	for _, name := range fileNames {
		img, err := readImage(name)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		frame := make([][]float64, b.Dy())
		for y := range frame {
			frame[y] = make([]float64, b.Dx())
			for x := range frame[y] {
				g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
				frame[y][x] = float64(g.Y) / 0xffff
			}
		}
		stack = append(stack, frame)
	}
	return stack, nil
}

func readImage(fileName string) (image.Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return img, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
