package main

import (
	"fmt"
	"strconv"
	"strings"
)

// size is a -size flag value of the form WxH.
type size struct {
	Width  float32
	Height float32
	set    bool
}

func (s *size) String() string {
	if !s.set {
		return ""
	}
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func (s *size) Set(v string) error {
	w, h, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return fmt.Errorf("size %q: want WIDTHxHEIGHT", v)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 32)
	if err != nil {
		return fmt.Errorf("size %q: bad width: %w", v, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 32)
	if err != nil {
		return fmt.Errorf("size %q: bad height: %w", v, err)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("size %q: dimensions must be positive", v)
	}
	s.Width, s.Height, s.set = float32(width), float32(height), true
	return nil
}
