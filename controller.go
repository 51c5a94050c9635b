package glider

import (
	"fmt"
	"strconv"
	"strings"
)

// Controller turns navigation tokens into destination indices, honoring
// per-page/per-move grouping, loop wrapping, and rewind. Destinations may
// lie outside [0, length) for loop carousels: movement animates into the
// clone region and the index settles on the canonical value afterwards.
type Controller struct {
	g     *Glider
	scope *EventScope
}

func newController(g *Glider) *Controller {
	return &Controller{g: g}
}

// Mount clamps the start index into range and keeps the current index in
// range when the slide count shrinks.
func (c *Controller) Mount() error {
	c.g.index = clampInt(c.g.index, 0, c.endIndex())
	c.scope = c.g.bus.Scope()
	c.scope.On(EventRefresh, func(...any) {
		if end := c.endIndex(); c.g.index > end {
			c.g.index = end
		}
	}, 10)
	return nil
}

func (c *Controller) Destroy(full bool) {
	c.scope.Destroy()
}

// Destination resolves a control token against the current index:
//
//	"3"        absolute index
//	"+2", "-1" relative; bare "+"/"-" mean one
//	">", "<"   next/previous page (perMove overrides the step)
//	">2"       absolute page
//
// Unrecognized tokens are an error. The result may be out of range for loop
// carousels; Canonical maps it back.
func (c *Controller) Destination(token string) (int, error) {
	n := c.g.slides.GetLength(true)
	if n == 0 {
		return 0, nil
	}
	o := c.g.options
	idx := c.g.index
	loop := o.Type == TypeLoop

	switch {
	case token == ">":
		dest := idx + c.step()
		if loop {
			return dest, nil
		}
		if dest > c.endIndex() {
			if o.Rewind && idx >= c.endIndex() {
				return 0, nil
			}
			dest = c.endIndex()
		}
		return dest, nil

	case token == "<":
		dest := idx - c.step()
		if loop {
			return dest, nil
		}
		if dest < 0 {
			if o.Rewind && idx <= 0 {
				return c.endIndex(), nil
			}
			dest = 0
		}
		return dest, nil

	case strings.HasPrefix(token, ">"):
		page, err := strconv.Atoi(token[1:])
		if err != nil {
			return 0, fmt.Errorf("glider: invalid go target %q", token)
		}
		return c.pageToIndex(page), nil

	case token == "+" || token == "-":
		token += "1"
		fallthrough
	case strings.HasPrefix(token, "+") || strings.HasPrefix(token, "-"):
		delta, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("glider: invalid go target %q", token)
		}
		dest := idx + delta
		if loop {
			return dest, nil
		}
		return clampInt(dest, 0, c.endIndex()), nil

	default:
		abs, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("glider: invalid go target %q", token)
		}
		if loop {
			return wrap(abs, n), nil
		}
		return clampInt(abs, 0, c.endIndex()), nil
	}
}

// Canonical maps a possibly out-of-range destination back to a real index.
func (c *Controller) Canonical(dest int) int {
	n := c.g.slides.GetLength(true)
	if n == 0 {
		return 0
	}
	if c.g.options.Type == TypeLoop {
		return wrap(dest, n)
	}
	return clampInt(dest, 0, c.endIndex())
}

// step is the number of slides one page control advances.
func (c *Controller) step() int {
	if pm := c.g.options.PerMove; pm > 0 {
		return pm
	}
	return c.g.options.PerPage
}

// endIndex is the last index a page can start at: end-aligned for bounded
// carousels so the final page stays full.
func (c *Controller) endIndex() int {
	n := c.g.slides.GetLength(true)
	if c.g.options.Type == TypeLoop {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	end := n - c.g.options.PerPage
	if end < 0 {
		return 0
	}
	return end
}

// pageToIndex maps an absolute page number to its starting index.
func (c *Controller) pageToIndex(page int) int {
	n := c.g.slides.GetLength(true)
	if n == 0 {
		return 0
	}
	if c.g.options.Type == TypeLoop {
		return wrap(page*c.g.options.PerPage, n)
	}
	return clampInt(page*c.g.options.PerPage, 0, c.endIndex())
}

// wrap maps i into [0, n) with floored modulo.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
