package glider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"
)

// optionsDoc is the TOML shape of an options file. Pointers distinguish
// "absent" from zero so the file can explicitly set zero values.
type optionsDoc struct {
	Type           *string  `toml:"type"`
	Direction      *string  `toml:"direction"`
	PerPage        *int     `toml:"per_page"`
	PerMove        *int     `toml:"per_move"`
	Start          *int     `toml:"start"`
	Gap            *float64 `toml:"gap"`
	Padding        *float64 `toml:"padding"`
	Height         *float64 `toml:"height"`
	HeightRatio    *float64 `toml:"height_ratio"`
	FixedWidth     *float64 `toml:"fixed_width"`
	FixedHeight    *float64 `toml:"fixed_height"`
	AutoWidth      *bool    `toml:"auto_width"`
	AutoHeight     *bool    `toml:"auto_height"`
	Clones         *int     `toml:"clones"`
	DragFree       *bool    `toml:"drag_free"`
	FlickMaxPages  *int     `toml:"flick_max_pages"`
	Rewind         *bool    `toml:"rewind"`
	Speed          *float64 `toml:"speed"`
	Interval       *float64 `toml:"interval"`
	ResizeThrottle *float64 `toml:"resize_throttle"`
}

// LoadOptionsFile parses a TOML options file over DefaultOptions. A missing
// file yields the defaults; a malformed file is an error.
func LoadOptionsFile(path string) (Options, error) {
	o := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return o, nil
		}
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	if err := applyTOML(data, &o); err != nil {
		return Options{}, err
	}
	return o, nil
}

func applyTOML(data []byte, o *Options) error {
	var doc optionsDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse options file: %w", err)
	}

	if doc.Type != nil {
		t, err := ParseSliderType(*doc.Type)
		if err != nil {
			return err
		}
		o.Type = t
	}
	if doc.Direction != nil {
		d, err := ParseDirection(*doc.Direction)
		if err != nil {
			return err
		}
		o.Direction = d
	}
	if doc.PerPage != nil {
		o.PerPage = *doc.PerPage
	}
	if doc.PerMove != nil {
		o.PerMove = *doc.PerMove
	}
	if doc.Start != nil {
		o.Start = *doc.Start
	}
	if doc.Gap != nil {
		o.Gap = *doc.Gap
	}
	if doc.Padding != nil {
		o.Padding = *doc.Padding
	}
	if doc.Height != nil {
		o.Height = *doc.Height
	}
	if doc.HeightRatio != nil {
		o.HeightRatio = *doc.HeightRatio
	}
	if doc.FixedWidth != nil {
		o.FixedWidth = *doc.FixedWidth
	}
	if doc.FixedHeight != nil {
		o.FixedHeight = *doc.FixedHeight
	}
	if doc.AutoWidth != nil {
		o.AutoWidth = *doc.AutoWidth
	}
	if doc.AutoHeight != nil {
		o.AutoHeight = *doc.AutoHeight
	}
	if doc.Clones != nil {
		o.Clones = *doc.Clones
	}
	if doc.DragFree != nil {
		o.DragFree = *doc.DragFree
	}
	if doc.FlickMaxPages != nil {
		o.FlickMaxPages = *doc.FlickMaxPages
	}
	if doc.Rewind != nil {
		o.Rewind = *doc.Rewind
	}
	if doc.Speed != nil {
		o.Speed = float32(*doc.Speed)
	}
	if doc.Interval != nil {
		o.Interval = float32(*doc.Interval)
	}
	if doc.ResizeThrottle != nil {
		o.ResizeThrottle = float32(*doc.ResizeThrottle)
	}
	return nil
}

// WatchOptionsFile watches a TOML options file and emits a parsed Options on
// every write, starting with the current contents. Unparsable intermediate
// writes are skipped. The channel closes when ctx is cancelled.
//
// The watcher goroutine lives outside the engine's single thread of control;
// hosts drain the channel from their own frame loop and hand the result to
// SetOptions there.
func WatchOptionsFile(ctx context.Context, path string) (<-chan Options, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create options watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch options file %s: %w", path, err)
	}

	out := make(chan Options, 1)

	go func() {
		defer close(out)
		defer watcher.Close()

		if o, err := LoadOptionsFile(path); err == nil {
			select {
			case out <- o:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				o, err := LoadOptionsFile(path)
				if err != nil {
					continue
				}
				select {
				case out <- o:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
