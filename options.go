package glider

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"github.com/tidwall/gjson"
)

// SliderType selects the overall carousel behavior.
type SliderType uint8

const (
	// TypeSlide is a bounded track that stops at both ends.
	TypeSlide SliderType = iota
	// TypeLoop duplicates boundary slides so the track wraps seamlessly.
	TypeLoop
	// TypeFade keeps the track still and cross-fades the active slide.
	TypeFade
)

// String returns the string form used in option payloads.
func (t SliderType) String() string {
	switch t {
	case TypeSlide:
		return "slide"
	case TypeLoop:
		return "loop"
	case TypeFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Direction selects the track axis and reading direction.
type Direction uint8

const (
	// DirLTR lays slides out horizontally, left to right.
	DirLTR Direction = iota
	// DirRTL lays slides out horizontally, right to left.
	DirRTL
	// DirTTB lays slides out vertically. Requires an explicit height,
	// height ratio, or fixed slide height.
	DirTTB
)

// String returns the string form used in option payloads.
func (d Direction) String() string {
	switch d {
	case DirLTR:
		return "ltr"
	case DirRTL:
		return "rtl"
	case DirTTB:
		return "ttb"
	default:
		return "unknown"
	}
}

// DataAttribute is the root element attribute holding an embedded JSON
// options payload, merged over constructor options at New.
const DataAttribute = "data-glider"

// Options configures a carousel instance. The zero value of a field means
// "unset": New merges the given Options over DefaultOptions field by field,
// so only fields you assign take effect.
type Options struct {
	Type      SliderType
	Direction Direction

	// PerPage is the number of slides shown at once; PerMove, when positive,
	// overrides the number advanced by one page step.
	PerPage int
	PerMove int

	// Start is the initial index, clamped into range at mount.
	Start int

	// Gap is the spacing between adjacent slides, in pixels. Padding is
	// applied to both ends of the track.
	Gap     float64
	Padding float64

	// Height and HeightRatio size the list for vertical direction;
	// HeightRatio is relative to the track width.
	Height      float64
	HeightRatio float64

	// FixedWidth/FixedHeight force a per-slide size on the track axis.
	// AutoWidth/AutoHeight size each slide from its measured rect instead.
	FixedWidth  float64
	FixedHeight float64
	AutoWidth   bool
	AutoHeight  bool

	// Clones overrides the derived clone count for loop carousels. Negative
	// means derive from layout; zero is treated as unset.
	Clones int

	// DragFree marks flick-style drag configurations; FlickMaxPages bounds
	// how many pages a single flick may traverse, which widens the clone
	// window accordingly.
	DragFree      bool
	FlickMaxPages int

	// Rewind makes ">"/"<" wrap around at the ends of non-loop carousels.
	Rewind bool

	// Speed is the transition duration in seconds; zero or negative after an
	// explicit update means instant. Easing shapes the transition tween.
	Speed  float32
	Easing ease.TweenFunc

	// Interval is the autoplay period in seconds.
	Interval float32

	// ResizeThrottle is the trailing window, in seconds, that collapses
	// bursts of geometry changes into one layout pass.
	ResizeThrottle float32
}

// DefaultOptions returns the option set every instance starts from.
func DefaultOptions() Options {
	return Options{
		Type:           TypeSlide,
		Direction:      DirLTR,
		PerPage:        1,
		Clones:         -1,
		FlickMaxPages:  1,
		Speed:          0.4,
		Easing:         ease.OutQuad,
		Interval:       3,
		ResizeThrottle: 0.1,
	}
}

// merge overlays the non-zero fields of over onto o and returns the result.
func (o Options) merge(over Options) Options {
	if over.Type != 0 {
		o.Type = over.Type
	}
	if over.Direction != 0 {
		o.Direction = over.Direction
	}
	if over.PerPage != 0 {
		o.PerPage = over.PerPage
	}
	if over.PerMove != 0 {
		o.PerMove = over.PerMove
	}
	if over.Start != 0 {
		o.Start = over.Start
	}
	if over.Gap != 0 {
		o.Gap = over.Gap
	}
	if over.Padding != 0 {
		o.Padding = over.Padding
	}
	if over.Height != 0 {
		o.Height = over.Height
	}
	if over.HeightRatio != 0 {
		o.HeightRatio = over.HeightRatio
	}
	if over.FixedWidth != 0 {
		o.FixedWidth = over.FixedWidth
	}
	if over.FixedHeight != 0 {
		o.FixedHeight = over.FixedHeight
	}
	if over.AutoWidth {
		o.AutoWidth = true
	}
	if over.AutoHeight {
		o.AutoHeight = true
	}
	if over.Clones != 0 {
		o.Clones = over.Clones
	}
	if over.DragFree {
		o.DragFree = true
	}
	if over.FlickMaxPages != 0 {
		o.FlickMaxPages = over.FlickMaxPages
	}
	if over.Rewind {
		o.Rewind = true
	}
	if over.Speed != 0 {
		o.Speed = over.Speed
	}
	if over.Easing != nil {
		o.Easing = over.Easing
	}
	if over.Interval != 0 {
		o.Interval = over.Interval
	}
	if over.ResizeThrottle != 0 {
		o.ResizeThrottle = over.ResizeThrottle
	}
	return o
}

// Validate reports configuration errors. These are fatal at construction and
// at option updates; nothing degrades silently.
func (o Options) Validate() error {
	if o.PerPage < 1 {
		return fmt.Errorf("glider: perPage must be at least 1, got %d", o.PerPage)
	}
	if o.Direction == DirTTB && o.Height <= 0 && o.HeightRatio <= 0 && o.FixedHeight <= 0 {
		return fmt.Errorf("glider: vertical direction requires height, heightRatio, or fixedHeight")
	}
	return nil
}

// ApplyJSON merges an embedded JSON options payload into o, touching only
// the fields present in the payload. A malformed payload or an unknown
// type/direction value is reported as an error; nothing is applied then.
func (o *Options) ApplyJSON(raw string) error {
	if !gjson.Valid(raw) {
		return fmt.Errorf("glider: invalid options payload: %.40q", raw)
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return fmt.Errorf("glider: options payload must be a JSON object")
	}

	parsed := *o
	if v := doc.Get("type"); v.Exists() {
		t, err := ParseSliderType(v.String())
		if err != nil {
			return err
		}
		parsed.Type = t
	}
	if v := doc.Get("direction"); v.Exists() {
		d, err := ParseDirection(v.String())
		if err != nil {
			return err
		}
		parsed.Direction = d
	}
	if v := doc.Get("perPage"); v.Exists() {
		parsed.PerPage = int(v.Int())
	}
	if v := doc.Get("perMove"); v.Exists() {
		parsed.PerMove = int(v.Int())
	}
	if v := doc.Get("start"); v.Exists() {
		parsed.Start = int(v.Int())
	}
	if v := doc.Get("gap"); v.Exists() {
		parsed.Gap = v.Float()
	}
	if v := doc.Get("padding"); v.Exists() {
		parsed.Padding = v.Float()
	}
	if v := doc.Get("height"); v.Exists() {
		parsed.Height = v.Float()
	}
	if v := doc.Get("heightRatio"); v.Exists() {
		parsed.HeightRatio = v.Float()
	}
	if v := doc.Get("fixedWidth"); v.Exists() {
		parsed.FixedWidth = v.Float()
	}
	if v := doc.Get("fixedHeight"); v.Exists() {
		parsed.FixedHeight = v.Float()
	}
	if v := doc.Get("autoWidth"); v.Exists() {
		parsed.AutoWidth = v.Bool()
	}
	if v := doc.Get("autoHeight"); v.Exists() {
		parsed.AutoHeight = v.Bool()
	}
	if v := doc.Get("clones"); v.Exists() {
		parsed.Clones = int(v.Int())
	}
	if v := doc.Get("dragFree"); v.Exists() {
		parsed.DragFree = v.Bool()
	}
	if v := doc.Get("flickMaxPages"); v.Exists() {
		parsed.FlickMaxPages = int(v.Int())
	}
	if v := doc.Get("rewind"); v.Exists() {
		parsed.Rewind = v.Bool()
	}
	if v := doc.Get("speed"); v.Exists() {
		parsed.Speed = float32(v.Float())
	}
	if v := doc.Get("interval"); v.Exists() {
		parsed.Interval = float32(v.Float())
	}
	*o = parsed
	return nil
}

// OptionsFromJSON parses a payload over DefaultOptions.
func OptionsFromJSON(raw string) (Options, error) {
	o := DefaultOptions()
	if err := o.ApplyJSON(raw); err != nil {
		return Options{}, err
	}
	return o, nil
}

// ParseSliderType parses "slide", "loop", or "fade".
func ParseSliderType(s string) (SliderType, error) {
	switch s {
	case "slide":
		return TypeSlide, nil
	case "loop":
		return TypeLoop, nil
	case "fade":
		return TypeFade, nil
	default:
		return TypeSlide, fmt.Errorf("glider: unknown slider type %q", s)
	}
}

// ParseDirection parses "ltr", "rtl", or "ttb".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr":
		return DirLTR, nil
	case "rtl":
		return DirRTL, nil
	case "ttb":
		return DirTTB, nil
	default:
		return DirLTR, fmt.Errorf("glider: unknown direction %q", s)
	}
}
