package deck

import "fmt"

// Kind identifies how a slide's payload is rendered.
type Kind string

const (
	KindTheory  Kind = "theory"
	KindChart   Kind = "chart"
	KindProcess Kind = "process"
	KindMap     Kind = "map"
)

// Section is one block of theory content.
type Section struct {
	Heading string
	Body    string
	Bullets []string
}

// ChartPoint is one data point in a chart slide. Secondary series may be
// zero for single-series charts (pie).
type ChartPoint struct {
	Label  string
	Value1 int
	Value2 int
	Value3 int
}

// ChartKind selects the chart rendering style.
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartPie  ChartKind = "pie"
)

// ChartData is the payload for a chart slide.
type ChartData struct {
	Kind   ChartKind
	Series []string // legend names for Value1..Value3
	Points []ChartPoint
}

// ProcessStep is one stage in a process slide.
type ProcessStep struct {
	Step        int
	Label       string
	Description string
}

// MapFeature is one labelled feature on a map-comparison slide.
type MapFeature struct {
	Name     string
	Location string
	Status   string // "unchanged", "expanded", "removed", "new"
}

// MapData is the payload for a map slide comparing two years.
type MapData struct {
	Year1    int
	Year2    int
	Features []MapFeature
}

// Slide is one unit of instructional content. Exactly one payload field is
// populated, matching Kind.
type Slide struct {
	ID       int
	Title    string
	Category string
	Kind     Kind

	Sections []Section
	Chart    *ChartData
	Process  []ProcessStep
	Map      *MapData
}

// Catalog is an immutable, ordered collection of slides. IDs are 0..N-1 and
// double as positions.
type Catalog struct {
	slides []Slide
}

// NewCatalog validates the slides and returns a Catalog.
func NewCatalog(slides []Slide) (*Catalog, error) {
	if err := validate(slides); err != nil {
		return nil, err
	}
	return &Catalog{slides: slides}, nil
}

// Default returns the built-in IELTS Writing Task 1 deck.
// The seed content is validated by construction; a failure here is a
// programming error.
func Default() *Catalog {
	c, err := NewCatalog(seedSlides())
	if err != nil {
		panic(fmt.Sprintf("deck: invalid seed content: %v", err))
	}
	return c
}

// Len returns the number of slides.
func (c *Catalog) Len() int {
	return len(c.slides)
}

// ByID returns the slide with the given id. Returns an error for ids outside
// 0..Len()-1; callers must treat that as invalid input, not render anything.
func (c *Catalog) ByID(id int) (Slide, error) {
	if id < 0 || id >= len(c.slides) {
		return Slide{}, fmt.Errorf("deck: no slide with id %d (catalog has %d slides)", id, len(c.slides))
	}
	return c.slides[id], nil
}

// Next returns the id following id, clamped to the last slide.
func (c *Catalog) Next(id int) int {
	if id+1 >= len(c.slides) {
		return len(c.slides) - 1
	}
	return id + 1
}

// Prev returns the id preceding id, clamped to 0.
func (c *Catalog) Prev(id int) int {
	if id-1 < 0 {
		return 0
	}
	return id - 1
}

// Categories returns the distinct category labels in order of first
// appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.slides {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// ByCategory returns the slides in the given category, in deck order.
func (c *Catalog) ByCategory(category string) []Slide {
	var out []Slide
	for _, s := range c.slides {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Slides returns all slides in order.
func (c *Catalog) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// validate checks the catalog invariant: every id 0..N-1 present exactly
// once, at its own index, with a payload matching its kind.
func validate(slides []Slide) error {
	for i, s := range slides {
		if s.ID != i {
			return fmt.Errorf("slide at position %d has id %d", i, s.ID)
		}
		if s.Title == "" {
			return fmt.Errorf("slide %d has empty title", s.ID)
		}
		if s.Category == "" {
			return fmt.Errorf("slide %d has empty category", s.ID)
		}
		switch s.Kind {
		case KindTheory:
			if len(s.Sections) == 0 {
				return fmt.Errorf("theory slide %d has no sections", s.ID)
			}
		case KindChart:
			if s.Chart == nil || len(s.Chart.Points) == 0 {
				return fmt.Errorf("chart slide %d has no data", s.ID)
			}
		case KindProcess:
			if len(s.Process) == 0 {
				return fmt.Errorf("process slide %d has no steps", s.ID)
			}
		case KindMap:
			if s.Map == nil || len(s.Map.Features) == 0 {
				return fmt.Errorf("map slide %d has no features", s.ID)
			}
		default:
			return fmt.Errorf("slide %d has unknown kind %q", s.ID, s.Kind)
		}
	}
	return nil
}
