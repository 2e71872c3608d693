package outjob

// ActionKind classifies what a container asks the host to do. The kind is
// decided once at parse time; dispatch handles it exhaustively.
type ActionKind int

const (
	// ActionUnknown marks a container whose action text was not
	// recognized. Unknown containers are skipped at dispatch, not
	// errors, so unrecognized or future fields in the output job format
	// don't break a run.
	ActionUnknown ActionKind = iota

	// ActionFolderGeneration writes generated files to a folder
	// destination.
	ActionFolderGeneration

	// ActionPdfPublish exports the container to PDF.
	ActionPdfPublish
)

func (k ActionKind) String() string {
	switch k {
	case ActionFolderGeneration:
		return "FolderGeneration"
	case ActionPdfPublish:
		return "PdfPublish"
	default:
		return "Unknown"
	}
}

// Container is one named entry of an output job specification.
type Container struct {
	Name string
	Kind ActionKind
}

// Containers is an insertion-ordered mapping of container name to action
// kind. A later container with a name seen before overwrites the earlier
// entry in place, keeping its original position.
type Containers struct {
	order  []string
	byName map[string]ActionKind
}

// Put inserts or overwrites the container named name.
func (c *Containers) Put(name string, kind ActionKind) {
	if c.byName == nil {
		c.byName = make(map[string]ActionKind)
	}
	if _, seen := c.byName[name]; !seen {
		c.order = append(c.order, name)
	}
	c.byName[name] = kind
}

// Get returns the action kind bound to name.
func (c *Containers) Get(name string) (ActionKind, bool) {
	k, ok := c.byName[name]
	return k, ok
}

// Len returns the number of distinct container names.
func (c *Containers) Len() int { return len(c.order) }

// All returns the containers in insertion order.
func (c *Containers) All() []Container {
	out := make([]Container, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Container{Name: name, Kind: c.byName[name]})
	}
	return out
}
