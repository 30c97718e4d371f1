package helper

// Track is one row of stress boxes on the sheet. Each box is submitted as a
// form field named Key followed by the box number, e.g. "h3".
type Track struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Boxes int    `yaml:"boxes"`
}

// Consequence is one free-text consequence slot, submitted under Key.
type Consequence struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Sheet describes the layout of the helper form: which stress tracks and
// consequence slots exist, and what the fate-point field starts at.
type Sheet struct {
	Title             string        `yaml:"title"`
	Tracks            []Track       `yaml:"tracks"`
	Consequences      []Consequence `yaml:"consequences"`
	DefaultFatePoints string        `yaml:"defaultFatePoints"`
}

// State is everything the helper form carries between submissions. Values
// are the raw submitted strings; nothing here is validated or stored.
type State struct {
	Boxes        map[string]string // box field name ("h1") -> submitted marker
	Consequences map[string]string // consequence key ("mild") -> text
	FatePoints   string
}

// Result is the outcome of one helper submission: the echoed state plus a
// fresh roll.
type Result struct {
	State  State
	Total  int
	Roll   string // formatted total, e.g. "+2"
	Ladder string // ladder adjective for Total
	Faces  []string
}
