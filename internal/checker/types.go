package checker

// Status classifies one report row.
type Status string

const (
	StatusOK       Status = "ok"       // declared and set
	StatusMissing  Status = "missing"  // required but absent from .env
	StatusEmpty    Status = "empty"    // present but blank
	StatusExtra    Status = "extra"    // present but never declared in the example
	StatusOptional Status = "optional" // optional in the example and absent
)

// Row is the verdict for a single variable.
type Row struct {
	Name     string `json:"variable"`
	Status   Status `json:"status"`
	Default  string `json:"default"`  // the example file's value, "" if none
	Optional bool   `json:"optional"` // the example marked it "# optional"
}

// Summary aggregates row counts for the footer and the exit decision.
type Summary struct {
	Required        int `json:"required"`
	Missing         int `json:"missing"`
	Empty           int `json:"empty"`
	OptionalSkipped int `json:"optional_skipped"`
	Extra           int `json:"extra"`
	IgnoredMissing  int `json:"ignored_missing"`
	IgnoredExtra    int `json:"ignored_extra"`
}

// Report contains the complete comparison results
type Report struct {
	Rows        []Row
	Summary     Summary
	EnvPath     string
	ExamplePath string
}

// OK reports whether the env file satisfies the example. Empty values
// never fail a check; only missing required variables do.
func (r Report) OK() bool {
	return r.Summary.Missing == 0
}

// Names returns the names of rows with the given status, in row order.
// The slice is always non-nil so it serializes as a JSON array.
func (r Report) Names(status Status) []string {
	out := []string{}
	for _, row := range r.Rows {
		if row.Status == status {
			out = append(out, row.Name)
		}
	}
	return out
}
