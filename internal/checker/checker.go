package checker

import (
	"github.com/envchk/envchk/internal/config"
	"github.com/envchk/envchk/internal/envfile"
)

// Options controls how Compare builds its report.
type Options struct {
	IncludeExtra bool           // report variables set in .env but absent from the example
	WarnOnEmpty  bool           // emphasize empty rows when rendering; classification is unaffected
	Config       *config.Config // ignore rules, may be nil
}

// Compare checks the variables in actual against the declarations in
// example and builds a Report.
// example: the parsed template (.env.example)
// actual: the parsed .env
// Rows follow the example's declaration order, then extras in the .env
// order. Names matched by an ignore rule produce no row and are only
// counted.
func Compare(example, actual *envfile.File, opts Options) Report {
	report := Report{Rows: []Row{}}

	// First pass: every example declaration.
	for _, name := range example.Names() {
		decl, _ := example.Get(name)
		got, present := actual.Get(name)

		switch {
		case present && !got.Empty:
			report.addRow(Row{Name: name, Status: StatusOK, Default: decl.Value, Optional: decl.Optional})
		case present:
			report.addRow(Row{Name: name, Status: StatusEmpty, Default: decl.Value, Optional: decl.Optional})
		case opts.ignoreMissing(name):
			report.Summary.IgnoredMissing++
		case decl.Optional:
			report.addRow(Row{Name: name, Status: StatusOptional, Default: decl.Value, Optional: true})
		default:
			report.addRow(Row{Name: name, Status: StatusMissing, Default: decl.Value})
		}
	}

	// Second pass: variables set in .env that the example never declares.
	if opts.IncludeExtra {
		for _, name := range actual.Names() {
			if example.Has(name) {
				continue
			}
			if opts.ignoreExtra(name) {
				report.Summary.IgnoredExtra++
				continue
			}
			report.addRow(Row{Name: name, Status: StatusExtra})
		}
	}

	return report
}

// addRow appends a row and keeps the summary counts in step. Required
// counts the example-declared rows that are not optional skips.
func (r *Report) addRow(row Row) {
	r.Rows = append(r.Rows, row)

	switch row.Status {
	case StatusMissing:
		r.Summary.Missing++
	case StatusEmpty:
		r.Summary.Empty++
	case StatusOptional:
		r.Summary.OptionalSkipped++
	case StatusExtra:
		r.Summary.Extra++
	}

	if row.Status != StatusOptional && row.Status != StatusExtra {
		r.Summary.Required++
	}
}

func (o Options) ignoreMissing(name string) bool {
	return o.Config != nil && o.Config.ShouldIgnoreMissing(name)
}

func (o Options) ignoreExtra(name string) bool {
	return o.Config != nil && o.Config.ShouldIgnoreExtra(name)
}
