package checker

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/envchk/envchk/internal/config"
	"github.com/envchk/envchk/internal/envfile"
)

func TestCompare_AllPresent(t *testing.T) {
	example := envfile.Parse("DB_HOST=localhost\nDB_PORT=5432\nAPI_KEY=\n")
	actual := envfile.Parse("DB_HOST=db.prod.internal\nDB_PORT=5432\nAPI_KEY=sk_live_123\n")

	report := Compare(example, actual, Options{})

	want := []Row{
		{Name: "DB_HOST", Status: StatusOK, Default: "localhost"},
		{Name: "DB_PORT", Status: StatusOK, Default: "5432"},
		{Name: "API_KEY", Status: StatusOK, Default: ""},
	}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if !report.OK() {
		t.Error("Report should be OK when nothing is missing")
	}
	if report.Summary.Required != 3 {
		t.Errorf("Required = %d, want 3", report.Summary.Required)
	}
}

func TestCompare_Missing(t *testing.T) {
	example := envfile.Parse("DATABASE_URL=postgres://localhost/app\nSECRET_TOKEN=\n")
	actual := envfile.Parse("DATABASE_URL=postgres://prod/app\n")

	report := Compare(example, actual, Options{})

	want := []Row{
		{Name: "DATABASE_URL", Status: StatusOK, Default: "postgres://localhost/app"},
		{Name: "SECRET_TOKEN", Status: StatusMissing, Default: ""},
	}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if report.OK() {
		t.Error("Report should not be OK with a missing variable")
	}
	if report.Summary.Missing != 1 {
		t.Errorf("Missing = %d, want 1", report.Summary.Missing)
	}
}

func TestCompare_Empty(t *testing.T) {
	example := envfile.Parse("API_KEY=sk_test\n")
	actual := envfile.Parse("API_KEY=\n")

	report := Compare(example, actual, Options{WarnOnEmpty: true})

	want := []Row{{Name: "API_KEY", Status: StatusEmpty, Default: "sk_test"}}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	// Empty is a warning, never a failure.
	if !report.OK() {
		t.Error("Report should be OK when variables are only empty")
	}
	if report.Summary.Empty != 1 {
		t.Errorf("Empty = %d, want 1", report.Summary.Empty)
	}
}

func TestCompare_Optional(t *testing.T) {
	example := envfile.Parse("DEBUG=true # optional\nSENTRY_DSN= # optional\nDB_HOST=localhost\n")
	actual := envfile.Parse("DEBUG=false\nDB_HOST=db\n")

	report := Compare(example, actual, Options{})

	want := []Row{
		{Name: "DEBUG", Status: StatusOK, Default: "true", Optional: true},
		{Name: "SENTRY_DSN", Status: StatusOptional, Default: "", Optional: true},
		{Name: "DB_HOST", Status: StatusOK, Default: "localhost"},
	}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if !report.OK() {
		t.Error("Absent optional variables should not fail the check")
	}
	if report.Summary.OptionalSkipped != 1 {
		t.Errorf("OptionalSkipped = %d, want 1", report.Summary.OptionalSkipped)
	}
	// A present optional still counts toward the required total.
	if report.Summary.Required != 2 {
		t.Errorf("Required = %d, want 2", report.Summary.Required)
	}
}

func TestCompare_Extra(t *testing.T) {
	example := envfile.Parse("DB_HOST=localhost\n")
	actual := envfile.Parse("DB_HOST=db\nLOCAL_HACK=1\nANOTHER=2\n")

	report := Compare(example, actual, Options{})
	if len(report.Rows) != 1 {
		t.Errorf("Expected extras to be excluded by default, got %d rows", len(report.Rows))
	}

	report = Compare(example, actual, Options{IncludeExtra: true})

	want := []Row{
		{Name: "DB_HOST", Status: StatusOK, Default: "localhost"},
		{Name: "LOCAL_HACK", Status: StatusExtra},
		{Name: "ANOTHER", Status: StatusExtra},
	}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if report.Summary.Extra != 2 {
		t.Errorf("Extra = %d, want 2", report.Summary.Extra)
	}
	if !report.OK() {
		t.Error("Extras should not fail the check")
	}
	if report.Summary.Required != 1 {
		t.Errorf("Required = %d, want 1; extras must not count", report.Summary.Required)
	}
}

func TestCompare_AllMissing(t *testing.T) {
	example := envfile.Parse("REDIS_URL=redis://localhost:6379\nSTRIPE_KEY=\n")
	actual := envfile.Parse("")

	report := Compare(example, actual, Options{})

	want := []Row{
		{Name: "REDIS_URL", Status: StatusMissing, Default: "redis://localhost:6379"},
		{Name: "STRIPE_KEY", Status: StatusMissing, Default: ""},
	}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if report.Summary.Missing != 2 {
		t.Errorf("Missing = %d, want 2", report.Summary.Missing)
	}
	if report.Summary.Required != 2 {
		t.Errorf("Required = %d, want 2", report.Summary.Required)
	}
}

func TestCompare_EmptyExample(t *testing.T) {
	example := envfile.Parse("")
	actual := envfile.Parse("WHATEVER=1\n")

	report := Compare(example, actual, Options{})
	if len(report.Rows) != 0 {
		t.Errorf("Empty example should yield no rows, got %d", len(report.Rows))
	}
	if !report.OK() {
		t.Error("Empty example should be OK")
	}
}

func TestCompare_IgnoredMissing(t *testing.T) {
	example := envfile.Parse("CUSTOM_VAR=\nAWS_REGION=eu-west-1\nDATABASE_URL=\n")
	actual := envfile.Parse("DATABASE_URL=postgres://prod/app\n")

	cfg := &config.Config{
		Ignores: config.IgnoresConfig{
			Missing: []string{"CUSTOM_VAR", "AWS_*"},
		},
	}

	report := Compare(example, actual, Options{Config: cfg})

	want := []Row{{Name: "DATABASE_URL", Status: StatusOK, Default: ""}}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if report.Summary.IgnoredMissing != 2 {
		t.Errorf("IgnoredMissing = %d, want 2", report.Summary.IgnoredMissing)
	}
	if !report.OK() {
		t.Error("Ignored missing variables should not fail the check")
	}
}

func TestCompare_IgnoredExtra(t *testing.T) {
	example := envfile.Parse("DB_HOST=localhost\n")
	actual := envfile.Parse("DB_HOST=db\nVITE_APP_TITLE=dev\nSTRAY=1\n")

	cfg := &config.Config{
		Ignores: config.IgnoresConfig{
			Extra: []string{"VITE_*"},
		},
	}

	report := Compare(example, actual, Options{IncludeExtra: true, Config: cfg})

	want := []Row{
		{Name: "DB_HOST", Status: StatusOK, Default: "localhost"},
		{Name: "STRAY", Status: StatusExtra},
	}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}

	if report.Summary.IgnoredExtra != 1 {
		t.Errorf("IgnoredExtra = %d, want 1", report.Summary.IgnoredExtra)
	}
}

func TestCompare_PresentIgnoredStaysVisible(t *testing.T) {
	// An ignore rule suppresses absence reporting only; a variable that
	// is actually set still gets its normal row.
	example := envfile.Parse("AWS_REGION=eu-west-1\n")
	actual := envfile.Parse("AWS_REGION=us-east-1\n")

	cfg := &config.Config{
		Ignores: config.IgnoresConfig{Missing: []string{"AWS_*"}},
	}

	report := Compare(example, actual, Options{Config: cfg})

	want := []Row{{Name: "AWS_REGION", Status: StatusOK, Default: "eu-west-1"}}
	if diff := cmp.Diff(want, report.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if report.Summary.IgnoredMissing != 0 {
		t.Errorf("IgnoredMissing = %d, want 0", report.Summary.IgnoredMissing)
	}
}

func TestCompare_Deterministic(t *testing.T) {
	example := envfile.Parse("A=1\nB= # optional\nC=3\n")
	actual := envfile.Parse("A=x\nC=\nD=extra\n")
	opts := Options{IncludeExtra: true}

	first := Compare(example, actual, opts)
	second := Compare(example, actual, opts)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Compare() disagreed (-first +second):\n%s", diff)
	}
}

func TestReport_Names(t *testing.T) {
	example := envfile.Parse("A=1\nB=2\nC=3\n")
	actual := envfile.Parse("A=x\nB=\nD=extra\n")

	report := Compare(example, actual, Options{IncludeExtra: true})

	if diff := cmp.Diff([]string{"C"}, report.Names(StatusMissing)); diff != "" {
		t.Errorf("Names(missing) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B"}, report.Names(StatusEmpty)); diff != "" {
		t.Errorf("Names(empty) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"D"}, report.Names(StatusExtra)); diff != "" {
		t.Errorf("Names(extra) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{}, report.Names(StatusOptional)); diff != "" {
		t.Errorf("Names(optional) mismatch (-want +got):\n%s", diff)
	}
}
