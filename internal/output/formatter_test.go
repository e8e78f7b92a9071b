package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rpgo/compound-calculator/internal/domain"
)

func buildTestResults() []domain.Result {
	sc := domain.Scenario{
		Name:              "Savings",
		Principal:         decimal.RequireFromString("10000.00"),
		AnnualRatePercent: decimal.RequireFromString("5.25"),
		Periods:           3,
	}
	return []domain.Result{{
		Scenario:    sc,
		FutureValue: decimal.RequireFromString("11659.13453125"),
		Schedule: []domain.YearValue{
			{Year: 1, Value: decimal.RequireFromString("10525")},
			{Year: 2, Value: decimal.RequireFromString("11077.5625")},
			{Year: 3, Value: decimal.RequireFromString("11659.13453125")},
		},
	}}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		f := GetFormatterByName(name)
		if f == nil {
			t.Fatalf("GetFormatterByName(%q) returned nil", name)
		}
		if f.Name() != name {
			t.Fatalf("formatter %q reports name %q", name, f.Name())
		}
	}
	if GetFormatterByName("does-not-exist") != nil {
		t.Fatalf("expected nil for unknown format")
	}
}

func TestFormatterAliases(t *testing.T) {
	cases := map[string]string{
		"pretty":  "json",
		"summary": "csv",
		"text":    "console",
		"  JSON ": "json",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		if f == nil || f.Name() != want {
			t.Fatalf("alias %q did not resolve to %q", alias, want)
		}
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 formatter names, got %v", names)
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"console", "csv", "json"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %v", want, names)
		}
	}
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(buildTestResults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(data)
	want := "Savings\n" +
		"Initial Principal: $10,000.00\n" +
		"Future Value:    $11,659.13\n"
	if got != want {
		t.Fatalf("console output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestConsoleFormatterWithSchedule(t *testing.T) {
	data, err := ConsoleFormatter{ShowSchedule: true}.Format(buildTestResults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(data)
	want := "Savings\n" +
		"Initial Principal: $10,000.00\n" +
		"Future Value:    $11,659.13\n" +
		"Year 1: $10,525.00\n" +
		"Year 2: $11,077.56\n" +
		"Year 3: $11,659.13\n"
	if got != want {
		t.Fatalf("console schedule output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(buildTestResults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(data)
	for _, want := range []string{`"name": "Savings"`, `"future_value": "11659.13453125"`, `"year": 3`} {
		if !strings.Contains(got, want) {
			t.Fatalf("JSON output missing %q:\n%s", want, got)
		}
	}
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(buildTestResults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{
		"Scenario,Principal,AnnualRatePercent,Periods,Year,Value",
		"Savings,10000.00,5.25,3,1,10525.00",
		"Savings,10000.00,5.25,3,2,11077.56",
		"Savings,10000.00,5.25,3,3,11659.13",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected header plus one row per year, got %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d mismatch:\ngot  %q\nwant %q", i, lines[i], want[i])
		}
	}
}

func TestCSVFormatterZeroPeriods(t *testing.T) {
	results := []domain.Result{{
		Scenario: domain.Scenario{
			Name:              "Flat",
			Principal:         decimal.RequireFromString("100"),
			AnnualRatePercent: decimal.RequireFromString("5"),
			Periods:           0,
		},
		FutureValue: decimal.RequireFromString("100"),
	}}
	data, err := CSVFormatter{}.Format(results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus a single year-0 row, got %v", lines)
	}
	if lines[1] != "Flat,100.00,5,0,0,100.00" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}
