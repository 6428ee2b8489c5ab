// Package output - Formatter tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"nava-ops/core/pricing"
	"nava-ops/core/types"
)

func testReport() *Report {
	calc := pricing.NewCalculator(pricing.Default())
	return &Report{
		PlanName:    "standard",
		Breakdown:   calc.Breakdown(5),
		GeneratedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("yaml"); err == nil {
		t.Error("unknown format was accepted")
	}
	for _, f := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		formatter, err := New(f)
		if err != nil {
			t.Errorf("New(%s) failed: %v", f, err)
		}
		if formatter.Format() != f {
			t.Errorf("formatter for %s reports %s", f, formatter.Format())
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, testReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	bd, ok := decoded["breakdown"].(map[string]interface{})
	if !ok {
		t.Fatal("breakdown missing from JSON output")
	}
	if bd["monthly_total"] != "695" {
		t.Errorf("monthly_total = %v, want \"695\"", bd["monthly_total"])
	}
}

func TestCLIRenderMentionsTotals(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CLIFormatter{}).Render(&buf, testReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Monthly total", "Yearly total", "695"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownRenderIsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).Render(&buf, testReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "| **Monthly total** |") {
		t.Errorf("markdown output missing total row:\n%s", buf.String())
	}
}

func TestFormatAmountFallback(t *testing.T) {
	got := FormatAmount(types.Currency("XXX?"), decimal.RequireFromString("12.5"))
	if got != "XXX? 12.50" {
		t.Errorf("fallback rendering = %q, want %q", got, "XXX? 12.50")
	}
}
