package filters

import (
	"testing"

	"github.com/custodia-labs/maude-cli/internal/core/domain"
)

// mockStage is a test stage that drops rows with a given report ID.
type mockStage struct {
	name string
	drop string
}

func (m *mockStage) Name() string {
	return m.name
}

func (m *mockStage) Apply(table domain.Table) domain.Table {
	return table.Filter(func(r domain.Row) bool { return r.ReportID != m.drop })
}

func (m *mockStage) Describe(result domain.Table) string {
	return m.name
}

func rowWith(reportID, flag, problems string) domain.Row {
	r := domain.NewRow()
	r.ReportID = reportID
	r.AdverseEventFlag = flag
	r.ProductProblems = problems
	return r
}

func TestNewChain(t *testing.T) {
	c := NewChain()
	if c == nil {
		t.Fatal("expected non-nil chain")
	}
	if c.Len() != 0 {
		t.Errorf("expected 0 stages, got %d", c.Len())
	}
}

func TestChain_Add(t *testing.T) {
	c := NewChain()
	c.Add(&mockStage{name: "test"})

	if c.Len() != 1 {
		t.Errorf("expected 1 stage, got %d", c.Len())
	}
	if names := c.Names(); len(names) != 1 || names[0] != "test" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestChain_Apply_EmptyChain(t *testing.T) {
	table := domain.NewTable([]domain.Row{rowWith("1", "y", "")})

	got, criteria := NewChain().Apply(table)

	if got.Len() != 1 {
		t.Errorf("expected 1 row, got %d", got.Len())
	}
	if len(criteria) != 0 {
		t.Errorf("expected no criteria, got %v", criteria)
	}
}

func TestChain_Apply_RunsStagesInOrder(t *testing.T) {
	table := domain.NewTable([]domain.Row{
		rowWith("1", "y", ""),
		rowWith("2", "y", ""),
		rowWith("3", "y", ""),
	})
	c := NewChain(&mockStage{name: "first", drop: "1"}, &mockStage{name: "second", drop: "3"})

	got, criteria := c.Apply(table)

	if got.Len() != 1 || got.Rows()[0].ReportID != "2" {
		t.Errorf("unexpected rows: %+v", got.Rows())
	}
	if len(criteria) != 2 || criteria[0] != "first" || criteria[1] != "second" {
		t.Errorf("unexpected criteria: %v", criteria)
	}
	if table.Len() != 3 {
		t.Errorf("input table was modified: %d rows", table.Len())
	}
}
