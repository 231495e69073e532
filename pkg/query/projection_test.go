package query_test

import (
	"testing"

	"github.com/agentdesk/agentdesk/pkg/query"
)

func TestNewProjectionMap(t *testing.T) {
	pm := query.NewProjectionMap("public", "agents", "a")

	if pm.Alias() != "a" {
		t.Errorf("Alias() = %q, want %q", pm.Alias(), "a")
	}

	if pm.Table() != "public.agents a" {
		t.Errorf("Table() = %q, want %q", pm.Table(), "public.agents a")
	}
}

func TestProjectionMap_Project(t *testing.T) {
	pm := query.NewProjectionMap("public", "agents", "a").
		Project("id", "Id").
		Project("name", "Name").
		Project("created_at", "CreatedAt")

	tests := []struct {
		viewName string
		wantCol  string
	}{
		{"Id", "a.id"},
		{"Name", "a.name"},
		{"CreatedAt", "a.created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.viewName, func(t *testing.T) {
			col := pm.Column(tt.viewName)
			if col != tt.wantCol {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, col, tt.wantCol)
			}
		})
	}
}

func TestProjectionMap_Column_UnknownReturnsInput(t *testing.T) {
	pm := query.NewProjectionMap("public", "agents", "a").
		Project("id", "Id")

	col := pm.Column("Unknown")
	if col != "Unknown" {
		t.Errorf("Column(%q) = %q, want %q", "Unknown", col, "Unknown")
	}
}

func TestProjectionMap_Columns(t *testing.T) {
	pm := query.NewProjectionMap("public", "agents", "a").
		Project("id", "Id").
		Project("name", "Name")

	cols := pm.Columns()
	want := "a.id, a.name"

	if cols != want {
		t.Errorf("Columns() = %q, want %q", cols, want)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []query.SortField
	}{
		{
			name: "empty expression",
			expr: "",
			want: nil,
		},
		{
			name: "single ascending",
			expr: "name",
			want: []query.SortField{{Field: "name"}},
		},
		{
			name: "single descending",
			expr: "-created_at",
			want: []query.SortField{{Field: "created_at", Descending: true}},
		},
		{
			name: "mixed with whitespace",
			expr: " -created_at , name ",
			want: []query.SortField{
				{Field: "created_at", Descending: true},
				{Field: "name"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.expr)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
