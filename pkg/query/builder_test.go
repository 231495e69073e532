package query_test

import (
	"testing"

	"github.com/agentdesk/agentdesk/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "agents", "a").
		Project("id", "Id").
		Project("name", "Name").
		Project("category", "Category")
}

func TestBuilder_BuildCount(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildCount()

	want := "SELECT COUNT(*) FROM public.agents a"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("len(args) = %d, want 0", len(args))
	}
}

func TestBuilder_BuildCount_WithConditions(t *testing.T) {
	name := "review"
	sql, args := query.NewBuilder(testProjection()).
		WhereContains("Name", &name).
		WhereEquals("Category", "writing").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.agents a WHERE a.name ILIKE $1 AND a.category = $2"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("len(args) = %d, want 2", len(args))
	}
	if args[0] != "%review%" {
		t.Errorf("args[0] = %v, want %q", args[0], "%review%")
	}
	if args[1] != "writing" {
		t.Errorf("args[1] = %v, want %q", args[1], "writing")
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		BuildPage(2, 10)

	want := "SELECT a.id, a.name, a.category FROM public.agents a ORDER BY a.name ASC LIMIT 10 OFFSET 10"
	if sql != want {
		t.Errorf("BuildPage() = %q, want %q", sql, want)
	}
}

func TestBuilder_BuildPage_ExplicitSortOverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		OrderByFields([]query.SortField{{Field: "Category", Descending: true}}).
		BuildPage(1, 20)

	want := "SELECT a.id, a.name, a.category FROM public.agents a ORDER BY a.category DESC LIMIT 20 OFFSET 0"
	if sql != want {
		t.Errorf("BuildPage() = %q, want %q", sql, want)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("Id", "abc")

	want := "SELECT a.id, a.name, a.category FROM public.agents a WHERE a.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v, want [abc]", args)
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "tech"
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(&search, "Name", "Category").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.agents a WHERE (a.name ILIKE $1 OR a.category ILIKE $2)"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("len(args) = %d, want 2", len(args))
	}
	for i, arg := range args {
		if arg != "%tech%" {
			t.Errorf("args[%d] = %v, want %q", i, arg, "%tech%")
		}
	}
}

func TestBuilder_WhereSearch_NilIgnored(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(nil, "Name").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.agents a"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("len(args) = %d, want 0", len(args))
	}
}

func TestBuilder_WhereContains_EmptyIgnored(t *testing.T) {
	empty := ""
	sql, _ := query.NewBuilder(testProjection()).
		WhereContains("Name", &empty).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.agents a"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
}
