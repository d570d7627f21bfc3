package pagination

import "testing"

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	if p.Page != 1 {
		t.Errorf("page = %d, want 1", p.Page)
	}
	if p.PerPage != 100 {
		t.Errorf("per_page = %d, want 100", p.PerPage)
	}

	p = &PaginationParams{Page: -3, PerPage: 0}
	p.Validate()
	if p.Page != 1 || p.PerPage != 20 {
		t.Errorf("got page %d per_page %d, want defaults", p.Page, p.PerPage)
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("offset = %d, want 40", got)
	}
}

func TestNewPaginationComputesPagesAndFlags(t *testing.T) {
	pg := NewPagination(2, 10, 35)
	if pg.TotalPages != 4 {
		t.Errorf("total_pages = %d, want 4", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Error("page 2 of 4 should have both next and prev")
	}

	pg = NewPagination(1, 10, 0)
	if pg.TotalPages != 0 || pg.HasNext || pg.HasPrev {
		t.Errorf("empty result: %+v", pg)
	}
}
