package pagination

import "testing"

func TestDefaults(t *testing.T) {
	t.Run("fills_zero_values", func(t *testing.T) {
		req := PageRequest{}
		req.Defaults()
		if req.Page != 1 {
			t.Errorf("expected page 1, got %d", req.Page)
		}
		if req.PageSize != 20 {
			t.Errorf("expected page size 20, got %d", req.PageSize)
		}
	})

	t.Run("keeps_explicit_values", func(t *testing.T) {
		req := PageRequest{Page: 3, PageSize: 50}
		req.Defaults()
		if req.Page != 3 || req.PageSize != 50 {
			t.Errorf("expected 3/50, got %d/%d", req.Page, req.PageSize)
		}
	})
}

func TestOffset(t *testing.T) {
	cases := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{5, 10, 40},
	}
	for _, tc := range cases {
		req := PageRequest{Page: tc.page, PageSize: tc.pageSize}
		if got := req.Offset(); got != tc.want {
			t.Errorf("page %d size %d: expected offset %d, got %d", tc.page, tc.pageSize, tc.want, got)
		}
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("computes_total_pages", func(t *testing.T) {
		resp := NewPageResponse([]string{"a", "b"}, 1, 20, 41)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", resp.TotalPages)
		}
		if resp.TotalItems != 41 {
			t.Errorf("expected 41 total items, got %d", resp.TotalItems)
		}
	})

	t.Run("nil_data_becomes_empty_slice", func(t *testing.T) {
		resp := NewPageResponse[string](nil, 1, 20, 0)
		if resp.Data == nil {
			t.Error("expected non-nil data slice")
		}
		if len(resp.Data) != 0 {
			t.Errorf("expected empty data, got %d items", len(resp.Data))
		}
	})
}
