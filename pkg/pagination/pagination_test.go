package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(target string) Params {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		target string
		limit  int
		offset int
	}{
		{"/?limit=10&offset=40", 10, 40},
		{"/", DefaultLimit, 0},
		{"/?limit=0", DefaultLimit, 0},
		{"/?limit=-5&offset=-3", DefaultLimit, 0},
		{"/?limit=500", MaxLimit, 0},
		{"/?limit=abc&offset=xyz", DefaultLimit, 0},
	}
	for _, tt := range tests {
		p := paramsFor(tt.target)
		if p.Limit != tt.limit || p.Offset != tt.offset {
			t.Errorf("%s: got limit=%d offset=%d, want %d/%d", tt.target, p.Limit, p.Offset, tt.limit, tt.offset)
		}
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]int{1, 2, 3}, 50, 20, 0)
	if !resp.HasMore {
		t.Error("expected more pages")
	}
	resp = NewResponse([]int{1}, 10, 20, 0)
	if resp.HasMore {
		t.Error("expected no more pages")
	}
}

func TestParamsPaging(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}
	if !p.HasNext(100) {
		t.Error("expected a next page at 40/100")
	}
	if p.HasNext(60) {
		t.Error("expected no next page at 40+20 of 60")
	}
	if got := p.NextOffset(); got != 60 {
		t.Errorf("NextOffset = %d, want 60", got)
	}
}
