package helpers

import (
	"errors"
	"net/http"

	"reqres/internal/domain"
)

// List response styles.
const (
	ListStylePage   = "page"
	ListStyleReqres = "reqres"
)

// Support is the promotional block reqres appends to its list responses.
// swagger:model Support
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// DefaultSupport is the support block the public reqres service returns.
var DefaultSupport = Support{
	URL:  "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral",
	Text: "Tired of writing endless social media content? Let Content Caddy generate it for you.",
}

// PageResponse is the page/size list shape.
// swagger:model PageResponse
type PageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// ReqresPageResponse is the list shape of the public reqres service.
// swagger:model ReqresPageResponse
type ReqresPageResponse[T any] struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []T     `json:"data"`
	Support    Support `json:"support"`
}

func rawParam(r *http.Request, name string) domain.RawParam {
	q := r.URL.Query()
	return domain.RawParam{Value: q.Get(name), Present: q.Has(name)}
}

// ParsePageRequest reads page and size (or its alias per_page) from the query
// string. Unlike a silent clamp, bad values come back as a *domain.ValidationFault.
func ParsePageRequest(r *http.Request) (domain.PageRequest, error) {
	sizeName := "size"
	size := rawParam(r, sizeName)
	if !size.Present {
		if alias := rawParam(r, "per_page"); alias.Present {
			sizeName, size = "per_page", alias
		}
	}
	req, err := domain.NewPageRequest(rawParam(r, "page"), size)
	var fault *domain.ValidationFault
	if errors.As(err, &fault) && fault.Field == "size" {
		fault.Field = sizeName
	}
	return req, err
}

// FaultToFieldError converts a pagination fault to a 422 entry located in the query.
func FaultToFieldError(f *domain.ValidationFault) FieldError {
	return FieldError{
		Type:  f.Type(),
		Loc:   []string{"query", f.Field},
		Msg:   f.Msg,
		Input: f.Input,
	}
}

// NewListResponse renders a page in the requested style.
func NewListResponse[T any](style string, res domain.PageResult[T]) any {
	if style == ListStyleReqres {
		return ReqresPageResponse[T]{
			Page:       res.Page,
			PerPage:    res.Size,
			Total:      res.Total,
			TotalPages: res.Pages,
			Data:       res.Items,
			Support:    DefaultSupport,
		}
	}
	return PageResponse[T]{
		Items: res.Items,
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
		Pages: res.Pages,
	}
}
