package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used when a page is requested without a size.
const DefaultPageSize = 6

// Validation fault messages and types, worded like the reqres service reports them.
const (
	MsgIntParsing       = "Input should be a valid integer, unable to parse string as an integer"
	MsgGreaterThanEqual = "Input should be greater than or equal to 1"

	faultTypeIntParsing       = "int_parsing"
	faultTypeGreaterThanEqual = "greater_than_equal"
)

// FaultKind classifies a ValidationFault.
type FaultKind int

const (
	// FaultParse means the raw token was not an integer.
	FaultParse FaultKind = iota
	// FaultRange means the value was an integer below the allowed minimum.
	FaultRange
)

// ValidationFault reports a page or size parameter that could not be used.
// Input echoes the offending raw value verbatim.
type ValidationFault struct {
	Kind  FaultKind
	Field string
	Input string
	Msg   string
}

func (f *ValidationFault) Error() string {
	return fmt.Sprintf("%s: %s (input %q)", f.Field, f.Msg, f.Input)
}

// Type returns the machine-readable fault type.
func (f *ValidationFault) Type() string {
	if f.Kind == FaultParse {
		return faultTypeIntParsing
	}
	return faultTypeGreaterThanEqual
}

// RawParam is a query parameter as received: Present is false when the
// parameter was not supplied at all.
type RawParam struct {
	Value   string
	Present bool
}

// PageRequest holds the optional page and size of a listing. Nil means absent.
type PageRequest struct {
	Page *int
	Size *int
}

// NewPageRequest parses raw page and size tokens. Absent parameters stay nil;
// present ones must be integers >= 1.
func NewPageRequest(page, size RawParam) (PageRequest, error) {
	var req PageRequest
	if page.Present {
		v, err := parsePositive("page", page.Value)
		if err != nil {
			return PageRequest{}, err
		}
		req.Page = &v
	}
	if size.Present {
		v, err := parsePositive("size", size.Value)
		if err != nil {
			return PageRequest{}, err
		}
		req.Size = &v
	}
	return req, nil
}

// parsePositive accepts surrounding whitespace. Integers too large for int
// saturate to math.MaxInt: they are valid requests for a page past the end.
func parsePositive(field, raw string) (int, error) {
	token := strings.TrimSpace(raw)
	v, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(token, "-") {
			return 0, &ValidationFault{Kind: FaultRange, Field: field, Input: raw, Msg: MsgGreaterThanEqual}
		}
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, &ValidationFault{Kind: FaultParse, Field: field, Input: raw, Msg: MsgIntParsing}
	}
	if v < 1 {
		return 0, &ValidationFault{Kind: FaultRange, Field: field, Input: raw, Msg: MsgGreaterThanEqual}
	}
	return v, nil
}

// PageResult is one computed page of a collection snapshot.
// Page and Size are the values actually used after defaulting.
type PageResult[T any] struct {
	Items []T
	Total int
	Page  int
	Size  int
	Pages int
}

// Offset returns the index of the first item on the page (0-based).
func (p PageResult[T]) Offset() int {
	return (p.Page - 1) * p.Size
}

// Paginate computes one page over items. The slice is treated as a snapshot:
// its length is read once and it is never modified.
//
// Defaults: with neither page nor size the whole collection is one page; a
// page without a size uses DefaultPageSize; a size without a page starts at 1.
// An empty collection has zero pages. Pages past the end are not an error and
// yield no items.
func Paginate[T any](items []T, req PageRequest) (PageResult[T], error) {
	total := len(items)

	page := 1
	if req.Page != nil {
		page = *req.Page
	}
	var size int
	switch {
	case req.Size != nil:
		size = *req.Size
	case req.Page != nil:
		size = DefaultPageSize
	default:
		size = total
		if size == 0 {
			size = DefaultPageSize
		}
	}
	if page < 1 {
		return PageResult[T]{}, &ValidationFault{Kind: FaultRange, Field: "page", Input: strconv.Itoa(page), Msg: MsgGreaterThanEqual}
	}
	if size < 1 {
		return PageResult[T]{}, &ValidationFault{Kind: FaultRange, Field: "size", Input: strconv.Itoa(size), Msg: MsgGreaterThanEqual}
	}

	res := PageResult[T]{
		Total: total,
		Page:  page,
		Size:  size,
		Pages: total / size,
	}
	if total%size != 0 {
		res.Pages++
	}
	// page-1 >= pages is the overflow-safe form of offset >= total.
	if page-1 >= res.Pages {
		res.Items = []T{}
		return res, nil
	}
	start := res.Offset()
	end := start + min(size, total-start)
	res.Items = append(make([]T, 0, end-start), items[start:end]...)
	return res, nil
}
