package store

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{name: "zero value", in: Page{}, want: Page{Number: 1, Size: DefaultPageSize}},
		{name: "negative", in: Page{Number: -3, Size: -1}, want: Page{Number: 1, Size: DefaultPageSize}},
		{name: "too large", in: Page{Number: 2, Size: 500}, want: Page{Number: 2, Size: MaxPageSize}},
		{name: "sort kept", in: Page{Number: 3, Size: 10, Sort: "name"}, want: Page{Number: 3, Size: 10, Sort: "name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Size: 20}.Offset())
	assert.Equal(t, 40, Page{Number: 3, Size: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestMap(t *testing.T) {
	in := Result[int]{Items: []int{1, 2}, Page: 2, PageSize: 2, Total: 4, TotalPages: 2}
	out := Map(in, strconv.Itoa)
	assert.Equal(t, Result[string]{Items: []string{"1", "2"}, Page: 2, PageSize: 2, Total: 4, TotalPages: 2}, out)
}
