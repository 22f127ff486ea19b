package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

func TestLocateAnchors(t *testing.T) {
	pages := []string{
		"지질유산 분포지도 구축 보고서",
		"지질유산 현장 조사표\n  조사번호   AB123      지질유산명  동굴\n  조사번호 ZZ999",
		"사진 페이지",
		"조사번호CD045 continues",
		"조사번호 ab123 lower case is not a code",
		"조사번호 AB12",
		"조사번호 AB123 repeated marker",
	}

	got := LocateAnchors(pages)

	assert.Equal(t, []entity.Anchor{
		{Page: 2, Code: "AB123"},
		{Page: 4, Code: "CD045"},
		{Page: 7, Code: "AB123"},
	}, got)
}

func TestLocateAnchorsNone(t *testing.T) {
	assert.Empty(t, LocateAnchors([]string{"no markers", ""}))
	assert.Empty(t, LocateAnchors(nil))
}

func TestResolveBoundaries(t *testing.T) {
	anchors := []entity.Anchor{{Page: 5, Code: "AB123"}}

	tests := []struct {
		page   int
		ok     bool
		code   string
		offset int
	}{
		{page: 4, ok: false},
		{page: 5, ok: true, code: "AB123", offset: 0},
		{page: 6, ok: true, code: "AB123", offset: 1},
		{page: 7, ok: true, code: "AB123", offset: 2},
		{page: 8, ok: false},
	}
	for _, tt := range tests {
		a, ok := Resolve(tt.page, anchors)
		assert.Equal(t, tt.ok, ok, "page %d", tt.page)
		if tt.ok {
			assert.Equal(t, Attribution{Code: tt.code, Offset: tt.offset}, a, "page %d", tt.page)
		}
	}
}

func TestResolvePicksLastAnchorAtOrBeforePage(t *testing.T) {
	anchors := []entity.Anchor{{Page: 2, Code: "AA001"}, {Page: 4, Code: "BB002"}, {Page: 9, Code: "CC003"}}

	a, ok := Resolve(3, anchors)
	assert.True(t, ok)
	assert.Equal(t, Attribution{Code: "AA001", Offset: 1}, a)

	a, ok = Resolve(5, anchors)
	assert.True(t, ok)
	assert.Equal(t, Attribution{Code: "BB002", Offset: 1}, a)

	_, ok = Resolve(7, anchors)
	assert.False(t, ok, "page 7 is three pages past BB002")

	_, ok = Resolve(1, nil)
	assert.False(t, ok)
}

func TestResolverCustomLookback(t *testing.T) {
	anchors := []entity.Anchor{{Page: 1, Code: "AB123"}}

	_, ok := NewResolver(0).Resolve(2, anchors)
	assert.False(t, ok)

	a, ok := NewResolver(4).Resolve(5, anchors)
	assert.True(t, ok)
	assert.Equal(t, 4, a.Offset)
}

func TestResolveWithin(t *testing.T) {
	anchors := []entity.Anchor{{Page: 5, Code: "AB123"}}
	r := NewResolver(DefaultMaxLookback)

	_, reason, ok := r.ResolveWithin(5, anchors, DefaultWindow)
	assert.False(t, ok)
	assert.Equal(t, constants.DropOffset, reason)

	_, reason, ok = r.ResolveWithin(3, anchors, DefaultWindow)
	assert.False(t, ok)
	assert.Equal(t, constants.DropUnresolved, reason)

	a, _, ok := r.ResolveWithin(6, anchors, DefaultWindow)
	assert.True(t, ok)
	assert.Equal(t, "AB123", a.Code)
}

func TestWindowAdmits(t *testing.T) {
	assert.False(t, DefaultWindow.Admits(0))
	assert.True(t, DefaultWindow.Admits(1))
	assert.True(t, DefaultWindow.Admits(2))
	assert.False(t, DefaultWindow.Admits(3))
}

func TestIsRecordCode(t *testing.T) {
	assert.True(t, IsRecordCode("AB123"))
	assert.False(t, IsRecordCode("AB1234"))
	assert.False(t, IsRecordCode("ab123"))
}
