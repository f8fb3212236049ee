package iovnredlist

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		msg  string
		page string
		code string
		ok   bool
	}{
		{
			msg: "category heading",
			page: `<html><body>
<h3>Phân hạng bảo tồn</h3>
<p> CR A2cd </p>
</body></html>`,
			code: "CR",
			ok:   true,
		},
		{
			msg: "h4 heading, div sibling after other tags",
			page: `<div><h4>Thông tin: Phân hạng bảo tồn</h4>
<span>ignored VU</span>
<div>Nguy cấp (EN)</div></div>`,
			code: "EN",
			ok:   true,
		},
		{
			msg: "unknown code in sibling, second heading wins",
			page: `<h3>Phân hạng bảo tồn</h3><p>XX</p>
<h3>Phân hạng bảo tồn</h3><p>NT</p>`,
			code: "NT",
			ok:   true,
		},
		{
			msg: "assessment section",
			page: `<h2>Thông tin đánh giá</h2>
<section><div>Năm: 2007. Phân hạng: VU B1+2b</div></section>`,
			code: "VU",
			ok:   true,
		},
		{
			msg: "assessment section with nested div",
			page: `<h2><span>Thông tin đánh giá</span></h2>
<div><div>Phân hạng:EW</div></div>`,
			code: "EW",
			ok:   true,
		},
		{
			msg: "heading without code falls back to section",
			page: `<h3>Phân hạng bảo tồn</h3><p>chưa rõ</p>
<h2>Thông tin đánh giá</h2><div>Phân hạng: DD</div>`,
			code: "DD",
			ok:   true,
		},
		{
			msg:  "codes inside words are ignored",
			page: `<h3>Phân hạng bảo tồn</h3><p>CRITICAL</p>`,
		},
		{
			msg:  "no labels",
			page: `<h1>Elephas maximus</h1><p>EN</p>`,
		},
	}

	for _, v := range tests {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(v.page))
		require.NoError(t, err, v.msg)
		code, ok := extractCategory(doc)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.code, code, v.msg)
	}
}

func TestRetrySlug(t *testing.T) {
	tests := []struct {
		name string
		res  string
	}{
		{"Panthera tigris corbetti", "panthera-tigris"},
		{"Panthera tigris Linnaeus, 1758", "panthera-tigris"},
		{"Panthera", ""},
		{"", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, retrySlug(v.name), v.name)
	}
}
