// Package images groups species image rows by scientific name.
package images

import "strings"

// Column headers of image sheets.
const (
	HeaderName   = "Tên khoa học"
	HeaderURL    = "URL ảnh"
	HeaderAuthor = "Tác giả"
	HeaderSource = "Nguồn"
)

// Headers lists required columns of an image sheet.
var Headers = []string{HeaderName, HeaderURL, HeaderAuthor, HeaderSource}

// Row is one line of an image sheet.
type Row struct {
	Name     string
	ImageURL string
	Author   string
	Source   string
}

// Image is an image of a species in the output JSON.
type Image struct {
	ImageURL  string `json:"image_url"`
	Attribute string `json:"attribute"`
	Source    string `json:"source"`
}

// Group returns images keyed by scientific name, keeping the row order
// within each name, and the number of rows skipped because their name was
// empty.
func Group(rows []Row) (map[string][]Image, int) {
	res := make(map[string][]Image)
	var skipped int
	for _, v := range rows {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			skipped++
			continue
		}
		res[name] = append(res[name], Image{
			ImageURL:  strings.TrimSpace(v.ImageURL),
			Attribute: strings.TrimSpace(v.Author),
			Source:    strings.TrimSpace(v.Source),
		})
	}
	return res, skipped
}

// ColumnIndex maps required headers to their positions in a header row.
// It returns the headers that were not found.
func ColumnIndex(header []string) (map[string]int, []string) {
	idx := make(map[string]int)
	for i, v := range header {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if _, ok := idx[v]; !ok {
			idx[v] = i
		}
	}

	var missing []string
	for _, h := range Headers {
		if _, ok := idx[h]; !ok {
			missing = append(missing, h)
		}
	}
	return idx, missing
}

// NewRow builds a Row from a record using a column index from ColumnIndex.
// Short records give empty values for absent columns.
func NewRow(idx map[string]int, record []string) Row {
	get := func(h string) string {
		i, ok := idx[h]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	return Row{
		Name:     get(HeaderName),
		ImageURL: get(HeaderURL),
		Author:   get(HeaderAuthor),
		Source:   get(HeaderSource),
	}
}
