package entity

// InventoryRow is one embedded image as reported by the raster inventory tool.
type InventoryRow struct {
	Page   int `json:"page"`
	Index  int `json:"index"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns width*height.
func (r InventoryRow) Area() int {
	return r.Width * r.Height
}

// SelectedImage is an inventory row that passed selection, attributed to a record.
type SelectedImage struct {
	Row    InventoryRow `json:"row"`
	Code   string       `json:"code"`
	Offset int          `json:"offset"`
	Rank   int          `json:"rank"` // zero-based position among selected rows on the page
}

// OutputImage is a materialised figure. (Code, Seq) is unique across the run.
type OutputImage struct {
	Code       string `json:"code"`
	Seq        int    `json:"seq"`
	Document   string `json:"document"`
	SourcePath string `json:"source_path"`
	DestPath   string `json:"dest_path"` // relative to the output root, slash separated
	Page       int    `json:"page"`
	Index      int    `json:"index"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Caption    string `json:"caption"`
}
