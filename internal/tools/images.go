package tools

import (
	"bufio"
	"bytes"
	"context"
	"regexp"
	"strconv"

	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

var (
	// Only rows of type "image" count; smask and stencil rows do not match.
	reInventoryRow = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s+image\s+(\d+)\s+(\d+)\s+`)
	// reAnyRow matches a well-formed row of any type.
	reAnyRow     = regexp.MustCompile(`^\s*\d+\s+\d+\s+\S+\s+\d+\s+\d+\s+`)
	reListHeader = regexp.MustCompile(`^\s*page\s+num\s+type\b`)
	reListRule   = regexp.MustCompile(`^\s*-+\s*$`)
)

// Inventory is the parsed output of pdfimages -list.
type Inventory struct {
	Rows      []entity.InventoryRow
	Skipped   int // non-blank lines that were not image rows (headers included)
	Malformed int // skipped lines that were neither header, rule nor a row of another type
}

// ImageInventory lists the embedded images of path.
func (e *Extractor) ImageInventory(ctx context.Context, path string) (Inventory, error) {
	// pdfimages -list <path>
	out, err := e.run(ctx, e.cfg.Pdfimages, "-list", path)
	if err != nil {
		return Inventory{}, err
	}
	return ParseInventory(out), nil
}

// MaterializeImages writes every embedded image of path to <prefix>-<index>.<ext>.
func (e *Extractor) MaterializeImages(ctx context.Context, path, prefix string) error {
	// pdfimages -all <path> <prefix>
	_, err := e.run(ctx, e.cfg.Pdfimages, "-all", path, prefix)
	return err
}

// ParseInventory keeps rows matching the pdfimages -list column layout, in order.
func ParseInventory(out []byte) Inventory {
	var inv Inventory
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		row, ok := parseInventoryLine(line)
		if !ok {
			if len(bytes.TrimSpace([]byte(line))) == 0 {
				continue
			}
			inv.Skipped++
			if !reAnyRow.MatchString(line) && !reListHeader.MatchString(line) && !reListRule.MatchString(line) {
				inv.Malformed++
			}
			continue
		}
		inv.Rows = append(inv.Rows, row)
	}
	return inv
}

func parseInventoryLine(line string) (entity.InventoryRow, bool) {
	m := reInventoryRow.FindStringSubmatch(line)
	if m == nil {
		return entity.InventoryRow{}, false
	}
	var vals [4]int
	for i := range vals {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return entity.InventoryRow{}, false
		}
		vals[i] = n
	}
	return entity.InventoryRow{Page: vals[0], Index: vals[1], Width: vals[2], Height: vals[3]}, true
}
