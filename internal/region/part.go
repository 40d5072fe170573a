// Package region reconstructs named byte ranges of a file and paints them.
package region

import (
	"math"

	"loov.dev/elfmap/internal/objfile"
)

// Names of the parts that are not sections.
const (
	HeaderName        = "Ehdr"
	ProgHeaderName    = "Phdr"
	SectionHeaderName = "Shdr"
)

// Part is a named byte range in a file.
type Part struct {
	Name   string
	Offset int
	Length int
}

// End returns the offset just past the part, saturating at math.MaxInt.
func (p Part) End() int { return addSat(p.Offset, p.Length) }

// Extract lists the parts of a file described by dir.
//
// Sections are laid out contiguously after the header in directory order,
// their reported offsets are ignored. Program and section header tables
// use the offsets from the file header. Empty parts are dropped.
func Extract(dir objfile.Directory) []Part {
	all := make([]Part, 0, len(dir.Sections)+3)
	all = append(all, Part{
		Name:   HeaderName,
		Offset: 0,
		Length: toInt(dir.HeaderSize),
	})

	offset := toInt(dir.HeaderSize)
	for _, s := range dir.Sections {
		size := toInt(s.Size)
		all = append(all, Part{
			Name:   s.Name,
			Offset: offset,
			Length: size,
		})
		offset = addSat(offset, size)
	}

	all = append(all,
		Part{
			Name:   ProgHeaderName,
			Offset: toInt(dir.ProgHeaderOffset),
			Length: toInt(dir.ProgHeaderEntrySize),
		},
		Part{
			Name:   SectionHeaderName,
			Offset: toInt(dir.SectionHeaderOffset),
			Length: toInt(dir.SectionHeaderEntrySize),
		},
	)

	parts := all[:0]
	for _, p := range all {
		if p.Length > 0 {
			parts = append(parts, p)
		}
	}
	return parts
}

// TotalLength sums the lengths of parts.
func TotalLength(parts []Part) int {
	total := 0
	for _, p := range parts {
		total = addSat(total, p.Length)
	}
	return total
}

// clampRange limits [p.Offset, p.End()) to [0, n).
func clampRange(p Part, n int) (from, to int) {
	from = p.Offset
	if from < 0 {
		from = 0
	}
	if from > n {
		from = n
	}
	length := p.Length
	if length < 0 {
		length = 0
	}
	if length > n-from {
		length = n - from
	}
	return from, from + length
}

// toInt converts v saturating at math.MaxInt.
func toInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
