// Package objfile reads the structural directory of ELF object files.
package objfile

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// CommentSection holds the toolchain identification strings.
const CommentSection = ".comment"

// Directory describes where the headers and sections of a file are.
type Directory struct {
	HeaderSize uint64

	ProgHeaderOffset    uint64
	ProgHeaderEntrySize uint64

	SectionHeaderOffset    uint64
	SectionHeaderEntrySize uint64

	// Sections in section header table order.
	Sections []Section
}

// Section is a single entry in the section header table.
type Section struct {
	Name string
	// Offset is the offset reported by the section header.
	Offset uint64
	// Size is the amount of data the section occupies in the file,
	// zero for sections without file data.
	Size uint64
}

// File is a loaded object file.
type File struct {
	Path      string
	Data      []byte
	Directory Directory
	// Caption is the content of the comment section, empty when missing.
	Caption string
}

// Open reads and parses the file at path.
func Open(path string) (*File, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: ErrNotFile}
	}
	if !stat.Mode().IsRegular() {
		return nil, &InputError{Path: path, Err: ErrNotFile}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: errors.Wrap(err, "read file")}
	}
	return Parse(path, data)
}

// Parse parses data as an ELF file, path is only used for reporting.
func Parse(path string, data []byte) (*File, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, &InputError{Path: path, Err: fmt.Errorf("%w: %v", ErrNotELF, err)}
	}
	defer func() { _ = f.Close() }()

	dir, err := readHeader(f, data)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	dir.Sections = make([]Section, 0, len(f.Sections))
	for _, s := range f.Sections {
		size := s.Size
		if s.Type == elf.SHT_NOBITS {
			size = 0
		}
		dir.Sections = append(dir.Sections, Section{
			Name:   s.Name,
			Offset: s.Offset,
			Size:   size,
		})
	}

	if err := checkBounds(dir, uint64(len(data))); err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	return &File{
		Path:      path,
		Data:      data,
		Directory: dir,
		Caption:   caption(f),
	}, nil
}

// readHeader decodes the fields debug/elf does not expose.
func readHeader(f *elf.File, data []byte) (Directory, error) {
	r := bytes.NewReader(data)
	switch f.Class {
	case elf.ELFCLASS64:
		var hdr elf.Header64
		if err := binary.Read(r, f.ByteOrder, &hdr); err != nil {
			return Directory{}, fmt.Errorf("%w: truncated header", ErrNotELF)
		}
		return Directory{
			HeaderSize:             uint64(hdr.Ehsize),
			ProgHeaderOffset:       hdr.Phoff,
			ProgHeaderEntrySize:    uint64(hdr.Phentsize),
			SectionHeaderOffset:    hdr.Shoff,
			SectionHeaderEntrySize: uint64(hdr.Shentsize),
		}, nil
	case elf.ELFCLASS32:
		var hdr elf.Header32
		if err := binary.Read(r, f.ByteOrder, &hdr); err != nil {
			return Directory{}, fmt.Errorf("%w: truncated header", ErrNotELF)
		}
		return Directory{
			HeaderSize:             uint64(hdr.Ehsize),
			ProgHeaderOffset:       uint64(hdr.Phoff),
			ProgHeaderEntrySize:    uint64(hdr.Phentsize),
			SectionHeaderOffset:    uint64(hdr.Shoff),
			SectionHeaderEntrySize: uint64(hdr.Shentsize),
		}, nil
	default:
		return Directory{}, fmt.Errorf("%w: unsupported class %v", ErrNotELF, f.Class)
	}
}

// checkBounds verifies that the headers and section data lie within the file.
func checkBounds(dir Directory, n uint64) error {
	if err := within("file header", 0, dir.HeaderSize, n); err != nil {
		return err
	}
	if err := within("program header", dir.ProgHeaderOffset, dir.ProgHeaderEntrySize, n); err != nil {
		return err
	}
	if err := within("section header", dir.SectionHeaderOffset, dir.SectionHeaderEntrySize, n); err != nil {
		return err
	}
	for _, s := range dir.Sections {
		if err := within(fmt.Sprintf("section %q", s.Name), s.Offset, s.Size, n); err != nil {
			return err
		}
	}
	return nil
}

func within(what string, off, size, n uint64) error {
	if size == 0 {
		return nil
	}
	if off > n || size > n-off {
		return fmt.Errorf("%w: %s at %#x size %#x exceeds file size %d", ErrNotELF, what, off, size, n)
	}
	return nil
}

func caption(f *elf.File) string {
	s := f.Section(CommentSection)
	if s == nil || s.Type == elf.SHT_NOBITS {
		return ""
	}
	data, err := s.Data()
	if err != nil {
		return ""
	}
	return cleanComment(data)
}

// cleanComment joins the NUL separated strings of a comment section.
func cleanComment(data []byte) string {
	var parts []string
	for _, part := range strings.Split(string(data), "\x00") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "; ")
}
