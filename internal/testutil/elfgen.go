// Package testutil builds small ELF images for tests.
package testutil

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Section describes a section to place in a generated file.
type Section struct {
	Name string
	// Type defaults to SHT_PROGBITS.
	Type elf.SectionType
	Data []byte
	// Size is used for SHT_NOBITS sections, which have no data in the file.
	Size uint64
}

// ELF describes a generated file.
//
// The layout is: file header, optional program header with a single entry,
// section data in order, section name table, section header table.
type ELF struct {
	Class      elf.Class
	ByteOrder  binary.ByteOrder
	ProgHeader bool
	Sections   []Section
}

// Sizes of the generated headers for each class.
const (
	Header64Size  = 64
	Prog64Size    = 56
	Section64Size = 64

	Header32Size  = 52
	Prog32Size    = 32
	Section32Size = 40
)

// Bytes encodes the file.
func (e ELF) Bytes() []byte {
	class := e.Class
	if class == elf.ELFCLASSNONE {
		class = elf.ELFCLASS64
	}
	order := e.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	is64 := class == elf.ELFCLASS64

	ehsize, phentsize, shentsize := Header32Size, Prog32Size, Section32Size
	if is64 {
		ehsize, phentsize, shentsize = Header64Size, Prog64Size, Section64Size
	}

	type placed struct {
		Section
		nameOff uint32
		off     uint64
		size    uint64
	}

	strtab := []byte{0}
	addName := func(name string) uint32 {
		off := uint32(len(strtab))
		strtab = append(strtab, name...)
		strtab = append(strtab, 0)
		return off
	}

	offset := uint64(ehsize)
	var phoff uint64
	if e.ProgHeader {
		phoff = offset
		offset += uint64(phentsize)
	}

	sections := []placed{{}}
	for _, s := range e.Sections {
		if s.Type == elf.SHT_NULL {
			s.Type = elf.SHT_PROGBITS
		}
		p := placed{Section: s, nameOff: addName(s.Name), off: offset}
		if s.Type == elf.SHT_NOBITS {
			p.size = s.Size
		} else {
			p.size = uint64(len(s.Data))
			offset += p.size
		}
		sections = append(sections, p)
	}

	shstrndx := len(sections)
	strtabSection := placed{
		Section: Section{Name: ".shstrtab", Type: elf.SHT_STRTAB},
		nameOff: addName(".shstrtab"),
		off:     offset,
	}
	strtabSection.Data = strtab
	strtabSection.size = uint64(len(strtab))
	sections = append(sections, strtabSection)
	offset += strtabSection.size

	shoff := offset

	var ident [elf.EI_NIDENT]byte
	copy(ident[:], elf.ELFMAG)
	ident[elf.EI_CLASS] = byte(class)
	if order == binary.BigEndian {
		ident[elf.EI_DATA] = byte(elf.ELFDATA2MSB)
	} else {
		ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	}
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	phnum := 0
	if e.ProgHeader {
		phnum = 1
	} else {
		phentsize = 0
	}

	var buf bytes.Buffer
	write := func(v interface{}) {
		if err := binary.Write(&buf, order, v); err != nil {
			panic(err)
		}
	}

	if is64 {
		write(elf.Header64{
			Ident:     ident,
			Type:      uint16(elf.ET_REL),
			Machine:   uint16(elf.EM_X86_64),
			Version:   uint32(elf.EV_CURRENT),
			Phoff:     phoff,
			Shoff:     shoff,
			Ehsize:    uint16(ehsize),
			Phentsize: uint16(phentsize),
			Phnum:     uint16(phnum),
			Shentsize: uint16(shentsize),
			Shnum:     uint16(len(sections)),
			Shstrndx:  uint16(shstrndx),
		})
		if e.ProgHeader {
			write(elf.Prog64{Type: uint32(elf.PT_LOAD), Filesz: uint64(ehsize), Memsz: uint64(ehsize)})
		}
	} else {
		write(elf.Header32{
			Ident:     ident,
			Type:      uint16(elf.ET_REL),
			Machine:   uint16(elf.EM_386),
			Version:   uint32(elf.EV_CURRENT),
			Phoff:     uint32(phoff),
			Shoff:     uint32(shoff),
			Ehsize:    uint16(ehsize),
			Phentsize: uint16(phentsize),
			Phnum:     uint16(phnum),
			Shentsize: uint16(shentsize),
			Shnum:     uint16(len(sections)),
			Shstrndx:  uint16(shstrndx),
		})
		if e.ProgHeader {
			write(elf.Prog32{Type: uint32(elf.PT_LOAD), Filesz: uint32(ehsize), Memsz: uint32(ehsize)})
		}
	}

	for _, s := range sections[1:] {
		if s.Type != elf.SHT_NOBITS {
			buf.Write(s.Data)
		}
	}

	for _, s := range sections {
		if is64 {
			write(elf.Section64{
				Name:      s.nameOff,
				Type:      uint32(s.Type),
				Off:       s.off,
				Size:      s.size,
				Addralign: 1,
			})
		} else {
			write(elf.Section32{
				Name:      s.nameOff,
				Type:      uint32(s.Type),
				Off:       uint32(s.off),
				Size:      uint32(s.size),
				Addralign: 1,
			})
		}
	}

	return buf.Bytes()
}

// WriteFile writes the encoded file into a temporary directory and returns its path.
func (e ELF) WriteFile(t testing.TB, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, e.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
