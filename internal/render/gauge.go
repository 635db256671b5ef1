package render

import (
	"strconv"
	"strings"
)

// family is one gauge metric family: a fixed name and help text.
type family struct {
	name string
	help string
}

// header writes the HELP and TYPE lines, preceded by a blank line unless
// this is the first block in b.
func (f family) header(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString("# HELP ")
	b.WriteString(f.name)
	b.WriteByte(' ')
	b.WriteString(f.help)
	b.WriteString("\n# TYPE ")
	b.WriteString(f.name)
	b.WriteString(" gauge\n")
}

// sample writes an unlabelled value line.
func (f family) sample(b *strings.Builder, v uint64) {
	b.WriteString(f.name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(v, 10))
	b.WriteByte('\n')
}

// sampleID writes a value line labelled {id="<id>"}. id is written verbatim.
func (f family) sampleID(b *strings.Builder, id string, v uint64) {
	b.WriteString(f.name)
	b.WriteString(`{id="`)
	b.WriteString(id)
	b.WriteString(`"} `)
	b.WriteString(strconv.FormatUint(v, 10))
	b.WriteByte('\n')
}

// single writes a complete one-sample block.
func (f family) single(b *strings.Builder, v uint64) {
	f.header(b)
	f.sample(b, v)
}
