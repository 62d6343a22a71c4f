// SPDX-FileCopyrightText: 2026 docforge
// SPDX-License-Identifier: FSL-1.1-MIT

package pydoc

import (
	"regexp"
	"strings"
)

// Docstring dialects.
const (
	styleGoogle = "google"
	styleNumPy  = "numpy"
	styleSphinx = "sphinx"
	styleSimple = "simple"
)

// docstring is the structured form of one parsed docstring.
type docstring struct {
	style       string
	summary     string
	description string
	params      []docParam
	returns     *docReturn
	raises      []docRaise
	attributes  []docParam
	notes       []string
	examples    []string
}

// docParam is one documented parameter or attribute.
type docParam struct {
	name        string
	typeName    string
	description string
	required    bool
}

// docReturn is the single documented return value.
type docReturn struct {
	typeName    string
	description string
}

// docRaise is one documented raised exception.
type docRaise struct {
	exception   string
	description string
}

var (
	// googleSignature detects Google-style docstrings.
	googleSignature = regexp.MustCompile(`(?m)^\s*(Args|Arguments|Returns|Raises|Attributes):`)

	// numpySignature detects NumPy-style underlined section headers.
	numpySignature = regexp.MustCompile(`(?m)^\s*(Parameters|Returns)\s*\n\s*-{3,}`)

	// sphinxSignature detects Sphinx field lists.
	sphinxSignature = regexp.MustCompile(`:param\s|:returns?:|:raises?\s`)

	// sectionHeader matches a Google-style section header line.
	sectionHeader = regexp.MustCompile(`^\s*(Args|Arguments|Parameters|Param|Returns|Return|Yields|Yield|Raises|Raise|Note|Notes|Example|Examples|Attributes|Attribute):\s*$`)

	// paramLine matches "name (type): description" entries.
	paramLine = regexp.MustCompile(`^\s*(\*{0,2}[\w]+)\s*(?:\(([^)]+)\))?\s*:\s*(.*)$`)

	// returnLine matches "type: description" return entries.
	returnLine = regexp.MustCompile(`^\s*([\w\[\], .]+?)\s*:\s*(.*)$`)

	// sphinxParam matches ":param name: description" fields.
	sphinxParam = regexp.MustCompile(`(?m)^\s*:param\s+(?:([\w\[\], ]+)\s+)?(\w+)\s*:\s*(.*)$`)

	// sphinxType matches ":type name: type" fields.
	sphinxType = regexp.MustCompile(`(?m)^\s*:type\s+(\w+)\s*:\s*(.*)$`)

	// sphinxReturns matches ":returns: description" fields.
	sphinxReturns = regexp.MustCompile(`(?m)^\s*:returns?:\s*(.*)$`)

	// sphinxRtype matches ":rtype: type" fields.
	sphinxRtype = regexp.MustCompile(`(?m)^\s*:rtype:\s*(.*)$`)

	// sphinxRaises matches ":raises Exception: description" fields.
	sphinxRaises = regexp.MustCompile(`(?m)^\s*:raises?\s+(\w+)\s*:\s*(.*)$`)
)

// detectStyle classifies a docstring by content signature. NumPy is
// detected but routed through the Google-style splitter; that keeps a
// single section grammar at the cost of underlined headers.
func detectStyle(text string) string {
	switch {
	case googleSignature.MatchString(text):
		return styleGoogle
	case numpySignature.MatchString(text):
		return styleNumPy
	case sphinxSignature.MatchString(text):
		return styleSphinx
	default:
		return styleSimple
	}
}

// parseDocstring parses raw docstring text into its structured form.
func parseDocstring(text string) *docstring {
	text = strings.TrimSpace(text)
	d := &docstring{style: detectStyle(text)}

	switch d.style {
	case styleGoogle, styleNumPy:
		d.parseSections(text)
	case styleSphinx:
		d.parseSphinx(text)
	default:
		d.parseSimple(text)
	}

	return d
}

// parseSimple treats the first line as summary and the remainder as
// description.
func (d *docstring) parseSimple(text string) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return
	}
	d.summary = strings.TrimSpace(lines[0])
	if len(lines) > 1 {
		d.description = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	if d.description == "" {
		d.description = d.summary
	}
}

// parseSections splits the docstring on recognized section headers and
// parses each buffered block into its typed sub-structure.
func (d *docstring) parseSections(text string) {
	lines := strings.Split(text, "\n")

	var freeText []string
	section := ""
	var buffer []string

	flush := func() {
		if section != "" {
			d.applySection(section, buffer)
		}
		buffer = nil
	}

	for _, line := range lines {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			flush()
			section = m[1]
			continue
		}
		if section == "" {
			freeText = append(freeText, line)
		} else {
			buffer = append(buffer, line)
		}
	}
	flush()

	head := strings.TrimSpace(strings.Join(freeText, "\n"))
	headLines := strings.Split(head, "\n")
	if len(headLines) > 0 {
		d.summary = strings.TrimSpace(headLines[0])
	}
	d.description = head
}

// applySection parses one buffered section block.
func (d *docstring) applySection(section string, buffer []string) {
	switch section {
	case "Args", "Arguments", "Parameters", "Param":
		d.params = append(d.params, parseParamBlock(buffer)...)
	case "Returns", "Return", "Yields", "Yield":
		d.returns = parseReturnBlock(buffer)
	case "Raises", "Raise":
		d.raises = append(d.raises, parseRaiseBlock(buffer)...)
	case "Attributes", "Attribute":
		d.attributes = append(d.attributes, parseParamBlock(buffer)...)
	case "Note", "Notes":
		if note := strings.TrimSpace(strings.Join(buffer, "\n")); note != "" {
			d.notes = append(d.notes, note)
		}
	case "Example", "Examples":
		if example := strings.TrimSpace(strings.Join(buffer, "\n")); example != "" {
			d.examples = append(d.examples, example)
		}
	}
}

// parseParamBlock parses "name (type): description" lines. A parameter
// is required unless its description mentions "optional". Continuation
// lines extend the previous entry's description.
func parseParamBlock(lines []string) []docParam {
	var params []docParam

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := paramLine.FindStringSubmatch(line)
		if m == nil {
			if len(params) > 0 {
				last := &params[len(params)-1]
				last.description = strings.TrimSpace(last.description + " " + strings.TrimSpace(line))
				last.required = !strings.Contains(strings.ToLower(last.description), "optional")
			}
			continue
		}

		desc := strings.TrimSpace(m[3])
		params = append(params, docParam{
			name:        strings.TrimLeft(m[1], "*"),
			typeName:    strings.TrimSpace(m[2]),
			description: desc,
			required:    !strings.Contains(strings.ToLower(desc), "optional"),
		})
	}

	return params
}

// parseReturnBlock parses a single "type: description" return spec.
// A block without a colon becomes a bare description.
func parseReturnBlock(lines []string) *docReturn {
	text := strings.TrimSpace(strings.Join(lines, " "))
	if text == "" {
		return nil
	}

	if m := returnLine.FindStringSubmatch(text); m != nil {
		return &docReturn{
			typeName:    strings.TrimSpace(m[1]),
			description: strings.TrimSpace(m[2]),
		}
	}
	return &docReturn{description: text}
}

// parseRaiseBlock parses "ExceptionName: description" lines.
func parseRaiseBlock(lines []string) []docRaise {
	var raises []docRaise

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, desc, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		raises = append(raises, docRaise{
			exception:   strings.TrimSpace(name),
			description: strings.TrimSpace(desc),
		})
	}

	return raises
}

// parseSphinx parses a Sphinx field-list docstring.
func (d *docstring) parseSphinx(text string) {
	// Free text above the first field is summary/description
	fieldStart := len(text)
	for _, re := range []*regexp.Regexp{sphinxParam, sphinxType, sphinxReturns, sphinxRtype, sphinxRaises} {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] < fieldStart {
			fieldStart = loc[0]
		}
	}
	head := strings.TrimSpace(text[:fieldStart])
	headLines := strings.Split(head, "\n")
	if len(headLines) > 0 {
		d.summary = strings.TrimSpace(headLines[0])
	}
	d.description = head

	typeByName := make(map[string]string)
	for _, m := range sphinxType.FindAllStringSubmatch(text, -1) {
		typeByName[m[1]] = strings.TrimSpace(m[2])
	}

	for _, m := range sphinxParam.FindAllStringSubmatch(text, -1) {
		desc := strings.TrimSpace(m[3])
		typeName := strings.TrimSpace(m[1])
		if typeName == "" {
			typeName = typeByName[m[2]]
		}
		d.params = append(d.params, docParam{
			name:        m[2],
			typeName:    typeName,
			description: desc,
			required:    !strings.Contains(strings.ToLower(desc), "optional"),
		})
	}

	if m := sphinxReturns.FindStringSubmatch(text); m != nil {
		ret := &docReturn{description: strings.TrimSpace(m[1])}
		if rt := sphinxRtype.FindStringSubmatch(text); rt != nil {
			ret.typeName = strings.TrimSpace(rt[1])
		}
		d.returns = ret
	}

	for _, m := range sphinxRaises.FindAllStringSubmatch(text, -1) {
		d.raises = append(d.raises, docRaise{
			exception:   m[1],
			description: strings.TrimSpace(m[2]),
		})
	}
}
