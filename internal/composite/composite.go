// Package composite glues SVG charts side by side into one SVG.
package composite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVGCompositor implements contract.Compositor.
type SVGCompositor struct{}

var _ contract.Compositor = SVGCompositor{} // Compile-time check

// Compose implements contract.Compositor.
func (SVGCompositor) Compose(paths []string, outPath string) (schema.CompositeLayout, error) {
	return Compose(paths, outPath)
}

// Compose places the root contents of each SVG at increasing x offsets.
// The result is as wide as all inputs together and as tall as the tallest.
// Child elements are deep-copied unmodified into one <g> per input.
func Compose(paths []string, outPath string) (schema.CompositeLayout, error) {
	var layout schema.CompositeLayout
	if len(paths) == 0 {
		return layout, fmt.Errorf("no svg files to combine")
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := out.CreateElement("svg")
	root.CreateAttr("xmlns", svgNamespace)
	root.CreateAttr("width", "0")
	root.CreateAttr("height", "0")

	offset := 0.0
	for _, path := range paths {
		in := etree.NewDocument()
		if err := in.ReadFromFile(path); err != nil {
			return layout, fmt.Errorf("failed to read %s: %w", path, err)
		}
		src := in.Root()
		if src == nil {
			return layout, fmt.Errorf("failed to read %s: no root element", path)
		}

		w, h := rootSize(src)
		layout.Entries = append(layout.Entries, schema.CompositeEntry{Path: path, Width: w, Height: h, Offset: offset})

		copyNamespaces(root, src)
		g := root.CreateElement("g")
		g.CreateAttr("transform", fmt.Sprintf("translate(%s, 0)", formatNumber(offset)))
		for _, child := range src.ChildElements() {
			g.AddChild(child.Copy())
		}

		offset += w
		layout.Width += w
		if h > layout.Height {
			layout.Height = h
		}
	}

	root.CreateAttr("width", formatNumber(layout.Width))
	root.CreateAttr("height", formatNumber(layout.Height))

	if err := contract.EnsureParentDir(outPath); err != nil {
		return layout, err
	}
	out.Indent(2)
	if err := out.WriteToFile(outPath); err != nil {
		return layout, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return layout, nil
}

// ParseDimension reads an SVG length, ignoring a "pt" or "px" suffix.
// Absent or unparsable values give fallback.
func ParseDimension(v string, fallback float64) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(strings.TrimSuffix(v, "pt"), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return f
}

// rootSize reads width and height from the root element. A missing or
// unparsable dimension comes from the viewBox, then from the defaults.
func rootSize(src *etree.Element) (float64, float64) {
	vw, vh := ParseViewBox(src.SelectAttrValue("viewBox", ""))
	if vw <= 0 {
		vw = schema.DefaultCompositeWidth
	}
	if vh <= 0 {
		vh = schema.DefaultCompositeHeight
	}
	return ParseDimension(src.SelectAttrValue("width", ""), vw),
		ParseDimension(src.SelectAttrValue("height", ""), vh)
}

// ParseViewBox returns the width and height of a "min-x min-y width height"
// viewBox. Malformed values give zeros.
func ParseViewBox(v string) (float64, float64) {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) != 4 {
		return 0, 0
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0
	}
	h, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, 0
	}
	return w, h
}

// copyNamespaces carries prefixed namespace declarations onto dst.
// The first declaration of a prefix wins.
func copyNamespaces(dst, src *etree.Element) {
	for _, a := range src.Attr {
		if a.Space != "xmlns" {
			continue
		}
		if dst.SelectAttr("xmlns:"+a.Key) != nil {
			continue
		}
		dst.CreateAttr("xmlns:"+a.Key, a.Value)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
