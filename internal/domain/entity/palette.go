package entity

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Label однобуквенное обозначение цвета наклейки.
type Label byte

const (
	LabelYellow Label = 'y'
	LabelWhite  Label = 'w'
	LabelRed    Label = 'r'
	LabelOrange Label = 'o'
	LabelBlue   Label = 'b'
	LabelGreen  Label = 'g'
)

func (l Label) String() string {
	return string(rune(l))
}

// noMatchDistance больше любой возможной L1-разницы (765).
const noMatchDistance = 1000

// PaletteEntry эталонный цвет и его обозначение.
type PaletteEntry struct {
	Name      string
	Reference RGB
	Label     Label
}

// Palette упорядоченный набор эталонов. Порядок задаёт приоритет при равных расстояниях.
type Palette struct {
	entries [6]PaletteEntry
}

var defaultPalette = Palette{entries: [6]PaletteEntry{
	{Name: "yellow", Reference: RGB{211, 206, 54}, Label: LabelYellow},
	{Name: "white", Reference: RGB{204, 192, 173}, Label: LabelWhite},
	{Name: "red", Reference: RGB{170, 47, 26}, Label: LabelRed},
	{Name: "orange", Reference: RGB{217, 102, 27}, Label: LabelOrange},
	{Name: "blue", Reference: RGB{62, 112, 163}, Label: LabelBlue},
	{Name: "green", Reference: RGB{106, 190, 95}, Label: LabelGreen},
}}

// DefaultPalette возвращает откалиброванную палитру куба.
func DefaultPalette() Palette {
	return defaultPalette
}

// Entries копия записей палитры в фиксированном порядке.
func (p Palette) Entries() []PaletteEntry {
	out := make([]PaletteEntry, len(p.entries))
	copy(out, p.entries[:])
	return out
}

// Classify возвращает обозначение ближайшего по L1 эталона.
// При равенстве побеждает запись, стоящая раньше в палитре.
func (p Palette) Classify(c ColorSample) Label {
	label, _ := p.Nearest(c)
	return label
}

// Nearest как Classify, но дополнительно возвращает расстояние до эталона.
func (p Palette) Nearest(c ColorSample) (Label, int) {
	best := noMatchDistance
	var label Label
	for _, e := range p.entries {
		if diff := ManhattanDistance(c, e.Reference); diff < best {
			best = diff
			label = e.Label
		}
	}
	return label, best
}

// Entry возвращает запись палитры по обозначению.
func (p Palette) Entry(label Label) (PaletteEntry, bool) {
	for _, e := range p.entries {
		if e.Label == label {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// WithOverrides возвращает палитру с заменёнными эталонами. Порядок записей не меняется.
func (p Palette) WithOverrides(overrides map[Label]RGB) (Palette, error) {
	out := p
	for label, ref := range overrides {
		found := false
		for i := range out.entries {
			if out.entries[i].Label == label {
				out.entries[i].Reference = ref
				found = true
				break
			}
		}
		if !found {
			return Palette{}, fmt.Errorf("%w: %q", ErrUnknownLabel, label.String())
		}
	}
	return out, nil
}

// ParsePaletteOverrides разбирает строку вида "y=#d3ce36,b=#3e70a3".
func ParsePaletteOverrides(s string) (map[Label]RGB, error) {
	overrides := make(map[Label]RGB)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, hex, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !ok || len(name) != 1 {
			return nil, fmt.Errorf("invalid palette override %q", part)
		}
		c, err := colorful.Hex(strings.TrimSpace(hex))
		if err != nil {
			return nil, fmt.Errorf("invalid palette override %q: %w", part, err)
		}
		overrides[Label(name[0])] = RGBFromColorful(c)
	}
	return overrides, nil
}
