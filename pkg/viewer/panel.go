package viewer

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/feedback"
)

// InfoPanel shows the catalog entry of the selected region
type InfoPanel struct {
	catalog     *anatomy.Catalog
	title       *widget.Label
	description *widget.Label
	facts       *widget.Label
	hover       *widget.Label
	accent      *canvas.Rectangle
	content     *fyne.Container
}

// NewInfoPanel creates an empty panel resolving regions through catalog
func NewInfoPanel(catalog *anatomy.Catalog) *InfoPanel {
	p := &InfoPanel{
		catalog:     catalog,
		title:       widget.NewLabel(""),
		description: widget.NewLabel(""),
		facts:       widget.NewLabel(""),
		hover:       widget.NewLabel(""),
		accent:      canvas.NewRectangle(Background),
	}
	p.title.TextStyle = fyne.TextStyle{Bold: true}
	p.description.Wrapping = fyne.TextWrapWord
	p.facts.Wrapping = fyne.TextWrapWord
	p.accent.SetMinSize(fyne.NewSize(0, 4))

	p.content = container.NewVBox(
		p.title,
		p.accent,
		p.description,
		p.facts,
		widget.NewSeparator(),
		p.hover,
	)
	p.ShowSelected(anatomy.None)
	return p
}

// Content returns the canvas object to place in a window
func (p *InfoPanel) Content() fyne.CanvasObject {
	return p.content
}

// SetCatalog swaps the catalog, for example after a hot reload
func (p *InfoPanel) SetCatalog(c *anatomy.Catalog) {
	p.catalog = c
}

// ShowSelected renders the entry for r. None clears the panel.
func (p *InfoPanel) ShowSelected(r anatomy.Region) {
	p.accent.FillColor = Background
	defer p.accent.Refresh()

	if !r.Valid() {
		p.title.SetText("Nothing selected")
		p.description.SetText("Click on the body to select a region.")
		p.facts.SetText("")
		return
	}

	info, _ := p.catalog.Lookup(r)
	p.title.SetText(p.catalog.DisplayName(r))
	p.description.SetText(info.Description)
	p.facts.SetText(formatFacts(info.Facts))
	if c, err := feedback.ParseHex(info.AccentColor); err == nil {
		p.accent.FillColor = c
	}
}

// ShowHovered updates the hover hint line
func (p *InfoPanel) ShowHovered(r anatomy.Region) {
	if !r.Valid() {
		p.hover.SetText("")
		return
	}
	p.hover.SetText(fmt.Sprintf("Pointing at: %s", p.catalog.DisplayName(r)))
}

// Title returns the displayed title
func (p *InfoPanel) Title() string {
	return p.title.Text
}

// Hint returns the displayed hover line
func (p *InfoPanel) Hint() string {
	return p.hover.Text
}

func formatFacts(facts []string) string {
	var b strings.Builder
	for _, f := range facts {
		b.WriteString("• ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
