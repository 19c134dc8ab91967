package modchem

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"modchem-backend/lib/chem"
	"modchem-backend/lib/periodic"
)

//go:embed templates/page.html
var templateFS embed.FS

//go:embed assets
var assetsFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

var frameTemplate = template.Must(template.New("frame").Parse(
	`<iframe class="ten columns offset-by-one" sandbox="" srcdoc="{{.}}" ` +
		`style="width: 80%; height: 520px; border-color: rgb(59, 57, 57); background-color: white; font-family: inherit;"></iframe>`,
))

const intro = "This app was made for people who are interested in learning Chemistry and to demonstrate the fundamentals of Modular Chemistry. " +
	"To use this app, simply select from one of the four Compound Structures; 'Organic', 'Ionic', 'Oxide' or 'Hydroxide' and then click on the names of the elements in the table below. " +
	"To help you form stable compounds, you can refer to the numbers above the table. " +
	"For instance, we see that 'Lithium' is directly underneath the number 7, this means that it needs 7 electrons to form a stable compound, you can therefore click on any compound whose numbers add up to 8; 'Mg' (6) and 'O' (2) sum to 8, as does 'Boron' (5) and three 'Hydrogens' (1). " +
	"This is called the Rule of Eight. " +
	"Of course you can have compounds which are not as stable as these which sum to seven, or ten, even twenty, so this is more of a guideline (or rule of thumb) rather than a strict rule. " +
	"As you move further down into the centre of the periodic table, the Rule of Eight becomes less applicable, as the number of electron spaces increases from 8 to 18 to 32, this is why some of the elements in this area are repeated twice, to show that they can accept more electrons. " +
	"If you play around with this you might be able to discover new compounds or existing ones. " +
	"If the compound you find is in our database, you will receive a printout with the Chemical Name, Synonym and CAS Number. " +
	"When this happens information from Wikipedia will (more often than not) appear on the screen. " +
	"NOTE: This feature is still in Beta and can return unexpected results. " +
	"You must hit the reset button to clear the field and start a new compound structure."

var modeButtons = map[chem.Mode]string{
	chem.Organic:   "Organic",
	chem.Ionic:     "Ionic",
	chem.Oxide:     "Oxides",
	chem.Hydroxide: "Hydroxides",
}

// RenderFrame embeds an html document in a sandboxed inline frame.
func RenderFrame(body string) (template.HTML, error) {
	var buf bytes.Buffer
	err := frameTemplate.Execute(&buf, body)
	if err != nil {
		return "", fmt.Errorf("render frame: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type cellView struct {
	ID    string
	Name  string
	Style template.CSS
}

type modeView struct {
	Mode   chem.Mode
	Label  string
	Active bool
}

type pageView struct {
	Intro      string
	Valences   []int
	Rows       [][]cellView
	Modes      []modeView
	State      State
	Resolution Resolution
	Frame      template.HTML
}

// RenderPage writes the full page for a session.
func RenderPage(w io.Writer, state State, resolution Resolution, article Article) error {
	frame, err := RenderFrame(article.Body)
	if err != nil {
		return err
	}

	view := pageView{
		Intro:      intro,
		Valences:   periodic.Valences,
		State:      state,
		Resolution: resolution,
		Frame:      frame,
	}
	for _, row := range periodic.Rows() {
		cells := make([]cellView, len(row))
		for i, b := range row {
			if b.Empty() {
				continue
			}
			cells[i] = cellView{
				ID:   b.ID,
				Name: b.Name,
				// colours come from a fixed table
				Style: template.CSS("background-color: " + b.Group.Color()),
			}
		}
		view.Rows = append(view.Rows, cells)
	}
	for _, m := range chem.Modes {
		view.Modes = append(view.Modes, modeView{
			Mode:   m,
			Label:  modeButtons[m],
			Active: m == state.Mode,
		})
	}

	return pageTemplate.Execute(w, view)
}
