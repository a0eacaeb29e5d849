package render

import (
	"bytes"
	"html/template"

	"github.com/washyaderner/vibe-n-thrive/internal/domain"
)

type navLink struct {
	Anchor string
	Label  string
}

type renderedSection struct {
	ID   string
	Body template.HTML
}

type pageView struct {
	Title    string
	Nav      []navLink
	Sections []renderedSection
}

// AssemblePage renders every section in the fixed order and emits the
// final document. Nav links and section ids both come from Sections, so
// every anchor resolves and no anchor is orphaned. Any section failure
// aborts assembly: a partially broken document never leaves this
// function.
func (e *Engine) AssemblePage(data PageData) ([]byte, error) {
	pv := pageView{
		Title:    data.Practice.Name,
		Nav:      make([]navLink, 0, len(Sections)),
		Sections: make([]renderedSection, 0, len(Sections)),
	}
	for _, sec := range Sections {
		body, err := e.RenderSection(sec, data)
		if err != nil {
			return nil, err
		}
		pv.Sections = append(pv.Sections, renderedSection{ID: sec.ID, Body: body})
		if sec.NavLabel != "" {
			pv.Nav = append(pv.Nav, navLink{Anchor: sec.ID, Label: sec.NavLabel})
		}
	}

	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "page.html", pv); err != nil {
		return nil, &domain.RenderError{Section: "page", Err: err}
	}
	return buf.Bytes(), nil
}
