package render

import (
	"bytes"
	"html/template"
	"io"
)

var cocktailBoxTmpl = template.Must(template.New("cocktail-box").Parse(`<div id="cocktail-box">
{{- range .}}
  <div class="drink-div">
    <h1>{{.Name}}</h1>
    <div class="drink-text-div">
      <p>{{.Instructions}}</p>
      <h3>Ingredients &amp; Measures:</h3>
      <ul>
      {{- range .Ingredients}}
        <li>{{.Line}}</li>
      {{- end}}
      </ul>
      {{- if .Glass}}
      <p class="glass">Serve in <i>{{.Glass}}</i></p>
      {{- end}}
    </div>
    <img src="{{.Image}}" alt="{{.Name}}">
  </div>
{{- end}}
</div>
`))

// HTMLBox is a container that renders cards as an HTML fragment, one
// div.drink-div per card inside div#cocktail-box.
type HTMLBox struct {
	Box
}

// NewHTMLBox creates an empty HTML container.
func NewHTMLBox() *HTMLBox {
	return &HTMLBox{}
}

// WriteTo writes the fragment for the current cards to w.
func (h *HTMLBox) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := cocktailBoxTmpl.Execute(&buf, h.Cards()); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// HTML returns the fragment as a template-safe value for embedding in a
// page.
func (h *HTMLBox) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
