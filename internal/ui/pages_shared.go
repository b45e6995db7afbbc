package ui

import (
	"strconv"
	"strings"

	"risk-demo/internal/scoring"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

const datastarBundle = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

func pageHead(title string, withDatastar bool) Node {
	var datastar Node
	if withDatastar {
		datastar = Script(Type("module"), Src(datastarBundle))
	}
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | Risk Değerlendirme")),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("stylesheet"), Href("/ui/static/app.css")),
		Script(Raw(themeInitScript)),
		datastar,
	)
}

func appPage(title string, t *toast, body ...Node) Node {
	return HTML(
		Lang("tr"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		pageHead(title, true),
		Body(
			Main(Class("app-shell"),
				Div(
					Class("topbar"),
					Div(
						Strong(Text("Risk Değerlendirme")),
						P(Class(mutedClass()), Text("Probability × frequency × severity scoring")),
					),
					Button(
						Type("button"),
						ID("theme-toggle"),
						Class(secondaryButtonClass()),
						Span(ID("theme-icon-sun"), Text("☀")),
						Span(ID("theme-icon-moon"), Class("is-hidden"), Text("☾")),
					),
				),
				H1(Class("page-title"), Text(title)),
				toastNode(t),
				Div(Class("content"), Group(body)),
			),
			Script(Raw(themeBehaviorScript)),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("tr"),
		Attr("data-color-mode", "auto"),
		Attr("data-light-theme", "light"),
		Attr("data-dark-theme", "dark"),
		pageHead(title, false),
		Body(
			Main(
				Class("layout"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href("/ui"), Text("Back to the assessment form"))),
			),
		),
	)
}

func toastNode(t *toast) Node {
	if t == nil {
		return nil
	}
	className := "flash toast"
	if t.Kind == toastSuccess {
		className += " flash-success"
	} else {
		className += " flash-error"
	}
	return Div(Class(className), Role("status"), Attr("aria-live", "polite"), Text(t.Message))
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func cardClass(extra ...string) string {
	parts := []string{"Box", "p-3", "mb-3", "card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "color-fg-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func secondaryButtonClass() string {
	return "btn"
}

func dangerButtonClass() string {
	return "btn btn-sm btn-danger"
}

func quickFilterCard(placeholder string, extraControls ...Node) Node {
	controls := []Node{
		Div(
			Class("d-flex flex-items-center gap-2 flex-1"),
			Label(Class("sr-only"), Text("Quick filter")),
			Input(Type("search"), Class("form-control"), Placeholder(placeholder), data.Bind("q"), AutoComplete("off")),
		),
	}
	controls = append(controls, extraControls...)
	return Div(
		Class(cardClass("toolbar")),
		Div(Class("d-flex flex-wrap flex-items-center gap-2"), Group(controls)),
	)
}

func emptyStateCard(message string) Node {
	return Div(
		Class(cardClass("blankslate")),
		P(Class("color-fg-muted mb-2"), Text(message)),
	)
}

func statusLabel(text, tone string) Node {
	className := "Label"
	if tone != "" {
		className += " Label--" + tone
	}
	return Span(Class(className), Text(text))
}

// degreeTone maps a risk degree to a label colour.
func degreeTone(degree string) string {
	switch degree {
	case scoring.DegreeVeryHigh:
		return "danger"
	case scoring.DegreeHigh:
		return "severe"
	case scoring.DegreeMedium:
		return "attention"
	case scoring.DegreeLow:
		return "accent"
	default:
		return "success"
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
