package ui

import (
	"fmt"

	"risk-demo/internal/domain"
	"risk-demo/internal/scoring"
	"risk-demo/internal/taxonomy"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

// assessmentForm holds the raw submitted values so a rejected form can be
// shown again as entered.
type assessmentForm struct {
	Department     string
	Risk           string
	ValueChainStep string
	Probability    string
	Frequency      string
	Severity       string
}

type assessmentPageData struct {
	Taxonomy *taxonomy.Taxonomy
	Form     assessmentForm
	Latest   *domain.Assessment
	Records  []domain.Assessment
	Toast    *toast
	CSRF     func() Node
}

func assessmentPage(d assessmentPageData) Node {
	return appPage(
		"Risk Değerlendirmesi",
		d.Toast,
		Div(
			Class("assessment-layout"),
			assessmentFormCard(d),
			scoreCard(d.Latest),
		),
		recordsSection(d.Records, d.CSRF),
	)
}

func assessmentFormCard(d assessmentPageData) Node {
	f := d.Form
	return Div(
		Class(cardClass()),
		data.Signals(map[string]any{
			"department":  f.Department,
			"probability": f.Probability,
			"frequency":   f.Frequency,
		}),
		Form(
			Class("stack-form"),
			Method("post"),
			Action("/ui/assessments"),
			d.CSRF(),
			selectField("Departman", "department", "Departman seçin", d.Taxonomy.Departments, f.Department),
			Div(
				data.Show("$department !== ''"),
				selectField("Risk", "risk", "Risk seçin", d.Taxonomy.Risks, f.Risk),
			),
			selectField("Değer Zinciri Adımı", "valueChainStep", "Adım seçin", d.Taxonomy.ValueChainSteps, f.ValueChainStep),
			numberField("Olasılık", "probability", f.Probability,
				formatRating(domain.MinRating), formatRating(domain.MaxProbability),
				ratingHints("probability", f.Probability, func(r scoring.CanonicalRating) string { return r.Probability })),
			numberField("Sıklık", "frequency", f.Frequency,
				formatRating(domain.MinRating), formatRating(domain.MaxFrequency),
				ratingHints("frequency", f.Frequency, func(r scoring.CanonicalRating) string { return r.Frequency })),
			numberField("Şiddet", "severity", f.Severity,
				formatRating(domain.MinRating), formatRating(domain.MaxSeverity), nil),
			Div(
				Class("form-actions"),
				Button(Type("submit"), Class(primaryButtonClass()), Text("Hesapla ve Kaydet")),
				A(Href("/ui/export"), Class(secondaryButtonClass()), Text("Excel'e Aktar")),
			),
		),
	)
}

// ratingHints renders the description of every canonical rating, showing
// only the one matching the current input.
func ratingHints(signal, current string, describe func(scoring.CanonicalRating) string) Node {
	hints := make([]Node, 0, len(scoring.CanonicalRatings()))
	for _, r := range scoring.CanonicalRatings() {
		value := formatRating(r.Value)
		attrs := []Node{
			Class(mutedClass() + " rating-hint"),
			data.Show(fmt.Sprintf("Number($%s) === %s", signal, value)),
		}
		if value != current {
			attrs = append(attrs, Style("display: none"))
		}
		hints = append(hints, P(Group(attrs), Text(describe(r))))
	}
	return Div(Class("rating-hints"), Group(hints))
}

func scoreCard(latest *domain.Assessment) Node {
	if latest == nil {
		return Div(
			Class(cardClass("score-card")),
			H2(Text("Risk Skoru")),
			P(Class(mutedClass()), Text("Henüz hesaplama yapılmadı.")),
		)
	}
	bracket := scoring.Classify(latest.RiskScore)
	return Div(
		Class(cardClass("score-card")),
		H2(Text("Risk Skoru")),
		P(Class("score-value"), Text(formatScore(latest.RiskScore))),
		Dl(
			Dt(Text("Risk Derecesi")),
			Dd(statusLabel(bracket.DisplayDegree, degreeTone(latest.RiskDegree))),
			Dt(Text("Finansal Etki")),
			Dd(Text(bracket.DisplayImpact)),
		),
		P(Class(mutedClass()), Text(latest.Department+" · "+latest.Risk+" · "+latest.ValueChainStep)),
	)
}

func recordsSection(records []domain.Assessment, csrf func() Node) Node {
	if len(records) == 0 {
		return emptyStateCard("Kayıtlı değerlendirme yok.")
	}

	rows := make([]Node, 0, len(records))
	for i, a := range records {
		rows = append(rows, Tr(
			data.Show(containsExpr(a.Department+" "+a.Risk+" "+a.ValueChainStep)),
			Td(Text(a.Department)),
			Td(Text(a.Risk)),
			Td(Text(a.ValueChainStep)),
			Td(Class("num"), Text(formatRating(a.Probability))),
			Td(Class("num"), Text(formatRating(a.Frequency))),
			Td(Class("num"), Text(formatRating(a.Severity))),
			Td(Class("num"), Text(formatScore(a.RiskScore))),
			Td(statusLabel(a.RiskDegree, degreeTone(a.RiskDegree))),
			Td(Text(a.FinancialImpact)),
			Td(Text(a.DateString())),
			Td(Form(
				Method("post"),
				Action(fmt.Sprintf("/ui/assessments/%d/delete", i)),
				csrf(),
				Button(Type("submit"), Class(dangerButtonClass()), Text("Sil")),
			)),
		))
	}

	return Div(
		data.Signals(map[string]any{"q": ""}),
		quickFilterCard("Filter by department, risk or step",
			Form(
				Method("post"),
				Action("/ui/assessments/clear"),
				csrf(),
				Button(Type("submit"), Class(secondaryButtonClass()), Text("Tümünü Temizle")),
			),
		),
		Div(
			Class(cardClass()),
			H2(Text(fmt.Sprintf("Kayıtlı Değerlendirmeler (%d)", len(records)))),
			Table(
				Class("data-table"),
				THead(Tr(
					Th(Text("Departman")),
					Th(Text("Risk")),
					Th(Text("Değer Zinciri Adımı")),
					Th(Text("Olasılık")),
					Th(Text("Sıklık")),
					Th(Text("Şiddet")),
					Th(Text("Skor")),
					Th(Text("Derece")),
					Th(Text("Finansal Etki")),
					Th(Text("Tarih")),
					Th(),
				)),
				TBody(Group(rows)),
			),
		),
	)
}
