package ui

import (
	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

func optionSelected(value, selected string) Node {
	if value == selected {
		return Option(Value(value), Selected(), Text(value))
	}
	return Option(Value(value), Text(value))
}

// selectField renders a labelled select bound to a datastar signal of the
// same name. The first option is an empty placeholder.
func selectField(label, name, placeholder string, options []string, selected string, extra ...Node) Node {
	opts := make([]Node, 0, len(options)+1)
	opts = append(opts, Option(Value(""), Text(placeholder)))
	for _, o := range options {
		opts = append(opts, optionSelected(o, selected))
	}
	return Div(
		Class("form-group"),
		Group(extra),
		Label(For(name), Text(label)),
		Select(ID(name), Name(name), Class("form-select"), data.Bind(name), Group(opts)),
	)
}

// numberField renders a labelled decimal input with min/max hints.
func numberField(label, name, value, minValue, maxValue string, hint Node) Node {
	return Div(
		Class("form-group"),
		Label(For(name), Text(label)),
		Input(
			ID(name),
			Name(name),
			Type("number"),
			Class("form-control"),
			Attr("step", "0.1"),
			Min(minValue),
			Max(maxValue),
			Value(value),
			data.Bind(name),
		),
		hint,
	)
}
