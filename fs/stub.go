package fs

import (
	"sort"
	"strings"
	"text/template"

	"github.com/fwojciec/advent"
)

// Language describes how solution stubs are generated for one toolchain.
type Language struct {
	Name string
	Ext  string
	tmpl *template.Template
}

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "rust"

var languages = map[string]*Language{
	"rust": {
		Name: "rust",
		Ext:  "rs",
		tmpl: template.Must(template.New("rust").Parse(rustStub)),
	},
	"go": {
		Name: "go",
		Ext:  "go",
		tmpl: template.Must(template.New("go").Parse(goStub)),
	},
}

// LookupLanguage returns the stub language registered under name.
func LookupLanguage(name string) (*Language, error) {
	lang, ok := languages[strings.ToLower(name)]
	if !ok {
		return nil, advent.Errorf(advent.EINVALID, "unsupported language %q (supported: %s)",
			name, strings.Join(LanguageNames(), ", "))
	}
	return lang, nil
}

// LanguageNames lists the supported stub languages in sorted order.
func LanguageNames() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the stub source for the given day.
func (l *Language) Render(day advent.Day) (string, error) {
	var b strings.Builder
	if err := l.tmpl.Execute(&b, day); err != nil {
		return "", err
	}
	return b.String(), nil
}

const rustStub = `use crate::Solution;
pub struct Day{{.Day}};

impl Solution for Day{{.Day}} {
    type ParsedInput = String;

    fn parse_input(input_lines: &str) -> Self::ParsedInput {
        todo!()
    }

    fn part_1(parsed_input: &Self::ParsedInput) -> String {
        todo!()
    }

    fn part_2(parsed_input: Self::ParsedInput) -> String {
        todo!()
    }
}
`

const goStub = `package aoc{{.Year}}

// Day{{.Day}}Part1 solves part one of {{.Year}} day {{.Day}}.
func Day{{.Day}}Part1(input string) string {
	panic("not implemented")
}

// Day{{.Day}}Part2 solves part two of {{.Year}} day {{.Day}}.
func Day{{.Day}}Part2(input string) string {
	panic("not implemented")
}
`
