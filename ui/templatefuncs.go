package ui

import(
	"errors"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/skypies/util/date"
)

func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": templateAdd,
		"flatten": templateFlatten,
		"sort": templateSort,                 // <p value="{{sort .AStringSlice | flatten}}" />
		"dict": templateDict,                 // {{template "foo" dict "Key" "Val" "OtherArgs" . }}
		"formatPdt": templateFormatPdt,
		"formatUTC": templateFormatUTC,
	}
}


func templateAdd(a int, b int) int { return a + b }
func templateFlatten(in []string) string { return strings.Join(in, " ") }
func templateSort(in []string) []string {
	sort.Strings(in)
	return in
}

func templateFormatPdt(t time.Time, format string) string {
	return date.InPdt(t).Format(format)
}

// Zero times render as a blank cell, not as year one
func templateFormatUTC(t time.Time, format string) string {
	if t.IsZero() { return "" }
	return t.UTC().Format(format)
}

// Args are treated as a sequence of keys and vals, and built into a map. Used to let you
// specify parameters for a sub-template.
func templateDict(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 { return nil, errors.New("invalid dict call")	}
	dict := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i+=2 {
		key, ok := values[i].(string)
		if !ok { return nil, errors.New("dict keys must be strings") }
		dict[key] = values[i+1]
	}
	return dict, nil
}
