// Package htmltext converts rich-text editor output into plain text.
//
// Анкеты (bio, experience, education) хранятся с HTML-разметкой из
// rich-text редактора. Любой плоский потребитель - экспорт в Excel,
// админ-списки, email - обязан проходить через Strip, а не чистить
// строки на месте.
package htmltext

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// Strip убирает из строки все HTML-теги и схлопывает пробелы.
func Strip(s string) string {
	if s == "" {
		return ""
	}

	// Блочные теги превращаем в пробелы заранее, иначе "<p>a</p><p>b</p>"
	// склеится в "ab"
	replacer := strings.NewReplacer(
		"</p>", " ", "</div>", " ", "</li>", " ",
		"<br>", " ", "<br/>", " ", "<br />", " ",
	)
	s = replacer.Replace(s)

	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)

	return strings.Join(strings.Fields(s), " ")
}
