package bridge

import (
	"strconv"
	"strings"

	"github.com/Philipp01105/serlog/core"
)

// lineFormat passes pre-rendered text through without interpreting '%'
const lineFormat = core.Text("%s")

// appendPair appends " key=value", quoting values that would be
// ambiguous on a whitespace separated line.
func appendPair(dst []byte, key, value string) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	if value == "" || strings.ContainsAny(value, " \t\r\n=\"") {
		return strconv.AppendQuote(dst, value)
	}
	return append(dst, value...)
}
