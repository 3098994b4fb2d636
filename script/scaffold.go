package script

import (
	"io"
	"strings"
	"text/template"

	"github.com/laserpy/unicon/constant"
	"github.com/laserpy/unicon/util"
	"github.com/samber/lo"
)

var scaffoldTemplate = lo.Must(template.New("script").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.ScriptTemplate))

// Scaffold writes a starter Lua script named name to w.
func Scaffold(w io.Writer, name, author string) error {
	return scaffoldTemplate.Execute(w, struct {
		Name   string
		Author string
		Global string
	}{
		Name:   name,
		Author: author,
		Global: constant.PhysicalConstantGlobal,
	})
}

// Filename returns the on-disk file name for a script called name.
func Filename(name string) string {
	return util.SanitizeFilename(name) + constant.ScriptExtension
}
