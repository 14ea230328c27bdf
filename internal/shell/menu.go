// Package shell is the console frame: navigation menu, page layout and the
// renderer every screen handler writes through.
package shell

import "strings"

type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Menu is the navigation table. The root path serves the first item.
var Menu = []MenuItem{
	{Label: "Сотрудники", Path: "/employees"},
	{Label: "Коэффициенты", Path: "/coefficients"},
	{Label: "Смены", Path: "/shifts"},
	{Label: "Статистика", Path: "/statistics"},
	{Label: "Расчет ЗП", Path: "/salary"},
}

// ActivePath returns the menu path that owns the request path.
func ActivePath(path string) string {
	if path == "" || path == "/" {
		return Menu[0].Path
	}
	for _, item := range Menu {
		if path == item.Path || strings.HasPrefix(path, item.Path+"/") {
			return item.Path
		}
	}
	return ""
}

// Title is the label of the menu item for path.
func Title(path string) string {
	active := ActivePath(path)
	for _, item := range Menu {
		if item.Path == active {
			return item.Label
		}
	}
	return ""
}
