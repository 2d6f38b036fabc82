package ui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// money formats an amount with thousands separators.
func money(amount int) string {
	return printer.Sprintf("$%d", amount)
}

// itemName returns the display form of an inventory key.
func itemName(name string) string {
	return titler.String(name)
}
