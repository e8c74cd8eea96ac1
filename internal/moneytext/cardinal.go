package moneytext

import "strings"

// Spanish cardinal numbers, long scale (millón = 10^6, billón = 10^12).

var unidades = [...]string{
	"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var decenas = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var centenas = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// Cardinal returns the Spanish cardinal words for n, lowercase.
// Negative numbers are prefixed with "menos".
func Cardinal(n int64) string {
	if n == 0 {
		return "cero"
	}
	if n < 0 {
		return "menos " + cardinal(-n)
	}
	return cardinal(n)
}

func cardinal(n int64) string {
	switch {
	case n < 1_000_000:
		return belowMillion(n)
	case n < 1_000_000_000_000:
		head := scaleCount(n/1_000_000, "millón", "millones")
		if rem := n % 1_000_000; rem != 0 {
			return head + " " + belowMillion(rem)
		}
		return head
	default:
		head := scaleCount(n/1_000_000_000_000, "billón", "billones")
		if rem := n % 1_000_000_000_000; rem != 0 {
			return head + " " + cardinal(rem)
		}
		return head
	}
}

// scaleCount spells out a count of millions or billions: "un millón",
// "veintiún millones", "mil millones".
func scaleCount(count int64, singular, plural string) string {
	if count == 1 {
		return "un " + singular
	}
	return apocope(belowMillion(count)) + " " + plural
}

func belowMillion(n int64) string {
	if n < 1000 {
		return belowThousand(n)
	}
	var head string
	if th := n / 1000; th == 1 {
		head = "mil"
	} else {
		head = apocope(belowThousand(th)) + " mil"
	}
	if rem := n % 1000; rem != 0 {
		return head + " " + belowThousand(rem)
	}
	return head
}

func belowThousand(n int64) string {
	if n == 100 {
		return "cien"
	}
	var s string
	if n >= 100 {
		s = centenas[n/100]
		n %= 100
		if n == 0 {
			return s
		}
		s += " "
	}
	if n < 30 {
		return s + unidades[n]
	}
	s += decenas[n/10]
	if n%10 != 0 {
		s += " y " + unidades[n%10]
	}
	return s
}

// apocope shortens a trailing "uno" before a scale word:
// "veintiuno mil" is wrong, "veintiún mil" is right.
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case strings.HasSuffix(s, "uno"):
		return strings.TrimSuffix(s, "uno") + "un"
	}
	return s
}
