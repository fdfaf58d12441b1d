package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pairedStrings renders "a0 T0, a1 T1" style lists.
func pairedStrings(left, right string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(left)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(' ')
		sb.WriteString(right)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams appends last to the T0..Tn list.
func typeParams(count int, last string) string {
	if count == 0 {
		return last
	}
	return prefixedStrings("T", count) + ", " + last
}

func argsName(count int) string {
	return "Args" + strconv.Itoa(count)
}

// argsType is the instantiated ArgsN type, e.g. Args2[T0, T1].
func argsType(count int) string {
	if count == 0 {
		return argsName(count)
	}
	return argsName(count) + "[" + prefixedStrings("T", count) + "]"
}

// argsDecl is the ArgsN type with its constraint, e.g. Args2[T0, T1 any].
func argsDecl(count int) string {
	if count == 0 {
		return argsName(count)
	}
	return argsName(count) + "[" + prefixedStrings("T", count) + " any]"
}

func voidType(count int) string {
	if count == 0 {
		return "Void0"
	}
	return "Void" + strconv.Itoa(count) + "[" + prefixedStrings("T", count) + "]"
}

func voidDecl(count int) string {
	if count == 0 {
		return "Void0"
	}
	return "Void" + strconv.Itoa(count) + "[" + prefixedStrings("T", count) + " any]"
}

// argsLiteral packs a0..an into an ArgsN composite literal.
func argsLiteral(count int) string {
	return argsType(count) + "{" + prefixedStrings("a", count) + "}"
}
