package geminiapi

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

type MethodCategory string

const (
	MethodCategoryPublic  MethodCategory = "public"
	MethodCategoryPrivate MethodCategory = "private"
)

// methodCategories maps the first path segment of a method to its category.
var methodCategories = map[string]MethodCategory{
	"symbols": MethodCategoryPublic,
	"book":    MethodCategoryPublic,
	"trades":  MethodCategoryPublic,

	"order":     MethodCategoryPrivate,
	"orders":    MethodCategoryPrivate,
	"mytrades":  MethodCategoryPrivate,
	"balances":  MethodCategoryPrivate,
	"heartbeat": MethodCategoryPrivate,
}

// Classify returns the category of the method from its first path segment,
// "book/btcusd" is public and "order/cancel/all" is private.
func Classify(method string) (MethodCategory, error) {
	segment, _, _ := strings.Cut(method, "/")
	category, ok := methodCategories[segment]
	if !ok {
		return "", &UnknownMethodError{Method: method}
	}

	return category, nil
}

func apiPath(method string) string {
	return APIVersionPrefix + method
}

var symbolPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// validateSymbol rejects symbols that would change the request path once embedded in a method.
func validateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return errors.Errorf("invalid symbol %q, symbols are alphanumeric like btcusd", symbol)
	}

	return nil
}
