package domain

import (
	"fmt"
	"strings"
)

// MealType is the dietary classification of a topping, food item or order.
type MealType string

const (
	MealMeat       MealType = "MEAT"
	MealVegetarian MealType = "VEGETARIAN"
	MealVegan      MealType = "VEGAN"
)

var mealTypes = []MealType{MealMeat, MealVegetarian, MealVegan}

// MealTypes lists every classification in precedence order.
func MealTypes() []MealType {
	return append([]MealType(nil), mealTypes...)
}

func ParseMealType(s string) (MealType, error) {
	mt := MealType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range mealTypes {
		if mt == known {
			return mt, nil
		}
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

func (m MealType) IsVegetarian() bool { return m != MealMeat }

func (m MealType) IsVegan() bool { return m == MealVegan }

type dietary interface {
	IsVegetarian() bool
	IsVegan() bool
}

// classify applies MEAT > VEGETARIAN > VEGAN precedence. The first
// non-vegetarian element decides the result.
func classify[T dietary](elems []T) MealType {
	nonVegan := false
	for _, e := range elems {
		if !e.IsVegetarian() {
			return MealMeat
		}
		if !e.IsVegan() {
			nonVegan = true
		}
	}
	if nonVegan {
		return MealVegetarian
	}
	return MealVegan
}
