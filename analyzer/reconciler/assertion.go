package reconciler

import (
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/types"
	"strings"
	"unicode"
)

// kindMatchers recognise the atomics described by scalar-kind assertions
var kindMatchers = map[string]func(types.Atomic) bool{
	"int":    isA[types.TInt],
	"float":  isA[types.TFloat],
	"string": isA[types.TString],
	"null":   isA[types.TNull],
	"true":   isA[types.TTrue],
	"false":  isA[types.TFalse],
	"bool":   isBool,
	"array":  isArray,
	"object": isObject,
}

func isBool(a types.Atomic) bool {
	return isA[types.TBool](a) || isA[types.TTrue](a) || isA[types.TFalse](a)
}

func isArray(a types.Atomic) bool {
	return isA[types.TArray](a) || isA[types.TKeyedArray](a)
}

func isObject(a types.Atomic) bool {
	return isA[types.TObject](a) || isA[types.TNamedObject](a) || isA[types.TGenericObject](a)
}

// mixedNarrowings is what mixed becomes once a scalar-kind assertion holds
var mixedNarrowings = map[string]types.Atomic{
	"int":    types.TInt{},
	"float":  types.TFloat{},
	"string": types.TString{},
	"null":   types.TNull{},
	"true":   types.TTrue{},
	"false":  types.TFalse{},
	"bool":   types.TBool{},
	"array":  types.TArray{Key: types.NewUnion(types.TInt{}, types.TString{}), Value: types.Mixed()},
	"object": types.TObject{},
}

func isA[T types.Atomic](a types.Atomic) bool {
	_, ok := a.(T)
	return ok
}

func isClassName(assertion string) bool {
	if assertion == "" {
		return false
	}
	for _, r := range assertion {
		if r != '_' && r != '\\' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return !unicode.IsDigit(rune(assertion[0]))
}

// reconcileAssertion narrows u to the values for which assertion holds.
// It returns false when assertion is not part of the language
func reconcileAssertion(u *types.Union, assertion string, cb *codebase.Codebase) (*types.Union, bool) {
	core, negated := strings.CutPrefix(assertion, "!")
	switch core {
	case "isset":
		return reconcileNull(u, !negated), true
	case "null":
		return reconcileNull(u, negated), true
	case "falsy":
		return reconcileFalsy(u, negated), true
	}
	if matches, ok := kindMatchers[core]; ok {
		if negated {
			return reconcileNotKind(u, core, matches), true
		}
		return reconcileKind(u, core, matches), true
	}
	if isClassName(core) {
		return reconcileClass(u, core, negated, cb), true
	}
	return nil, false
}

// reconcileNull keeps only null, or everything but null when nonNull is set
func reconcileNull(u *types.Union, nonNull bool) *types.Union {
	return u.Map(func(a types.Atomic) []types.Atomic {
		switch a := a.(type) {
		case types.TNull:
			if nonNull {
				return nil
			}
			return []types.Atomic{a}
		case types.TMixed:
			if nonNull {
				return []types.Atomic{types.TMixed{NonNull: true}}
			}
			if a.NonNull {
				return nil
			}
			return []types.Atomic{types.TNull{}}
		default:
			if nonNull {
				return []types.Atomic{a}
			}
			return nil
		}
	})
}

func reconcileFalsy(u *types.Union, truthy bool) *types.Union {
	return u.Map(func(a types.Atomic) []types.Atomic {
		switch a := a.(type) {
		case types.TNull, types.TFalse:
			if truthy {
				return nil
			}
			return []types.Atomic{a}
		case types.TTrue:
			if truthy {
				return []types.Atomic{a}
			}
			return nil
		case types.TBool:
			if truthy {
				return []types.Atomic{types.TTrue{}}
			}
			return []types.Atomic{types.TFalse{}}
		case types.TMixed:
			if truthy {
				return []types.Atomic{types.TMixed{NonNull: true}}
			}
			return []types.Atomic{a}
		case types.TObject, types.TNamedObject, types.TGenericObject:
			// objects are always truthy
			if truthy {
				return []types.Atomic{a}
			}
			return nil
		case types.TKeyedArray:
			// a keyed array with known items is never empty
			if truthy == (len(a.Items) > 0) {
				return []types.Atomic{a}
			}
			return nil
		default:
			// int, float, string and array can be either
			return []types.Atomic{a}
		}
	})
}

func reconcileKind(u *types.Union, kind string, matches func(types.Atomic) bool) *types.Union {
	return u.Map(func(a types.Atomic) []types.Atomic {
		switch {
		case matches(a):
			return []types.Atomic{a}
		case isA[types.TMixed](a), isA[types.TTemplateParam](a):
			return []types.Atomic{mixedNarrowings[kind]}
		case isA[types.TBool](a) && (kind == "true" || kind == "false"):
			return []types.Atomic{mixedNarrowings[kind]}
		default:
			return nil
		}
	})
}

func reconcileNotKind(u *types.Union, kind string, matches func(types.Atomic) bool) *types.Union {
	return u.Map(func(a types.Atomic) []types.Atomic {
		switch {
		case isA[types.TBool](a) && kind == "true":
			return []types.Atomic{types.TFalse{}}
		case isA[types.TBool](a) && kind == "false":
			return []types.Atomic{types.TTrue{}}
		case matches(a):
			return nil
		case kind == "null" && isA[types.TMixed](a):
			return []types.Atomic{types.TMixed{NonNull: true}}
		default:
			return []types.Atomic{a}
		}
	})
}

func objectName(a types.Atomic) (string, bool) {
	switch a := a.(type) {
	case types.TNamedObject:
		return a.Name, true
	case types.TGenericObject:
		return a.Name, true
	default:
		return "", false
	}
}

func reconcileClass(u *types.Union, class string, negated bool, cb *codebase.Codebase) *types.Union {
	if c, ok := cb.Class(class); ok {
		class = c.Name
	}
	return u.Map(func(a types.Atomic) []types.Atomic {
		name, named := objectName(a)
		if negated {
			if named && cb.IsSubclassOf(name, class) {
				return nil
			}
			return []types.Atomic{a}
		}
		switch {
		case named && cb.IsSubclassOf(name, class):
			return []types.Atomic{a}
		case named && cb.IsSubclassOf(class, name):
			return []types.Atomic{types.TNamedObject{Name: class}}
		case isA[types.TMixed](a), isA[types.TObject](a), isA[types.TTemplateParam](a):
			return []types.Atomic{types.TNamedObject{Name: class}}
		default:
			return nil
		}
	})
}
