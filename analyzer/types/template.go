package types

// ReplaceTemplates substitutes every TTemplateParam in u bound in bindings.
// Unbound template parameters are replaced by their upper bound
func ReplaceTemplates(u *Union, bindings map[string]*Union) *Union {
	return u.Map(func(a Atomic) []Atomic {
		return replaceInAtomic(a, bindings)
	})
}

func replaceAll(unions []*Union, bindings map[string]*Union) []*Union {
	replaced := make([]*Union, len(unions))
	for i, u := range unions {
		replaced[i] = ReplaceTemplates(u, bindings)
	}
	return replaced
}

func replaceInAtomic(a Atomic, bindings map[string]*Union) []Atomic {
	switch a := a.(type) {
	case TTemplateParam:
		if bound, ok := bindings[a.Name]; ok {
			return bound.Atomics()
		}
		if a.As != nil {
			return a.As.Atomics()
		}
		return []Atomic{TMixed{}}
	case TGenericObject:
		return []Atomic{TGenericObject{Name: a.Name, Params: replaceAll(a.Params, bindings)}}
	case TKeyedArray:
		return []Atomic{TKeyedArray{Items: replaceAll(a.Items, bindings), IsList: a.IsList}}
	case TArray:
		return []Atomic{TArray{Key: ReplaceTemplates(a.Key, bindings), Value: ReplaceTemplates(a.Value, bindings)}}
	default:
		return []Atomic{a}
	}
}
