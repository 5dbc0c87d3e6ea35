package codes

// Detect resolves input against the table. An exact code match wins over a
// name or alias match, so a string that is both one entry's code and
// another entry's alias resolves to the code's entry.
func Detect(t *Table, input string) (Entry, error) {
	if e, ok := t.FindByCode(input); ok {
		return e, nil
	}
	if e, ok := t.FindByNameOrAlias(input); ok {
		return e, nil
	}
	return Entry{}, &UnknownIdentifierError{Dimension: t.dim, Input: input}
}

// Detect is shorthand for Detect(t, input).
func (t *Table) Detect(input string) (Entry, error) {
	return Detect(t, input)
}

// ResolveArea returns the canonical area code for a code, name or alias.
func ResolveArea(input string) (string, error) {
	return resolveCode(Areas, input)
}

// ResolveService returns the canonical service code for a code, name or alias.
func ResolveService(input string) (string, error) {
	return resolveCode(Services, input)
}

// ResolveGenre returns the canonical genre code for a code, name or alias.
func ResolveGenre(input string) (string, error) {
	return resolveCode(Genres, input)
}

func resolveCode(t *Table, input string) (string, error) {
	e, err := Detect(t, input)
	if err != nil {
		return "", err
	}
	return e.Code, nil
}

// TableFor returns the built-in table for a dimension.
func TableFor(dim Dimension) (*Table, bool) {
	switch dim {
	case DimensionArea:
		return Areas, true
	case DimensionService:
		return Services, true
	case DimensionGenre:
		return Genres, true
	}
	return nil, false
}
