package token

// ComputeWordFlags derives the WORD-level flags from its Parts, per
// spec.md §3.1/§3.2. It is called once at word finalization, after
// CoalesceParts. Pathname/field-splitting eligibility is a property of
// individual unquoted expansion Parts; literal-only words never need
// either regardless of quoting.
func ComputeWordFlags(parts []Part) (needsExpansion, needsFieldSplitting, needsPathnameExpansion bool) {
	for _, p := range parts {
		switch p.Kind {
		case Parameter, CommandSubst, Arithmetic:
			needsExpansion = true
			if !p.WasDoubleQuoted {
				needsFieldSplitting = true
				needsPathnameExpansion = true
			}
		case Tilde:
			needsExpansion = true
		}
	}
	return
}

// WordIsQuotedAsWhole reports whether every Part of a WORD was quoted
// (spec.md §4.5 alias-eligibility rule #2: "the WORD was not quoted as
// a whole"). An empty Part list is not quoted as a whole.
func WordIsQuotedAsWhole(parts []Part) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		switch p.Kind {
		case Literal:
			if !p.WasSingleQuoted && !p.WasDoubleQuoted {
				return false
			}
		case Parameter, CommandSubst, Arithmetic:
			if !p.WasDoubleQuoted {
				return false
			}
		case Tilde:
			return false
		}
	}
	return true
}

// IsSingleUnquotedLiteral reports whether a WORD's Parts are exactly
// one unquoted Literal (spec.md §4.5 alias-eligibility rule #3, and
// the IO_NUMBER-promotion precondition in §4.5).
func IsSingleUnquotedLiteral(parts []Part) (text string, ok bool) {
	if len(parts) != 1 || parts[0].Kind != Literal {
		return "", false
	}
	p := parts[0]
	if p.WasSingleQuoted || p.WasDoubleQuoted {
		return "", false
	}
	return p.Text, true
}

// IsAllDigits reports whether s is a non-empty run of decimal digits,
// the shape required of an IO_NUMBER candidate (spec.md §4.5).
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsShellName reports whether s is a valid shell name: a leading
// letter or underscore, followed by letters, digits, or underscores
// (spec.md §4.3.9 rule #3, §4.3.4's name-run definition).
func IsShellName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
		isDigit := c >= '0' && c <= '9'
		if i == 0 {
			if !isLetter {
				return false
			}
			continue
		}
		if !isLetter && !isDigit {
			return false
		}
	}
	return true
}
