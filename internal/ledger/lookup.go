package ledger

import "strings"

// FindPlayer resolves a typed player reference to a player ID. The reference
// may be an ID, a full name or any unambiguous name prefix (so short names
// work), all compared case-insensitively except the ID.
func (l *Ledger) FindPlayer(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrUnknownPlayer
	}

	if _, ok := l.playerMap[ref]; ok {
		return ref, nil
	}

	folded := strings.ToLower(ref)

	var exact, prefixed []string
	for _, id := range l.playerOrder {
		name := strings.ToLower(l.playerMap[id].Name)
		if name == folded {
			exact = append(exact, id)
		}
		if strings.HasPrefix(name, folded) {
			prefixed = append(prefixed, id)
		}
	}

	switch {
	case len(exact) == 1:
		return exact[0], nil
	case len(exact) > 1:
		return "", ErrAmbiguousPlayer
	case len(prefixed) == 1:
		return prefixed[0], nil
	case len(prefixed) > 1:
		return "", ErrAmbiguousPlayer
	default:
		return "", ErrUnknownPlayer
	}
}
