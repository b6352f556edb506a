package chords

// TransposeChord shifts a chord token by the given number of semitones.
// Root and slash bass move independently by the same interval; the
// quality suffix is copied verbatim. A token that is not a chord comes
// back unchanged, so transposition is a no-op on plain text.
func TransposeChord(token string, semitones int, flats bool) string {
	c, ok := ParseChord(token)
	if !ok {
		return token
	}
	c.Root = TransposeNote(c.Root, semitones, flats)
	if c.Bass != "" {
		c.Bass = TransposeNote(c.Bass, semitones, flats)
	}
	return c.String()
}

// TransposeLine transposes every chord marker of a parsed line.
func TransposeLine(line Line, semitones int, flats bool) Line {
	markers := make([]Marker, len(line.Markers))
	for i, m := range line.Markers {
		m.Chord = TransposeChord(m.Chord, semitones, flats)
		markers[i] = m
	}
	return Line{Text: line.Text, Markers: markers}
}

// TransposeContent transposes a whole canonical content string between
// two canonical keys, respelling every chord for the target key. The
// lyric text is untouched. It errors only when one of the key names is
// not canonical.
func TransposeContent(content, fromKey, toKey string) (string, error) {
	semitones, err := SemitonesBetween(fromKey, toKey)
	if err != nil {
		return "", err
	}
	flats := PreferFlats(toKey)
	lines := ParseContent(content)
	for i, line := range lines {
		lines[i] = TransposeLine(line, semitones, flats)
	}
	return SerializeContent(lines), nil
}
