package chords

// The twelve pitch classes, spelled with sharps and with flats. Five of
// them have two letter names; which one is used depends on the target
// key (see PreferFlats).
var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// pitchClasses maps every letter+accidental spelling to its pitch
// class, including the uncommon enharmonic spellings (Cb, B#, Fb, E#)
// that show up in imported sheets.
var pitchClasses = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// NotePitchClass returns the pitch class (0-11) of a note name such as
// "F#" or "Bb". The second return value is false when the name is not a
// note.
func NotePitchClass(name string) (int, bool) {
	pc, ok := pitchClasses[name]
	return pc, ok
}

// NoteName spells a pitch class with sharps or flats.
func NoteName(pitchClass int, flats bool) string {
	pc := ((pitchClass % 12) + 12) % 12
	if flats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// TransposeNote shifts a note name by the given number of semitones and
// respells it. Anything that is not a note name comes back unchanged.
func TransposeNote(name string, semitones int, flats bool) string {
	pc, ok := NotePitchClass(name)
	if !ok {
		return name
	}
	return NoteName(pc+semitones, flats)
}
