package path

import "github.com/hueristiq/hq-go-weburl/ascii"

// walker carries the single slot of deferred state the reverse scan needs:
// a pending count of popped ".." segments, a run of deferred empty
// segments, and at most one deferred Windows-drive-letter candidate.
type walker struct {
	v            Visitor
	isFileScheme bool

	popcount int

	deferredEmpty int

	haveDrive     bool
	driveSegment  []byte
	driveIsInput  bool
	drivePopcount int

	emittedAny   bool
	lastWasEmpty bool
}

func (w *walker) flushEmpties() {
	if w.deferredEmpty > 0 {
		w.v.VisitEmptyComponents(w.deferredEmpty)
		w.deferredEmpty = 0
		w.emittedAny = true
		w.lastWasEmpty = true
	}
}

// flushDriveAsOrdinary disqualifies a deferred drive candidate (something
// was found to its left) and emits it as a plain segment instead.
func (w *walker) flushDriveAsOrdinary() {
	if !w.haveDrive {
		return
	}

	seg := w.driveSegment
	isInput := w.driveIsInput
	w.haveDrive = false
	w.driveSegment = nil

	w.flushEmpties()

	if isInput {
		w.v.VisitInputComponent(seg, false)
	} else {
		w.v.VisitBaseComponent(seg)
	}

	w.emittedAny = true
	w.lastWasEmpty = false
}

func (w *walker) emit(seg []byte, isInput bool) {
	w.flushEmpties()

	if isInput {
		w.v.VisitInputComponent(seg, false)
	} else {
		w.v.VisitBaseComponent(seg)
	}

	w.emittedAny = true
	w.lastWasEmpty = false
}

func (w *walker) processSegment(seg []byte, isInput, isTrailingOfInput bool) {
	switch {
	case ascii.IsDoubleDotPathSegment(seg):
		w.popcount++

		if isTrailingOfInput {
			w.deferredEmpty++
		}
	case ascii.IsSingleDotPathSegment(seg):
		if isTrailingOfInput {
			w.deferredEmpty++
		}
	case w.isFileScheme && ascii.IsWindowsDriveLetter(seg):
		w.flushDriveAsOrdinary()
		w.flushEmpties()

		w.haveDrive = true
		w.driveSegment = seg
		w.driveIsInput = isInput
		w.drivePopcount = w.popcount
		w.popcount = 0
	case w.popcount > 0:
		w.popcount--
	default:
		if w.haveDrive && w.popcount == 0 {
			w.flushDriveAsOrdinary()
		}

		if len(seg) == 0 {
			w.deferredEmpty++
		} else {
			w.emit(seg, isInput)
		}
	}
}

// isPathSeparator reports whether b splits path segments under the given
// scheme-speciality, matching ascii.IsPathSeparator.
func isPathSeparator(b byte, special bool) bool {
	return ascii.IsPathSeparator(b, special)
}

// splitSegments splits p on its path separator(s), preserving empty
// segments exactly as a classic split would (a leading separator yields a
// leading empty segment, a trailing one a trailing empty segment).
func splitSegments(p []byte, special bool) [][]byte {
	if len(p) == 0 {
		return nil
	}

	var segments [][]byte

	start := 0

	for i := 0; i < len(p); i++ {
		if isPathSeparator(p[i], special) {
			segments = append(segments, p[start:i])
			start = i + 1
		}
	}

	segments = append(segments, p[start:])

	return segments
}

// baseDriveLetter reports the Windows drive letter starting basePath, if
// any, for the file-URL "copy drive from base" quirk.
func baseDriveLetter(basePath []byte, special bool) (drive []byte, ok bool) {
	segments := splitSegments(basePath, special)
	if len(segments) < 2 { //nolint:mnd
		return nil, false
	}

	first := segments[1]
	if ascii.IsWindowsDriveLetter(first) {
		return first, true
	}

	return nil, false
}

// Walk consumes input (and, for relative input, basePath) in reverse and
// reports the normalized path components to v, per spec.md §4.4. Visitor
// calls are made in reverse final order — the rightmost output component
// first — so that a buffer writer sized by a prior metrics pass can fill
// the pre-allocated output back to front; callers that need forward order
// must buffer and reverse, or write backward as the reference writer does.
func Walk(v Visitor, input, basePath []byte, opt Options) {
	w := &walker{v: v, isFileScheme: opt.IsFileScheme}

	if len(input) == 0 {
		switch {
		case opt.IsSpecial:
			v.VisitEmptyComponents(1)
		case len(basePath) > 0:
			Walk(v, []byte("."), basePath, opt)

			return
		}

		maybeEmitSigil(v, false, opt.HasAuthority)

		return
	}

	isAbsoluteInput := isPathSeparator(input[0], opt.IsSpecial)

	inputSegments := splitSegments(input, opt.IsSpecial)

	// A leading separator produces a leading "" split artifact that marks
	// the path as absolute; it is not itself a segment to visit.
	inputStart := 0
	if isAbsoluteInput {
		inputStart = 1
	}

	for i := len(inputSegments) - 1; i >= inputStart; i-- {
		w.processSegment(inputSegments[i], true, i == len(inputSegments)-1)
	}

	driveConfirmed := false

	switch {
	case w.haveDrive && isAbsoluteInput:
		w.v.VisitInputComponent(w.driveSegment, true)
		w.haveDrive = false
		w.emittedAny = true
		w.lastWasEmpty = false
		driveConfirmed = true
	case isAbsoluteInput:
		if opt.IsFileScheme && opt.AbsolutePathsCopyWindowsDriveFromBase {
			if drive, ok := baseDriveLetter(basePath, opt.IsSpecial); ok {
				w.v.VisitBaseComponent(drive)
				w.emittedAny = true
				w.lastWasEmpty = false
			}
		}
	default:
		if len(basePath) > 0 {
			baseSegments := splitSegments(basePath, opt.IsSpecial)
			if len(baseSegments) > 0 {
				baseSegments = baseSegments[:len(baseSegments)-1]
			}

			baseStart := 0
			if isPathSeparator(basePath[0], opt.IsSpecial) {
				baseStart = 1
			}

			for i := len(baseSegments) - 1; i >= baseStart; i-- {
				w.processSegment(baseSegments[i], false, false)
			}
		}
	}

	if !driveConfirmed {
		w.flushDriveAsOrdinary()
		w.flushEmpties()
	}

	maybeEmitSigil(v, w.emittedAny && w.lastWasEmpty, opt.HasAuthority)
}

func maybeEmitSigil(v Visitor, leftmostIsEmpty, hasAuthority bool) {
	if !hasAuthority && leftmostIsEmpty {
		v.VisitPathSigil()
	}
}
