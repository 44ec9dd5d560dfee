// Package carousel implements the looping venture carousel.
//
// A Controller owns one index over a fixed item catalog and reconciles three
// independent advance sources into it: the autoplay timer, manual controls
// (next/prev/jump) and drag gestures. The timer may only move the index while
// the carousel is neither paused nor dragging; manual and drag input always
// pause first, and only a hover-leave resumes autoplay.
//
// The renderer paints a window over the items repeated three times so the strip
// can slide past the end of the catalog. That repetition is never materialised:
// View maps any render position onto the single item slice. Once a forward slide
// lands on index N or beyond, Reconcile folds the index back by N on a
// non-animated frame. Autoplay schedules that itself one slide after a timer
// advance reaches N; the renderer calls it after its own animated slides.
package carousel
