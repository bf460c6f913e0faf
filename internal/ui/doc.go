// Package ui turns decoded encoder input into rendered menu frames.
//
// The Engine runs one cooperative tick at a time:
//   - the input.Decoder is scanned once and yields a rotation delta and at
//     most one classified button event;
//   - the Navigator applies them to the page stack, edit mode and menu
//     bindings, dispatching callbacks through the ui/command bus;
//   - cursor, scroll and label springs integrate one step;
//   - the List or Carousel layout draws the current page onto a Surface, or
//     an active Takeover draws instead;
//   - the Transition blends the previous screen into the new one with an
//     ordered dither, and the frame is presented.
//
// The package also hosts the Bubble Tea simulator front end (Model), which
// drives the same Engine from keyboard gestures routed through a
// backend.VirtualEncoder and draws each presented frame with half-block
// characters, with an inspector of the current page beside it on wide
// terminals. Messages are routed through a typed handler registry so each
// tea.Msg is handled by a focused function.
//
// Window arithmetic shared by the layouts lives in internal/ui/state.
package ui
