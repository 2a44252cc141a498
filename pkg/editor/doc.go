// Package editor owns one editable building section.
//
// An [Editor] holds the setup values, the current [section.Section] and the
// surface width used for hit testing. User interaction is modelled in two
// steps so that every front end (terminal, HTTP, batch CLI) can supply its own
// prompt:
//
//  1. [Editor.Click] resolves a pointer position to a [PendingEdit] carrying
//     the prompt text and the current value.
//  2. [Editor.Commit] applies the user's answer. Cancelled or invalid answers
//     leave the section untouched.
//
// A click in the label column asks for a new apartment count for that floor;
// committing a valid count renumbers every non-custom apartment in the
// section. A click on an apartment cell asks for a label; committing any
// non-empty text marks that apartment custom.
//
// [section.Section]: github.com/matzehuels/daireno/pkg/section.Section
package editor
