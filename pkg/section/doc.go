// Package section models a building section: an ordered stack of floors, each
// holding a row of sequentially numbered apartments.
//
// # Overview
//
// A [Section] is built by [Generate] from three counts: normal floors
// (including the ground floor), basements, and the default number of
// apartments per floor. Floors are stored bottom-up: the deepest basement
// first, the top floor last. Each floor carries its vertical offset in
// drawing units, with the top floor at offset 0:
//
//	offset   0  "2. Normal Kat"   apartments 7 8 9
//	offset  50  "1. Normal Kat"   apartments 4 5 6
//	offset 100  "Zemin Kat"       apartments 1 2 3     <- lowest normal floor
//
// Apartment numbers come from one running counter across floors in stored
// order and left to right within a floor.
//
// # Editing
//
// Two mutations exist:
//
//   - [SetApartmentCount] changes how many apartments one floor has and then
//     calls [Renumber], which renumbers every apartment that has not been
//     given a custom label.
//   - [Relabel] replaces one apartment's number with free text. Relabelled
//     apartments are custom and keep their label through later renumbering.
//
// All functions are pure: they return a new Section and never modify their
// input.
package section
