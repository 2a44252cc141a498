// Package diagram lays out a building section as a drawing and resolves
// pointer coordinates back to floors and apartments.
//
// # Geometry
//
// The drawing surface has a caller-chosen width. A label column of
// [LabelColumnWidth] units is reserved on the right edge; the remaining width
// is split evenly between the apartments of each floor:
//
//	apartmentWidth = (width - LabelColumnWidth) / floor.ApartmentCount
//
// Each floor is a band of the section's floor height at the floor's stored
// offset, so the surface height is len(floors) * floorHeight.
//
// # Drawing
//
// [Render] produces a [Drawing]: the surface size plus an ordered list of
// fill, stroke and text commands. Sinks replay the commands in order, so later
// commands paint over earlier ones. Every command is tagged with the floor
// (and apartment) it belongs to.
//
// # Hit testing
//
// [HitTest] maps a point to a floor (when it lies in the label column) or to an
// apartment cell, scanning floors top to bottom and cells left to right. Band
// and cell edges are inclusive; where two bands share an edge the upper floor
// wins.
package diagram
