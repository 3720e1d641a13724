// Package models holds the entities the client exchanges with the recipe API.
//
// Server payloads come in several historical shapes: ingredients may be a
// list of objects, a JSON-encoded string or a comma/semicolon separated
// string; instructions may be a list or a string; the favorites set may be a
// bare list or wrapped in {"favorites": [...]}. All of these are decoded once,
// in the UnmarshalJSON methods of this package, into a single canonical type,
// so the rest of the client never branches on payload shape.
package models
